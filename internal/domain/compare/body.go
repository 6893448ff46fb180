// Package compare classifies response bodies, decides structural equality and
// renders bodies for display.
package compare

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"math/big"
	"strings"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
	"github.com/respdiff/respdiff/internal/domain"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

const jsonContentType = "application/json"

// IsJSON reports whether a Content-Type header declares a JSON body.
func IsJSON(contentType string) bool {
	return strings.Contains(contentType, jsonContentType)
}

// Classify interprets a response body by its declared Content-Type. Bodies
// not declared as JSON are kept as raw bytes and never parsed. Declared JSON
// that does not decode becomes BodyInvalidJSON instead of an error.
// ignoreFields are gjson paths removed before decoding.
func Classify(resp *domain.Response, ignoreFields []string) domain.Body {
	body := domain.Body{
		Kind:        domain.BodyRaw,
		Raw:         resp.Body,
		ContentType: resp.ContentType,
	}
	if !IsJSON(resp.ContentType) {
		return body
	}

	if !gjson.ValidBytes(resp.Body) {
		body.Kind = domain.BodyInvalidJSON
		return body
	}

	raw := stripFields(resp.Body, ignoreFields)

	v, err := decode(raw)
	if err != nil {
		body.Kind = domain.BodyInvalidJSON
		return body
	}

	body.Kind = domain.BodyJSON
	body.Value = v
	body.Raw = raw
	return body
}

// decode keeps numbers as json.Number so integers beyond float64 precision
// stay distinct.
func decode(raw []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("trailing data after JSON value")
	}
	return v, nil
}

func stripFields(raw []byte, paths []string) []byte {
	for _, path := range paths {
		if !gjson.GetBytes(raw, path).Exists() {
			continue
		}
		out, err := sjson.DeleteBytes(raw, path)
		if err != nil {
			continue
		}
		raw = out
	}
	return raw
}

// Equal reports whether two classified bodies are structurally equal.
// Lists are order-sensitive; objects compare by key set and values.
// Numbers compare by value, so 1 equals 1.0. JSON bodies carrying invalid
// UTF-8 compare byte for byte. Bodies of different kinds are never equal.
func Equal(a, b domain.Body) bool {
	if a.Kind != b.Kind {
		return false
	}
	if a.Kind == domain.BodyJSON && utf8.Valid(a.Raw) && utf8.Valid(b.Raw) {
		return cmp.Equal(a.Value, b.Value, numberComparer)
	}
	return bytes.Equal(a.Raw, b.Raw)
}

var numberComparer = cmp.Comparer(func(x, y json.Number) bool {
	rx, okx := new(big.Rat).SetString(string(x))
	ry, oky := new(big.Rat).SetString(string(y))
	if !okx || !oky {
		return x == y
	}
	return rx.Cmp(ry) == 0
})
