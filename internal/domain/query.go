package domain

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// QueryFromPayload flattens a payload into query parameters. Lists become
// repeated parameters, nested objects are JSON-encoded and nil values are
// dropped.
func QueryFromPayload(payload map[string]any) (url.Values, error) {
	q := url.Values{}
	for key, v := range payload {
		switch val := v.(type) {
		case nil:
			continue
		case []any:
			for _, item := range val {
				s, err := queryValue(item)
				if err != nil {
					return nil, fmt.Errorf("param %q: %w", key, err)
				}
				q.Add(key, s)
			}
		case []string:
			for _, item := range val {
				q.Add(key, item)
			}
		default:
			s, err := queryValue(val)
			if err != nil {
				return nil, fmt.Errorf("param %q: %w", key, err)
			}
			q.Set(key, s)
		}
	}
	return q, nil
}

func queryValue(v any) (string, error) {
	switch val := v.(type) {
	case string:
		return val, nil
	case bool:
		return strconv.FormatBool(val), nil
	case int:
		return strconv.Itoa(val), nil
	case int64:
		return strconv.FormatInt(val, 10), nil
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), nil
	case json.Number:
		return val.String(), nil
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}
