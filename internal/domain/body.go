package domain

// BodyKind says how a response body was interpreted.
type BodyKind int

const (
	// BodyRaw is any body whose Content-Type is not JSON. It is never parsed.
	BodyRaw BodyKind = iota
	// BodyJSON is a declared-JSON body that decoded successfully.
	BodyJSON
	// BodyInvalidJSON is a declared-JSON body that failed to decode.
	BodyInvalidJSON
)

func (k BodyKind) String() string {
	switch k {
	case BodyJSON:
		return "json"
	case BodyInvalidJSON:
		return "invalid-json"
	default:
		return "raw"
	}
}

// Body is a classified response body. Value holds the decoded document for
// BodyJSON; Raw always holds the bytes used for comparison.
type Body struct {
	Kind        BodyKind
	Value       any
	Raw         []byte
	ContentType string
}
