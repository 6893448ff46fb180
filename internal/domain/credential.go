package domain

import "fmt"

// CredentialStrategy attaches an API credential to an outgoing request.
// Implementations must leave the request untouched for an empty credential.
type CredentialStrategy interface {
	Attach(req *Request, credential string)
}

// QueryParam puts the credential in a query parameter.
type QueryParam struct{ Name string }

func (q QueryParam) Attach(req *Request, credential string) {
	if credential == "" {
		return
	}
	req.Query.Set(q.Name, credential)
}

// Header puts the credential in a request header.
type Header struct{ Name string }

func (h Header) Attach(req *Request, credential string) {
	if credential == "" {
		return
	}
	req.Header.Set(h.Name, credential)
}

// ByMethod picks a strategy based on the request method.
type ByMethod struct {
	Get  CredentialStrategy
	Post CredentialStrategy
}

func (b ByMethod) Attach(req *Request, credential string) {
	switch req.Method {
	case MethodGet:
		if b.Get != nil {
			b.Get.Attach(req, credential)
		}
	case MethodPost:
		if b.Post != nil {
			b.Post.Attach(req, credential)
		}
	}
}

// Family identifies an API family; each family expects credentials in a
// different place.
type Family string

const (
	FamilyMixer Family = "mixer"
	FamilyNL    Family = "nl"
	FamilyBench Family = "bench"
)

// CredentialStrategyFor returns the attachment strategy for an API family.
func CredentialStrategyFor(f Family) (CredentialStrategy, error) {
	switch f {
	case FamilyMixer:
		return ByMethod{Get: QueryParam{Name: "key"}, Post: Header{Name: "x-api-key"}}, nil
	case FamilyNL:
		// The NL API takes the key as a query parameter for both methods.
		return QueryParam{Name: "apikey"}, nil
	case FamilyBench:
		return Header{Name: "X-API-Key"}, nil
	default:
		return nil, fmt.Errorf("unknown API family %q", f)
	}
}
