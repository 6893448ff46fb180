package domain

import "strings"

// Descriptor is one entry of an externally loaded request file.
type Descriptor struct {
	TestName    string         `json:"test_name"`
	Path        string         `json:"path"`
	Methods     []string       `json:"methods,omitempty"`
	Payload     map[string]any `json:"payload,omitempty"`
	JSONPayload map[string]any `json:"json_payload,omitempty"`
	APIVersions []string       `json:"api_versions,omitempty"`
}

// Validate checks required fields. file and index only feed the error message.
func (d Descriptor) Validate(file string, index int) error {
	if strings.TrimSpace(d.TestName) == "" {
		return &ValidationError{File: file, Index: index, Field: "test_name"}
	}
	if strings.TrimSpace(d.Path) == "" {
		return &ValidationError{File: file, Index: index, Field: "path"}
	}
	for _, m := range d.Methods {
		if _, err := ParseMethod(m); err != nil {
			return &ValidationError{File: file, Index: index, Field: "methods", Reason: err.Error()}
		}
	}
	return nil
}

// Body returns the request payload, preferring payload over json_payload.
func (d Descriptor) Body() map[string]any {
	if d.Payload != nil {
		return d.Payload
	}
	return d.JSONPayload
}

// Endpoint converts a validated descriptor into an EndpointSpec.
func (d Descriptor) Endpoint() EndpointSpec {
	methods := make([]Method, 0, len(d.Methods))
	for _, m := range d.Methods {
		pm, err := ParseMethod(m)
		if err != nil {
			continue
		}
		methods = append(methods, pm)
	}
	ep := Endpoint(d.Path, d.Body(), methods...)
	ep.Name = d.TestName
	return ep
}

// SupportsVersion reports whether the descriptor applies to an API version.
// An empty api_versions list applies to every version.
func (d Descriptor) SupportsVersion(version string) bool {
	if len(d.APIVersions) == 0 {
		return true
	}
	for _, v := range d.APIVersions {
		if v == version {
			return true
		}
	}
	return false
}
