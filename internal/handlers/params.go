package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// missingParamError is returned when a required parameter is absent from
// both the request body and the query string.
type missingParamError struct {
	name string
}

func (e *missingParamError) Error() string {
	return fmt.Sprintf("Missing parameter: %s", e.name)
}

// requestParams resolves named parameters from the request body (JSON or
// form-encoded) and the query string, body values taking precedence.
type requestParams struct {
	body  map[string]string
	query url.Values
}

// newRequestParams reads the request once and captures all parameters.
func newRequestParams(r *http.Request) *requestParams {
	body := map[string]string{}

	contentType := r.Header.Get("Content-Type")
	switch {
	case strings.HasPrefix(contentType, "application/x-www-form-urlencoded"),
		strings.HasPrefix(contentType, "multipart/form-data"):
		if err := r.ParseForm(); err == nil {
			for name, values := range r.PostForm {
				if len(values) > 0 {
					body[name] = values[0]
				}
			}
		}
	default:
		var decoded map[string]any
		if err := json.NewDecoder(r.Body).Decode(&decoded); err == nil {
			for name, value := range decoded {
				if s, ok := value.(string); ok {
					body[name] = s
				}
			}
		}
	}

	return &requestParams{
		body:  body,
		query: r.URL.Query(),
	}
}

// Get returns the named parameter and whether it was supplied.
func (p *requestParams) Get(name string) (string, bool) {
	if value, ok := p.body[name]; ok {
		return value, true
	}
	if p.query.Has(name) {
		return p.query.Get(name), true
	}
	return "", false
}

// Require returns the named parameter or a missingParamError.
func (p *requestParams) Require(name string) (string, error) {
	value, ok := p.Get(name)
	if !ok {
		return "", &missingParamError{name: name}
	}
	return value, nil
}
