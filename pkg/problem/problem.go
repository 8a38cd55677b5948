// Package problem writes RFC 9457 application/problem+json responses.
package problem

import (
	"encoding/json"
	"net/http"
)

const (
	ContentType = "application/problem+json"
	BaseURI     = "https://sleepmitra.app/problems"
)

// Problem is the response body. Errors carries per-field validation
// failures.
type Problem struct {
	Type     string       `json:"type"`
	Title    string       `json:"title"`
	Status   int          `json:"status"`
	Detail   string       `json:"detail,omitempty"`
	Instance string       `json:"instance,omitempty"`
	Errors   []FieldError `json:"errors,omitempty"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Kind identifies a problem type: its URI slug, title and status.
type Kind struct {
	Slug   string
	Title  string
	Status int
}

var (
	KindBadRequest         = Kind{"bad-request", "Bad Request", http.StatusBadRequest}
	KindNotFound           = Kind{"not-found", "Not Found", http.StatusNotFound}
	KindValidation         = Kind{"validation-error", "Validation Error", http.StatusUnprocessableEntity}
	KindInternal           = Kind{"internal-error", "Internal Server Error", http.StatusInternalServerError}
	KindUpstream           = Kind{"llm-error", "LLM Error", http.StatusBadGateway}
	KindServiceUnavailable = Kind{"service-unavailable", "Service Unavailable", http.StatusServiceUnavailable}
)

func (k Kind) New(detail string) *Problem {
	return &Problem{
		Type:   BaseURI + "/" + k.Slug,
		Title:  k.Title,
		Status: k.Status,
		Detail: detail,
	}
}

func (p *Problem) WithErrors(errors []FieldError) *Problem {
	p.Errors = errors
	return p
}

// WithInstance sets the URI of the request that failed.
func (p *Problem) WithInstance(r *http.Request) *Problem {
	if r != nil && r.URL != nil {
		p.Instance = r.URL.Path
	}
	return p
}

func (p *Problem) Write(w http.ResponseWriter) {
	w.Header().Set("Content-Type", ContentType)
	w.WriteHeader(p.Status)
	json.NewEncoder(w).Encode(p)
}

func NotFound(detail string) *Problem {
	return KindNotFound.New(detail)
}

func BadRequest(detail string) *Problem {
	return KindBadRequest.New(detail)
}

func ValidationError(detail string, errors []FieldError) *Problem {
	return KindValidation.New(detail).WithErrors(errors)
}

func ServiceUnavailable(detail string) *Problem {
	return KindServiceUnavailable.New(detail)
}

// BadGateway reports a failed call to the LLM provider.
func BadGateway(detail string) *Problem {
	return KindUpstream.New(detail)
}

func InternalError(detail string) *Problem {
	return KindInternal.New(detail)
}
