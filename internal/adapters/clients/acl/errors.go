// Package acl is the anti-corruption layer between the downstream dashboard
// API and the domain. Resource translators live in subpackages (acl/task,
// acl/budget); the clients, request plumbing and error mapping live here.
package acl

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/Yukimura-Hanzo/konoha-project/internal/domain"
)

// problemBodyLimit caps how much of a failed response is read.
const problemBodyLimit = 64 << 10

// statusErrors are the downstream statuses with a direct domain meaning.
// A downstream 401 or 403 means this service's own credentials were
// refused, so both surface as ErrForbidden rather than the caller's
// ErrUnauthorized.
var statusErrors = map[int]error{
	http.StatusBadRequest:          domain.ErrValidation,
	http.StatusUnauthorized:        domain.ErrForbidden,
	http.StatusForbidden:           domain.ErrForbidden,
	http.StatusNotFound:            domain.ErrNotFound,
	http.StatusConflict:            domain.ErrConflict,
	http.StatusUnprocessableEntity: domain.ErrValidation,
	http.StatusTooManyRequests:     domain.ErrUnavailable,
}

// problem is the part of an RFC 9457 body the dashboard API fills in.
type problem struct {
	Detail string `json:"detail"`
	Errors []struct {
		Location string `json:"location"`
		Message  string `json:"message"`
	} `json:"errors"`
}

// TranslateHTTPError turns a failed downstream response into a domain
// error. Field errors on a 400 or 422 become a *domain.ValidationError;
// any 5xx is ErrUnavailable. Statuses without a domain meaning produce a
// plain error naming the code.
func TranslateHTTPError(resp *http.Response) error {
	p := readProblem(resp)

	detail := p.Detail
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	sentinel, known := statusErrors[resp.StatusCode]
	if resp.StatusCode >= http.StatusInternalServerError {
		sentinel, known = domain.ErrUnavailable, true
	}
	if !known {
		return fmt.Errorf("dashboard api answered %d: %s", resp.StatusCode, detail)
	}

	if errors.Is(sentinel, domain.ErrValidation) && len(p.Errors) > 0 {
		verr := &domain.ValidationError{Fields: make(map[string]string, len(p.Errors))}
		for _, e := range p.Errors {
			verr.Fields[strings.TrimPrefix(e.Location, "body.")] = e.Message
		}
		return verr
	}

	return fmt.Errorf("%s: %w", detail, sentinel)
}

// readProblem decodes a problem+json body. Anything else, including a body
// that fails to parse, yields the zero problem.
func readProblem(resp *http.Response) problem {
	var p problem
	if resp.Body == nil {
		return p
	}
	mediaType, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/problem+json" {
		return p
	}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, problemBodyLimit))
	if err != nil || json.Unmarshal(raw, &p) != nil {
		return problem{}
	}
	return p
}
