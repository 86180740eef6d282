package dto

import (
	"cmp"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"

	"github.com/Yukimura-Hanzo/konoha-project/internal/domain"
	"github.com/Yukimura-Hanzo/konoha-project/internal/platform/logging"
)

const (
	problemContentType = "application/problem+json"
	bearerChallenge    = `Bearer realm="konoha"`

	// internalDetail replaces the message of any error without a mapping.
	internalDetail = "unexpected error"
)

// ErrorResponse is an RFC 9457 problem document.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail points at one invalid input. Location is "body.<field>".
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// statusBySentinel is checked in order; the first match wins, so a
// ValidationError wrapping other errors still reports 400.
var statusBySentinel = []struct {
	sentinel error
	status   int
}{
	{domain.ErrValidation, http.StatusBadRequest},
	{domain.ErrUnauthorized, http.StatusUnauthorized},
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrForbidden, http.StatusForbidden},
	{domain.ErrConflict, http.StatusConflict},
	{domain.ErrUnavailable, http.StatusBadGateway},
}

// StatusFor returns the HTTP status for err; 500 when no sentinel matches.
func StatusFor(err error) int {
	for _, m := range statusBySentinel {
		if errors.Is(err, m.sentinel) {
			return m.status
		}
	}
	return http.StatusInternalServerError
}

// NewErrorResponse builds the problem document for err as a reply to r.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status := StatusFor(err)

	problem := ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   err.Error(),
		Instance: r.RequestURI,
	}
	if status == http.StatusInternalServerError {
		problem.Detail = internalDetail
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		problem.Errors = fieldDetails(verr.Fields)
	}
	return problem
}

// WriteErrorResponse renders err as a problem document. Unauthorized
// replies carry a Bearer challenge.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	problem := NewErrorResponse(r, err)

	h := w.Header()
	h.Set("Content-Type", problemContentType)
	if problem.Status == http.StatusUnauthorized {
		h.Set("WWW-Authenticate", bearerChallenge)
	}
	w.WriteHeader(problem.Status)

	if encErr := json.NewEncoder(w).Encode(problem); encErr != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "encoding problem response",
			slog.Any("error", encErr),
		)
	}
}

func fieldDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		details = append(details, ErrorDetail{Location: "body." + field, Message: msg})
	}
	slices.SortFunc(details, func(a, b ErrorDetail) int {
		return cmp.Compare(a.Location, b.Location)
	})
	return details
}
