package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Yukimura-Hanzo/konoha-project/internal/adapters/http/dto"
	"github.com/Yukimura-Hanzo/konoha-project/internal/domain"
	"github.com/Yukimura-Hanzo/konoha-project/internal/domain/task"
	"github.com/Yukimura-Hanzo/konoha-project/internal/platform/logging"
)

// maxJSONBodyBytes caps request bodies at 1 MiB.
const maxJSONBodyBytes = 1 << 20

func pathID(r *http.Request, param string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.Invalid(param, "must be a positive integer")
	}
	return id, nil
}

// taskFilter reads the optional ?completed= query parameter.
func taskFilter(r *http.Request) (task.Filter, error) {
	raw, ok := r.URL.Query()["completed"]
	if !ok || raw[0] == "" {
		return task.Filter{}, nil
	}
	completed, err := strconv.ParseBool(raw[0])
	if err != nil {
		return task.Filter{}, domain.Invalid("completed", "must be true or false")
	}
	return task.Filter{Completed: &completed}, nil
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		ctx := r.Context()
		logging.FromContext(ctx).ErrorContext(ctx, "encoding response body", slog.Any("error", err))
	}
}

// bodyError turns a decode failure into a field error on "body".
func bodyError(err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return domain.Invalid("body", fmt.Sprintf("must not exceed %d bytes", maxErr.Limit))
	}
	return domain.Invalid("body", "invalid JSON")
}

type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the request body into dst and runs its
// Validate. On failure the problem response is already written and false is
// returned.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	err := json.NewDecoder(r.Body).Decode(dst)
	if err != nil {
		err = bodyError(err)
	} else {
		err = dst.Validate()
	}
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}

// identity returns the caller stored by the Authenticate middleware, or nil
// for anonymous requests.
func identity(r *http.Request) *domain.Identity {
	return domain.IdentityFromContext(r.Context())
}
