package helpers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"eventrsvp/internal/domain"
)

// MaxBodyBytes caps the size of JSON request bodies.
const MaxBodyBytes = 64 << 10

// DecodeJSON decodes the request body into dest. Unknown fields are ignored, so
// server-owned fields sent by a client (id, timestamp) are dropped rather than rejected.
// Malformed or wrong-typed JSON is reported as a *domain.ValidationError.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dest any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err := dec.Decode(dest); err != nil {
		var typeErr *json.UnmarshalTypeError
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &typeErr):
			field := typeErr.Field
			if field == "" {
				field = "body"
			}
			return domain.NewValidationError(field, fmt.Sprintf("must be of type %s", typeErr.Type))
		case errors.As(err, &maxErr):
			return domain.NewValidationError("body", fmt.Sprintf("must not exceed %d bytes", maxErr.Limit))
		case errors.Is(err, io.EOF):
			return domain.NewValidationError("body", "request body is required")
		default:
			return domain.NewValidationError("body", "invalid JSON: "+err.Error())
		}
	}
	return nil
}

// DecodeAndValidate decodes the request body into dest. On failure it writes a 422
// JSON error and returns false; callers should return immediately when it does.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, dest any) bool {
	if err := DecodeJSON(w, r, dest); err != nil {
		WriteDomainError(w, err)
		return false
	}
	return true
}
