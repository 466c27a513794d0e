package helpers

import (
	"errors"
	"net/http"

	"eventrsvp/internal/domain"
)

// StatusFor returns the HTTP status, error code, and client-facing message for err.
// Unrecognized errors map to 500 with a generic message.
func StatusFor(err error) (status int, code, message string) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity, ErrCodeValidation, err.Error()
	case errors.Is(err, domain.ErrDuplicate):
		return http.StatusConflict, ErrCodeConflict, domain.ErrDuplicate.Error()
	case errors.Is(err, domain.ErrAuthentication):
		return http.StatusUnauthorized, ErrCodeUnauthorized, "incorrect password"
	case errors.Is(err, domain.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "could not connect to the database"
	case errors.Is(err, domain.ErrIntegrity):
		return http.StatusInternalServerError, ErrCodeInternalError, "could not create and retrieve the RSVP record"
	case errors.Is(err, domain.ErrConfiguration):
		return http.StatusInternalServerError, ErrCodeInternalError, "panel password is not configured on the server"
	default:
		return http.StatusInternalServerError, ErrCodeInternalError, "internal server error"
	}
}

// WriteDomainError writes the error response for err and returns the status used.
func WriteDomainError(w http.ResponseWriter, err error) int {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		WriteValidationError(w, verr)
		return http.StatusUnprocessableEntity
	}
	status, code, message := StatusFor(err)
	WriteJSONError(w, status, code, message)
	return status
}
