package respond

import (
	"errors"
	"net/http"

	"osint-tracker/internal/domain/entity"
)

// StatusFromError maps a domain error to an HTTP status code.
// Validation failures map to 400, missing entities to 404, capacity
// rejections to 409, and everything else to 500.
func StatusFromError(err error) int {
	var ve *entity.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest
	}
	var ce *entity.CapacityError
	if errors.As(err, &ce) {
		return http.StatusConflict
	}
	if errors.Is(err, entity.ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, entity.ErrInvalidInput) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// Failure writes the error response for a domain error, choosing the
// status code via StatusFromError and sanitizing 5xx messages.
func Failure(w http.ResponseWriter, err error) {
	SafeError(w, StatusFromError(err), err)
}
