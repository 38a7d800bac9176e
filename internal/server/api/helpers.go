package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kamikazebr/engage-server/internal/server/services"
	"github.com/kamikazebr/engage-server/pkg/models"
)

func respondJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

func respondErrorJSON(w http.ResponseWriter, statusCode int, message string) {
	respondJSON(w, statusCode, models.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	})
}

// decodeJSON rejects bodies carrying fields the target type does not declare.
func decodeJSON(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrMethodNotAllowed):
		return http.StatusMethodNotAllowed
	case errors.Is(err, services.ErrMissingInput):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrRecipientUnavailable):
		return http.StatusNotFound
	case errors.Is(err, services.ErrInvalidCode):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// respondServiceError hides details of 5xx failures from the caller.
func respondServiceError(w http.ResponseWriter, err error) {
	status := statusForError(err)
	if status >= http.StatusInternalServerError {
		respondErrorJSON(w, status, "internal server error")
		return
	}
	respondErrorJSON(w, status, err.Error())
}

func requirePost(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodPost {
		respondServiceError(w, services.ErrMethodNotAllowed)
		return false
	}
	return true
}
