package helper

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/ShantoNoor/FoodTitan-Backend/repository"
)

// RespondJSON writes data as a JSON response with the given status.
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logrus.WithError(err).Error("failed to encode JSON response")
	}
}

// RespondError translates a repository error into its HTTP response.
func RespondError(w http.ResponseWriter, err error) {
	status, message := StatusForError(err)
	if status == http.StatusInternalServerError {
		logrus.WithError(err).Error("request failed")
	}
	RespondJSON(w, status, map[string]string{"error": message})
}

// StatusForError maps the error taxonomy onto HTTP status codes:
// validation 400, not found 404, conflict and insufficient stock 409,
// anything else a generic 500 with no detail leaked.
func StatusForError(err error) (int, string) {
	var validationErr *repository.ValidationError
	var conflictErr *repository.ConflictError

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, validationErr.Message
	case errors.As(err, &conflictErr):
		return http.StatusConflict, conflictErr.Message
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound, "Record not found"
	case errors.Is(err, repository.ErrInsufficientStock):
		return http.StatusConflict, "Not enough stock to place the order"
	default:
		return http.StatusInternalServerError, "Something went wrong"
	}
}
