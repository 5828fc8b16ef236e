package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"property-marketplace/marketplace-service/logging"
	"property-marketplace/marketplace-service/models"
)

// Every response uses the same envelope; collections nest under data.
type envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, message string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(envelope{Success: true, Message: message, Data: data})
}

func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusForError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		logging.Logger.Errorf("Event ID: REQUEST_FAILED, Description: %s %s failed: %v", r.Method, r.URL.Path, err)
		message = "Internal server error"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(envelope{Success: false, Message: message})
}

func statusForError(err error) int {
	var validationErr *models.ValidationError
	switch {
	case errors.As(err, &validationErr),
		errors.Is(err, models.ErrOTPInvalid),
		errors.Is(err, models.ErrOTPExpired):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrUserAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, models.ErrInvalidCredentials),
		errors.Is(err, models.ErrTokenInvalid),
		errors.Is(err, models.ErrNotOwner):
		return http.StatusForbidden
	case errors.Is(err, models.ErrUserNotFound),
		errors.Is(err, models.ErrListingNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
