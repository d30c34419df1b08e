package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"backoffice-console/internal/models"
	"backoffice-console/internal/upstream"
)

// writeJSONResponse is a helper function to write JSON responses
func writeJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// writeErrorResponse is a helper function to write error responses
func writeErrorResponse(w http.ResponseWriter, statusCode int, code, message string, details []models.ErrorDetail) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(models.ErrorResponse{
		Code:    code,
		Message: message,
		Details: details,
	})
}

// writeDomainError maps core errors onto the error envelope. Local errors map
// to 4xx codes; upstream failures surface as 502 with the decoded server
// message.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidInput):
		writeErrorResponse(w, http.StatusBadRequest, "invalid_input", err.Error(), nil)
	case errors.Is(err, models.ErrOutOfRange):
		writeErrorResponse(w, http.StatusBadRequest, "out_of_range", err.Error(), nil)
	case errors.Is(err, models.ErrNotSubmittable):
		writeErrorResponse(w, http.StatusUnprocessableEntity, "not_submittable", "Select a client and add at least one item", nil)
	case errors.Is(err, models.ErrNotFound):
		writeErrorResponse(w, http.StatusNotFound, "not_found", err.Error(), nil)
	default:
		var apiErr *upstream.APIError
		if errors.As(err, &apiErr) {
			writeErrorResponse(w, http.StatusBadGateway, "upstream_error", apiErr.Message, nil)
			return
		}
		writeErrorResponse(w, http.StatusBadGateway, "upstream_error", err.Error(), nil)
	}
}
