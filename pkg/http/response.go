package http

import (
	"encoding/json"
	"net/http"
	apperrors "rentals/pkg/errors"
)

type ErrorResponse struct {
	Error   string         `json:"error"`
	Code    string         `json:"code,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

type SuccessResponse struct {
	Data any `json:"data,omitempty"`
}

func WriteJSON(w http.ResponseWriter, statusCode int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data)
}

func WriteError(w http.ResponseWriter, err error) error {
	e := apperrors.AsAppError(err)

	var statusCode int
	switch e.Code {
	case apperrors.CodeInvalidInput:
		statusCode = http.StatusBadRequest
	case apperrors.CodeNotFound:
		statusCode = http.StatusNotFound
	case apperrors.CodeValidation:
		statusCode = http.StatusUnprocessableEntity
	case apperrors.CodeConflict:
		statusCode = http.StatusConflict
	case apperrors.CodeTimeout:
		statusCode = http.StatusGatewayTimeout
	case apperrors.CodeUnavailable:
		statusCode = http.StatusServiceUnavailable
	case apperrors.CodeInternal, apperrors.CodeStorage:
		statusCode = http.StatusInternalServerError
	default:
		statusCode = e.StatusCode()
	}

	return WriteJSON(w, statusCode, ErrorResponse{
		Error:   e.Message,
		Code:    e.Code,
		Details: e.Details,
	})
}

func WriteSuccess(w http.ResponseWriter, data any) error {
	return WriteJSON(w, http.StatusOK, SuccessResponse{Data: data})
}

func WriteCreated(w http.ResponseWriter, data any) error {
	return WriteJSON(w, http.StatusCreated, SuccessResponse{Data: data})
}

func WriteNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
