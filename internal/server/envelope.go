package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"identity-backend/internal/auth"
	"identity-backend/internal/identity"
)

// Envelope is the uniform response body. Every handler, including
// middleware rejections, writes this shape and nothing else.
type Envelope struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func writeEnvelope(w http.ResponseWriter, code int, message string, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(Envelope{Message: message, Data: data})
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	writeEnvelope(w, http.StatusUnauthorized, message, nil)
}

func writeNotFound(w http.ResponseWriter) {
	writeEnvelope(w, http.StatusNotFound, "Document not found", nil)
}

func writeMethodNotAllowed(w http.ResponseWriter) {
	writeEnvelope(w, http.StatusMethodNotAllowed, "method not allowed", nil)
}

// writeError maps a domain error onto the envelope. Raw store or
// hashing error text never reaches the client.
func writeError(w http.ResponseWriter, err error) {
	var authValidation *auth.ValidationError
	var identValidation *identity.ValidationError

	switch {
	case errors.As(err, &authValidation):
		writeEnvelope(w, http.StatusBadRequest, authValidation.Msg, nil)
	case errors.As(err, &identValidation):
		writeEnvelope(w, http.StatusBadRequest, identValidation.Msg, nil)
	case errors.Is(err, auth.ErrInvalidCredentials):
		writeUnauthorized(w, "Unauthorized")
	case errors.Is(err, auth.ErrDuplicateEmail):
		writeEnvelope(w, http.StatusConflict, "Email already in use", nil)
	case errors.Is(err, identity.ErrNotFound):
		writeNotFound(w)
	case errors.Is(err, auth.ErrStorage), errors.Is(err, identity.ErrStorage):
		writeEnvelope(w, http.StatusBadGateway, "Storage unavailable", nil)
	default:
		writeEnvelope(w, http.StatusInternalServerError, "Internal server error", nil)
	}
}
