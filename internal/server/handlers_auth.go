package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"identity-backend/internal/auth"
)

type signupReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// validationMessage flattens the first validator failure into the
// field-specific prose the envelope carries.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid request body"
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s required", jsonField(fe))
	case "email":
		return "valid email required"
	case "gte":
		return fmt.Sprintf("%s must be at least %s", jsonField(fe), fe.Param())
	default:
		return fmt.Sprintf("invalid %s", jsonField(fe))
	}
}

func jsonField(fe validator.FieldError) string {
	switch fe.Field() {
	case "Email":
		return "email"
	case "Password":
		return "password"
	case "Name":
		return "name"
	case "Age":
		return "age"
	default:
		return fe.Field()
	}
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w)
		return
	}

	var req signupReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEnvelope(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeEnvelope(w, http.StatusBadRequest, validationMessage(err), nil)
		return
	}

	id, err := s.auth.Signup(r.Context(), req.Email, req.Password)
	if err != nil {
		s.log.Warn("signup failed", "error", err)
		writeError(w, err)
		return
	}
	writeEnvelope(w, http.StatusCreated, "Auth created", id)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w)
		return
	}

	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEnvelope(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeEnvelope(w, http.StatusBadRequest, validationMessage(err), nil)
		return
	}

	token, err := s.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.log.Warn("login failed", "error", err)
		writeError(w, err)
		return
	}
	writeEnvelope(w, http.StatusOK, "Logged in", token)
}

func (s *Server) handleProtected(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w)
		return
	}
	subject, ok := auth.SubjectFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "Unauthorized")
		return
	}
	msg := fmt.Sprintf("Hello. You are logged in using %s", subject)
	writeEnvelope(w, http.StatusOK, msg, map[string]any{})
}
