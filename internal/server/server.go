// Package server wires the HTTP surface: routing, request decoding,
// the response envelope and the auth gate.
package server

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"identity-backend/internal/auth"
	"identity-backend/internal/identity"
)

type Server struct {
	mux        *http.ServeMux
	log        *slog.Logger
	auth       *auth.Service
	identities *identity.Service
	issuer     *auth.TokenIssuer
	validate   *validator.Validate
}

func NewServer(log *slog.Logger, authSvc *auth.Service, identSvc *identity.Service, issuer *auth.TokenIssuer) *Server {
	s := &Server{
		mux:        http.NewServeMux(),
		log:        log,
		auth:       authSvc,
		identities: identSvc,
		issuer:     issuer,
		validate:   validator.New(),
	}
	s.routes()
	return s
}

func (s *Server) Handler() http.Handler {
	return requestLogger(s.log)(s.mux)
}
