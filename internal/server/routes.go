package server

import (
	"net/http"

	"identity-backend/internal/auth"
)

func (s *Server) routes() {
	s.mux.HandleFunc("/", s.handleRoot)
	s.mux.HandleFunc("/health", s.handleHealth)

	s.mux.HandleFunc("/signup", s.handleSignup)
	s.mux.HandleFunc("/login", s.handleLogin)

	protected := auth.RequireAuth(s.issuer, writeUnauthorized)
	s.mux.Handle("/protected", protected(http.HandlerFunc(s.handleProtected)))
	s.mux.Handle("/identity", protected(http.HandlerFunc(s.handleIdentity)))
	s.mux.Handle("/identity/", protected(http.HandlerFunc(s.handleIdentityByID)))
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	// "/" matches every unregistered path; anything but the exact
	// root is an unknown document.
	if r.URL.Path != "/" {
		writeNotFound(w)
		return
	}
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w)
		return
	}
	writeEnvelope(w, http.StatusOK, "Hello World", nil)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w)
		return
	}
	writeEnvelope(w, http.StatusOK, "ok", nil)
}
