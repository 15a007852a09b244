package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"identity-backend/internal/identity"
)

type createIdentityReq struct {
	Name *string `json:"name" validate:"required"`
	Age  *int    `json:"age" validate:"required,gte=0"`
}

type updateIdentityReq struct {
	Name *string `json:"name"`
	Age  *int    `json:"age"`
}

func (s *Server) handleIdentity(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		var req createIdentityReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeEnvelope(w, http.StatusBadRequest, "invalid request body", nil)
			return
		}
		if err := s.validate.Struct(req); err != nil {
			writeEnvelope(w, http.StatusBadRequest, validationMessage(err), nil)
			return
		}
		id, err := s.identities.Create(r.Context(), *req.Name, *req.Age)
		if err != nil {
			writeError(w, err)
			return
		}
		writeEnvelope(w, http.StatusCreated, "Identity created", id)

	case http.MethodGet:
		list, err := s.identities.List(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeEnvelope(w, http.StatusOK, "Fetched all identities", list)

	default:
		writeMethodNotAllowed(w)
	}
}

func (s *Server) handleIdentityByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/identity/")
	if id == "" || strings.Contains(id, "/") {
		writeNotFound(w)
		return
	}

	switch r.Method {
	case http.MethodGet:
		rec, err := s.identities.GetByID(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeEnvelope(w, http.StatusOK, "Fetched", rec)

	case http.MethodPatch:
		var req updateIdentityReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeEnvelope(w, http.StatusBadRequest, "invalid request body", nil)
			return
		}
		patch := identity.Patch{Name: req.Name, Age: req.Age}
		err := s.identities.Update(r.Context(), id, patch)
		switch {
		case errors.Is(err, identity.ErrNoChanges):
			writeEnvelope(w, http.StatusOK, "No changes made", nil)
		case err != nil:
			writeError(w, err)
		default:
			writeEnvelope(w, http.StatusOK, "Updated", nil)
		}

	case http.MethodDelete:
		if err := s.identities.Delete(r.Context(), id); err != nil {
			writeError(w, err)
			return
		}
		writeEnvelope(w, http.StatusOK, "Deleted", nil)

	default:
		writeMethodNotAllowed(w)
	}
}
