package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"identity-backend/internal/auth"
	"identity-backend/internal/identity"
)

func TestWriteErrorMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"auth validation", &auth.ValidationError{Msg: "password required"}, http.StatusBadRequest, "password required"},
		{"identity validation", &identity.ValidationError{Msg: "name required"}, http.StatusBadRequest, "name required"},
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized, "Unauthorized"},
		{"duplicate email", auth.ErrDuplicateEmail, http.StatusConflict, "Email already in use"},
		{"not found", identity.ErrNotFound, http.StatusNotFound, "Document not found"},
		{"auth storage", fmt.Errorf("%w: boom", auth.ErrStorage), http.StatusBadGateway, "Storage unavailable"},
		{"identity storage", fmt.Errorf("%w: boom", identity.ErrStorage), http.StatusBadGateway, "Storage unavailable"},
		{"unexpected", errors.New("argon2 exploded"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rr := httptest.NewRecorder()
			writeError(rr, tc.err)

			require.Equal(t, tc.status, rr.Code)

			var env Envelope
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
			require.Equal(t, tc.message, env.Message)
			require.Nil(t, env.Data)
		})
	}
}

func TestWriteErrorNeverLeaksInternals(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	writeError(rr, fmt.Errorf("%w: connection refused to mongodb://internal-host", identity.ErrStorage))

	require.NotContains(t, rr.Body.String(), "mongodb://")
	require.NotContains(t, rr.Body.String(), "connection refused")
}
