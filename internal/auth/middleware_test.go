package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testReject(w http.ResponseWriter, message string) {
	http.Error(w, message, http.StatusUnauthorized)
}

func protectedEcho(t *testing.T, issuer *TokenIssuer) (http.Handler, *string) {
	t.Helper()
	var seen string
	h := RequireAuth(issuer, testReject)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject, ok := SubjectFromContext(r.Context())
		require.True(t, ok)
		seen = subject
		w.WriteHeader(http.StatusOK)
	}))
	return h, &seen
}

func TestRequireAuthSuccess(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer([]byte("test-secret"), time.Hour)
	tok, err := issuer.Issue("a@b.com")
	require.NoError(t, err)

	h, seen := protectedEcho(t, issuer)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "a@b.com", *seen)
}

func TestRequireAuthRejects(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer([]byte("test-secret"), time.Hour)
	expiredIssuer := NewTokenIssuer([]byte("test-secret"), -time.Minute)
	expired, err := expiredIssuer.Issue("a@b.com")
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"wrong scheme", "Basic abc"},
		{"garbage token", "Bearer garbage"},
		{"expired but correctly signed", "Bearer " + expired},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			h, seen := protectedEcho(t, issuer)
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			require.Equal(t, http.StatusUnauthorized, rr.Code)
			require.Empty(t, *seen, "handler must not run on rejection")
		})
	}
}
