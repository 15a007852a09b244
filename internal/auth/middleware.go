package auth

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey int

const subjectKey ctxKey = 1

func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, subjectKey, subject)
}

// SubjectFromContext returns the authenticated email placed in the
// context by RequireAuth.
func SubjectFromContext(ctx context.Context) (string, bool) {
	s, ok := ctx.Value(subjectKey).(string)
	return s, ok
}

type TokenVerifier interface {
	Verify(tokenStr string) (string, error)
}

// RejectFunc writes the 401 response for a rejected request. The
// server supplies one so rejections share the response envelope.
type RejectFunc func(w http.ResponseWriter, message string)

// RequireAuth gates a handler behind a bearer token. On success the
// verified subject is attached to the request context; on any failure
// the request is rejected before the handler runs.
func RequireAuth(verifier TokenVerifier, reject RejectFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := r.Header.Get("Authorization")
			if !strings.HasPrefix(h, "Bearer ") {
				reject(w, "Unauthorized")
				return
			}
			token := strings.TrimPrefix(h, "Bearer ")
			subject, err := verifier.Verify(token)
			if err != nil {
				reject(w, "Unauthorized")
				return
			}
			next.ServeHTTP(w, r.WithContext(WithSubject(r.Context(), subject)))
		})
	}
}
