package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestService() (*Service, *TokenIssuer) {
	issuer := NewTokenIssuer([]byte("test-secret"), time.Hour)
	return NewService(NewMemoryCredentialStore(), issuer), issuer
}

func TestSignupThenLogin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, issuer := newTestService()

	id, err := svc.Signup(ctx, "a@b.com", "pw")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	token, err := svc.Login(ctx, "a@b.com", "pw")
	require.NoError(t, err)

	subject, err := issuer.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "a@b.com", subject)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService()

	_, err := svc.Signup(ctx, "a@b.com", "pw")
	require.NoError(t, err)

	_, wrongPw := svc.Login(ctx, "a@b.com", "nope")
	require.ErrorIs(t, wrongPw, ErrInvalidCredentials)

	_, unknown := svc.Login(ctx, "nobody@b.com", "pw")
	require.ErrorIs(t, unknown, ErrInvalidCredentials)

	require.Equal(t, wrongPw, unknown)
}

func TestSignupDuplicateEmail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService()

	_, err := svc.Signup(ctx, "a@b.com", "pw")
	require.NoError(t, err)

	_, err = svc.Signup(ctx, "a@b.com", "other")
	require.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestSignupEmailIsNormalized(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService()

	_, err := svc.Signup(ctx, "  A@B.com ", "pw")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "a@b.com", "pw")
	require.NoError(t, err)
}

func TestSignupValidation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService()

	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"empty email", "", "pw"},
		{"malformed email", "not-an-email", "pw"},
		{"empty password", "a@b.com", ""},
		{"blank password", "a@b.com", "   "},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Signup(ctx, tc.email, tc.password)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
		})
	}
}

func TestLoginCorruptHashReadsAsInvalidCredentials(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := NewMemoryCredentialStore()
	_, err := store.Create(ctx, "a@b.com", "not-an-argon2id-hash")
	require.NoError(t, err)

	svc := NewService(store, NewTokenIssuer([]byte("test-secret"), time.Hour))
	_, err = svc.Login(ctx, "a@b.com", "pw")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}
