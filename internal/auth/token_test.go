package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenIssueAndVerify(t *testing.T) {
	t.Parallel()

	ti := NewTokenIssuer([]byte("super-secret"), time.Hour)

	tok, err := ti.Issue("a@b.com")
	require.NoError(t, err)

	subject, err := ti.Verify(tok)
	require.NoError(t, err)
	require.Equal(t, "a@b.com", subject)
}

func TestTokenVerifyExpired(t *testing.T) {
	t.Parallel()

	expired := NewTokenIssuer([]byte("super-secret"), -time.Minute)
	tok, err := expired.Issue("a@b.com")
	require.NoError(t, err)

	ti := NewTokenIssuer([]byte("super-secret"), time.Hour)
	_, err = ti.Verify(tok)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenVerifyWrongSecret(t *testing.T) {
	t.Parallel()

	other := NewTokenIssuer([]byte("other-secret"), time.Hour)
	tok, err := other.Issue("a@b.com")
	require.NoError(t, err)

	ti := NewTokenIssuer([]byte("super-secret"), time.Hour)
	_, err = ti.Verify(tok)
	require.ErrorIs(t, err, ErrTokenSignature)
}

func TestTokenVerifyMalformed(t *testing.T) {
	t.Parallel()

	ti := NewTokenIssuer([]byte("super-secret"), time.Hour)
	_, err := ti.Verify("not-a-token")
	require.ErrorIs(t, err, ErrTokenMalformed)
}
