package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueParseRoundTrip(t *testing.T) {
	svc := New("test-secret", time.Hour)

	tok, err := svc.Issue("ana@freshcut.test", "BARBER")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := svc.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "ana@freshcut.test", claims.Subject)
	assert.Equal(t, "BARBER", claims.Role)
}

func TestParseExpiredToken(t *testing.T) {
	svc := New("test-secret", -time.Minute)

	tok, err := svc.Issue("user@freshcut.test", "USER")
	require.NoError(t, err)

	_, err = svc.Parse(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseWrongSecret(t *testing.T) {
	issuer := New("secret-a", time.Hour)
	verifier := New("secret-b", time.Hour)

	tok, err := issuer.Issue("user@freshcut.test", "USER")
	require.NoError(t, err)

	_, err = verifier.Parse(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseGarbage(t *testing.T) {
	svc := New("test-secret", time.Hour)

	_, err := svc.Parse("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
