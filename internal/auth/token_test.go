package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify_RoundTrip(t *testing.T) {
	m := NewTokenManager([]byte("super-secret"), clockwork.NewFakeClock())

	token, err := m.Issue("123")
	require.NoError(t, err)

	telegramID, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "123", telegramID)
}

func TestVerify_AcceptedUntilExpiry(t *testing.T) {
	clock := clockwork.NewFakeClock()
	m := NewTokenManager([]byte("super-secret"), clock)

	token, err := m.Issue("123")
	require.NoError(t, err)

	// Just short of 30 days the token is still good.
	clock.Advance(TokenTTL - time.Minute)
	_, err = m.Verify(token)
	assert.NoError(t, err)

	// Past 30 days it is rejected.
	clock.Advance(2 * time.Minute)
	_, err = m.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_WrongSecret(t *testing.T) {
	clock := clockwork.NewFakeClock()
	issuer := NewTokenManager([]byte("right-secret"), clock)
	verifier := NewTokenManager([]byte("wrong-secret"), clock)

	token, err := issuer.Issue("123")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_TamperedToken(t *testing.T) {
	m := NewTokenManager([]byte("super-secret"), clockwork.NewFakeClock())

	token, err := m.Issue("123")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	parts[1] = parts[1][:len(parts[1])-2] + "xx"

	_, err = m.Verify(strings.Join(parts, "."))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Malformed(t *testing.T) {
	m := NewTokenManager([]byte("super-secret"), clockwork.NewFakeClock())

	for _, token := range []string{"", "not.a.jwt", "garbage"} {
		_, err := m.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", token)
	}
}
