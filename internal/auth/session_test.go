package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginValidPassword(t *testing.T) {
	m := NewManager("secret", 24*time.Hour)

	session, err := m.Login("secret")
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.True(t, session.ExpiresAt.After(session.CreatedAt))

	got, err := m.Verify(session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.Token, got.Token)
}

func TestLoginWrongPassword(t *testing.T) {
	m := NewManager("secret", 24*time.Hour)
	_, err := m.Login("wrong")
	assert.ErrorIs(t, err, ErrInvalidPassword)
}

func TestVerifyUnknownToken(t *testing.T) {
	m := NewManager("secret", 24*time.Hour)
	_, err := m.Verify("no-such-token")
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestVerifyExpiredToken(t *testing.T) {
	m := NewManager("secret", -time.Minute)
	session, err := m.Login("secret")
	require.NoError(t, err)

	_, err = m.Verify(session.Token)
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestLogout(t *testing.T) {
	m := NewManager("secret", 24*time.Hour)
	session, err := m.Login("secret")
	require.NoError(t, err)

	m.Logout(session.Token)
	_, err = m.Verify(session.Token)
	assert.ErrorIs(t, err, ErrSessionExpired)

	// Unknown token is a no-op.
	m.Logout("no-such-token")
}

func TestSessionsAreIndependent(t *testing.T) {
	m := NewManager("secret", 24*time.Hour)

	a, err := m.Login("secret")
	require.NoError(t, err)
	b, err := m.Login("secret")
	require.NoError(t, err)
	assert.NotEqual(t, a.Token, b.Token)

	m.Logout(a.Token)
	_, err = m.Verify(b.Token)
	assert.NoError(t, err)
}

func TestSessionValid(t *testing.T) {
	now := time.Now()
	s := Session{CreatedAt: now, ExpiresAt: now.Add(time.Hour)}
	assert.True(t, s.Valid(now))
	assert.True(t, s.Valid(now.Add(59*time.Minute)))
	assert.False(t, s.Valid(now.Add(time.Hour)))
}
