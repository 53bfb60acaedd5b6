package jwt

import (
	"testing"
	"time"

	"dealer-report-srv/pkg/scope"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestNew_RejectsShortSecret(t *testing.T) {
	_, err := New(Config{SecretKey: "short"})
	assert.Error(t, err)
}

func TestManager_RoundTrip(t *testing.T) {
	m, err := New(Config{SecretKey: testSecret, Issuer: "dealer-auth", Audience: []string{"dealer-report-srv"}, TTL: time.Hour})
	require.NoError(t, err)

	token, err := m.CreateToken(scope.Payload{UserID: "u1", Username: "a@b.c", Role: "manager"})
	require.NoError(t, err)

	p, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", p.UserID)
	assert.Equal(t, "u1", p.Subject)
	assert.Equal(t, "manager", p.Role)
}

func TestManager_RejectsForeignIssuer(t *testing.T) {
	issuer, err := New(Config{SecretKey: testSecret, Issuer: "someone-else", TTL: time.Hour})
	require.NoError(t, err)
	verifier, err := New(Config{SecretKey: testSecret, Issuer: "dealer-auth", TTL: time.Hour})
	require.NoError(t, err)

	token, err := issuer.CreateToken(scope.Payload{UserID: "u1"})
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}

func TestManager_RejectsExpired(t *testing.T) {
	m, err := New(Config{SecretKey: testSecret, TTL: -time.Minute})
	require.NoError(t, err)

	token, err := m.CreateToken(scope.Payload{UserID: "u1"})
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.Error(t, err)
}
