package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/pkg/jwt"
)

func TestIssueAndVerify(t *testing.T) {
	m := jwt.NewManager("secret", time.Hour)

	token, err := m.Issue("alice", "64f1b3c2a1d2e3f4a5b6c7d8")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "64f1b3c2a1d2e3f4a5b6c7d8", claims.UserID)
}

func TestVerifyRejectsForgedToken(t *testing.T) {
	issuer := jwt.NewManager("secret-a", time.Hour)
	verifier := jwt.NewManager("secret-b", time.Hour)

	token, err := issuer.Issue("alice", "64f1b3c2a1d2e3f4a5b6c7d8")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	m := jwt.NewManager("secret", -time.Minute)

	token, err := m.Issue("alice", "64f1b3c2a1d2e3f4a5b6c7d8")
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	m := jwt.NewManager("secret", time.Hour)

	_, err := m.Verify("not-a-token")
	assert.Error(t, err)
}
