package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerifyToken(t *testing.T) {
	manager := NewManager("test-secret-key", time.Hour)

	token, err := manager.GenerateToken("budi.santoso", 7, "secretary")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "budi.santoso", claims.Username)
	assert.Equal(t, uint(7), claims.MemberID)
	assert.Equal(t, "secretary", claims.Role)
	assert.Equal(t, "budi.santoso", claims.Subject)
}

func TestVerifyToken_ExpiredToken(t *testing.T) {
	manager := NewManager("test-secret-key", -time.Minute)

	token, err := manager.GenerateToken("budi.santoso", 7, "member")
	require.NoError(t, err)

	_, err = manager.VerifyToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	manager := NewManager("test-secret-key", time.Hour)
	other := NewManager("other-secret-key", time.Hour)

	token, err := manager.GenerateToken("budi.santoso", 7, "member")
	require.NoError(t, err)

	_, err = other.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyToken_Malformed(t *testing.T) {
	manager := NewManager("test-secret-key", time.Hour)

	_, err := manager.VerifyToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
