package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAndValidate(t *testing.T) {
	s := NewJWTService("test-secret", []string{"admin-1", "admin-2"})

	token, err := s.GenerateJWT("admin-1", time.Now().Add(time.Hour))
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := s.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "admin-1", claims.AdminID)
}

func TestValidateTokenErrors(t *testing.T) {
	s := NewJWTService("test-secret", []string{"admin-1"})

	t.Run("Expired token", func(t *testing.T) {
		token, err := s.GenerateJWT("admin-1", time.Now().Add(-time.Hour))
		assert.NoError(t, err)

		_, err = s.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("Wrong secret", func(t *testing.T) {
		other := NewJWTService("other-secret", []string{"admin-1"})
		token, err := other.GenerateJWT("admin-1", time.Now().Add(time.Hour))
		assert.NoError(t, err)

		_, err = s.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("Unlisted admin", func(t *testing.T) {
		// A valid signature is not enough: the id must be allow-listed.
		token, err := s.GenerateJWT("intruder", time.Now().Add(time.Hour))
		assert.NoError(t, err)

		_, err = s.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("Garbage token", func(t *testing.T) {
		_, err := s.ValidateToken("not.a.token")
		assert.Error(t, err)
	})
}
