package security_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forum-api/forum-api/domain"
	"github.com/forum-api/forum-api/internal/security"
)

func TestJWTTokenManager(t *testing.T) {
	manager := security.NewJWTTokenManager("access-secret", "refresh-secret", time.Hour)
	payload := domain.TokenPayload{ID: "user-123", Username: "dicoding"}

	t.Run("access token round trip", func(t *testing.T) {
		token, err := manager.CreateAccessToken(payload)
		require.NoError(t, err)

		got, err := manager.VerifyAccessToken(token)
		require.NoError(t, err)
		assert.Equal(t, payload, got)
	})

	t.Run("refresh token verifies and decodes", func(t *testing.T) {
		token, err := manager.CreateRefreshToken(payload)
		require.NoError(t, err)

		require.NoError(t, manager.VerifyRefreshToken(token))
		got, err := manager.DecodePayload(token)
		require.NoError(t, err)
		assert.Equal(t, payload, got)
	})

	t.Run("refresh tokens are unique", func(t *testing.T) {
		first, err := manager.CreateRefreshToken(payload)
		require.NoError(t, err)
		second, err := manager.CreateRefreshToken(payload)
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})

	t.Run("keys are not interchangeable", func(t *testing.T) {
		access, err := manager.CreateAccessToken(payload)
		require.NoError(t, err)

		err = manager.VerifyRefreshToken(access)
		assert.ErrorIs(t, err, domain.ErrBadParamInput)
		assert.EqualError(t, err, "refresh token tidak valid")
	})

	t.Run("expired access token", func(t *testing.T) {
		expired := security.NewJWTTokenManager("access-secret", "refresh-secret", -time.Minute)
		token, err := expired.CreateAccessToken(payload)
		require.NoError(t, err)

		_, err = manager.VerifyAccessToken(token)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := manager.VerifyAccessToken("not-a-token")
		assert.ErrorIs(t, err, domain.ErrUnauthorized)

		_, err = manager.DecodePayload("not-a-token")
		assert.Error(t, err)
	})
}
