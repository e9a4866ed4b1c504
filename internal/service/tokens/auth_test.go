package tokens

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserJWT(t *testing.T) {
	key := []byte("secret")

	t.Run("round trip", func(t *testing.T) {
		token, err := GenerateUserJWT(42, RoleCompany, time.Hour, key)
		require.NoError(t, err)

		claims, err := ValidateUserJWT(token, key)
		require.NoError(t, err)
		assert.Equal(t, int64(42), claims.ID)
		assert.Equal(t, RoleCompany, claims.Role)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := GenerateUserJWT(42, RoleUser, -time.Minute, key)
		require.NoError(t, err)

		_, err = ValidateUserJWT(token, key)
		assert.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("wrong key", func(t *testing.T) {
		token, err := GenerateUserJWT(42, RoleUser, time.Hour, key)
		require.NoError(t, err)

		_, err = ValidateUserJWT(token, []byte("other"))
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("unknown role", func(t *testing.T) {
		token, err := GenerateUserJWT(42, Role("admin"), time.Hour, key)
		require.NoError(t, err)

		_, err = ValidateUserJWT(token, key)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
