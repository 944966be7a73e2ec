//go:build unit

package password_test

import (
	"strings"
	"testing"

	"client-scheduler/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPassword(t *testing.T) {
	t.Run("hash and compare round trip", func(t *testing.T) {
		hash, err := password.HashPassword("password123")
		require.NoError(t, err)
		assert.NotEqual(t, "password123", hash)

		assert.NoError(t, password.ComparePassword(hash, "password123"))
	})

	t.Run("wrong password", func(t *testing.T) {
		hash, err := password.HashPassword("password123")
		require.NoError(t, err)

		assert.ErrorIs(t, password.ComparePassword(hash, "wrong"), password.ErrComparisonFailed)
	})

	t.Run("over bcrypt length cap", func(t *testing.T) {
		_, err := password.HashPassword(strings.Repeat("a", 73))
		assert.ErrorIs(t, err, password.ErrInvalidPassword)
	})

	t.Run("empty inputs", func(t *testing.T) {
		_, err := password.HashPassword("")
		assert.ErrorIs(t, err, password.ErrInvalidPassword)

		assert.ErrorIs(t, password.ComparePassword("", "x"), password.ErrInvalidPassword)
		assert.ErrorIs(t, password.ComparePassword("hash", ""), password.ErrInvalidPassword)
	})
}
