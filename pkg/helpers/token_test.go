package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)

	t.Run("round-trips the session id", func(t *testing.T) {
		token, exp, err := m.GenerateSessionToken("sid-123")
		require.NoError(t, err)
		assert.True(t, exp.After(time.Now()))

		claims, err := m.ParseSessionToken(token)
		require.NoError(t, err)
		assert.Equal(t, "sid-123", claims.SessionID)
	})

	t.Run("rejects a token signed with another secret", func(t *testing.T) {
		other := NewTokenManager("other", time.Hour)
		token, _, err := other.GenerateSessionToken("sid-123")
		require.NoError(t, err)

		_, err = m.ParseSessionToken(token)
		assert.Error(t, err)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		expired := NewTokenManager("secret", -time.Minute)
		token, _, err := expired.GenerateSessionToken("sid-123")
		require.NoError(t, err)

		_, err = m.ParseSessionToken(token)
		assert.Error(t, err)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := m.ParseSessionToken("not.a.token")
		assert.Error(t, err)
	})
}
