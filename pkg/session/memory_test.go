package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("create then get round-trips", func(t *testing.T) {
		store := NewMemoryStore()
		sess := &Session{ID: "sid-1", Username: "admin", IsAuthenticated: true, CreatedAt: time.Now()}
		require.NoError(t, store.Create(ctx, sess, time.Hour))

		got, err := store.Get(ctx, "sid-1")
		require.NoError(t, err)
		assert.Equal(t, "admin", got.Username)
		assert.True(t, got.IsAuthenticated)
	})

	t.Run("unknown id is ErrNotFound", func(t *testing.T) {
		store := NewMemoryStore()
		_, err := store.Get(ctx, "ghost")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("destroy removes the session", func(t *testing.T) {
		store := NewMemoryStore()
		require.NoError(t, store.Create(ctx, &Session{ID: "sid-2"}, time.Hour))
		require.NoError(t, store.Destroy(ctx, "sid-2"))

		_, err := store.Get(ctx, "sid-2")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("expired sessions read as absent", func(t *testing.T) {
		store := NewMemoryStore()
		require.NoError(t, store.Create(ctx, &Session{ID: "sid-3"}, -time.Second))

		_, err := store.Get(ctx, "sid-3")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("destroy of a missing session is a no-op", func(t *testing.T) {
		store := NewMemoryStore()
		assert.NoError(t, store.Destroy(ctx, "never-existed"))
	})
}
