package session

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

func sessionKey(sid string) string {
	return "admin:session:" + sid
}

// RedisStore keeps sessions as Redis hashes with a TTL, one key per session id.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Create(ctx context.Context, sess *Session, ttl time.Duration) error {
	key := sessionKey(sess.ID)
	fields := map[string]any{
		"username":         sess.Username,
		"is_authenticated": strconv.FormatBool(sess.IsAuthenticated),
		"created_at":       sess.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	pipe := s.rdb.Pipeline()
	pipe.HSet(ctx, key, fields)
	pipe.Expire(ctx, key, ttl)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *RedisStore) Get(ctx context.Context, sid string) (*Session, error) {
	data, err := s.rdb.HGetAll(ctx, sessionKey(sid)).Result()
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, ErrNotFound
	}
	sess := &Session{
		ID:              sid,
		Username:        data["username"],
		IsAuthenticated: data["is_authenticated"] == "true",
	}
	if t, err := time.Parse(time.RFC3339Nano, data["created_at"]); err == nil {
		sess.CreatedAt = t
	}
	return sess, nil
}

func (s *RedisStore) Destroy(ctx context.Context, sid string) error {
	return s.rdb.Del(ctx, sessionKey(sid)).Err()
}

var _ Store = (*RedisStore)(nil)
