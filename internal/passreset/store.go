package passreset

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrTokenNotFound covers unknown, expired, and already-consumed tokens.
// Callers cannot tell these apart, which is the point.
var ErrTokenNotFound = errors.New("reset token not found")

// TokenStore maps an opaque reset token to the user it was issued for.
// Tokens expire after the configured TTL and are single use: Consume
// removes the token as it reads it.
type TokenStore interface {
	Save(ctx context.Context, token string, userID int64, ttl time.Duration) error
	Peek(ctx context.Context, token string) (int64, error)
	Consume(ctx context.Context, token string) (int64, error)
}

const tokenKeyPrefix = "passreset:token:"

// RedisTokenStore keeps reset tokens in Redis so they expire on their own
// and survive API restarts.
type RedisTokenStore struct {
	rdb *redis.Client
}

func NewRedisTokenStore(rdb *redis.Client) *RedisTokenStore {
	return &RedisTokenStore{rdb: rdb}
}

func (s *RedisTokenStore) Save(ctx context.Context, token string, userID int64, ttl time.Duration) error {
	return s.rdb.Set(ctx, tokenKeyPrefix+token, userID, ttl).Err()
}

func (s *RedisTokenStore) Peek(ctx context.Context, token string) (int64, error) {
	return parseUserID(s.rdb.Get(ctx, tokenKeyPrefix+token).Result())
}

func (s *RedisTokenStore) Consume(ctx context.Context, token string) (int64, error) {
	return parseUserID(s.rdb.GetDel(ctx, tokenKeyPrefix+token).Result())
}

func parseUserID(raw string, err error) (int64, error) {
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ErrTokenNotFound
		}
		return 0, err
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, ErrTokenNotFound
	}
	return id, nil
}

// MemoryTokenStore backs tests and local runs without Redis.
type MemoryTokenStore struct {
	mu     sync.Mutex
	tokens map[string]memoryToken
	clock  func() time.Time
}

type memoryToken struct {
	userID    int64
	expiresAt time.Time
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{tokens: make(map[string]memoryToken), clock: time.Now}
}

func (s *MemoryTokenStore) Save(ctx context.Context, token string, userID int64, ttl time.Duration) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = memoryToken{userID: userID, expiresAt: s.clock().Add(ttl)}
	return nil
}

func (s *MemoryTokenStore) Peek(ctx context.Context, token string) (int64, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lookup(token, false)
}

func (s *MemoryTokenStore) Consume(ctx context.Context, token string) (int64, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lookup(token, true)
}

func (s *MemoryTokenStore) lookup(token string, remove bool) (int64, error) {
	v, ok := s.tokens[token]
	if !ok {
		return 0, ErrTokenNotFound
	}
	if !s.clock().Before(v.expiresAt) {
		delete(s.tokens, token)
		return 0, ErrTokenNotFound
	}
	if remove {
		delete(s.tokens, token)
	}
	return v.userID, nil
}
