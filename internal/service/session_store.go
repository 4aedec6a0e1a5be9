package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	sessionKeyPrefix = "session:"

	// Timeout for individual Redis operations
	sessionStoreTimeout = 5 * time.Second

	// Keys fetched per SCAN round when revoking every session of a user
	sessionScanCount = 100
)

// SessionStore is the server-side registry of issued tokens. A token is only
// honoured while its session id is present; logout and account changes revoke it.
type SessionStore interface {
	Save(ctx context.Context, userID int, tokenID string, ttl time.Duration) error
	Exists(ctx context.Context, userID int, tokenID string) (bool, error)
	Revoke(ctx context.Context, userID int, tokenID string) error
	RevokeAll(ctx context.Context, userID int) error
}

func sessionKey(userID int, tokenID string) string {
	return fmt.Sprintf("%s%d:%s", sessionKeyPrefix, userID, tokenID)
}

func userSessionPrefix(userID int) string {
	return fmt.Sprintf("%s%d:", sessionKeyPrefix, userID)
}

// =============================================================================
// Redis
// =============================================================================

type redisSessionStore struct {
	redisClient *redis.Client
	log         *logrus.Logger
}

func NewRedisSessionStore(redisClient *redis.Client, log *logrus.Logger) SessionStore {
	return &redisSessionStore{
		redisClient: redisClient,
		log:         log,
	}
}

func (s *redisSessionStore) Save(ctx context.Context, userID int, tokenID string, ttl time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, sessionStoreTimeout)
	defer cancel()

	if err := s.redisClient.Set(ctx, sessionKey(userID, tokenID), "valid", ttl).Err(); err != nil {
		s.log.Warnf("Failed to store session in Redis: %+v", err)
		return err
	}
	return nil
}

func (s *redisSessionStore) Exists(ctx context.Context, userID int, tokenID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, sessionStoreTimeout)
	defer cancel()

	exists, err := s.redisClient.Exists(ctx, sessionKey(userID, tokenID)).Result()
	if err != nil {
		s.log.Warnf("Failed to check session in Redis: %+v", err)
		return false, err
	}
	return exists > 0, nil
}

func (s *redisSessionStore) Revoke(ctx context.Context, userID int, tokenID string) error {
	ctx, cancel := context.WithTimeout(ctx, sessionStoreTimeout)
	defer cancel()

	if err := s.redisClient.Del(ctx, sessionKey(userID, tokenID)).Err(); err != nil {
		s.log.Warnf("Failed to delete session from Redis: %+v", err)
		return err
	}
	return nil
}

// RevokeAll walks the user's keys with SCAN and deletes each batch in one pipeline
func (s *redisSessionStore) RevokeAll(ctx context.Context, userID int) error {
	ctx, cancel := context.WithTimeout(ctx, sessionStoreTimeout)
	defer cancel()

	pattern := userSessionPrefix(userID) + "*"
	var cursor uint64
	for {
		keys, next, err := s.redisClient.Scan(ctx, cursor, pattern, sessionScanCount).Result()
		if err != nil {
			s.log.Warnf("Failed to scan sessions in Redis: %+v", err)
			return err
		}

		if len(keys) > 0 {
			pipe := s.redisClient.Pipeline()
			pipe.Del(ctx, keys...)
			if _, err := pipe.Exec(ctx); err != nil {
				s.log.Warnf("Failed to delete sessions from Redis: %+v", err)
				return err
			}
		}

		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}

// =============================================================================
// In-process
// =============================================================================

type memorySessionStore struct {
	cache *cache.Cache
}

// NewMemorySessionStore keeps sessions in process memory. Sessions do not
// survive a restart and are not shared between instances.
func NewMemorySessionStore(cleanupInterval time.Duration) SessionStore {
	return &memorySessionStore{
		cache: cache.New(cache.NoExpiration, cleanupInterval),
	}
}

func (s *memorySessionStore) Save(_ context.Context, userID int, tokenID string, ttl time.Duration) error {
	s.cache.Set(sessionKey(userID, tokenID), struct{}{}, ttl)
	return nil
}

func (s *memorySessionStore) Exists(_ context.Context, userID int, tokenID string) (bool, error) {
	_, found := s.cache.Get(sessionKey(userID, tokenID))
	return found, nil
}

func (s *memorySessionStore) Revoke(_ context.Context, userID int, tokenID string) error {
	s.cache.Delete(sessionKey(userID, tokenID))
	return nil
}

func (s *memorySessionStore) RevokeAll(_ context.Context, userID int) error {
	prefix := userSessionPrefix(userID)
	for key := range s.cache.Items() {
		if strings.HasPrefix(key, prefix) {
			s.cache.Delete(key)
		}
	}
	return nil
}
