// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-session-auth/internal/config"
	"github.com/MKhiriev/go-session-auth/models"
	"github.com/redis/go-redis/v9"
)

// ttlGrace keeps a key alive slightly past the policy window so that Redis
// never drops a session the policy still accepts.
const ttlGrace = time.Second

// destroyScript deletes the session record and drops the user index only
// while it still points at that session. KEYS: session key, user key.
// ARGV: session id.
var destroyScript = redis.NewScript(`
local deleted = redis.call("DEL", KEYS[1])
if redis.call("GET", KEYS[2]) == ARGV[1] then
	redis.call("DEL", KEYS[2])
end
return deleted
`)

// RedisStore keeps sessions in Redis. Every session is a JSON record at
// "<prefix>:session:<id>" and the user's current session id is indexed at
// "<prefix>:user:<user id>". Keys carry a TTL when the policy has a window.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
	policy ExpiryPolicy
	opts   options
}

// NewRedisStore constructs a [RedisStore] using client.
func NewRedisStore(client redis.UniversalClient, prefix string, policy ExpiryPolicy, opts ...Option) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: prefix,
		policy: policy,
		opts:   newOptions(opts),
	}
}

// NewRedisClient connects to the Redis server described by cfg and checks
// the connection.
func NewRedisClient(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("error connecting redis: %w", err)
	}
	return client, nil
}

type redisRecord struct {
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Create stores the new record first and then swaps the user index with
// SET ... GET, so concurrent logins of one user each remove the session
// they displaced and only the last index value stays live.
// SET with GET needs Redis 6.2 or later.
func (r *RedisStore) Create(ctx context.Context, userID string) (string, error) {
	if userID == "" {
		return "", ErrInvalidUserID
	}

	id := r.opts.newID()
	payload, err := json.Marshal(redisRecord{UserID: userID, CreatedAt: r.opts.now()})
	if err != nil {
		return "", fmt.Errorf("error encoding session: %w", err)
	}

	ttl := r.ttl()
	if err = r.client.Set(ctx, r.sessionKey(id), payload, ttl).Err(); err != nil {
		return "", fmt.Errorf("error storing session: %w", err)
	}

	prev, err := r.client.SetArgs(ctx, r.userKey(userID), id, redis.SetArgs{TTL: ttl, Get: true}).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		r.client.Del(ctx, r.sessionKey(id))
		return "", fmt.Errorf("error updating user session index: %w", err)
	}

	if prev != "" && prev != id {
		if err = r.client.Del(ctx, r.sessionKey(prev)).Err(); err != nil {
			return "", fmt.Errorf("error removing previous session: %w", err)
		}
	}

	return id, nil
}

func (r *RedisStore) Resolve(ctx context.Context, sessionID string) (string, error) {
	if sessionID == "" {
		return "", ErrSessionNotFound
	}

	rec, err := r.load(ctx, sessionID)
	if err != nil {
		return "", err
	}

	s := models.Session{SessionID: sessionID, UserID: rec.UserID, CreatedAt: rec.CreatedAt}
	if r.policy.Expired(s, r.opts.now()) {
		return "", ErrSessionNotFound
	}
	return rec.UserID, nil
}

func (r *RedisStore) Destroy(ctx context.Context, sessionID string) (bool, error) {
	if sessionID == "" {
		return false, nil
	}

	rec, err := r.load(ctx, sessionID)
	if errors.Is(err, ErrSessionNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	deleted, err := destroyScript.Run(ctx, r.client,
		[]string{r.sessionKey(sessionID), r.userKey(rec.UserID)}, sessionID).Int64()
	if err != nil {
		return false, fmt.Errorf("error destroying session: %w", err)
	}

	return deleted > 0, nil
}

// Close closes the underlying client.
func (r *RedisStore) Close() error {
	return r.client.Close()
}

func (r *RedisStore) load(ctx context.Context, sessionID string) (redisRecord, error) {
	payload, err := r.client.Get(ctx, r.sessionKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return redisRecord{}, ErrSessionNotFound
	}
	if err != nil {
		return redisRecord{}, fmt.Errorf("error reading session: %w", err)
	}

	var rec redisRecord
	if err = json.Unmarshal(payload, &rec); err != nil {
		return redisRecord{}, fmt.Errorf("error decoding session: %w", err)
	}
	return rec, nil
}

func (r *RedisStore) ttl() time.Duration {
	if r.policy.Window <= 0 {
		return 0
	}
	return r.policy.Window + ttlGrace
}

func (r *RedisStore) sessionKey(id string) string {
	return r.prefix + ":session:" + id
}

func (r *RedisStore) userKey(userID string) string {
	return r.prefix + ":user:" + userID
}
