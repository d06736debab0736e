package lock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"bitinglip/pkg/logger"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const (
	defaultTTL         = 30 * time.Second
	lockAcquireTimeout = 5 * time.Second
	lockExtendInterval = 10 * time.Second
)

const releaseScript = `
	if redis.call("get", KEYS[1]) == ARGV[1] then
		return redis.call("del", KEYS[1])
	else
		return 0
	end
`

const renewScript = `
	if redis.call("get", KEYS[1]) == ARGV[1] then
		return redis.call("pexpire", KEYS[1], ARGV[2])
	else
		return 0
	end
`

// DistributedLock lock shared by mock replicas
type DistributedLock interface {
	TryLock(ctx context.Context) (bool, error)
	Unlock(ctx context.Context) error
	IsHeld() bool
}

// Leaser claims a key for one TTL. The claim is never released early, so
// instances sharing the key take turns no faster than once per TTL.
type Leaser interface {
	TryLease(ctx context.Context) (bool, error)
}

// RedisDistributedLock SET NX based lock. With a nil client it always succeeds
// (single-instance mode).
type RedisDistributedLock struct {
	client    *redis.Client
	lockKey   string
	lockValue string
	ttl       time.Duration

	mu        sync.Mutex
	isHeld    bool
	stopRenew chan struct{}
}

// NewRedisDistributedLock creates a lock on lockKey
func NewRedisDistributedLock(client *redis.Client, lockKey string) *RedisDistributedLock {
	return &RedisDistributedLock{
		client:    client,
		lockKey:   lockKey,
		lockValue: fmt.Sprintf("%s-%s", lockKey, uuid.NewString()),
		ttl:       defaultTTL,
	}
}

// WithTTL overrides the lock TTL
func (l *RedisDistributedLock) WithTTL(ttl time.Duration) *RedisDistributedLock {
	if ttl > 0 {
		l.ttl = ttl
	}
	return l
}

// TryLock attempts to acquire the lock without waiting
func (l *RedisDistributedLock) TryLock(ctx context.Context) (bool, error) {
	if l.client == nil {
		l.mu.Lock()
		l.isHeld = true
		l.mu.Unlock()
		return true, nil
	}

	acquireCtx, cancel := context.WithTimeout(ctx, lockAcquireTimeout)
	defer cancel()

	acquired, err := l.client.SetNX(acquireCtx, l.lockKey, l.lockValue, l.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !acquired {
		logger.DebugCtx(ctx, "lock %s already held by another instance", l.lockKey)
		return false, nil
	}

	l.mu.Lock()
	l.isHeld = true
	l.stopRenew = make(chan struct{})
	stop := l.stopRenew
	l.mu.Unlock()

	go l.renew(ctx, stop)
	return true, nil
}

// TryLease claims the key for the lock TTL without renewal. Unlock does not
// release a lease; it expires on its own.
func (l *RedisDistributedLock) TryLease(ctx context.Context) (bool, error) {
	if l.client == nil {
		return true, nil
	}

	acquireCtx, cancel := context.WithTimeout(ctx, lockAcquireTimeout)
	defer cancel()

	acquired, err := l.client.SetNX(acquireCtx, l.lockKey, l.lockValue, l.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire lease: %w", err)
	}
	if !acquired {
		logger.DebugCtx(ctx, "lease %s held by another instance", l.lockKey)
	}
	return acquired, nil
}

// Unlock releases the lock if this instance still owns it
func (l *RedisDistributedLock) Unlock(ctx context.Context) error {
	l.mu.Lock()
	if !l.isHeld {
		l.mu.Unlock()
		return nil
	}
	l.isHeld = false
	if l.stopRenew != nil {
		close(l.stopRenew)
		l.stopRenew = nil
	}
	l.mu.Unlock()

	if l.client == nil {
		return nil
	}

	result, err := l.client.Eval(ctx, releaseScript, []string{l.lockKey}, l.lockValue).Int64()
	if err != nil {
		return fmt.Errorf("failed to release lock: %w", err)
	}
	if result == 0 {
		logger.WarnCtx(ctx, "lock %s was already released or taken over", l.lockKey)
	}
	return nil
}

// IsHeld reports whether this instance holds the lock
func (l *RedisDistributedLock) IsHeld() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.isHeld
}

func (l *RedisDistributedLock) renew(ctx context.Context, stop <-chan struct{}) {
	ticker := time.NewTicker(lockExtendInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			result, err := l.client.Eval(ctx, renewScript, []string{l.lockKey}, l.lockValue, l.ttl.Milliseconds()).Int64()
			if err != nil || result == 0 {
				logger.WarnCtx(ctx, "lock %s renewal failed, lock lost: %v", l.lockKey, err)
				l.mu.Lock()
				l.isHeld = false
				l.mu.Unlock()
				return
			}
		}
	}
}
