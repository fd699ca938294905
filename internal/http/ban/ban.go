// Package ban tracks failed logins in Redis and temporarily bans targets
// that keep failing. A nil Tracker (no Redis configured) disables the whole
// mechanism.
package ban

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	strikeKeyPrefix = "login:strikes:"
	banKeyPrefix    = "login:ban:"
)

type Tracker struct {
	rdb        *redis.Client
	maxStrikes int
	window     time.Duration
	cooldown   time.Duration
}

func NewTracker(rdb *redis.Client) *Tracker {
	if rdb == nil {
		return nil
	}
	return &Tracker{
		rdb:        rdb,
		maxStrikes: 5,
		window:     10 * time.Minute,
		cooldown:   30 * time.Minute,
	}
}

// RecordFailure adds a strike for a target (username or client IP) and bans
// it once the strike count reaches the threshold within the window.
func (t *Tracker) RecordFailure(ctx context.Context, target string) {
	if t == nil {
		return
	}

	key := strikeKeyPrefix + target
	strikes, err := t.rdb.Incr(ctx, key).Result()
	if err != nil {
		log.Printf("ban: could not record strike for %s: %v", target, err)
		return
	}
	if strikes == 1 {
		t.rdb.Expire(ctx, key, t.window)
	}
	if int(strikes) >= t.maxStrikes {
		if err := t.rdb.Set(ctx, banKeyPrefix+target, strikes, t.cooldown).Err(); err != nil {
			log.Printf("ban: could not ban %s: %v", target, err)
			return
		}
		log.Printf("ban: %s blocked after %d failed logins", target, strikes)
	}
}

// Banned reports whether a target is currently in its cooldown window. Redis
// trouble fails open: a broken tracker must not lock every operator out.
func (t *Tracker) Banned(ctx context.Context, target string) bool {
	if t == nil {
		return false
	}

	n, err := t.rdb.Exists(ctx, banKeyPrefix+target).Result()
	if err != nil {
		log.Printf("ban: check failed for %s: %v", target, err)
		return false
	}
	return n > 0
}

// ClearStrikes forgets past failures after a successful login.
func (t *Tracker) ClearStrikes(ctx context.Context, target string) {
	if t == nil {
		return
	}
	t.rdb.Del(ctx, strikeKeyPrefix+target)
}
