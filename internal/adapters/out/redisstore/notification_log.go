// Package redisstore implements the Redis-backed notification log used by
// the route watch job to announce each newly available route once.
package redisstore

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

// DefaultEntryTTL is how long an announcement is remembered. Entries expire
// on their own; a route still open after the TTL may be announced again.
const DefaultEntryTTL = 24 * time.Hour

const keyPrefix = "route_notified:"

// NotificationLog implements ports.NotificationLog on Redis with SETNX
// semantics, so concurrent watchers agree on a single first announcement.
type NotificationLog struct {
	client *redis.Client
	ttl    time.Duration
}

// NewNotificationLog creates a notification log on the given Redis client.
// A non-positive ttl falls back to DefaultEntryTTL.
func NewNotificationLog(client *redis.Client, ttl time.Duration) *NotificationLog {
	if ttl <= 0 {
		ttl = DefaultEntryTTL
	}
	return &NotificationLog{client: client, ttl: ttl}
}

var _ ports.NotificationLog = (*NotificationLog)(nil)

// MarkNotified records the route as announced. Returns true when this call
// was the first to record it within the entry TTL.
func (l *NotificationLog) MarkNotified(ctx context.Context, routeID kernel.UUID) (bool, error) {
	if err := routeID.Validate(); err != nil {
		return false, err
	}

	return l.client.SetNX(ctx, keyPrefix+routeID.String(), 1, l.ttl).Result()
}
