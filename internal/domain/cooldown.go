package domain

import (
	"context"
	"fmt"
	"time"
)

//go:generate mockgen -destination mocks/mock_cooldown_store.go -package mocks github.com/inboxwarm/inboxwarm/internal/domain CooldownStore

const (
	// BlockedKeyPrefix flags a sender whose credentials were just
	// rejected. Short horizon so transiently wrong credentials
	// self-heal the same day.
	BlockedKeyPrefix = "auth_fail:"
	BlockedTTL       = 8 * time.Hour

	// CooldownKeyPrefix is the longer quarantine set alongside the
	// block on the same auth failure.
	CooldownKeyPrefix = "warmup_cooldown:"
	CooldownTTL       = 48 * time.Hour

	// BucketKeyPrefix keys the hour-coalescing hash. TTL is twice the
	// hour so the bucket being drained overlaps the one being filled.
	BucketKeyPrefix = "email_batch:"
	BucketTTL       = 2 * time.Hour
)

// HourBucketKey returns the coalescing bucket key for the hour containing t
func HourBucketKey(t time.Time) string {
	return fmt.Sprintf("%s%d", BucketKeyPrefix, t.UnixMilli()/time.Hour.Milliseconds())
}

// CooldownStore holds the per-sender admission flags and the
// hour-bucketed coalescing set of pending work. It is the only state
// shared between the ingest and batch loops, and between processes.
type CooldownStore interface {
	// MarkBlocked sets the 8h auth-failure flag for a sender
	MarkBlocked(ctx context.Context, addr string) error
	// IsBlocked reports whether the sender is currently blocked
	IsBlocked(ctx context.Context, addr string) (bool, error)
	// ClearBlocked removes the auth-failure flag
	ClearBlocked(ctx context.Context, addr string) error

	// MarkCooldown sets the 2d extended cooldown for a sender
	MarkCooldown(ctx context.Context, addr string) error
	// IsInCooldown reports whether the sender is in extended cooldown
	IsInCooldown(ctx context.Context, addr string) (bool, error)
	// ClearCooldown removes the extended cooldown
	ClearCooldown(ctx context.Context, addr string) error

	// AddToBucket inserts the entry into the current hour bucket if
	// its (replyFrom, to) pair is not already present. Returns false
	// when the pair was coalesced into an existing entry.
	AddToBucket(ctx context.Context, entry *BatchEntry) (bool, error)
	// ReadBucket returns the current hour bucket grouped by sender
	ReadBucket(ctx context.Context) (map[string][]*BatchEntry, error)
	// RemoveSenders deletes every bucket field belonging to the
	// given senders
	RemoveSenders(ctx context.Context, senders []string) error
}
