package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/inboxwarm/inboxwarm/internal/domain"
	"github.com/inboxwarm/inboxwarm/pkg/logger"
)

// RedisCooldownStore implements domain.CooldownStore on Redis. It holds
// the per-sender admission flags and the hour-bucketed coalescing hash;
// every worker process of a deployment shares the same instance.
type RedisCooldownStore struct {
	client *redis.Client
	logger logger.Logger
	now    func() time.Time
}

// NewRedisCooldownStore creates a new Redis-backed cooldown store
func NewRedisCooldownStore(client *redis.Client, log logger.Logger) *RedisCooldownStore {
	return &RedisCooldownStore{
		client: client,
		logger: log,
		now:    time.Now,
	}
}

// MarkBlocked sets the short auth-failure flag for a sender
func (s *RedisCooldownStore) MarkBlocked(ctx context.Context, addr string) error {
	key := domain.BlockedKeyPrefix + addr
	if err := s.client.Set(ctx, key, strconv.FormatInt(s.now().UnixMilli(), 10), domain.BlockedTTL).Err(); err != nil {
		return fmt.Errorf("failed to mark sender blocked: %w", err)
	}
	return nil
}

// IsBlocked reports whether the sender is currently blocked
func (s *RedisCooldownStore) IsBlocked(ctx context.Context, addr string) (bool, error) {
	n, err := s.client.Exists(ctx, domain.BlockedKeyPrefix+addr).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check blocked flag: %w", err)
	}
	return n > 0, nil
}

// ClearBlocked removes the auth-failure flag
func (s *RedisCooldownStore) ClearBlocked(ctx context.Context, addr string) error {
	if err := s.client.Del(ctx, domain.BlockedKeyPrefix+addr).Err(); err != nil {
		return fmt.Errorf("failed to clear blocked flag: %w", err)
	}
	return nil
}

// MarkCooldown sets the extended cooldown for a sender
func (s *RedisCooldownStore) MarkCooldown(ctx context.Context, addr string) error {
	key := domain.CooldownKeyPrefix + addr
	if err := s.client.Set(ctx, key, strconv.FormatInt(s.now().UnixMilli(), 10), domain.CooldownTTL).Err(); err != nil {
		return fmt.Errorf("failed to mark sender cooldown: %w", err)
	}
	return nil
}

// IsInCooldown reports whether the sender is in extended cooldown
func (s *RedisCooldownStore) IsInCooldown(ctx context.Context, addr string) (bool, error) {
	n, err := s.client.Exists(ctx, domain.CooldownKeyPrefix+addr).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check cooldown flag: %w", err)
	}
	return n > 0, nil
}

// ClearCooldown removes the extended cooldown
func (s *RedisCooldownStore) ClearCooldown(ctx context.Context, addr string) error {
	if err := s.client.Del(ctx, domain.CooldownKeyPrefix+addr).Err(); err != nil {
		return fmt.Errorf("failed to clear cooldown flag: %w", err)
	}
	return nil
}

// AddToBucket inserts the entry into the current hour bucket unless its
// (replyFrom, to) pair is already present. Every insert refreshes the
// bucket TTL so a bucket expires two hours after its last write.
func (s *RedisCooldownStore) AddToBucket(ctx context.Context, entry *domain.BatchEntry) (bool, error) {
	payload, err := entry.Marshal()
	if err != nil {
		return false, err
	}

	key := domain.HourBucketKey(s.now())
	inserted, err := s.client.HSetNX(ctx, key, entry.DedupKey(), payload).Result()
	if err != nil {
		return false, fmt.Errorf("failed to add entry to bucket: %w", err)
	}

	if err := s.client.Expire(ctx, key, domain.BucketTTL).Err(); err != nil {
		s.logger.WithFields(map[string]interface{}{
			"bucket": key,
			"error":  err.Error(),
		}).Warn("Failed to refresh bucket TTL")
	}

	return inserted, nil
}

// ReadBucket returns the current hour bucket regrouped by sender.
// Fields that no longer parse are dropped with a log; they expire with
// the bucket.
func (s *RedisCooldownStore) ReadBucket(ctx context.Context) (map[string][]*domain.BatchEntry, error) {
	key := domain.HourBucketKey(s.now())
	fields, err := s.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read bucket: %w", err)
	}

	grouped := make(map[string][]*domain.BatchEntry)
	for field, payload := range fields {
		sender, _, found := strings.Cut(field, domain.DedupKeySeparator)
		if !found {
			s.logger.WithField("field", field).Warn("Skipping bucket field without separator")
			continue
		}
		entry, err := domain.UnmarshalBatchEntry(payload)
		if err != nil {
			s.logger.WithFields(map[string]interface{}{
				"field": field,
				"error": err.Error(),
			}).Warn("Skipping unparseable bucket entry")
			continue
		}
		grouped[sender] = append(grouped[sender], entry)
	}
	return grouped, nil
}

// RemoveSenders deletes every bucket field belonging to the given senders
func (s *RedisCooldownStore) RemoveSenders(ctx context.Context, senders []string) error {
	if len(senders) == 0 {
		return nil
	}

	key := domain.HourBucketKey(s.now())
	fields, err := s.client.HKeys(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("failed to list bucket fields: %w", err)
	}

	processed := make(map[string]bool, len(senders))
	for _, sender := range senders {
		processed[sender] = true
	}

	var doomed []string
	for _, field := range fields {
		sender, _, found := strings.Cut(field, domain.DedupKeySeparator)
		if found && processed[sender] {
			doomed = append(doomed, field)
		}
	}
	if len(doomed) == 0 {
		return nil
	}

	if err := s.client.HDel(ctx, key, doomed...).Err(); err != nil {
		return fmt.Errorf("failed to remove processed senders: %w", err)
	}
	return nil
}
