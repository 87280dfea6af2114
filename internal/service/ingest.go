package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/inboxwarm/inboxwarm/internal/domain"
	"github.com/inboxwarm/inboxwarm/pkg/logger"
)

// IngestInterval is how often the queue is drained into the hour bucket
const IngestInterval = 2 * time.Minute

// IngestService moves warmup requests from the queue into the
// hour-coalescing bucket, dropping or parking what should not run.
// Messages are only deleted once their work is safely represented
// elsewhere, so a crash mid-tick costs nothing but a redelivery.
type IngestService struct {
	queue  domain.WarmupQueue
	store  domain.CooldownStore
	logger logger.Logger

	interval time.Duration
	now      func() time.Time
}

func NewIngestService(queue domain.WarmupQueue, store domain.CooldownStore, logger logger.Logger) *IngestService {
	return &IngestService{
		queue:    queue,
		store:    store,
		logger:   logger,
		interval: IngestInterval,
		now:      time.Now,
	}
}

// Start runs the ingest loop until ctx is cancelled
func (s *IngestService) Start(ctx context.Context) {
	s.logger.Info("Ingest loop started")
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		s.Tick(ctx)

		select {
		case <-ctx.Done():
			s.logger.Info("Ingest loop stopped")
			return
		case <-ticker.C:
		}
	}
}

// Tick receives one batch and processes every envelope concurrently,
// returning once all of them settled.
func (s *IngestService) Tick(ctx context.Context) {
	envelopes, err := s.queue.Receive(ctx)
	if err != nil {
		if domain.IsPermanentQueueError(err) {
			s.logger.Error(fmt.Sprintf("Queue receive failed permanently: %v", err))
		} else {
			s.logger.Warn(fmt.Sprintf("Queue receive failed: %v", err))
		}
		return
	}
	if len(envelopes) == 0 {
		return
	}

	var wg sync.WaitGroup
	for _, env := range envelopes {
		wg.Add(1)
		go func(env domain.QueueEnvelope) {
			defer wg.Done()
			s.processEnvelope(ctx, env)
		}(env)
	}
	wg.Wait()
}

func (s *IngestService) processEnvelope(ctx context.Context, env domain.QueueEnvelope) {
	req, err := domain.ParseWarmupRequest(env.Body)
	if err != nil {
		s.logger.Warn(fmt.Sprintf("Dropping malformed queue message: %v", err))
		s.deleteMessage(ctx, env.ReceiptHandle)
		return
	}

	log := s.logger.WithFields(map[string]interface{}{
		"replyFrom": req.ReplyFrom,
		"to":        req.To,
	})

	now := s.now()
	if req.ScheduledAfter(now) {
		// Requeue the original body with the remaining delay. The cap
		// means far-future work bounces through the queue, each hop
		// waiting only what is left.
		delay := time.UnixMilli(req.ScheduledFor).Sub(now)
		if delay > domain.MaxQueueDelay {
			delay = domain.MaxQueueDelay
		}
		if err := s.queue.DelayRequeue(ctx, env.Body, delay); err != nil {
			log.Error(fmt.Sprintf("Failed to requeue scheduled request: %v", err))
			return
		}
		s.deleteMessage(ctx, env.ReceiptHandle)
		return
	}

	cooled, err := s.store.IsInCooldown(ctx, req.ReplyFrom)
	if err != nil {
		log.Error(fmt.Sprintf("Cooldown check failed: %v", err))
		return
	}
	if cooled {
		if env.ReceiveCount >= domain.PoisonReceiveCount {
			log.Info("Dropping request for sender still in cooldown")
			s.deleteMessage(ctx, env.ReceiptHandle)
		} else if err := s.queue.Hide(ctx, env.ReceiptHandle, domain.ParkVisibility); err != nil {
			log.Error(fmt.Sprintf("Failed to park request: %v", err))
		}
		return
	}

	blocked, err := s.store.IsBlocked(ctx, req.ReplyFrom)
	if err != nil {
		log.Error(fmt.Sprintf("Auth block check failed: %v", err))
		return
	}
	if blocked {
		log.Info("Dropping request for auth-blocked sender")
		s.deleteMessage(ctx, env.ReceiptHandle)
		return
	}

	entry := &domain.BatchEntry{
		WarmupRequest: *req,
		ReceiptHandle: env.ReceiptHandle,
		AddedAt:       now.UTC(),
		ReceiveCount:  env.ReceiveCount,
	}
	inserted, err := s.store.AddToBucket(ctx, entry)
	if err != nil {
		// Not deleted; the queue redelivers and we try again
		log.Error(fmt.Sprintf("Failed to admit request into hour bucket: %v", err))
		return
	}
	if !inserted {
		log.Debug("Coalesced duplicate pair into existing entry")
	}
	s.deleteMessage(ctx, env.ReceiptHandle)
}

func (s *IngestService) deleteMessage(ctx context.Context, receiptHandle string) {
	if err := s.queue.Delete(ctx, receiptHandle); err != nil {
		s.logger.Error(fmt.Sprintf("Failed to delete queue message: %v", err))
	}
}
