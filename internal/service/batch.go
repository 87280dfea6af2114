package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/inboxwarm/inboxwarm/internal/domain"
	"github.com/inboxwarm/inboxwarm/pkg/logger"
)

const (
	// BatchInterval matches the hour-bucket granularity
	BatchInterval = 60 * time.Minute

	defaultMaxConcurrentSenders = 5
)

// BatchProcessor drains the hour bucket once per interval: per sender
// it rescues warmup mail from spam, sends the coalesced replies, and
// settles every queue message according to its outcome. Senders run
// concurrently, the entries of one sender sequentially.
type BatchProcessor struct {
	store      domain.CooldownStore
	queue      domain.WarmupQueue
	dispatcher domain.Dispatcher
	rescuer    domain.Rescuer
	logs       domain.WarmupLogRepository
	logger     logger.Logger

	interval      time.Duration
	maxConcurrent int
}

func NewBatchProcessor(store domain.CooldownStore, queue domain.WarmupQueue, dispatcher domain.Dispatcher, rescuer domain.Rescuer, logs domain.WarmupLogRepository, logger logger.Logger) *BatchProcessor {
	return &BatchProcessor{
		store:         store,
		queue:         queue,
		dispatcher:    dispatcher,
		rescuer:       rescuer,
		logs:          logs,
		logger:        logger,
		interval:      BatchInterval,
		maxConcurrent: defaultMaxConcurrentSenders,
	}
}

// SetMaxConcurrent bounds how many senders are processed in parallel.
// Values below one keep the default.
func (p *BatchProcessor) SetMaxConcurrent(n int) {
	if n > 0 {
		p.maxConcurrent = n
	}
}

// Start runs the batch loop until ctx is cancelled. The first run
// happens a full interval in, so a restart does not drain a bucket
// that is still filling.
func (p *BatchProcessor) Start(ctx context.Context) {
	p.logger.Info("Batch loop started")
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("Batch loop stopped")
			return
		case <-ticker.C:
			p.Tick(ctx)
		}
	}
}

// Tick processes the current hour bucket
func (p *BatchProcessor) Tick(ctx context.Context) {
	grouped, err := p.store.ReadBucket(ctx)
	if err != nil {
		p.logger.Error(fmt.Sprintf("Failed to read hour bucket: %v", err))
		return
	}
	if len(grouped) == 0 {
		return
	}
	p.logger.Info(fmt.Sprintf("Processing batch for %d senders", len(grouped)))

	sem := make(chan struct{}, p.maxConcurrent)
	var wg sync.WaitGroup
	var mu sync.Mutex
	processed := make([]string, 0, len(grouped))

	for sender, entries := range grouped {
		wg.Add(1)
		sem <- struct{}{}
		go func(sender string, entries []*domain.BatchEntry) {
			defer wg.Done()
			defer func() { <-sem }()

			if p.processSender(ctx, sender, entries) {
				mu.Lock()
				processed = append(processed, sender)
				mu.Unlock()
			}
		}(sender, entries)
	}
	wg.Wait()

	if len(processed) > 0 {
		if err := p.store.RemoveSenders(ctx, processed); err != nil {
			p.logger.Error(fmt.Sprintf("Failed to clear processed senders from bucket: %v", err))
		}
	}
}

// processSender reports whether the sender's bucket fields should be
// cleared. A panic in one sender must not take down the others, so it
// is contained here and filed as an issue.
func (p *BatchProcessor) processSender(ctx context.Context, sender string, entries []*domain.BatchEntry) (ok bool) {
	log := p.logger.WithField("sender", sender)
	defer func() {
		if r := recover(); r != nil {
			ok = false
			log.Error(fmt.Sprintf("Recovered panic while processing sender: %v", r))
			p.reportPanic(ctx, sender, r)
		}
	}()

	if len(entries) == 0 {
		return true
	}

	blocked, err := p.store.IsBlocked(ctx, sender)
	if err != nil {
		log.Error(fmt.Sprintf("Auth block check failed: %v", err))
		return false
	}
	if blocked {
		log.Info("Sender blocked since ingest, dropping batch")
		for _, entry := range entries {
			p.deleteMessage(ctx, entry.ReceiptHandle)
		}
		return true
	}

	// One rescue per sender covers the whole batch; every entry of a
	// warmup run carries the same subject tag.
	rescued, outcome, rescueErr := p.rescuer.Rescue(ctx, entries[0].CustomMailID, sender)
	if outcome == domain.OutcomeAuthFailure {
		log.Warn(fmt.Sprintf("Credentials rejected during spam rescue: %v", rescueErr))
		p.quarantine(ctx, sender)
		for _, entry := range entries {
			p.settleAuthFailed(ctx, entry)
		}
		return true
	}
	if rescueErr != nil {
		log.Warn(fmt.Sprintf("Spam rescue failed, continuing with replies: %v", rescueErr))
	}
	if rescued > 0 {
		p.recordLog(ctx, &domain.WarmupEmailLog{
			WarmupID:       entries[0].WarmupID,
			RecipientEmail: sender,
			Status:         domain.WarmupLogStatusInSpam,
		})
	}

	toReply := make([]*domain.BatchEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.ShouldReply {
			toReply = append(toReply, entry)
			continue
		}
		p.recordLog(ctx, &domain.WarmupEmailLog{
			WarmupID:       entry.WarmupID,
			RecipientEmail: entry.To,
			Status:         domain.WarmupLogStatusSent,
		})
		p.deleteMessage(ctx, entry.ReceiptHandle)
	}
	if len(toReply) == 0 {
		return true
	}

	outcomes, sendErr := p.dispatcher.SendBatch(ctx, sender, toReply)
	if sendErr != nil {
		log.Warn(fmt.Sprintf("Reply batch finished with errors: %v", sendErr))
	}

	authSeen := false
	for i, entry := range toReply {
		switch outcomes[i] {
		case domain.OutcomeSuccess:
			p.recordLog(ctx, &domain.WarmupEmailLog{
				WarmupID:       entry.WarmupID,
				RecipientEmail: entry.To,
				Status:         domain.WarmupLogStatusReplied,
			})
			p.deleteMessage(ctx, entry.ReceiptHandle)
		case domain.OutcomeAuthFailure:
			authSeen = true
			p.settleAuthFailed(ctx, entry)
		default:
			// Transient: the handle stays untouched and the queue
			// redelivers into a later bucket
		}
	}
	if authSeen {
		p.quarantine(ctx, sender)
	}
	return true
}

// quarantine sets both cooldown tiers after rejected credentials
func (p *BatchProcessor) quarantine(ctx context.Context, sender string) {
	log := p.logger.WithField("sender", sender)
	if err := p.store.MarkBlocked(ctx, sender); err != nil {
		log.Error(fmt.Sprintf("Failed to mark sender blocked: %v", err))
	}
	if err := p.store.MarkCooldown(ctx, sender); err != nil {
		log.Error(fmt.Sprintf("Failed to mark sender cooldown: %v", err))
	}
	log.Warn("Sender quarantined after auth failure")
}

// settleAuthFailed parks the message so it resurfaces after the block
// expires, unless it already came back once before.
func (p *BatchProcessor) settleAuthFailed(ctx context.Context, entry *domain.BatchEntry) {
	if entry.ReceiveCount >= domain.PoisonReceiveCount {
		p.deleteMessage(ctx, entry.ReceiptHandle)
		return
	}
	if err := p.queue.Hide(ctx, entry.ReceiptHandle, domain.ParkVisibility); err != nil {
		p.logger.Error(fmt.Sprintf("Failed to park message: %v", err))
	}
}

func (p *BatchProcessor) deleteMessage(ctx context.Context, receiptHandle string) {
	if err := p.queue.Delete(ctx, receiptHandle); err != nil {
		p.logger.Error(fmt.Sprintf("Failed to delete queue message: %v", err))
	}
}

func (p *BatchProcessor) recordLog(ctx context.Context, entry *domain.WarmupEmailLog) {
	if err := p.logs.CreateLog(ctx, entry); err != nil {
		p.logger.Warn(fmt.Sprintf("Failed to record warmup log: %v", err))
	}
}

func (p *BatchProcessor) reportPanic(ctx context.Context, sender string, cause interface{}) {
	issue := &domain.Issue{
		Title:       "Warmup batch processing panic",
		Description: fmt.Sprintf("panic while processing sender batch: %v", cause),
		Service:     "warmup-worker",
		Priority:    domain.IssuePriorityHigh,
		ProbableCause: []string{
			"malformed bucket entry",
			"downstream outage",
		},
		Context: fmt.Sprintf(`{"sender":%q}`, sender),
	}
	if err := p.logs.CreateIssue(ctx, issue); err != nil {
		p.logger.Error(fmt.Sprintf("Failed to file issue for panic: %v", err))
	}
}
