package domain

import (
	"context"
	"time"
)

//go:generate mockgen -destination mocks/mock_warmup_log_repository.go -package mocks github.com/inboxwarm/inboxwarm/internal/domain WarmupLogRepository

// WarmupLogStatus is the terminal state recorded for a warmup email
type WarmupLogStatus string

const (
	WarmupLogStatusReplied WarmupLogStatus = "REPLIED"
	WarmupLogStatusInSpam  WarmupLogStatus = "IN_SPAM"
	WarmupLogStatusSent    WarmupLogStatus = "SENT"
)

// WarmupEmailLog is one row in the external warmup activity log
type WarmupEmailLog struct {
	ID             string          `json:"id"`
	WarmupID       string          `json:"warmup_id"`
	RecipientEmail string          `json:"recipient_email"`
	Status         WarmupLogStatus `json:"status"`
	SentAt         time.Time       `json:"sent_at"`
}

// IssuePriority ranks operator attention for an Issue row
type IssuePriority string

const (
	IssuePriorityLow    IssuePriority = "LOW"
	IssuePriorityMedium IssuePriority = "MEDIUM"
	IssuePriorityHigh   IssuePriority = "HIGH"
)

// Issue is the critical-error sink row; uncaught failures land here so
// the headless worker stays observable.
type Issue struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	Service       string        `json:"service"`
	Priority      IssuePriority `json:"priority"`
	ProbableCause []string      `json:"probable_cause"`
	Context       string        `json:"context"`
	CreatedAt     time.Time     `json:"created_at"`
}

// WarmupLogRepository persists warmup activity and critical issues
type WarmupLogRepository interface {
	// CreateLog appends a warmup email log row
	CreateLog(ctx context.Context, log *WarmupEmailLog) error
	// CreateIssue appends a critical-error issue row
	CreateIssue(ctx context.Context, issue *Issue) error
}
