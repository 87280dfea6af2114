package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/inboxwarm/inboxwarm/internal/domain"
)

// WarmupLogPostgresRepository implements domain.WarmupLogRepository
type WarmupLogPostgresRepository struct {
	db *sql.DB
}

// NewWarmupLogPostgresRepository creates a new warmup log repository
func NewWarmupLogPostgresRepository(db *sql.DB) *WarmupLogPostgresRepository {
	return &WarmupLogPostgresRepository{db: db}
}

// CreateLog appends a warmup email log row
func (r *WarmupLogPostgresRepository) CreateLog(ctx context.Context, log *domain.WarmupEmailLog) error {
	if log.ID == "" {
		log.ID = uuid.New().String()
	}
	if log.SentAt.IsZero() {
		log.SentAt = time.Now().UTC()
	}

	query, args, err := sq.Insert("warmup_email_logs").
		Columns("id", "warmup_id", "recipient_email", "status", "sent_at").
		Values(log.ID, log.WarmupID, log.RecipientEmail, string(log.Status), log.SentAt).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build warmup log query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to create warmup log: %w", err)
	}
	return nil
}

// CreateIssue appends a critical-error issue row
func (r *WarmupLogPostgresRepository) CreateIssue(ctx context.Context, issue *domain.Issue) error {
	if issue.ID == "" {
		issue.ID = uuid.New().String()
	}
	if issue.CreatedAt.IsZero() {
		issue.CreatedAt = time.Now().UTC()
	}
	if issue.Priority == "" {
		issue.Priority = domain.IssuePriorityMedium
	}

	query, args, err := sq.Insert("issues").
		Columns("id", "title", "description", "service", "priority", "probable_cause", "context", "created_at").
		Values(issue.ID, issue.Title, issue.Description, issue.Service, string(issue.Priority),
			pq.Array(issue.ProbableCause), issue.Context, issue.CreatedAt).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build issue query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to create issue: %w", err)
	}
	return nil
}
