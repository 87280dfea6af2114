package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/inboxwarm/inboxwarm/internal/domain"
)

// CredentialPostgresRepository implements domain.CredentialRepository
type CredentialPostgresRepository struct {
	db *sql.DB
}

// NewCredentialPostgresRepository creates a new credential repository
func NewCredentialPostgresRepository(db *sql.DB) *CredentialPostgresRepository {
	return &CredentialPostgresRepository{db: db}
}

// GetByEmail fetches the at-rest credential row for a mailbox address
func (r *CredentialPostgresRepository) GetByEmail(ctx context.Context, addr string) (*domain.EncryptedCredential, error) {
	query, args, err := sq.Select("email_id", "service", "password", "access_token", "refresh_token").
		From("warmup_email_service_email_credentials").
		Where(sq.Eq{"email_id": addr}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build credential query: %w", err)
	}

	var cred domain.EncryptedCredential
	var accessToken, refreshToken sql.NullString
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&cred.EmailID,
		&cred.Service,
		&cred.PasswordCipher,
		&accessToken,
		&refreshToken,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCredentialNotFound
		}
		return nil, fmt.Errorf("failed to get credential: %w", err)
	}

	cred.AccessTokenCipher = accessToken.String
	cred.RefreshTokenCipher = refreshToken.String
	return &cred, nil
}

// UpdateAccessToken replaces the stored access token ciphertext
func (r *CredentialPostgresRepository) UpdateAccessToken(ctx context.Context, addr string, cipher string) error {
	query, args, err := sq.Update("warmup_email_service_email_credentials").
		Set("access_token", cipher).
		Where(sq.Eq{"email_id": addr}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build access token update: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update access token: %w", err)
	}

	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return domain.ErrCredentialNotFound
	}
	return nil
}

// UpdateOAuthTokens replaces both stored token ciphertexts
func (r *CredentialPostgresRepository) UpdateOAuthTokens(ctx context.Context, addr string, accessCipher, refreshCipher string) error {
	query, args, err := sq.Update("warmup_email_service_email_credentials").
		Set("access_token", accessCipher).
		Set("refresh_token", refreshCipher).
		Where(sq.Eq{"email_id": addr}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build oauth token update: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update oauth tokens: %w", err)
	}

	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return domain.ErrCredentialNotFound
	}
	return nil
}
