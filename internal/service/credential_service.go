package service

import (
	"context"
	"fmt"

	"github.com/inboxwarm/inboxwarm/internal/domain"
	"github.com/inboxwarm/inboxwarm/pkg/crypto"
	"github.com/inboxwarm/inboxwarm/pkg/logger"
)

// CredentialService implements domain.CredentialResolver on top of the
// credential repository and the process-wide secret key.
type CredentialService struct {
	repo      domain.CredentialRepository
	secretKey []byte
	logger    logger.Logger
}

func NewCredentialService(repo domain.CredentialRepository, secretKey []byte, logger logger.Logger) *CredentialService {
	return &CredentialService{
		repo:      repo,
		secretKey: secretKey,
		logger:    logger,
	}
}

// Resolve fetches the at-rest row and decrypts it. The SMTP password
// must decrypt; a token that fails to decrypt is treated as absent so
// the caller falls back to password auth.
func (s *CredentialService) Resolve(ctx context.Context, addr string) (*domain.MailCredential, error) {
	row, err := s.repo.GetByEmail(ctx, addr)
	if err != nil {
		return nil, err
	}

	password, err := crypto.DecryptString(row.PasswordCipher, s.secretKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt password for %s: %w", addr, err)
	}

	cred := &domain.MailCredential{
		EmailID:      row.EmailID,
		Service:      row.Service,
		SMTPPassword: password,
	}

	if row.AccessTokenCipher != "" {
		token, err := crypto.DecryptString(row.AccessTokenCipher, s.secretKey)
		if err != nil {
			s.logger.WithField("email", addr).Warn(fmt.Sprintf("Failed to decrypt access token: %v", err))
		} else {
			cred.AccessToken = token
		}
	}

	if row.RefreshTokenCipher != "" {
		token, err := crypto.DecryptString(row.RefreshTokenCipher, s.secretKey)
		if err != nil {
			s.logger.WithField("email", addr).Warn(fmt.Sprintf("Failed to decrypt refresh token: %v", err))
		} else {
			cred.RefreshToken = token
		}
	}

	return cred, nil
}

// PersistRefreshedAccess re-encrypts a refreshed access token and
// stores it so later sends skip the refresh round trip.
func (s *CredentialService) PersistRefreshedAccess(ctx context.Context, addr string, accessToken string) error {
	cipher, err := crypto.EncryptString(accessToken, s.secretKey)
	if err != nil {
		return fmt.Errorf("failed to encrypt refreshed access token: %w", err)
	}
	if err := s.repo.UpdateAccessToken(ctx, addr, cipher); err != nil {
		return fmt.Errorf("failed to store refreshed access token: %w", err)
	}
	return nil
}
