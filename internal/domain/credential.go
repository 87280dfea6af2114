package domain

import (
	"context"
	"errors"
)

//go:generate mockgen -destination mocks/mock_credential_repository.go -package mocks github.com/inboxwarm/inboxwarm/internal/domain CredentialRepository
//go:generate mockgen -destination mocks/mock_credential_resolver.go -package mocks github.com/inboxwarm/inboxwarm/internal/domain CredentialResolver

// ErrCredentialNotFound is returned when no credential row exists for
// the mailbox address.
var ErrCredentialNotFound = errors.New("mailbox credential not found")

// Mailbox service identifiers as stored with the credential row
const (
	ServiceGmail     = "gmail"
	ServiceOutlook   = "outlook"
	ServiceSkyfunnel = "skyfunnel"
)

// EncryptedCredential is the at-rest credential row. Token fields hold
// "<ivHex>:<cipherHex>" ciphertext; empty means absent.
type EncryptedCredential struct {
	EmailID            string
	Service            string
	PasswordCipher     string
	AccessTokenCipher  string
	RefreshTokenCipher string
}

// MailCredential is a decrypted credential ready for use by the
// dispatcher and rescuer. OAuth fields are empty when the tenant never
// granted them or the ciphertext failed to decrypt.
type MailCredential struct {
	EmailID      string
	Service      string
	SMTPPassword string
	AccessToken  string
	RefreshToken string
}

// HasOAuth reports whether both OAuth tokens are usable
func (c *MailCredential) HasOAuth() bool {
	return c.AccessToken != "" && c.RefreshToken != ""
}

// CredentialRepository reads and updates at-rest credential rows
type CredentialRepository interface {
	// GetByEmail fetches the credential row for a mailbox address
	GetByEmail(ctx context.Context, addr string) (*EncryptedCredential, error)
	// UpdateAccessToken replaces the stored access token ciphertext
	UpdateAccessToken(ctx context.Context, addr string, cipher string) error
	// UpdateOAuthTokens replaces both stored token ciphertexts after a
	// fresh consent grant
	UpdateOAuthTokens(ctx context.Context, addr string, accessCipher, refreshCipher string) error
}

// CredentialResolver decrypts credentials and persists refreshed tokens
type CredentialResolver interface {
	// Resolve fetches and decrypts the credentials for a mailbox
	Resolve(ctx context.Context, addr string) (*MailCredential, error)
	// PersistRefreshedAccess re-encrypts and stores a refreshed
	// access token. Failure is non-fatal for the send in flight.
	PersistRefreshedAccess(ctx context.Context, addr string, accessToken string) error
}

// SpamFolder returns the provider's spam folder name for IMAP
func SpamFolder(service string) string {
	switch service {
	case ServiceGmail:
		return "[Gmail]/Spam"
	case ServiceSkyfunnel:
		return "SPAM"
	default:
		return "Spam"
	}
}

// InboxFolder returns the provider's inbox folder name for IMAP
func InboxFolder(service string) string {
	switch service {
	case ServiceGmail, ServiceSkyfunnel:
		return "INBOX"
	default:
		return "Inbox"
	}
}

// IMAPHost returns the provider's IMAP endpoint
func IMAPHost(service string) string {
	switch service {
	case ServiceGmail:
		return "imap.gmail.com"
	case ServiceOutlook:
		return "outlook.office365.com"
	case ServiceSkyfunnel:
		return "imap.skyfunnel.us"
	default:
		return "imap." + service + ".com"
	}
}

// SMTPHost returns the provider's SMTP endpoint
func SMTPHost(service string) string {
	switch service {
	case ServiceGmail:
		return "smtp.gmail.com"
	case ServiceOutlook:
		return "smtp.office365.com"
	case ServiceSkyfunnel:
		return "smtp.skyfunnel.us"
	default:
		return "smtp." + service + ".com"
	}
}
