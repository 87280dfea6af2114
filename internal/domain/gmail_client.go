package domain

import (
	"context"
)

//go:generate mockgen -destination mocks/mock_gmail_client.go -package mocks github.com/inboxwarm/inboxwarm/internal/domain GmailClient

// SpamMessage is a message found in the Gmail spam label
type SpamMessage struct {
	ID      string
	Subject string
}

// GmailClient is the narrow Gmail API surface used for mailboxes with
// OAuth material: raw sends into an existing thread and spam rescue.
type GmailClient interface {
	// FindThreadID resolves the thread that holds the message with the
	// given RFC 5322 Message-ID. Empty when no such message exists.
	FindThreadID(ctx context.Context, messageID string) (string, error)
	// SendRaw submits a raw RFC 5322 message from the bound mailbox,
	// attaching it to threadID when non-empty.
	SendRaw(ctx context.Context, raw []byte, threadID string) error
	// SearchSpam lists spam-labeled messages whose subject matches the
	// given tag, with their subjects for exact filtering.
	SearchSpam(ctx context.Context, subjectTag string) ([]*SpamMessage, error)
	// Unspam removes the SPAM label and adds INBOX on the given messages
	Unspam(ctx context.Context, ids []string) error
	// AccessToken returns the current access token, refreshed if the
	// stored one had expired.
	AccessToken() (string, error)
}

// GmailClientFactory builds a GmailClient bound to one mailbox
type GmailClientFactory func(ctx context.Context, cred *MailCredential) (GmailClient, error)
