package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gmail "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"github.com/inboxwarm/inboxwarm/internal/domain"
	"github.com/inboxwarm/inboxwarm/pkg/logger"
)

// gmailAPIEligible reports whether the mailbox should go through the
// Gmail API instead of SMTP or IMAP.
func gmailAPIEligible(cred *domain.MailCredential, clientID, clientSecret string) bool {
	return cred.Service == domain.ServiceGmail && cred.HasOAuth() &&
		clientID != "" && clientSecret != ""
}

// persistRefreshedToken stores the access token the API handed back
// when the stored one had expired. Failure only costs a refresh on the
// next use of the mailbox.
func persistRefreshedToken(ctx context.Context, creds domain.CredentialResolver, cred *domain.MailCredential, client domain.GmailClient, log logger.Logger) {
	token, err := client.AccessToken()
	if err != nil || token == "" || token == cred.AccessToken {
		return
	}
	if err := creds.PersistRefreshedAccess(ctx, cred.EmailID, token); err != nil {
		log.WithField("email", cred.EmailID).Warn(fmt.Sprintf("Failed to persist refreshed access token: %v", err))
	}
}

// Every call acts on the mailbox the token was issued for
const gmailUser = "me"

type gmailClient struct {
	svc    *gmail.Service
	tokens oauth2.TokenSource
}

// NewGmailClientFactory returns a factory that binds a Gmail API client
// to one mailbox using its stored OAuth tokens.
func NewGmailClientFactory(clientID, clientSecret string) domain.GmailClientFactory {
	return func(ctx context.Context, cred *domain.MailCredential) (domain.GmailClient, error) {
		conf := &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			Endpoint:     google.Endpoint,
			Scopes:       []string{gmail.GmailModifyScope, gmail.GmailReadonlyScope},
		}
		// The stored access token has no expiry recorded, so mark it
		// expired and let the token source refresh once up front. The
		// refreshed token is cached for the rest of the batch.
		token := &oauth2.Token{
			AccessToken:  cred.AccessToken,
			RefreshToken: cred.RefreshToken,
			Expiry:       time.Now().Add(-time.Minute),
		}
		tokens := conf.TokenSource(ctx, token)

		svc, err := gmail.NewService(ctx, option.WithTokenSource(tokens))
		if err != nil {
			return nil, fmt.Errorf("failed to create gmail service: %w", err)
		}
		return &gmailClient{svc: svc, tokens: tokens}, nil
	}
}

func (c *gmailClient) FindThreadID(ctx context.Context, messageID string) (string, error) {
	resp, err := c.svc.Users.Messages.List(gmailUser).
		Q("rfc822msgid:" + messageID).
		MaxResults(1).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("failed to look up gmail thread: %w", err)
	}
	if len(resp.Messages) == 0 {
		return "", nil
	}
	return resp.Messages[0].ThreadId, nil
}

func (c *gmailClient) SendRaw(ctx context.Context, raw []byte, threadID string) error {
	msg := &gmail.Message{
		Raw: base64.RawURLEncoding.EncodeToString(raw),
	}
	if threadID != "" {
		msg.ThreadId = threadID
	}
	if _, err := c.svc.Users.Messages.Send(gmailUser, msg).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to send gmail message: %w", err)
	}
	return nil
}

func (c *gmailClient) SearchSpam(ctx context.Context, subjectTag string) ([]*domain.SpamMessage, error) {
	resp, err := c.svc.Users.Messages.List(gmailUser).
		Q(fmt.Sprintf("in:spam subject:%q", subjectTag)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to search gmail spam: %w", err)
	}

	found := make([]*domain.SpamMessage, 0, len(resp.Messages))
	for _, m := range resp.Messages {
		meta, err := c.svc.Users.Messages.Get(gmailUser, m.Id).
			Format("metadata").
			MetadataHeaders("Subject").
			Context(ctx).
			Do()
		if err != nil {
			return nil, fmt.Errorf("failed to fetch gmail message metadata: %w", err)
		}
		msg := &domain.SpamMessage{ID: m.Id}
		if meta.Payload != nil {
			for _, h := range meta.Payload.Headers {
				if strings.EqualFold(h.Name, "Subject") {
					msg.Subject = h.Value
					break
				}
			}
		}
		found = append(found, msg)
	}
	return found, nil
}

func (c *gmailClient) Unspam(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	req := &gmail.BatchModifyMessagesRequest{
		Ids:            ids,
		RemoveLabelIds: []string{"SPAM"},
		AddLabelIds:    []string{"INBOX"},
	}
	if err := c.svc.Users.Messages.BatchModify(gmailUser, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to move gmail messages out of spam: %w", err)
	}
	return nil
}

func (c *gmailClient) AccessToken() (string, error) {
	tok, err := c.tokens.Token()
	if err != nil {
		return "", fmt.Errorf("failed to read gmail access token: %w", err)
	}
	return tok.AccessToken, nil
}
