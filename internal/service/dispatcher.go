package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/inboxwarm/inboxwarm/internal/domain"
	"github.com/inboxwarm/inboxwarm/pkg/emailerror"
	"github.com/inboxwarm/inboxwarm/pkg/logger"
	"github.com/inboxwarm/inboxwarm/pkg/mailer"
)

// DispatcherService sends warmup replies from tenant mailboxes. Gmail
// mailboxes with OAuth material go through the Gmail API so the reply
// lands in the original thread; everything else goes over SMTP.
type DispatcherService struct {
	creds      domain.CredentialResolver
	classifier *emailerror.Classifier
	logger     logger.Logger

	oauthClientID     string
	oauthClientSecret string

	newMailer func(cfg *mailer.Config) mailer.Mailer
	newGmail  domain.GmailClientFactory
}

func NewDispatcherService(creds domain.CredentialResolver, oauthClientID, oauthClientSecret string, logger logger.Logger) *DispatcherService {
	return &DispatcherService{
		creds:             creds,
		classifier:        emailerror.NewClassifier(),
		logger:            logger,
		oauthClientID:     oauthClientID,
		oauthClientSecret: oauthClientSecret,
		newMailer: func(cfg *mailer.Config) mailer.Mailer {
			return mailer.NewSMTPMailer(cfg)
		},
		newGmail: NewGmailClientFactory(oauthClientID, oauthClientSecret),
	}
}

// SendReply sends one reply
func (s *DispatcherService) SendReply(ctx context.Context, entry *domain.BatchEntry) (domain.SendOutcome, error) {
	outcomes, err := s.SendBatch(ctx, entry.ReplyFrom, []*domain.BatchEntry{entry})
	return outcomes[0], err
}

// SendBatch sends all entries of one sender sequentially. An auth
// failure marks the failing entry and every later one, since they would
// hit the same rejected credentials. Transient failures are per entry.
func (s *DispatcherService) SendBatch(ctx context.Context, replyFrom string, entries []*domain.BatchEntry) ([]domain.SendOutcome, error) {
	outcomes := make([]domain.SendOutcome, len(entries))

	cred, err := s.creds.Resolve(ctx, replyFrom)
	if err != nil {
		// A missing credential row cannot heal on redelivery, so it is
		// treated like rejected credentials.
		if errors.Is(err, domain.ErrCredentialNotFound) {
			fillOutcomes(outcomes, 0, domain.OutcomeAuthFailure)
		} else {
			fillOutcomes(outcomes, 0, domain.OutcomeTransientFailure)
		}
		return outcomes, err
	}

	if gmailAPIEligible(cred, s.oauthClientID, s.oauthClientSecret) {
		return s.sendViaGmail(ctx, cred, entries, outcomes)
	}
	return s.sendViaSMTP(ctx, cred, entries, outcomes)
}

func (s *DispatcherService) sendViaGmail(ctx context.Context, cred *domain.MailCredential, entries []*domain.BatchEntry, outcomes []domain.SendOutcome) ([]domain.SendOutcome, error) {
	log := s.logger.WithField("email", cred.EmailID)

	client, err := s.newGmail(ctx, cred)
	if err != nil {
		if s.classifier.IsAuthFailure(err) {
			fillOutcomes(outcomes, 0, domain.OutcomeAuthFailure)
		} else {
			fillOutcomes(outcomes, 0, domain.OutcomeTransientFailure)
		}
		return outcomes, err
	}

	var firstErr error
	for i, entry := range entries {
		threadID := ""
		if lookupID := threadLookupID(entry); lookupID != "" {
			id, lookErr := client.FindThreadID(ctx, lookupID)
			switch {
			case lookErr == nil:
				threadID = id
			case s.classifier.IsAuthFailure(lookErr):
				fillOutcomes(outcomes, i, domain.OutcomeAuthFailure)
				return outcomes, lookErr
			default:
				// Send unthreaded rather than drop the reply
				log.Warn(fmt.Sprintf("Thread lookup failed, sending unthreaded: %v", lookErr))
			}
		}

		raw, buildErr := mailer.RawMessage(replyMessage(entry))
		if buildErr != nil {
			outcomes[i] = domain.OutcomeTransientFailure
			if firstErr == nil {
				firstErr = buildErr
			}
			log.Warn(fmt.Sprintf("Failed to build reply for %s: %v", entry.To, buildErr))
			continue
		}

		if sendErr := client.SendRaw(ctx, raw, threadID); sendErr != nil {
			if s.classifier.IsAuthFailure(sendErr) {
				fillOutcomes(outcomes, i, domain.OutcomeAuthFailure)
				return outcomes, sendErr
			}
			outcomes[i] = domain.OutcomeTransientFailure
			if firstErr == nil {
				firstErr = sendErr
			}
			log.Warn(fmt.Sprintf("Failed to send reply to %s: %v", entry.To, sendErr))
			continue
		}
		outcomes[i] = domain.OutcomeSuccess
	}

	persistRefreshedToken(ctx, s.creds, cred, client, s.logger)
	return outcomes, firstErr
}

func (s *DispatcherService) sendViaSMTP(ctx context.Context, cred *domain.MailCredential, entries []*domain.BatchEntry, outcomes []domain.SendOutcome) ([]domain.SendOutcome, error) {
	log := s.logger.WithField("email", cred.EmailID)
	m := s.newMailer(smtpConfig(cred))

	var firstErr error
	for i, entry := range entries {
		if err := ctx.Err(); err != nil {
			fillOutcomes(outcomes, i, domain.OutcomeTransientFailure)
			return outcomes, err
		}

		if err := m.SendReply(replyMessage(entry)); err != nil {
			if s.classifier.IsAuthFailure(err) {
				fillOutcomes(outcomes, i, domain.OutcomeAuthFailure)
				return outcomes, err
			}
			outcomes[i] = domain.OutcomeTransientFailure
			if firstErr == nil {
				firstErr = err
			}
			log.Warn(fmt.Sprintf("Failed to send reply to %s: %v", entry.To, err))
			continue
		}
		outcomes[i] = domain.OutcomeSuccess
	}
	return outcomes, firstErr
}

func replyMessage(entry *domain.BatchEntry) *mailer.ReplyMessage {
	// The producer sends the thread chain in referenceId; a thread one
	// message deep may carry only inReplyTo.
	references := entry.ReferenceID
	if references == "" {
		references = entry.InReplyTo
	}
	return &mailer.ReplyMessage{
		From:            entry.ReplyFrom,
		To:              entry.To,
		OriginalSubject: entry.OriginalSubject,
		Body:            entry.Body,
		InReplyTo:       entry.InReplyTo,
		References:      references,
	}
}

// threadLookupID picks the message id used to find the Gmail thread.
// In-Reply-To names the direct parent; the reference chain still
// identifies the thread when the producer sent only that.
func threadLookupID(entry *domain.BatchEntry) string {
	if entry.InReplyTo != "" {
		return entry.InReplyTo
	}
	return entry.ReferenceID
}

func fillOutcomes(outcomes []domain.SendOutcome, from int, outcome domain.SendOutcome) {
	for i := from; i < len(outcomes); i++ {
		outcomes[i] = outcome
	}
}

func smtpConfig(cred *domain.MailCredential) *mailer.Config {
	cfg := &mailer.Config{
		Host:     domain.SMTPHost(cred.Service),
		Port:     587,
		Username: cred.EmailID,
		Password: cred.SMTPPassword,
	}
	// Gmail and Skyfunnel expose implicit TLS submission
	if cred.Service == domain.ServiceGmail || cred.Service == domain.ServiceSkyfunnel {
		cfg.Port = 465
		cfg.UseSSL = true
	}
	return cfg
}
