package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/emersion/go-imap/v2"

	"github.com/inboxwarm/inboxwarm/internal/domain"
	"github.com/inboxwarm/inboxwarm/pkg/emailerror"
	"github.com/inboxwarm/inboxwarm/pkg/logger"
)

// Some providers never answer LOGOUT; the watchdog drops the
// connection instead of stalling the batch.
const imapLogoutTimeout = 5 * time.Second

const imapPort = "993"

// RescuerService moves warmup mail out of the sender-side spam folder
// before the reply pass, so providers see it engaged with. Gmail
// mailboxes with OAuth material use the Gmail API; everything else
// goes over IMAP with the stored password.
type RescuerService struct {
	creds      domain.CredentialResolver
	classifier *emailerror.Classifier
	logger     logger.Logger

	oauthClientID     string
	oauthClientSecret string

	newGmail      domain.GmailClientFactory
	newIMAP       func(addr string) (imapSession, error)
	logoutTimeout time.Duration
}

func NewRescuerService(creds domain.CredentialResolver, oauthClientID, oauthClientSecret string, logger logger.Logger) *RescuerService {
	return &RescuerService{
		creds:             creds,
		classifier:        emailerror.NewClassifier(),
		logger:            logger,
		oauthClientID:     oauthClientID,
		oauthClientSecret: oauthClientSecret,
		newGmail:          NewGmailClientFactory(oauthClientID, oauthClientSecret),
		newIMAP:           dialIMAP,
		logoutTimeout:     imapLogoutTimeout,
	}
}

// Rescue finds unread warmup mail tagged with customMailID in the
// sender's spam folder, moves it to the inbox and marks it read.
// Finding nothing is success. Only credential rejections surface as
// auth failures; any other failure is transient and must not stop the
// sender's reply pass.
func (s *RescuerService) Rescue(ctx context.Context, customMailID string, senderAddr string) (int, domain.SendOutcome, error) {
	cred, err := s.creds.Resolve(ctx, senderAddr)
	if err != nil {
		if errors.Is(err, domain.ErrCredentialNotFound) {
			return 0, domain.OutcomeAuthFailure, err
		}
		return 0, domain.OutcomeTransientFailure, err
	}

	if gmailAPIEligible(cred, s.oauthClientID, s.oauthClientSecret) {
		return s.rescueViaGmail(ctx, cred, customMailID)
	}
	return s.rescueViaIMAP(cred, customMailID)
}

func (s *RescuerService) rescueViaGmail(ctx context.Context, cred *domain.MailCredential, customMailID string) (int, domain.SendOutcome, error) {
	log := s.logger.WithField("email", cred.EmailID)

	client, err := s.newGmail(ctx, cred)
	if err != nil {
		return 0, s.classify(err), err
	}

	found, err := client.SearchSpam(ctx, customMailID)
	if err != nil {
		return 0, s.classify(err), err
	}

	// The query matches on tokenized subjects, so re-check for the
	// exact tag before touching anything.
	ids := make([]string, 0, len(found))
	for _, msg := range found {
		if strings.Contains(msg.Subject, customMailID) {
			ids = append(ids, msg.ID)
		}
	}
	if len(ids) == 0 {
		persistRefreshedToken(ctx, s.creds, cred, client, s.logger)
		return 0, domain.OutcomeSuccess, nil
	}

	if err := client.Unspam(ctx, ids); err != nil {
		return 0, s.classify(err), err
	}

	log.Info(fmt.Sprintf("Rescued %d messages from spam", len(ids)))
	persistRefreshedToken(ctx, s.creds, cred, client, s.logger)
	return len(ids), domain.OutcomeSuccess, nil
}

func (s *RescuerService) rescueViaIMAP(cred *domain.MailCredential, customMailID string) (int, domain.SendOutcome, error) {
	log := s.logger.WithField("email", cred.EmailID)

	session, err := s.newIMAP(domain.IMAPHost(cred.Service) + ":" + imapPort)
	if err != nil {
		return 0, domain.OutcomeTransientFailure, err
	}
	defer s.logoutWithTimeout(session)

	if err := session.Login(cred.EmailID, cred.SMTPPassword); err != nil {
		return 0, s.classify(err), err
	}

	if err := session.Select(domain.SpamFolder(cred.Service)); err != nil {
		return 0, s.classify(err), err
	}

	uids, err := session.SearchUnseenBySubject(customMailID)
	if err != nil {
		return 0, s.classify(err), err
	}
	if len(uids) == 0 {
		return 0, domain.OutcomeSuccess, nil
	}

	subjects, err := session.FetchSubjects(uids)
	if err != nil {
		return 0, s.classify(err), err
	}

	matched := make([]imap.UID, 0, len(uids))
	for _, uid := range uids {
		if strings.Contains(subjects[uid], customMailID) {
			matched = append(matched, uid)
		}
	}
	if len(matched) == 0 {
		return 0, domain.OutcomeSuccess, nil
	}

	if err := session.MarkSeenAndMove(matched, domain.InboxFolder(cred.Service)); err != nil {
		return 0, s.classify(err), err
	}

	log.Info(fmt.Sprintf("Rescued %d messages from spam", len(matched)))
	return len(matched), domain.OutcomeSuccess, nil
}

func (s *RescuerService) classify(err error) domain.SendOutcome {
	if s.classifier.IsAuthFailure(err) {
		return domain.OutcomeAuthFailure
	}
	return domain.OutcomeTransientFailure
}

// logoutWithTimeout tries a clean LOGOUT and severs the connection if
// the server does not answer in time.
func (s *RescuerService) logoutWithTimeout(session imapSession) {
	done := make(chan struct{})
	go func() {
		if err := session.Logout(); err != nil {
			s.logger.Debug(fmt.Sprintf("IMAP logout failed: %v", err))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(s.logoutTimeout):
		s.logger.Warn("IMAP logout timed out, dropping connection")
		session.Close()
	}
}
