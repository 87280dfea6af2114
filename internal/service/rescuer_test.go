package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/emersion/go-imap/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inboxwarm/inboxwarm/internal/domain"
	"github.com/inboxwarm/inboxwarm/internal/domain/mocks"
	"github.com/inboxwarm/inboxwarm/pkg/logger"
)

// fakeIMAPSession scripts one rescue conversation
type fakeIMAPSession struct {
	loginErr  error
	selectErr error

	searchUIDs []imap.UID
	searchErr  error

	subjects map[imap.UID]string
	fetchErr error

	moveErr error

	loginUser    string
	selectedBox  string
	searchedTag  string
	movedUIDs    []imap.UID
	movedTo      string
	loggedOut    bool
	closed       bool
	logoutBlocks bool
}

func (f *fakeIMAPSession) Login(username, password string) error {
	f.loginUser = username
	return f.loginErr
}

func (f *fakeIMAPSession) Select(mailbox string) error {
	f.selectedBox = mailbox
	return f.selectErr
}

func (f *fakeIMAPSession) SearchUnseenBySubject(tag string) ([]imap.UID, error) {
	f.searchedTag = tag
	return f.searchUIDs, f.searchErr
}

func (f *fakeIMAPSession) FetchSubjects(uids []imap.UID) (map[imap.UID]string, error) {
	return f.subjects, f.fetchErr
}

func (f *fakeIMAPSession) MarkSeenAndMove(uids []imap.UID, dest string) error {
	f.movedUIDs = uids
	f.movedTo = dest
	return f.moveErr
}

func (f *fakeIMAPSession) Logout() error {
	if f.logoutBlocks {
		time.Sleep(time.Second)
	}
	f.loggedOut = true
	return nil
}

func (f *fakeIMAPSession) Close() error {
	f.closed = true
	return nil
}

func newTestRescuer(t *testing.T, creds domain.CredentialResolver, session *fakeIMAPSession) *RescuerService {
	t.Helper()
	r := NewRescuerService(creds, "client-id", "client-secret", logger.NewTestLogger(t))
	r.newIMAP = func(addr string) (imapSession, error) {
		return session, nil
	}
	return r
}

func resolveOutlook(ctrl *gomock.Controller) *mocks.MockCredentialResolver {
	creds := mocks.NewMockCredentialResolver(ctrl)
	creds.EXPECT().Resolve(gomock.Any(), "a@x.com").Return(&domain.MailCredential{
		EmailID:      "a@x.com",
		Service:      domain.ServiceOutlook,
		SMTPPassword: "app-password",
	}, nil)
	return creds
}

func TestRescuer_IMAPMovesExactMatches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	session := &fakeIMAPSession{
		searchUIDs: []imap.UID{4, 7, 9},
		subjects: map[imap.UID]string{
			4: "Quick question TAG42",
			7: "Unrelated TAG421 lookalike",
			9: "Re: Quick question TAG42",
		},
	}

	r := newTestRescuer(t, resolveOutlook(ctrl), session)
	rescued, outcome, err := r.Rescue(context.Background(), "TAG42", "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeSuccess, outcome)
	assert.Equal(t, 3, rescued)

	assert.Equal(t, "a@x.com", session.loginUser)
	assert.Equal(t, "Spam", session.selectedBox)
	assert.Equal(t, "TAG42", session.searchedTag)
	// TAG421 contains TAG42 as a substring, so it moves too; the tag
	// length makes accidental collisions implausible in practice
	assert.Equal(t, []imap.UID{4, 7, 9}, session.movedUIDs)
	assert.Equal(t, "Inbox", session.movedTo)
	assert.True(t, session.loggedOut)
}

func TestRescuer_IMAPNothingInSpam(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	session := &fakeIMAPSession{}
	r := newTestRescuer(t, resolveOutlook(ctrl), session)

	rescued, outcome, err := r.Rescue(context.Background(), "TAG42", "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeSuccess, outcome)
	assert.Zero(t, rescued)
	assert.Nil(t, session.movedUIDs)
	assert.True(t, session.loggedOut)
}

func TestRescuer_IMAPFilterDropsAllCandidates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	session := &fakeIMAPSession{
		searchUIDs: []imap.UID{4},
		subjects:   map[imap.UID]string{4: "Something else entirely"},
	}
	r := newTestRescuer(t, resolveOutlook(ctrl), session)

	rescued, outcome, err := r.Rescue(context.Background(), "TAG42", "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeSuccess, outcome)
	assert.Zero(t, rescued)
	assert.Nil(t, session.movedUIDs)
}

func TestRescuer_IMAPLoginRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	session := &fakeIMAPSession{loginErr: errors.New("NO LOGIN failed")}
	r := newTestRescuer(t, resolveOutlook(ctrl), session)

	_, outcome, err := r.Rescue(context.Background(), "TAG42", "a@x.com")
	assert.Error(t, err)
	assert.Equal(t, domain.OutcomeAuthFailure, outcome)
	assert.True(t, session.loggedOut, "the connection still gets a logout")
}

func TestRescuer_IMAPSelectFailureIsTransient(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	session := &fakeIMAPSession{selectErr: errors.New("NO mailbox unavailable")}
	r := newTestRescuer(t, resolveOutlook(ctrl), session)

	_, outcome, err := r.Rescue(context.Background(), "TAG42", "a@x.com")
	assert.Error(t, err)
	assert.Equal(t, domain.OutcomeTransientFailure, outcome)
}

func TestRescuer_IMAPDialFailureIsTransient(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r := NewRescuerService(resolveOutlook(ctrl), "client-id", "client-secret", logger.NewTestLogger(t))
	r.newIMAP = func(addr string) (imapSession, error) {
		assert.Equal(t, "outlook.office365.com:993", addr)
		return nil, errors.New("connection refused")
	}

	_, outcome, err := r.Rescue(context.Background(), "TAG42", "a@x.com")
	assert.Error(t, err)
	assert.Equal(t, domain.OutcomeTransientFailure, outcome)
}

func TestRescuer_IMAPLogoutWatchdogDropsConnection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	session := &fakeIMAPSession{logoutBlocks: true}
	r := newTestRescuer(t, resolveOutlook(ctrl), session)
	r.logoutTimeout = 10 * time.Millisecond

	_, outcome, err := r.Rescue(context.Background(), "TAG42", "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeSuccess, outcome)
	assert.True(t, session.closed)
}

func TestRescuer_GmailAPIRescue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	creds := mocks.NewMockCredentialResolver(ctrl)
	creds.EXPECT().Resolve(gomock.Any(), "a@x.com").Return(gmailCred(), nil)

	client := mocks.NewMockGmailClient(ctrl)
	client.EXPECT().SearchSpam(gomock.Any(), "TAG42").Return([]*domain.SpamMessage{
		{ID: "m1", Subject: "Quick question TAG42"},
		{ID: "m2", Subject: "Token overlap but no tag"},
	}, nil)
	client.EXPECT().Unspam(gomock.Any(), []string{"m1"}).Return(nil)
	client.EXPECT().AccessToken().Return("ya29.old", nil)

	r := NewRescuerService(creds, "client-id", "client-secret", logger.NewTestLogger(t))
	r.newGmail = func(context.Context, *domain.MailCredential) (domain.GmailClient, error) {
		return client, nil
	}

	rescued, outcome, err := r.Rescue(context.Background(), "TAG42", "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeSuccess, outcome)
	assert.Equal(t, 1, rescued)
}

func TestRescuer_GmailAPIAuthFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	creds := mocks.NewMockCredentialResolver(ctrl)
	creds.EXPECT().Resolve(gomock.Any(), "a@x.com").Return(gmailCred(), nil)

	client := mocks.NewMockGmailClient(ctrl)
	client.EXPECT().SearchSpam(gomock.Any(), "TAG42").
		Return(nil, errors.New("oauth2: invalid credentials"))

	r := NewRescuerService(creds, "client-id", "client-secret", logger.NewTestLogger(t))
	r.newGmail = func(context.Context, *domain.MailCredential) (domain.GmailClient, error) {
		return client, nil
	}

	_, outcome, err := r.Rescue(context.Background(), "TAG42", "a@x.com")
	assert.Error(t, err)
	assert.Equal(t, domain.OutcomeAuthFailure, outcome)
}

func TestRescuer_CredentialNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	creds := mocks.NewMockCredentialResolver(ctrl)
	creds.EXPECT().Resolve(gomock.Any(), "ghost@x.com").Return(nil, domain.ErrCredentialNotFound)

	r := NewRescuerService(creds, "client-id", "client-secret", logger.NewTestLogger(t))

	_, outcome, err := r.Rescue(context.Background(), "TAG42", "ghost@x.com")
	assert.ErrorIs(t, err, domain.ErrCredentialNotFound)
	assert.Equal(t, domain.OutcomeAuthFailure, outcome)
}
