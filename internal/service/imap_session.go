package service

import (
	"fmt"

	"github.com/emersion/go-imap/v2"
	"github.com/emersion/go-imap/v2/imapclient"
)

// imapSession is the slice of an IMAP connection the rescue flow uses.
// Commands run in order on one connection; Close abandons it when a
// clean Logout hangs.
type imapSession interface {
	Login(username, password string) error
	Select(mailbox string) error
	// SearchUnseenBySubject returns the UIDs of unread messages whose
	// subject matches the tag per the server's SEARCH semantics.
	SearchUnseenBySubject(tag string) ([]imap.UID, error)
	// FetchSubjects returns the envelope subject per UID
	FetchSubjects(uids []imap.UID) (map[imap.UID]string, error)
	// MarkSeenAndMove flags the messages read, then moves them. The
	// flag store runs first because the move invalidates the UIDs.
	MarkSeenAndMove(uids []imap.UID, dest string) error
	Logout() error
	Close() error
}

type imapClientSession struct {
	client *imapclient.Client
}

// dialIMAP opens an implicit-TLS IMAP connection
func dialIMAP(addr string) (imapSession, error) {
	client, err := imapclient.DialTLS(addr, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to dial imap server %s: %w", addr, err)
	}
	return &imapClientSession{client: client}, nil
}

func (s *imapClientSession) Login(username, password string) error {
	return s.client.Login(username, password).Wait()
}

func (s *imapClientSession) Select(mailbox string) error {
	if _, err := s.client.Select(mailbox, nil).Wait(); err != nil {
		return fmt.Errorf("failed to select %s: %w", mailbox, err)
	}
	return nil
}

func (s *imapClientSession) SearchUnseenBySubject(tag string) ([]imap.UID, error) {
	criteria := &imap.SearchCriteria{
		Header:  []imap.SearchCriteriaHeaderField{{Key: "Subject", Value: tag}},
		NotFlag: []imap.Flag{imap.FlagSeen},
	}
	data, err := s.client.UIDSearch(criteria, nil).Wait()
	if err != nil {
		return nil, fmt.Errorf("failed to search mailbox: %w", err)
	}
	return data.AllUIDs(), nil
}

func (s *imapClientSession) FetchSubjects(uids []imap.UID) (map[imap.UID]string, error) {
	msgs, err := s.client.Fetch(imap.UIDSetNum(uids...), &imap.FetchOptions{
		UID:      true,
		Envelope: true,
	}).Collect()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch envelopes: %w", err)
	}

	subjects := make(map[imap.UID]string, len(msgs))
	for _, msg := range msgs {
		if msg.Envelope != nil {
			subjects[msg.UID] = msg.Envelope.Subject
		}
	}
	return subjects, nil
}

func (s *imapClientSession) MarkSeenAndMove(uids []imap.UID, dest string) error {
	set := imap.UIDSetNum(uids...)

	store := &imap.StoreFlags{
		Op:     imap.StoreFlagsAdd,
		Silent: true,
		Flags:  []imap.Flag{imap.FlagSeen},
	}
	if err := s.client.Store(set, store, nil).Close(); err != nil {
		return fmt.Errorf("failed to mark messages read: %w", err)
	}

	if _, err := s.client.Move(set, dest).Wait(); err != nil {
		return fmt.Errorf("failed to move messages to %s: %w", dest, err)
	}
	return nil
}

func (s *imapClientSession) Logout() error {
	return s.client.Logout().Wait()
}

func (s *imapClientSession) Close() error {
	return s.client.Close()
}
