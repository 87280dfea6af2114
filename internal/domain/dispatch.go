package domain

import (
	"context"
)

//go:generate mockgen -destination mocks/mock_dispatcher.go -package mocks github.com/inboxwarm/inboxwarm/internal/domain Dispatcher
//go:generate mockgen -destination mocks/mock_rescuer.go -package mocks github.com/inboxwarm/inboxwarm/internal/domain Rescuer

// SendOutcome classifies the result of a reply or rescue attempt
type SendOutcome string

const (
	// OutcomeSuccess means the operation completed
	OutcomeSuccess SendOutcome = "success"
	// OutcomeAuthFailure means credentials were rejected; the sender
	// gets both cooldown tiers and its remaining work is abandoned
	OutcomeAuthFailure SendOutcome = "auth_failure"
	// OutcomeTransientFailure means the operation may succeed on a
	// later redelivery; the queue handle is left untouched
	OutcomeTransientFailure SendOutcome = "transient_failure"
)

// Dispatcher sends a threaded warmup reply from the sender mailbox,
// choosing the Gmail API when OAuth material is present and SMTP
// otherwise.
type Dispatcher interface {
	// SendReply sends one reply. The returned error carries detail
	// for logging; the outcome drives retry policy.
	SendReply(ctx context.Context, entry *BatchEntry) (SendOutcome, error)
	// SendBatch sends all entries of one sender sequentially, sharing
	// transport where the protocol allows. An auth failure aborts the
	// remaining entries. Outcomes are index-aligned with entries.
	SendBatch(ctx context.Context, replyFrom string, entries []*BatchEntry) ([]SendOutcome, error)
}

// Rescuer locates warmup mail in the sender-side spam folder by its
// subject tag, moves it to the inbox and marks it read.
type Rescuer interface {
	// Rescue reports how many messages it moved. The outcome is
	// OutcomeAuthFailure only for credential rejections; every other
	// failure is transient and must not stop the reply pass.
	Rescue(ctx context.Context, customMailID string, senderAddr string) (int, SendOutcome, error)
}
