package domain

import (
	"context"
	"errors"
	"time"
)

//go:generate mockgen -destination mocks/mock_warmup_queue.go -package mocks github.com/inboxwarm/inboxwarm/internal/domain WarmupQueue

const (
	// MaxQueueDelay is the longest delivery delay the queue accepts
	// on a single requeue. Requests scheduled further out are
	// re-checked on their next dequeue.
	MaxQueueDelay = 900 * time.Second

	// ParkVisibility hides a message long enough for an auth block to
	// expire before the message is seen again.
	ParkVisibility = 12 * time.Hour

	// PoisonReceiveCount is the receive count at which a message that
	// keeps coming back gets deleted instead of parked.
	PoisonReceiveCount = 2
)

// QueueEnvelope is one received queue message with its redelivery state
type QueueEnvelope struct {
	Body          string
	ReceiptHandle string
	ReceiveCount  int
}

// WarmupQueue is the durable at-least-once work queue feeding the worker
type WarmupQueue interface {
	// Receive long-polls for a batch of envelopes
	Receive(ctx context.Context) ([]QueueEnvelope, error)
	// Delete permanently removes a message
	Delete(ctx context.Context, receiptHandle string) error
	// DelayRequeue publishes a copy of body with a delivery delay,
	// capped at MaxQueueDelay
	DelayRequeue(ctx context.Context, body string, delay time.Duration) error
	// Hide extends the visibility timeout of a received message
	Hide(ctx context.Context, receiptHandle string, d time.Duration) error
	// ScheduleFuture stamps scheduledFor into the payload and enqueues
	// it with the maximum delay. Producers use it to publish work for a
	// future hour; once received, the worker requeues with the remaining
	// delay instead.
	ScheduleFuture(ctx context.Context, req *WarmupRequest, at time.Time) error
}

// TransientQueueError marks a queue failure worth retrying next tick
type TransientQueueError struct {
	Err error
}

func (e *TransientQueueError) Error() string {
	return "transient queue error: " + e.Err.Error()
}

func (e *TransientQueueError) Unwrap() error { return e.Err }

// PermanentQueueError marks a queue failure that will not heal; the
// message is dropped and logged critical
type PermanentQueueError struct {
	Err error
}

func (e *PermanentQueueError) Error() string {
	return "permanent queue error: " + e.Err.Error()
}

func (e *PermanentQueueError) Unwrap() error { return e.Err }

// IsTransientQueueError reports whether err is a retryable queue failure
func IsTransientQueueError(err error) bool {
	var t *TransientQueueError
	return errors.As(err, &t)
}

// IsPermanentQueueError reports whether err is a terminal queue failure
func IsPermanentQueueError(err error) bool {
	var p *PermanentQueueError
	return errors.As(err, &p)
}
