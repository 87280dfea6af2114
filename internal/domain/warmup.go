package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/asaskevich/govalidator"
)

// WarmupRequest is the wire payload of one queue message: a request to
// reply to prior warmup mail from the tenant mailbox that received it.
type WarmupRequest struct {
	To              string `json:"to"`
	OriginalSubject string `json:"originalSubject"`
	Body            string `json:"body"`
	Keyword         string `json:"keyword,omitempty"`
	WarmupID        string `json:"warmupId"`
	ReferenceID     string `json:"referenceId,omitempty"`
	InReplyTo       string `json:"inReplyTo,omitempty"`
	ReplyFrom       string `json:"replyFrom"`
	CustomMailID    string `json:"customMailId"`
	ShouldReply     bool   `json:"shouldReply"`
	// ScheduledFor is wall-clock milliseconds; zero means "now".
	ScheduledFor int64 `json:"scheduledFor,omitempty"`
}

// UnmarshalJSON applies the shouldReply=true default when the producer
// omits the field, while still honoring an explicit false.
func (r *WarmupRequest) UnmarshalJSON(data []byte) error {
	type alias WarmupRequest
	aux := struct {
		*alias
		ShouldReply *bool `json:"shouldReply"`
	}{alias: (*alias)(r)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	if aux.ShouldReply == nil {
		r.ShouldReply = true
	} else {
		r.ShouldReply = *aux.ShouldReply
	}
	return nil
}

// Validate checks the required fields of a parsed request
func (r *WarmupRequest) Validate() error {
	if r.To == "" {
		return fmt.Errorf("invalid warmup request: missing to")
	}
	if !govalidator.IsEmail(r.To) {
		return fmt.Errorf("invalid warmup request: to is not an email address: %s", r.To)
	}
	if r.ReplyFrom == "" {
		return fmt.Errorf("invalid warmup request: missing replyFrom")
	}
	if !govalidator.IsEmail(r.ReplyFrom) {
		return fmt.Errorf("invalid warmup request: replyFrom is not an email address: %s", r.ReplyFrom)
	}
	if r.OriginalSubject == "" {
		return fmt.Errorf("invalid warmup request: missing originalSubject")
	}
	if r.Body == "" {
		return fmt.Errorf("invalid warmup request: missing body")
	}
	if r.WarmupID == "" {
		return fmt.Errorf("invalid warmup request: missing warmupId")
	}
	if r.CustomMailID == "" {
		return fmt.Errorf("invalid warmup request: missing customMailId")
	}
	return nil
}

// ScheduledAfter reports whether the request asks to be deferred past t
func (r *WarmupRequest) ScheduledAfter(t time.Time) bool {
	return r.ScheduledFor > 0 && r.ScheduledFor > t.UnixMilli()
}

// ParseWarmupRequest parses and validates a queue message body
func ParseWarmupRequest(body string) (*WarmupRequest, error) {
	var req WarmupRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		return nil, fmt.Errorf("failed to parse warmup request: %w", err)
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return &req, nil
}

// BatchEntry is a WarmupRequest admitted into the hour bucket, carrying
// the queue bookkeeping needed to settle the message later.
type BatchEntry struct {
	WarmupRequest
	ReceiptHandle string    `json:"receiptHandle"`
	AddedAt       time.Time `json:"addedAt"`
	ReceiveCount  int       `json:"receiveCount"`
}

// DedupKey is the bucket field name. One entry per (replyFrom, to) pair
// per hour.
func (e *BatchEntry) DedupKey() string {
	return e.ReplyFrom + DedupKeySeparator + e.To
}

// DedupKeySeparator splits the sender from the recipient in a bucket
// field name. The sender is always the first segment.
const DedupKeySeparator = "->"

// Marshal serializes the entry for bucket storage
func (e *BatchEntry) Marshal() (string, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return "", fmt.Errorf("failed to marshal batch entry: %w", err)
	}
	return string(data), nil
}

// UnmarshalBatchEntry deserializes a bucket field value
func UnmarshalBatchEntry(data string) (*BatchEntry, error) {
	var entry BatchEntry
	if err := json.Unmarshal([]byte(data), &entry); err != nil {
		return nil, fmt.Errorf("failed to unmarshal batch entry: %w", err)
	}
	return &entry, nil
}
