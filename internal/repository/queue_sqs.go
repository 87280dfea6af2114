package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/sqs"

	"github.com/inboxwarm/inboxwarm/internal/domain"
	"github.com/inboxwarm/inboxwarm/pkg/logger"
)

const (
	receiveBatchSize = 10
	longPollSeconds  = 10
)

// SQSWarmupQueue implements domain.WarmupQueue on AWS SQS
type SQSWarmupQueue struct {
	client   domain.SQSClient
	queueURL string
	logger   logger.Logger
}

// NewSQSWarmupQueue creates a new SQS-backed warmup queue
func NewSQSWarmupQueue(client domain.SQSClient, queueURL string, log logger.Logger) *SQSWarmupQueue {
	return &SQSWarmupQueue{
		client:   client,
		queueURL: queueURL,
		logger:   log,
	}
}

// Receive long-polls for a batch of envelopes with their receive counts
func (q *SQSWarmupQueue) Receive(ctx context.Context) ([]domain.QueueEnvelope, error) {
	out, err := q.client.ReceiveMessageWithContext(ctx, &sqs.ReceiveMessageInput{
		QueueUrl:            aws.String(q.queueURL),
		MaxNumberOfMessages: aws.Int64(receiveBatchSize),
		WaitTimeSeconds:     aws.Int64(longPollSeconds),
		AttributeNames:      []*string{aws.String(sqs.MessageSystemAttributeNameApproximateReceiveCount)},
	})
	if err != nil {
		return nil, q.classify(fmt.Errorf("failed to receive messages: %w", err))
	}

	envelopes := make([]domain.QueueEnvelope, 0, len(out.Messages))
	for _, msg := range out.Messages {
		env := domain.QueueEnvelope{
			Body:          aws.StringValue(msg.Body),
			ReceiptHandle: aws.StringValue(msg.ReceiptHandle),
			ReceiveCount:  1,
		}
		if raw, ok := msg.Attributes[sqs.MessageSystemAttributeNameApproximateReceiveCount]; ok {
			if n, convErr := strconv.Atoi(aws.StringValue(raw)); convErr == nil {
				env.ReceiveCount = n
			}
		}
		envelopes = append(envelopes, env)
	}
	return envelopes, nil
}

// Delete permanently removes a message. Deleting an already-settled
// handle is treated as success.
func (q *SQSWarmupQueue) Delete(ctx context.Context, receiptHandle string) error {
	_, err := q.client.DeleteMessageWithContext(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(q.queueURL),
		ReceiptHandle: aws.String(receiptHandle),
	})
	if err != nil {
		if aerr, ok := err.(awserr.Error); ok && aerr.Code() == sqs.ErrCodeReceiptHandleIsInvalid {
			return nil
		}
		return q.classify(fmt.Errorf("failed to delete message: %w", err))
	}
	return nil
}

// DelayRequeue publishes a copy of body with a delivery delay capped at
// the queue maximum
func (q *SQSWarmupQueue) DelayRequeue(ctx context.Context, body string, delay time.Duration) error {
	if delay > domain.MaxQueueDelay {
		delay = domain.MaxQueueDelay
	}
	if delay < 0 {
		delay = 0
	}
	_, err := q.client.SendMessageWithContext(ctx, &sqs.SendMessageInput{
		QueueUrl:     aws.String(q.queueURL),
		MessageBody:  aws.String(body),
		DelaySeconds: aws.Int64(int64(delay / time.Second)),
	})
	if err != nil {
		return q.classify(fmt.Errorf("failed to requeue message: %w", err))
	}
	return nil
}

// Hide extends the visibility timeout of a received message
func (q *SQSWarmupQueue) Hide(ctx context.Context, receiptHandle string, d time.Duration) error {
	_, err := q.client.ChangeMessageVisibilityWithContext(ctx, &sqs.ChangeMessageVisibilityInput{
		QueueUrl:          aws.String(q.queueURL),
		ReceiptHandle:     aws.String(receiptHandle),
		VisibilityTimeout: aws.Int64(int64(d / time.Second)),
	})
	if err != nil {
		return q.classify(fmt.Errorf("failed to change message visibility: %w", err))
	}
	return nil
}

// ScheduleFuture stamps scheduledFor into the payload and requeues with
// the maximum delay. The next dequeue re-checks scheduledFor and defers
// again if it is still in the future.
func (q *SQSWarmupQueue) ScheduleFuture(ctx context.Context, req *domain.WarmupRequest, at time.Time) error {
	copied := *req
	copied.ScheduledFor = at.UnixMilli()

	body, err := jsonMarshalRequest(&copied)
	if err != nil {
		return err
	}
	return q.DelayRequeue(ctx, body, domain.MaxQueueDelay)
}

// classify wraps an SQS error into the transient/permanent policy split
func (q *SQSWarmupQueue) classify(err error) error {
	if aerr, ok := errAsAWS(err); ok {
		switch aerr.Code() {
		case sqs.ErrCodeQueueDoesNotExist,
			sqs.ErrCodeInvalidMessageContents,
			sqs.ErrCodeUnsupportedOperation,
			"AccessDenied",
			"InvalidAddress":
			return &domain.PermanentQueueError{Err: err}
		}
	}
	return &domain.TransientQueueError{Err: err}
}

func jsonMarshalRequest(req *domain.WarmupRequest) (string, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal warmup request: %w", err)
	}
	return string(data), nil
}

func errAsAWS(err error) (awserr.Error, bool) {
	for err != nil {
		if aerr, ok := err.(awserr.Error); ok {
			return aerr, true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return nil, false
		}
		err = u.Unwrap()
	}
	return nil, false
}
