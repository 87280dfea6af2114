package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inboxwarm/inboxwarm/internal/domain"
	"github.com/inboxwarm/inboxwarm/internal/domain/mocks"
	"github.com/inboxwarm/inboxwarm/pkg/logger"
)

func requestBody(t *testing.T, req *domain.WarmupRequest) string {
	t.Helper()
	data, err := json.Marshal(req)
	require.NoError(t, err)
	return string(data)
}

func validRequest() *domain.WarmupRequest {
	return &domain.WarmupRequest{
		To:              "b@y.com",
		OriginalSubject: "Quick question TAG42",
		Body:            "Thanks!",
		WarmupID:        "w-1",
		ReplyFrom:       "a@x.com",
		CustomMailID:    "TAG42",
		ShouldReply:     true,
	}
}

func newTestIngest(queue domain.WarmupQueue, store domain.CooldownStore, t *testing.T) *IngestService {
	t.Helper()
	return NewIngestService(queue, store, logger.NewTestLogger(t))
}

func TestIngest_AdmitsAndDeletes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	queue := mocks.NewMockWarmupQueue(ctrl)
	store := mocks.NewMockCooldownStore(ctrl)

	queue.EXPECT().Receive(gomock.Any()).Return([]domain.QueueEnvelope{
		{Body: requestBody(t, validRequest()), ReceiptHandle: "rh-1", ReceiveCount: 1},
	}, nil)
	store.EXPECT().IsInCooldown(gomock.Any(), "a@x.com").Return(false, nil)
	store.EXPECT().IsBlocked(gomock.Any(), "a@x.com").Return(false, nil)
	store.EXPECT().AddToBucket(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *domain.BatchEntry) (bool, error) {
			assert.Equal(t, "rh-1", entry.ReceiptHandle)
			assert.Equal(t, 1, entry.ReceiveCount)
			assert.Equal(t, "a@x.com->b@y.com", entry.DedupKey())
			return true, nil
		})
	queue.EXPECT().Delete(gomock.Any(), "rh-1").Return(nil)

	newTestIngest(queue, store, t).Tick(context.Background())
}

func TestIngest_DuplicateStillDeleted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	queue := mocks.NewMockWarmupQueue(ctrl)
	store := mocks.NewMockCooldownStore(ctrl)

	queue.EXPECT().Receive(gomock.Any()).Return([]domain.QueueEnvelope{
		{Body: requestBody(t, validRequest()), ReceiptHandle: "rh-1", ReceiveCount: 1},
	}, nil)
	store.EXPECT().IsInCooldown(gomock.Any(), "a@x.com").Return(false, nil)
	store.EXPECT().IsBlocked(gomock.Any(), "a@x.com").Return(false, nil)
	store.EXPECT().AddToBucket(gomock.Any(), gomock.Any()).Return(false, nil)
	queue.EXPECT().Delete(gomock.Any(), "rh-1").Return(nil)

	newTestIngest(queue, store, t).Tick(context.Background())
}

func TestIngest_BucketErrorLeavesMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	queue := mocks.NewMockWarmupQueue(ctrl)
	store := mocks.NewMockCooldownStore(ctrl)

	queue.EXPECT().Receive(gomock.Any()).Return([]domain.QueueEnvelope{
		{Body: requestBody(t, validRequest()), ReceiptHandle: "rh-1", ReceiveCount: 1},
	}, nil)
	store.EXPECT().IsInCooldown(gomock.Any(), "a@x.com").Return(false, nil)
	store.EXPECT().IsBlocked(gomock.Any(), "a@x.com").Return(false, nil)
	store.EXPECT().AddToBucket(gomock.Any(), gomock.Any()).Return(false, errors.New("redis down"))
	// No Delete: the message must survive for redelivery

	newTestIngest(queue, store, t).Tick(context.Background())
}

func TestIngest_MalformedDeleted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	queue := mocks.NewMockWarmupQueue(ctrl)
	store := mocks.NewMockCooldownStore(ctrl)

	queue.EXPECT().Receive(gomock.Any()).Return([]domain.QueueEnvelope{
		{Body: "{not json", ReceiptHandle: "rh-1", ReceiveCount: 1},
		{Body: `{"to":"not-an-email"}`, ReceiptHandle: "rh-2", ReceiveCount: 1},
	}, nil)
	queue.EXPECT().Delete(gomock.Any(), "rh-1").Return(nil)
	queue.EXPECT().Delete(gomock.Any(), "rh-2").Return(nil)

	newTestIngest(queue, store, t).Tick(context.Background())
}

func TestIngest_FutureScheduledRequeuedWithRemainingDelay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	queue := mocks.NewMockWarmupQueue(ctrl)
	store := mocks.NewMockCooldownStore(ctrl)

	now := time.Now()
	req := validRequest()
	req.ScheduledFor = now.Add(5 * time.Minute).UnixMilli()
	body := requestBody(t, req)

	queue.EXPECT().Receive(gomock.Any()).Return([]domain.QueueEnvelope{
		{Body: body, ReceiptHandle: "rh-1", ReceiveCount: 1},
	}, nil)
	queue.EXPECT().DelayRequeue(gomock.Any(), body, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, delay time.Duration) error {
			assert.Equal(t, time.UnixMilli(req.ScheduledFor).Sub(now), delay)
			return nil
		})
	queue.EXPECT().Delete(gomock.Any(), "rh-1").Return(nil)

	svc := newTestIngest(queue, store, t)
	svc.now = func() time.Time { return now }
	svc.Tick(context.Background())
}

func TestIngest_FarFutureScheduleDelayCapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	queue := mocks.NewMockWarmupQueue(ctrl)
	store := mocks.NewMockCooldownStore(ctrl)

	now := time.Now()
	req := validRequest()
	req.ScheduledFor = now.Add(6 * time.Hour).UnixMilli()
	body := requestBody(t, req)

	queue.EXPECT().Receive(gomock.Any()).Return([]domain.QueueEnvelope{
		{Body: body, ReceiptHandle: "rh-1", ReceiveCount: 1},
	}, nil)
	// The hop waits the maximum; the next receipt re-checks scheduledFor
	queue.EXPECT().DelayRequeue(gomock.Any(), body, domain.MaxQueueDelay).Return(nil)
	queue.EXPECT().Delete(gomock.Any(), "rh-1").Return(nil)

	svc := newTestIngest(queue, store, t)
	svc.now = func() time.Time { return now }
	svc.Tick(context.Background())
}

func TestIngest_FutureScheduleRequeueFailureKeepsOriginal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	queue := mocks.NewMockWarmupQueue(ctrl)
	store := mocks.NewMockCooldownStore(ctrl)

	req := validRequest()
	req.ScheduledFor = time.Now().Add(30 * time.Minute).UnixMilli()

	queue.EXPECT().Receive(gomock.Any()).Return([]domain.QueueEnvelope{
		{Body: requestBody(t, req), ReceiptHandle: "rh-1", ReceiveCount: 1},
	}, nil)
	queue.EXPECT().DelayRequeue(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&domain.TransientQueueError{Err: errors.New("throttled")})
	// No Delete: the original carries the schedule until the copy lands

	newTestIngest(queue, store, t).Tick(context.Background())
}

func TestIngest_PastScheduleAdmitted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	queue := mocks.NewMockWarmupQueue(ctrl)
	store := mocks.NewMockCooldownStore(ctrl)

	req := validRequest()
	req.ScheduledFor = time.Now().Add(-time.Minute).UnixMilli()

	queue.EXPECT().Receive(gomock.Any()).Return([]domain.QueueEnvelope{
		{Body: requestBody(t, req), ReceiptHandle: "rh-1", ReceiveCount: 2},
	}, nil)
	store.EXPECT().IsInCooldown(gomock.Any(), "a@x.com").Return(false, nil)
	store.EXPECT().IsBlocked(gomock.Any(), "a@x.com").Return(false, nil)
	store.EXPECT().AddToBucket(gomock.Any(), gomock.Any()).Return(true, nil)
	queue.EXPECT().Delete(gomock.Any(), "rh-1").Return(nil)

	newTestIngest(queue, store, t).Tick(context.Background())
}

func TestIngest_CooldownParksFirstDelivery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	queue := mocks.NewMockWarmupQueue(ctrl)
	store := mocks.NewMockCooldownStore(ctrl)

	queue.EXPECT().Receive(gomock.Any()).Return([]domain.QueueEnvelope{
		{Body: requestBody(t, validRequest()), ReceiptHandle: "rh-1", ReceiveCount: 1},
	}, nil)
	store.EXPECT().IsInCooldown(gomock.Any(), "a@x.com").Return(true, nil)
	queue.EXPECT().Hide(gomock.Any(), "rh-1", domain.ParkVisibility).Return(nil)

	newTestIngest(queue, store, t).Tick(context.Background())
}

func TestIngest_CooldownDropsRedelivery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	queue := mocks.NewMockWarmupQueue(ctrl)
	store := mocks.NewMockCooldownStore(ctrl)

	queue.EXPECT().Receive(gomock.Any()).Return([]domain.QueueEnvelope{
		{Body: requestBody(t, validRequest()), ReceiptHandle: "rh-1", ReceiveCount: 2},
	}, nil)
	store.EXPECT().IsInCooldown(gomock.Any(), "a@x.com").Return(true, nil)
	queue.EXPECT().Delete(gomock.Any(), "rh-1").Return(nil)

	newTestIngest(queue, store, t).Tick(context.Background())
}

func TestIngest_BlockedSenderDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	queue := mocks.NewMockWarmupQueue(ctrl)
	store := mocks.NewMockCooldownStore(ctrl)

	queue.EXPECT().Receive(gomock.Any()).Return([]domain.QueueEnvelope{
		{Body: requestBody(t, validRequest()), ReceiptHandle: "rh-1", ReceiveCount: 1},
	}, nil)
	store.EXPECT().IsInCooldown(gomock.Any(), "a@x.com").Return(false, nil)
	store.EXPECT().IsBlocked(gomock.Any(), "a@x.com").Return(true, nil)
	queue.EXPECT().Delete(gomock.Any(), "rh-1").Return(nil)

	newTestIngest(queue, store, t).Tick(context.Background())
}

func TestIngest_StoreErrorLeavesMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	queue := mocks.NewMockWarmupQueue(ctrl)
	store := mocks.NewMockCooldownStore(ctrl)

	queue.EXPECT().Receive(gomock.Any()).Return([]domain.QueueEnvelope{
		{Body: requestBody(t, validRequest()), ReceiptHandle: "rh-1", ReceiveCount: 1},
	}, nil)
	store.EXPECT().IsInCooldown(gomock.Any(), "a@x.com").Return(false, errors.New("redis down"))

	newTestIngest(queue, store, t).Tick(context.Background())
}

func TestIngest_ReceiveErrorIsLoggedOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	queue := mocks.NewMockWarmupQueue(ctrl)
	store := mocks.NewMockCooldownStore(ctrl)

	queue.EXPECT().Receive(gomock.Any()).
		Return(nil, &domain.TransientQueueError{Err: errors.New("throttled")})

	newTestIngest(queue, store, t).Tick(context.Background())
}

func TestIngest_ProcessesWholeBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	queue := mocks.NewMockWarmupQueue(ctrl)
	store := mocks.NewMockCooldownStore(ctrl)

	second := validRequest()
	second.To = "c@z.com"

	queue.EXPECT().Receive(gomock.Any()).Return([]domain.QueueEnvelope{
		{Body: requestBody(t, validRequest()), ReceiptHandle: "rh-1", ReceiveCount: 1},
		{Body: requestBody(t, second), ReceiptHandle: "rh-2", ReceiveCount: 1},
	}, nil)
	store.EXPECT().IsInCooldown(gomock.Any(), "a@x.com").Return(false, nil).Times(2)
	store.EXPECT().IsBlocked(gomock.Any(), "a@x.com").Return(false, nil).Times(2)
	store.EXPECT().AddToBucket(gomock.Any(), gomock.Any()).Return(true, nil).Times(2)
	queue.EXPECT().Delete(gomock.Any(), "rh-1").Return(nil)
	queue.EXPECT().Delete(gomock.Any(), "rh-2").Return(nil)

	newTestIngest(queue, store, t).Tick(context.Background())
}
