package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequestJSON() string {
	return `{
		"to": "b@y.com",
		"originalSubject": "Warmup hello",
		"body": "Thanks!",
		"keyword": "kw",
		"warmupId": "w-1",
		"replyFrom": "a@x.com",
		"customMailId": "TAG42"
	}`
}

func TestParseWarmupRequest_Valid(t *testing.T) {
	req, err := ParseWarmupRequest(validRequestJSON())
	require.NoError(t, err)

	assert.Equal(t, "b@y.com", req.To)
	assert.Equal(t, "a@x.com", req.ReplyFrom)
	assert.Equal(t, "TAG42", req.CustomMailID)
	assert.True(t, req.ShouldReply, "shouldReply defaults to true when omitted")
	assert.Zero(t, req.ScheduledFor)
}

func TestParseWarmupRequest_ExplicitShouldReplyFalse(t *testing.T) {
	req, err := ParseWarmupRequest(`{
		"to": "b@y.com",
		"originalSubject": "s",
		"body": "b",
		"warmupId": "w",
		"replyFrom": "a@x.com",
		"customMailId": "c",
		"shouldReply": false
	}`)
	require.NoError(t, err)
	assert.False(t, req.ShouldReply)
}

func TestParseWarmupRequest_MalformedJSON(t *testing.T) {
	_, err := ParseWarmupRequest("{not json")
	assert.Error(t, err)
}

func TestParseWarmupRequest_MissingRequiredFields(t *testing.T) {
	cases := map[string]string{
		"missing to":           `{"originalSubject":"s","body":"b","warmupId":"w","replyFrom":"a@x.com","customMailId":"c"}`,
		"missing replyFrom":    `{"to":"b@y.com","originalSubject":"s","body":"b","warmupId":"w","customMailId":"c"}`,
		"missing subject":      `{"to":"b@y.com","body":"b","warmupId":"w","replyFrom":"a@x.com","customMailId":"c"}`,
		"missing body":         `{"to":"b@y.com","originalSubject":"s","warmupId":"w","replyFrom":"a@x.com","customMailId":"c"}`,
		"missing warmupId":     `{"to":"b@y.com","originalSubject":"s","body":"b","replyFrom":"a@x.com","customMailId":"c"}`,
		"missing customMailId": `{"to":"b@y.com","originalSubject":"s","body":"b","warmupId":"w","replyFrom":"a@x.com"}`,
		"to not an address":    `{"to":"nope","originalSubject":"s","body":"b","warmupId":"w","replyFrom":"a@x.com","customMailId":"c"}`,
		"from not an address":  `{"to":"b@y.com","originalSubject":"s","body":"b","warmupId":"w","replyFrom":"nope","customMailId":"c"}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseWarmupRequest(body)
			assert.Error(t, err)
		})
	}
}

func TestWarmupRequest_ScheduledAfter(t *testing.T) {
	now := time.Now()

	req := &WarmupRequest{}
	assert.False(t, req.ScheduledAfter(now), "zero means now")

	req.ScheduledFor = now.Add(20 * time.Minute).UnixMilli()
	assert.True(t, req.ScheduledAfter(now))

	req.ScheduledFor = now.Add(-time.Minute).UnixMilli()
	assert.False(t, req.ScheduledAfter(now))
}

func TestBatchEntry_DedupKey(t *testing.T) {
	entry := &BatchEntry{WarmupRequest: WarmupRequest{ReplyFrom: "a@x.com", To: "b@y.com"}}
	assert.Equal(t, "a@x.com->b@y.com", entry.DedupKey())
}

func TestBatchEntry_MarshalRoundTrip(t *testing.T) {
	added := time.Now().UTC().Truncate(time.Second)
	entry := &BatchEntry{
		WarmupRequest: WarmupRequest{
			To:              "b@y.com",
			OriginalSubject: "Warmup hello",
			Body:            "Thanks!",
			WarmupID:        "w-1",
			ReplyFrom:       "a@x.com",
			CustomMailID:    "TAG42",
			ShouldReply:     true,
			InReplyTo:       "<m1@x.com>",
			ReferenceID:     "<m1@x.com>",
		},
		ReceiptHandle: "rh-1",
		AddedAt:       added,
		ReceiveCount:  1,
	}

	data, err := entry.Marshal()
	require.NoError(t, err)

	got, err := UnmarshalBatchEntry(data)
	require.NoError(t, err)
	assert.Equal(t, entry.DedupKey(), got.DedupKey())
	assert.Equal(t, "rh-1", got.ReceiptHandle)
	assert.Equal(t, 1, got.ReceiveCount)
	assert.True(t, got.ShouldReply)
	assert.Equal(t, "<m1@x.com>", got.InReplyTo)
}

func TestHourBucketKey(t *testing.T) {
	at := time.UnixMilli(3 * time.Hour.Milliseconds())
	assert.Equal(t, "email_batch:3", HourBucketKey(at))

	// Two instants in the same hour share a bucket
	a := time.UnixMilli(100*time.Hour.Milliseconds() + 1)
	b := time.UnixMilli(101*time.Hour.Milliseconds() - 1)
	assert.Equal(t, HourBucketKey(a), HourBucketKey(b))

	// Adjacent hours do not
	c := time.UnixMilli(101 * time.Hour.Milliseconds())
	assert.NotEqual(t, HourBucketKey(a), HourBucketKey(c))
}
