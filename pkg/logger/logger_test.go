package logger

import (
	"bytes"
	"io"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(buf *bytes.Buffer) *zerologLogger {
	return &zerologLogger{logger: zerolog.New(buf)}
}

func TestWithFieldReturnsChildLogger(t *testing.T) {
	var buf bytes.Buffer
	l := newBufferLogger(&buf)

	child := l.WithField("replyFrom", "a@x.com")
	child.Info("child line")
	l.Info("parent line")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Contains(t, string(lines[0]), `"replyFrom":"a@x.com"`)
	assert.NotContains(t, string(lines[1]), "replyFrom")
}

func TestWithFieldsDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	l := newBufferLogger(&buf)

	child := l.WithFields(map[string]interface{}{
		"replyFrom": "a@x.com",
		"to":        "b@y.com",
	})
	child.Info("child line")
	l.Info("parent line")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Contains(t, string(lines[0]), `"replyFrom":"a@x.com"`)
	assert.Contains(t, string(lines[0]), `"to":"b@y.com"`)
	assert.NotContains(t, string(lines[1]), "replyFrom")
	assert.NotContains(t, string(lines[1]), "to")
}

// WithFields runs on a shared logger from concurrent envelope handlers,
// so it must be safe to call from multiple goroutines.
func TestWithFieldsConcurrent(t *testing.T) {
	l := &zerologLogger{logger: zerolog.New(io.Discard)}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			child := l.WithFields(map[string]interface{}{"n": n})
			child.Info("fan-out")
		}(i)
	}
	wg.Wait()
}

func TestNewLoggerWithLevelFiltersBelowLevel(t *testing.T) {
	lvl, err := zerolog.ParseLevel("warn")
	require.NoError(t, err)

	var buf bytes.Buffer
	l := &zerologLogger{logger: zerolog.New(&buf).Level(lvl)}

	l.Debug("dropped")
	l.Info("dropped")
	l.Warn("kept")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
}

func TestNewLoggerWithLevelUnknownFallsBackToInfo(t *testing.T) {
	l := NewLoggerWithLevel("nonsense")
	require.NotNil(t, l)

	zl, ok := l.(*zerologLogger)
	require.True(t, ok)
	assert.Equal(t, zerolog.InfoLevel, zl.logger.GetLevel())
}
