package main

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inboxwarm/inboxwarm/internal/domain"
	"github.com/inboxwarm/inboxwarm/internal/repository"
	"github.com/inboxwarm/inboxwarm/pkg/logger"
)

func newTestClient(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return client, mr
}

func TestRunBlockUnblock(t *testing.T) {
	client, mr := newTestClient(t)
	store := repository.NewRedisCooldownStore(client, logger.NewTestLogger(t))
	ctx := context.Background()

	require.NoError(t, run(ctx, client, store, []string{"block", "a@x.com"}))
	assert.True(t, mr.Exists(domain.BlockedKeyPrefix+"a@x.com"))

	require.NoError(t, run(ctx, client, store, []string{"unblock", "a@x.com"}))
	assert.False(t, mr.Exists(domain.BlockedKeyPrefix+"a@x.com"))
}

func TestRunCooldownUncooldown(t *testing.T) {
	client, mr := newTestClient(t)
	store := repository.NewRedisCooldownStore(client, logger.NewTestLogger(t))
	ctx := context.Background()

	require.NoError(t, run(ctx, client, store, []string{"cooldown", "a@x.com"}))
	assert.True(t, mr.Exists(domain.CooldownKeyPrefix+"a@x.com"))

	require.NoError(t, run(ctx, client, store, []string{"uncooldown", "a@x.com"}))
	assert.False(t, mr.Exists(domain.CooldownKeyPrefix+"a@x.com"))
}

func TestRunRejectsUnknownCommand(t *testing.T) {
	client, _ := newTestClient(t)
	store := repository.NewRedisCooldownStore(client, logger.NewTestLogger(t))

	err := run(context.Background(), client, store, []string{"explode", "a@x.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

func TestRunRequiresSender(t *testing.T) {
	client, _ := newTestClient(t)
	store := repository.NewRedisCooldownStore(client, logger.NewTestLogger(t))

	err := run(context.Background(), client, store, []string{"block"})
	require.Error(t, err)
}

func TestScanKeysPagination(t *testing.T) {
	client, mr := newTestClient(t)
	ctx := context.Background()

	for i := 0; i < 250; i++ {
		mr.Set(domain.BlockedKeyPrefix+string(rune('a'+i%26))+string(rune('0'+i/26))+"@x.com", "1")
	}

	keys, err := scanKeys(ctx, client, domain.BlockedKeyPrefix+"*")
	require.NoError(t, err)
	assert.Len(t, keys, 250)
}
