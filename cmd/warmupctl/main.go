package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/inboxwarm/inboxwarm/internal/domain"
	"github.com/inboxwarm/inboxwarm/internal/repository"
	"github.com/inboxwarm/inboxwarm/pkg/logger"
)

const usage = `Usage: warmupctl [flags] <command> [sender]

Commands:
  list                 list blocked and cooled-down senders
  check <sender>       show the admission flags for one sender
  block <sender>       set the 8h auth-failure block
  unblock <sender>     clear the auth-failure block
  cooldown <sender>    set the 48h extended cooldown
  uncooldown <sender>  clear the extended cooldown

Flags:
  -redis addr      redis address (default localhost:6379, or REDIS_ADDR)
  -password pass   redis password (or REDIS_PASSWORD)
  -db n            redis database number
`

func envOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

func main() {
	redisAddr := flag.String("redis", envOr("REDIS_ADDR", "localhost:6379"), "redis address")
	redisPassword := flag.String("password", os.Getenv("REDIS_PASSWORD"), "redis password")
	redisDB := flag.Int("db", 0, "redis database number")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     *redisAddr,
		Password: *redisPassword,
		DB:       *redisDB,
	})
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect to redis at %s: %v\n", *redisAddr, err)
		os.Exit(1)
	}

	store := repository.NewRedisCooldownStore(client, logger.NewLoggerWithLevel("error"))

	if err := run(ctx, client, store, args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, client *redis.Client, store domain.CooldownStore, args []string) error {
	command := args[0]

	if command == "list" {
		return listSenders(ctx, client)
	}

	if len(args) < 2 {
		return fmt.Errorf("%s requires a sender address", command)
	}
	sender := args[1]

	switch command {
	case "check":
		blocked, err := store.IsBlocked(ctx, sender)
		if err != nil {
			return err
		}
		cooled, err := store.IsInCooldown(ctx, sender)
		if err != nil {
			return err
		}
		fmt.Printf("%s\n  blocked:  %v\n  cooldown: %v\n", sender, blocked, cooled)
		return nil
	case "block":
		if err := store.MarkBlocked(ctx, sender); err != nil {
			return err
		}
		fmt.Printf("blocked %s for %s\n", sender, domain.BlockedTTL)
		return nil
	case "unblock":
		if err := store.ClearBlocked(ctx, sender); err != nil {
			return err
		}
		fmt.Printf("unblocked %s\n", sender)
		return nil
	case "cooldown":
		if err := store.MarkCooldown(ctx, sender); err != nil {
			return err
		}
		fmt.Printf("cooled down %s for %s\n", sender, domain.CooldownTTL)
		return nil
	case "uncooldown":
		if err := store.ClearCooldown(ctx, sender); err != nil {
			return err
		}
		fmt.Printf("cleared cooldown for %s\n", sender)
		return nil
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

// listSenders scans both flag keyspaces and prints the senders with the
// remaining TTL of each flag.
func listSenders(ctx context.Context, client *redis.Client) error {
	for _, prefix := range []string{domain.BlockedKeyPrefix, domain.CooldownKeyPrefix} {
		keys, err := scanKeys(ctx, client, prefix+"*")
		if err != nil {
			return fmt.Errorf("failed to scan %s keys: %w", prefix, err)
		}
		label := "blocked"
		if prefix == domain.CooldownKeyPrefix {
			label = "cooldown"
		}
		for _, key := range keys {
			ttl, err := client.TTL(ctx, key).Result()
			if err != nil {
				return err
			}
			sender := strings.TrimPrefix(key, prefix)
			fmt.Printf("%-10s %-40s expires in %s\n", label, sender, ttl.Round(time.Second))
		}
	}
	return nil
}

func scanKeys(ctx context.Context, client *redis.Client, pattern string) ([]string, error) {
	var keys []string
	var cursor uint64
	for {
		batch, next, err := client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return nil, err
		}
		keys = append(keys, batch...)
		if next == 0 {
			return keys, nil
		}
		cursor = next
	}
}
