package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
)

const defaultRedisKey = "dental-admin:notifications"

// RedisFeed keeps the feed in a Redis list so every replica of the dashboard
// shows the same toasts. The list is capped with LTRIM on every push.
type RedisFeed struct {
	client *redis.Client
	key    string
	limit  int
}

// NewRedisFeed parses url (redis://host:port/db) and checks the connection.
func NewRedisFeed(ctx context.Context, url string, limit int) (*RedisFeed, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	if limit <= 0 {
		limit = DefaultLimit
	}
	return &RedisFeed{client: client, key: defaultRedisKey, limit: limit}, nil
}

func (f *RedisFeed) Notify(ctx context.Context, n Notification) error {
	raw, err := json.Marshal(n)
	if err != nil {
		return err
	}

	_, err = f.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.LPush(ctx, f.key, raw)
		p.LTrim(ctx, f.key, 0, int64(f.limit-1))
		return nil
	})
	return err
}

// List returns the notifications newest first.
func (f *RedisFeed) List(ctx context.Context) ([]Notification, error) {
	raws, err := f.client.LRange(ctx, f.key, 0, -1).Result()
	if err != nil {
		return nil, err
	}

	out := make([]Notification, 0, len(raws))
	for _, raw := range raws {
		var n Notification
		if err := json.Unmarshal([]byte(raw), &n); err != nil {
			continue
		}
		out = append(out, n)
	}
	return out, nil
}

func (f *RedisFeed) Dismiss(ctx context.Context, id string) error {
	raws, err := f.client.LRange(ctx, f.key, 0, -1).Result()
	if err != nil {
		return err
	}

	for _, raw := range raws {
		var n Notification
		if json.Unmarshal([]byte(raw), &n) == nil && n.ID == id {
			return f.client.LRem(ctx, f.key, 1, raw).Err()
		}
	}
	return ErrNotFound
}

// Ping backs the health endpoint.
func (f *RedisFeed) Ping(ctx context.Context) error {
	return f.client.Ping(ctx).Err()
}

func (f *RedisFeed) Close() error {
	return f.client.Close()
}

var _ Feed = (*RedisFeed)(nil)
