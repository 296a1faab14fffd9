package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/reviewhub/review-system/internal/core/ports"
)

const flashTTL = 10 * time.Minute

// FlashStore holds one-shot notices in Redis between a redirect and the
// next rendered page. Key format: flash:<flash_id>. Entries expire after
// flashTTL so abandoned redirects do not accumulate.
type FlashStore struct {
	client *redis.Client
}

// NewFlashStore creates a FlashStore wrapping the given Redis client.
func NewFlashStore(client *redis.Client) *FlashStore {
	return &FlashStore{client: client}
}

// Push appends a notice to the browser's flash queue.
func (f *FlashStore) Push(ctx context.Context, id string, flash ports.Flash) error {
	payload, err := json.Marshal(flash)
	if err != nil {
		return fmt.Errorf("marshal flash: %w", err)
	}

	pipe := f.client.TxPipeline()
	pipe.RPush(ctx, f.key(id), payload)
	pipe.Expire(ctx, f.key(id), flashTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("push flash: %w", err)
	}
	return nil
}

// Pop drains and deletes every pending notice for the browser. Notices
// are one-shot: a second Pop returns nothing.
func (f *FlashStore) Pop(ctx context.Context, id string) ([]ports.Flash, error) {
	pipe := f.client.TxPipeline()
	rangeCmd := pipe.LRange(ctx, f.key(id), 0, -1)
	pipe.Del(ctx, f.key(id))
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("pop flash: %w", err)
	}

	raw := rangeCmd.Val()
	flashes := make([]ports.Flash, 0, len(raw))
	for _, entry := range raw {
		var flash ports.Flash
		if err := json.Unmarshal([]byte(entry), &flash); err != nil {
			continue
		}
		flashes = append(flashes, flash)
	}
	return flashes, nil
}

func (f *FlashStore) key(id string) string {
	return "flash:" + id
}
