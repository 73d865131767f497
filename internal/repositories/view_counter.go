package repositories

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"
)

// ViewCounter buffers product detail views in Redis so that every page view
// does not turn into an UPDATE against the products table. A background loop
// drains the counters into the database.
type ViewCounter struct {
	rdb *redis.Client
}

func NewViewCounter(rdb *redis.Client) *ViewCounter {
	return &ViewCounter{rdb: rdb}
}

func viewKey(productID int) string {
	return fmt.Sprintf("product:views:%d", productID)
}

func (c *ViewCounter) Increment(ctx context.Context, productID int) error {
	return c.rdb.Incr(ctx, viewKey(productID)).Err()
}

// Drain atomically reads and resets all buffered counters and returns them
// keyed by product id.
func (c *ViewCounter) Drain(ctx context.Context) (map[int]int, error) {
	counts := make(map[int]int)

	var cursor uint64
	for {
		keys, next, err := c.rdb.Scan(ctx, cursor, "product:views:*", 100).Result()
		if err != nil {
			return nil, err
		}
		for _, key := range keys {
			val, err := c.rdb.GetDel(ctx, key).Result()
			if err == redis.Nil {
				continue
			}
			if err != nil {
				return nil, err
			}
			idStr := strings.TrimPrefix(key, "product:views:")
			id, err := strconv.Atoi(idStr)
			if err != nil {
				continue
			}
			n, err := strconv.Atoi(val)
			if err != nil {
				continue
			}
			counts[id] += n
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	return counts, nil
}
