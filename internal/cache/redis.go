package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kaskita/payment-service/internal/models"
)

const statusTTL = 10 * time.Minute

// StatusCache stores the latest known status per order id in Redis so the
// polling client does not hit Postgres on every status check.
type StatusCache struct {
	client *redis.Client
}

func NewStatusCache(client *redis.Client) *StatusCache {
	return &StatusCache{client: client}
}

func (c *StatusCache) Get(ctx context.Context, orderID string) (models.TransactionStatus, bool, error) {
	val, err := c.client.Get(ctx, statusKey(orderID)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return models.TransactionStatus(val), true, nil
}

func (c *StatusCache) Set(ctx context.Context, orderID string, status models.TransactionStatus) error {
	return c.client.Set(ctx, statusKey(orderID), string(status), statusTTL).Err()
}

func statusKey(orderID string) string {
	return fmt.Sprintf("payment_status:%s", orderID)
}
