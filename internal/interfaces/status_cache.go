package interfaces

import (
	"context"

	"github.com/kaskita/payment-service/internal/models"
)

// StatusCache caches the latest known status per order id.
type StatusCache interface {
	// Get returns the cached status and whether it was present.
	Get(ctx context.Context, orderID string) (models.TransactionStatus, bool, error)
	Set(ctx context.Context, orderID string, status models.TransactionStatus) error
}
