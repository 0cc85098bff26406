package interfaces

import (
	"context"
	"encoding/json"

	"github.com/kaskita/payment-service/internal/models"
)

// SnapGateway defines the contract for the Midtrans Snap create-transaction
// call. The returned body is the gateway's response verbatim so the handler
// can relay it to the caller without reshaping.
type SnapGateway interface {
	CreateTransaction(ctx context.Context, req models.SnapRequest) (json.RawMessage, error)
}
