package interfaces

import (
	"context"

	"github.com/kaskita/payment-service/internal/models"
)

// TransactionRepository defines the contract for kas transaction data access.
type TransactionRepository interface {
	// UpdateStatus sets the status of the transaction identified by orderID.
	// Matching zero rows is not an error.
	UpdateStatus(ctx context.Context, orderID string, status models.TransactionStatus) error
	// GetStatus returns the stored status for orderID. Returns sql.ErrNoRows
	// when no such transaction exists.
	GetStatus(ctx context.Context, orderID string) (models.TransactionStatus, error)
}
