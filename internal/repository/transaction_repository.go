package repository

import (
	"context"
	"database/sql"

	"github.com/kaskita/payment-service/internal/models"
)

// TransactionRepository persists payment status onto kas_transactions rows.
// Rows are created by the ledger application; this service only updates the
// status column of an existing row.
type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// UpdateStatus sets the status of the transaction matching orderID. An
// unknown order id matches zero rows and is indistinguishable from success.
func (r *TransactionRepository) UpdateStatus(ctx context.Context, orderID string, status models.TransactionStatus) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE kas_transactions SET status = $1 WHERE order_id = $2`, status, orderID)
	return err
}

// GetStatus returns the stored status for orderID.
func (r *TransactionRepository) GetStatus(ctx context.Context, orderID string) (models.TransactionStatus, error) {
	var status models.TransactionStatus
	err := r.db.QueryRowContext(ctx,
		`SELECT status FROM kas_transactions WHERE order_id = $1`, orderID).Scan(&status)
	if err != nil {
		return "", err
	}
	return status, nil
}
