package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaskita/payment-service/internal/models"
)

func TestUpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`UPDATE kas_transactions SET status = \$1 WHERE order_id = \$2`).
		WithArgs(models.StatusSuccess, "A1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewTransactionRepository(db)
	err = repo.UpdateStatus(context.Background(), "A1", models.StatusSuccess)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus_ZeroRowsIsSuccess(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`UPDATE kas_transactions`).
		WithArgs(models.StatusFailed, "unknown-order").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewTransactionRepository(db)
	err = repo.UpdateStatus(context.Background(), "unknown-order", models.StatusFailed)
	assert.NoError(t, err)
}

func TestUpdateStatus_StoreError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`UPDATE kas_transactions`).
		WithArgs(models.StatusPending, "A1").
		WillReturnError(errors.New("connection refused"))

	repo := NewTransactionRepository(db)
	err = repo.UpdateStatus(context.Background(), "A1", models.StatusPending)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestGetStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT status FROM kas_transactions WHERE order_id = \$1`).
		WithArgs("A1").
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("SUCCESS"))

	repo := NewTransactionRepository(db)
	status, err := repo.GetStatus(context.Background(), "A1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusSuccess, status)
}

func TestGetStatus_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT status FROM kas_transactions`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	repo := NewTransactionRepository(db)
	_, err = repo.GetStatus(context.Background(), "missing")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
