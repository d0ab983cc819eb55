package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/zedpay/ussd-analytics/internal/models"
)

// ErrTransactionNotFound indicates a missing primary key.
var ErrTransactionNotFound = errors.New("transaction not found")

// TransactionRepository reads single ussd_transactions rows.
type TransactionRepository struct {
	db *sql.DB
}

// NewTransactionRepository returns the repository.
func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// GetByID fetches one transaction by primary key.
func (r *TransactionRepository) GetByID(ctx context.Context, transactionID string) (*models.Transaction, error) {
	const stmt = `
		SELECT transaction_id, session_id, ussd_string, menu_level, selected_option,
		       input_value, transaction_type, transaction_amount, currency,
		       transaction_status, failure_reason, transaction_timestamp
		FROM ussd_transactions
		WHERE transaction_id = $1
	`
	var t models.Transaction
	var amount sql.NullString
	err := r.db.QueryRowContext(ctx, stmt, transactionID).Scan(
		&t.TransactionID,
		&t.SessionID,
		&t.UssdString,
		&t.MenuLevel,
		&t.SelectedOption,
		&t.InputValue,
		&t.Type,
		&amount,
		&t.Currency,
		&t.Status,
		&t.FailureReason,
		&t.Timestamp,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTransactionNotFound
	}
	if err != nil {
		return nil, err
	}
	if amount.Valid {
		d, err := parseDecimal(amount)
		if err != nil {
			return nil, err
		}
		t.Amount.Valid = true
		t.Amount.Decimal = d
	}
	return &t, nil
}
