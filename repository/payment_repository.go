package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/nothingdao/solana-discord-paywall/database"
	"github.com/nothingdao/solana-discord-paywall/models"
	"github.com/nothingdao/solana-discord-paywall/service"
)

const uniqueViolationCode = "23505"

// PaymentRepository implements the service.PaymentRepository interface
type PaymentRepository struct {
	q queryable
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *database.DB) *PaymentRepository {
	return &PaymentRepository{q: db.Pool}
}

// newPaymentRepositoryWithTx creates a new payment repository with a transaction
func newPaymentRepositoryWithTx(tx queryable) *PaymentRepository {
	return &PaymentRepository{q: tx}
}

// Create appends a new payment record
func (r *PaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	query := `
		INSERT INTO payments (user_id, transaction_signature, amount, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := r.q.QueryRow(ctx, query,
		payment.UserID,
		payment.TransactionSignature,
		payment.Amount,
		payment.Status,
	).Scan(&payment.ID, &payment.CreatedAt, &payment.UpdatedAt)

	// The unique constraint on transaction_signature backs the service's
	// check-before-insert against concurrent replays of the same signature
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return service.ErrDuplicatePayment
	}
	if err != nil {
		return fmt.Errorf("failed to create payment for user %d: %w", payment.UserID, err)
	}

	return nil
}

// GetBySignature retrieves a payment by its transaction signature
func (r *PaymentRepository) GetBySignature(ctx context.Context, signature string) (*models.Payment, error) {
	query := `
		SELECT id, user_id, transaction_signature, amount, status, created_at, updated_at
		FROM payments
		WHERE transaction_signature = $1
	`

	var payment models.Payment
	err := r.q.QueryRow(ctx, query, signature).Scan(
		&payment.ID,
		&payment.UserID,
		&payment.TransactionSignature,
		&payment.Amount,
		&payment.Status,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get payment by signature: %w", err)
	}

	return &payment, nil
}

// UpdateStatus transitions a payment to the given saga status
func (r *PaymentRepository) UpdateStatus(ctx context.Context, id int64, status models.PaymentStatus) error {
	query := `
		UPDATE payments
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`

	result, err := r.q.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update status for payment %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("payment %d not found", id)
	}

	return nil
}

// GetByUser returns payments for a specific user, newest first
func (r *PaymentRepository) GetByUser(ctx context.Context, userID int64, limit int) ([]*models.Payment, error) {
	query := `
		SELECT id, user_id, transaction_signature, amount, status, created_at, updated_at
		FROM payments
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.q.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get payments for user %d: %w", userID, err)
	}
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		var payment models.Payment
		err := rows.Scan(
			&payment.ID,
			&payment.UserID,
			&payment.TransactionSignature,
			&payment.Amount,
			&payment.Status,
			&payment.CreatedAt,
			&payment.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, &payment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payments: %w", err)
	}

	return payments, nil
}
