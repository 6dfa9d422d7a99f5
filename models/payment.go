package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus tracks a payment through the grant saga
type PaymentStatus string

const (
	// PaymentStatusPending means persistence succeeded but the role grant has not
	PaymentStatusPending PaymentStatus = "pending"
	// PaymentStatusCommitted means the Discord role was granted
	PaymentStatusCommitted PaymentStatus = "committed"
	// PaymentStatusFailed means the role grant failed after the rows were written
	PaymentStatusFailed PaymentStatus = "failed"
)

// Payment is an immutable record of one verified on-chain transaction.
// The transaction signature is unique; only Status and UpdatedAt change
// after creation.
type Payment struct {
	ID                   int64           `db:"id" json:"id"`
	UserID               int64           `db:"user_id" json:"userId"`
	TransactionSignature string          `db:"transaction_signature" json:"transactionSignature"`
	Amount               decimal.Decimal `db:"amount" json:"amount"`
	Status               PaymentStatus   `db:"status" json:"status"`
	CreatedAt            time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt            time.Time       `db:"updated_at" json:"updatedAt"`
}
