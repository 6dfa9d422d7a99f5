package service

import (
	"errors"
)

// Domain errors returned by the payment flow. The HTTP layer maps each
// to a specific status code; anything else becomes a generic 500.
var (
	// ErrInvalidTransaction means the ledger has no successful transaction for the signature
	ErrInvalidTransaction = errors.New("invalid transaction")

	// ErrUnknownOffer means no guild role offering matches the guild+role pair
	ErrUnknownOffer = errors.New("invalid guild or role")

	// ErrDuplicatePayment means the transaction signature was already processed
	ErrDuplicatePayment = errors.New("transaction already processed")

	// ErrRoleGrantFailed means the records were written but the Discord
	// role grant failed; the payment is marked failed
	ErrRoleGrantFailed = errors.New("role grant failed")
)
