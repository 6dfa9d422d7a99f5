package service

import (
	"context"

	"github.com/nothingdao/solana-discord-paywall/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// GetByDiscordID retrieves a user by their Discord ID, nil if not found
	GetByDiscordID(ctx context.Context, discordID string) (*models.User, error)

	// GetByReferralCode retrieves the user owning the given referral code, nil if not found
	GetByReferralCode(ctx context.Context, referralCode string) (*models.User, error)

	// Create creates a new user with the given referral code and optional referrer code
	Create(ctx context.Context, discordID, referralCode string, referredBy *string) (*models.User, error)
}

// GuildRoleRepository defines the interface for role offering lookups
type GuildRoleRepository interface {
	// GetByGuildAndRole retrieves the offering for a guild+role pair, nil if not found
	GetByGuildAndRole(ctx context.Context, guildID, roleID string) (*models.GuildRole, error)
}

// PaymentRepository defines the interface for payment data access
type PaymentRepository interface {
	// Create appends a new payment record
	Create(ctx context.Context, payment *models.Payment) error

	// GetBySignature retrieves a payment by transaction signature, nil if not found
	GetBySignature(ctx context.Context, signature string) (*models.Payment, error)

	// UpdateStatus transitions a payment to the given saga status
	UpdateStatus(ctx context.Context, id int64, status models.PaymentStatus) error
}

// SubscriptionRepository defines the interface for subscription data access
type SubscriptionRepository interface {
	// Create appends a new subscription record
	Create(ctx context.Context, subscription *models.UserSubscription) error
}

// ReferralRepository defines the interface for referral data access
type ReferralRepository interface {
	// Create appends a new referral credit record
	Create(ctx context.Context, referral *models.Referral) error
}

// UnitOfWork provides transactional access to all repositories
type UnitOfWork interface {
	// Begin starts a new transaction
	Begin(ctx context.Context) error

	// Commit commits the transaction
	Commit() error

	// Rollback rolls back the transaction; no-op after Commit
	Rollback() error

	// Users returns the transactional user repository
	Users() UserRepository

	// GuildRoles returns the transactional guild role repository
	GuildRoles() GuildRoleRepository

	// Payments returns the transactional payment repository
	Payments() PaymentRepository

	// Subscriptions returns the transactional subscription repository
	Subscriptions() SubscriptionRepository

	// Referrals returns the transactional referral repository
	Referrals() ReferralRepository
}

// UnitOfWorkFactory creates UnitOfWork instances
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// TransactionVerifier confirms that a claimed payment landed on-chain
type TransactionVerifier interface {
	// VerifyTransaction reports whether the transaction identified by
	// signature exists on-chain and executed without error. A false
	// verdict with nil error means the transaction is invalid; a non-nil
	// error means the ledger could not be consulted.
	VerifyTransaction(ctx context.Context, signature string) (bool, error)
}

// RoleGranter adds a role to a guild member via the Discord API
type RoleGranter interface {
	GrantRole(ctx context.Context, guildID, discordID, roleID string) error
}

// PaymentService defines the interface for the payment verification flow
type PaymentService interface {
	// ProcessPayment verifies the claimed transaction, persists the
	// user/payment/subscription/referral records, and grants the role
	ProcessPayment(ctx context.Context, req PaymentRequest) (*models.User, error)
}
