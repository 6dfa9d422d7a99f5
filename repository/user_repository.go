package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/nothingdao/solana-discord-paywall/database"
	"github.com/nothingdao/solana-discord-paywall/models"
)

// UserRepository implements the service.UserRepository interface
type UserRepository struct {
	q queryable
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{q: db.Pool}
}

// newUserRepositoryWithTx creates a new user repository with a transaction
func newUserRepositoryWithTx(tx queryable) *UserRepository {
	return &UserRepository{q: tx}
}

// GetByDiscordID retrieves a user by their Discord ID
func (r *UserRepository) GetByDiscordID(ctx context.Context, discordID string) (*models.User, error) {
	query := `
		SELECT id, discord_id, referral_code, referred_by, created_at
		FROM users
		WHERE discord_id = $1
	`

	var user models.User
	err := r.q.QueryRow(ctx, query, discordID).Scan(
		&user.ID,
		&user.DiscordID,
		&user.ReferralCode,
		&user.ReferredBy,
		&user.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by discord ID %s: %w", discordID, err)
	}

	return &user, nil
}

// GetByReferralCode retrieves the user who owns the given referral code
func (r *UserRepository) GetByReferralCode(ctx context.Context, referralCode string) (*models.User, error) {
	query := `
		SELECT id, discord_id, referral_code, referred_by, created_at
		FROM users
		WHERE referral_code = $1
	`

	var user models.User
	err := r.q.QueryRow(ctx, query, referralCode).Scan(
		&user.ID,
		&user.DiscordID,
		&user.ReferralCode,
		&user.ReferredBy,
		&user.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by referral code: %w", err)
	}

	return &user, nil
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, discordID, referralCode string, referredBy *string) (*models.User, error) {
	query := `
		INSERT INTO users (discord_id, referral_code, referred_by)
		VALUES ($1, $2, $3)
		RETURNING id, discord_id, referral_code, referred_by, created_at
	`

	var user models.User
	err := r.q.QueryRow(ctx, query, discordID, referralCode, referredBy).Scan(
		&user.ID,
		&user.DiscordID,
		&user.ReferralCode,
		&user.ReferredBy,
		&user.CreatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create user with discord ID %s: %w", discordID, err)
	}

	return &user, nil
}
