package repository

import (
	"context"
	"fmt"

	"github.com/nothingdao/solana-discord-paywall/database"
	"github.com/nothingdao/solana-discord-paywall/models"
)

// SubscriptionRepository implements the service.SubscriptionRepository interface
type SubscriptionRepository struct {
	q queryable
}

// NewSubscriptionRepository creates a new subscription repository
func NewSubscriptionRepository(db *database.DB) *SubscriptionRepository {
	return &SubscriptionRepository{q: db.Pool}
}

// newSubscriptionRepositoryWithTx creates a new subscription repository with a transaction
func newSubscriptionRepositoryWithTx(tx queryable) *SubscriptionRepository {
	return &SubscriptionRepository{q: tx}
}

// Create appends a new subscription record
func (r *SubscriptionRepository) Create(ctx context.Context, subscription *models.UserSubscription) error {
	query := `
		INSERT INTO user_subscriptions (user_id, guild_role_id, end_date)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.q.QueryRow(ctx, query,
		subscription.UserID,
		subscription.GuildRoleID,
		subscription.EndDate,
	).Scan(&subscription.ID, &subscription.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create subscription for user %d: %w", subscription.UserID, err)
	}

	return nil
}

// GetByUser returns all subscriptions for a user, newest first
func (r *SubscriptionRepository) GetByUser(ctx context.Context, userID int64) ([]*models.UserSubscription, error) {
	query := `
		SELECT id, user_id, guild_role_id, end_date, created_at
		FROM user_subscriptions
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get subscriptions for user %d: %w", userID, err)
	}
	defer rows.Close()

	var subscriptions []*models.UserSubscription
	for rows.Next() {
		var subscription models.UserSubscription
		err := rows.Scan(
			&subscription.ID,
			&subscription.UserID,
			&subscription.GuildRoleID,
			&subscription.EndDate,
			&subscription.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan subscription: %w", err)
		}
		subscriptions = append(subscriptions, &subscription)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate subscriptions: %w", err)
	}

	return subscriptions, nil
}
