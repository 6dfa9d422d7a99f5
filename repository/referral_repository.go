package repository

import (
	"context"
	"fmt"

	"github.com/nothingdao/solana-discord-paywall/database"
	"github.com/nothingdao/solana-discord-paywall/models"
)

// ReferralRepository implements the service.ReferralRepository interface
type ReferralRepository struct {
	q queryable
}

// NewReferralRepository creates a new referral repository
func NewReferralRepository(db *database.DB) *ReferralRepository {
	return &ReferralRepository{q: db.Pool}
}

// newReferralRepositoryWithTx creates a new referral repository with a transaction
func newReferralRepositoryWithTx(tx queryable) *ReferralRepository {
	return &ReferralRepository{q: tx}
}

// Create appends a new referral credit record
func (r *ReferralRepository) Create(ctx context.Context, referral *models.Referral) error {
	query := `
		INSERT INTO referrals (referrer_id, referred_id, reward_amount)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.q.QueryRow(ctx, query,
		referral.ReferrerID,
		referral.ReferredID,
		referral.RewardAmount,
	).Scan(&referral.ID, &referral.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create referral for referrer %d: %w", referral.ReferrerID, err)
	}

	return nil
}

// GetByReferrer returns all referral credits earned by a user, newest first
func (r *ReferralRepository) GetByReferrer(ctx context.Context, referrerID int64) ([]*models.Referral, error) {
	query := `
		SELECT id, referrer_id, referred_id, reward_amount, created_at
		FROM referrals
		WHERE referrer_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.q.Query(ctx, query, referrerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get referrals for referrer %d: %w", referrerID, err)
	}
	defer rows.Close()

	var referrals []*models.Referral
	for rows.Next() {
		var referral models.Referral
		err := rows.Scan(
			&referral.ID,
			&referral.ReferrerID,
			&referral.ReferredID,
			&referral.RewardAmount,
			&referral.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan referral: %w", err)
		}
		referrals = append(referrals, &referral)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate referrals: %w", err)
	}

	return referrals, nil
}
