package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReferralRewardRate is the referrer's cut of the offer price
var ReferralRewardRate = decimal.NewFromFloat(0.1)

// Referral credits a referrer for a referred user's payment
type Referral struct {
	ID           int64           `db:"id" json:"id"`
	ReferrerID   int64           `db:"referrer_id" json:"referrerId"`
	ReferredID   int64           `db:"referred_id" json:"referredId"`
	RewardAmount decimal.Decimal `db:"reward_amount" json:"rewardAmount"`
	CreatedAt    time.Time       `db:"created_at" json:"createdAt"`
}
