package models

import (
	"time"
)

// User represents a Discord user who has completed at least one payment
type User struct {
	ID           int64     `db:"id" json:"id"`
	DiscordID    string    `db:"discord_id" json:"discordId"`
	ReferralCode string    `db:"referral_code" json:"referralCode"`
	ReferredBy   *string   `db:"referred_by" json:"referredBy,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}
