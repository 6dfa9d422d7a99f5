package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// GuildRole is a priced, timed role offering scoped to a guild+role pair.
// Rows are seeded out of band; the payment flow only reads them.
type GuildRole struct {
	ID           int64           `db:"id" json:"id"`
	GuildID      string          `db:"guild_id" json:"guildId"`
	RoleID       string          `db:"role_id" json:"roleId"`
	Name         string          `db:"name" json:"name"`
	Price        decimal.Decimal `db:"price" json:"price"`
	DurationDays int             `db:"duration_days" json:"durationDays"`
	CreatedAt    time.Time       `db:"created_at" json:"createdAt"`
}
