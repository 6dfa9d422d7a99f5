package models

import (
	"time"
)

// UserSubscription is a time-bounded entitlement linking a User to a GuildRole
type UserSubscription struct {
	ID          int64     `db:"id" json:"id"`
	UserID      int64     `db:"user_id" json:"userId"`
	GuildRoleID int64     `db:"guild_role_id" json:"guildRoleId"`
	EndDate     time.Time `db:"end_date" json:"endDate"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// IsActive reports whether the subscription covers the given instant
func (s *UserSubscription) IsActive(now time.Time) bool {
	return now.Before(s.EndDate)
}
