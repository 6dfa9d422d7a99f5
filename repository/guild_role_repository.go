package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/nothingdao/solana-discord-paywall/database"
	"github.com/nothingdao/solana-discord-paywall/models"
)

// GuildRoleRepository implements the service.GuildRoleRepository interface
type GuildRoleRepository struct {
	q queryable
}

// NewGuildRoleRepository creates a new guild role repository
func NewGuildRoleRepository(db *database.DB) *GuildRoleRepository {
	return &GuildRoleRepository{q: db.Pool}
}

// newGuildRoleRepositoryWithTx creates a new guild role repository with a transaction
func newGuildRoleRepositoryWithTx(tx queryable) *GuildRoleRepository {
	return &GuildRoleRepository{q: tx}
}

// GetByGuildAndRole retrieves the offering for a guild+role pair
func (r *GuildRoleRepository) GetByGuildAndRole(ctx context.Context, guildID, roleID string) (*models.GuildRole, error) {
	query := `
		SELECT id, guild_id, role_id, name, price, duration_days, created_at
		FROM guild_roles
		WHERE guild_id = $1 AND role_id = $2
	`

	var role models.GuildRole
	err := r.q.QueryRow(ctx, query, guildID, roleID).Scan(
		&role.ID,
		&role.GuildID,
		&role.RoleID,
		&role.Name,
		&role.Price,
		&role.DurationDays,
		&role.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get guild role %s/%s: %w", guildID, roleID, err)
	}

	return &role, nil
}

// Create creates a new guild role offering. Offerings are seeded by
// operators, not by the payment flow.
func (r *GuildRoleRepository) Create(ctx context.Context, role *models.GuildRole) error {
	query := `
		INSERT INTO guild_roles (guild_id, role_id, name, price, duration_days)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.q.QueryRow(ctx, query,
		role.GuildID,
		role.RoleID,
		role.Name,
		role.Price,
		role.DurationDays,
	).Scan(&role.ID, &role.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create guild role %s/%s: %w", role.GuildID, role.RoleID, err)
	}

	return nil
}
