package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nothingdao/solana-discord-paywall/repository/testutil"
)

func TestGuildRoleRepository_GetByGuildAndRole(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewGuildRoleRepository(testDB.DB)
	ctx := context.Background()

	t.Run("no offering found", func(t *testing.T) {
		role, err := repo.GetByGuildAndRole(ctx, "guild-1", "role-1")
		require.NoError(t, err)
		assert.Nil(t, role)
	})

	t.Run("offering found", func(t *testing.T) {
		created := testutil.CreateTestGuildRole("guild-1", "role-1")
		require.NoError(t, repo.Create(ctx, created))
		assert.NotZero(t, created.ID)

		role, err := repo.GetByGuildAndRole(ctx, "guild-1", "role-1")
		require.NoError(t, err)
		require.NotNil(t, role)

		assert.Equal(t, created.ID, role.ID)
		assert.Equal(t, "Premium", role.Name)
		assert.Equal(t, 30, role.DurationDays)
		assert.True(t, role.Price.Equal(decimal.NewFromInt(100)), "price mismatch: %s", role.Price)
	})

	t.Run("same role in another guild is distinct", func(t *testing.T) {
		other := testutil.CreateTestGuildRole("guild-2", "role-1")
		require.NoError(t, repo.Create(ctx, other))

		role, err := repo.GetByGuildAndRole(ctx, "guild-2", "role-1")
		require.NoError(t, err)
		require.NotNil(t, role)
		assert.Equal(t, other.ID, role.ID)
	})

	t.Run("duplicate guild+role pair rejected", func(t *testing.T) {
		dup := testutil.CreateTestGuildRole("guild-1", "role-1")
		err := repo.Create(ctx, dup)
		assert.Error(t, err)
	})
}
