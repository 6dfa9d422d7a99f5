package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nothingdao/solana-discord-paywall/models"
	"github.com/nothingdao/solana-discord-paywall/repository/testutil"
	"github.com/nothingdao/solana-discord-paywall/service"
)

func TestPaymentRepository_CreateAndGet(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	userRepo := NewUserRepository(testDB.DB)
	repo := NewPaymentRepository(testDB.DB)
	ctx := context.Background()

	user, err := userRepo.Create(ctx, "111111", "abc123", nil)
	require.NoError(t, err)

	t.Run("no payment found", func(t *testing.T) {
		payment, err := repo.GetBySignature(ctx, "missing-sig")
		require.NoError(t, err)
		assert.Nil(t, payment)
	})

	t.Run("create and retrieve", func(t *testing.T) {
		payment := testutil.CreateTestPayment(user.ID, "sig-1")
		err := repo.Create(ctx, payment)
		require.NoError(t, err)

		assert.NotZero(t, payment.ID)
		assert.False(t, payment.CreatedAt.IsZero())

		found, err := repo.GetBySignature(ctx, "sig-1")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, payment.ID, found.ID)
		assert.Equal(t, user.ID, found.UserID)
		assert.Equal(t, models.PaymentStatusPending, found.Status)
		assert.True(t, found.Amount.Equal(decimal.NewFromInt(100)), "amount mismatch: %s", found.Amount)
	})

	t.Run("duplicate signature maps to duplicate payment error", func(t *testing.T) {
		dup := testutil.CreateTestPayment(user.ID, "sig-1")
		err := repo.Create(ctx, dup)
		assert.ErrorIs(t, err, service.ErrDuplicatePayment)
	})
}

func TestPaymentRepository_UpdateStatus(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	userRepo := NewUserRepository(testDB.DB)
	repo := NewPaymentRepository(testDB.DB)
	ctx := context.Background()

	user, err := userRepo.Create(ctx, "111111", "abc123", nil)
	require.NoError(t, err)

	payment := testutil.CreateTestPayment(user.ID, "sig-1")
	require.NoError(t, repo.Create(ctx, payment))

	t.Run("pending to committed", func(t *testing.T) {
		err := repo.UpdateStatus(ctx, payment.ID, models.PaymentStatusCommitted)
		require.NoError(t, err)

		found, err := repo.GetBySignature(ctx, "sig-1")
		require.NoError(t, err)
		assert.Equal(t, models.PaymentStatusCommitted, found.Status)
		assert.True(t, found.UpdatedAt.After(found.CreatedAt) || found.UpdatedAt.Equal(found.CreatedAt))
	})

	t.Run("unknown payment", func(t *testing.T) {
		err := repo.UpdateStatus(ctx, 99999, models.PaymentStatusFailed)
		assert.Error(t, err)
	})
}

func TestPaymentRepository_GetByUser(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	userRepo := NewUserRepository(testDB.DB)
	repo := NewPaymentRepository(testDB.DB)
	ctx := context.Background()

	user, err := userRepo.Create(ctx, "111111", "abc123", nil)
	require.NoError(t, err)

	require.NoError(t, repo.Create(ctx, testutil.CreateTestPayment(user.ID, "sig-1")))
	require.NoError(t, repo.Create(ctx, testutil.CreateTestPayment(user.ID, "sig-2")))

	payments, err := repo.GetByUser(ctx, user.ID, 10)
	require.NoError(t, err)
	assert.Len(t, payments, 2)

	payments, err = repo.GetByUser(ctx, user.ID, 1)
	require.NoError(t, err)
	assert.Len(t, payments, 1)
}
