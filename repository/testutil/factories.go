package testutil

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/nothingdao/solana-discord-paywall/models"
)

// CreateTestGuildRole creates a guild role offering with default values
func CreateTestGuildRole(guildID, roleID string) *models.GuildRole {
	return &models.GuildRole{
		GuildID:      guildID,
		RoleID:       roleID,
		Name:         "Premium",
		Price:        decimal.NewFromInt(100),
		DurationDays: 30,
	}
}

// CreateTestPayment creates a pending payment for the given user and signature
func CreateTestPayment(userID int64, signature string) *models.Payment {
	return &models.Payment{
		UserID:               userID,
		TransactionSignature: signature,
		Amount:               decimal.NewFromInt(100),
		Status:               models.PaymentStatusPending,
	}
}

// CreateTestSubscription creates a subscription ending thirty days out
func CreateTestSubscription(userID, guildRoleID int64) *models.UserSubscription {
	return &models.UserSubscription{
		UserID:      userID,
		GuildRoleID: guildRoleID,
		EndDate:     time.Now().AddDate(0, 0, 30),
	}
}

// CreateTestReferral creates a referral credit with the default reward
func CreateTestReferral(referrerID, referredID int64) *models.Referral {
	return &models.Referral{
		ReferrerID:   referrerID,
		ReferredID:   referredID,
		RewardAmount: decimal.NewFromInt(10),
	}
}
