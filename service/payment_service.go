package service

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/nothingdao/solana-discord-paywall/models"
)

// PaymentRequest is a client-submitted payment claim
type PaymentRequest struct {
	Signature    string
	DiscordID    string
	ReferralCode string
	GuildID      string
	RoleID       string
}

// paymentService implements the PaymentService interface
type paymentService struct {
	uowFactory UnitOfWorkFactory
	verifier   TransactionVerifier
	roles      RoleGranter
}

// NewPaymentService creates a new payment service
func NewPaymentService(uowFactory UnitOfWorkFactory, verifier TransactionVerifier, roles RoleGranter) PaymentService {
	return &paymentService{
		uowFactory: uowFactory,
		verifier:   verifier,
		roles:      roles,
	}
}

// ProcessPayment runs the payment verification saga:
//  1. confirm the transaction on-chain
//  2. resolve the guild role offering
//  3. reject signatures that were already processed
//  4. atomically upsert the user and append the pending payment,
//     subscription, and referral records
//  5. grant the Discord role, then mark the payment committed, or mark
//     it failed and surface ErrRoleGrantFailed
func (s *paymentService) ProcessPayment(ctx context.Context, req PaymentRequest) (*models.User, error) {
	valid, err := s.verifier.VerifyTransaction(ctx, req.Signature)
	if err != nil {
		return nil, fmt.Errorf("failed to verify transaction: %w", err)
	}
	if !valid {
		return nil, ErrInvalidTransaction
	}

	user, payment, err := s.recordPurchase(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := s.roles.GrantRole(ctx, req.GuildID, req.DiscordID, req.RoleID); err != nil {
		log.WithError(err).WithFields(log.Fields{
			"guildID":   req.GuildID,
			"discordID": req.DiscordID,
			"roleID":    req.RoleID,
		}).Error("Role grant failed, marking payment failed")

		s.markPaymentStatus(ctx, payment.ID, models.PaymentStatusFailed)
		return nil, fmt.Errorf("%w: %v", ErrRoleGrantFailed, err)
	}

	s.markPaymentStatus(ctx, payment.ID, models.PaymentStatusCommitted)

	return user, nil
}

// recordPurchase performs the persistence half of the saga in one
// transaction: offer lookup, idempotency guard, user upsert, pending
// payment, subscription, and optional referral credit.
func (s *paymentService) recordPurchase(ctx context.Context, req PaymentRequest) (*models.User, *models.Payment, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, nil, fmt.Errorf("failed to begin unit of work: %w", err)
	}
	defer uow.Rollback()

	offer, err := uow.GuildRoles().GetByGuildAndRole(ctx, req.GuildID, req.RoleID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to look up guild role: %w", err)
	}
	if offer == nil {
		return nil, nil, ErrUnknownOffer
	}

	// Idempotency guard; the unique constraint on transaction_signature
	// backs this check against concurrent replays
	existing, err := uow.Payments().GetBySignature(ctx, req.Signature)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to check for existing payment: %w", err)
	}
	if existing != nil {
		return nil, nil, ErrDuplicatePayment
	}

	user, err := s.getOrCreateUser(ctx, uow, req)
	if err != nil {
		return nil, nil, err
	}

	payment := &models.Payment{
		UserID:               user.ID,
		TransactionSignature: req.Signature,
		Amount:               offer.Price,
		Status:               models.PaymentStatusPending,
	}
	if err := uow.Payments().Create(ctx, payment); err != nil {
		return nil, nil, fmt.Errorf("failed to record payment: %w", err)
	}

	subscription := &models.UserSubscription{
		UserID:      user.ID,
		GuildRoleID: offer.ID,
		EndDate:     time.Now().AddDate(0, 0, offer.DurationDays),
	}
	if err := uow.Subscriptions().Create(ctx, subscription); err != nil {
		return nil, nil, fmt.Errorf("failed to create subscription: %w", err)
	}

	if err := s.creditReferrer(ctx, uow, req.ReferralCode, user, offer); err != nil {
		return nil, nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, nil, fmt.Errorf("failed to commit unit of work: %w", err)
	}

	return user, payment, nil
}

// getOrCreateUser retrieves an existing user or creates a new one with a
// freshly generated referral code. Existing users are left unchanged.
func (s *paymentService) getOrCreateUser(ctx context.Context, uow UnitOfWork, req PaymentRequest) (*models.User, error) {
	user, err := uow.Users().GetByDiscordID(ctx, req.DiscordID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if user != nil {
		return user, nil
	}

	code, err := generateReferralCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate referral code: %w", err)
	}

	var referredBy *string
	if req.ReferralCode != "" {
		referredBy = &req.ReferralCode
	}

	user, err = uow.Users().Create(ctx, req.DiscordID, code, referredBy)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// creditReferrer appends a referral credit when referralCode matches an
// existing user's own code. An unmatched or self-referencing code is
// silently skipped; the purchase still succeeds.
func (s *paymentService) creditReferrer(ctx context.Context, uow UnitOfWork, referralCode string, user *models.User, offer *models.GuildRole) error {
	if referralCode == "" {
		return nil
	}

	referrer, err := uow.Users().GetByReferralCode(ctx, referralCode)
	if err != nil {
		return fmt.Errorf("failed to look up referrer: %w", err)
	}
	if referrer == nil || referrer.ID == user.ID {
		return nil
	}

	referral := &models.Referral{
		ReferrerID:   referrer.ID,
		ReferredID:   user.ID,
		RewardAmount: offer.Price.Mul(models.ReferralRewardRate),
	}
	if err := uow.Referrals().Create(ctx, referral); err != nil {
		return fmt.Errorf("failed to create referral: %w", err)
	}

	return nil
}

// markPaymentStatus transitions the payment's saga status in its own
// short transaction. A failure here is logged but not surfaced: the
// payment row already exists and the caller's outcome is decided.
func (s *paymentService) markPaymentStatus(ctx context.Context, paymentID int64, status models.PaymentStatus) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		log.WithError(err).WithField("paymentID", paymentID).Error("Failed to begin status update")
		return
	}
	defer uow.Rollback()

	if err := uow.Payments().UpdateStatus(ctx, paymentID, status); err != nil {
		log.WithError(err).WithFields(log.Fields{
			"paymentID": paymentID,
			"status":    status,
		}).Error("Failed to update payment status")
		return
	}

	if err := uow.Commit(); err != nil {
		log.WithError(err).WithField("paymentID", paymentID).Error("Failed to commit status update")
	}
}
