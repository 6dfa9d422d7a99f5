package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/nothingdao/solana-discord-paywall/models"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByDiscordID(ctx context.Context, discordID string) (*models.User, error) {
	args := m.Called(ctx, discordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByReferralCode(ctx context.Context, referralCode string) (*models.User, error) {
	args := m.Called(ctx, referralCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, discordID, referralCode string, referredBy *string) (*models.User, error) {
	args := m.Called(ctx, discordID, referralCode, referredBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockGuildRoleRepository is a mock implementation of GuildRoleRepository
type MockGuildRoleRepository struct {
	mock.Mock
}

func (m *MockGuildRoleRepository) GetByGuildAndRole(ctx context.Context, guildID, roleID string) (*models.GuildRole, error) {
	args := m.Called(ctx, guildID, roleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GuildRole), args.Error(1)
}

// MockPaymentRepository is a mock implementation of PaymentRepository
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) GetBySignature(ctx context.Context, signature string) (*models.Payment, error) {
	args := m.Called(ctx, signature)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Payment), args.Error(1)
}

func (m *MockPaymentRepository) UpdateStatus(ctx context.Context, id int64, status models.PaymentStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

// MockSubscriptionRepository is a mock implementation of SubscriptionRepository
type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) Create(ctx context.Context, subscription *models.UserSubscription) error {
	args := m.Called(ctx, subscription)
	return args.Error(0)
}

// MockReferralRepository is a mock implementation of ReferralRepository
type MockReferralRepository struct {
	mock.Mock
}

func (m *MockReferralRepository) Create(ctx context.Context, referral *models.Referral) error {
	args := m.Called(ctx, referral)
	return args.Error(0)
}

// MockUnitOfWork is a mock implementation of UnitOfWork
type MockUnitOfWork struct {
	mock.Mock

	userRepo         UserRepository
	guildRoleRepo    GuildRoleRepository
	paymentRepo      PaymentRepository
	subscriptionRepo SubscriptionRepository
	referralRepo     ReferralRepository
}

// SetRepositories wires the repositories returned by the accessors
func (m *MockUnitOfWork) SetRepositories(
	users UserRepository,
	guildRoles GuildRoleRepository,
	payments PaymentRepository,
	subscriptions SubscriptionRepository,
	referrals ReferralRepository,
) {
	m.userRepo = users
	m.guildRoleRepo = guildRoles
	m.paymentRepo = payments
	m.subscriptionRepo = subscriptions
	m.referralRepo = referrals
}

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) Users() UserRepository {
	return m.userRepo
}

func (m *MockUnitOfWork) GuildRoles() GuildRoleRepository {
	return m.guildRoleRepo
}

func (m *MockUnitOfWork) Payments() PaymentRepository {
	return m.paymentRepo
}

func (m *MockUnitOfWork) Subscriptions() SubscriptionRepository {
	return m.subscriptionRepo
}

func (m *MockUnitOfWork) Referrals() ReferralRepository {
	return m.referralRepo
}

// MockUnitOfWorkFactory is a mock implementation of UnitOfWorkFactory
type MockUnitOfWorkFactory struct {
	mock.Mock
}

func (m *MockUnitOfWorkFactory) Create() UnitOfWork {
	args := m.Called()
	return args.Get(0).(UnitOfWork)
}

// MockTransactionVerifier is a mock implementation of TransactionVerifier
type MockTransactionVerifier struct {
	mock.Mock
}

func (m *MockTransactionVerifier) VerifyTransaction(ctx context.Context, signature string) (bool, error) {
	args := m.Called(ctx, signature)
	return args.Bool(0), args.Error(1)
}

// MockRoleGranter is a mock implementation of RoleGranter
type MockRoleGranter struct {
	mock.Mock
}

func (m *MockRoleGranter) GrantRole(ctx context.Context, guildID, discordID, roleID string) error {
	args := m.Called(ctx, guildID, discordID, roleID)
	return args.Error(0)
}
