package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/nothingdao/solana-discord-paywall/database"
	"github.com/nothingdao/solana-discord-paywall/service"
)

// queryable is satisfied by both *pgxpool.Pool and pgx.Tx, so every
// repository can run against the pool or inside a transaction.
type queryable interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// unitOfWork implements the service.UnitOfWork interface
type unitOfWork struct {
	db  *database.DB
	tx  pgx.Tx
	ctx context.Context

	userRepo         service.UserRepository
	guildRoleRepo    service.GuildRoleRepository
	paymentRepo      service.PaymentRepository
	subscriptionRepo service.SubscriptionRepository
	referralRepo     service.ReferralRepository
}

type unitOfWorkFactory struct {
	db *database.DB
}

// NewUnitOfWorkFactory creates a new UnitOfWork factory
func NewUnitOfWorkFactory(db *database.DB) service.UnitOfWorkFactory {
	return &unitOfWorkFactory{db: db}
}

func (f *unitOfWorkFactory) Create() service.UnitOfWork {
	return &unitOfWork{db: f.db}
}

// Begin starts a new transaction
func (u *unitOfWork) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}

	tx, err := u.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	u.tx = tx
	u.ctx = ctx

	// Create repositories bound to the transaction
	u.userRepo = newUserRepositoryWithTx(tx)
	u.guildRoleRepo = newGuildRoleRepositoryWithTx(tx)
	u.paymentRepo = newPaymentRepositoryWithTx(tx)
	u.subscriptionRepo = newSubscriptionRepositoryWithTx(tx)
	u.referralRepo = newReferralRepositoryWithTx(tx)

	return nil
}

// Commit commits the transaction
func (u *unitOfWork) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}

	if err := u.tx.Commit(u.ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	u.tx = nil
	return nil
}

// Rollback rolls back the transaction. Safe to defer: after a Commit it
// is a no-op.
func (u *unitOfWork) Rollback() error {
	if u.tx == nil {
		return nil
	}

	if err := u.tx.Rollback(u.ctx); err != nil && err != pgx.ErrTxClosed {
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}

	u.tx = nil
	return nil
}

func (u *unitOfWork) Users() service.UserRepository {
	return u.userRepo
}

func (u *unitOfWork) GuildRoles() service.GuildRoleRepository {
	return u.guildRoleRepo
}

func (u *unitOfWork) Payments() service.PaymentRepository {
	return u.paymentRepo
}

func (u *unitOfWork) Subscriptions() service.SubscriptionRepository {
	return u.subscriptionRepo
}

func (u *unitOfWork) Referrals() service.ReferralRepository {
	return u.referralRepo
}
