// Package ledger reads transaction status from a Solana RPC endpoint.
package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	log "github.com/sirupsen/logrus"
)

// Client wraps a Solana RPC client for payment verification
type Client struct {
	rpc *rpc.Client
}

// NewClient creates a ledger client against the given RPC endpoint
func NewClient(rpcURL string) *Client {
	return &Client{rpc: rpc.New(rpcURL)}
}

// Ping checks that the RPC endpoint is reachable and healthy
func (c *Client) Ping(ctx context.Context) error {
	health, err := c.rpc.GetHealth(ctx)
	if err != nil {
		return fmt.Errorf("failed to reach RPC endpoint: %w", err)
	}
	if health != rpc.HealthOk {
		return fmt.Errorf("RPC endpoint unhealthy: %s", health)
	}
	return nil
}

// VerifyTransaction reports whether the transaction identified by
// signature exists on-chain and executed without error. A malformed or
// unknown signature is an invalid transaction, not an infrastructure
// failure.
func (c *Client) VerifyTransaction(ctx context.Context, signature string) (bool, error) {
	sig, err := solana.SignatureFromBase58(signature)
	if err != nil {
		log.WithError(err).Debug("Rejected malformed transaction signature")
		return false, nil
	}

	tx, err := c.rpc.GetTransaction(ctx, sig, &rpc.GetTransactionOpts{
		Commitment:                     rpc.CommitmentConfirmed,
		MaxSupportedTransactionVersion: &rpc.MaxSupportedTransactionVersion0,
	})
	if errors.Is(err, rpc.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to fetch transaction: %w", err)
	}

	if tx == nil || tx.Meta == nil || tx.Meta.Err != nil {
		return false, nil
	}

	return true, nil
}
