package client

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/AlexZinkM/donate-action/internal/metrics"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// RPCClient is the subset of *rpc.Client the service needs.
// Tests substitute a fake so no real Solana node is hit.
type RPCClient interface {
	GetLatestBlockhash(ctx context.Context, commitment rpc.CommitmentType) (*rpc.GetLatestBlockhashResult, error)
}

// Blockhash is a recent blockhash together with the last block height at
// which a transaction referencing it is still accepted.
type Blockhash struct {
	Hash                 solana.Hash
	LastValidBlockHeight uint64
}

// SolanaClient is a client for working with Solana RPC
type SolanaClient struct {
	rpcClient RPCClient
	endpoint  string // label for metrics, e.g. "mainnet"
	timeout   time.Duration
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

// NewSolanaClient creates a client for rpcURL. One client is shared by all requests.
func NewSolanaClient(rpcURL, endpoint string, timeout time.Duration, m *metrics.Metrics, logger *slog.Logger) *SolanaClient {
	return NewSolanaClientWithRPC(rpc.New(rpcURL), endpoint, timeout, m, logger)
}

// NewSolanaClientWithRPC wraps an existing RPC implementation.
func NewSolanaClientWithRPC(rpcClient RPCClient, endpoint string, timeout time.Duration, m *metrics.Metrics, logger *slog.Logger) *SolanaClient {
	return &SolanaClient{
		rpcClient: rpcClient,
		endpoint:  endpoint,
		timeout:   timeout,
		metrics:   m,
		logger:    logger,
	}
}

// LatestBlockhash fetches the latest blockhash at confirmed commitment.
// A single call yields both the hash and its last valid block height.
func (c *SolanaClient) LatestBlockhash(ctx context.Context) (*Blockhash, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	recent, err := c.rpcClient.GetLatestBlockhash(ctx, rpc.CommitmentConfirmed)
	duration := time.Since(start).Seconds()

	status := "success"
	if err != nil {
		status = "error"
	}
	c.metrics.RecordRPCCall("getLatestBlockhash", status, c.endpoint, duration)

	if err != nil {
		c.logger.ErrorContext(ctx, "failed to get latest blockhash",
			"endpoint", c.endpoint,
			"duration_seconds", duration,
			"error", err,
		)
		return nil, fmt.Errorf("failed to get latest blockhash: %w", err)
	}
	if recent == nil || recent.Value == nil {
		return nil, errors.New("failed to get latest blockhash: empty RPC response")
	}

	c.logger.DebugContext(ctx, "fetched latest blockhash",
		"blockhash", recent.Value.Blockhash.String(),
		"last_valid_block_height", recent.Value.LastValidBlockHeight,
		"slot", recent.Context.Slot,
	)

	return &Blockhash{
		Hash:                 recent.Value.Blockhash,
		LastValidBlockHeight: recent.Value.LastValidBlockHeight,
	}, nil
}
