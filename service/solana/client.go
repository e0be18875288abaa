package solana

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/brojonat/blockpulse/service/metrics"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/rpc"
)

// RPCClient is an interface for the Solana RPC operations we need.
// This allows us to mock the RPC layer in tests without hitting real Solana nodes.
type RPCClient interface {
	GetLatestBlockhash(
		ctx context.Context,
		commitment rpc.CommitmentType,
	) (*rpc.GetLatestBlockhashResult, error)

	SendTransaction(
		ctx context.Context,
		tx *solana.Transaction,
	) (solana.Signature, error)

	GetSignatureStatuses(
		ctx context.Context,
		searchTransactionHistory bool,
		sigs ...solana.Signature,
	) (*rpc.GetSignatureStatusesResult, error)

	GetBalance(
		ctx context.Context,
		account solana.PublicKey,
		commitment rpc.CommitmentType,
	) (*rpc.GetBalanceResult, error)
}

// Client wraps the RPC client with the domain operations the pipeline
// needs: submitting SOL transfers, querying signature status, and
// reading wallet balances.
type Client struct {
	rpc        RPCClient
	commitment rpc.CommitmentType
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

// NewClient creates a new Solana client. If m is nil, no metrics are recorded.
func NewClient(rpcClient RPCClient, commitment rpc.CommitmentType, m *metrics.Metrics, logger *slog.Logger) *Client {
	return &Client{
		rpc:        rpcClient,
		commitment: commitment,
		metrics:    m,
		logger:     logger,
	}
}

// SubmitTransfer builds, signs, and submits a SOL transfer from the
// given keypair. It returns the transaction signature on success; any
// error here is a submission-time failure local to this transfer.
func (c *Client) SubmitTransfer(
	ctx context.Context,
	source solana.PrivateKey,
	destination solana.PublicKey,
	lamports uint64,
) (solana.Signature, error) {
	from := source.PublicKey()

	blockhash, err := c.latestBlockhash(ctx)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to get recent blockhash: %w", err)
	}

	tx, err := solana.NewTransaction(
		[]solana.Instruction{
			system.NewTransferInstruction(lamports, from, destination).Build(),
		},
		blockhash,
		solana.TransactionPayer(from),
	)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to build transaction: %w", err)
	}

	_, err = tx.Sign(func(key solana.PublicKey) *solana.PrivateKey {
		if key.Equals(from) {
			return &source
		}
		return nil
	})
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to sign transaction: %w", err)
	}

	start := time.Now()
	sig, err := c.rpc.SendTransaction(ctx, tx)
	c.record("SendTransaction", err, time.Since(start))
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to send transaction: %w", err)
	}

	c.logger.DebugContext(ctx, "sent transfer",
		"source", from.String(),
		"destination", destination.String(),
		"lamports", lamports,
		"signature", sig.String(),
	)
	return sig, nil
}

// SignatureStatus queries the network for the current status of one
// signature. An unknown signature reports TxStatusPending.
func (c *Client) SignatureStatus(ctx context.Context, sig solana.Signature) (TxStatus, error) {
	start := time.Now()
	out, err := c.rpc.GetSignatureStatuses(ctx, true, sig)
	c.record("GetSignatureStatuses", err, time.Since(start))
	if err != nil {
		return TxStatusPending, fmt.Errorf("failed to get signature status: %w", err)
	}
	if out == nil || len(out.Value) == 0 {
		return TxStatusPending, nil
	}
	return statusFromResult(out.Value[0]), nil
}

// Balance reads one wallet's balance at the client's commitment.
func (c *Client) Balance(ctx context.Context, account solana.PublicKey) (WalletBalance, error) {
	start := time.Now()
	out, err := c.rpc.GetBalance(ctx, account, c.commitment)
	c.record("GetBalance", err, time.Since(start))
	if err != nil {
		return WalletBalance{}, fmt.Errorf("failed to get balance for %s: %w", account, err)
	}
	return WalletBalance{
		Address:  account,
		Lamports: out.Value,
		SOL:      float64(out.Value) / LamportsPerSOL,
	}, nil
}

func (c *Client) latestBlockhash(ctx context.Context) (solana.Hash, error) {
	start := time.Now()
	out, err := c.rpc.GetLatestBlockhash(ctx, c.commitment)
	c.record("GetLatestBlockhash", err, time.Since(start))
	if err != nil {
		return solana.Hash{}, err
	}
	return out.Value.Blockhash, nil
}

func (c *Client) record(method string, err error, d time.Duration) {
	if c.metrics == nil {
		return
	}
	status := "success"
	if err != nil {
		status = "error"
	}
	c.metrics.RecordRPCCall(method, status, d.Seconds())
}
