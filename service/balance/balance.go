// Package balance implements the one-time balance read-out for the
// configured wallets: a concurrent RPC fan-out, one query per wallet.
package balance

import (
	"context"
	"log/slog"
	"sync"

	solanasvc "github.com/brojonat/blockpulse/service/solana"
	"github.com/gagliardetto/solana-go"
	"golang.org/x/sync/errgroup"
)

// Getter reads one wallet's balance. Implemented by solana.Client.
type Getter interface {
	Balance(ctx context.Context, account solana.PublicKey) (solanasvc.WalletBalance, error)
}

// FetchAll queries every wallet concurrently and returns the balances
// in input order. A failed query is logged and skipped; it does not
// abort the siblings. The error is non-nil only when the context is
// canceled before the fan-out completes.
func FetchAll(ctx context.Context, getter Getter, wallets []solana.PublicKey, logger *slog.Logger) ([]solanasvc.WalletBalance, error) {
	results := make([]*solanasvc.WalletBalance, len(wallets))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for i, wallet := range wallets {
		i, wallet := i, wallet
		g.Go(func() error {
			wb, err := getter.Balance(gctx, wallet)
			if err != nil {
				logger.WarnContext(gctx, "failed to get balance",
					"wallet", wallet.String(),
					"error", err,
				)
				return nil
			}
			mu.Lock()
			results[i] = &wb
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]solanasvc.WalletBalance, 0, len(wallets))
	for _, r := range results {
		if r != nil {
			out = append(out, *r)
		}
	}
	return out, nil
}
