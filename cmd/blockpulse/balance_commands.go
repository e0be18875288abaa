package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/brojonat/blockpulse/service/balance"
	"github.com/brojonat/blockpulse/service/config"
	solanasvc "github.com/brojonat/blockpulse/service/solana"
	"github.com/gagliardetto/solana-go"
	"github.com/urfave/cli/v2"
)

func balancesCommand() *cli.Command {
	return &cli.Command{
		Name:  "balances",
		Usage: "Show SOL balances for every wallet in the transfer plan",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "rpc-url",
				Usage:   "Solana RPC endpoint",
				EnvVars: []string{"SOLANA_RPC_URL"},
			},
			&cli.StringFlag{
				Name:    "plan",
				Aliases: []string{"p"},
				Usage:   "Path to the transfer plan YAML file",
				EnvVars: []string{"TRANSFER_PLAN_PATH"},
			},
			&cli.StringFlag{
				Name:    "commitment",
				Usage:   "Commitment level for the balance query (processed, confirmed, finalized)",
				EnvVars: []string{"COMMITMENT"},
				Value:   "confirmed",
			},
		},
		Action: func(c *cli.Context) error {
			rpcURL := c.String("rpc-url")
			if rpcURL == "" {
				return fmt.Errorf("rpc-url is required (set SOLANA_RPC_URL env var or use --rpc-url)")
			}
			planPath := c.String("plan")
			if planPath == "" {
				return fmt.Errorf("plan is required (set TRANSFER_PLAN_PATH env var or use --plan)")
			}
			jsonOutput := c.Bool("json")

			logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelError,
			}))

			plan, err := config.LoadPlan(planPath)
			if err != nil {
				return fmt.Errorf("failed to load transfer plan: %w", err)
			}

			wallets := make([]solana.PublicKey, 0, len(plan.Wallets))
			for _, addr := range plan.WalletAddresses() {
				pk, err := solana.PublicKeyFromBase58(addr)
				if err != nil {
					return fmt.Errorf("invalid wallet address %q: %w", addr, err)
				}
				wallets = append(wallets, pk)
			}

			client := solanasvc.NewClient(
				solanasvc.NewRPCClient(rpcURL),
				rpcCommitment(c.String("commitment")),
				nil,
				logger,
			)

			balances, err := balance.FetchAll(context.Background(), client, wallets, logger)
			if err != nil {
				return fmt.Errorf("failed to fetch balances: %w", err)
			}

			if jsonOutput {
				data, err := json.MarshalIndent(balances, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal balances: %w", err)
				}
				fmt.Println(string(data))
				return nil
			}

			fmt.Printf("Wallet balances (%d of %d queried):\n", len(balances), len(wallets))
			for _, wb := range balances {
				fmt.Printf("  %s  %.9f SOL (%d lamports)\n", wb.Address, wb.SOL, wb.Lamports)
			}
			return nil
		},
	}
}
