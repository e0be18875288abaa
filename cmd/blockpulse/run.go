package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/brojonat/blockpulse/gen/geyser"
	"github.com/brojonat/blockpulse/service/config"
	"github.com/brojonat/blockpulse/service/confirm"
	"github.com/brojonat/blockpulse/service/dispatch"
	"github.com/brojonat/blockpulse/service/metrics"
	natssvc "github.com/brojonat/blockpulse/service/nats"
	"github.com/brojonat/blockpulse/service/pipeline"
	"github.com/brojonat/blockpulse/service/server"
	solanasvc "github.com/brojonat/blockpulse/service/solana"
	"github.com/brojonat/blockpulse/service/stats"
	"github.com/brojonat/blockpulse/service/stream"
	"github.com/brojonat/blockpulse/service/trigger"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/urfave/cli/v2"
)

func runCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Subscribe to the geyser stream and dispatch transfers on qualifying updates",
		Description: `Loads the transfer plan, subscribes to the configured geyser endpoint,
and fans out a batch of SOL transfers on every qualifying slot or block
update. Runs until interrupted, then prints the final stats snapshot.

Configuration is read from the environment (GEYSER_ENDPOINT,
SOLANA_RPC_URL, TRANSFER_PLAN_PATH, and optional tuning knobs).`,
		Action: func(c *cli.Context) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			logger := setupLogger(cfg.LogLevel)
			logger.Info("starting blockpulse",
				"addr", cfg.ServerAddr,
				"geyser_endpoint", cfg.GeyserEndpoint,
				"commitment", cfg.Commitment,
				"max_in_flight", cfg.MaxInFlight,
			)

			plan, err := config.LoadPlan(cfg.TransferPlanPath)
			if err != nil {
				return fmt.Errorf("failed to load transfer plan: %w", err)
			}

			keys, err := solanasvc.NewKeyring(plan.WalletSecrets())
			if err != nil {
				return fmt.Errorf("failed to build keyring: %w", err)
			}

			policy, err := trigger.NewPolicy(plan.Transfers, keys, logger)
			if err != nil {
				return fmt.Errorf("failed to build trigger policy: %w", err)
			}
			logger.Info("loaded transfer plan",
				"wallets", keys.Len(),
				"transfers_per_event", policy.Size(),
			)

			commitment, err := stream.ParseCommitment(cfg.Commitment)
			if err != nil {
				return err
			}

			m := metrics.NewMetrics(nil)

			// Solana RPC client and the pipeline stages built on it.
			solClient := solanasvc.NewClient(
				solanasvc.NewRPCClient(cfg.SolanaRPCURL),
				rpcCommitment(cfg.Commitment),
				m,
				logger,
			)
			dispatcher := dispatch.NewDispatcher(solClient, keys, int64(cfg.MaxInFlight), m, logger)
			tracker := confirm.NewTracker(solClient, cfg.PollInterval, cfg.ConfirmTimeout, m, logger)
			aggregator := stats.NewAggregator()

			streamClient := stream.NewClient(
				stream.GRPCDialer(cfg.GeyserEndpoint),
				stream.Config{
					LivenessWindow:       cfg.LivenessWindow,
					BackoffBase:          cfg.ReconnectBaseBackoff,
					BackoffCap:           cfg.ReconnectMaxBackoff,
					MaxReconnectAttempts: cfg.ReconnectMaxAttempts,
				},
				m,
				logger,
			)

			// Optional NATS event sink.
			var sink natssvc.Publisher
			if cfg.NATSURL != "" {
				pub, err := natssvc.NewPublisher(cfg.NATSURL, m, logger)
				if err != nil {
					return fmt.Errorf("failed to connect to NATS: %w", err)
				}
				defer pub.Close()
				sink = pub
				logger.Info("connected to NATS", "url", cfg.NATSURL)
			}

			pipe := pipeline.New(pipeline.Config{
				StreamClient: streamClient,
				Request:      subscribeRequest(),
				Commitment:   commitment,
				Policy:       policy,
				Dispatcher:   dispatcher,
				Tracker:      tracker,
				Aggregator:   aggregator,
				Sink:         sink,
				BatchGrace:   cfg.ConfirmTimeout + cfg.PollInterval,
				Logger:       logger,
			})

			// HTTP server exposes /healthz, /stats, and /metrics while
			// the pipeline runs.
			httpServer := server.New(cfg.ServerAddr, aggregator, m, logger)
			serverErrors := make(chan error, 1)
			go func() {
				serverErrors <- httpServer.Start()
			}()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			snapshot, runErr := pipe.Run(ctx)

			// Graceful shutdown of the HTTP server once the pipeline
			// has drained.
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer shutdownCancel()
			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				logger.Error("failed to shutdown server gracefully", "error", err)
			}
			select {
			case err := <-serverErrors:
				if err != nil {
					logger.Error("server error", "error", err)
				}
			default:
			}

			data, err := json.MarshalIndent(snapshot, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal snapshot: %w", err)
			}
			fmt.Println(string(data))

			if runErr != nil {
				return fmt.Errorf("pipeline terminated: %w", runErr)
			}
			return nil
		},
	}
}

// subscribeRequest builds the geyser subscription. Slot updates alone
// drive triggering; subscribing to blocks as well would dispatch two
// batches per slot.
func subscribeRequest() *geyser.SubscribeRequest {
	return &geyser.SubscribeRequest{
		Filters: []*geyser.Filter{
			{
				Filter: &geyser.Filter_Slots{
					Slots: &geyser.SlotsFilter{FilterByCommitment: true},
				},
			},
		},
	}
}

// rpcCommitment maps the config commitment string onto the solana-go
// RPC commitment type. Config validation guarantees one of the three
// values.
func rpcCommitment(s string) rpc.CommitmentType {
	switch s {
	case "processed":
		return rpc.CommitmentProcessed
	case "finalized":
		return rpc.CommitmentFinalized
	default:
		return rpc.CommitmentConfirmed
	}
}
