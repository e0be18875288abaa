package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/brojonat/blockpulse/service/metrics"
	solanasvc "github.com/brojonat/blockpulse/service/solana"
	"github.com/brojonat/blockpulse/service/trigger"
	"github.com/gagliardetto/solana-go"
	"golang.org/x/sync/semaphore"
)

// Sender submits one transfer to the network. Implemented by
// solana.Client; narrowed to an interface so tests can fake the network.
type Sender interface {
	SubmitTransfer(
		ctx context.Context,
		source solana.PrivateKey,
		destination solana.PublicKey,
		lamports uint64,
	) (solana.Signature, error)
}

// Dispatcher submits transfer batches concurrently. A single weighted
// semaphore bounds in-flight submissions globally across all batches,
// so an event storm cannot unbound network load. Each semaphore slot is
// held from submission until the submission reaches a terminal state.
type Dispatcher struct {
	sender  Sender
	keys    *solanasvc.Keyring
	sem     *semaphore.Weighted
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewDispatcher creates a dispatcher with the given global in-flight cap.
func NewDispatcher(sender Sender, keys *solanasvc.Keyring, maxInFlight int64, m *metrics.Metrics, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		sender:  sender,
		keys:    keys,
		sem:     semaphore.NewWeighted(maxInFlight),
		metrics: m,
		logger:  logger,
	}
}

// Dispatch launches every instruction in the batch and returns the
// submissions immediately; callers follow them to terminal status via
// the confirmation tracker. Each worker acquires an in-flight slot
// before submitting, so instructions beyond the cap queue until earlier
// submissions reach a terminal state and free their slot. A failure on
// one instruction never aborts its siblings: the failed submission is
// marked Failed and the rest continue.
func (d *Dispatcher) Dispatch(ctx context.Context, batch []trigger.Instruction) []*Submission {
	if d.metrics != nil {
		d.metrics.RecordBatchSize(len(batch))
	}

	subs := make([]*Submission, len(batch))
	for i, in := range batch {
		sub := newSubmission(in)
		subs[i] = sub

		key, ok := d.keys.Key(in.Source)
		if !ok {
			// Validated at policy construction; reaching this means the
			// keyring changed out from under us. Local failure only.
			sub.Finish(StatusFailed, fmt.Errorf("no keypair for source wallet %s", in.Source))
			continue
		}

		go d.submit(ctx, key, sub)
	}
	return subs
}

func (d *Dispatcher) submit(ctx context.Context, key solana.PrivateKey, sub *Submission) {
	if err := d.sem.Acquire(ctx, 1); err != nil {
		sub.Finish(StatusFailed, fmt.Errorf("dispatch canceled before submission: %w", err))
		return
	}
	if d.metrics != nil {
		d.metrics.IncInFlight()
	}
	if !sub.armRelease(d.releaseSlot) {
		// Went terminal (timed out) while queued for a slot; the slot
		// was released by armRelease.
		return
	}

	sig, err := d.sender.SubmitTransfer(ctx, key, sub.Instruction.Destination, sub.Instruction.Lamports)
	if err != nil {
		d.logger.WarnContext(ctx, "transfer submission failed",
			"source", sub.Instruction.Source.String(),
			"destination", sub.Instruction.Destination.String(),
			"lamports", sub.Instruction.Lamports,
			"error", err,
		)
		sub.Finish(StatusFailed, err)
		return
	}
	sub.markSubmitted(sig, time.Now())
}

// releaseSlot frees one in-flight slot. Wired into each submission's
// terminal transition so the slot is held for the whole submitted-to-
// terminal window.
func (d *Dispatcher) releaseSlot() {
	d.sem.Release(1)
	if d.metrics != nil {
		d.metrics.DecInFlight()
	}
}
