package confirm

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/brojonat/blockpulse/service/dispatch"
	"github.com/brojonat/blockpulse/service/metrics"
	solanasvc "github.com/brojonat/blockpulse/service/solana"
	"github.com/gagliardetto/solana-go"
)

// StatusQuerier reads a signature's current status from the network.
// Implemented by solana.Client; narrowed so tests can fake the network.
type StatusQuerier interface {
	SignatureStatus(ctx context.Context, sig solana.Signature) (solanasvc.TxStatus, error)
}

// Result is one submission reaching a terminal state.
type Result struct {
	Submission *dispatch.Submission
	Status     dispatch.Status
	Latency    time.Duration
}

// Tracker polls transaction status for in-flight submissions until each
// reaches Confirmed, Failed, or the confirmation timeout. Submissions
// are tracked concurrently; one slow signature never blocks another.
type Tracker struct {
	querier      StatusQuerier
	pollInterval time.Duration
	timeout      time.Duration
	metrics      *metrics.Metrics
	logger       *slog.Logger
}

// NewTracker creates a tracker. pollInterval is the gap between status
// queries per submission; timeout bounds how long a submission may stay
// Pending before it is marked TimedOut.
func NewTracker(querier StatusQuerier, pollInterval, timeout time.Duration, m *metrics.Metrics, logger *slog.Logger) *Tracker {
	return &Tracker{
		querier:      querier,
		pollInterval: pollInterval,
		timeout:      timeout,
		metrics:      m,
		logger:       logger,
	}
}

// Track follows every submission to a terminal state and delivers
// results as they occur. The returned channel is buffered for the whole
// batch and closed once every submission is terminal, so consumers can
// range over it. Submissions already terminal (failed at submission
// time) are reported immediately with their cached status.
func (t *Tracker) Track(ctx context.Context, subs []*dispatch.Submission) <-chan Result {
	results := make(chan Result, len(subs))
	var wg sync.WaitGroup
	for _, sub := range subs {
		sub := sub
		wg.Add(1)
		go func() {
			defer wg.Done()
			t.track(ctx, sub, results)
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()
	return results
}

func (t *Tracker) track(ctx context.Context, sub *dispatch.Submission, results chan<- Result) {
	defer func() {
		status := sub.Status()
		latency := sub.Latency()
		if t.metrics != nil {
			t.metrics.RecordSubmissionResult(status.String())
			t.metrics.RecordConfirmationLatency(status.String(), latency.Seconds())
		}
		results <- Result{Submission: sub, Status: status, Latency: latency}
	}()

	// Terminal already: nothing to poll, report the cached status.
	if sub.Status().Terminal() {
		return
	}

	deadline := time.NewTimer(t.timeout)
	defer deadline.Stop()
	ticker := time.NewTicker(t.pollInterval)
	defer ticker.Stop()

	for {
		// The dispatch worker can fail the submission concurrently
		// (submission-time error); notice without waiting for the
		// deadline.
		if sub.Status().Terminal() {
			return
		}
		if t.poll(ctx, sub) {
			return
		}
		select {
		case <-ctx.Done():
			sub.Finish(dispatch.StatusTimedOut, ctx.Err())
			return
		case <-deadline.C:
			t.logger.WarnContext(ctx, "confirmation timed out",
				"signature", sub.Signature().String(),
				"timeout", t.timeout,
			)
			sub.Finish(dispatch.StatusTimedOut, nil)
			return
		case <-ticker.C:
		}
	}
}

// poll issues one status query and returns whether the submission is
// now terminal. Query errors are transient: logged and retried on the
// next tick, never escalated past this submission.
func (t *Tracker) poll(ctx context.Context, sub *dispatch.Submission) bool {
	sig := sub.Signature()
	if sig.IsZero() {
		// Still queued for an in-flight slot or mid-submission; there
		// is no signature to query yet.
		return false
	}
	if t.metrics != nil {
		t.metrics.RecordConfirmationPoll()
	}
	status, err := t.querier.SignatureStatus(ctx, sig)
	if err != nil {
		t.logger.WarnContext(ctx, "status poll failed",
			"signature", sub.Signature().String(),
			"error", err,
		)
		return false
	}
	switch status {
	case solanasvc.TxStatusConfirmed:
		sub.Finish(dispatch.StatusConfirmed, nil)
		return true
	case solanasvc.TxStatusFailed:
		sub.Finish(dispatch.StatusFailed, errOnChain)
		return true
	}
	return false
}

// errOnChain marks submissions the network executed but rejected.
var errOnChain = &onChainError{}

type onChainError struct{}

func (e *onChainError) Error() string { return "transaction failed on chain" }
