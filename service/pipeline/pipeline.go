// Package pipeline wires the reactive dispatch pipeline: subscribe,
// filter, trigger, dispatch, confirm, report.
package pipeline

import (
	"context"
	"encoding/hex"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/brojonat/blockpulse/gen/geyser"
	"github.com/brojonat/blockpulse/service/confirm"
	"github.com/brojonat/blockpulse/service/dispatch"
	natssvc "github.com/brojonat/blockpulse/service/nats"
	"github.com/brojonat/blockpulse/service/stats"
	"github.com/brojonat/blockpulse/service/stream"
	"github.com/brojonat/blockpulse/service/trigger"
)

// Pipeline runs the full reactive loop. A single consumer drains the
// subscription in order; each qualifying event spawns an independent
// batch whose dispatch and confirmation overlap freely with other
// batches, bounded only by the dispatcher's shared in-flight cap.
type Pipeline struct {
	streamClient *stream.Client
	request      *geyser.SubscribeRequest
	commitment   stream.Commitment
	policy       *trigger.Policy
	dispatcher   *dispatch.Dispatcher
	tracker      *confirm.Tracker
	aggregator   *stats.Aggregator
	sink         natssvc.Publisher
	batchGrace   time.Duration
	logger       *slog.Logger
}

// Config carries the pipeline dependencies and knobs.
type Config struct {
	StreamClient *stream.Client
	Request      *geyser.SubscribeRequest
	Commitment   stream.Commitment
	Policy       *trigger.Policy
	Dispatcher   *dispatch.Dispatcher
	Tracker      *confirm.Tracker
	Aggregator   *stats.Aggregator

	// Sink receives non-qualifying updates and terminal outcomes.
	// Optional; nil disables publishing.
	Sink natssvc.Publisher

	// BatchGrace bounds how long in-flight batches may keep running
	// after the stream shuts down. Should cover the confirmation
	// timeout plus one poll interval.
	BatchGrace time.Duration

	Logger *slog.Logger
}

// New assembles a pipeline from its stages.
func New(cfg Config) *Pipeline {
	return &Pipeline{
		streamClient: cfg.StreamClient,
		request:      cfg.Request,
		commitment:   cfg.Commitment,
		policy:       cfg.Policy,
		dispatcher:   cfg.Dispatcher,
		tracker:      cfg.Tracker,
		aggregator:   cfg.Aggregator,
		sink:         cfg.Sink,
		batchGrace:   cfg.BatchGrace,
		logger:       cfg.Logger,
	}
}

// Run drives the pipeline until the context is canceled or the stream
// fails fatally. Shutdown is ordered: the subscription closes first, in-
// flight batches run to terminal status or their grace window, then the
// final snapshot is taken. The returned snapshot is valid in both the
// clean and the fatal case.
func (p *Pipeline) Run(ctx context.Context) (stats.Snapshot, error) {
	sub, err := p.streamClient.Subscribe(ctx, p.request)
	if err != nil {
		return p.aggregator.Snapshot(), err
	}

	var batches sync.WaitGroup
	for ev := range sub.Updates() {
		q, ok := stream.Qualify(ev, p.commitment)
		if !ok {
			p.sinkEvent(ctx, ev)
			continue
		}

		batch := p.policy.BatchFor(q)
		if len(batch) == 0 {
			continue
		}
		p.logger.InfoContext(ctx, "qualifying event",
			"slot", q.Slot,
			"kind", string(q.Kind),
			"batch_size", len(batch),
		)

		batches.Add(1)
		go func() {
			defer batches.Done()
			p.runBatch(ctx, batch)
		}()
	}

	// Stream closed: no new events are accepted. Let in-flight batches
	// drain before the final snapshot.
	batches.Wait()

	err = sub.Err()
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	return p.aggregator.Snapshot(), err
}

// runBatch dispatches and confirms one batch. The batch context is
// detached from the run context so in-flight work survives stream
// shutdown, bounded by the grace window instead.
func (p *Pipeline) runBatch(ctx context.Context, batch []trigger.Instruction) {
	bctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.batchGrace)
	defer cancel()

	subs := p.dispatcher.Dispatch(bctx, batch)
	p.aggregator.RecordSubmitted(len(subs))

	for res := range p.tracker.Track(bctx, subs) {
		p.aggregator.RecordResult(res.Status, res.Latency)
		p.sinkOutcome(bctx, res)
	}
}

// sinkEvent forwards a non-qualifying update to the observability sink.
// Best effort: a publish failure is logged and dropped.
func (p *Pipeline) sinkEvent(ctx context.Context, ev stream.UpdateEvent) {
	if p.sink == nil {
		return
	}
	event := &natssvc.StreamEvent{
		Kind:       string(ev.Kind),
		ReceivedAt: ev.ReceivedAt,
	}
	switch ev.Kind {
	case stream.KindAccount:
		event.Slot = ev.Account.GetSlot()
	case stream.KindSlot:
		event.Slot = ev.Slot.GetSlot()
	case stream.KindTransaction:
		event.Slot = ev.Transaction.GetSlot()
		event.Signature = hex.EncodeToString(ev.Transaction.GetSignature())
	case stream.KindEntry:
		event.Slot = ev.Entry.GetSlot()
	case stream.KindPing:
		event.PingSeq = ev.Ping.GetSeq()
	}
	if err := p.sink.PublishStreamEvent(ctx, event); err != nil {
		p.logger.WarnContext(ctx, "failed to publish stream event", "error", err)
	}
}

// sinkOutcome forwards a terminal transfer outcome to the sink.
func (p *Pipeline) sinkOutcome(ctx context.Context, res confirm.Result) {
	if p.sink == nil {
		return
	}
	event := &natssvc.OutcomeEvent{
		Source:      res.Submission.Instruction.Source.String(),
		Destination: res.Submission.Instruction.Destination.String(),
		Lamports:    res.Submission.Instruction.Lamports,
		Status:      res.Status.String(),
		LatencyMs:   float64(res.Latency) / float64(time.Millisecond),
	}
	if !res.Submission.Signature().IsZero() {
		event.Signature = res.Submission.Signature().String()
	}
	if err := res.Submission.Err(); err != nil {
		event.Error = err.Error()
	}
	if err := p.sink.PublishOutcome(ctx, event); err != nil {
		p.logger.WarnContext(ctx, "failed to publish outcome", "error", err)
	}
}
