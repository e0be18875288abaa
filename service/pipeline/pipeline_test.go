package pipeline

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/brojonat/blockpulse/gen/geyser"
	"github.com/brojonat/blockpulse/service/confirm"
	"github.com/brojonat/blockpulse/service/dispatch"
	natssvc "github.com/brojonat/blockpulse/service/nats"
	solanasvc "github.com/brojonat/blockpulse/service/solana"
	"github.com/brojonat/blockpulse/service/stats"
	"github.com/brojonat/blockpulse/service/stream"
	"github.com/brojonat/blockpulse/service/trigger"
	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
)

// fakeStream replays a scripted sequence of updates, then blocks until
// blockCh closes (if set) or returns io.EOF.
type fakeStream struct {
	grpc.ClientStream
	updates []*geyser.SubscribeUpdate
	idx     int
	blockCh chan struct{}
}

func (s *fakeStream) Recv() (*geyser.SubscribeUpdate, error) {
	if s.idx < len(s.updates) {
		u := s.updates[s.idx]
		s.idx++
		return u, nil
	}
	if s.blockCh != nil {
		<-s.blockCh
	}
	return nil, io.EOF
}

type fakeGeyserClient struct {
	stream *fakeStream
	used   bool
}

func (f *fakeGeyserClient) Subscribe(ctx context.Context, in *geyser.SubscribeRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[geyser.SubscribeUpdate], error) {
	if f.used {
		return nil, errors.New("no more streams")
	}
	f.used = true
	return f.stream, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// scriptedSender assigns sequential signatures and remembers which
// destination each one went to, so the querier can fail specific
// transfers.
type scriptedSender struct {
	mu      sync.Mutex
	sigSeq  byte
	sigDest map[solana.Signature]solana.PublicKey
	sendErr map[solana.PublicKey]error
}

func (s *scriptedSender) SubmitTransfer(
	ctx context.Context,
	source solana.PrivateKey,
	destination solana.PublicKey,
	lamports uint64,
) (solana.Signature, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err, ok := s.sendErr[destination]; ok {
		return solana.Signature{}, err
	}
	s.sigSeq++
	var sig solana.Signature
	sig[0] = s.sigSeq
	if s.sigDest == nil {
		s.sigDest = make(map[solana.Signature]solana.PublicKey)
	}
	s.sigDest[sig] = destination
	return sig, nil
}

func (s *scriptedSender) destinationOf(sig solana.Signature) (solana.PublicKey, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	dest, ok := s.sigDest[sig]
	return dest, ok
}

// markerQuerier confirms every signature except those whose transfer
// went to failDest.
type markerQuerier struct {
	sender   *scriptedSender
	failDest solana.PublicKey
	hasFail  bool
}

func (q *markerQuerier) SignatureStatus(ctx context.Context, sig solana.Signature) (solanasvc.TxStatus, error) {
	if q.hasFail {
		if dest, ok := q.sender.destinationOf(sig); ok && dest.Equals(q.failDest) {
			return solanasvc.TxStatusFailed, nil
		}
	}
	return solanasvc.TxStatusConfirmed, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func slotUpdate(slot, status uint64) *geyser.SubscribeUpdate {
	return &geyser.SubscribeUpdate{Update: &geyser.SubscribeUpdate_Slot{
		Slot: &geyser.SubscribeUpdateSlot{Slot: slot, Status: status},
	}}
}

func pingUpdate(seq uint64) *geyser.SubscribeUpdate {
	return &geyser.SubscribeUpdate{Update: &geyser.SubscribeUpdate_Ping{
		Ping: &geyser.SubscribeUpdatePing{Seq: seq},
	}}
}

type fixture struct {
	wallets   []*solana.Wallet
	keys      *solanasvc.Keyring
	sender    *scriptedSender
	querier   *markerQuerier
	sink      *natssvc.MockPublisher
	pipeline  *Pipeline
	aggregate *stats.Aggregator
}

// newFixture wires a pipeline against a scripted stream and fake
// network, with a two-transfer plan unless transfers is overridden.
func newFixture(t *testing.T, updates []*geyser.SubscribeUpdate, blockCh chan struct{}, transfers []trigger.Transfer) *fixture {
	t.Helper()

	a := solana.NewWallet()
	b := solana.NewWallet()
	keys, err := solanasvc.NewKeyring(map[string]string{
		a.PublicKey().String(): a.PrivateKey.String(),
		b.PublicKey().String(): b.PrivateKey.String(),
	})
	require.NoError(t, err)

	if transfers == nil {
		transfers = []trigger.Transfer{
			{Source: a.PublicKey().String(), Destination: b.PublicKey().String(), AmountLamports: 10},
			{Source: b.PublicKey().String(), Destination: a.PublicKey().String(), AmountLamports: 5},
		}
	}
	policy, err := trigger.NewPolicy(transfers, keys, testLogger())
	require.NoError(t, err)

	fakeClient := &fakeGeyserClient{stream: &fakeStream{updates: updates, blockCh: blockCh}}
	streamClient := stream.NewClient(
		func(ctx context.Context) (geyser.GeyserClient, io.Closer, error) {
			return fakeClient, nopCloser{}, nil
		},
		stream.Config{
			LivenessWindow:       time.Minute,
			BackoffBase:          time.Millisecond,
			BackoffCap:           time.Millisecond,
			MaxReconnectAttempts: 1,
		},
		nil,
		testLogger(),
	)

	sender := &scriptedSender{}
	querier := &markerQuerier{sender: sender}
	sink := natssvc.NewMockPublisher()
	aggregate := stats.NewAggregator()

	p := New(Config{
		StreamClient: streamClient,
		Request: &geyser.SubscribeRequest{Filters: []*geyser.Filter{
			{Filter: &geyser.Filter_Slots{Slots: &geyser.SlotsFilter{FilterByCommitment: true}}},
		}},
		Commitment: stream.CommitmentConfirmed,
		Policy:     policy,
		Dispatcher: dispatch.NewDispatcher(sender, keys, 8, nil, testLogger()),
		Tracker:    confirm.NewTracker(querier, 5*time.Millisecond, time.Second, nil, testLogger()),
		Aggregator: aggregate,
		Sink:       sink,
		BatchGrace: 5 * time.Second,
		Logger:     testLogger(),
	})

	return &fixture{
		wallets:   []*solana.Wallet{a, b},
		keys:      keys,
		sender:    sender,
		querier:   querier,
		sink:      sink,
		pipeline:  p,
		aggregate: aggregate,
	}
}

func TestRun_QualifyingSlotDispatchesBatch(t *testing.T) {
	// One confirmed slot, a two-transfer plan, full confirmation.
	f := newFixture(t, []*geyser.SubscribeUpdate{
		pingUpdate(1),
		slotUpdate(100, uint64(stream.CommitmentConfirmed)),
	}, nil, nil)

	snap, err := f.pipeline.Run(context.Background())
	require.ErrorIs(t, err, stream.ErrReconnectExhausted)

	assert.Equal(t, uint64(2), snap.Submitted)
	assert.Equal(t, uint64(2), snap.Confirmed)
	assert.Zero(t, snap.Failed)
	assert.Zero(t, snap.TimedOut)
	assert.Equal(t, 2, snap.Latency.Count)

	// Terminal outcomes reach the sink; the ping goes there too.
	outcomes := f.sink.Outcomes()
	require.Len(t, outcomes, 2)
	for _, o := range outcomes {
		assert.Equal(t, "confirmed", o.Status)
		assert.NotEmpty(t, o.Signature)
	}
	events := f.sink.StreamEvents()
	require.Len(t, events, 1)
	assert.Equal(t, "ping", events[0].Kind)
	assert.Equal(t, uint64(1), events[0].PingSeq)
}

func TestRun_OnChainFailureIsIsolated(t *testing.T) {
	f := newFixture(t, []*geyser.SubscribeUpdate{
		slotUpdate(100, uint64(stream.CommitmentConfirmed)),
	}, nil, nil)

	// The second transfer (destination = wallet a) fails on chain.
	f.querier.failDest = f.wallets[0].PublicKey()
	f.querier.hasFail = true

	snap, err := f.pipeline.Run(context.Background())
	require.ErrorIs(t, err, stream.ErrReconnectExhausted)

	assert.Equal(t, uint64(2), snap.Submitted)
	assert.Equal(t, uint64(1), snap.Confirmed)
	assert.Equal(t, uint64(1), snap.Failed)
	assert.Equal(t, snap.Submitted, snap.Confirmed+snap.Failed+snap.TimedOut)
}

func TestRun_SubmissionTimeFailure(t *testing.T) {
	f := newFixture(t, []*geyser.SubscribeUpdate{
		slotUpdate(100, uint64(stream.CommitmentConfirmed)),
	}, nil, nil)

	f.sender.sendErr = map[solana.PublicKey]error{
		f.wallets[1].PublicKey(): errors.New("blockhash not found"),
	}

	snap, err := f.pipeline.Run(context.Background())
	require.ErrorIs(t, err, stream.ErrReconnectExhausted)

	assert.Equal(t, uint64(2), snap.Submitted)
	assert.Equal(t, uint64(1), snap.Confirmed)
	assert.Equal(t, uint64(1), snap.Failed)

	var failed *natssvc.OutcomeEvent
	for _, o := range f.sink.Outcomes() {
		if o.Status == "failed" {
			failed = o
		}
	}
	require.NotNil(t, failed)
	assert.Empty(t, failed.Signature, "a transfer that never reached the network has no signature")
	assert.Contains(t, failed.Error, "blockhash not found")
}

func TestRun_BelowCommitmentSlotDoesNotTrigger(t *testing.T) {
	f := newFixture(t, []*geyser.SubscribeUpdate{
		slotUpdate(100, uint64(stream.CommitmentProcessed)),
	}, nil, nil)

	snap, err := f.pipeline.Run(context.Background())
	require.ErrorIs(t, err, stream.ErrReconnectExhausted)

	assert.Zero(t, snap.Submitted)
	// The non-qualifying slot still reaches the observability sink.
	events := f.sink.StreamEvents()
	require.Len(t, events, 1)
	assert.Equal(t, "slot", events[0].Kind)
	assert.Equal(t, uint64(100), events[0].Slot)
}

func TestRun_MultipleQualifyingEvents(t *testing.T) {
	f := newFixture(t, []*geyser.SubscribeUpdate{
		slotUpdate(100, uint64(stream.CommitmentConfirmed)),
		slotUpdate(101, uint64(stream.CommitmentConfirmed)),
		slotUpdate(102, uint64(stream.CommitmentFinalized)),
	}, nil, nil)

	snap, err := f.pipeline.Run(context.Background())
	require.ErrorIs(t, err, stream.ErrReconnectExhausted)

	// One full batch per qualifying event.
	assert.Equal(t, uint64(6), snap.Submitted)
	assert.Equal(t, uint64(6), snap.Confirmed)
}

func TestRun_EmptyPlanIsNoOp(t *testing.T) {
	f := newFixture(t, []*geyser.SubscribeUpdate{
		slotUpdate(100, uint64(stream.CommitmentConfirmed)),
	}, nil, []trigger.Transfer{})

	snap, err := f.pipeline.Run(context.Background())
	require.ErrorIs(t, err, stream.ErrReconnectExhausted)
	assert.Zero(t, snap.Submitted)
}

func TestRun_CleanShutdownOnCancel(t *testing.T) {
	blockCh := make(chan struct{})
	defer close(blockCh)

	f := newFixture(t, []*geyser.SubscribeUpdate{
		slotUpdate(100, uint64(stream.CommitmentConfirmed)),
	}, blockCh, nil)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		// Give the slot event time to trigger before shutdown.
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	snap, err := f.pipeline.Run(ctx)

	// Caller-initiated shutdown is not an error, and in-flight batches
	// drain inside the grace window before the final snapshot.
	require.NoError(t, err)
	assert.Equal(t, uint64(2), snap.Submitted)
	assert.Equal(t, snap.Submitted, snap.Confirmed+snap.Failed+snap.TimedOut)
}
