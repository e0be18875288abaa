package stream

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/brojonat/blockpulse/gen/geyser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
)

// fakeStream implements the server-streaming client by replaying a
// fixed sequence of updates. The embedded ClientStream is never called.
type fakeStream struct {
	grpc.ClientStream
	updates  []*geyser.SubscribeUpdate
	idx      int
	finalErr error
	// blockCh, when set, makes Recv block after the updates are
	// drained until the channel is closed.
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
		return nil, io.EOF
	}
	if s.finalErr != nil {
		return nil, s.finalErr
	}
	return nil, io.EOF
}

// fakeGeyserClient hands out one fakeStream per Subscribe call, then
// fails further calls with dialErr.
type fakeGeyserClient struct {
	streams []*fakeStream
	calls   int
	dialErr error
}

func (f *fakeGeyserClient) Subscribe(ctx context.Context, in *geyser.SubscribeRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[geyser.SubscribeUpdate], error) {
	f.calls++
	if len(f.streams) == 0 {
		if f.dialErr != nil {
			return nil, f.dialErr
		}
		return nil, errors.New("no more streams")
	}
	s := f.streams[0]
	f.streams = f.streams[1:]
	return s, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func fakeDialer(client *fakeGeyserClient) Dialer {
	return func(ctx context.Context) (geyser.GeyserClient, io.Closer, error) {
		return client, nopCloser{}, nil
	}
}

func newTestStreamClient(client *fakeGeyserClient, cfg Config) *Client {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewClient(fakeDialer(client), cfg, nil, logger)
}

func testConfig() Config {
	return Config{
		LivenessWindow:       time.Second,
		BackoffBase:          time.Millisecond,
		BackoffCap:           5 * time.Millisecond,
		MaxReconnectAttempts: 3,
	}
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

func slotsRequest() *geyser.SubscribeRequest {
	return &geyser.SubscribeRequest{
		Filters: []*geyser.Filter{
			{Filter: &geyser.Filter_Slots{Slots: &geyser.SlotsFilter{FilterByCommitment: true}}},
		},
	}
}

func collect(t *testing.T, sub *Subscription) []UpdateEvent {
	t.Helper()
	var events []UpdateEvent
	timeout := time.After(5 * time.Second)
	for {
		select {
		case ev, ok := <-sub.Updates():
			if !ok {
				return events
			}
			events = append(events, ev)
		case <-timeout:
			t.Fatal("subscription did not terminate")
		}
	}
}

func TestSubscribe_RejectsEmptyFilter(t *testing.T) {
	client := newTestStreamClient(&fakeGeyserClient{}, testConfig())

	_, err := client.Subscribe(context.Background(), nil)
	require.Error(t, err)

	_, err = client.Subscribe(context.Background(), &geyser.SubscribeRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one filter")

	// A filter entry with no variant set is as useless as none at all.
	_, err = client.Subscribe(context.Background(), &geyser.SubscribeRequest{
		Filters: []*geyser.Filter{{}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no variant")
}

func TestSubscribe_DeliversDecodedEvents(t *testing.T) {
	fake := &fakeGeyserClient{streams: []*fakeStream{
		{updates: []*geyser.SubscribeUpdate{
			pingUpdate(1),
			slotUpdate(100, uint64(CommitmentConfirmed)),
		}},
	}}
	cfg := testConfig()
	cfg.MaxReconnectAttempts = 1
	client := newTestStreamClient(fake, cfg)

	sub, err := client.Subscribe(context.Background(), slotsRequest())
	require.NoError(t, err)

	events := collect(t, sub)
	require.Len(t, events, 2)
	assert.Equal(t, KindPing, events[0].Kind)
	assert.Equal(t, KindSlot, events[1].Kind)
	assert.Equal(t, uint64(100), events[1].Slot.GetSlot())

	// EOF with an exhausted reconnect budget surfaces as fatal.
	require.ErrorIs(t, sub.Err(), ErrReconnectExhausted)
}

func TestSubscribe_ReconnectsWithoutReplay(t *testing.T) {
	fake := &fakeGeyserClient{
		streams: []*fakeStream{
			{updates: []*geyser.SubscribeUpdate{slotUpdate(100, 1)}, finalErr: errors.New("conn reset")},
			{updates: []*geyser.SubscribeUpdate{slotUpdate(101, 1)}, finalErr: errors.New("conn reset")},
		},
		dialErr: errors.New("refused"),
	}
	client := newTestStreamClient(fake, testConfig())

	sub, err := client.Subscribe(context.Background(), slotsRequest())
	require.NoError(t, err)

	events := collect(t, sub)

	// Each connection's events are seen exactly once; nothing from the
	// first connection is replayed on the second.
	require.Len(t, events, 2)
	assert.Equal(t, uint64(100), events[0].Slot.GetSlot())
	assert.Equal(t, uint64(101), events[1].Slot.GetSlot())
	require.ErrorIs(t, sub.Err(), ErrReconnectExhausted)
	assert.GreaterOrEqual(t, fake.calls, 2)
}

func TestSubscribe_HealthyConnectionResetsBudget(t *testing.T) {
	// Five consecutive event-bearing connections with a budget of 3:
	// each delivery resets the counter, so the client outlives the
	// nominal attempt cap.
	streams := make([]*fakeStream, 5)
	for i := range streams {
		streams[i] = &fakeStream{
			updates:  []*geyser.SubscribeUpdate{slotUpdate(uint64(200 + i), 1)},
			finalErr: errors.New("conn reset"),
		}
	}
	fake := &fakeGeyserClient{streams: streams, dialErr: errors.New("refused")}
	client := newTestStreamClient(fake, testConfig())

	sub, err := client.Subscribe(context.Background(), slotsRequest())
	require.NoError(t, err)

	events := collect(t, sub)
	require.Len(t, events, 5)
	require.ErrorIs(t, sub.Err(), ErrReconnectExhausted)
}

func TestSubscribe_ContextCancellation(t *testing.T) {
	blockCh := make(chan struct{})
	defer close(blockCh)
	fake := &fakeGeyserClient{streams: []*fakeStream{
		{blockCh: blockCh},
	}}
	client := newTestStreamClient(fake, testConfig())

	ctx, cancel := context.WithCancel(context.Background())
	sub, err := client.Subscribe(ctx, slotsRequest())
	require.NoError(t, err)

	cancel()

	events := collect(t, sub)
	assert.Empty(t, events)
	require.ErrorIs(t, sub.Err(), context.Canceled)
}

func TestSubscribe_LivenessWindowTriggersReconnect(t *testing.T) {
	blockCh := make(chan struct{})
	defer close(blockCh)

	// The connection delivers one ping then goes silent. The liveness
	// window lapses and, with a budget of one, the client gives up.
	cfg := testConfig()
	cfg.LivenessWindow = 50 * time.Millisecond
	cfg.MaxReconnectAttempts = 1
	fake := &fakeGeyserClient{streams: []*fakeStream{
		{updates: []*geyser.SubscribeUpdate{pingUpdate(1)}, blockCh: blockCh},
	}}
	client := newTestStreamClient(fake, cfg)

	sub, err := client.Subscribe(context.Background(), slotsRequest())
	require.NoError(t, err)

	events := collect(t, sub)
	require.Len(t, events, 1)
	assert.Equal(t, KindPing, events[0].Kind)
	require.ErrorIs(t, sub.Err(), ErrReconnectExhausted)
	assert.Contains(t, sub.Err().Error(), "no ping within")
}

func TestSubscribe_SkipsMalformedUpdates(t *testing.T) {
	fake := &fakeGeyserClient{streams: []*fakeStream{
		{updates: []*geyser.SubscribeUpdate{
			{}, // no variant set
			slotUpdate(100, 1),
		}},
	}}
	cfg := testConfig()
	cfg.MaxReconnectAttempts = 1
	client := newTestStreamClient(fake, cfg)

	sub, err := client.Subscribe(context.Background(), slotsRequest())
	require.NoError(t, err)

	events := collect(t, sub)
	require.Len(t, events, 1)
	assert.Equal(t, KindSlot, events[0].Kind)
}

func TestBackoff_CappedExponential(t *testing.T) {
	client := newTestStreamClient(&fakeGeyserClient{}, Config{
		BackoffBase: 100 * time.Millisecond,
		BackoffCap:  time.Second,
	})

	assert.Equal(t, 100*time.Millisecond, client.backoff(1))
	assert.Equal(t, 200*time.Millisecond, client.backoff(2))
	assert.Equal(t, 400*time.Millisecond, client.backoff(3))
	assert.Equal(t, 800*time.Millisecond, client.backoff(4))
	assert.Equal(t, time.Second, client.backoff(5))
	assert.Equal(t, time.Second, client.backoff(10))
}
