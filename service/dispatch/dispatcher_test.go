package dispatch

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	solanasvc "github.com/brojonat/blockpulse/service/solana"
	"github.com/brojonat/blockpulse/service/trigger"
	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockSender implements Sender. It tracks concurrency so tests can
// verify the global in-flight cap, and can fail specific destinations.
type mockSender struct {
	mu      sync.Mutex
	failFor map[solana.PublicKey]error
	delay   time.Duration
	sigSeq  uint32
	current int32
	maxSeen int32
}

func (m *mockSender) SubmitTransfer(
	ctx context.Context,
	source solana.PrivateKey,
	destination solana.PublicKey,
	lamports uint64,
) (solana.Signature, error) {
	cur := atomic.AddInt32(&m.current, 1)
	defer atomic.AddInt32(&m.current, -1)
	for {
		seen := atomic.LoadInt32(&m.maxSeen)
		if cur <= seen || atomic.CompareAndSwapInt32(&m.maxSeen, seen, cur) {
			break
		}
	}
	if m.delay > 0 {
		time.Sleep(m.delay)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if err, ok := m.failFor[destination]; ok {
		return solana.Signature{}, err
	}
	m.sigSeq++
	var sig solana.Signature
	sig[0] = byte(m.sigSeq)
	return sig, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testWallet(t *testing.T) (*solanasvc.Keyring, solana.PublicKey) {
	t.Helper()
	w := solana.NewWallet()
	keys, err := solanasvc.NewKeyring(map[string]string{
		w.PublicKey().String(): w.PrivateKey.String(),
	})
	require.NoError(t, err)
	return keys, w.PublicKey()
}

func batchOf(source solana.PublicKey, n int) []trigger.Instruction {
	batch := make([]trigger.Instruction, n)
	for i := range batch {
		dest := solana.NewWallet().PublicKey()
		batch[i] = trigger.Instruction{Source: source, Destination: dest, Lamports: 10}
	}
	return batch
}

// waitSubmitted blocks until every live submission has a signature.
func waitSubmitted(t *testing.T, subs []*Submission) {
	t.Helper()
	require.Eventually(t, func() bool {
		for _, sub := range subs {
			if sub.Status() == StatusPending && sub.Signature().IsZero() {
				return false
			}
		}
		return true
	}, 5*time.Second, time.Millisecond)
}

func TestDispatch_SubmitsWholeBatch(t *testing.T) {
	keys, source := testWallet(t)
	sender := &mockSender{}
	d := NewDispatcher(sender, keys, 8, nil, testLogger())

	batch := batchOf(source, 3)
	subs := d.Dispatch(context.Background(), batch)

	// One submission per instruction, in batch order.
	require.Len(t, subs, 3)
	for i, sub := range subs {
		assert.Equal(t, batch[i].Destination, sub.Instruction.Destination)
	}

	waitSubmitted(t, subs)
	for _, sub := range subs {
		assert.Equal(t, StatusPending, sub.Status())
		assert.False(t, sub.Signature().IsZero())
		assert.False(t, sub.SubmittedAt().IsZero())
	}
}

func TestDispatch_MissingKeyFailsLocally(t *testing.T) {
	keys, source := testWallet(t)
	sender := &mockSender{}
	d := NewDispatcher(sender, keys, 8, nil, testLogger())

	stranger := solana.NewWallet().PublicKey()
	batch := []trigger.Instruction{
		{Source: stranger, Destination: solana.NewWallet().PublicKey(), Lamports: 10},
		{Source: source, Destination: solana.NewWallet().PublicKey(), Lamports: 10},
	}

	subs := d.Dispatch(context.Background(), batch)
	require.Len(t, subs, 2)

	// The unknown source fails immediately without touching the network.
	assert.Equal(t, StatusFailed, subs[0].Status())
	assert.Contains(t, subs[0].Err().Error(), "no keypair")

	// Its sibling still goes out.
	waitSubmitted(t, subs[1:])
	assert.Equal(t, StatusPending, subs[1].Status())
}

func TestDispatch_SubmissionErrorIsIsolated(t *testing.T) {
	keys, source := testWallet(t)
	badDest := solana.NewWallet().PublicKey()
	sender := &mockSender{
		failFor: map[solana.PublicKey]error{badDest: errors.New("blockhash not found")},
	}
	d := NewDispatcher(sender, keys, 8, nil, testLogger())

	batch := []trigger.Instruction{
		{Source: source, Destination: badDest, Lamports: 10},
		{Source: source, Destination: solana.NewWallet().PublicKey(), Lamports: 10},
	}

	subs := d.Dispatch(context.Background(), batch)
	waitSubmitted(t, subs)

	assert.Equal(t, StatusFailed, subs[0].Status())
	assert.Contains(t, subs[0].Err().Error(), "blockhash not found")
	assert.Equal(t, StatusPending, subs[1].Status())
	assert.False(t, subs[1].Signature().IsZero())
}

func TestDispatch_GlobalInFlightCap(t *testing.T) {
	keys, source := testWallet(t)
	sender := &mockSender{delay: 10 * time.Millisecond}
	d := NewDispatcher(sender, keys, 2, nil, testLogger())

	// Two overlapping batches share the cap.
	subsA := d.Dispatch(context.Background(), batchOf(source, 3))
	subsB := d.Dispatch(context.Background(), batchOf(source, 3))

	// Slots are held until terminal status; confirm submissions as they
	// appear so the queued workers can make progress.
	all := append(append([]*Submission{}, subsA...), subsB...)
	require.Eventually(t, func() bool {
		done := 0
		for _, sub := range all {
			if !sub.Signature().IsZero() && sub.Finish(StatusConfirmed, nil) {
				continue
			}
			if sub.Status().Terminal() {
				done++
			}
		}
		return done == len(all)
	}, 5*time.Second, time.Millisecond)

	assert.LessOrEqual(t, atomic.LoadInt32(&sender.maxSeen), int32(2),
		"in-flight submissions must never exceed the cap")
}

func TestDispatch_CanceledContextFailsSubmissions(t *testing.T) {
	keys, source := testWallet(t)
	sender := &mockSender{}
	d := NewDispatcher(sender, keys, 8, nil, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	subs := d.Dispatch(ctx, batchOf(source, 2))
	require.Eventually(t, func() bool {
		for _, sub := range subs {
			if !sub.Status().Terminal() {
				return false
			}
		}
		return true
	}, 5*time.Second, time.Millisecond)

	for _, sub := range subs {
		assert.Equal(t, StatusFailed, sub.Status())
		assert.Contains(t, sub.Err().Error(), "canceled before submission")
	}
}

func TestSubmission_FirstTerminalWins(t *testing.T) {
	var released atomic.Int32
	sub := newSubmission(trigger.Instruction{Lamports: 10})
	require.True(t, sub.armRelease(func() { released.Add(1) }))

	require.True(t, sub.Finish(StatusConfirmed, nil))
	assert.False(t, sub.Finish(StatusFailed, errors.New("late")))
	assert.False(t, sub.Finish(StatusTimedOut, nil))

	assert.Equal(t, StatusConfirmed, sub.Status())
	assert.NoError(t, sub.Err())
	assert.Equal(t, int32(1), released.Load(), "release runs exactly once")
}

func TestSubmission_FinishIgnoresNonTerminal(t *testing.T) {
	sub := newSubmission(trigger.Instruction{})
	assert.False(t, sub.Finish(StatusPending, nil))
	assert.Equal(t, StatusPending, sub.Status())
}

func TestSubmission_ArmReleaseAfterTerminal(t *testing.T) {
	// A submission that timed out while queued for a slot releases the
	// slot the moment it is armed.
	var released atomic.Int32
	sub := newSubmission(trigger.Instruction{})
	require.True(t, sub.Finish(StatusTimedOut, nil))

	assert.False(t, sub.armRelease(func() { released.Add(1) }))
	assert.Equal(t, int32(1), released.Load())
}

func TestStatus_Terminal(t *testing.T) {
	assert.False(t, StatusPending.Terminal())
	assert.True(t, StatusConfirmed.Terminal())
	assert.True(t, StatusFailed.Terminal())
	assert.True(t, StatusTimedOut.Terminal())
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "pending", StatusPending.String())
	assert.Equal(t, "confirmed", StatusConfirmed.String())
	assert.Equal(t, "failed", StatusFailed.String())
	assert.Equal(t, "timed_out", StatusTimedOut.String())
}
