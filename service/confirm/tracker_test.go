package confirm

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/brojonat/blockpulse/service/dispatch"
	solanasvc "github.com/brojonat/blockpulse/service/solana"
	"github.com/brojonat/blockpulse/service/trigger"
	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockQuerier implements StatusQuerier with a per-signature status map
// and an optional number of leading transient errors.
type mockQuerier struct {
	mu        sync.Mutex
	statuses  map[solana.Signature]solanasvc.TxStatus
	errsLeft  int
	pollCount int
}

func (m *mockQuerier) SignatureStatus(ctx context.Context, sig solana.Signature) (solanasvc.TxStatus, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pollCount++
	if m.errsLeft > 0 {
		m.errsLeft--
		return solanasvc.TxStatusPending, errors.New("rpc node unavailable")
	}
	return m.statuses[sig], nil
}

func (m *mockQuerier) setStatus(sig solana.Signature, status solanasvc.TxStatus) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.statuses == nil {
		m.statuses = make(map[solana.Signature]solanasvc.TxStatus)
	}
	m.statuses[sig] = status
}

func (m *mockQuerier) polls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pollCount
}

// scriptedSender submits every transfer with a sequential signature, or
// fails every call when err is set.
type scriptedSender struct {
	mu     sync.Mutex
	sigSeq byte
	err    error
}

func (s *scriptedSender) SubmitTransfer(
	ctx context.Context,
	source solana.PrivateKey,
	destination solana.PublicKey,
	lamports uint64,
) (solana.Signature, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return solana.Signature{}, s.err
	}
	s.sigSeq++
	var sig solana.Signature
	sig[0] = s.sigSeq
	return sig, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// dispatchOne produces one real submission through the dispatcher so
// the tracker sees the same lifecycle it does in production.
func dispatchOne(t *testing.T, sender dispatch.Sender) *dispatch.Submission {
	t.Helper()
	w := solana.NewWallet()
	keys, err := solanasvc.NewKeyring(map[string]string{
		w.PublicKey().String(): w.PrivateKey.String(),
	})
	require.NoError(t, err)

	d := dispatch.NewDispatcher(sender, keys, 4, nil, testLogger())
	subs := d.Dispatch(context.Background(), []trigger.Instruction{
		{Source: w.PublicKey(), Destination: solana.NewWallet().PublicKey(), Lamports: 10},
	})
	require.Len(t, subs, 1)

	// Wait for the dispatch worker to either submit or fail.
	require.Eventually(t, func() bool {
		return !subs[0].Signature().IsZero() || subs[0].Status().Terminal()
	}, 5*time.Second, time.Millisecond)
	return subs[0]
}

func TestTrack_ConfirmsSubmission(t *testing.T) {
	sub := dispatchOne(t, &scriptedSender{})
	querier := &mockQuerier{}
	querier.setStatus(sub.Signature(), solanasvc.TxStatusConfirmed)

	tracker := NewTracker(querier, 5*time.Millisecond, time.Second, nil, testLogger())

	var results []Result
	for res := range tracker.Track(context.Background(), []*dispatch.Submission{sub}) {
		results = append(results, res)
	}

	require.Len(t, results, 1)
	assert.Equal(t, dispatch.StatusConfirmed, results[0].Status)
	assert.Equal(t, sub, results[0].Submission)
	assert.GreaterOrEqual(t, results[0].Latency, time.Duration(0))
	assert.Equal(t, dispatch.StatusConfirmed, sub.Status())
}

func TestTrack_FailedOnChain(t *testing.T) {
	sub := dispatchOne(t, &scriptedSender{})
	querier := &mockQuerier{}
	querier.setStatus(sub.Signature(), solanasvc.TxStatusFailed)

	tracker := NewTracker(querier, 5*time.Millisecond, time.Second, nil, testLogger())

	res := <-tracker.Track(context.Background(), []*dispatch.Submission{sub})
	assert.Equal(t, dispatch.StatusFailed, res.Status)
	assert.Contains(t, sub.Err().Error(), "failed on chain")
}

func TestTrack_TimesOutPendingSubmission(t *testing.T) {
	sub := dispatchOne(t, &scriptedSender{})
	querier := &mockQuerier{} // never reports the signature

	tracker := NewTracker(querier, 10*time.Millisecond, 50*time.Millisecond, nil, testLogger())

	res := <-tracker.Track(context.Background(), []*dispatch.Submission{sub})
	assert.Equal(t, dispatch.StatusTimedOut, res.Status)
	assert.Equal(t, dispatch.StatusTimedOut, sub.Status())
	assert.Greater(t, querier.polls(), 1, "a pending signature is polled repeatedly")
}

func TestTrack_AlreadyTerminalReportedImmediately(t *testing.T) {
	// Submission-time failure: terminal before tracking begins.
	sub := dispatchOne(t, &scriptedSender{err: errors.New("blockhash not found")})
	require.Equal(t, dispatch.StatusFailed, sub.Status())

	querier := &mockQuerier{}
	tracker := NewTracker(querier, 5*time.Millisecond, time.Second, nil, testLogger())

	res := <-tracker.Track(context.Background(), []*dispatch.Submission{sub})
	assert.Equal(t, dispatch.StatusFailed, res.Status)
	assert.Zero(t, querier.polls(), "a terminal submission is never polled")
}

func TestTrack_QuerierErrorsAreTransient(t *testing.T) {
	sub := dispatchOne(t, &scriptedSender{})
	querier := &mockQuerier{errsLeft: 2}
	querier.setStatus(sub.Signature(), solanasvc.TxStatusConfirmed)

	tracker := NewTracker(querier, 5*time.Millisecond, time.Second, nil, testLogger())

	res := <-tracker.Track(context.Background(), []*dispatch.Submission{sub})
	assert.Equal(t, dispatch.StatusConfirmed, res.Status)
	assert.GreaterOrEqual(t, querier.polls(), 3)
}

func TestTrack_ConcurrentSubmissionsIndependentOutcomes(t *testing.T) {
	sender := &scriptedSender{}
	confirmed := dispatchOne(t, sender)
	failed := dispatchOne(t, sender)
	stuck := dispatchOne(t, sender)

	querier := &mockQuerier{}
	querier.setStatus(confirmed.Signature(), solanasvc.TxStatusConfirmed)
	querier.setStatus(failed.Signature(), solanasvc.TxStatusFailed)
	// stuck's signature stays pending until it times out.

	tracker := NewTracker(querier, 5*time.Millisecond, 50*time.Millisecond, nil, testLogger())

	counts := make(map[dispatch.Status]int)
	subs := []*dispatch.Submission{confirmed, failed, stuck}
	for res := range tracker.Track(context.Background(), subs) {
		counts[res.Status]++
	}

	assert.Equal(t, 1, counts[dispatch.StatusConfirmed])
	assert.Equal(t, 1, counts[dispatch.StatusFailed])
	assert.Equal(t, 1, counts[dispatch.StatusTimedOut])
}

func TestTrack_ContextCancellationTimesOut(t *testing.T) {
	sub := dispatchOne(t, &scriptedSender{})
	querier := &mockQuerier{}

	ctx, cancel := context.WithCancel(context.Background())
	tracker := NewTracker(querier, 10*time.Millisecond, time.Minute, nil, testLogger())

	ch := tracker.Track(ctx, []*dispatch.Submission{sub})
	cancel()

	res := <-ch
	assert.Equal(t, dispatch.StatusTimedOut, res.Status)
	assert.ErrorIs(t, sub.Err(), context.Canceled)
}
