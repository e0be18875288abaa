package stats

import (
	"sync"
	"testing"
	"time"

	"github.com/brojonat/blockpulse/service/dispatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregator_CountsByStatus(t *testing.T) {
	a := NewAggregator()
	a.RecordSubmitted(4)
	a.RecordResult(dispatch.StatusConfirmed, 100*time.Millisecond)
	a.RecordResult(dispatch.StatusConfirmed, 200*time.Millisecond)
	a.RecordResult(dispatch.StatusFailed, 50*time.Millisecond)
	a.RecordResult(dispatch.StatusTimedOut, time.Second)

	snap := a.Snapshot()
	assert.Equal(t, uint64(4), snap.Submitted)
	assert.Equal(t, uint64(2), snap.Confirmed)
	assert.Equal(t, uint64(1), snap.Failed)
	assert.Equal(t, uint64(1), snap.TimedOut)
	assert.Equal(t, snap.Submitted, snap.Confirmed+snap.Failed+snap.TimedOut)
	assert.False(t, snap.TakenAt.IsZero())
}

func TestAggregator_PendingResultIgnored(t *testing.T) {
	a := NewAggregator()
	a.RecordResult(dispatch.StatusPending, time.Second)

	snap := a.Snapshot()
	assert.Zero(t, snap.Confirmed+snap.Failed+snap.TimedOut)
	assert.Zero(t, snap.Latency.Count)
}

func TestAggregator_ZeroLatencyExcludedFromDistribution(t *testing.T) {
	a := NewAggregator()
	// A submission-time failure never reached the network; it counts
	// toward failed but not toward the latency distribution.
	a.RecordResult(dispatch.StatusFailed, 0)
	a.RecordResult(dispatch.StatusConfirmed, 100*time.Millisecond)

	snap := a.Snapshot()
	assert.Equal(t, uint64(1), snap.Failed)
	assert.Equal(t, 1, snap.Latency.Count)
	assert.Equal(t, 100.0, snap.Latency.MinMs)
}

func TestAggregator_LatencySummary(t *testing.T) {
	a := NewAggregator()
	a.RecordSubmitted(100)
	for i := 1; i <= 100; i++ {
		a.RecordResult(dispatch.StatusConfirmed, time.Duration(i)*time.Millisecond)
	}

	snap := a.Snapshot()
	require.Equal(t, 100, snap.Latency.Count)
	assert.Equal(t, 1.0, snap.Latency.MinMs)
	assert.Equal(t, 100.0, snap.Latency.MaxMs)
	assert.InDelta(t, 50.5, snap.Latency.MeanMs, 0.001)
	assert.Equal(t, 50.0, snap.Latency.P50Ms)
	assert.Equal(t, 95.0, snap.Latency.P95Ms)
	assert.Equal(t, 99.0, snap.Latency.P99Ms)
}

func TestAggregator_EmptySnapshot(t *testing.T) {
	snap := NewAggregator().Snapshot()
	assert.Zero(t, snap.Submitted)
	assert.Zero(t, snap.Latency.Count)
	assert.Zero(t, snap.Latency.MinMs)
}

func TestAggregator_SnapshotIsolatedFromLaterWrites(t *testing.T) {
	a := NewAggregator()
	a.RecordSubmitted(1)
	snap := a.Snapshot()

	a.RecordSubmitted(5)
	a.RecordResult(dispatch.StatusConfirmed, time.Millisecond)

	assert.Equal(t, uint64(1), snap.Submitted)
	assert.Zero(t, snap.Confirmed)
}

func TestAggregator_ConcurrentWriters(t *testing.T) {
	a := NewAggregator()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				a.RecordSubmitted(1)
				a.RecordResult(dispatch.StatusConfirmed, time.Millisecond)
			}
		}()
	}
	// Snapshots interleave with writers without corrupting them.
	for i := 0; i < 50; i++ {
		_ = a.Snapshot()
	}
	wg.Wait()

	snap := a.Snapshot()
	assert.Equal(t, uint64(1000), snap.Submitted)
	assert.Equal(t, uint64(1000), snap.Confirmed)
	assert.Equal(t, 1000, snap.Latency.Count)
}
