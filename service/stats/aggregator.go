package stats

import (
	"sort"
	"sync"
	"time"

	"github.com/brojonat/blockpulse/service/dispatch"
)

// LatencySummary describes the distribution of submission-to-terminal
// latencies, in milliseconds.
type LatencySummary struct {
	Count  int     `json:"count"`
	MinMs  float64 `json:"min_ms"`
	MaxMs  float64 `json:"max_ms"`
	MeanMs float64 `json:"mean_ms"`
	P50Ms  float64 `json:"p50_ms"`
	P95Ms  float64 `json:"p95_ms"`
	P99Ms  float64 `json:"p99_ms"`
}

// Snapshot is a consistent point-in-time copy of the aggregate
// counters. Once all tracking completes, Submitted equals
// Confirmed + Failed + TimedOut.
type Snapshot struct {
	Submitted uint64         `json:"count_submitted"`
	Confirmed uint64         `json:"count_confirmed"`
	Failed    uint64         `json:"count_failed"`
	TimedOut  uint64         `json:"count_timed_out"`
	Latency   LatencySummary `json:"latency"`
	TakenAt   time.Time      `json:"taken_at"`
}

// Aggregator accumulates per-transfer outcomes. All methods are safe
// for concurrent use; it holds only aggregate state, never individual
// submissions. Process lifetime only, nothing is persisted.
type Aggregator struct {
	mu        sync.Mutex
	submitted uint64
	confirmed uint64
	failed    uint64
	timedOut  uint64
	latencies []time.Duration
}

// NewAggregator creates an empty aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// RecordSubmitted counts n submissions entering the pipeline.
func (a *Aggregator) RecordSubmitted(n int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.submitted += uint64(n)
}

// RecordResult counts one submission reaching a terminal status.
// Latencies are only sampled for submissions that actually reached the
// network; failed-at-submission results carry zero latency and are
// excluded from the distribution.
func (a *Aggregator) RecordResult(status dispatch.Status, latency time.Duration) {
	a.mu.Lock()
	defer a.mu.Unlock()
	switch status {
	case dispatch.StatusConfirmed:
		a.confirmed++
	case dispatch.StatusFailed:
		a.failed++
	case dispatch.StatusTimedOut:
		a.timedOut++
	default:
		return
	}
	if latency > 0 {
		a.latencies = append(a.latencies, latency)
	}
}

// Snapshot returns a consistent copy of the counters. Writers are only
// blocked for the time needed to copy; the percentile math happens on
// the copy.
func (a *Aggregator) Snapshot() Snapshot {
	a.mu.Lock()
	snap := Snapshot{
		Submitted: a.submitted,
		Confirmed: a.confirmed,
		Failed:    a.failed,
		TimedOut:  a.timedOut,
	}
	latencies := make([]time.Duration, len(a.latencies))
	copy(latencies, a.latencies)
	a.mu.Unlock()

	snap.TakenAt = time.Now().UTC()
	snap.Latency = summarize(latencies)
	return snap
}

func summarize(latencies []time.Duration) LatencySummary {
	if len(latencies) == 0 {
		return LatencySummary{}
	}
	sort.Slice(latencies, func(i, j int) bool { return latencies[i] < latencies[j] })

	var sum time.Duration
	for _, l := range latencies {
		sum += l
	}
	n := len(latencies)
	return LatencySummary{
		Count:  n,
		MinMs:  ms(latencies[0]),
		MaxMs:  ms(latencies[n-1]),
		MeanMs: ms(sum) / float64(n),
		P50Ms:  ms(percentile(latencies, 0.50)),
		P95Ms:  ms(percentile(latencies, 0.95)),
		P99Ms:  ms(percentile(latencies, 0.99)),
	}
}

// percentile picks the nearest-rank value from a sorted slice.
func percentile(sorted []time.Duration, p float64) time.Duration {
	idx := int(p*float64(len(sorted))+0.5) - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}

func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
