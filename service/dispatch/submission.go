package dispatch

import (
	"sync"
	"time"

	"github.com/brojonat/blockpulse/service/trigger"
	"github.com/gagliardetto/solana-go"
)

// Status is the lifecycle state of one transfer submission. Transitions
// only move forward: Pending reaches exactly one terminal state and
// never regresses.
type Status int

const (
	StatusPending Status = iota
	StatusConfirmed
	StatusFailed
	StatusTimedOut
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusConfirmed:
		return "confirmed"
	case StatusFailed:
		return "failed"
	case StatusTimedOut:
		return "timed_out"
	}
	return "unknown"
}

// Terminal reports whether the status is final.
func (s Status) Terminal() bool {
	return s != StatusPending
}

// Submission is one in-flight transfer. The dispatcher creates it and
// fills in the signature; the confirmation tracker owns the status from
// then on. The release callback frees the dispatcher's in-flight slot
// and runs exactly once, on the transition to a terminal state.
type Submission struct {
	Instruction trigger.Instruction

	mu          sync.Mutex
	signature   solana.Signature
	submittedAt time.Time
	finishedAt  time.Time
	status      Status
	err         error

	releaseOnce sync.Once
	release     func()
}

func newSubmission(in trigger.Instruction) *Submission {
	return &Submission{
		Instruction: in,
		status:      StatusPending,
	}
}

// armRelease attaches the in-flight slot release once the slot has
// actually been acquired. If the submission went terminal while waiting
// for the slot, the release runs immediately and armRelease reports
// false so the caller skips submission.
func (s *Submission) armRelease(release func()) bool {
	s.mu.Lock()
	s.release = release
	terminal := s.status.Terminal()
	s.mu.Unlock()
	if terminal {
		s.releaseOnce.Do(release)
		return false
	}
	return true
}

// markSubmitted records the signature the network returned.
func (s *Submission) markSubmitted(sig solana.Signature, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.signature = sig
	s.submittedAt = at
}

// Signature returns the transaction signature, zero until submitted.
func (s *Submission) Signature() solana.Signature {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.signature
}

// SubmittedAt returns when the submission was accepted by the network.
func (s *Submission) SubmittedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submittedAt
}

// Status returns the current lifecycle state.
func (s *Submission) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Err returns the failure cause for Failed submissions, nil otherwise.
func (s *Submission) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Latency is the submission-to-terminal duration. For a non-terminal
// submission it is the time in flight so far.
func (s *Submission) Latency() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submittedAt.IsZero() {
		return 0
	}
	if s.status.Terminal() {
		return s.finishedAt.Sub(s.submittedAt)
	}
	return time.Since(s.submittedAt)
}

// Finish moves the submission to a terminal state. The first terminal
// transition wins; later calls are no-ops, so re-reporting an already
// terminal submission is safe. Returns whether this call performed the
// transition.
func (s *Submission) Finish(status Status, err error) bool {
	if !status.Terminal() {
		return false
	}
	s.mu.Lock()
	if s.status.Terminal() {
		s.mu.Unlock()
		return false
	}
	s.status = status
	s.err = err
	s.finishedAt = time.Now()
	release := s.release
	s.mu.Unlock()

	if release != nil {
		s.releaseOnce.Do(release)
	}
	return true
}
