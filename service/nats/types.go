package nats

import (
	"time"
)

// StreamEvent is a non-qualifying subscription update routed to the
// observability sink. Published to "updates.{kind}".
type StreamEvent struct {
	Kind        string    `json:"kind"`
	Slot        uint64    `json:"slot,omitempty"`
	Signature   string    `json:"signature,omitempty"`
	PingSeq     uint64    `json:"ping_seq,omitempty"`
	ReceivedAt  time.Time `json:"received_at"`
	PublishedAt time.Time `json:"published_at"`
}

// OutcomeEvent is a transfer submission reaching a terminal status.
// Published to "transfers.terminal".
type OutcomeEvent struct {
	Source      string    `json:"source"`
	Destination string    `json:"destination"`
	Lamports    uint64    `json:"lamports"`
	Signature   string    `json:"signature,omitempty"`
	Status      string    `json:"status"`
	LatencyMs   float64   `json:"latency_ms"`
	Error       string    `json:"error,omitempty"`
	PublishedAt time.Time `json:"published_at"`
}
