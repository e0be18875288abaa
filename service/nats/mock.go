package nats

import (
	"context"
	"sync"
)

// MockPublisher is a mock implementation of Publisher for testing.
type MockPublisher struct {
	mu           sync.RWMutex
	streamEvents []*StreamEvent
	outcomes     []*OutcomeEvent
	publishError error
	closed       bool
}

// NewMockPublisher creates a new mock publisher for testing.
func NewMockPublisher() *MockPublisher {
	return &MockPublisher{}
}

// PublishStreamEvent records the event and returns any configured error.
func (m *MockPublisher) PublishStreamEvent(ctx context.Context, event *StreamEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.publishError != nil {
		return m.publishError
	}
	m.streamEvents = append(m.streamEvents, event)
	return nil
}

// PublishOutcome records the event and returns any configured error.
func (m *MockPublisher) PublishOutcome(ctx context.Context, event *OutcomeEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.publishError != nil {
		return m.publishError
	}
	m.outcomes = append(m.outcomes, event)
	return nil
}

// Close marks the publisher as closed.
func (m *MockPublisher) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// StreamEvents returns all recorded stream events.
func (m *MockPublisher) StreamEvents() []*StreamEvent {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*StreamEvent, len(m.streamEvents))
	copy(out, m.streamEvents)
	return out
}

// Outcomes returns all recorded outcome events.
func (m *MockPublisher) Outcomes() []*OutcomeEvent {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*OutcomeEvent, len(m.outcomes))
	copy(out, m.outcomes)
	return out
}

// SetPublishError configures the error returned by publish calls.
func (m *MockPublisher) SetPublishError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.publishError = err
}

// Closed reports whether Close was called.
func (m *MockPublisher) Closed() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.closed
}
