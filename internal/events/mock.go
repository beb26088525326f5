package events

import (
	"context"
	"sync"
)

// MockPublisher records published events for tests.
type MockPublisher struct {
	mu     sync.Mutex
	events []*DonationEvent
	err    error
	closed bool
}

// NewMockPublisher returns a MockPublisher that fails every publish with err (nil for success).
func NewMockPublisher(err error) *MockPublisher {
	return &MockPublisher{err: err}
}

func (m *MockPublisher) PublishDonation(_ context.Context, event *DonationEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.events = append(m.events, event)
	return nil
}

func (m *MockPublisher) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Events returns a copy of the published events.
func (m *MockPublisher) Events() []*DonationEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*DonationEvent, len(m.events))
	copy(out, m.events)
	return out
}

// Closed reports whether Close was called.
func (m *MockPublisher) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}
