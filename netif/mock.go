package netif

import (
	"context"
	"sync"
	"time"

	"github.com/hpav/hpav/ethernet"
)

// SendCall records a single Send invocation on a MockSocket.
type SendCall struct {
	Dest    ethernet.Addr
	Payload []byte
}

// reply is a single queued Receive result.
type reply struct {
	src     ethernet.Addr
	payload []byte
}

// MockSocket is a test double implementing Socket: it records every Send
// call and serves Receive calls from a queue the test fills in advance.
// An empty queue makes Receive behave like a real timeout.
type MockSocket struct {
	mu      sync.Mutex
	sends   []SendCall
	replies []reply
	closed  bool
	self    ethernet.Addr
}

// NewMockSocket returns an empty MockSocket with no self address set, so
// Receive does not filter out any queued reply by source.
func NewMockSocket() *MockSocket {
	return &MockSocket{}
}

// SetSelf configures the address Receive treats as "this interface", so
// that queued replies from it are skipped the same way linuxSocket.Receive
// skips frames reflecting its own hardware address.
func (m *MockSocket) SetSelf(addr ethernet.Addr) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.self = addr
}

// QueueReply arranges for the next Receive call to return (src, payload, nil).
func (m *MockSocket) QueueReply(src ethernet.Addr, payload []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.replies = append(m.replies, reply{src: src, payload: append([]byte(nil), payload...)})
}

func (m *MockSocket) Send(_ context.Context, dest ethernet.Addr, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sends = append(m.sends, SendCall{Dest: dest, Payload: append([]byte(nil), payload...)})
	return nil
}

// Receive pops queued replies in order, transparently skipping any whose
// source equals the configured self address (see SetSelf), matching
// linuxSocket.Receive's own-frame filtering. The timeout parameter is
// ignored beyond the empty-queue case — there is nothing to block on in
// a mock — but the skip semantics are exercised the same way.
func (m *MockSocket) Receive(_ context.Context, _ time.Duration) (ethernet.Addr, []byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for len(m.replies) > 0 {
		r := m.replies[0]
		m.replies = m.replies[1:]
		if m.self != (ethernet.Addr{}) && r.src == m.self {
			continue
		}
		return r.src, r.payload, nil
	}
	return ethernet.Addr{}, nil, nil
}

func (m *MockSocket) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// SendCalls returns a copy of every Send call recorded so far.
func (m *MockSocket) SendCalls() []SendCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]SendCall, len(m.sends))
	copy(out, m.sends)
	return out
}

// Closed reports whether Close has been called.
func (m *MockSocket) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}
