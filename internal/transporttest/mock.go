// Package transporttest provides a scripted transport.Transport double used
// to verify the TNFS client's framing and retry behavior without a real
// socket or server, per spec.md §8's testable properties.
package transporttest

import (
	"time"

	"github.com/Fbeen/tnfs-client/internal/transport"
)

// Step is one scripted Recv outcome: either Data or Timeout (mutually
// exclusive — Timeout wins if both are set).
type Step struct {
	Data    []byte
	Timeout bool
}

// Mock records every frame the client sent and replays a scripted sequence
// of Recv outcomes, one per call. Once the script is exhausted every further
// Recv reports transport.ErrTimeout, so an empty script drives the client
// into its retry budget.
type Mock struct {
	Sent    [][]byte
	steps   []Step
	next    int
	Timeout time.Duration
	Closed  bool
}

// NewMock builds a Mock that will answer Recv calls with steps, in order.
func NewMock(steps ...Step) *Mock {
	return &Mock{steps: steps}
}

// Queue appends more scripted steps for future Recv calls.
func (m *Mock) Queue(steps ...Step) { m.steps = append(m.steps, steps...) }

func (m *Mock) Send(b []byte) error {
	cp := make([]byte, len(b))
	copy(cp, b)
	m.Sent = append(m.Sent, cp)
	return nil
}

func (m *Mock) Recv(buf []byte) (int, error) {
	if m.next >= len(m.steps) {
		return 0, transport.ErrTimeout
	}
	s := m.steps[m.next]
	m.next++
	if s.Timeout {
		return 0, transport.ErrTimeout
	}
	n := copy(buf, s.Data)
	return n, nil
}

func (m *Mock) SetTimeout(d time.Duration) { m.Timeout = d }

func (m *Mock) Close() error { m.Closed = true; return nil }

var _ transport.Transport = (*Mock)(nil)
