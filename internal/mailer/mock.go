package mailer

import (
	"context"
	"sync"
)

// Mock records sent emails for tests. Set Err to simulate a delivery
// failure; the email is still recorded so tests can assert the attempt.
type Mock struct {
	mu   sync.Mutex
	Sent []Email
	Err  error
}

func (m *Mock) Send(_ context.Context, e Email) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sent = append(m.Sent, e)
	return m.Err
}

// Last returns the most recently sent email, or a zero Email when none.
func (m *Mock) Last() Email {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Sent) == 0 {
		return Email{}
	}
	return m.Sent[len(m.Sent)-1]
}
