package notifications

import (
	"context"
	"sync"
)

// RecordedSend captures one delivery made through a RecorderProvider.
type RecordedSend struct {
	Subject string
	Body    string
	To      []Recipient
}

// RecorderProvider captures sends in memory for tests.
type RecorderProvider struct {
	mu    sync.Mutex
	sends []RecordedSend
	// Err, when set, is returned from every Send.
	Err error
}

// NewRecorderProvider creates a new recording provider
func NewRecorderProvider() *RecorderProvider {
	return &RecorderProvider{}
}

// Send records the message.
func (p *RecorderProvider) Send(_ context.Context, subject, htmlBody string, to []Recipient) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Err != nil {
		return p.Err
	}
	p.sends = append(p.sends, RecordedSend{Subject: subject, Body: htmlBody, To: to})
	return nil
}

// Sends returns a copy of everything recorded so far.
func (p *RecorderProvider) Sends() []RecordedSend {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]RecordedSend, len(p.sends))
	copy(out, p.sends)
	return out
}
