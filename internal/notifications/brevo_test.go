package notifications

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBrevoSendDoesNotBlock tests that Send returns before the gateway has
// answered and that delivery survives the triggering request's cancellation
func TestBrevoSendDoesNotBlock(t *testing.T) {
	gate := make(chan struct{})
	received := make(chan brevoSendRequest, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body brevoSendRequest
		err := json.NewDecoder(r.Body).Decode(&body)
		// hold the request open until the test has observed Send returning
		<-gate
		if err == nil {
			received <- body
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	provider := NewBrevoProvider("test-key", "noreply@rescue.test", "Rescue Network")
	provider.endpoint = srv.URL

	ctx, cancel := context.WithCancel(context.Background())
	err := provider.Send(ctx, "New animals for you", "<p>Hi Jane</p>",
		[]Recipient{{Email: "jane@example.com", Name: "Jane"}})
	require.NoError(t, err)

	// The triggering request is over; delivery keeps going regardless.
	cancel()
	close(gate)

	select {
	case body := <-received:
		assert.Equal(t, "New animals for you", body.Subject)
		assert.Equal(t, "noreply@rescue.test", body.Sender.Email)
		assert.Equal(t, "jane@example.com", body.To[0].Email)
		assert.Equal(t, "Jane", body.To[0].Name)
	case <-time.After(5 * time.Second):
		t.Fatal("delivery never reached the gateway")
	}
}

// TestBrevoSendRetriesFailures tests that a transient gateway error is retried
func TestBrevoSendRetriesFailures(t *testing.T) {
	attempts := make(chan int, 3)
	count := 0

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		count++
		attempts <- count
		if count == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	provider := NewBrevoProvider("test-key", "noreply@rescue.test", "Rescue Network")
	provider.endpoint = srv.URL

	err := provider.Send(context.Background(), "Subject", "<p>Body</p>",
		[]Recipient{{Email: "jane@example.com"}})
	require.NoError(t, err)

	deadline := time.After(10 * time.Second)
	for {
		select {
		case n := <-attempts:
			if n == 2 {
				return // retried and succeeded
			}
		case <-deadline:
			t.Fatal("gateway never saw a retry")
		}
	}
}
