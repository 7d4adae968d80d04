package notify

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"storefront-events/internal/core/ports"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubHTTPClient records request bodies and replies with a fixed status.
type stubHTTPClient struct {
	status int
	err    error
	bodies chan []byte
}

func newStubHTTPClient(status int) *stubHTTPClient {
	return &stubHTTPClient{status: status, bodies: make(chan []byte, 8)}
}

func (s *stubHTTPClient) Do(req *http.Request) (*http.Response, error) {
	if s.err != nil {
		return nil, s.err
	}
	body, _ := io.ReadAll(req.Body)
	s.bodies <- body
	return &http.Response{
		StatusCode: s.status,
		Body:       io.NopCloser(strings.NewReader("")),
	}, nil
}

func TestMailer_DeliversNotification(t *testing.T) {
	client := newStubHTTPClient(http.StatusOK)
	m := NewMailer("http://mailer.internal/send", client, zerolog.Nop())

	err := m.Notify(context.Background(), ports.Notification{
		Kind:      ports.NotifySubscriptionWelcome,
		Recipient: "buyer@example.com",
		Data:      map[string]string{"license_key": "LIC-KEY"},
	})
	require.NoError(t, err)

	select {
	case body := <-client.bodies:
		var n ports.Notification
		require.NoError(t, json.Unmarshal(body, &n))
		assert.Equal(t, ports.NotifySubscriptionWelcome, n.Kind)
		assert.Equal(t, "buyer@example.com", n.Recipient)
		assert.Equal(t, "LIC-KEY", n.Data["license_key"])
	case <-time.After(2 * time.Second):
		t.Fatal("notification was never delivered")
	}
}

func TestMailer_NoURLSkipsDelivery(t *testing.T) {
	client := newStubHTTPClient(http.StatusOK)
	m := NewMailer("", client, zerolog.Nop())

	err := m.Notify(context.Background(), ports.Notification{
		Kind:      ports.NotifyPurchaseConfirmed,
		Recipient: "buyer@example.com",
	})
	require.NoError(t, err)

	select {
	case <-client.bodies:
		t.Fatal("no delivery expected without a URL")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestOpsAlerter_PostsPayload(t *testing.T) {
	client := newStubHTTPClient(http.StatusOK)
	a := NewOpsAlerter("http://ops.internal/alert", client, zerolog.Nop())

	err := a.Alert(context.Background(), "fraud event processing failed", map[string]string{
		"event_id": "evt_123",
	})
	require.NoError(t, err)

	body := <-client.bodies
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.Equal(t, "fraud event processing failed", payload["message"])
	assert.Equal(t, "critical", payload["severity"])
	fields := payload["fields"].(map[string]interface{})
	assert.Equal(t, "evt_123", fields["event_id"])
}

func TestOpsAlerter_EmptyURLIsLogOnly(t *testing.T) {
	client := newStubHTTPClient(http.StatusOK)
	a := NewOpsAlerter("", client, zerolog.Nop())

	err := a.Alert(context.Background(), "something", nil)
	require.NoError(t, err)
	assert.Empty(t, client.bodies)
}

func TestOpsAlerter_Non2xxIsError(t *testing.T) {
	client := newStubHTTPClient(http.StatusBadGateway)
	a := NewOpsAlerter("http://ops.internal/alert", client, zerolog.Nop())

	err := a.Alert(context.Background(), "something", nil)
	assert.ErrorContains(t, err, "status 502")
}

func TestOpsAlerter_TransportError(t *testing.T) {
	client := newStubHTTPClient(http.StatusOK)
	client.err = errors.New("connection refused")
	a := NewOpsAlerter("http://ops.internal/alert", client, zerolog.Nop())

	err := a.Alert(context.Background(), "something", nil)
	assert.ErrorContains(t, err, "delivering alert")
}
