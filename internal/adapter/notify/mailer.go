package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"storefront-events/internal/core/ports"

	"github.com/rs/zerolog"
)

// mailerRetryIntervals spaces out redelivery attempts to the mailer service.
var mailerRetryIntervals = []time.Duration{
	15 * time.Second,
	60 * time.Second,
	5 * time.Minute,
}

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Mailer implements ports.Notifier by POSTing notifications to the mailer
// service. Delivery is asynchronous with bounded retries; a customer email
// must never hold up or fail the webhook acknowledgment.
type Mailer struct {
	url        string
	httpClient HTTPClient
	log        zerolog.Logger
}

// NewMailer creates a new Mailer. An empty url disables delivery.
func NewMailer(url string, httpClient HTTPClient, log zerolog.Logger) *Mailer {
	return &Mailer{
		url:        url,
		httpClient: httpClient,
		log:        log,
	}
}

// Notify enqueues the notification for asynchronous delivery.
func (m *Mailer) Notify(ctx context.Context, n ports.Notification) error {
	if m.url == "" {
		m.log.Debug().
			Str("kind", string(n.Kind)).
			Msg("mailer: no URL configured, skipping")
		return nil
	}

	payload, err := json.Marshal(n)
	if err != nil {
		return err
	}

	go m.deliverWithRetries(payload, string(n.Kind))
	return nil
}

// deliverWithRetries attempts delivery until a 2xx response or exhaustion.
func (m *Mailer) deliverWithRetries(payload []byte, kind string) {
	for attempt := 0; attempt <= len(mailerRetryIntervals); attempt++ {
		if attempt > 0 {
			time.Sleep(mailerRetryIntervals[attempt-1])
		}

		req, err := http.NewRequest(http.MethodPost, m.url, bytes.NewReader(payload))
		if err != nil {
			m.log.Error().Err(err).Str("kind", kind).Int("attempt", attempt+1).Msg("mailer: failed to create request")
			continue
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := m.httpClient.Do(req)
		if err != nil {
			m.log.Warn().Err(err).Str("kind", kind).Int("attempt", attempt+1).Msg("mailer: delivery failed")
			continue
		}
		resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			m.log.Info().Str("kind", kind).Int("attempt", attempt+1).Int("status", resp.StatusCode).Msg("mailer: delivered")
			return
		}

		m.log.Warn().Str("kind", kind).Int("attempt", attempt+1).Int("status", resp.StatusCode).Msg("mailer: non-2xx response, retrying")
	}

	m.log.Error().Str("kind", kind).Msg("mailer: all retry attempts exhausted")
}
