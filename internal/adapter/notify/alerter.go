package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// OpsAlerter implements ports.Alerter by POSTing to the operator alert
// channel. Unlike the mailer this is synchronous: the caller decides what a
// failed escalation means.
type OpsAlerter struct {
	url        string
	httpClient HTTPClient
	log        zerolog.Logger
}

// NewOpsAlerter creates a new OpsAlerter. An empty url makes Alert log-only.
func NewOpsAlerter(url string, httpClient HTTPClient, log zerolog.Logger) *OpsAlerter {
	return &OpsAlerter{
		url:        url,
		httpClient: httpClient,
		log:        log,
	}
}

type alertPayload struct {
	Message   string            `json:"message"`
	Severity  string            `json:"severity"`
	Fields    map[string]string `json:"fields,omitempty"`
	Timestamp int64             `json:"timestamp"`
}

// Alert delivers a critical operator alert.
func (a *OpsAlerter) Alert(ctx context.Context, message string, fields map[string]string) error {
	// The alert always lands in the structured log even when the channel is
	// down or unconfigured.
	a.log.Error().
		Str("alert", message).
		Fields(map[string]any{"fields": fields}).
		Msg("operator alert")

	if a.url == "" {
		return nil
	}

	payload, err := json.Marshal(alertPayload{
		Message:   message,
		Severity:  "critical",
		Fields:    fields,
		Timestamp: time.Now().Unix(),
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating alert request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("delivering alert: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("alert channel returned status %d", resp.StatusCode)
	}
	return nil
}
