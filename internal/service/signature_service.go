package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"storefront-events/pkg/apperror"
)

// WebhookSignatureService verifies provider notification signatures.
//
// The header format is: t=<unix>,v1=<hex>[,v1=<hex>...]
// where each signature is HMAC-SHA256(secret, "<timestamp>.<payload>").
// Multiple v1 candidates appear during secret rotation; any match passes.
type WebhookSignatureService struct {
	secret    []byte
	tolerance time.Duration
	now       func() time.Time
}

// NewWebhookSignatureService creates a verifier for the shared secret.
// tolerance bounds |now - signature timestamp|; stale payloads are rejected.
func NewWebhookSignatureService(secret string, tolerance time.Duration) *WebhookSignatureService {
	return &WebhookSignatureService{
		secret:    []byte(secret),
		tolerance: tolerance,
		now:       time.Now,
	}
}

// SecretConfigured reports whether a signing secret is present.
func (s *WebhookSignatureService) SecretConfigured() bool {
	return len(s.secret) > 0
}

// Verify checks the signature header against the raw body.
// Failure here is fatal for the request: a forged or replayed-too-late
// payload is never valid, so the caller must reject without decoding.
func (s *WebhookSignatureService) Verify(payload []byte, sigHeader string) error {
	if sigHeader == "" {
		return apperror.ErrMissingSignature()
	}

	timestamp, candidates, err := parseSignatureHeader(sigHeader)
	if err != nil {
		return apperror.ErrInvalidSignature()
	}

	drift := s.now().Unix() - timestamp
	if drift < 0 {
		drift = -drift
	}
	if time.Duration(drift)*time.Second > s.tolerance {
		return apperror.ErrStaleTimestamp()
	}

	expected := s.compute(timestamp, payload)
	for _, candidate := range candidates {
		if hmac.Equal([]byte(expected), []byte(candidate)) {
			return nil
		}
	}
	return apperror.ErrInvalidSignature()
}

// Sign produces a header value for the payload at the given timestamp.
func (s *WebhookSignatureService) Sign(payload []byte, timestamp int64) string {
	return fmt.Sprintf("t=%d,v1=%s", timestamp, s.compute(timestamp, payload))
}

// compute returns hex(HMAC-SHA256(secret, "<timestamp>.<payload>")).
func (s *WebhookSignatureService) compute(timestamp int64, payload []byte) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(strconv.FormatInt(timestamp, 10)))
	mac.Write([]byte("."))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// parseSignatureHeader splits "t=...,v1=...,v1=..." into its parts.
func parseSignatureHeader(header string) (timestamp int64, candidates []string, err error) {
	timestamp = -1
	for _, part := range strings.Split(header, ",") {
		kv := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if len(kv) != 2 {
			return 0, nil, fmt.Errorf("malformed signature element %q", part)
		}
		switch kv[0] {
		case "t":
			timestamp, err = strconv.ParseInt(kv[1], 10, 64)
			if err != nil {
				return 0, nil, fmt.Errorf("parsing timestamp: %w", err)
			}
		case "v1":
			candidates = append(candidates, kv[1])
		}
	}
	if timestamp < 0 {
		return 0, nil, fmt.Errorf("missing timestamp element")
	}
	if len(candidates) == 0 {
		return 0, nil, fmt.Errorf("missing v1 signature element")
	}
	return timestamp, candidates, nil
}
