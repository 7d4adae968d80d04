package integration

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"storefront-events/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrentDuplicateDelivery fires the same signed delivery from many
// goroutines at once. Concurrent deliveries can all miss the dedupe cache, so
// the ledger's insert-if-absent must let exactly one through to the handlers:
// one ledger row, one grant, one confirmation email.
func TestConcurrentDuplicateDelivery(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	body := paymentBody("evt_race", "payment_intent.succeeded", "pi_race")
	sig := app.verifier.Sign([]byte(body), time.Now().Unix())

	concurrency := 20
	var wg sync.WaitGroup
	var acked atomic.Int64

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			req, err := http.NewRequest(http.MethodPost, app.server.URL+"/webhook", bytes.NewReader([]byte(body)))
			if err != nil {
				return
			}
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Webhook-Signature", sig)

			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				return
			}
			resp.Body.Close()

			if resp.StatusCode == http.StatusOK {
				acked.Add(1)
			}
		}()
	}

	wg.Wait()

	// Every delivery is acknowledged; only one is processed.
	assert.Equal(t, int64(concurrency), acked.Load())

	count, err := app.ledger.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	active, err := app.grantRepo.CountActive(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), active)

	confirmations := app.notifier.byKind(ports.NotifyPurchaseConfirmed)
	assert.Len(t, confirmations, 1)

	t.Logf("concurrent duplicates: %d acknowledged, ledger rows: %d", acked.Load(), count)
}

// TestConcurrentDistinctDeliveries fires many distinct events at once and
// expects every one to process independently.
func TestConcurrentDistinctDeliveries(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	concurrency := 20
	var wg sync.WaitGroup
	var acked atomic.Int64

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			body := fmt.Sprintf(`{
				"id": "evt_%d",
				"type": "payment_intent.succeeded",
				"created": %d,
				"data": {"object": {
					"id": "pi_%d",
					"customer_email": "buyer@example.com",
					"amount": 4900,
					"currency": "usd",
					"product_id": "prod_%d"
				}}
			}`, idx, time.Now().Unix(), idx, idx)
			sig := app.verifier.Sign([]byte(body), time.Now().Unix())

			req, err := http.NewRequest(http.MethodPost, app.server.URL+"/webhook", bytes.NewReader([]byte(body)))
			if err != nil {
				return
			}
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Webhook-Signature", sig)

			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				return
			}
			resp.Body.Close()

			if resp.StatusCode == http.StatusOK {
				acked.Add(1)
			}
		}(i)
	}

	wg.Wait()

	assert.Equal(t, int64(concurrency), acked.Load())

	count, err := app.ledger.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(concurrency), count)

	active, err := app.grantRepo.CountActive(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(concurrency), active)
}

// TestConcurrentCheckoutDuplicates delivers the same checkout session under
// distinct event ids concurrently. The credential insert race must resolve to
// a single stored credential and a single welcome email carrying a key.
func TestConcurrentCheckoutDuplicates(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	concurrency := 10
	var wg sync.WaitGroup

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			body := checkoutBody(fmt.Sprintf("evt_co_%d", idx), "cs_1", "sub_race")
			sig := app.verifier.Sign([]byte(body), time.Now().Unix())

			req, err := http.NewRequest(http.MethodPost, app.server.URL+"/webhook", bytes.NewReader([]byte(body)))
			if err != nil {
				return
			}
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Webhook-Signature", sig)

			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				return
			}
			resp.Body.Close()
		}(i)
	}

	wg.Wait()

	cred, err := app.credRepo.GetBySubscriptionID(context.Background(), "sub_race")
	require.NoError(t, err)
	require.NotNil(t, cred)

	// Welcome emails go out only for deliveries that won the issuance race.
	welcomes := app.notifier.byKind(ports.NotifySubscriptionWelcome)
	require.Len(t, welcomes, 1)
	assert.NotEmpty(t, welcomes[0].Data["license_key"])
	assert.Equal(t, cred.KeyFingerprint, welcomes[0].Data["fingerprint"])
}
