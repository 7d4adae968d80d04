package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront-events/internal/core/domain"
	"storefront-events/internal/core/ports"
	"storefront-events/internal/core/ports/mocks"
	"storefront-events/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const testTimeout = 15 * time.Second

func newWebhookHandler(t *testing.T) (*WebhookHandler, *mocks.MockDispatcher, *mocks.MockSignatureVerifier) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	dispatcher := mocks.NewMockDispatcher(ctrl)
	verifier := mocks.NewMockSignatureVerifier(ctrl)
	h := NewWebhookHandler(dispatcher, verifier, testTimeout, zerolog.Nop())
	return h, dispatcher, verifier
}

func postWebhook(body []byte, signature string) (*httptest.ResponseRecorder, *gin.Context) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	if signature != "" {
		c.Request.Header.Set(HeaderSignature, signature)
	}
	return w, c
}

// --- Webhook Handler Tests ---

func TestReceive_ProcessedAcknowledges(t *testing.T) {
	h, dispatcher, _ := newWebhookHandler(t)

	body := []byte(`{"id":"evt_1","type":"payment_intent.succeeded"}`)
	dispatcher.EXPECT().
		Dispatch(gomock.Any(), body, "t=1,v1=abc").
		Return(ports.Processed())

	w, c := postWebhook(body, "t=1,v1=abc")
	h.Receive(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["received"])
}

func TestReceive_IgnoredAcknowledges(t *testing.T) {
	h, dispatcher, _ := newWebhookHandler(t)

	dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any(), gomock.Any()).Return(ports.Ignored())

	w, c := postWebhook([]byte(`{}`), "t=1,v1=abc")
	h.Receive(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"received":true}`, w.Body.String())
}

func TestReceive_DuplicateAcknowledges(t *testing.T) {
	h, dispatcher, _ := newWebhookHandler(t)

	dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any(), gomock.Any()).Return(ports.Duplicate())

	w, c := postWebhook([]byte(`{}`), "t=1,v1=abc")
	h.Receive(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"received":true}`, w.Body.String())
}

func TestReceive_FatalRejectsWithErrorStatus(t *testing.T) {
	h, dispatcher, _ := newWebhookHandler(t)

	dispatcher.EXPECT().
		Dispatch(gomock.Any(), gomock.Any(), "").
		Return(ports.Fatal(apperror.ErrMissingSignature()))

	w, c := postWebhook([]byte(`{}`), "")
	h.Receive(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Missing signature header", resp["error"])
}

func TestReceive_RecoverableStillAcknowledges(t *testing.T) {
	h, dispatcher, _ := newWebhookHandler(t)

	dispatcher.EXPECT().
		Dispatch(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(ports.Recoverable(errors.New("db down")))

	w, c := postWebhook([]byte(`{}`), "t=1,v1=abc")
	h.Receive(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"received":true}`, w.Body.String())
}

func TestReceive_CriticalStillAcknowledges(t *testing.T) {
	h, dispatcher, _ := newWebhookHandler(t)

	dispatcher.EXPECT().
		Dispatch(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(ports.Critical(errors.New("revoke failed")))

	w, c := postWebhook([]byte(`{}`), "t=1,v1=abc")
	h.Receive(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"received":true}`, w.Body.String())
}

func TestReceive_InternalFailureRejects(t *testing.T) {
	h, dispatcher, _ := newWebhookHandler(t)

	dispatcher.EXPECT().
		Dispatch(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(ports.Internal(apperror.InternalError(errors.New("panic recovered"))))

	w, c := postWebhook([]byte(`{}`), "t=1,v1=abc")
	h.Receive(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestReceive_PassesRawBodyAndHeader(t *testing.T) {
	h, dispatcher, _ := newWebhookHandler(t)

	// Whitespace and key order must survive untouched or the HMAC breaks.
	body := []byte("{\n  \"id\": \"evt_raw\",\n  \"type\": \"charge.refunded\"\n}")
	sig := "t=1756700000,v1=deadbeef"

	dispatcher.EXPECT().
		Dispatch(gomock.Any(), body, sig).
		Return(ports.Processed())

	w, c := postWebhook(body, sig)
	h.Receive(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestIntrospect_ReportsConfiguration(t *testing.T) {
	h, _, verifier := newWebhookHandler(t)

	verifier.EXPECT().SecretConfigured().Return(true)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/webhook", nil)

	h.Introspect(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["signing_secret_configured"])

	types := resp["handled_event_types"].([]interface{})
	assert.Contains(t, types, "payment_intent.succeeded")
	assert.Contains(t, types, "checkout.session.completed")
	assert.Contains(t, types, "radar.early_fraud_warning.created")
}

// --- Stats Handler Tests ---

func TestGetStats_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStats := mocks.NewMockStatsService(ctrl)
	h := NewStatsHandler(mockStats)

	mockStats.EXPECT().GetPipelineStats(gomock.Any()).Return(&ports.PipelineStats{
		EventsSeen: 128,
		TransactionsByStatus: map[domain.TransactionStatus]int64{
			domain.TransactionStatusSucceeded:  90,
			domain.TransactionStatusProcessing: 3,
		},
		SubscriptionsByStatus: map[domain.SubscriptionStatus]int64{
			domain.SubscriptionStatusActive: 40,
		},
		ActiveGrants: 110,
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/stats", nil)

	h.GetStats(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(128), resp["events_seen"])
	assert.Equal(t, float64(110), resp["active_grants"])
	byStatus := resp["transactions_by_status"].(map[string]interface{})
	assert.Equal(t, float64(90), byStatus["SUCCEEDED"])
}

func TestGetStats_ServiceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStats := mocks.NewMockStatsService(ctrl)
	h := NewStatsHandler(mockStats)

	mockStats.EXPECT().GetPipelineStats(gomock.Any()).Return(nil, errors.New("db down"))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/stats", nil)

	h.GetStats(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

// --- Health Check Tests ---

type stubChecker struct {
	name string
	err  error
}

func (s stubChecker) Ping(context.Context) error { return s.err }
func (s stubChecker) Name() string               { return s.name }

func TestHealthCheck_AllHealthy(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	HealthCheck(stubChecker{name: "postgresql"}, stubChecker{name: "redis"})(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])
	deps := resp["dependencies"].(map[string]interface{})
	assert.Len(t, deps, 2)
}

func TestHealthCheck_DependencyDown(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	HealthCheck(
		stubChecker{name: "postgresql"},
		stubChecker{name: "redis", err: errors.New("connection refused")},
	)(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "degraded", resp["status"])
	deps := resp["dependencies"].(map[string]interface{})
	redis := deps["redis"].(map[string]interface{})
	assert.Equal(t, "unhealthy", redis["status"])
	assert.Equal(t, "connection refused", redis["error"])
}
