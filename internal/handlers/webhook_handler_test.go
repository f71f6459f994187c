package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"neuraflow/internal/config"
	"neuraflow/internal/utils"
	"neuraflow/pkg/logger"
	"neuraflow/pkg/relay"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.NewLogger(&logger.Config{Level: logger.ErrorLevel, Format: "text"})
	require.NoError(t, err)
	return log
}

func webhookRouter(t *testing.T, cfg *config.WebhookConfig, client *relay.Client) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	handler := NewWebhookHandler(cfg, client, newTestLogger(t))
	router := gin.New()
	router.POST("/api/v1/webhooks/review", handler.ReviewWebhook)
	return router
}

func validWebhookBody() string {
	return `{
		"name": "Priya Sharma",
		"email": "priya@example.com",
		"rating": 5,
		"comment": "Fantastic automation work.",
		"product": "CRM Solutions",
		"date": "2025-01-15T10:30:00Z"
	}`
}

func postWebhook(router *gin.Engine, body string, headers map[string]string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/webhooks/review", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestReviewWebhook_NoEndpointConfigured(t *testing.T) {
	cfg := &config.WebhookConfig{Timeout: time.Second}
	client := relay.NewClient(&relay.Config{}, newTestLogger(t))
	router := webhookRouter(t, cfg, client)

	w := postWebhook(router, validWebhookBody(), nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReviewWebhook_SecretMismatch(t *testing.T) {
	cfg := &config.WebhookConfig{InboundSecret: "s3cret", Timeout: time.Second}
	client := relay.NewClient(&relay.Config{}, newTestLogger(t))
	router := webhookRouter(t, cfg, client)

	w := postWebhook(router, validWebhookBody(), nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = postWebhook(router, validWebhookBody(), map[string]string{utils.HeaderWebhookSecret: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestReviewWebhook_SecretMatch(t *testing.T) {
	cfg := &config.WebhookConfig{InboundSecret: "s3cret", Timeout: time.Second}
	client := relay.NewClient(&relay.Config{}, newTestLogger(t))
	router := webhookRouter(t, cfg, client)

	w := postWebhook(router, validWebhookBody(), map[string]string{utils.HeaderWebhookSecret: "s3cret"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReviewWebhook_MalformedJSON(t *testing.T) {
	cfg := &config.WebhookConfig{Timeout: time.Second}
	client := relay.NewClient(&relay.Config{}, newTestLogger(t))
	router := webhookRouter(t, cfg, client)

	w := postWebhook(router, `{"name": `, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReviewWebhook_InvalidPayload(t *testing.T) {
	cfg := &config.WebhookConfig{Timeout: time.Second}
	client := relay.NewClient(&relay.Config{}, newTestLogger(t))
	router := webhookRouter(t, cfg, client)

	w := postWebhook(router, `{"name": "", "rating": 9, "comment": "", "product": ""}`, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Error body stays generic: no field detail leaks to the caller.
	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, utils.ErrInvalidInput, resp.Error.Message)
	assert.Empty(t, resp.Error.Details)
}

func TestReviewWebhook_InsecureForwardTarget(t *testing.T) {
	cfg := &config.WebhookConfig{Timeout: time.Second}
	client := relay.NewClient(&relay.Config{Endpoint: "http://n8n.internal/webhook"}, newTestLogger(t))
	router := webhookRouter(t, cfg, client)

	w := postWebhook(router, validWebhookBody(), nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "CONFIGURATION_ERROR", resp.Error.Code)
	// The forward target must never appear in the response.
	assert.NotContains(t, w.Body.String(), "n8n.internal")
}

func TestReviewWebhook_ForwardsToEndpoint(t *testing.T) {
	received := make(chan relay.Payload, 1)
	upstream := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var p relay.Payload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		assert.Equal(t, "fwd-secret", r.Header.Get("x-webhook-secret"))
		received <- p
		w.WriteHeader(http.StatusOK)
	}))
	defer upstream.Close()

	cfg := &config.WebhookConfig{Timeout: time.Second}
	client := relay.NewClient(&relay.Config{
		Endpoint: upstream.URL,
		Secret:   "fwd-secret",
	}, newTestLogger(t))
	client.SetHTTPClient(upstream.Client())
	router := webhookRouter(t, cfg, client)

	w := postWebhook(router, validWebhookBody(), nil)

	assert.Equal(t, http.StatusOK, w.Code)

	select {
	case p := <-received:
		assert.Equal(t, "Priya Sharma", p.Name)
		assert.Equal(t, 5, p.Rating)
	case <-time.After(2 * time.Second):
		t.Fatal("upstream never received the payload")
	}
}

func TestReviewWebhook_UpstreamFailure(t *testing.T) {
	upstream := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer upstream.Close()

	cfg := &config.WebhookConfig{Timeout: time.Second}
	client := relay.NewClient(&relay.Config{Endpoint: upstream.URL}, newTestLogger(t))
	client.SetHTTPClient(upstream.Client())
	router := webhookRouter(t, cfg, client)

	w := postWebhook(router, validWebhookBody(), nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "WEBHOOK_FAILED", resp.Error.Code)
}
