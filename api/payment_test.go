package api

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"menuai/config"
	"menuai/models"
	"menuai/service"
	"menuai/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newPaymentRouter 组装带内存存储的支付路由
func newPaymentRouter(cfg *config.Config) (*gin.Engine, store.MenuStore) {
	st := store.NewMemoryStore()
	h := NewPaymentHandler(service.NewPaymentService(st, cfg))

	r := gin.New()
	r.POST("/api/create-checkout", h.CreateCheckout)
	r.POST("/api/webhook/stripe", h.Webhook)
	r.GET("/api/menu-status/:slug", h.Status)
	return r, st
}

func savePublishedMenu(t *testing.T, st store.MenuStore, slug string) {
	t.Helper()
	_, err := st.Save(&models.Menu{
		Slug:         slug,
		BusinessName: "霓虹美发沙龙",
		BusinessType: "salon",
		Template:     models.TemplateClean,
		MenuData: models.MenuData{
			BusinessName: "霓虹美发沙龙",
			Categories: []models.MenuCategory{
				{Name: "剪发", Items: []models.MenuItem{{Name: "洗剪吹", Price: "88"}}},
			},
		},
	})
	require.NoError(t, err)
}

// stripeSignature 按 Stripe 规则生成 t=...,v1=... 签名头
func stripeSignature(payload []byte, secret string, ts time.Time) string {
	timestamp := fmt.Sprintf("%d", ts.Unix())
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(timestamp + "."))
	mac.Write(payload)
	return fmt.Sprintf("t=%s,v1=%s", timestamp, hex.EncodeToString(mac.Sum(nil)))
}

func checkoutCompletedPayload(slug string) []byte {
	return []byte(fmt.Sprintf(
		`{"type":"checkout.session.completed","data":{"object":{"metadata":{"menu_slug":"%s"}}}}`, slug))
}

func TestPaymentHandler_CreateCheckout_NotFound(t *testing.T) {
	r, _ := newPaymentRouter(testConfig())

	w := postJSON(r, "/api/create-checkout", `{"slug":"does-not-exist"}`)
	assert.Equal(t, 404, w.Code)
}

func TestPaymentHandler_CreateCheckout_NotConfigured(t *testing.T) {
	r, st := newPaymentRouter(testConfig())
	savePublishedMenu(t, st, "salon-test-ab12")

	w := postJSON(r, "/api/create-checkout", `{"slug":"salon-test-ab12"}`)
	assert.Equal(t, 503, w.Code)
}

func TestPaymentHandler_CreateCheckout_AlreadyPaid(t *testing.T) {
	// 已支付的菜单不需要 Stripe 配置，直接返回 already_paid
	r, st := newPaymentRouter(testConfig())
	savePublishedMenu(t, st, "salon-test-ab12")
	found, err := st.MarkPaid("salon-test-ab12")
	require.NoError(t, err)
	require.True(t, found)

	w := postJSON(r, "/api/create-checkout", `{"slug":"salon-test-ab12"}`)
	assert.Equal(t, 200, w.Code)

	var resp struct {
		Data service.CheckoutResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Data.AlreadyPaid)
	assert.Empty(t, resp.Data.URL)
}

func TestPaymentHandler_Webhook_ValidSignature(t *testing.T) {
	cfg := testConfig()
	cfg.Stripe.WebhookSecret = "whsec_test_secret"
	r, st := newPaymentRouter(cfg)
	savePublishedMenu(t, st, "salon-test-ab12")

	payload := checkoutCompletedPayload("salon-test-ab12")
	req := httptest.NewRequest("POST", "/api/webhook/stripe", bytes.NewReader(payload))
	req.Header.Set("Stripe-Signature", stripeSignature(payload, cfg.Stripe.WebhookSecret, time.Now()))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), `"received":true`)

	menu, err := st.GetBySlug("salon-test-ab12")
	require.NoError(t, err)
	require.NotNil(t, menu)
	assert.True(t, menu.IsPaid)
}

func TestPaymentHandler_Webhook_InvalidSignature(t *testing.T) {
	cfg := testConfig()
	cfg.Stripe.WebhookSecret = "whsec_test_secret"
	r, st := newPaymentRouter(cfg)
	savePublishedMenu(t, st, "salon-test-ab12")

	payload := checkoutCompletedPayload("salon-test-ab12")
	req := httptest.NewRequest("POST", "/api/webhook/stripe", bytes.NewReader(payload))
	req.Header.Set("Stripe-Signature", stripeSignature(payload, "wrong-secret", time.Now()))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)

	// 签名失败时状态不变
	menu, err := st.GetBySlug("salon-test-ab12")
	require.NoError(t, err)
	require.NotNil(t, menu)
	assert.False(t, menu.IsPaid)
}

func TestPaymentHandler_Webhook_NoSecretNoFlag(t *testing.T) {
	r, st := newPaymentRouter(testConfig())
	savePublishedMenu(t, st, "salon-test-ab12")

	payload := checkoutCompletedPayload("salon-test-ab12")
	w := postJSON(r, "/api/webhook/stripe", string(payload))
	assert.Equal(t, 503, w.Code)
}

func TestPaymentHandler_Webhook_InsecureModeEnabled(t *testing.T) {
	cfg := testConfig()
	cfg.Stripe.AllowInsecureWebhook = true
	r, st := newPaymentRouter(cfg)
	savePublishedMenu(t, st, "salon-test-ab12")

	payload := checkoutCompletedPayload("salon-test-ab12")
	w := postJSON(r, "/api/webhook/stripe", string(payload))
	assert.Equal(t, 200, w.Code)

	menu, err := st.GetBySlug("salon-test-ab12")
	require.NoError(t, err)
	require.NotNil(t, menu)
	assert.True(t, menu.IsPaid)
}

func TestPaymentHandler_Status(t *testing.T) {
	r, st := newPaymentRouter(testConfig())
	savePublishedMenu(t, st, "salon-test-ab12")

	w := getPath(r, "/api/menu-status/salon-test-ab12")
	assert.Equal(t, 200, w.Code)

	var resp struct {
		Data service.StatusResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "salon-test-ab12", resp.Data.Slug)
	assert.False(t, resp.Data.IsPaid)
	assert.Equal(t, "霓虹美发沙龙", resp.Data.BusinessName)
}

func TestPaymentHandler_Status_NotFound(t *testing.T) {
	r, _ := newPaymentRouter(testConfig())

	w := getPath(r, "/api/menu-status/missing")
	assert.Equal(t, 404, w.Code)
}
