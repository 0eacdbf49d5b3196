package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"menuai/config"
	"menuai/models"
	"menuai/service"
	"menuai/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Server.Mode = gin.TestMode
	cfg.Server.BaseURL = "http://localhost:8000"
	cfg.Server.FrontendURL = "http://localhost:5173"
	cfg.Stripe.Currency = "cny"
	cfg.Stripe.Amount = 4900
	return cfg
}

// newMenuRouter 组装带内存存储的菜单路由
func newMenuRouter() (*gin.Engine, store.MenuStore) {
	st := store.NewMemoryStore()
	publish := service.NewPublishService(st, testConfig(), nil)
	h := NewMenuHandler(publish)

	r := gin.New()
	r.POST("/api/preview", h.Preview)
	r.POST("/api/publish", h.Publish)
	r.POST("/api/download-pdf", h.DownloadPDF)
	r.GET("/api/templates", h.Templates)
	r.GET("/api/my-menus", h.MyMenus)
	r.GET("/menu/:slug", h.ViewPublic)
	return r, st
}

const sampleMenuBody = `{
	"menu": {
		"business_name": "霓虹美发沙龙",
		"business_type": "salon",
		"categories": [
			{"name": "剪发", "items": [{"name": "洗剪吹", "price": "88"}]}
		]
	},
	"template": "clean"
}`

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func getPath(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestMenuHandler_PublishAndView(t *testing.T) {
	r, _ := newMenuRouter()

	w := postJSON(r, "/api/publish", sampleMenuBody)
	assert.Equal(t, 200, w.Code)

	var resp struct {
		Message string                `json:"message"`
		Data    service.PublishResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "发布成功", resp.Message)
	assert.NotEmpty(t, resp.Data.Slug)
	assert.Contains(t, resp.Data.URL, "/menu/"+resp.Data.Slug)

	// 发布后可以按 slug 公开访问
	w = getPath(r, "/menu/"+resp.Data.Slug)
	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "霓虹美发沙龙")
	// 未支付的菜单带水印
	assert.Contains(t, w.Body.String(), "MenuAI 免费生成")
}

func TestMenuHandler_Publish_InvalidBody(t *testing.T) {
	r, _ := newMenuRouter()

	w := postJSON(r, "/api/publish", `{"template":"clean"}`)
	assert.Equal(t, 400, w.Code)
}

func TestMenuHandler_ViewPublic_NotFound(t *testing.T) {
	r, _ := newMenuRouter()

	w := getPath(r, "/menu/does-not-exist")
	assert.Equal(t, 404, w.Code)
}

func TestMenuHandler_ViewPublic_PaidHidesWatermark(t *testing.T) {
	r, st := newMenuRouter()

	w := postJSON(r, "/api/publish", sampleMenuBody)
	require.Equal(t, 200, w.Code)
	var resp struct {
		Data service.PublishResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	found, err := st.MarkPaid(resp.Data.Slug)
	require.NoError(t, err)
	require.True(t, found)

	w = getPath(r, "/menu/"+resp.Data.Slug)
	assert.Equal(t, 200, w.Code)
	assert.NotContains(t, w.Body.String(), "MenuAI 免费生成")
}

func TestMenuHandler_Preview(t *testing.T) {
	r, _ := newMenuRouter()

	w := postJSON(r, "/api/preview", sampleMenuBody)
	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "洗剪吹")
}

func TestMenuHandler_Preview_UnknownTemplate(t *testing.T) {
	r, _ := newMenuRouter()

	body := `{"menu":{"business_name":"测试","categories":[{"name":"a","items":[{"name":"b","price":"1"}]}]},"template":"fancy"}`
	w := postJSON(r, "/api/preview", body)
	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "fancy")
}

func TestMenuHandler_DownloadPDF(t *testing.T) {
	r, _ := newMenuRouter()

	w := postJSON(r, "/api/download-pdf", sampleMenuBody)
	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "-menu.html")
}

func TestMenuHandler_MyMenus(t *testing.T) {
	r, _ := newMenuRouter()

	require.Equal(t, 200, postJSON(r, "/api/publish", sampleMenuBody).Code)
	require.Equal(t, 200, postJSON(r, "/api/publish", sampleMenuBody).Code)

	w := getPath(r, "/api/my-menus")
	assert.Equal(t, 200, w.Code)

	var resp struct {
		Data []models.MenuSummary `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 2)
	assert.Equal(t, "霓虹美发沙龙", resp.Data[0].BusinessName)
}

func TestMenuHandler_MyMenus_InvalidLimit(t *testing.T) {
	r, _ := newMenuRouter()

	w := getPath(r, "/api/my-menus?limit=abc")
	assert.Equal(t, 400, w.Code)
}

func TestMenuHandler_Templates(t *testing.T) {
	r, _ := newMenuRouter()

	w := getPath(r, "/api/templates")
	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), models.TemplateClean)
	assert.Contains(t, w.Body.String(), models.TemplateElegant)
	assert.Contains(t, w.Body.String(), models.TemplateModern)
}
