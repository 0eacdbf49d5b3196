package service

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"menuai/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseServiceWithServer(t *testing.T, handler http.HandlerFunc) (*ParseService, func()) {
	t.Helper()
	server := httptest.NewServer(handler)
	svc := NewParseService(&config.AIConfig{
		BaseURL: server.URL,
		APIKey:  "sk-test",
		Model:   "gpt-4o-mini",
	})
	return svc, server.Close
}

func completionResponse(content string) string {
	return fmt.Sprintf(`{"choices":[{"message":{"content":%q}}]}`, content)
}

func TestParseText(t *testing.T) {
	menuJSON := `{"business_name":"Salon Ewa","business_type":"salon","tagline":"美丽从头开始","categories":[{"name":"剪发","items":[{"name":"女士剪发","price":"88 元"}]}]}`

	svc, cleanup := parseServiceWithServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		fmt.Fprint(w, completionResponse(menuJSON))
	})
	defer cleanup()

	menu, err := svc.ParseText("女士剪发 88", "Salon Ewa", "price_list")
	require.NoError(t, err)
	assert.Equal(t, "Salon Ewa", menu.BusinessName)
	require.Len(t, menu.Categories, 1)
	assert.Equal(t, "女士剪发", menu.Categories[0].Items[0].Name)
}

func TestParseText_StripsMarkdownFence(t *testing.T) {
	fenced := "```json\n{\"business_name\":\"Bar u Tomka\",\"business_type\":\"restaurant\",\"categories\":[{\"name\":\"主食\",\"items\":[{\"name\":\"披萨\",\"price\":\"30 元\"}]}]}\n```"

	svc, cleanup := parseServiceWithServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, completionResponse(fenced))
	})
	defer cleanup()

	menu, err := svc.ParseText("披萨 30", "", "")
	require.NoError(t, err)
	assert.Equal(t, "Bar u Tomka", menu.BusinessName)
}

func TestParseText_InvalidJSON(t *testing.T) {
	svc, cleanup := parseServiceWithServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, completionResponse("抱歉，我无法解析这个菜单"))
	})
	defer cleanup()

	_, err := svc.ParseText("乱七八糟的输入", "", "")
	assert.ErrorIs(t, err, ErrInvalidAIOutput)
}

func TestParseText_EmptyCategories(t *testing.T) {
	svc, cleanup := parseServiceWithServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, completionResponse(`{"business_name":"X","business_type":"other","categories":[]}`))
	})
	defer cleanup()

	_, err := svc.ParseText("没有条目", "", "")
	assert.ErrorIs(t, err, ErrInvalidAIOutput)
}

func TestParseText_NotConfigured(t *testing.T) {
	svc := NewParseService(&config.AIConfig{BaseURL: "https://api.openai.com/v1"})

	_, err := svc.ParseText("test", "", "")
	assert.ErrorIs(t, err, ErrAINotConfigured)
}

func TestStripMarkdownFence(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripMarkdownFence("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripMarkdownFence("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripMarkdownFence(`{"a":1}`))
}
