package service

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"menuai/config"
	"menuai/models"
)

// parsePromptTemplate 菜单解析提示词
const parsePromptTemplate = `你是制作菜单和价目表的专家。
用户提供描述其商家服务/商品和价格的原始文本。

你的任务是：
1. 提取所有条目（名称 + 价格）
2. 将条目归入合理的分类
3. 修正名称的标点和格式
4. 在有助于顾客理解时补充简短描述

菜单类型: %s
商家名称: %s

只返回合法 JSON（不要 markdown，不要注释），格式如下：
{
  "business_name": "商家名称",
  "business_type": "类型，如 restaurant/salon/barber",
  "tagline": "一句中文宣传语，不超过 12 个字",
  "categories": [
    {
      "name": "分类名称",
      "items": [
        {"name": "条目名称", "description": "可选描述", "price": "50 元"}
      ]
    }
  ]
}

用户文本:
%s`

// photoPromptText 图片解析时的文本指令
const photoPromptText = "[菜单/价目表照片 — 请提取所有条目和价格]"

// ParseService AI 菜单解析服务（OpenAI 兼容接口）
type ParseService struct {
	cfg     *config.AIConfig
	client  *http.Client
	baseURL string
}

// NewParseService 创建解析服务
func NewParseService(cfg *config.AIConfig) *ParseService {
	return &ParseService{
		cfg:     cfg,
		client:  &http.Client{Timeout: 120 * time.Second},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
	}
}

// IsConfigured 判断 AI 接口是否已配置
func (s *ParseService) IsConfigured() bool {
	return s.cfg.APIKey != "" && !strings.Contains(s.cfg.APIKey, "your-")
}

// chatMessage OpenAI 兼容的消息结构，Content 为字符串或分段数组
type chatMessage struct {
	Role    string      `json:"role"`
	Content interface{} `json:"content"`
}

// ParseText 将原始文本解析为结构化菜单
func (s *ParseService) ParseText(text, businessName, menuType string) (*models.MenuData, error) {
	if businessName == "" {
		businessName = "我的商家"
	}
	if menuType == "" {
		menuType = "price_list"
	}
	prompt := fmt.Sprintf(parsePromptTemplate, menuType, businessName, text)

	return s.callAndParse([]chatMessage{
		{Role: "user", Content: prompt},
	})
}

// ParsePhoto 从照片中提取结构化菜单
func (s *ParseService) ParsePhoto(image []byte, mimeType, businessName, menuType string) (*models.MenuData, error) {
	if businessName == "" {
		businessName = "我的商家"
	}
	if menuType == "" {
		menuType = "price_list"
	}
	prompt := fmt.Sprintf(parsePromptTemplate, menuType, businessName, photoPromptText)

	dataURL := "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(image)
	content := []map[string]interface{}{
		{"type": "image_url", "image_url": map[string]string{"url": dataURL}},
		{"type": "text", "text": prompt},
	}

	return s.callAndParse([]chatMessage{
		{Role: "user", Content: content},
	})
}

// callAndParse 调用 chat/completions 并把返回内容解析为菜单
func (s *ParseService) callAndParse(messages []chatMessage) (*models.MenuData, error) {
	if !s.IsConfigured() {
		return nil, ErrAINotConfigured
	}

	requestBody := map[string]interface{}{
		"model":       s.cfg.Model,
		"messages":    messages,
		"max_tokens":  2000,
		"temperature": 0.2,
	}
	jsonData, err := json.Marshal(requestBody)
	if err != nil {
		return nil, fmt.Errorf("构建请求失败: %w", err)
	}

	req, err := http.NewRequest("POST", s.baseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("创建请求失败: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("请求AI服务失败: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("读取AI服务响应失败: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("AI服务返回错误: %d %s", resp.StatusCode, string(body))
	}

	var completion struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &completion); err != nil {
		return nil, fmt.Errorf("解析AI服务响应失败: %w", err)
	}
	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("%w: 响应中没有内容", ErrInvalidAIOutput)
	}

	raw := stripMarkdownFence(completion.Choices[0].Message.Content)

	var menu models.MenuData
	if err := json.Unmarshal([]byte(raw), &menu); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAIOutput, err)
	}
	if len(menu.Categories) == 0 {
		return nil, fmt.Errorf("%w: 没有解析到任何菜单分类", ErrInvalidAIOutput)
	}
	return &menu, nil
}

// stripMarkdownFence 去掉模型偶尔包裹的 ```json 围栏
func stripMarkdownFence(raw string) string {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "```") {
		return raw
	}
	if idx := strings.Index(raw, "\n"); idx >= 0 {
		raw = raw[idx+1:]
	}
	if idx := strings.LastIndex(raw, "```"); idx >= 0 {
		raw = raw[:idx]
	}
	return strings.TrimSpace(raw)
}
