package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"menuai/config"
	"menuai/store"
)

// webhookTolerance 签名时间戳允许的最大偏差，防止重放
const webhookTolerance = 5 * time.Minute

// PaymentService Stripe 支付服务
// 负责创建 Checkout 会话和处理支付完成回调
type PaymentService struct {
	store   store.MenuStore
	cfg     *config.Config
	client  *http.Client
	apiBase string
	// now 可替换的时钟，供签名时间戳测试使用
	now func() time.Time
}

// NewPaymentService 创建支付服务
func NewPaymentService(st store.MenuStore, cfg *config.Config) *PaymentService {
	return &PaymentService{
		store:   st,
		cfg:     cfg,
		client:  &http.Client{Timeout: 30 * time.Second},
		apiBase: "https://api.stripe.com",
		now:     time.Now,
	}
}

// CheckoutResult 创建支付会话的结果
type CheckoutResult struct {
	AlreadyPaid bool   `json:"already_paid"`
	URL         string `json:"url,omitempty"`
}

// StatusResult 菜单支付状态
type StatusResult struct {
	Slug         string `json:"slug"`
	IsPaid       bool   `json:"is_paid"`
	BusinessName string `json:"business_name"`
}

// CreateCheckout 为已发布菜单创建 Stripe Checkout 会话
// 已支付的菜单直接短路返回，不会重复发起扣款
func (s *PaymentService) CreateCheckout(slug string) (*CheckoutResult, error) {
	menu, err := s.store.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if menu == nil {
		return nil, ErrNotFound
	}
	if menu.IsPaid {
		return &CheckoutResult{AlreadyPaid: true}, nil
	}
	if !s.cfg.Stripe.IsConfigured() {
		return nil, ErrPaymentNotConfigured
	}

	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("payment_method_types[0]", "card")
	form.Set("payment_method_types[1]", "alipay")

	if s.cfg.Stripe.PriceID != "" && !strings.Contains(s.cfg.Stripe.PriceID, "your-price") {
		form.Set("line_items[0][price]", s.cfg.Stripe.PriceID)
		form.Set("line_items[0][quantity]", "1")
	} else {
		name := menu.BusinessName
		if name == "" {
			name = "Menu"
		}
		form.Set("line_items[0][price_data][currency]", s.cfg.Stripe.Currency)
		form.Set("line_items[0][price_data][product_data][name]", "MenuAI 高级版 — "+name)
		form.Set("line_items[0][price_data][product_data][description]", "去除水印 + PDF 下载")
		form.Set("line_items[0][price_data][unit_amount]", strconv.FormatInt(s.cfg.Stripe.Amount, 10))
		form.Set("line_items[0][quantity]", "1")
	}

	// slug 写入 metadata，webhook 回调时据此定位菜单
	form.Set("metadata[menu_slug]", slug)
	form.Set("success_url", s.cfg.Server.FrontendURL+"/success?slug="+slug)
	form.Set("cancel_url", s.cfg.Server.FrontendURL+"/create")

	req, err := http.NewRequest("POST", s.apiBase+"/v1/checkout/sessions", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("创建支付请求失败: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+s.cfg.Stripe.SecretKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("请求支付服务失败: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("读取支付服务响应失败: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("支付服务返回错误: %d %s", resp.StatusCode, string(body))
	}

	var session struct {
		ID  string `json:"id"`
		URL string `json:"url"`
	}
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, fmt.Errorf("解析支付服务响应失败: %w", err)
	}

	return &CheckoutResult{AlreadyPaid: false, URL: session.URL}, nil
}

// webhookEvent Stripe 回调事件
type webhookEvent struct {
	Type string `json:"type"`
	Data struct {
		Object struct {
			Metadata map[string]string `json:"metadata"`
		} `json:"object"`
	} `json:"data"`
}

// HandleWebhook 处理 Stripe 回调
// 配置了 webhook_secret 时强制校验签名；未配置时仅在显式开启
// allow_insecure_webhook 后才接受未签名回调（本地开发用）
// 回调中的未知 slug 只记录日志不报错，避免 Stripe 反复重试
func (s *PaymentService) HandleWebhook(payload []byte, sigHeader string) error {
	var event webhookEvent

	if s.cfg.Stripe.WebhookSecretConfigured() {
		if err := verifyStripeSignature(payload, sigHeader, s.cfg.Stripe.WebhookSecret, s.now()); err != nil {
			return fmt.Errorf("%w: %v", ErrBadSignature, err)
		}
		if err := json.Unmarshal(payload, &event); err != nil {
			return fmt.Errorf("%w: %v", ErrBadSignature, err)
		}
	} else if s.cfg.Stripe.AllowInsecureWebhook {
		log.Println("警告: webhook 签名校验已关闭，仅限本地开发使用")
		if err := json.Unmarshal(payload, &event); err != nil {
			return fmt.Errorf("%w: %v", ErrBadSignature, err)
		}
	} else {
		return ErrPaymentNotConfigured
	}

	if event.Type != "checkout.session.completed" {
		return nil
	}

	slug := event.Data.Object.Metadata["menu_slug"]
	if slug == "" {
		log.Println("webhook: checkout.session.completed 事件缺少 menu_slug，忽略")
		return nil
	}

	found, err := s.store.MarkPaid(slug)
	if err != nil {
		return err
	}
	if !found {
		log.Printf("webhook: 菜单 %s 不存在，忽略", slug)
	}
	return nil
}

// CheckStatus 查询菜单支付状态
func (s *PaymentService) CheckStatus(slug string) (*StatusResult, error) {
	menu, err := s.store.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if menu == nil {
		return nil, ErrNotFound
	}
	return &StatusResult{
		Slug:         slug,
		IsPaid:       menu.IsPaid,
		BusinessName: menu.BusinessName,
	}, nil
}

// verifyStripeSignature 校验 Stripe-Signature 头
// 格式: t=<unix时间戳>,v1=<hex签名>[,v1=...]
// 签名为 HMAC-SHA256(secret, "<t>.<payload>")
func verifyStripeSignature(payload []byte, header, secret string, now time.Time) error {
	var timestamp string
	var signatures []string

	for _, part := range strings.Split(header, ",") {
		pair := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if len(pair) != 2 {
			continue
		}
		switch pair[0] {
		case "t":
			timestamp = pair[1]
		case "v1":
			signatures = append(signatures, pair[1])
		}
	}

	if timestamp == "" || len(signatures) == 0 {
		return fmt.Errorf("签名头格式无效")
	}

	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return fmt.Errorf("签名时间戳无效")
	}
	diff := now.Sub(time.Unix(ts, 0))
	if diff > webhookTolerance || diff < -webhookTolerance {
		return fmt.Errorf("签名时间戳超出允许范围")
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(timestamp))
	mac.Write([]byte("."))
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))

	for _, sig := range signatures {
		if hmac.Equal([]byte(expected), []byte(sig)) {
			return nil
		}
	}
	return fmt.Errorf("签名不匹配")
}
