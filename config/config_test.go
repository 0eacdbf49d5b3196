package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeErrorMessage(t *testing.T) {
	fallback := "操作失败"
	testErr := errors.New("internal database error")

	// nil err 返回 fallback
	assert.Equal(t, fallback, SafeErrorMessage(nil, fallback))

	// release 模式返回 fallback，不暴露错误详情
	GlobalConfig = &Config{Server: ServerConfig{Mode: "release"}}
	defer func() { GlobalConfig = nil }()
	assert.Equal(t, fallback, SafeErrorMessage(testErr, fallback))

	// debug 模式返回 err.Error()
	GlobalConfig = &Config{Server: ServerConfig{Mode: "debug"}}
	assert.Equal(t, "internal database error", SafeErrorMessage(testErr, fallback))

	// GlobalConfig 为 nil 时返回 err.Error()（视为开发环境）
	GlobalConfig = nil
	assert.Equal(t, "internal database error", SafeErrorMessage(testErr, fallback))
}

func TestDatabaseConfigIsConfigured(t *testing.T) {
	// 空配置视为未配置
	assert.False(t, DatabaseConfig{}.IsConfigured())

	// 占位符视为未配置
	assert.False(t, DatabaseConfig{Host: "your-db-host", DBName: "menuai"}.IsConfigured())
	assert.False(t, DatabaseConfig{Host: "127.0.0.1", DBName: "menuai", Password: "your-password"}.IsConfigured())

	// 真实配置
	assert.True(t, DatabaseConfig{Host: "127.0.0.1", DBName: "menuai", Password: "secret"}.IsConfigured())
}

func TestStripeConfigIsConfigured(t *testing.T) {
	assert.False(t, StripeConfig{}.IsConfigured())
	assert.False(t, StripeConfig{SecretKey: "sk_test_your-stripe-key"}.IsConfigured())
	assert.True(t, StripeConfig{SecretKey: "sk_test_abc123"}.IsConfigured())

	assert.False(t, StripeConfig{}.WebhookSecretConfigured())
	assert.False(t, StripeConfig{WebhookSecret: "whsec_your-webhook-secret"}.WebhookSecretConfigured())
	assert.True(t, StripeConfig{WebhookSecret: "whsec_abc123"}.WebhookSecretConfigured())
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.NoError(t, err)
	defer func() { GlobalConfig = nil }()

	assert.Equal(t, ":8000", cfg.Server.Port)
	assert.Equal(t, "http://localhost:8000", cfg.Server.BaseURL)
	assert.Equal(t, int64(4900), cfg.Stripe.Amount)
	assert.False(t, cfg.Stripe.AllowInsecureWebhook)
	assert.False(t, cfg.Database.IsConfigured())
}
