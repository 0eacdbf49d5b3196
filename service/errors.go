package service

import "errors"

var (
	// ErrNotFound slug 对应的菜单不存在
	ErrNotFound = errors.New("菜单不存在")
	// ErrPaymentNotConfigured Stripe 未配置，无法处理支付
	ErrPaymentNotConfigured = errors.New("支付功能未配置")
	// ErrBadSignature webhook 签名校验失败
	ErrBadSignature = errors.New("webhook 签名无效")
	// ErrInvalidAIOutput AI 返回的内容不是合法的菜单 JSON
	ErrInvalidAIOutput = errors.New("AI 返回的菜单格式无效")
	// ErrAINotConfigured AI 解析服务未配置
	ErrAINotConfigured = errors.New("AI 解析服务未配置")
)
