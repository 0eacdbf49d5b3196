package api

import (
	"errors"

	"menuai/service"

	"github.com/gin-gonic/gin"
)

// PaymentHandler 支付相关接口
type PaymentHandler struct {
	payment *service.PaymentService
}

// NewPaymentHandler 创建支付处理器
func NewPaymentHandler(payment *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{payment: payment}
}

// CheckoutRequest 创建支付会话请求
type CheckoutRequest struct {
	Slug string `json:"slug" binding:"required"`
}

// CreateCheckout 创建 Stripe Checkout 会话
// @Summary 创建支付会话
// @Description 为已发布菜单创建 Stripe Checkout 会话，已支付的菜单直接返回 already_paid
// @Tags 支付
// @Accept json
// @Produce json
// @Param request body CheckoutRequest true "菜单 slug"
// @Success 200 {object} Response{data=service.CheckoutResult} "跳转地址"
// @Failure 404 {object} Response "菜单不存在"
// @Failure 503 {object} Response "支付未配置"
// @Router /api/create-checkout [post]
func (h *PaymentHandler) CreateCheckout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	result, err := h.payment.CreateCheckout(req.Slug)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			NotFound(c, "菜单不存在")
		case errors.Is(err, service.ErrPaymentNotConfigured):
			ServiceUnavailable(c, "支付功能尚未配置")
		default:
			InternalError(c, SafeErrorMessage(err, "创建支付会话失败"))
		}
		return
	}
	Success(c, result)
}

// Webhook Stripe 回调
// @Summary Stripe webhook
// @Description 处理 checkout.session.completed 事件，标记菜单已支付
// @Tags 支付
// @Accept json
// @Produce json
// @Success 200 {object} Response "已确认"
// @Failure 400 {object} Response "签名无效"
// @Failure 503 {object} Response "支付未配置"
// @Router /api/webhook/stripe [post]
func (h *PaymentHandler) Webhook(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		BadRequest(c, "读取回调内容失败")
		return
	}
	sigHeader := c.GetHeader("Stripe-Signature")

	if err := h.payment.HandleWebhook(payload, sigHeader); err != nil {
		switch {
		case errors.Is(err, service.ErrBadSignature):
			BadRequest(c, "webhook 签名无效")
		case errors.Is(err, service.ErrPaymentNotConfigured):
			ServiceUnavailable(c, "支付功能尚未配置")
		default:
			InternalError(c, SafeErrorMessage(err, "处理回调失败"))
		}
		return
	}
	Success(c, gin.H{"received": true})
}

// Status 菜单支付状态
// @Summary 查询支付状态
// @Tags 支付
// @Produce json
// @Param slug path string true "菜单 slug"
// @Success 200 {object} Response{data=service.StatusResult} "支付状态"
// @Failure 404 {object} Response "菜单不存在"
// @Router /api/menu-status/{slug} [get]
func (h *PaymentHandler) Status(c *gin.Context) {
	slug := c.Param("slug")

	status, err := h.payment.CheckStatus(slug)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			NotFound(c, "菜单不存在")
			return
		}
		InternalError(c, SafeErrorMessage(err, "查询支付状态失败"))
		return
	}
	Success(c, status)
}
