package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
)

// QRHandler 二维码生成接口
type QRHandler struct{}

// NewQRHandler 创建二维码处理器
func NewQRHandler() *QRHandler {
	return &QRHandler{}
}

// Generate 生成二维码 PNG
// @Summary 生成二维码
// @Description 为给定链接生成二维码图片，供商家打印张贴
// @Tags 菜单
// @Produce png
// @Param url query string true "目标链接"
// @Success 200 {file} file "PNG 图片"
// @Failure 400 {object} Response "链接无效"
// @Router /api/qr [get]
func (h *QRHandler) Generate(c *gin.Context) {
	url := c.Query("url")
	if url == "" {
		BadRequest(c, "请提供 url 参数")
		return
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		BadRequest(c, "url 必须以 http:// 或 https:// 开头")
		return
	}

	png, err := qrcode.Encode(url, qrcode.Medium, 512)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "生成二维码失败"))
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
