package api

import (
	"errors"
	"fmt"
	"io"

	"menuai/service"

	"github.com/gin-gonic/gin"
)

// maxUploadSize 菜单照片大小上限
const maxUploadSize = 10 << 20 // 10 MB

// heicMimeAliases 手机上传的 HEIC 照片常见的 Content-Type 别名
var heicMimeAliases = map[string]bool{
	"image/heic":               true,
	"image/heif":               true,
	"application/octet-stream": true,
}

// allowedMimeTypes AI 接口支持的图片格式
var allowedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// ParseHandler AI 菜单解析接口
type ParseHandler struct {
	parse *service.ParseService
}

// NewParseHandler 创建解析处理器
func NewParseHandler(parse *service.ParseService) *ParseHandler {
	return &ParseHandler{parse: parse}
}

// ParseTextRequest 文本解析请求
type ParseTextRequest struct {
	Text         string `json:"text" binding:"required,min=1"`
	BusinessName string `json:"business_name"`
	MenuType     string `json:"menu_type"`
}

// ParseText 解析文本为结构化菜单
// @Summary 解析文本
// @Description 将原始价目表文本解析为结构化菜单数据
// @Tags 解析
// @Accept json
// @Produce json
// @Param request body ParseTextRequest true "原始文本"
// @Success 200 {object} Response{data=models.MenuData} "结构化菜单"
// @Failure 400 {object} Response "AI 返回格式无效"
// @Failure 503 {object} Response "AI 服务未配置"
// @Router /api/parse [post]
func (h *ParseHandler) ParseText(c *gin.Context) {
	var req ParseTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	menu, err := h.parse.ParseText(req.Text, req.BusinessName, req.MenuType)
	if err != nil {
		h.renderParseError(c, err)
		return
	}
	Success(c, menu)
}

// ParsePhoto 从照片中提取结构化菜单
// @Summary 解析照片
// @Description 从菜单/价目表照片中提取结构化菜单数据
// @Tags 解析
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "菜单照片（jpeg/png/webp，最大 10MB）"
// @Param business_name formData string false "商家名称"
// @Param menu_type formData string false "菜单类型"
// @Success 200 {object} Response{data=models.MenuData} "结构化菜单"
// @Failure 400 {object} Response "图片格式不支持或 AI 返回格式无效"
// @Failure 413 {object} Response "文件过大"
// @Failure 503 {object} Response "AI 服务未配置"
// @Router /api/parse-photo [post]
func (h *ParseHandler) ParsePhoto(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		BadRequest(c, "请上传菜单照片")
		return
	}
	if fileHeader.Size > maxUploadSize {
		Error(c, 413, "文件过大，最大支持 10MB")
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	if heicMimeAliases[mimeType] {
		mimeType = "image/jpeg"
	}
	if !allowedMimeTypes[mimeType] {
		BadRequest(c, fmt.Sprintf("不支持的图片格式: %s", mimeType))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "读取上传文件失败"))
		return
	}
	defer file.Close()

	image, err := io.ReadAll(io.LimitReader(file, maxUploadSize+1))
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "读取上传文件失败"))
		return
	}
	if len(image) > maxUploadSize {
		Error(c, 413, "文件过大，最大支持 10MB")
		return
	}

	menu, err := h.parse.ParsePhoto(image, mimeType,
		c.PostForm("business_name"), c.PostForm("menu_type"))
	if err != nil {
		h.renderParseError(c, err)
		return
	}
	Success(c, menu)
}

// renderParseError 解析失败的统一错误映射
func (h *ParseHandler) renderParseError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidAIOutput):
		BadRequest(c, "未能从输入中解析出菜单，请检查内容后重试")
	case errors.Is(err, service.ErrAINotConfigured):
		ServiceUnavailable(c, "AI 解析服务尚未配置")
	default:
		InternalError(c, SafeErrorMessage(err, "菜单解析失败"))
	}
}
