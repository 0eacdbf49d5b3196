package api

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"menuai/models"
	"menuai/service"
	"menuai/web"

	"github.com/gin-gonic/gin"
)

// MenuHandler 菜单预览、发布与公开访问
type MenuHandler struct {
	publish *service.PublishService
}

// NewMenuHandler 创建菜单处理器
func NewMenuHandler(publish *service.PublishService) *MenuHandler {
	return &MenuHandler{publish: publish}
}

// PreviewRequest 预览/PDF 请求
type PreviewRequest struct {
	Menu     models.MenuData `json:"menu" binding:"required"`
	Template string          `json:"template"`
}

// PublishRequest 发布请求
type PublishRequest struct {
	Menu     models.MenuData `json:"menu" binding:"required"`
	Template string          `json:"template"`
	// NotifyEmail 可选，发布成功后发送链接邮件
	NotifyEmail string `json:"notify_email" binding:"omitempty,email"`
}

// Preview 渲染菜单预览 HTML
// @Summary 预览菜单
// @Description 用指定模板渲染菜单为 HTML 页面
// @Tags 菜单
// @Accept json
// @Produce html
// @Param request body PreviewRequest true "菜单内容与模板"
// @Success 200 {string} string "HTML 页面"
// @Failure 400 {object} Response "模板不存在或参数错误"
// @Router /api/preview [post]
func (h *MenuHandler) Preview(c *gin.Context) {
	var req PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}
	if req.Template == "" {
		req.Template = models.TemplateClean
	}

	html, err := web.Render(req.Template, req.Menu, web.RenderOptions{})
	if err != nil {
		if errors.Is(err, web.ErrTemplateNotFound) {
			BadRequest(c, fmt.Sprintf("模板 '%s' 不存在", req.Template))
			return
		}
		InternalError(c, SafeErrorMessage(err, "渲染失败"))
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// Publish 发布菜单并返回公开访问地址
// @Summary 发布菜单
// @Description 保存菜单并生成公开访问的 slug 地址
// @Tags 菜单
// @Accept json
// @Produce json
// @Param request body PublishRequest true "菜单内容与模板"
// @Success 200 {object} Response{data=service.PublishResult} "发布成功"
// @Failure 400 {object} Response "参数错误"
// @Failure 500 {object} Response "保存失败"
// @Router /api/publish [post]
func (h *MenuHandler) Publish(c *gin.Context) {
	var req PublishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}
	if req.Template == "" {
		req.Template = models.TemplateClean
	}

	result, err := h.publish.Publish(&req.Menu, req.Template, req.NotifyEmail)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "发布菜单失败"))
		return
	}
	SuccessWithMessage(c, "发布成功", result)
}

// ViewPublic 公开菜单页面
// @Summary 查看已发布菜单
// @Description 按 slug 渲染已发布菜单的公开页面
// @Tags 菜单
// @Produce html
// @Param slug path string true "菜单 slug"
// @Success 200 {string} string "HTML 页面"
// @Failure 404 {object} Response "菜单不存在"
// @Router /menu/{slug} [get]
func (h *MenuHandler) ViewPublic(c *gin.Context) {
	slug := c.Param("slug")

	menu, err := h.publish.ViewPublic(slug)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询菜单失败"))
		return
	}
	if menu == nil {
		NotFound(c, "菜单不存在")
		return
	}

	html, err := web.Render(menu.Template, menu.MenuData, web.RenderOptions{IsPaid: menu.IsPaid})
	if err != nil {
		// 已发布记录指向的模板丢失属于服务端问题
		InternalError(c, SafeErrorMessage(err, "模板不可用"))
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// MyMenus 菜单列表
// @Summary 已发布菜单列表
// @Description 按创建时间倒序返回最近发布的菜单摘要（后续接入用户体系后将按用户过滤）
// @Tags 菜单
// @Produce json
// @Param limit query int false "返回条数上限，默认 50"
// @Success 200 {object} Response{data=[]models.MenuSummary} "菜单列表"
// @Failure 500 {object} Response "查询失败"
// @Router /api/my-menus [get]
func (h *MenuHandler) MyMenus(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			BadRequest(c, "limit 参数无效")
			return
		}
		limit = n
	}

	summaries, err := h.publish.List(limit)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询菜单列表失败"))
		return
	}
	Success(c, summaries)
}

var filenameNonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// DownloadPDF 下载打印版菜单
// @Summary 下载打印版菜单
// @Description 返回打印优化的 HTML 附件，浏览器打印即可得到 PDF
// @Tags 菜单
// @Accept json
// @Produce html
// @Param request body PreviewRequest true "菜单内容与模板"
// @Success 200 {string} string "HTML 附件"
// @Failure 400 {object} Response "模板不存在或参数错误"
// @Router /api/download-pdf [post]
func (h *MenuHandler) DownloadPDF(c *gin.Context) {
	var req PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}
	if req.Template == "" {
		req.Template = models.TemplateClean
	}

	html, err := web.Render(req.Template, req.Menu, web.RenderOptions{PDFMode: true})
	if err != nil {
		if errors.Is(err, web.ErrTemplateNotFound) {
			BadRequest(c, fmt.Sprintf("模板 '%s' 不存在", req.Template))
			return
		}
		InternalError(c, SafeErrorMessage(err, "渲染失败"))
		return
	}

	filename := strings.Trim(filenameNonAlnum.ReplaceAllString(strings.ToLower(req.Menu.BusinessName), "-"), "-")
	if filename == "" {
		filename = "menu"
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s-menu.html"`, filename))
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// Templates 可用模板列表
// @Summary 可用模板列表
// @Tags 菜单
// @Produce json
// @Success 200 {object} Response{data=[]string} "模板名称"
// @Router /api/templates [get]
func (h *MenuHandler) Templates(c *gin.Context) {
	Success(c, models.GetTemplates())
}
