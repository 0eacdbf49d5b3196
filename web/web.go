package web

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"

	"menuai/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

// ErrTemplateNotFound 模板名称无效
var ErrTemplateNotFound = errors.New("模板不存在")

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// RenderOptions 渲染选项
type RenderOptions struct {
	// IsPaid 已付费的菜单不显示水印
	IsPaid bool
	// PDFMode 打印/PDF 模式，启用打印样式
	PDFMode bool
}

// renderContext 模板渲染上下文
type renderContext struct {
	Menu    models.MenuData
	IsPaid  bool
	PDFMode bool
}

// Render 用指定模板渲染菜单 HTML
// 模板名称在嵌入的模板集中校验，未知名称返回 ErrTemplateNotFound
func Render(templateName string, menu models.MenuData, opts RenderOptions) (string, error) {
	tmpl := templates.Lookup(templateName + ".html")
	if tmpl == nil {
		return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, templateName)
	}

	var buf bytes.Buffer
	err := tmpl.Execute(&buf, renderContext{
		Menu:    menu,
		IsPaid:  opts.IsPaid,
		PDFMode: opts.PDFMode,
	})
	if err != nil {
		return "", fmt.Errorf("渲染模板失败: %w", err)
	}
	return buf.String(), nil
}
