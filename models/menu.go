package models

import (
	"time"
)

// Menu 已发布菜单模型
type Menu struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Slug         string    `json:"slug" gorm:"size:40;uniqueIndex;not null"`
	BusinessName string    `json:"business_name" gorm:"size:100"`
	BusinessType string    `json:"business_type" gorm:"size:50"`
	Template     string    `json:"template" gorm:"size:30;not null"`
	MenuData     MenuData  `json:"menu_data" gorm:"type:json"`
	IsPaid       bool      `json:"is_paid" gorm:"default:false"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName 设置表名
func (Menu) TableName() string {
	return "menus"
}

// MenuSummary 菜单列表摘要，不含完整菜单内容
// ID 由存储后端分配：数据库为自增主键，内存存储为 slug 本身
type MenuSummary struct {
	ID           string    `json:"id"`
	Slug         string    `json:"slug"`
	BusinessName string    `json:"business_name"`
	BusinessType string    `json:"business_type"`
	Template     string    `json:"template"`
	IsPaid       bool      `json:"is_paid"`
	CreatedAt    time.Time `json:"created_at"`
}

// Template 模板名称常量
const (
	TemplateClean   = "clean"
	TemplateElegant = "elegant"
	TemplateModern  = "modern"
)

// GetTemplates 获取所有可用模板
func GetTemplates() []string {
	return []string{
		TemplateClean,
		TemplateElegant,
		TemplateModern,
	}
}
