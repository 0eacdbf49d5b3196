package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// MenuItem 菜单条目
type MenuItem struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price" binding:"required"`
}

// MenuCategory 菜单分类
type MenuCategory struct {
	Name  string     `json:"name" binding:"required"`
	Items []MenuItem `json:"items" binding:"required"`
}

// MenuData 结构化菜单内容，存储时序列化为 JSON 原样保存
type MenuData struct {
	BusinessName string         `json:"business_name" binding:"required"`
	BusinessType string         `json:"business_type"` // restaurant / salon / barber 等
	Tagline      string         `json:"tagline,omitempty"`
	Categories   []MenuCategory `json:"categories" binding:"required"`
}

// Value 实现 driver.Valuer，写库时序列化为 JSON
func (d MenuData) Value() (driver.Value, error) {
	b, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("序列化菜单内容失败: %w", err)
	}
	return string(b), nil
}

// Scan 实现 sql.Scanner，读库时反序列化 JSON
func (d *MenuData) Scan(value interface{}) error {
	if value == nil {
		*d = MenuData{}
		return nil
	}
	var b []byte
	switch v := value.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("无法解析菜单内容: 意外的列类型 %T", value)
	}
	return json.Unmarshal(b, d)
}
