package store

import (
	"log"

	"menuai/config"
	"menuai/models"
)

// SaveResult 保存菜单的返回结果
// ID 由后端分配：数据库为自增主键，内存存储为 slug 本身
type SaveResult struct {
	Slug string `json:"slug"`
	ID   string `json:"id"`
}

// MenuStore 菜单存储抽象
// 两个实现（MySQL / 内存）对调用方行为完全一致；"未找到"不是错误，
// error 仅表示后端 I/O 故障
type MenuStore interface {
	// Save 保存新菜单，slug 由调用方生成
	Save(menu *models.Menu) (*SaveResult, error)
	// GetBySlug 按 slug 查询菜单，未找到返回 (nil, nil)
	GetBySlug(slug string) (*models.Menu, error)
	// MarkPaid 标记菜单已支付，返回是否找到记录；重复调用仍返回 true
	MarkPaid(slug string) (bool, error)
	// List 按创建时间倒序返回最多 limit 条摘要
	List(limit int) ([]models.MenuSummary, error)
}

// New 按配置选择存储后端，进程启动时调用一次
// 数据库配置完整时使用 MySQL，否则回退到内存存储
func New(cfg *config.Config) (MenuStore, error) {
	if cfg.Database.IsConfigured() {
		st, err := NewGormStore(cfg)
		if err != nil {
			return nil, err
		}
		log.Println("菜单存储: MySQL")
		return st, nil
	}
	log.Println("菜单存储: 内存（数据库未配置，重启后数据丢失）")
	return NewMemoryStore(), nil
}
