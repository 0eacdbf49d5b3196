package store

import (
	"errors"
	"fmt"
	"strconv"

	"menuai/config"
	"menuai/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// gormStore MySQL 存储后端
type gormStore struct {
	db *gorm.DB
}

// NewGormStore 连接 MySQL 并自动迁移表结构
func NewGormStore(cfg *config.Config) (MenuStore, error) {
	// 构建 MySQL DSN 连接字符串
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=%s&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
		cfg.Database.Charset,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	// 获取底层 *sql.DB 配置连接池
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	// 自动迁移数据库表
	if err := db.AutoMigrate(&models.Menu{}); err != nil {
		return nil, err
	}

	return &gormStore{db: db}, nil
}

// NewGormStoreWithDB 使用已有连接创建存储，供测试注入 sqlmock
func NewGormStoreWithDB(db *gorm.DB) MenuStore {
	return &gormStore{db: db}
}

func (s *gormStore) Save(menu *models.Menu) (*SaveResult, error) {
	if err := s.db.Create(menu).Error; err != nil {
		return nil, fmt.Errorf("保存菜单失败: %w", err)
	}
	return &SaveResult{
		Slug: menu.Slug,
		ID:   strconv.FormatUint(uint64(menu.ID), 10),
	}, nil
}

func (s *gormStore) GetBySlug(slug string) (*models.Menu, error) {
	var menu models.Menu
	err := s.db.Where("slug = ?", slug).First(&menu).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("查询菜单失败: %w", err)
	}
	return &menu, nil
}

func (s *gormStore) MarkPaid(slug string) (bool, error) {
	res := s.db.Model(&models.Menu{}).Where("slug = ?", slug).Update("is_paid", true)
	if res.Error != nil {
		return false, fmt.Errorf("更新支付状态失败: %w", res.Error)
	}
	if res.RowsAffected > 0 {
		return true, nil
	}
	// MySQL 对值未变化的 UPDATE 返回 0 行，已支付的菜单重复标记仍视为成功
	menu, err := s.GetBySlug(slug)
	if err != nil {
		return false, err
	}
	return menu != nil, nil
}

func (s *gormStore) List(limit int) ([]models.MenuSummary, error) {
	var menus []models.Menu
	err := s.db.
		Select("id, slug, business_name, business_type, template, is_paid, created_at").
		Order("created_at DESC").
		Limit(limit).
		Find(&menus).Error
	if err != nil {
		return nil, fmt.Errorf("查询菜单列表失败: %w", err)
	}

	summaries := make([]models.MenuSummary, 0, len(menus))
	for _, m := range menus {
		summaries = append(summaries, models.MenuSummary{
			ID:           strconv.FormatUint(uint64(m.ID), 10),
			Slug:         m.Slug,
			BusinessName: m.BusinessName,
			BusinessType: m.BusinessType,
			Template:     m.Template,
			IsPaid:       m.IsPaid,
			CreatedAt:    m.CreatedAt,
		})
	}
	return summaries, nil
}
