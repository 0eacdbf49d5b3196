package service

import (
	"fmt"
	"log"
	"strings"
	"time"

	"menuai/config"
	"menuai/models"
	"menuai/store"
)

// PublishService 菜单发布服务
type PublishService struct {
	store store.MenuStore
	cfg   *config.Config
	mail  *EmailService
}

// NewPublishService 创建发布服务
func NewPublishService(st store.MenuStore, cfg *config.Config, mail *EmailService) *PublishService {
	return &PublishService{store: st, cfg: cfg, mail: mail}
}

// PublishResult 发布结果
type PublishResult struct {
	Slug string `json:"slug"`
	ID   string `json:"id"`
	URL  string `json:"url"`
}

// Publish 保存菜单并返回公开访问地址
// notifyEmail 非空且邮件服务启用时，发布成功后发送链接邮件（失败不影响发布）
func (s *PublishService) Publish(data *models.MenuData, template, notifyEmail string) (*PublishResult, error) {
	name := data.BusinessName
	if name == "" {
		name = "menu"
	}
	slug := MakeSlug(name)

	menu := &models.Menu{
		Slug:         slug,
		BusinessName: data.BusinessName,
		BusinessType: data.BusinessType,
		Template:     template,
		MenuData:     *data,
		IsPaid:       false,
		CreatedAt:    time.Now(),
	}

	result, err := s.store.Save(menu)
	if err != nil {
		return nil, fmt.Errorf("发布菜单失败: %w", err)
	}

	url := s.PublicURL(result.Slug)

	if notifyEmail != "" && s.mail != nil {
		if err := s.mail.SendPublishedEmail(notifyEmail, data.BusinessName, url); err != nil {
			log.Printf("发布通知邮件发送失败: %v", err)
		}
	}

	return &PublishResult{Slug: result.Slug, ID: result.ID, URL: url}, nil
}

// PublicURL 拼接菜单的公开访问地址
func (s *PublishService) PublicURL(slug string) string {
	return strings.TrimRight(s.cfg.Server.BaseURL, "/") + "/menu/" + slug
}

// ViewPublic 按 slug 查询已发布菜单，未找到返回 (nil, nil)
func (s *PublishService) ViewPublic(slug string) (*models.Menu, error) {
	return s.store.GetBySlug(slug)
}

// List 按创建时间倒序返回最多 limit 条菜单摘要
func (s *PublishService) List(limit int) ([]models.MenuSummary, error) {
	return s.store.List(limit)
}
