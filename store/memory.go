package store

import (
	"sort"
	"sync"
	"time"

	"menuai/models"
)

// memoryStore 内存存储后端，数据库未配置时的开发用回退
type memoryStore struct {
	mu    sync.RWMutex
	menus map[string]*models.Menu
}

// NewMemoryStore 创建内存存储
func NewMemoryStore() MenuStore {
	return &memoryStore{
		menus: make(map[string]*models.Menu),
	}
}

func (s *memoryStore) Save(menu *models.Menu) (*SaveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if menu.CreatedAt.IsZero() {
		menu.CreatedAt = time.Now()
	}
	cp := *menu
	s.menus[menu.Slug] = &cp

	// 内存后端没有自增主键，id 即 slug
	return &SaveResult{Slug: menu.Slug, ID: menu.Slug}, nil
}

func (s *memoryStore) GetBySlug(slug string) (*models.Menu, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	menu, ok := s.menus[slug]
	if !ok {
		return nil, nil
	}
	cp := *menu
	return &cp, nil
}

func (s *memoryStore) MarkPaid(slug string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	menu, ok := s.menus[slug]
	if !ok {
		return false, nil
	}
	menu.IsPaid = true
	return true, nil
}

func (s *memoryStore) List(limit int) ([]models.MenuSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]*models.Menu, 0, len(s.menus))
	for _, m := range s.menus {
		all = append(all, m)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	if limit >= 0 && len(all) > limit {
		all = all[:limit]
	}

	summaries := make([]models.MenuSummary, 0, len(all))
	for _, m := range all {
		summaries = append(summaries, models.MenuSummary{
			ID:           m.Slug,
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
