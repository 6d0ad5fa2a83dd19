package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/saiyam0211/frontend-restaurant-qr/entity"
	"github.com/saiyam0211/frontend-restaurant-qr/repository"
)

// CatalogService ถือเมนูชุดปัจจุบันในเมมโมรี
// โหลดครั้งเดียวตอน start แล้ว read-only จนกว่าจะ refresh ทั้งก้อน
type CatalogService struct {
	repo *repository.MenuRepository
	log  zerolog.Logger

	mu    sync.RWMutex
	items []entity.MenuItem
	index map[string]entity.MenuItem
}

func NewCatalogService(repo *repository.MenuRepository, log zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, log: log}
}

// Load ดึงเมนูแล้วสลับทั้ง slice + index ใต้ lock เดียว
// ล้มเหลว = คงชุดเดิมไว้ แล้วคืน ErrCatalogUnavailable (ไม่ retry เอง)
func (s *CatalogService) Load(ctx context.Context) error {
	items, err := s.repo.FetchMenu(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("menu fetch failed, keeping stale catalog")
		return fmt.Errorf("%w: %s", ErrCatalogUnavailable, err)
	}

	index := make(map[string]entity.MenuItem, len(items))
	for _, it := range items {
		index[it.ID] = it
	}

	s.mu.Lock()
	s.items = items
	s.index = index
	s.mu.Unlock()

	s.log.Info().Int("items", len(items)).Msg("catalog loaded")
	return nil
}

func (s *CatalogService) Lookup(menuItemID string) (entity.MenuItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	it, ok := s.index[menuItemID]
	return it, ok
}

func (s *CatalogService) Items() []entity.MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.MenuItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *CatalogService) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index != nil
}
