package repository

import (
	"context"
	"fmt"

	"github.com/saiyam0211/frontend-restaurant-qr/entity"
)

type MenuRepository struct {
	c *Client
}

func NewMenuRepository(c *Client) *MenuRepository {
	return &MenuRepository{c: c}
}

// FetchMenu ดึงเมนูทั้งชุด (catalog ถูกแทนทั้งก้อน ไม่มี partial update)
func (r *MenuRepository) FetchMenu(ctx context.Context) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	if err := r.c.get(ctx, "/api/menu", nil, &items); err != nil {
		return nil, fmt.Errorf("fetch menu: %w", err)
	}
	return items, nil
}
