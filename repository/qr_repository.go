package repository

import (
	"context"
	"fmt"
	"net/url"

	"github.com/saiyam0211/frontend-restaurant-qr/entity"
)

type QRRepository struct {
	c *Client
}

func NewQRRepository(c *Client) *QRRepository {
	return &QRRepository{c: c}
}

// FetchQR เป็น pass-through ล้วน ๆ backend เป็นคน generate รูป
func (r *QRRepository) FetchQR(ctx context.Context, tableNumber string) (*entity.TableQR, error) {
	var qr entity.TableQR
	if err := r.c.get(ctx, "/api/qr/"+url.PathEscape(tableNumber), nil, &qr); err != nil {
		return nil, fmt.Errorf("fetch qr: %w", err)
	}
	return &qr, nil
}
