package repository

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/saiyam0211/frontend-restaurant-qr/entity"
)

type OrderRepository struct {
	c *Client
}

func NewOrderRepository(c *Client) *OrderRepository {
	return &OrderRepository{c: c}
}

// FetchOrders ดึง snapshot ทั้งชุด; tableNumber ว่าง = ทุกโต๊ะ (ฝั่งแอดมิน)
func (r *OrderRepository) FetchOrders(ctx context.Context, tableNumber string) ([]entity.Order, error) {
	var q url.Values
	if tableNumber != "" {
		q = url.Values{"tableNumber": {tableNumber}}
	}
	var orders []entity.Order
	if err := r.c.get(ctx, "/api/orders", q, &orders); err != nil {
		return nil, fmt.Errorf("fetch orders: %w", err)
	}
	return orders, nil
}

func (r *OrderRepository) CreateOrder(ctx context.Context, req entity.OrderRequest) (*entity.Order, error) {
	var created entity.Order
	if err := r.c.send(ctx, http.MethodPost, "/api/orders", req, &created); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return &created, nil
}

func (r *OrderRepository) UpdateOrder(ctx context.Context, id string, req entity.OrderRequest) (*entity.Order, error) {
	var updated entity.Order
	if err := r.c.send(ctx, http.MethodPut, "/api/orders/"+url.PathEscape(id), req, &updated); err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}
	return &updated, nil
}

// DeleteOrder ยกเลิกออเดอร์; การจัดลง bucket cancelled รอ push จาก backend อีกที
func (r *OrderRepository) DeleteOrder(ctx context.Context, id string) error {
	if err := r.c.send(ctx, http.MethodDelete, "/api/orders/"+url.PathEscape(id), nil, nil); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}
