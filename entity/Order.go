package entity

import "time"

// Order ตามรูปแบบที่ backend ส่งมา (backend เป็นคนออก ID)
type Order struct {
	ID          string      `json:"id"`
	TableNumber string      `json:"tableNumber"`
	Items       []OrderItem `json:"items"`
	TotalAmount int64       `json:"totalAmount"`
	Status      OrderStatus `json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// ItemsTotal รวมราคาจาก UnitPrice ที่ snapshot ไว้ตอนสั่ง
// ใช้คิดยอด earned/lost โดยไม่พึ่ง catalog ปัจจุบัน
func (o Order) ItemsTotal() int64 {
	var sum int64
	for _, it := range o.Items {
		sum += it.LineTotal()
	}
	return sum
}

// OrderRequest คือ payload สำหรับ POST /api/orders และ PUT /api/orders/{id}
type OrderRequest struct {
	TableNumber string      `json:"tableNumber"`
	Items       []OrderItem `json:"items"`
	TotalAmount int64       `json:"totalAmount"`
	Status      OrderStatus `json:"status"` // "new" หรือ "modified" เท่านั้น
}
