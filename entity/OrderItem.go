package entity

// OrderItem คือรายการหนึ่งในออเดอร์
// Name + UnitPrice ถูก snapshot ตอนสั่ง ราคาเมนูเปลี่ยนทีหลังไม่มีผลกับออเดอร์เดิม
type OrderItem struct {
	MenuItemID string `json:"menuItemId"`
	Name       string `json:"name"`
	UnitPrice  int64  `json:"unitPrice"`
	Quantity   int    `json:"quantity"` // >= 1 เสมอ (qty 0 = ลบรายการออก ไม่เก็บศูนย์)
}

func (it OrderItem) LineTotal() int64 {
	return it.UnitPrice * int64(it.Quantity)
}
