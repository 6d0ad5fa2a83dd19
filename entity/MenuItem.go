package entity

// MenuItem คือเมนูหนึ่งรายการตามที่ backend ส่งมา
// ราคาเก็บเป็นหน่วยย่อย (int64) ไม่ใช้ float
type MenuItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
}
