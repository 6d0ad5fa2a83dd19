package utils

import "time"

// OrderDateLayout คือ key ของ bucket รายวันบนแดชบอร์ด
// ใช้ฟอร์แมตเดียวกับที่หน้าเว็บแสดง เช่น "August 31, 2026"
const OrderDateLayout = "January 2, 2006"

// OrderDateKey แปลง createdAt เป็น key รายวัน
// อิงวันที่สั่ง ไม่ใช่วันที่สถานะเปลี่ยน
func OrderDateKey(t time.Time) string {
	return t.Format(OrderDateLayout)
}

func ParseOrderDateKey(key string) (time.Time, error) {
	return time.Parse(OrderDateLayout, key)
}
