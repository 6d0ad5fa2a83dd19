package entity

type OrderStatus string

const (
	StatusPending    OrderStatus = "Pending"
	StatusInProgress OrderStatus = "In Progress"
	StatusCompleted  OrderStatus = "Completed"
	StatusCancelled  OrderStatus = "Cancelled"

	// ใช้เฉพาะตอนยิง request ไป backend ไม่เก็บลง partition
	StatusNew      OrderStatus = "new"
	StatusModified OrderStatus = "modified"
)

// IsTerminal บอกว่าออเดอร์จบแล้ว (ห้ามเปลี่ยนสถานะต่อ)
func (s OrderStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Valid เช็คว่าเป็นสถานะที่แสดงผลได้ (ไม่รวม marker new/modified)
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// CanTransition guard การเปลี่ยนสถานะฝั่งแอดมิน
// Pending -> In Progress/Completed/Cancelled, In Progress -> Completed/Cancelled
// สถานะ terminal ไม่รับอะไรต่อแล้ว
func CanTransition(from, to OrderStatus) bool {
	if from.IsTerminal() || from == to {
		return false
	}
	switch from {
	case StatusPending:
		return to == StatusInProgress || to == StatusCompleted || to == StatusCancelled
	case StatusInProgress:
		return to == StatusCompleted || to == StatusCancelled
	}
	return false
}
