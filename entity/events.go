package entity

import "encoding/json"

// ชื่อ event บน push channel (ต้องตรงกับ backend)
const (
	EventNewOrder          = "newOrder"
	EventOrderUpdated      = "orderUpdated"
	EventOrderModified     = "orderModified"
	EventOrderCancelled    = "orderCancelled"
	EventUpdateOrderStatus = "updateOrderStatus"

	// event ฝั่ง gateway -> browser
	EventStateChanged = "stateChanged"
	EventNotification = "notification"
)

// PushEnvelope คือกรอบข้อความบน push channel: {event, data}
type PushEnvelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// OrderRef ใช้กับ orderModified / orderCancelled
type OrderRef struct {
	OrderID     string `json:"orderId"`
	TableNumber string `json:"tableNumber"`
}

// StatusChange ใช้กับ updateOrderStatus (แอดมินสั่งเปลี่ยนสถานะ)
type StatusChange struct {
	OrderID string      `json:"orderId"`
	Status  OrderStatus `json:"status"`
}
