package entity

// TableQR คือผลจาก GET /api/qr/{tableNumber} ของ backend (pass-through)
type TableQR struct {
	QRCode string `json:"qrCode"`
}
