package services

import "errors"

// error กลุ่ม validation ฝั่งเรา vs กลุ่ม backend ล่ม
// controller map เป็น 400/404/502 ตามตัว
var (
	ErrCatalogUnavailable  = errors.New("catalog unavailable")
	ErrEmptySelection      = errors.New("selection is empty")
	ErrNoTable             = errors.New("table number is required")
	ErrBadDelta            = errors.New("delta must be +1 or -1")
	ErrOrderMutationFailed = errors.New("order mutation failed")
	ErrNotEditing          = errors.New("no order is being modified")
	ErrOrderNotFound       = errors.New("order not found")
	ErrInvalidTransition   = errors.New("invalid status transition")
)
