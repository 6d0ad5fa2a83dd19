package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/saiyam0211/frontend-restaurant-qr/pkg/resp"
	"github.com/saiyam0211/frontend-restaurant-qr/services"
)

// OrderController ฝั่งลูกค้า: ดู/สั่ง/แก้/ยกเลิกออเดอร์ของโต๊ะตัวเอง
type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

// GET /api/orders?tableNumber=N (ส่งต่อจาก backend ตรง ๆ)
func (oc *OrderController) ListForTable(c *gin.Context) {
	orders, err := oc.Orders.ListForTable(c.Request.Context(), c.Query("tableNumber"))
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, orders)
}

// POST /api/tables/:table/orders (สั่งจาก selection ปัจจุบัน)
func (oc *OrderController) Submit(c *gin.Context) {
	created, err := oc.Orders.Submit(c.Request.Context(), c.Param("table"))
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.Created(c, created)
}

// PUT /api/tables/:table/orders (ยืนยันการแก้ ต้องอยู่โหมดแก้ก่อน)
func (oc *OrderController) Modify(c *gin.Context) {
	updated, err := oc.Orders.Modify(c.Request.Context(), c.Param("table"))
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, updated)
}

// DELETE /api/orders/:id?tableNumber=N
func (oc *OrderController) Cancel(c *gin.Context) {
	if err := oc.Orders.Cancel(c.Request.Context(), c.Param("id"), c.Query("tableNumber")); err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"cancelled": true})
}
