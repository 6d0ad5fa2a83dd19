package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/saiyam0211/frontend-restaurant-qr/entity"
	"github.com/saiyam0211/frontend-restaurant-qr/pkg/resp"
	"github.com/saiyam0211/frontend-restaurant-qr/services"
)

// AdminController เสิร์ฟหน้าแดชบอร์ดร้าน: สามพาร์ทิชัน + ยอดเงิน + toast
type AdminController struct {
	Reconciler *services.ReconcilerService
	Notifier   *services.NotifyService
	Orders     *services.OrderService
}

func NewAdminController(rec *services.ReconcilerService, not *services.NotifyService, orders *services.OrderService) *AdminController {
	return &AdminController{Reconciler: rec, Notifier: not, Orders: orders}
}

// GET /api/admin/orders
func (ac *AdminController) Dashboard(c *gin.Context) {
	resp.OK(c, gin.H{
		"active":      ac.Reconciler.Active(),
		"completed":   ac.Reconciler.CompletedBuckets(),
		"cancelled":   ac.Reconciler.CancelledBuckets(),
		"totalEarned": ac.Reconciler.TotalEarned(),
		"totalLost":   ac.Reconciler.TotalLost(),
	})
}

type UpdateStatusReq struct {
	Status entity.OrderStatus `json:"status" binding:"required"`
}

// POST /api/admin/orders/:id/status
// แค่ emit updateOrderStatus ขึ้น push channel
// state จริงเปลี่ยนตอน orderUpdated ย้อนกลับมา
func (ac *AdminController) UpdateStatus(c *gin.Context) {
	var req UpdateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ac.Orders.UpdateStatus(c.Param("id"), req.Status); err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"requested": true})
}

// GET /api/admin/notification (toast ปัจจุบัน หรือ null ถ้าหมดเวลา)
func (ac *AdminController) Notification(c *gin.Context) {
	resp.OK(c, ac.Notifier.Current())
}
