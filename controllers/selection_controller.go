package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/saiyam0211/frontend-restaurant-qr/pkg/resp"
	"github.com/saiyam0211/frontend-restaurant-qr/services"
)

type SelectionController struct {
	Selection *services.SelectionService
	Orders    *services.OrderService
}

func NewSelectionController(sel *services.SelectionService, orders *services.OrderService) *SelectionController {
	return &SelectionController{Selection: sel, Orders: orders}
}

type AdjustReq struct {
	MenuItemID string `json:"menuItemId" binding:"required"`
	Delta      int    `json:"delta" binding:"required"`
}

// POST /api/tables/:table/selection/adjust
func (sc *SelectionController) Adjust(c *gin.Context) {
	var req AdjustReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	table := c.Param("table")
	if err := sc.Selection.Adjust(table, req.MenuItemID, req.Delta); err != nil {
		writeErr(c, err)
		return
	}
	sc.show(c, table)
}

// GET /api/tables/:table/selection
func (sc *SelectionController) Get(c *gin.Context) {
	sc.show(c, c.Param("table"))
}

// DELETE /api/tables/:table/selection (ล้าง/ยกเลิกการแก้)
func (sc *SelectionController) Clear(c *gin.Context) {
	sc.Selection.Clear(c.Param("table"))
	resp.OK(c, gin.H{"cleared": true})
}

// POST /api/tables/:table/selection/load/:orderId
// ดึงรายการของออเดอร์เดิมเข้า selection = เข้าโหมดแก้
func (sc *SelectionController) LoadOrder(c *gin.Context) {
	table := c.Param("table")
	if err := sc.Orders.StartModify(table, c.Param("orderId")); err != nil {
		writeErr(c, err)
		return
	}
	sc.show(c, table)
}

func (sc *SelectionController) show(c *gin.Context, table string) {
	editing, _ := sc.Selection.Editing(table)
	resp.OK(c, gin.H{
		"items":          sc.Selection.Lines(table),
		"total":          sc.Selection.Total(table),
		"editingOrderId": editing,
	})
}
