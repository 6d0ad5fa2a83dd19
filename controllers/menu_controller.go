package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/saiyam0211/frontend-restaurant-qr/pkg/resp"
	"github.com/saiyam0211/frontend-restaurant-qr/services"
)

type MenuController struct {
	Catalog *services.CatalogService
}

func NewMenuController(catalog *services.CatalogService) *MenuController {
	return &MenuController{Catalog: catalog}
}

// GET /api/menu?refresh=1
// โหลดไม่สำเร็จ = 502 แต่ catalog ชุดเก่ายังอยู่ฝั่งเรา
func (mc *MenuController) List(c *gin.Context) {
	if c.Query("refresh") == "1" || !mc.Catalog.Loaded() {
		if err := mc.Catalog.Load(c.Request.Context()); err != nil {
			resp.BadGateway(c, "Unable to fetch menu. Please try again later.")
			return
		}
	}
	resp.OK(c, mc.Catalog.Items())
}
