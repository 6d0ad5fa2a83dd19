package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/saiyam0211/frontend-restaurant-qr/controllers"
	"github.com/saiyam0211/frontend-restaurant-qr/repository"
	"github.com/saiyam0211/frontend-restaurant-qr/services"
	"github.com/saiyam0211/frontend-restaurant-qr/ws"
)

type Deps struct {
	Catalog    *services.CatalogService
	Selection  *services.SelectionService
	Reconciler *services.ReconcilerService
	Notifier   *services.NotifyService
	Orders     *services.OrderService
	QR         *repository.QRRepository
	Hub        *ws.Hub
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Controllers
	menuCtrl := controllers.NewMenuController(d.Catalog)
	selCtrl := controllers.NewSelectionController(d.Selection, d.Orders)
	orderCtrl := controllers.NewOrderController(d.Orders)
	adminCtrl := controllers.NewAdminController(d.Reconciler, d.Notifier, d.Orders)
	qrCtrl := controllers.NewQRController(d.QR)

	api := r.Group("/api")
	{
		// Customer
		api.GET("/menu", menuCtrl.List)
		api.GET("/orders", orderCtrl.ListForTable)
		api.DELETE("/orders/:id", orderCtrl.Cancel)

		t := api.Group("/tables/:table")
		{
			t.GET("/selection", selCtrl.Get)
			t.POST("/selection/adjust", selCtrl.Adjust)
			t.POST("/selection/load/:orderId", selCtrl.LoadOrder)
			t.DELETE("/selection", selCtrl.Clear)
			t.POST("/orders", orderCtrl.Submit)
			t.PUT("/orders", orderCtrl.Modify)
		}

		// Admin dashboard
		admin := api.Group("/admin")
		{
			admin.GET("/orders", adminCtrl.Dashboard)
			admin.POST("/orders/:id/status", adminCtrl.UpdateStatus)
			admin.GET("/notification", adminCtrl.Notification)
		}

		// QR page
		api.GET("/qr/:table", qrCtrl.Show)
	}

	// browser feed
	r.GET("/ws", d.Hub.HandleWebSocket)
}
