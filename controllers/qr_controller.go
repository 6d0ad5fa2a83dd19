package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/saiyam0211/frontend-restaurant-qr/pkg/resp"
	"github.com/saiyam0211/frontend-restaurant-qr/repository"
)

// QRController: pass-through ล้วน backend เป็นคนสร้างรูป QR
type QRController struct {
	Repo *repository.QRRepository
}

func NewQRController(repo *repository.QRRepository) *QRController {
	return &QRController{Repo: repo}
}

// GET /api/qr/:table
func (qc *QRController) Show(c *gin.Context) {
	qr, err := qc.Repo.FetchQR(c.Request.Context(), c.Param("table"))
	if err != nil {
		resp.BadGateway(c, "Unable to generate QR code. Please try again later.")
		return
	}
	resp.OK(c, qr)
}
