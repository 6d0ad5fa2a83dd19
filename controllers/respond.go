package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/saiyam0211/frontend-restaurant-qr/pkg/resp"
	"github.com/saiyam0211/frontend-restaurant-qr/services"
)

// map error taxonomy ของ services เป็น HTTP status
func writeErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrEmptySelection),
		errors.Is(err, services.ErrNoTable),
		errors.Is(err, services.ErrBadDelta),
		errors.Is(err, services.ErrNotEditing),
		errors.Is(err, services.ErrInvalidTransition):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrOrderNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrCatalogUnavailable),
		errors.Is(err, services.ErrOrderMutationFailed):
		resp.BadGateway(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
