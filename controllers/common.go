package controllers

import (
	"errors"
	"strconv"

	"github.com/Sandip-364710/daily-tiffin-service/pkg/resp"
	"github.com/Sandip-364710/daily-tiffin-service/services"

	"github.com/gin-gonic/gin"
)

// fail translates service sentinels into the response envelope.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrAlreadyReviewed):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrItemNotInCart),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidSchedule),
		errors.Is(err, services.ErrInvalidRole),
		errors.Is(err, services.ErrInvalidMenuItem),
		errors.Is(err, services.ErrInvalidRating),
		errors.Is(err, services.ErrInvalidCoords),
		errors.Is(err, services.ErrNotDelivered),
		errors.Is(err, services.ErrNotCancellable),
		errors.Is(err, services.ErrProfileExists),
		errors.Is(err, services.ErrEmailTaken):
		resp.BadRequest(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

func paramFromQuery(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Query(name), 10, 64)
	if err != nil {
		resp.BadRequest(c, name+" is required")
		return 0, false
	}
	return uint(id), true
}

func queryInt(c *gin.Context, name string, def int) int {
	if v := c.Query(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
