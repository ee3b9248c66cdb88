package controllers

import (
	"strconv"

	"github.com/Sandip-364710/daily-tiffin-service/pkg/resp"
	"github.com/Sandip-364710/daily-tiffin-service/services"
	"github.com/Sandip-364710/daily-tiffin-service/utils"

	"github.com/gin-gonic/gin"
)

type DeliveryController struct {
	Delivery *services.DeliveryService
}

func NewDeliveryController(delivery *services.DeliveryService) *DeliveryController {
	return &DeliveryController{Delivery: delivery}
}

// UpdateLocation takes form-encoded lat/lng pings from the courier app.
func (dc *DeliveryController) UpdateLocation(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	lat, errLat := strconv.ParseFloat(c.PostForm("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.PostForm("lng"), 64)
	if errLat != nil || errLng != nil {
		resp.BadRequest(c, "lat and lng are required")
		return
	}

	view, err := dc.Delivery.UpdateLocation(utils.CurrentUserID(c), id, lat, lng)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, view)
}

func (dc *DeliveryController) Track(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	view, err := dc.Delivery.Track(utils.CurrentUserID(c), utils.CurrentRole(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, view)
}

func (dc *DeliveryController) Dashboard(c *gin.Context) {
	d, err := dc.Delivery.Dashboard(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, d)
}

type AvailabilityReq struct {
	Available *bool `json:"available" binding:"required"`
}

func (dc *DeliveryController) SetAvailability(c *gin.Context) {
	var req AvailabilityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	courier, err := dc.Delivery.SetAvailability(utils.CurrentUserID(c), *req.Available)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, courier)
}
