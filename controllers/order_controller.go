package controllers

import (
	"github.com/Sandip-364710/daily-tiffin-service/pkg/resp"
	"github.com/Sandip-364710/daily-tiffin-service/services"
	"github.com/Sandip-364710/daily-tiffin-service/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

func (oc *OrderController) Checkout(c *gin.Context) {
	var req services.CheckoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	orders, err := oc.Orders.Checkout(utils.CurrentUserID(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, gin.H{"orders": orders})
}

func (oc *OrderController) History(c *gin.Context) {
	orders, err := oc.Orders.HistoryForUser(utils.CurrentUserID(c), utils.CurrentRole(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, orders)
}

func (oc *OrderController) Detail(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	d, err := oc.Orders.Detail(utils.CurrentUserID(c), utils.CurrentRole(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, d)
}

type StatusReq struct {
	Status string `json:"status" binding:"required"`
}

func (oc *OrderController) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req StatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	o, err := oc.Orders.UpdateStatus(utils.CurrentUserID(c), id, req.Status)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, o)
}

func (oc *OrderController) Cancel(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	o, err := oc.Orders.CancelByCustomer(utils.CurrentUserID(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, o)
}

type AssignCourierReq struct {
	CourierID uint `json:"courierId" binding:"required"`
}

func (oc *OrderController) AssignCourier(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req AssignCourierReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	o, err := oc.Orders.AssignCourier(utils.CurrentUserID(c), id, req.CourierID)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, o)
}
