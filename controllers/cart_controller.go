package controllers

import (
	"github.com/Sandip-364710/daily-tiffin-service/pkg/resp"
	"github.com/Sandip-364710/daily-tiffin-service/services"
	"github.com/Sandip-364710/daily-tiffin-service/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	Cart *services.CartService
}

func NewCartController(cart *services.CartService) *CartController {
	return &CartController{Cart: cart}
}

func (cc *CartController) View(c *gin.Context) {
	view, err := cc.Cart.View(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, view)
}

func (cc *CartController) Add(c *gin.Context) {
	id, ok := paramID(c, "tiffinId")
	if !ok {
		return
	}
	count, err := cc.Cart.Add(utils.CurrentUserID(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"cart_count": count})
}

type CartUpdateReq struct {
	Delta int `json:"delta" binding:"required"`
}

func (cc *CartController) Update(c *gin.Context) {
	id, ok := paramID(c, "tiffinId")
	if !ok {
		return
	}
	var req CartUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	res, err := cc.Cart.Update(utils.CurrentUserID(c), id, req.Delta)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, res)
}

func (cc *CartController) Remove(c *gin.Context) {
	id, ok := paramID(c, "tiffinId")
	if !ok {
		return
	}
	res, err := cc.Cart.Remove(utils.CurrentUserID(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, res)
}
