package controllers

import (
	"github.com/Sandip-364710/daily-tiffin-service/pkg/resp"
	"github.com/Sandip-364710/daily-tiffin-service/services"
	"github.com/Sandip-364710/daily-tiffin-service/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type ProviderController struct {
	Providers *services.ProviderService
}

func NewProviderController(providers *services.ProviderService) *ProviderController {
	return &ProviderController{Providers: providers}
}

func (pc *ProviderController) CreateProfile(c *gin.Context) {
	var req services.ProviderProfileIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	p, err := pc.Providers.CreateProfile(utils.CurrentUserID(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, p)
}

func (pc *ProviderController) MyProfile(c *gin.Context) {
	p, err := pc.Providers.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, p)
}

type ProviderUpdateReq struct {
	BusinessName    *string          `json:"businessName"`
	Description     *string          `json:"description"`
	DeliveryAreas   *string          `json:"deliveryAreas"`
	MinOrderAmount  *decimal.Decimal `json:"minOrderAmount"`
	DeliveryCharge  *decimal.Decimal `json:"deliveryCharge"`
	PreparationTime *int             `json:"preparationTime"`
	PhoneNumber     *string          `json:"phoneNumber"`
	IsActive        *bool            `json:"isActive"`
}

func (pc *ProviderController) UpdateProfile(c *gin.Context) {
	var req ProviderUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.BusinessName != nil {
		updates["business_name"] = *req.BusinessName
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.DeliveryAreas != nil {
		updates["delivery_areas"] = *req.DeliveryAreas
	}
	if req.MinOrderAmount != nil {
		updates["min_order_amount"] = *req.MinOrderAmount
	}
	if req.DeliveryCharge != nil {
		updates["delivery_charge"] = *req.DeliveryCharge
	}
	if req.PreparationTime != nil {
		updates["preparation_time"] = *req.PreparationTime
	}
	if req.PhoneNumber != nil {
		updates["phone_number"] = *req.PhoneNumber
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if len(updates) == 0 {
		resp.BadRequest(c, "nothing to update")
		return
	}

	p, err := pc.Providers.UpdateProfile(utils.CurrentUserID(c), updates)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, p)
}

func (pc *ProviderController) Dashboard(c *gin.Context) {
	d, err := pc.Providers.Dashboard(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, d)
}

func (pc *ProviderController) RegisterCourier(c *gin.Context) {
	var req services.CourierIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	courier, err := pc.Providers.RegisterCourier(utils.CurrentUserID(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, courier)
}

func (pc *ProviderController) ListCouriers(c *gin.Context) {
	couriers, err := pc.Providers.ListCouriers(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, couriers)
}
