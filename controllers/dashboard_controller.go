package controllers

import (
	"github.com/Sandip-364710/daily-tiffin-service/entity"
	"github.com/Sandip-364710/daily-tiffin-service/pkg/resp"
	"github.com/Sandip-364710/daily-tiffin-service/services"
	"github.com/Sandip-364710/daily-tiffin-service/utils"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	Orders    *services.OrderService
	Providers *services.ProviderService
	Delivery  *services.DeliveryService
	Tiffins   *services.TiffinService
}

func NewDashboardController(
	orders *services.OrderService,
	providers *services.ProviderService,
	delivery *services.DeliveryService,
	tiffins *services.TiffinService,
) *DashboardController {
	return &DashboardController{Orders: orders, Providers: providers, Delivery: delivery, Tiffins: tiffins}
}

// Dashboard dispatches on the caller's role.
func (dc *DashboardController) Dashboard(c *gin.Context) {
	userID := utils.CurrentUserID(c)

	switch utils.CurrentRole(c) {
	case entity.RoleProvider:
		d, err := dc.Providers.Dashboard(userID)
		if err != nil {
			fail(c, err)
			return
		}
		resp.OK(c, d)

	case entity.RoleCourier:
		d, err := dc.Delivery.Dashboard(userID)
		if err != nil {
			fail(c, err)
			return
		}
		resp.OK(c, d)

	case entity.RoleAdmin:
		pending, err := dc.Tiffins.ListPending()
		if err != nil {
			fail(c, err)
			return
		}
		resp.OK(c, gin.H{"pendingTiffins": pending, "pendingCount": len(pending)})

	default: // customer
		orders, err := dc.Orders.HistoryForUser(userID, entity.RoleCustomer)
		if err != nil {
			fail(c, err)
			return
		}
		if len(orders) > 5 {
			orders = orders[:5]
		}
		resp.OK(c, gin.H{"recentOrders": orders})
	}
}
