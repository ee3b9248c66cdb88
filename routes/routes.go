package routes

import (
	"github.com/Sandip-364710/daily-tiffin-service/configs"
	"github.com/Sandip-364710/daily-tiffin-service/controllers"
	"github.com/Sandip-364710/daily-tiffin-service/entity"
	"github.com/Sandip-364710/daily-tiffin-service/middlewares"
	"github.com/Sandip-364710/daily-tiffin-service/repository"
	"github.com/Sandip-364710/daily-tiffin-service/services"
	"github.com/Sandip-364710/daily-tiffin-service/ws"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	db := configs.DB()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	providerRepo := repository.NewProviderRepository(db)
	courierRepo := repository.NewCourierRepository(db)
	tiffinRepo := repository.NewTiffinRepository(db)
	savedCartRepo := repository.NewSavedCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	trackingRepo := repository.NewTrackingRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	cartSvc := services.NewCartService(savedCartRepo, tiffinRepo, providerRepo)
	orderSvc := services.NewOrderService(db, orderRepo, providerRepo, courierRepo, savedCartRepo, trackingRepo, cartSvc)
	providerSvc := services.NewProviderService(providerRepo, userRepo, courierRepo, tiffinRepo, orderRepo, reviewRepo)
	tiffinSvc := services.NewTiffinService(tiffinRepo, providerRepo)
	reviewSvc := services.NewReviewService(db, reviewRepo, tiffinRepo, orderRepo, providerRepo)
	analyticsSvc := services.NewAnalyticsService(analyticsRepo, tiffinRepo, providerRepo, userRepo)

	trackingHub := ws.NewTrackingHub()
	deliverySvc := services.NewDeliveryService(db, courierRepo, orderRepo, trackingRepo, providerRepo, trackingHub)
	trackingHub.SetDeliveryService(deliverySvc)
	go trackingHub.Run()

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc, cartSvc)
	providerCtrl := controllers.NewProviderController(providerSvc)
	tiffinCtrl := controllers.NewTiffinController(tiffinSvc, reviewSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	deliveryCtrl := controllers.NewDeliveryController(deliverySvc)
	reviewCtrl := controllers.NewReviewController(reviewSvc)
	analyticsCtrl := controllers.NewAnalyticsController(analyticsSvc)
	dashboardCtrl := controllers.NewDashboardController(orderSvc, providerSvc, deliverySvc, tiffinSvc)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}

	// Auth (protected)
	aAuth := a.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		aAuth.POST("/logout", authCtrl.Logout)
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PATCH("/me", authCtrl.UpdateProfile)
	}

	// Role-aware dashboard
	r.GET("/dashboard", middlewares.AuthMiddleware(cfg.JWTSecret), dashboardCtrl.Dashboard)

	// Public catalog
	r.GET("/tiffins", tiffinCtrl.List)
	r.GET("/tiffins/:id", tiffinCtrl.Get)
	r.GET("/tiffins/:id/reviews", reviewCtrl.ListForTiffin)

	// Cart (customer)
	cart := r.Group("/cart", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleCustomer))
	{
		cart.GET("", cartCtrl.View)
		cart.POST("/items/:tiffinId", cartCtrl.Add)
		cart.PATCH("/items/:tiffinId", cartCtrl.Update)
		cart.DELETE("/items/:tiffinId", cartCtrl.Remove)
	}

	// Orders
	customer := r.Group("/orders", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleCustomer))
	{
		customer.POST("/checkout", orderCtrl.Checkout)
		customer.PATCH("/:id/cancel", orderCtrl.Cancel)
		customer.POST("/:id/review", reviewCtrl.AddOrderReview)
		customer.GET("/:id/review", reviewCtrl.GetOrderReview)
	}
	orders := r.Group("/orders", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleCustomer, entity.RoleProvider))
	{
		orders.GET("", orderCtrl.History)
		orders.GET("/:id", orderCtrl.Detail)
		orders.GET("/:id/track", deliveryCtrl.Track)
	}

	// Item reviews (customer)
	r.POST("/tiffins/:id/reviews",
		middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleCustomer), reviewCtrl.AddItemReview)

	// Provider
	provider := r.Group("/provider", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleProvider))
	{
		provider.POST("/profile", providerCtrl.CreateProfile)
		provider.GET("/profile", providerCtrl.MyProfile)
		provider.PATCH("/profile", providerCtrl.UpdateProfile)
		provider.GET("/dashboard", providerCtrl.Dashboard)

		provider.GET("/tiffins", tiffinCtrl.ListMine)
		provider.POST("/tiffins", tiffinCtrl.Create)
		provider.PUT("/tiffins/:id", tiffinCtrl.Update)
		provider.PATCH("/tiffins/:id/availability", tiffinCtrl.ToggleAvailability)

		provider.POST("/couriers", providerCtrl.RegisterCourier)
		provider.GET("/couriers", providerCtrl.ListCouriers)

		provider.PATCH("/orders/:id/status", orderCtrl.UpdateStatus)
		provider.PATCH("/orders/:id/courier", orderCtrl.AssignCourier)
	}

	// Courier
	delivery := r.Group("/delivery", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleCourier))
	{
		delivery.GET("/dashboard", deliveryCtrl.Dashboard)
		delivery.PATCH("/availability", deliveryCtrl.SetAvailability)
		delivery.POST("/orders/:id/location", deliveryCtrl.UpdateLocation)
	}

	// Admin moderation
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleAdmin))
	{
		admin.GET("/tiffins/pending", tiffinCtrl.ListPending)
		admin.PATCH("/tiffins/:id/approve", tiffinCtrl.Approve)
	}

	// Analytics
	ai := r.Group("/ai")
	{
		ai.GET("/recommendations",
			middlewares.AuthMiddleware(cfg.JWTSecret), analyticsCtrl.Recommendations)
		ai.GET("/demand-prediction/:tiffinId",
			middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleProvider), analyticsCtrl.DemandPrediction)
		ai.GET("/customer-segmentation",
			middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleProvider), analyticsCtrl.CustomerSegmentation)
		ai.GET("/price-optimization/:tiffinId",
			middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleProvider), analyticsCtrl.PriceOptimization)
	}

	// Live tracking
	r.GET("/ws/orders/:id/track",
		middlewares.WSAuthMiddleware(cfg.JWTSecret), trackingHub.HandleWebSocket)
}
