package http

import (
	"ayz-shop/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "ayz-shop/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// ShopService is everything the HTTP surface needs from the service
// layer. *service.Service satisfies it.
type ShopService interface {
	service.Checkout
	service.Orders
	service.Tracking
	service.Admin
}

type Handler struct {
	checkout service.Checkout
	orders   service.Orders
	tracking service.Tracking
	admin    service.Admin
}

func NewHandler(s ShopService) *Handler {
	return &Handler{checkout: s, orders: s, tracking: s, admin: s}
}

func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.Default()

	api := router.Group("/api")
	{
		checkout := api.Group("/checkout")
		{
			checkout.POST("/start", h.StartCheckout)
			checkout.POST("/contact", h.SetContact)
			checkout.POST("/address", h.SetAddress)
			checkout.POST("/shipping-method", h.SetShippingMethod)
			checkout.POST("/payment-method", h.SetPaymentMethod)
			checkout.POST("/place-order", h.PlaceOrder)
		}

		track := api.Group("/orders/track")
		{
			track.POST("/request-code", h.RequestTrackingCode)
			track.POST("/verify-code", h.VerifyTrackingCode)
			track.GET("/order", h.GetVerifiedOrder)
		}

		admin := api.Group("/admin/orders")
		{
			admin.GET("/deletion-access", h.DeletionAccess)
			admin.GET("/:id", h.GetOrder)
			admin.PATCH("/:id/status", h.UpdateOrderStatus)
			admin.DELETE("/:id", h.DeleteOrder)
			admin.POST("/bulk-delete", h.BulkDeleteOrders)
		}
	}

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}

// identity reads the caller as asserted by the upstream auth layer.
func identity(c *gin.Context) service.Identity {
	return service.Identity{
		UserID:     c.GetHeader("X-User-Id"),
		GuestToken: c.GetHeader("X-Guest-Token"),
	}
}

func adminCaller(c *gin.Context) service.AdminCaller {
	return service.AdminCaller{
		Email: c.GetHeader("X-Admin-Email"),
		Role:  c.GetHeader("X-Admin-Role"),
	}
}
