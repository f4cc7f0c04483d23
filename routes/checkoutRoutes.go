package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/jubleh/storefront-core/controllers"
)

func CheckoutRoutes(server *gin.Engine, h *controllers.Handler) {
	checkout := server.Group("/checkout")
	{
		checkout.GET("", h.GetCheckoutState)
		checkout.POST("", h.SubmitCheckout)
		checkout.POST("/callback", h.PaymentCallback)
		checkout.POST("/close", h.PaymentClosed)
		checkout.POST("/retry", h.RetryPayment)
		checkout.POST("/manual", h.ManualOrder)
		checkout.GET("/confirmation", h.GetConfirmation)
	}
}
