package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/jubleh/storefront-core/controllers"
)

func CartRoutes(server *gin.Engine, h *controllers.Handler) {
	server.GET("/cart", h.GetCart)
	server.POST("/cart/items", h.AddCartItem)
	server.PATCH("/cart/items/:productId", h.UpdateCartItem)
	server.DELETE("/cart/items/:productId", h.RemoveCartItem)
}
