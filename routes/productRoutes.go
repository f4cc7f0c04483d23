package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/jubleh/storefront-core/controllers"
)

func ProductRoutes(server *gin.Engine, h *controllers.Handler) {
	server.GET("/products", h.GetProducts)
}
