package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/jubleh/storefront-core/controllers"
)

func DefaultRoutes(server *gin.Engine, h *controllers.Handler) {
	server.GET("/", h.GetHome)
}
