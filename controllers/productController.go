package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetProducts proxies the catalog read API, optionally filtered by
// category slug.
func (h *Handler) GetProducts(ctx *gin.Context) {
	products, err := h.Catalog.ListProducts(ctx.Request.Context(), ctx.Query("category"))
	if err != nil {
		log.Println("Catalog error:", err)
		sendErrorResponse(ctx, http.StatusBadGateway, msgCatalogUnavailable)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"products": products})
}
