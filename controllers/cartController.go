package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jubleh/storefront-core/middlewares"
)

type addItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Qty       int    `json:"qty"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// GetCart returns the cart view: current lines plus a freshly derived
// pricing snapshot and the remaining gap to free shipping.
func (h *Handler) GetCart(ctx *gin.Context) {
	session := middlewares.SessionFrom(ctx)
	lines := session.Cart.Snapshot()
	snapshot := h.Pricing.Snapshot(lines)

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"lines":           lines,
		"pricing":         snapshot,
		"freeShippingGap": h.Pricing.FreeShippingGap(snapshot.Subtotal),
	})
}

func (h *Handler) AddCartItem(ctx *gin.Context) {
	var req addItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Println("Bind error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	if req.Qty < 1 {
		req.Qty = 1
	}

	product, found, err := h.Catalog.GetProduct(ctx.Request.Context(), req.ProductID)
	if err != nil {
		log.Println("Catalog error:", err)
		sendErrorResponse(ctx, http.StatusBadGateway, msgCatalogUnavailable)
		return
	}
	if !found {
		sendErrorResponse(ctx, http.StatusNotFound, msgProductNotFound)
		return
	}
	if product.Stock < req.Qty {
		sendErrorResponse(ctx, http.StatusBadRequest, msgOutOfStock)
		return
	}

	session := middlewares.SessionFrom(ctx)
	session.Cart.AddItem(product, req.Qty)

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message":  product.Title + " added to cart",
		"quantity": session.Cart.ItemQuantity(product.ID),
	})
}

func (h *Handler) UpdateCartItem(ctx *gin.Context) {
	var req updateQuantityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Println("Bind error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	session := middlewares.SessionFrom(ctx)
	session.Cart.UpdateQuantity(ctx.Param("productId"), req.Quantity)

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Cart updated",
		"lines":   session.Cart.Snapshot(),
	})
}

func (h *Handler) RemoveCartItem(ctx *gin.Context) {
	session := middlewares.SessionFrom(ctx)
	session.Cart.RemoveItem(ctx.Param("productId"))

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Item removed from cart",
		"lines":   session.Cart.Snapshot(),
	})
}
