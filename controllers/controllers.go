package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/jubleh/storefront-core/clients"
	"github.com/jubleh/storefront-core/pricing"
)

const (
	msgInvalidInput         = "Invalid request body"
	msgProductNotFound      = "Product not found"
	msgOutOfStock           = "The required quantity is not in stock"
	msgCatalogUnavailable   = "Unable to fetch products"
	msgCheckoutInProgress   = "A checkout is already in progress"
	msgCartEmpty            = "Your cart is empty"
	msgOrderRetryable       = "An error occurred during checkout. Please try again."
	msgGatewayUnavailable   = "Payment service not loaded. Please refresh the page."
	msgVerificationFailed   = "Payment verification failed. Please contact support."
	msgPaymentWindowClosed  = "Payment window closed. You can try again."
	msgNoConfirmedOrder     = "No completed order for this session"
	msgManualOrderSubmitted = "Order sent. We will confirm availability shortly."
)

// Handler carries the shared collaborators; per-visitor state (cart,
// checkout) rides on the session middleware instead.
type Handler struct {
	Catalog *clients.CatalogClient
	Pricing *pricing.Engine
}

func NewHandler(catalog *clients.CatalogClient, pricingEngine *pricing.Engine) *Handler {
	return &Handler{Catalog: catalog, Pricing: pricingEngine}
}

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}
