package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetHome(ctx *gin.Context) {
	message := `Welcome to the Jubleh storefront core ❤️.

The following are the endpoints for this service:

PRODUCTS
- GET "/products" - List catalog products
- GET "/products?category={slug}" - List products in a category

CART
- GET "/cart" - Current cart with pricing
- POST "/cart/items" - Add a product to the cart
- PATCH "/cart/items/:productId" - Update a line quantity
- DELETE "/cart/items/:productId" - Remove a line

CHECKOUT
- GET "/checkout" - Current checkout state
- POST "/checkout" - Submit the checkout form and start payment
- POST "/checkout/callback" - Gateway success callback
- POST "/checkout/close" - Gateway close signal
- POST "/checkout/retry" - Retry payment after abandonment
- POST "/checkout/manual" - Send the order via the manual channel
- GET "/checkout/confirmation" - Confirmation for the completed order`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
