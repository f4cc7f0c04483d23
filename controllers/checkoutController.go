package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jubleh/storefront-core/middlewares"
	"github.com/jubleh/storefront-core/models"
)

type callbackRequest struct {
	Reference string `json:"reference" binding:"required"`
}

func (h *Handler) GetCheckoutState(ctx *gin.Context) {
	session := middlewares.SessionFrom(ctx)
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"state":       session.Checkout.State(),
		"fieldErrors": session.Checkout.FieldErrors(),
	})
}

// SubmitCheckout drives validation, order creation and payment
// initiation, returning the gateway authorization URL on success.
func (h *Handler) SubmitCheckout(ctx *gin.Context) {
	var form models.CheckoutForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		log.Println("Bind error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	session := middlewares.SessionFrom(ctx)
	handoff, err := session.Checkout.Submit(ctx.Request.Context(), form)
	if err != nil {
		respondCheckoutError(ctx, err)
		return
	}

	attempt := session.Checkout.CurrentAttempt()
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message":          "Order created successfully. Redirect user to payment.",
		"authorizationUrl": handoff.AuthorizationURL,
		"reference":        attempt.Reference,
		"orderId":          attempt.OrderID,
		"state":            session.Checkout.State(),
	})
}

// PaymentCallback is the gateway's asynchronous success signal. The
// reference is verified with the order service before anything is
// trusted.
func (h *Handler) PaymentCallback(ctx *gin.Context) {
	var req callbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	session := middlewares.SessionFrom(ctx)
	if err := session.Checkout.HandleGatewaySuccess(ctx.Request.Context(), req.Reference); err != nil {
		if errors.Is(err, models.ErrVerification) {
			attempt := session.Checkout.CurrentAttempt()
			sendJSONResponse(ctx, http.StatusBadGateway, gin.H{
				"message": msgVerificationFailed,
				"orderId": attempt.OrderID,
				"state":   session.Checkout.State(),
			})
			return
		}
		sendErrorResponse(ctx, http.StatusConflict, err.Error())
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Payment confirmed",
		"orderId": session.Checkout.ConfirmedOrderID(),
		"state":   session.Checkout.State(),
	})
}

// PaymentClosed is the gateway's close signal: no payment happened.
func (h *Handler) PaymentClosed(ctx *gin.Context) {
	session := middlewares.SessionFrom(ctx)
	session.Checkout.HandleGatewayClose()
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": msgPaymentWindowClosed,
		"state":   session.Checkout.State(),
	})
}

// RetryPayment re-enters payment initiation with a fresh reference
// after the customer abandoned the gateway UI.
func (h *Handler) RetryPayment(ctx *gin.Context) {
	session := middlewares.SessionFrom(ctx)
	handoff, err := session.Checkout.RetryPayment(ctx.Request.Context())
	if err != nil {
		respondCheckoutError(ctx, err)
		return
	}

	attempt := session.Checkout.CurrentAttempt()
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"authorizationUrl": handoff.AuthorizationURL,
		"reference":        attempt.Reference,
		"state":            session.Checkout.State(),
	})
}

// ManualOrder sends the cart through the out-of-band channel instead
// of the paid flow. The cart stays intact.
func (h *Handler) ManualOrder(ctx *gin.Context) {
	var form models.CheckoutForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	session := middlewares.SessionFrom(ctx)
	req, err := session.Checkout.ManualOrder(ctx.Request.Context(), form)
	if err != nil {
		respondCheckoutError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": msgManualOrderSubmitted,
		"pricing": req.Pricing,
	})
}

func (h *Handler) GetConfirmation(ctx *gin.Context) {
	session := middlewares.SessionFrom(ctx)
	orderID := session.Checkout.ConfirmedOrderID()
	if orderID == "" {
		sendErrorResponse(ctx, http.StatusNotFound, msgNoConfirmedOrder)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"orderId": orderID})
}

func respondCheckoutError(ctx *gin.Context, err error) {
	var invalid *models.ValidationError
	switch {
	case errors.As(err, &invalid):
		sendJSONResponse(ctx, http.StatusBadRequest, gin.H{
			"message": invalid.Error(),
			"errors":  invalid.Fields,
		})
	case errors.Is(err, models.ErrEmptyCart):
		sendErrorResponse(ctx, http.StatusBadRequest, msgCartEmpty)
	case errors.Is(err, models.ErrCheckoutInProgress):
		sendErrorResponse(ctx, http.StatusConflict, msgCheckoutInProgress)
	case errors.Is(err, models.ErrGatewayUnavailable):
		sendErrorResponse(ctx, http.StatusServiceUnavailable, msgGatewayUnavailable)
	case errors.Is(err, models.ErrTransport):
		sendErrorResponse(ctx, http.StatusBadGateway, msgOrderRetryable)
	default:
		log.Println("Checkout error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgOrderRetryable)
	}
}
