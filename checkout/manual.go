package checkout

import (
	"context"

	"github.com/jubleh/storefront-core/models"
)

// ManualOrderChannel carries an advisory order to an out-of-band
// surface (the storefront's ops inbox, a messaging number). Message
// composition belongs to the channel, not to checkout.
type ManualOrderChannel interface {
	Send(ctx context.Context, req models.ManualOrderRequest) error
}

// ManualOrder hands the current cart and form to the out-of-band
// channel. It bypasses the order service and the payment gateway
// entirely: no server Order is created and the cart is never cleared,
// so the result is clearly distinguishable from a paid transaction.
func (o *Orchestrator) ManualOrder(ctx context.Context, form models.CheckoutForm) (models.ManualOrderRequest, error) {
	fieldErrors := validateForm(form)
	if len(fieldErrors) > 0 {
		return models.ManualOrderRequest{}, &models.ValidationError{Fields: fieldErrors}
	}

	snapshot := o.cart.Snapshot()
	if len(snapshot) == 0 {
		return models.ManualOrderRequest{}, models.ErrEmptyCart
	}

	req := models.ManualOrderRequest{
		Form:    form,
		Lines:   snapshot,
		Pricing: o.pricing.Snapshot(snapshot),
	}
	if err := o.manual.Send(ctx, req); err != nil {
		return models.ManualOrderRequest{}, err
	}
	return req, nil
}
