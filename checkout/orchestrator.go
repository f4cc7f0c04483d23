package checkout

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/jubleh/storefront-core/cart"
	"github.com/jubleh/storefront-core/clients"
	"github.com/jubleh/storefront-core/gateway"
	"github.com/jubleh/storefront-core/models"
	"github.com/jubleh/storefront-core/pricing"
)

const referencePrefix = "JUBLEH"

// Orchestrator drives one session's checkout: order creation, payment
// handoff, asynchronous gateway signals and verification. The cart is
// snapshotted at submission time, so edits from another tab only
// affect future checkouts. Clearing the cart happens in exactly one
// place: after verification succeeds.
type Orchestrator struct {
	cart    *cart.Store
	pricing *pricing.Engine
	orders  clients.OrderAPI
	gateway gateway.PaymentGateway
	manual  ManualOrderChannel

	publicKey string
	currency  string

	mu               sync.Mutex
	state            models.CheckoutState
	form             models.CheckoutForm
	fieldErrors      map[string]string
	snapshot         []models.CartLine
	order            models.Order
	attempt          *models.PaymentAttempt
	confirmedOrderID string
}

func NewOrchestrator(
	cartStore *cart.Store,
	pricingEngine *pricing.Engine,
	orders clients.OrderAPI,
	paymentGateway gateway.PaymentGateway,
	manual ManualOrderChannel,
	publicKey string,
	currency string,
) *Orchestrator {
	return &Orchestrator{
		cart:      cartStore,
		pricing:   pricingEngine,
		orders:    orders,
		gateway:   paymentGateway,
		manual:    manual,
		publicKey: publicKey,
		currency:  currency,
		state:     models.StateIdle,
	}
}

func (o *Orchestrator) State() models.CheckoutState {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// FieldErrors returns the per-field messages from the last failed
// validation.
func (o *Orchestrator) FieldErrors() map[string]string {
	o.mu.Lock()
	defer o.mu.Unlock()
	copied := make(map[string]string, len(o.fieldErrors))
	for field, msg := range o.fieldErrors {
		copied[field] = msg
	}
	return copied
}

// ConfirmedOrderID identifies the completed order for the
// confirmation view; empty until the checkout completes.
func (o *Orchestrator) ConfirmedOrderID() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.confirmedOrderID
}

// CurrentAttempt exposes the active payment attempt, or nil.
func (o *Orchestrator) CurrentAttempt() *models.PaymentAttempt {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.attempt == nil {
		return nil
	}
	copied := *o.attempt
	return &copied
}

// Submit runs steps one through three of the checkout: local
// validation, order creation and payment initiation. It returns the
// gateway handoff the host sends the customer to.
func (o *Orchestrator) Submit(ctx context.Context, form models.CheckoutForm) (gateway.Handoff, error) {
	o.mu.Lock()
	if o.state.InFlight() {
		o.mu.Unlock()
		return gateway.Handoff{}, models.ErrCheckoutInProgress
	}

	fieldErrors := validateForm(form)
	if len(fieldErrors) > 0 {
		o.state = models.StateFormInvalid
		o.fieldErrors = fieldErrors
		o.mu.Unlock()
		return gateway.Handoff{}, &models.ValidationError{Fields: fieldErrors}
	}

	snapshot := o.cart.Snapshot()
	if len(snapshot) == 0 {
		o.mu.Unlock()
		return gateway.Handoff{}, models.ErrEmptyCart
	}

	o.state = models.StateSubmitting
	o.form = form
	o.fieldErrors = nil
	o.snapshot = snapshot
	shipping := o.pricing.ShippingCost(o.pricing.Subtotal(snapshot))
	o.mu.Unlock()

	items := make([]clients.OrderItem, 0, len(snapshot))
	for _, line := range snapshot {
		items = append(items, clients.OrderItem{ProductID: line.ProductID, Qty: line.Quantity})
	}

	order, err := o.orders.CreateOrder(ctx, clients.CreateOrderRequest{
		CustomerName:    form.Name,
		CustomerEmail:   form.Email,
		CustomerPhone:   form.Phone,
		ShippingAddress: form.ShippingAddress(),
		Items:           items,
		Shipping:        shipping,
	})

	o.mu.Lock()
	if err != nil {
		// Retryable: the form stays filled and the cart is untouched.
		o.state = models.StateIdle
		o.mu.Unlock()
		return gateway.Handoff{}, err
	}
	o.state = models.StateOrderCreated
	o.order = order
	o.mu.Unlock()

	return o.initiatePayment(ctx)
}

// RetryPayment starts a fresh payment attempt for the already-created
// order, after abandonment or a gateway initialization failure. The
// previous reference is never reused.
func (o *Orchestrator) RetryPayment(ctx context.Context) (gateway.Handoff, error) {
	o.mu.Lock()
	switch o.state {
	case models.StatePaymentAbandoned, models.StateOrderCreated:
	default:
		o.mu.Unlock()
		return gateway.Handoff{}, fmt.Errorf("no payment to retry in state %s", o.state)
	}
	o.mu.Unlock()

	return o.initiatePayment(ctx)
}

func (o *Orchestrator) initiatePayment(ctx context.Context) (gateway.Handoff, error) {
	o.mu.Lock()
	order := o.order
	form := o.form
	reference := buildReference(order.OrderID)
	o.mu.Unlock()

	handoff, err := o.gateway.Initiate(ctx, gateway.InitRequest{
		PublicKey: o.publicKey,
		Email:     form.Email,
		Amount:    order.Amount,
		Currency:  o.currency,
		Reference: reference,
		Metadata: map[string]any{
			"orderId":         order.OrderID,
			"customerName":    form.Name,
			"customerPhone":   form.Phone,
			"shippingAddress": form.Address + ", " + form.City,
		},
	})

	o.mu.Lock()
	defer o.mu.Unlock()
	if err != nil {
		log.Printf("Payment initiation failed for order %s: %v", order.OrderID, err)
		o.state = models.StateOrderCreated
		return gateway.Handoff{}, err
	}

	o.attempt = &models.PaymentAttempt{
		Reference: reference,
		OrderID:   order.OrderID,
		Amount:    order.Amount,
		Status:    models.PaymentPending,
	}
	o.state = models.StatePaymentInitiated
	return handoff, nil
}

// HandleGatewaySuccess is the gateway's asynchronous success signal.
// The reported reference is never trusted as final; a synchronous
// verification round-trip decides the outcome. Verification failures
// are terminal here and must be reconciled by a human, because the
// charge may have gone through without a matching order record.
func (o *Orchestrator) HandleGatewaySuccess(ctx context.Context, reference string) error {
	o.mu.Lock()
	if o.state != models.StatePaymentInitiated || o.attempt == nil {
		o.mu.Unlock()
		return fmt.Errorf("unexpected gateway callback in state %s", o.state)
	}
	if reference != o.attempt.Reference {
		o.mu.Unlock()
		log.Printf("Gateway callback reference %q does not match active attempt", reference)
		return fmt.Errorf("unknown payment reference")
	}
	o.state = models.StateVerifying
	orderID := o.attempt.OrderID
	o.mu.Unlock()

	err := o.orders.VerifyPayment(ctx, reference, orderID)

	o.mu.Lock()
	defer o.mu.Unlock()
	if err != nil {
		o.state = models.StateVerificationFailed
		o.attempt.Status = models.PaymentFailed
		return fmt.Errorf("order %s: %w", orderID, err)
	}

	// The only point in the whole flow where the cart may be cleared.
	o.cart.Clear()
	o.attempt.Status = models.PaymentConfirmed
	o.confirmedOrderID = orderID
	o.form = models.CheckoutForm{}
	o.state = models.StateCompleted
	return nil
}

// HandleGatewayClose is the gateway's close signal: the customer left
// the payment UI before any callback fired. Abandonment is a normal
// terminal state, not an error; the cart is preserved and a retry
// starts over with a fresh reference.
func (o *Orchestrator) HandleGatewayClose() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.state != models.StatePaymentInitiated {
		return
	}
	o.attempt.Status = models.PaymentAbandoned
	o.state = models.StatePaymentAbandoned
}

func buildReference(orderID string) string {
	return fmt.Sprintf("%s_%s_%s", referencePrefix, orderID, uuid.NewString())
}
