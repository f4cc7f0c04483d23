package models

// PricingSnapshot is derived from the live cart on every read and is
// never persisted. Amounts are whole KES.
type PricingSnapshot struct {
	Subtotal     int64 `json:"subtotal"`
	ShippingCost int64 `json:"shippingCost"`
	Total        int64 `json:"total"`
	ItemCount    int   `json:"itemCount"`
}

// CheckoutForm is collected once per checkout visit and validated
// before any network call is made.
type CheckoutForm struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"required"`
	Address    string `json:"address" validate:"required"`
	City       string `json:"city" validate:"required"`
	PostalCode string `json:"postalCode"`
}

// ShippingAddress folds the address fields into the single line the
// Order API expects.
func (f CheckoutForm) ShippingAddress() string {
	addr := f.Address + ", " + f.City
	if f.PostalCode != "" {
		addr += ", " + f.PostalCode
	}
	return addr
}

// Order is the server-side purchase record. Amount is authoritative,
// computed by the Order API in the gateway's smallest currency unit;
// the client total is never a substitute for it.
type Order struct {
	OrderID string `json:"orderId"`
	Amount  int64  `json:"amount"`
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentConfirmed PaymentStatus = "CONFIRMED"
	PaymentAbandoned PaymentStatus = "ABANDONED"
	PaymentFailed    PaymentStatus = "FAILED"
)

// PaymentAttempt is one run through the gateway handoff. Reference is
// unique per attempt and never reused after abandonment.
type PaymentAttempt struct {
	Reference string        `json:"reference"`
	OrderID   string        `json:"orderId"`
	Amount    int64         `json:"amount"`
	Status    PaymentStatus `json:"status"`
}

type CheckoutState string

const (
	StateIdle               CheckoutState = "IDLE"
	StateFormInvalid        CheckoutState = "FORM_INVALID"
	StateSubmitting         CheckoutState = "SUBMITTING"
	StateOrderCreated       CheckoutState = "ORDER_CREATED"
	StatePaymentInitiated   CheckoutState = "PAYMENT_INITIATED"
	StateVerifying          CheckoutState = "VERIFYING"
	StateCompleted          CheckoutState = "COMPLETED"
	StateOrderFailed        CheckoutState = "ORDER_FAILED"
	StatePaymentAbandoned   CheckoutState = "PAYMENT_ABANDONED"
	StateVerificationFailed CheckoutState = "VERIFICATION_FAILED"
)

func (s CheckoutState) String() string {
	return string(s)
}

// InFlight reports whether a checkout is between submission and a
// terminal outcome; resubmission is refused while it holds.
func (s CheckoutState) InFlight() bool {
	switch s {
	case StateSubmitting, StateOrderCreated, StatePaymentInitiated, StateVerifying:
		return true
	}
	return false
}

// ManualOrderRequest is handed to the out-of-band order channel. It is
// advisory: no server Order exists for it and the cart stays intact.
type ManualOrderRequest struct {
	Form    CheckoutForm    `json:"form"`
	Lines   []CartLine      `json:"lines"`
	Pricing PricingSnapshot `json:"pricing"`
}
