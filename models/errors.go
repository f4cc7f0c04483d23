package models

import "errors"

// Error taxonomy for the checkout flow. Callers branch with errors.Is;
// only verification failures escalate to a human (support + orderId),
// and no error path clears the cart.
var (
	// ErrTransport covers an unreachable or non-2xx Order API. The
	// form stays filled and the submission may be retried.
	ErrTransport = errors.New("order service unavailable, try again")

	// ErrGatewayUnavailable means the payment gateway could not be
	// initialized at all; the user is told to refresh.
	ErrGatewayUnavailable = errors.New("payment service not loaded, refresh and try again")

	// ErrVerification means the gateway reported success but the
	// confirmation call failed. Money may have moved, so this is never
	// auto-retried.
	ErrVerification = errors.New("payment verification failed, contact support")

	// ErrCheckoutInProgress rejects a resubmission while a checkout is
	// between submission and a terminal state.
	ErrCheckoutInProgress = errors.New("a checkout is already in progress")

	// ErrEmptyCart rejects checkout over an empty cart.
	ErrEmptyCart = errors.New("cart is empty")
)

// ValidationError carries per-field messages for a checkout form that
// failed local validation. It never reaches the network.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "checkout form is invalid"
}
