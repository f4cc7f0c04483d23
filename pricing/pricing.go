package pricing

import "github.com/jubleh/storefront-core/models"

// Engine derives totals from a cart snapshot. It holds only
// configuration and never caches a result; staleness is avoided by
// recomputing on every read.
type Engine struct {
	ShippingFee           int64
	FreeShippingThreshold int64
}

func NewEngine(shippingFee, freeShippingThreshold int64) *Engine {
	return &Engine{
		ShippingFee:           shippingFee,
		FreeShippingThreshold: freeShippingThreshold,
	}
}

func (e *Engine) Subtotal(lines []models.CartLine) int64 {
	var subtotal int64
	for _, line := range lines {
		subtotal += line.LineTotal()
	}
	return subtotal
}

func (e *Engine) ItemCount(lines []models.CartLine) int {
	count := 0
	for _, line := range lines {
		qty := line.Quantity
		if qty < 1 {
			qty = 1
		}
		count += qty
	}
	return count
}

// ShippingCost is waived strictly above the free-shipping threshold.
func (e *Engine) ShippingCost(subtotal int64) int64 {
	if subtotal > e.FreeShippingThreshold {
		return 0
	}
	return e.ShippingFee
}

func (e *Engine) Total(lines []models.CartLine) int64 {
	subtotal := e.Subtotal(lines)
	return subtotal + e.ShippingCost(subtotal)
}

// FreeShippingGap reports how much more the subtotal needs before
// shipping is waived; 0 once the threshold is passed.
func (e *Engine) FreeShippingGap(subtotal int64) int64 {
	if subtotal > e.FreeShippingThreshold {
		return 0
	}
	return e.FreeShippingThreshold - subtotal
}

func (e *Engine) Snapshot(lines []models.CartLine) models.PricingSnapshot {
	subtotal := e.Subtotal(lines)
	shipping := e.ShippingCost(subtotal)
	return models.PricingSnapshot{
		Subtotal:     subtotal,
		ShippingCost: shipping,
		Total:        subtotal + shipping,
		ItemCount:    e.ItemCount(lines),
	}
}
