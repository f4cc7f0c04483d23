package models

import "time"

// Product is the catalog shape consumed from the read API. Only the
// fields the cart and checkout flows touch are unmarshalled.
type Product struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Price    int64    `json:"price"`
	Stock    int      `json:"stock"`
	Images   []string `json:"images"`
	Category string   `json:"category"`
}

// FirstImage returns the product's lead image URL, or "" when the
// catalog carries none.
func (p Product) FirstImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

type CartLine struct {
	ProductID string    `json:"productId"`
	Title     string    `json:"title"`
	UnitPrice int64     `json:"unitPrice"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"addedAt"`
	ImageRef  string    `json:"imageRef"`
}

// LineTotal tolerates malformed lines the same way pricing does:
// a missing price counts as 0, a missing quantity as 1.
func (l CartLine) LineTotal() int64 {
	qty := l.Quantity
	if qty < 1 {
		qty = 1
	}
	price := l.UnitPrice
	if price < 0 {
		price = 0
	}
	return price * int64(qty)
}

const (
	// MaxLineQuantity caps any single cart line.
	MaxLineQuantity = 99

	// CartStorageKey is the fixed key the serialized cart lives under
	// in the profile-local store.
	CartStorageKey = "jubleh_cart"
)
