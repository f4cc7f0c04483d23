package initializers

import (
	"log"
	"os"
	"strconv"
)

// Configuration accessors over the process environment. Defaults match
// the storefront's production values: KES currency, flat 5 KES
// shipping waived above a 10,000 KES subtotal.

func OrderAPIBaseURL() string {
	return os.Getenv("ORDER_API_BASE_URL")
}

func CatalogAPIBaseURL() string {
	if url := os.Getenv("CATALOG_API_BASE_URL"); url != "" {
		return url
	}
	return OrderAPIBaseURL()
}

func PaystackPublicKey() string {
	return os.Getenv("PAYSTACK_PUBLIC_KEY")
}

func PaystackSecretKey() string {
	return os.Getenv("PAYSTACK_SECRET_KEY")
}

func Currency() string {
	if c := os.Getenv("CHECKOUT_CURRENCY"); c != "" {
		return c
	}
	return "KES"
}

func ShippingFee() int64 {
	return envInt64("SHIPPING_FEE", 5)
}

func FreeShippingThreshold() int64 {
	return envInt64("FREE_SHIPPING_THRESHOLD", 10000)
}

func envInt64(key string, fallback int64) int64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Printf("Invalid %s=%q, using default %d", key, raw, fallback)
		return fallback
	}
	return value
}
