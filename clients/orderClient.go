package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/jubleh/storefront-core/models"
)

// OrderAPI is the boundary to the remote order-creation service. The
// amount it returns is authoritative and in the gateway's smallest
// currency unit; client-side totals are advisory only.
type OrderAPI interface {
	CreateOrder(ctx context.Context, req CreateOrderRequest) (models.Order, error)
	VerifyPayment(ctx context.Context, reference, orderID string) error
}

// CreateOrderRequest carries customer fields plus cart lines reduced
// to product id and quantity. Prices are deliberately absent.
type CreateOrderRequest struct {
	CustomerName    string      `json:"customerName"`
	CustomerEmail   string      `json:"customerEmail"`
	CustomerPhone   string      `json:"customerPhone"`
	ShippingAddress string      `json:"shippingAddress"`
	Items           []OrderItem `json:"items"`
	Shipping        int64       `json:"shipping"`
}

type OrderItem struct {
	ProductID string `json:"productId"`
	Qty       int    `json:"qty"`
}

type OrderAPIClient struct {
	client *resty.Client
}

func NewOrderAPIClient(baseURL string) *OrderAPIClient {
	return &OrderAPIClient{
		client: resty.New().SetBaseURL(baseURL).SetTimeout(30 * time.Second),
	}
}

func (c *OrderAPIClient) CreateOrder(ctx context.Context, req CreateOrderRequest) (models.Order, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetBody(req).
		Post("/orders")
	if err != nil {
		log.Printf("Order API error: %v", err)
		return models.Order{}, fmt.Errorf("%w: %v", models.ErrTransport, err)
	}
	if resp.StatusCode() != 200 && resp.StatusCode() != 201 {
		log.Printf("Order API returned status %d: %s", resp.StatusCode(), resp.Body())
		return models.Order{}, fmt.Errorf("%w: order creation failed with status %d", models.ErrTransport, resp.StatusCode())
	}

	var order models.Order
	if err := json.Unmarshal(resp.Body(), &order); err != nil {
		return models.Order{}, fmt.Errorf("%w: invalid order response: %v", models.ErrTransport, err)
	}
	if order.OrderID == "" || order.Amount <= 0 {
		return models.Order{}, fmt.Errorf("%w: incomplete order response", models.ErrTransport)
	}
	return order, nil
}

// VerifyPayment confirms a gateway-reported payment with the order
// service. The gateway callback is never trusted without this call.
func (c *OrderAPIClient) VerifyPayment(ctx context.Context, reference, orderID string) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetBody(map[string]string{
			"reference": reference,
			"orderId":   orderID,
		}).
		Post("/payments/verify")
	if err != nil {
		log.Printf("Verification error for order %s: %v", orderID, err)
		return fmt.Errorf("%w: %v", models.ErrVerification, err)
	}
	if resp.StatusCode() != 200 {
		log.Printf("Verification for order %s returned status %d: %s", orderID, resp.StatusCode(), resp.Body())
		return fmt.Errorf("%w: status %d", models.ErrVerification, resp.StatusCode())
	}
	return nil
}
