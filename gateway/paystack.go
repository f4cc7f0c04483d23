package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/jubleh/storefront-core/models"
)

const paystackBaseURL = "https://api.paystack.co"

// PaystackGateway initializes transactions against the Paystack REST
// API and hands the authorization URL back to the host.
type PaystackGateway struct {
	client    *resty.Client
	secretKey string
}

func NewPaystackGateway(secretKey string) *PaystackGateway {
	return NewPaystackGatewayWithBaseURL(secretKey, paystackBaseURL)
}

func NewPaystackGatewayWithBaseURL(secretKey, baseURL string) *PaystackGateway {
	return &PaystackGateway{
		client:    resty.New().SetBaseURL(baseURL).SetTimeout(30 * time.Second),
		secretKey: secretKey,
	}
}

func (g *PaystackGateway) Initiate(ctx context.Context, req InitRequest) (Handoff, error) {
	if g.secretKey == "" {
		return Handoff{}, fmt.Errorf("%w: paystack secret key is not set", models.ErrGatewayUnavailable)
	}

	body := map[string]any{
		"email":     req.Email,
		"amount":    req.Amount,
		"currency":  req.Currency,
		"reference": req.Reference,
		"metadata":  req.Metadata,
	}

	resp, err := g.client.R().
		SetContext(ctx).
		SetHeaders(map[string]string{
			"Authorization": "Bearer " + g.secretKey,
			"Accept":        "application/json",
			"Content-Type":  "application/json",
		}).
		SetBody(body).
		Post("/transaction/initialize")
	if err != nil || resp.StatusCode() != 200 {
		log.Printf("Paystack error: %v, response: %s", err, resp.Body())
		return Handoff{}, fmt.Errorf("%w: failed to initialize transaction", models.ErrGatewayUnavailable)
	}

	var paystackResp struct {
		Status bool `json:"status"`
		Data   struct {
			AuthorizationURL string `json:"authorization_url"`
			AccessCode       string `json:"access_code"`
			Reference        string `json:"reference"`
		} `json:"data"`
	}
	if err := json.Unmarshal(resp.Body(), &paystackResp); err != nil {
		return Handoff{}, fmt.Errorf("%w: invalid response from payment gateway", models.ErrGatewayUnavailable)
	}
	if !paystackResp.Status || paystackResp.Data.AuthorizationURL == "" {
		return Handoff{}, fmt.Errorf("%w: incomplete response from payment gateway", models.ErrGatewayUnavailable)
	}

	return Handoff{
		AuthorizationURL: paystackResp.Data.AuthorizationURL,
		AccessCode:       paystackResp.Data.AccessCode,
	}, nil
}
