package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/jubleh/storefront-core/models"
)

// CatalogClient reads the product catalog. Only id, title, price,
// stock, images and category are consumed.
type CatalogClient struct {
	client *resty.Client
}

func NewCatalogClient(baseURL string) *CatalogClient {
	return &CatalogClient{
		client: resty.New().SetBaseURL(baseURL).SetTimeout(30 * time.Second),
	}
}

// ListProducts fetches the catalog, optionally filtered to one
// category slug.
func (c *CatalogClient) ListProducts(ctx context.Context, category string) ([]models.Product, error) {
	req := c.client.R().SetContext(ctx).SetHeader("Accept", "application/json")
	if category != "" {
		req.SetQueryParam("category", category)
	}

	resp, err := req.Get("/products")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrTransport, err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("%w: catalog returned status %d", models.ErrTransport, resp.StatusCode())
	}

	var products []models.Product
	if err := json.Unmarshal(resp.Body(), &products); err != nil {
		return nil, fmt.Errorf("%w: invalid catalog response: %v", models.ErrTransport, err)
	}
	return products, nil
}

// GetProduct returns one product by id, resolved through the list
// endpoint the catalog exposes.
func (c *CatalogClient) GetProduct(ctx context.Context, productID string) (models.Product, bool, error) {
	products, err := c.ListProducts(ctx, "")
	if err != nil {
		return models.Product{}, false, err
	}
	for _, p := range products {
		if p.ID == productID {
			return p, true, nil
		}
	}
	return models.Product{}, false, nil
}
