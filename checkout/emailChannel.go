package checkout

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/jubleh/storefront-core/models"
	"github.com/jubleh/storefront-core/utils"
)

// EmailOrderChannel delivers manual orders to the storefront's ops
// inbox. The template at TemplatePath owns the human-readable wording;
// it receives the ManualOrderRequest as its data.
type EmailOrderChannel struct {
	Recipient    string
	TemplatePath string
}

func (c *EmailOrderChannel) Send(ctx context.Context, req models.ManualOrderRequest) error {
	tmpl, err := template.ParseFiles(c.TemplatePath)
	if err != nil {
		return fmt.Errorf("template parse error: %w", err)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, req); err != nil {
		return fmt.Errorf("template execution error: %w", err)
	}

	subject := fmt.Sprintf("Manual order from %s (%d items)", req.Form.Name, req.Pricing.ItemCount)
	return utils.SendEmail(c.Recipient, subject, body.String())
}
