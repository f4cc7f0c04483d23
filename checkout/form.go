package checkout

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/jubleh/storefront-core/models"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateForm returns per-field messages keyed by the form's JSON
// field names. An empty map means the form is valid.
func validateForm(form models.CheckoutForm) map[string]string {
	fieldErrors := make(map[string]string)

	err := validate.Struct(form)
	if err == nil {
		return fieldErrors
	}

	var invalid validator.ValidationErrors
	if !errors.As(err, &invalid) {
		fieldErrors["form"] = "Invalid checkout form"
		return fieldErrors
	}

	for _, fe := range invalid {
		switch fe.Field() {
		case "Name":
			fieldErrors["name"] = "Full name is required"
		case "Email":
			if fe.Tag() == "email" {
				fieldErrors["email"] = "Email is invalid"
			} else {
				fieldErrors["email"] = "Email is required"
			}
		case "Phone":
			fieldErrors["phone"] = "Phone number is required"
		case "Address":
			fieldErrors["address"] = "Shipping address is required"
		case "City":
			fieldErrors["city"] = "City is required"
		}
	}
	return fieldErrors
}
