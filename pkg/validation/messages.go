package validation

import "github.com/go-playground/validator/v10"

func messageFor(fe validator.FieldError, label string) string {
	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "email":
		return "Invalid email"
	default:
		return label + " is invalid"
	}
}
