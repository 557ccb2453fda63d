package utils

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// IsEmail reports whether s is a bare address. Display-name forms such as
// "Siti <siti@example.com>" are rejected so stored emails stay comparable.
func IsEmail(s string) bool {
	return validate.Var(s, "required,email") == nil
}
