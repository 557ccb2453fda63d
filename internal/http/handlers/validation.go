package handlers

import (
	"log"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators adds the custom binding rules used by request DTOs.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			log.Println("[VALIDATION] engine bukan go-playground/validator, rule custom dilewati")
			return
		}
		if err := v.RegisterValidation("notblank", notBlank); err != nil {
			log.Printf("[VALIDATION] gagal register notblank: %v", err)
		}
	})
}

// notBlank rejects strings made only of whitespace.
func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
