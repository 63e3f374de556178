// Package validation binds request data and validates it.
//
// Struct tags are checked with go-playground/validator and failures are
// turned into field-level errors the client can act on.
package validation

import (
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var (
	once     sync.Once
	instance *validator.Validate
)

// Validator returns the shared validator with the custom tags registered.
//
//	notblank  rejects strings made only of whitespace
func Validator() *validator.Validate {
	once.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())
		if err := instance.RegisterValidation("notblank", validators.NotBlank); err != nil {
			panic(err)
		}
	})
	return instance
}
