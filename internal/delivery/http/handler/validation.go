package handler

import (
	"fmt"

	"github.com/gdugdh24/matchcore/internal/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators installs the custom binding rules on gin's validator.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	if err := v.RegisterValidation("message_type", validateMessageType); err != nil {
		return fmt.Errorf("register message_type: %w", err)
	}
	if err := v.RegisterValidation("decision", validateDecision); err != nil {
		return fmt.Errorf("register decision: %w", err)
	}
	return nil
}

func validateMessageType(fl validator.FieldLevel) bool {
	return domain.MessageType(fl.Field().String()).Valid()
}

func validateDecision(fl validator.FieldLevel) bool {
	return domain.Decision(fl.Field().String()).Valid()
}
