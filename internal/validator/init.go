package validator

import (
	"ctchen222/tictactoe/internal/game"
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	// Initialize validation
	validate = validator.New(validator.WithRequiredStructEnabled())
	if err := RegisterRules(validate); err != nil {
		panic(err)
	}
}

func GetValidator() *validator.Validate {
	return validate
}

// RegisterRules adds the project's custom tags to v.
func RegisterRules(v *validator.Validate) error {
	if err := v.RegisterValidation("board", validBoard); err != nil {
		return fmt.Errorf("register board rule: %w", err)
	}
	return nil
}

// RegisterGinRules installs the custom tags on gin's binding validator.
func RegisterGinRules() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected gin validator engine %T", binding.Validator.Engine())
	}
	return RegisterRules(v)
}

// validBoard accepts the nine-character board form of a reachable position.
func validBoard(fl validator.FieldLevel) bool {
	b, err := game.ParseBoard(fl.Field().String())
	if err != nil {
		return false
	}
	return b.Validate() == nil
}
