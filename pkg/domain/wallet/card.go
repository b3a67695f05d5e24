package wallet

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Card carries the card and billing details attached by AddPaymentMethod.
type Card struct {
	Number      string `validate:"required,credit_card"`
	ExpMonth    int    `validate:"min=1,max=12"`
	ExpYear     int    `validate:"min=1000,max=9999"`
	CVV         string `validate:"required,numeric,min=3,max=4"`
	BillingName string `validate:"required"`
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func cardValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate
}

// Validate checks the card fields. Failures wrap ErrUsage.
func (c Card) Validate() error {
	if err := cardValidator().Struct(c); err != nil {
		return fmt.Errorf("%w: %s", ErrUsage, err.Error())
	}
	return nil
}

// Last4 returns the last four digits of the card number for display and logs.
func (c Card) Last4() string {
	n := strings.TrimSpace(c.Number)
	if len(n) <= 4 {
		return n
	}
	return n[len(n)-4:]
}
