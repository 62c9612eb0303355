package commands

import (
	"errors"
	"fmt"

	"tableside/internal/core/domain/model/payment"
	"tableside/internal/pkg/errs"
	"tableside/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrProcessPaymentCommandIsNotConstructed = errors.New(
		"ProcessPaymentCommand must be created via NewProcessPaymentCommand constructor",
	)
)

// ProcessPaymentCommand is the customer request to settle the current
// order amount with a chosen method.
type ProcessPaymentCommand struct { //nolint:recvcheck //using for validation
	customer string
	method   payment.Method
	amount   decimal.Decimal

	guard guard.ConstructorGuard
}

// NewProcessPaymentCommand creates a payment request. The method must be
// one of the accepted payment methods and the amount must not be negative.
func NewProcessPaymentCommand(customer string, method payment.Method, amount decimal.Decimal) (ProcessPaymentCommand, error) {
	cmd := ProcessPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if customer == "" {
		return ProcessPaymentCommand{}, errs.NewValueIsRequiredError("customer")
	}
	if _, err := payment.MethodFromString(string(method)); err != nil {
		return ProcessPaymentCommand{}, err
	}
	if amount.IsNegative() {
		return ProcessPaymentCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s is negative", amount),
		)
	}

	cmd.customer = customer
	cmd.method = method
	cmd.amount = amount
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ProcessPaymentCommand) Validate() error {
	return c.guard.Validate(ErrProcessPaymentCommandIsNotConstructed)
}

// Customer returns the paying customer's login name.
func (c ProcessPaymentCommand) Customer() string {
	return c.customer
}

// Method returns the chosen payment method.
func (c ProcessPaymentCommand) Method() payment.Method {
	return c.method
}

// Amount returns the amount to settle.
func (c ProcessPaymentCommand) Amount() decimal.Decimal {
	return c.amount
}
