// Package payment provides the voucher-based payment stub. Processing is a
// pure function over the caller-supplied balance; no settlement, retry or
// persistence happens here.
package payment

import (
	"errors"
	"fmt"

	"tableside/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrInsufficientVoucherBalance is returned when a voucher payment
	// exceeds the available balance.
	ErrInsufficientVoucherBalance = errors.New("insufficient voucher balance")

	// ErrInvalidPaymentMethod is returned for a method outside the closed
	// set of accepted methods.
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
)

// Method identifies how a customer pays. Only the listed constants are
// accepted; anything else fails with ErrInvalidPaymentMethod.
type Method string

const (
	// MethodMyUsual charges the customer's usual payment method on file.
	MethodMyUsual Method = "myUsual"

	// MethodCash settles in cash at the table.
	MethodCash Method = "cash"

	// MethodCard settles by card at the table.
	MethodCard Method = "card"

	// MethodVoucher deducts from the in-memory voucher balance.
	MethodVoucher Method = "voucher"
)

// MethodFromString resolves a method name to its Method value.
func MethodFromString(name string) (Method, error) {
	switch Method(name) {
	case MethodMyUsual, MethodCash, MethodCard, MethodVoucher:
		return Method(name), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPaymentMethod, name)
	}
}

// Result is the outcome of a successful payment. Balance carries the
// voucher balance after processing; for non-voucher methods it equals the
// supplied balance.
type Result struct {
	Method  Method
	Message string
	Balance decimal.Decimal
}

// Process settles a payment of amount with the given method against the
// supplied voucher balance.
//
//   - voucher: succeeds iff balance >= amount, deducting amount
//   - myUsual, cash, card: always succeed, balance untouched
//   - any other method: fails with ErrInvalidPaymentMethod
//
// A negative amount is rejected before any method handling. On failure the
// returned Result is the zero value and the caller's balance is to be kept
// unchanged.
func Process(method Method, amount, balance decimal.Decimal) (Result, error) {
	if amount.IsNegative() {
		return Result{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s is negative", amount),
		)
	}

	switch method {
	case MethodVoucher:
		if balance.LessThan(amount) {
			return Result{}, ErrInsufficientVoucherBalance
		}
		return Result{
			Method:  method,
			Message: "Payment successful using voucher.",
			Balance: balance.Sub(amount),
		}, nil
	case MethodMyUsual:
		return Result{Method: method, Message: "Payment successful using your usual method.", Balance: balance}, nil
	case MethodCash:
		return Result{Method: method, Message: "Cash payment received.", Balance: balance}, nil
	case MethodCard:
		return Result{Method: method, Message: "Card payment processed successfully.", Balance: balance}, nil
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrInvalidPaymentMethod, method)
	}
}
