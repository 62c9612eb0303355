package queries

import (
	"errors"

	"tableside/internal/pkg/errs"
	"tableside/internal/pkg/guard"
)

var (
	ErrGetVoucherBalanceQueryIsNotConstructed = errors.New(
		"GetVoucherBalanceQuery must be created via NewGetVoucherBalanceQuery constructor",
	)
)

// GetVoucherBalanceQuery retrieves a customer's current voucher balance.
type GetVoucherBalanceQuery struct { //nolint:recvcheck //using for validation
	customer string

	guard guard.ConstructorGuard
}

// NewGetVoucherBalanceQuery creates a balance query for a customer.
func NewGetVoucherBalanceQuery(customer string) (GetVoucherBalanceQuery, error) {
	if customer == "" {
		return GetVoucherBalanceQuery{}, errs.NewValueIsRequiredError("customer")
	}
	return GetVoucherBalanceQuery{customer: customer, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetVoucherBalanceQuery) Validate() error {
	return q.guard.Validate(ErrGetVoucherBalanceQueryIsNotConstructed)
}

// Customer returns the customer whose balance is requested.
func (q GetVoucherBalanceQuery) Customer() string {
	return q.customer
}
