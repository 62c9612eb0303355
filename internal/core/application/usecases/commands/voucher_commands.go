package commands

import (
	"context"
	"errors"
	"fmt"

	"tableside/internal/core/ports"
	"tableside/internal/pkg/errs"
	"tableside/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrAddVoucherCommandIsNotConstructed = errors.New(
		"AddVoucherCommand must be created via NewAddVoucherCommand constructor",
	)
	ErrRecommendFriendCommandIsNotConstructed = errors.New(
		"RecommendFriendCommand must be created via NewRecommendFriendCommand constructor",
	)
)

// recommendationBonus is credited to the voucher balance for recommending
// a friend.
var recommendationBonus = decimal.NewFromInt(5)

// AddVoucherCommand tops up a customer's voucher balance.
type AddVoucherCommand struct { //nolint:recvcheck //using for validation
	customer string
	amount   decimal.Decimal

	guard guard.ConstructorGuard
}

// NewAddVoucherCommand creates a voucher top-up. The amount must be
// positive.
func NewAddVoucherCommand(customer string, amount decimal.Decimal) (AddVoucherCommand, error) {
	if customer == "" {
		return AddVoucherCommand{}, errs.NewValueIsRequiredError("customer")
	}
	if !amount.IsPositive() {
		return AddVoucherCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s is not greater than 0", amount),
		)
	}
	return AddVoucherCommand{customer: customer, amount: amount, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddVoucherCommand) Validate() error {
	return c.guard.Validate(ErrAddVoucherCommandIsNotConstructed)
}

// Customer returns the customer whose balance is topped up.
func (c AddVoucherCommand) Customer() string {
	return c.customer
}

// Amount returns the top-up amount.
func (c AddVoucherCommand) Amount() decimal.Decimal {
	return c.amount
}

// RecommendFriendCommand credits the fixed recommendation bonus to a
// customer's voucher balance.
type RecommendFriendCommand struct { //nolint:recvcheck //using for validation
	customer string

	guard guard.ConstructorGuard
}

// NewRecommendFriendCommand creates a recommendation bonus request.
func NewRecommendFriendCommand(customer string) (RecommendFriendCommand, error) {
	if customer == "" {
		return RecommendFriendCommand{}, errs.NewValueIsRequiredError("customer")
	}
	return RecommendFriendCommand{customer: customer, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c RecommendFriendCommand) Validate() error {
	return c.guard.Validate(ErrRecommendFriendCommandIsNotConstructed)
}

// Customer returns the recommending customer.
func (c RecommendFriendCommand) Customer() string {
	return c.customer
}

// VoucherCommandHandler mutates voucher balances: top-ups and the
// recommend-a-friend bonus.
type VoucherCommandHandler struct {
	voucherStore ports.VoucherStore
}

// NewVoucherCommandHandler creates a handler for voucher mutations.
func NewVoucherCommandHandler(voucherStore ports.VoucherStore) VoucherCommandHandler {
	return VoucherCommandHandler{voucherStore: voucherStore}
}

// HandleAddVoucher credits the top-up amount and returns the new balance.
func (h VoucherCommandHandler) HandleAddVoucher(ctx context.Context, cmd AddVoucherCommand) (decimal.Decimal, error) {
	if err := cmd.Validate(); err != nil {
		return decimal.Zero, err
	}
	return h.credit(ctx, cmd.Customer(), cmd.Amount())
}

// HandleRecommendFriend credits the recommendation bonus and returns the
// new balance.
func (h VoucherCommandHandler) HandleRecommendFriend(ctx context.Context, cmd RecommendFriendCommand) (decimal.Decimal, error) {
	if err := cmd.Validate(); err != nil {
		return decimal.Zero, err
	}
	return h.credit(ctx, cmd.Customer(), recommendationBonus)
}

func (h VoucherCommandHandler) credit(ctx context.Context, customer string, amount decimal.Decimal) (decimal.Decimal, error) {
	balance, err := h.voucherStore.Balance(ctx, customer)
	if err != nil {
		return decimal.Zero, err
	}

	newBalance := balance.Add(amount)
	if err = h.voucherStore.SetBalance(ctx, customer, newBalance); err != nil {
		return decimal.Zero, err
	}
	return newBalance, nil
}
