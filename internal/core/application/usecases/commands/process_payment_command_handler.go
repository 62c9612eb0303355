package commands

import (
	"context"

	"tableside/internal/core/domain/model/payment"
	"tableside/internal/core/ports"
)

// ProcessPaymentCommandHandler settles a payment against the customer's
// voucher balance. Settlement itself is the pure payment.Process function;
// the handler only loads the balance before and persists it after. On
// failure the balance is left unchanged and no retry is attempted.
type ProcessPaymentCommandHandler struct {
	voucherStore ports.VoucherStore
}

// NewProcessPaymentCommandHandler creates a handler for payments.
func NewProcessPaymentCommandHandler(voucherStore ports.VoucherStore) ProcessPaymentCommandHandler {
	return ProcessPaymentCommandHandler{voucherStore: voucherStore}
}

// Handle processes the payment and returns the settlement result.
func (h ProcessPaymentCommandHandler) Handle(ctx context.Context, cmd ProcessPaymentCommand) (payment.Result, error) {
	if err := cmd.Validate(); err != nil {
		return payment.Result{}, err
	}

	balance, err := h.voucherStore.Balance(ctx, cmd.Customer())
	if err != nil {
		return payment.Result{}, err
	}

	result, err := payment.Process(cmd.Method(), cmd.Amount(), balance)
	if err != nil {
		return payment.Result{}, err
	}

	if err = h.voucherStore.SetBalance(ctx, cmd.Customer(), result.Balance); err != nil {
		return payment.Result{}, err
	}
	return result, nil
}
