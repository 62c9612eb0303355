package queries

import (
	"context"

	"tableside/internal/core/ports"

	"github.com/shopspring/decimal"
)

// GetVoucherBalanceQueryHandler reads a voucher balance from the store.
// A customer without any recorded balance reads as zero.
type GetVoucherBalanceQueryHandler struct {
	voucherStore ports.VoucherStore
}

// NewGetVoucherBalanceQueryHandler creates a handler for balance queries.
func NewGetVoucherBalanceQueryHandler(voucherStore ports.VoucherStore) GetVoucherBalanceQueryHandler {
	return GetVoucherBalanceQueryHandler{voucherStore: voucherStore}
}

// Handle executes the query.
func (h GetVoucherBalanceQueryHandler) Handle(
	ctx context.Context,
	query GetVoucherBalanceQuery,
) (decimal.Decimal, error) {
	if err := query.Validate(); err != nil {
		return decimal.Zero, err
	}
	return h.voucherStore.Balance(ctx, query.Customer())
}
