package ports

import (
	"context"

	"github.com/shopspring/decimal"
)

// VoucherStore defines the storage contract for per-customer voucher
// balances. Balances exist only for the lifetime of the process.
type VoucherStore interface {
	// Balance retrieves a customer's voucher balance.
	// A customer without prior voucher activity has a zero balance.
	Balance(ctx context.Context, customer string) (decimal.Decimal, error)

	// SetBalance replaces a customer's voucher balance.
	SetBalance(ctx context.Context, customer string, balance decimal.Decimal) error
}
