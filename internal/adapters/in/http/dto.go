package http

import (
	"time"

	"github.com/shopspring/decimal"
)

// Hand-written wire types. The facade is small enough that generated
// bindings would cost more than they save.

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// LoginRequest carries demo credentials.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the authenticated identity and its session token.
type LoginResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	Token    string `json:"token"`
}

// OrderResponse is one render-ready order view.
type OrderResponse struct {
	ID              int      `json:"id"`
	Table           int      `json:"table"`
	Items           []string `json:"items"`
	Status          string   `json:"status"`
	Progress        int      `json:"progress"`
	Color           string   `json:"color"`
	NextActionLabel string   `json:"nextActionLabel"`
	CanPrepare      bool     `json:"canPrepare"`
}

// MenuItemResponse is one menu item view.
type MenuItemResponse struct {
	ID      int             `json:"id"`
	Name    string          `json:"name"`
	Price   decimal.Decimal `json:"price"`
	InStock bool            `json:"inStock"`
}

// WaiterNotificationResponse is one ready-order alert.
type WaiterNotificationResponse struct {
	ID        string    `json:"id"`
	OrderID   int       `json:"orderId"`
	Table     int       `json:"table"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableCallResponse is one open assistance request.
type TableCallResponse struct {
	ID    string    `json:"id"`
	Table int       `json:"table"`
	Time  time.Time `json:"time"`
}

// NotificationsResponse bundles both alert kinds.
type NotificationsResponse struct {
	Orders []WaiterNotificationResponse `json:"orders"`
	Calls  []TableCallResponse          `json:"calls"`
}

// TableCallRequest asks for waiter assistance at a table.
type TableCallRequest struct {
	Table int `json:"table"`
}

// PaymentRequest settles an amount with a chosen method.
type PaymentRequest struct {
	Method string          `json:"method"`
	Amount decimal.Decimal `json:"amount"`
}

// PaymentResponse reports a successful settlement.
type PaymentResponse struct {
	Method  string          `json:"method"`
	Message string          `json:"message"`
	Balance decimal.Decimal `json:"balance"`
}

// VoucherRequest tops up the caller's voucher balance.
type VoucherRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// BalanceResponse carries a voucher balance.
type BalanceResponse struct {
	Balance decimal.Decimal `json:"balance"`
}

// NewAccountRequest creates a staff account.
type NewAccountRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// AccountResponse is one account view. Passwords are never echoed.
type AccountResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// RestaurantInfoRequest replaces the restaurant profile.
type RestaurantInfoRequest struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Tables          int    `json:"tables"`
	BackgroundColor string `json:"backgroundColor"`
	TextColor       string `json:"textColor"`
	CustomText      string `json:"customText"`
}

// RestaurantInfoResponse is the current restaurant profile.
type RestaurantInfoResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Tables          int    `json:"tables"`
	BackgroundColor string `json:"backgroundColor"`
	TextColor       string `json:"textColor"`
	CustomText      string `json:"customText"`
}
