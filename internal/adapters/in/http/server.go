// Package http is the inbound HTTP facade. It translates the role views
// (cook, waiter, admin, customer) into use-case invocations; every route
// group is gated by the role middleware so a view can only reach the
// command surface it owns.
package http

import (
	"net/http"
	"strconv"

	"tableside/internal/adapters/out/pdf"
	"tableside/internal/auth"
	"tableside/internal/core/application/usecases/commands"
	"tableside/internal/core/application/usecases/queries"
	"tableside/internal/core/domain/model/account"
	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/payment"
	"tableside/internal/core/domain/model/restaurant"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	issuer *auth.Issuer

	// Command handlers
	loginHandler            commands.LoginCommandHandler
	kitchenHandler          commands.KitchenCommandHandler
	advanceHandler          commands.AdvanceOrderCommandHandler
	toggleStockHandler      commands.ToggleStockCommandHandler
	clearNotificationH      commands.ClearNotificationCommandHandler
	callWaiterHandler       commands.CallWaiterCommandHandler
	processPaymentHandler   commands.ProcessPaymentCommandHandler
	voucherHandler          commands.VoucherCommandHandler
	accountHandler          commands.AccountCommandHandler
	updateRestaurantHandler commands.UpdateRestaurantInfoCommandHandler

	// Query handlers
	getOrdersHandler         queries.GetOrdersQueryHandler
	getMenuHandler           queries.GetMenuQueryHandler
	getNotificationsHandler  queries.GetNotificationsQueryHandler
	getVoucherBalanceHandler queries.GetVoucherBalanceQueryHandler
	getAccountsHandler       queries.GetAccountsQueryHandler
	getRestaurantHandler     queries.GetRestaurantInfoQueryHandler

	qrGenerator pdf.QRCodeGenerator
}

// NewServer creates the HTTP facade with the required command and query
// handlers.
func NewServer(
	issuer *auth.Issuer,
	loginHandler commands.LoginCommandHandler,
	kitchenHandler commands.KitchenCommandHandler,
	advanceHandler commands.AdvanceOrderCommandHandler,
	toggleStockHandler commands.ToggleStockCommandHandler,
	clearNotificationHandler commands.ClearNotificationCommandHandler,
	callWaiterHandler commands.CallWaiterCommandHandler,
	processPaymentHandler commands.ProcessPaymentCommandHandler,
	voucherHandler commands.VoucherCommandHandler,
	accountHandler commands.AccountCommandHandler,
	updateRestaurantHandler commands.UpdateRestaurantInfoCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getMenuHandler queries.GetMenuQueryHandler,
	getNotificationsHandler queries.GetNotificationsQueryHandler,
	getVoucherBalanceHandler queries.GetVoucherBalanceQueryHandler,
	getAccountsHandler queries.GetAccountsQueryHandler,
	getRestaurantHandler queries.GetRestaurantInfoQueryHandler,
) *Server {
	return &Server{
		issuer:                   issuer,
		loginHandler:             loginHandler,
		kitchenHandler:           kitchenHandler,
		advanceHandler:           advanceHandler,
		toggleStockHandler:       toggleStockHandler,
		clearNotificationH:       clearNotificationHandler,
		callWaiterHandler:        callWaiterHandler,
		processPaymentHandler:    processPaymentHandler,
		voucherHandler:           voucherHandler,
		accountHandler:           accountHandler,
		updateRestaurantHandler:  updateRestaurantHandler,
		getOrdersHandler:         getOrdersHandler,
		getMenuHandler:           getMenuHandler,
		getNotificationsHandler:  getNotificationsHandler,
		getVoucherBalanceHandler: getVoucherBalanceHandler,
		getAccountsHandler:       getAccountsHandler,
		getRestaurantHandler:     getRestaurantHandler,
		qrGenerator:              pdf.NewQRCodeGenerator(),
	}
}

// RegisterRoutes mounts all role groups under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.health)

	api := e.Group("/api/v1")
	api.POST("/login", s.login)

	cook := api.Group("/cook", requireRole(s.issuer, account.RoleCook))
	cook.GET("/orders", s.getOrders)
	cook.POST("/orders/:id/start", s.startPreparing)
	cook.POST("/orders/:id/ready", s.markReady)
	cook.POST("/orders/:id/no-stock", s.markNoStock)

	waiter := api.Group("/waiter", requireRole(s.issuer, account.RoleWaiter))
	waiter.GET("/orders", s.getOrders)
	waiter.GET("/notifications", s.getNotifications)
	waiter.POST("/orders/:id/advance", s.advanceOrder)
	waiter.DELETE("/notifications/order/:id", s.clearOrderNotification)
	waiter.DELETE("/notifications/table/:id", s.clearTableCall)

	admin := api.Group("/admin", requireRole(s.issuer, account.RoleAdmin))
	admin.GET("/menu", s.getMenu)
	admin.POST("/menu/:id/toggle-stock", s.toggleStock)
	admin.GET("/accounts", s.getAccounts)
	admin.POST("/accounts", s.addAccount)
	admin.DELETE("/accounts/:id", s.deleteAccount)
	admin.GET("/restaurant", s.getRestaurantInfo)
	admin.PUT("/restaurant", s.updateRestaurantInfo)
	admin.GET("/qrcodes.pdf", s.getQRCodes)

	customer := api.Group("/customer", requireRole(s.issuer, account.RoleCustomer))
	customer.GET("/menu", s.getMenu)
	customer.POST("/table-calls", s.callWaiter)
	customer.POST("/payments", s.processPayment)
	customer.POST("/vouchers", s.addVoucher)
	customer.POST("/recommend", s.recommendFriend)
	customer.GET("/voucher-balance", s.getVoucherBalance)
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewLoginCommand(req.Username, req.Password)
	if err != nil {
		return writeError(c, err)
	}

	result, err := s.loginHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, LoginResponse{
		Username: result.Username,
		Role:     string(result.Role),
		Token:    result.Token,
	})
}

func (s *Server) getOrders(c echo.Context) error {
	views, err := s.getOrdersHandler.Handle(c.Request().Context(), queries.NewGetOrdersQuery())
	if err != nil {
		return writeError(c, err)
	}

	response := make([]OrderResponse, len(views))
	for i, view := range views {
		response[i] = OrderResponse{
			ID:              view.ID,
			Table:           view.Table,
			Items:           view.Items,
			Status:          view.Status,
			Progress:        view.Progress,
			Color:           view.Color,
			NextActionLabel: view.NextActionLabel,
			CanPrepare:      view.CanPrepare,
		}
	}
	return c.JSON(http.StatusOK, response)
}

func (s *Server) startPreparing(c echo.Context) error {
	orderID, err := pathID(c)
	if err != nil {
		return badRequest(c, "Invalid order id")
	}

	cmd, err := commands.NewStartPreparingCommand(orderID)
	if err != nil {
		return writeError(c, err)
	}
	if err = s.kitchenHandler.HandleStartPreparing(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) markReady(c echo.Context) error {
	orderID, err := pathID(c)
	if err != nil {
		return badRequest(c, "Invalid order id")
	}

	cmd, err := commands.NewMarkReadyCommand(orderID)
	if err != nil {
		return writeError(c, err)
	}
	if err = s.kitchenHandler.HandleMarkReady(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) markNoStock(c echo.Context) error {
	orderID, err := pathID(c)
	if err != nil {
		return badRequest(c, "Invalid order id")
	}

	cmd, err := commands.NewMarkNoStockCommand(orderID)
	if err != nil {
		return writeError(c, err)
	}
	if err = s.kitchenHandler.HandleMarkNoStock(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) advanceOrder(c echo.Context) error {
	orderID, err := pathID(c)
	if err != nil {
		return badRequest(c, "Invalid order id")
	}

	cmd, err := commands.NewAdvanceOrderCommand(orderID)
	if err != nil {
		return writeError(c, err)
	}
	if err = s.advanceHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) getNotifications(c echo.Context) error {
	response, err := s.getNotificationsHandler.Handle(c.Request().Context(), queries.NewGetNotificationsQuery())
	if err != nil {
		return writeError(c, err)
	}

	body := NotificationsResponse{
		Orders: make([]WaiterNotificationResponse, len(response.Orders)),
		Calls:  make([]TableCallResponse, len(response.Calls)),
	}
	for i, n := range response.Orders {
		body.Orders[i] = WaiterNotificationResponse{
			ID:        n.ID.String(),
			OrderID:   n.OrderID,
			Table:     n.Table,
			CreatedAt: n.CreatedAt,
		}
	}
	for i, call := range response.Calls {
		body.Calls[i] = TableCallResponse{
			ID:    call.ID.String(),
			Table: call.Table,
			Time:  call.Time,
		}
	}
	return c.JSON(http.StatusOK, body)
}

func (s *Server) clearOrderNotification(c echo.Context) error {
	return s.clearNotification(c, commands.NotificationKindOrder)
}

func (s *Server) clearTableCall(c echo.Context) error {
	return s.clearNotification(c, commands.NotificationKindTable)
}

func (s *Server) clearNotification(c echo.Context, kind commands.NotificationKind) error {
	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "Invalid notification id")
	}

	cmd, err := commands.NewClearNotificationCommand(kind, id)
	if err != nil {
		return writeError(c, err)
	}
	if err = s.clearNotificationH.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) getMenu(c echo.Context) error {
	views, err := s.getMenuHandler.Handle(c.Request().Context(), queries.NewGetMenuQuery())
	if err != nil {
		return writeError(c, err)
	}

	response := make([]MenuItemResponse, len(views))
	for i, view := range views {
		response[i] = MenuItemResponse{
			ID:      view.ID,
			Name:    view.Name,
			Price:   view.Price,
			InStock: view.InStock,
		}
	}
	return c.JSON(http.StatusOK, response)
}

func (s *Server) toggleStock(c echo.Context) error {
	itemID, err := pathID(c)
	if err != nil {
		return badRequest(c, "Invalid item id")
	}

	cmd, err := commands.NewToggleStockCommand(itemID)
	if err != nil {
		return writeError(c, err)
	}
	if err = s.toggleStockHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) getAccounts(c echo.Context) error {
	views, err := s.getAccountsHandler.Handle(c.Request().Context(), queries.NewGetAccountsQuery())
	if err != nil {
		return writeError(c, err)
	}

	response := make([]AccountResponse, len(views))
	for i, view := range views {
		response[i] = AccountResponse{
			ID:       view.ID,
			Username: view.Username,
			Role:     string(view.Role),
		}
	}
	return c.JSON(http.StatusOK, response)
}

func (s *Server) addAccount(c echo.Context) error {
	var req NewAccountRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewAddAccountCommand(
		callerClaims(c).Subject,
		req.Username,
		req.Password,
		account.Role(req.Role),
	)
	if err != nil {
		return writeError(c, err)
	}

	created, err := s.accountHandler.HandleAdd(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, AccountResponse{
		ID:       created.ID(),
		Username: created.Username(),
		Role:     string(created.Role()),
	})
}

func (s *Server) deleteAccount(c echo.Context) error {
	accountID, err := pathID(c)
	if err != nil {
		return badRequest(c, "Invalid account id")
	}

	cmd, err := commands.NewDeleteAccountCommand(accountID)
	if err != nil {
		return writeError(c, err)
	}
	if err = s.accountHandler.HandleDelete(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) getRestaurantInfo(c echo.Context) error {
	info, err := s.getRestaurantHandler.Handle(c.Request().Context(), queries.NewGetRestaurantInfoQuery())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, restaurantInfoResponse(info))
}

func (s *Server) updateRestaurantInfo(c echo.Context) error {
	var req RestaurantInfoRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	info, err := restaurant.NewInfo(
		req.ID, req.Name, req.Tables,
		req.BackgroundColor, req.TextColor, req.CustomText,
	)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewUpdateRestaurantInfoCommand(info)
	if err != nil {
		return writeError(c, err)
	}
	if err = s.updateRestaurantHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, restaurantInfoResponse(info))
}

func (s *Server) getQRCodes(c echo.Context) error {
	info, err := s.getRestaurantHandler.Handle(c.Request().Context(), queries.NewGetRestaurantInfoQuery())
	if err != nil {
		return writeError(c, err)
	}

	doc, err := s.qrGenerator.Generate(info)
	if err != nil {
		return writeError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="qrcodes.pdf"`)
	return c.Blob(http.StatusOK, "application/pdf", doc)
}

func (s *Server) callWaiter(c echo.Context) error {
	var req TableCallRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewCallWaiterCommand(req.Table)
	if err != nil {
		return writeError(c, err)
	}
	if err = s.callWaiterHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusCreated)
}

func (s *Server) processPayment(c echo.Context) error {
	var req PaymentRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	method, err := payment.MethodFromString(req.Method)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewProcessPaymentCommand(callerClaims(c).Subject, method, req.Amount)
	if err != nil {
		return writeError(c, err)
	}

	result, err := s.processPaymentHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, PaymentResponse{
		Method:  string(result.Method),
		Message: result.Message,
		Balance: result.Balance,
	})
}

func (s *Server) addVoucher(c echo.Context) error {
	var req VoucherRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewAddVoucherCommand(callerClaims(c).Subject, req.Amount)
	if err != nil {
		return writeError(c, err)
	}

	balance, err := s.voucherHandler.HandleAddVoucher(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, BalanceResponse{Balance: balance})
}

func (s *Server) recommendFriend(c echo.Context) error {
	cmd, err := commands.NewRecommendFriendCommand(callerClaims(c).Subject)
	if err != nil {
		return writeError(c, err)
	}

	balance, err := s.voucherHandler.HandleRecommendFriend(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, BalanceResponse{Balance: balance})
}

func (s *Server) getVoucherBalance(c echo.Context) error {
	query, err := queries.NewGetVoucherBalanceQuery(callerClaims(c).Subject)
	if err != nil {
		return writeError(c, err)
	}

	balance, err := s.getVoucherBalanceHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, BalanceResponse{Balance: balance})
}

func restaurantInfoResponse(info *restaurant.Info) RestaurantInfoResponse {
	return RestaurantInfoResponse{
		ID:              info.ID(),
		Name:            info.Name(),
		Tables:          info.Tables(),
		BackgroundColor: info.BackgroundColor(),
		TextColor:       info.TextColor(),
		CustomText:      info.CustomText(),
	}
}

// pathID parses the :id path parameter as a positive integer.
func pathID(c echo.Context) (int, error) {
	return strconv.Atoi(c.Param("id"))
}
