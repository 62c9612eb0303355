package cmd

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	inhttp "tableside/internal/adapters/in/http"
	"tableside/internal/adapters/out/memory"
	"tableside/internal/auth"
	"tableside/internal/core/application/usecases/commands"
	"tableside/internal/core/application/usecases/queries"
	"tableside/internal/core/domain/model/restaurant"
	"tableside/internal/jobs"
)

// CompositionRoot wires the memory store, the token issuer and every use
// case handler. All handlers share the one store, so the whole demo world
// is consistent across role views.
type CompositionRoot struct {
	store  *memory.Store
	issuer *auth.Issuer

	escalationThreshold time.Duration
	escalationSchedule  string
}

// NewCompositionRoot builds the application from configuration. The store
// starts from the demo seed with the configured restaurant profile.
func NewCompositionRoot(config Config) (*CompositionRoot, error) {
	tables, err := strconv.Atoi(config.RestaurantTables)
	if err != nil {
		return nil, fmt.Errorf("parse RESTAURANT_TABLES: %w", err)
	}

	info, err := restaurant.NewInfo(
		config.RestaurantID,
		config.RestaurantName,
		tables,
		config.RestaurantBackgroundColor,
		config.RestaurantTextColor,
		config.RestaurantCustomText,
	)
	if err != nil {
		return nil, fmt.Errorf("build restaurant profile: %w", err)
	}

	store, err := memory.NewDemoStore(info)
	if err != nil {
		return nil, fmt.Errorf("seed store: %w", err)
	}

	ttl, err := time.ParseDuration(config.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("parse TOKEN_TTL: %w", err)
	}
	issuer, err := auth.NewIssuer(config.TokenSecret, ttl)
	if err != nil {
		return nil, fmt.Errorf("build token issuer: %w", err)
	}

	threshold, err := time.ParseDuration(config.EscalationThreshold)
	if err != nil {
		return nil, fmt.Errorf("parse ESCALATION_THRESHOLD: %w", err)
	}

	return &CompositionRoot{
		store:               store,
		issuer:              issuer,
		escalationThreshold: threshold,
		escalationSchedule:  config.EscalationSchedule,
	}, nil
}

func (c *CompositionRoot) createUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.store, c.store.Menu(), c.store)
}

func (c *CompositionRoot) CreateKitchenCommandHandler() commands.KitchenCommandHandler {
	return commands.NewKitchenCommandHandler(c.store, c.store.Menu(), c.createUpdateOrderStatusCommandHandler())
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	return commands.NewAdvanceOrderCommandHandler(c.store, c.createUpdateOrderStatusCommandHandler())
}

func (c *CompositionRoot) CreateHTTPServer() *inhttp.Server {
	return inhttp.NewServer(
		c.issuer,
		commands.NewLoginCommandHandler(c.store.Accounts(), c.issuer),
		c.CreateKitchenCommandHandler(),
		c.CreateAdvanceOrderCommandHandler(),
		commands.NewToggleStockCommandHandler(c.store.Menu()),
		commands.NewClearNotificationCommandHandler(c.store),
		commands.NewCallWaiterCommandHandler(c.store),
		commands.NewProcessPaymentCommandHandler(c.store),
		commands.NewVoucherCommandHandler(c.store),
		commands.NewAccountCommandHandler(c.store.Accounts()),
		commands.NewUpdateRestaurantInfoCommandHandler(c.store.Restaurant()),
		queries.NewGetOrdersQueryHandler(c.store, c.store.Menu()),
		queries.NewGetMenuQueryHandler(c.store.Menu()),
		queries.NewGetNotificationsQueryHandler(c.store),
		queries.NewGetVoucherBalanceQueryHandler(c.store),
		queries.NewGetAccountsQueryHandler(c.store.Accounts()),
		queries.NewGetRestaurantInfoQueryHandler(c.store.Restaurant()),
	)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.store, c.escalationThreshold, c.escalationSchedule, logger)
}
