package cmd

import (
	"context"
	"log/slog"

	apihttp "packtrack/internal/adapters/in/http"
	"packtrack/internal/adapters/out/postgres"
	"packtrack/internal/core/application/usecases/commands"
	"packtrack/internal/core/application/usecases/queries"
	"packtrack/internal/core/domain/model/client"
	"packtrack/internal/core/ports"
	"packtrack/internal/jobs"
	"packtrack/internal/pkg/auth"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use-case handlers. All dependency
// construction happens here; the rest of the code receives interfaces.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   ports.Notifier
	tokens     auth.TokenStrategy
	hasher     auth.PasswordHasher
	logger     *slog.Logger
	config     Config
}

// NewCompositionRoot assembles the application graph from its externals.
func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	notifier ports.Notifier,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   notifier,
		tokens:     auth.NewHMACStrategy(config.AuthSecret, auth.Options{TTL: config.AuthTokenTTL}),
		hasher:     auth.NewBcryptHasher(0),
		logger:     logger,
		config:     config,
	}
}

// SeedAdminClient registers the bootstrap account configured through
// AdminEmail/AdminPassword. A no-op when the account already exists or the
// configuration is absent.
func (c *CompositionRoot) SeedAdminClient(ctx context.Context) error {
	if c.config.AdminEmail == "" || c.config.AdminPassword == "" {
		return nil
	}

	uow := c.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	exists, err := uow.ClientRepository().ExistsByEmailOrIDNumber(ctx, c.config.AdminEmail, "")
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := c.hasher.Hash(c.config.AdminPassword)
	if err != nil {
		return err
	}

	admin, err := client.NewClient("Admin", "Admin", "0000-0000-00000",
		c.config.AdminEmail, hash, "+504 0000-0000")
	if err != nil {
		return err
	}

	if err = uow.ClientRepository().Add(ctx, admin); err != nil {
		return err
	}

	c.logger.Info("seeded admin client", "email", c.config.AdminEmail)
	return uow.Commit(ctx)
}

// TokenStrategy exposes the bearer-token strategy for the HTTP middleware.
func (c *CompositionRoot) TokenStrategy() auth.TokenStrategy {
	return c.tokens
}

// NewHTTPServer builds the REST server over all use-case handlers.
func (c *CompositionRoot) NewHTTPServer() *apihttp.Server {
	handlers := apihttp.Handlers{
		CreateOrder:         c.CreateCreateOrderCommandHandler(),
		UpdateOrderShipment: c.CreateUpdateOrderShipmentCommandHandler(),
		CancelOrder:         c.CreateCancelOrderCommandHandler(),
		ChangeOrderStatus:   c.CreateChangeOrderStatusCommandHandler(),
		DeleteOrder:         c.CreateDeleteOrderCommandHandler(),
		RegisterClient:      c.CreateRegisterClientCommandHandler(),
		LoginClient:         c.CreateLoginClientCommandHandler(),
		UpdateClientProfile: c.CreateUpdateClientProfileCommandHandler(),

		GetClientOrders:  queries.NewGetClientOrdersQueryHandler(c.gormDB),
		GetOrderByID:     queries.NewGetOrderByIDQueryHandler(c.gormDB),
		TrackOrderByCode: queries.NewTrackOrderByCodeQueryHandler(c.gormDB),
		GetClientProfile: queries.NewGetClientProfileQueryHandler(c.gormDB),
		GetOrderStatuses: queries.NewGetOrderStatusesQueryHandler(c.gormDB),
	}

	return apihttp.NewServer(handlers, c.tokens, c.logger)
}

// NewJobManager builds the background job manager.
func (c *CompositionRoot) NewJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.orderUoWFactory(), c.config.OrderRetention, c.logger)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.fullUoWFactory(), c.notifier, c.logger)
}

func (c *CompositionRoot) CreateUpdateOrderShipmentCommandHandler() commands.UpdateOrderShipmentCommandHandler {
	return commands.NewUpdateOrderShipmentCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRegisterClientCommandHandler() commands.RegisterClientCommandHandler {
	return commands.NewRegisterClientCommandHandler(c.clientUoWFactory(), c.hasher)
}

func (c *CompositionRoot) CreateLoginClientCommandHandler() commands.LoginClientCommandHandler {
	return commands.NewLoginClientCommandHandler(c.clientUoWFactory(), c.hasher)
}

func (c *CompositionRoot) CreateUpdateClientProfileCommandHandler() commands.UpdateClientProfileCommandHandler {
	return commands.NewUpdateClientProfileCommandHandler(c.clientUoWFactory())
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) clientUoWFactory() commands.ClientUoWFactory {
	return FuncClientUoWFactory(func() commands.ClientUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncClientUoWFactory func() commands.ClientUoW

func (f FuncClientUoWFactory) Create() commands.ClientUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
