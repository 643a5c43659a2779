package cmd

import (
	"log/slog"

	"foodrun/internal/adapters/in/http"
	"foodrun/internal/adapters/out/memstore"
	"foodrun/internal/core/application/usecases/commands"
	"foodrun/internal/core/application/usecases/queries"
	"foodrun/internal/core/domain/services"
	"foodrun/internal/core/ports"
	"foodrun/internal/jobs"
)

// CompositionRoot wires adapters to use cases. The storage factory is the
// only part that varies between deployments; carts and the catalog always
// live in memory.
type CompositionRoot struct {
	config     Config
	uowFactory ports.UnitOfWorkFactory
	carts      ports.CartRepository
	catalog    ports.Catalog
	logger     *slog.Logger
}

func NewCompositionRoot(
	config Config,
	uowFactory ports.UnitOfWorkFactory,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		config:     config,
		uowFactory: uowFactory,
		carts:      memstore.NewCartRepository(),
		catalog:    services.NewCatalog(),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterUserCommandHandler(f)
}

func (c *CompositionRoot) CreateAddCartItemCommandHandler() commands.AddCartItemCommandHandler {
	return commands.NewAddCartItemCommandHandler(c.carts, c.catalog)
}

func (c *CompositionRoot) CreateAdjustCartItemCommandHandler() commands.AdjustCartItemCommandHandler {
	return commands.NewAdjustCartItemCommandHandler(c.carts)
}

func (c *CompositionRoot) CreateRemoveCartItemCommandHandler() commands.RemoveCartItemCommandHandler {
	return commands.NewRemoveCartItemCommandHandler(c.carts)
}

func (c *CompositionRoot) CreateCheckoutCommandHandler() commands.CheckoutCommandHandler {
	var f commands.OrderUserUoWFactory = FuncOrderUserUoWFactory(func() commands.OrderUserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCheckoutCommandHandler(c.carts, f)
}

func (c *CompositionRoot) CreateClaimOrderCommandHandler() commands.ClaimOrderCommandHandler {
	return commands.NewClaimOrderCommandHandler(c.createOrderUoWFactory())
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.createOrderUoWFactory())
}

func (c *CompositionRoot) CreateSubmitRatingCommandHandler() commands.SubmitRatingCommandHandler {
	var f commands.OrderRatingUoWFactory = FuncOrderRatingUoWFactory(func() commands.OrderRatingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitRatingCommandHandler(f)
}

func (c *CompositionRoot) CreateLoginQueryHandler() queries.LoginQueryHandler {
	return queries.NewLoginQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateGetMenuQueryHandler() queries.GetMenuQueryHandler {
	return queries.NewGetMenuQueryHandler(c.catalog, c.uowFactory)
}

func (c *CompositionRoot) CreateGetCartQueryHandler() queries.GetCartQueryHandler {
	return queries.NewGetCartQueryHandler(c.carts)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateGetPendingOrdersQueryHandler() queries.GetPendingOrdersQueryHandler {
	return queries.NewGetPendingOrdersQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateGetClaimedOrdersQueryHandler() queries.GetClaimedOrdersQueryHandler {
	return queries.NewGetClaimedOrdersQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateGetDriverRatingQueryHandler() queries.GetDriverRatingQueryHandler {
	return queries.NewGetDriverRatingQueryHandler(c.uowFactory)
}

// CreateServer assembles the HTTP server with every command and query handler.
func (c *CompositionRoot) CreateServer() *http.Server {
	return http.NewServer(
		c.CreateRegisterUserCommandHandler(),
		c.CreateAddCartItemCommandHandler(),
		c.CreateAdjustCartItemCommandHandler(),
		c.CreateRemoveCartItemCommandHandler(),
		c.CreateCheckoutCommandHandler(),
		c.CreateClaimOrderCommandHandler(),
		c.CreateCompleteOrderCommandHandler(),
		c.CreateSubmitRatingCommandHandler(),
		c.CreateLoginQueryHandler(),
		c.CreateGetMenuQueryHandler(),
		c.CreateGetCartQueryHandler(),
		c.CreateGetCustomerOrdersQueryHandler(),
		c.CreateGetPendingOrdersQueryHandler(),
		c.CreateGetClaimedOrdersQueryHandler(),
		c.CreateGetDriverRatingQueryHandler(),
	)
}

// CreateJobManager assembles the background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.config.SummaryCron,
		c.CreateGetPendingOrdersQueryHandler(),
		c.CreateGetMenuQueryHandler(),
		c.logger,
	)
}

func (c *CompositionRoot) createOrderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOrderUserUoWFactory func() commands.OrderUserUoW

func (f FuncOrderUserUoWFactory) Create() commands.OrderUserUoW {
	return f()
}

type FuncOrderRatingUoWFactory func() commands.OrderRatingUoW

func (f FuncOrderRatingUoWFactory) Create() commands.OrderRatingUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}
