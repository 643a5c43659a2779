package http

import (
	"net/http"

	"foodrun/internal/core/application/usecases/commands"
	"foodrun/internal/core/application/usecases/queries"
	"foodrun/internal/core/domain/model/account"
	"foodrun/internal/core/domain/model/kernel"
	"foodrun/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Server exposes the marketplace over HTTP. It coordinates between route
// handlers and application use cases; all business rules live below it.
type Server struct {
	sessions *SessionRegistry

	// Command handlers
	registerUserHandler   commands.RegisterUserCommandHandler
	addCartItemHandler    commands.AddCartItemCommandHandler
	adjustCartItemHandler commands.AdjustCartItemCommandHandler
	removeCartItemHandler commands.RemoveCartItemCommandHandler
	checkoutHandler       commands.CheckoutCommandHandler
	claimOrderHandler     commands.ClaimOrderCommandHandler
	completeOrderHandler  commands.CompleteOrderCommandHandler
	submitRatingHandler   commands.SubmitRatingCommandHandler

	// Query handlers
	loginHandler             queries.LoginQueryHandler
	getMenuHandler           queries.GetMenuQueryHandler
	getCartHandler           queries.GetCartQueryHandler
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler
	getPendingOrdersHandler  queries.GetPendingOrdersQueryHandler
	getClaimedOrdersHandler  queries.GetClaimedOrdersQueryHandler
	getDriverRatingHandler   queries.GetDriverRatingQueryHandler
}

// NewServer creates an HTTP server with the required command and query
// handlers and a fresh session registry.
func NewServer(
	registerUserHandler commands.RegisterUserCommandHandler,
	addCartItemHandler commands.AddCartItemCommandHandler,
	adjustCartItemHandler commands.AdjustCartItemCommandHandler,
	removeCartItemHandler commands.RemoveCartItemCommandHandler,
	checkoutHandler commands.CheckoutCommandHandler,
	claimOrderHandler commands.ClaimOrderCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	submitRatingHandler commands.SubmitRatingCommandHandler,
	loginHandler queries.LoginQueryHandler,
	getMenuHandler queries.GetMenuQueryHandler,
	getCartHandler queries.GetCartQueryHandler,
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler,
	getPendingOrdersHandler queries.GetPendingOrdersQueryHandler,
	getClaimedOrdersHandler queries.GetClaimedOrdersQueryHandler,
	getDriverRatingHandler queries.GetDriverRatingQueryHandler,
) *Server {
	return &Server{
		sessions:                 NewSessionRegistry(),
		registerUserHandler:      registerUserHandler,
		addCartItemHandler:       addCartItemHandler,
		adjustCartItemHandler:    adjustCartItemHandler,
		removeCartItemHandler:    removeCartItemHandler,
		checkoutHandler:          checkoutHandler,
		claimOrderHandler:        claimOrderHandler,
		completeOrderHandler:     completeOrderHandler,
		submitRatingHandler:      submitRatingHandler,
		loginHandler:             loginHandler,
		getMenuHandler:           getMenuHandler,
		getCartHandler:           getCartHandler,
		getCustomerOrdersHandler: getCustomerOrdersHandler,
		getPendingOrdersHandler:  getPendingOrdersHandler,
		getClaimedOrdersHandler:  getClaimedOrdersHandler,
		getDriverRatingHandler:   getDriverRatingHandler,
	}
}

// RegisterRoutes mounts all routes under /api/v1 and installs the request
// validator. Cart and checkout routes require a customer session, order
// claiming and delivery a driver session.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = newRequestValidator()

	api := e.Group("/api/v1")

	api.POST("/users", s.RegisterUser)
	api.POST("/sessions", s.Login)
	api.GET("/menu", s.GetMenu)

	authed := api.Group("", RequireSession(s.sessions))
	authed.DELETE("/sessions", s.Logout)
	authed.GET("/drivers/:name/rating", s.GetDriverRating)

	customer := authed.Group("", RequireRole(account.RoleCustomer))
	customer.GET("/cart", s.GetCart)
	customer.POST("/cart/items", s.AddCartItem)
	customer.PATCH("/cart/items/:index", s.AdjustCartItem)
	customer.DELETE("/cart/items/:index", s.RemoveCartItem)
	customer.POST("/checkout", s.Checkout)
	customer.GET("/orders/mine", s.GetMyOrders)
	customer.POST("/orders/:id/rating", s.RateOrder)

	driver := authed.Group("", RequireRole(account.RoleDriver))
	driver.GET("/orders/pending", s.GetPendingOrders)
	driver.GET("/orders/claimed", s.GetClaimedOrders)
	driver.POST("/orders/:id/claim", s.ClaimOrder)
	driver.POST("/orders/:id/complete", s.CompleteOrder)
}

// RegisterUser handles POST /api/v1/users - creates a user account.
func (s *Server) RegisterUser(ctx echo.Context) error {
	var req registerRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	role, err := account.RoleFromString(req.Role)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewRegisterUserCommand(req.Name, req.Password, req.Phone, role)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	if err := s.registerUserHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// Login handles POST /api/v1/sessions - verifies credentials and issues a
// session token.
func (s *Server) Login(ctx echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	role, err := account.RoleFromString(req.Role)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	query, err := queries.NewLoginQuery(req.Name, req.Password, role)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	result, err := s.loginHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	token := s.sessions.Issue(result.Name, result.Role)

	return ctx.JSON(http.StatusCreated, loginResponse{
		Token: token,
		Name:  result.Name,
		Role:  result.Role.String(),
	})
}

// Logout handles DELETE /api/v1/sessions - revokes the caller's token.
func (s *Server) Logout(ctx echo.Context) error {
	s.sessions.Revoke(ctx.Request().Header.Get(SessionTokenHeader))
	return ctx.NoContent(http.StatusNoContent)
}

// GetMenu handles GET /api/v1/menu - lists every restaurant's menu with the
// restaurant's average food rating when one exists.
func (s *Server) GetMenu(ctx echo.Context) error {
	restaurants, err := s.getMenuHandler.Handle(ctx.Request().Context(), queries.NewGetMenuQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]restaurantMenu, 0, len(restaurants))
	for _, restaurant := range restaurants {
		menu := restaurantMenu{
			Name:       restaurant.Name,
			Categories: make([]menuCategory, 0, len(restaurant.Categories)),
		}
		if restaurant.Average != nil {
			average := restaurant.Average.InexactFloat64()
			menu.Average = &average
		}
		for _, category := range restaurant.Categories {
			items := make([]menuItem, 0, len(category.Items))
			for _, item := range category.Items {
				items = append(items, menuItem{Name: item.Name, Price: item.Price.Float64()})
			}
			menu.Categories = append(menu.Categories, menuCategory{Name: category.Name, Items: items})
		}
		response = append(response, menu)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCart handles GET /api/v1/cart - returns the caller's cart with totals.
func (s *Server) GetCart(ctx echo.Context) error {
	query, err := queries.NewGetCartQuery(sessionFrom(ctx).Name)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	cart, err := s.getCartHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	view := cartView{
		Lines:          make([]cartLine, 0, len(cart.Lines)),
		Subtotal:       cart.Subtotal.Float64(),
		ServiceTax:     cart.ServiceTax.Float64(),
		DeliveryCharge: cart.DeliveryCharge.Float64(),
		Total:          cart.Total.Float64(),
	}
	for _, line := range cart.Lines {
		view.Lines = append(view.Lines, cartLine{
			Restaurant: line.Restaurant,
			Category:   line.Category,
			Food:       line.Food,
			UnitPrice:  line.UnitPrice.Float64(),
			Quantity:   line.Quantity,
			Subtotal:   line.Subtotal.Float64(),
		})
	}

	return ctx.JSON(http.StatusOK, view)
}

// AddCartItem handles POST /api/v1/cart/items - adds one unit of a catalog
// item to the caller's cart.
func (s *Server) AddCartItem(ctx echo.Context) error {
	var req addCartItemRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewAddCartItemCommand(
		sessionFrom(ctx).Name, req.Restaurant, req.Category, req.Food)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	if err := s.addCartItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AdjustCartItem handles PATCH /api/v1/cart/items/:index - changes a line's
// quantity by +1 or -1. Quantities floor at 1; lines leave the cart only via
// RemoveCartItem.
func (s *Server) AdjustCartItem(ctx echo.Context) error {
	index, ok := pathIndex(ctx)
	if !ok {
		return writeError(ctx, http.StatusBadRequest, "invalid line index")
	}

	var req adjustCartItemRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewAdjustCartItemCommand(sessionFrom(ctx).Name, index, req.Delta)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	if err := s.adjustCartItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveCartItem handles DELETE /api/v1/cart/items/:index - drops a line
// from the caller's cart.
func (s *Server) RemoveCartItem(ctx echo.Context) error {
	index, ok := pathIndex(ctx)
	if !ok {
		return writeError(ctx, http.StatusBadRequest, "invalid line index")
	}

	cmd, err := commands.NewRemoveCartItemCommand(sessionFrom(ctx).Name, index)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	if err := s.removeCartItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// Checkout handles POST /api/v1/checkout - turns the caller's cart into
// pending orders, one per cart line.
func (s *Server) Checkout(ctx echo.Context) error {
	var req checkoutRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	payment, err := order.PaymentFromString(req.Payment)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	tip, err := kernel.NewMoneyFromFloat(req.Tip)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewCheckoutCommand(sessionFrom(ctx).Name, req.Dropoff, payment, tip)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	if err := s.checkoutHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetMyOrders handles GET /api/v1/orders/mine - lists the caller's orders,
// newest first.
func (s *Server) GetMyOrders(ctx echo.Context) error {
	query, err := queries.NewGetCustomerOrdersQuery(sessionFrom(ctx).Name)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	orders, err := s.getCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newOrderViews(orders))
}

// GetPendingOrders handles GET /api/v1/orders/pending - lists unclaimed
// orders for drivers to pick from.
func (s *Server) GetPendingOrders(ctx echo.Context) error {
	orders, err := s.getPendingOrdersHandler.Handle(
		ctx.Request().Context(), queries.NewGetPendingOrdersQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newOrderViews(orders))
}

// GetClaimedOrders handles GET /api/v1/orders/claimed - lists the orders the
// calling driver is currently delivering.
func (s *Server) GetClaimedOrders(ctx echo.Context) error {
	query, err := queries.NewGetClaimedOrdersQuery(sessionFrom(ctx).Name)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	orders, err := s.getClaimedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newOrderViews(orders))
}

// ClaimOrder handles POST /api/v1/orders/:id/claim - assigns a pending order
// to the calling driver.
func (s *Server) ClaimOrder(ctx echo.Context) error {
	orderID, err := kernel.OrderIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewClaimOrderCommand(orderID, sessionFrom(ctx).Name)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	if err := s.claimOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteOrder handles POST /api/v1/orders/:id/complete - marks a claimed
// order as delivered by the calling driver.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	orderID, err := kernel.OrderIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID, sessionFrom(ctx).Name)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	if err := s.completeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RateOrder handles POST /api/v1/orders/:id/rating - records the caller's
// one-time rating of a completed order.
func (s *Server) RateOrder(ctx echo.Context) error {
	orderID, err := kernel.OrderIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	var req rateOrderRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	food, err := kernel.NewScore(req.Food)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}
	speed, err := kernel.NewScore(req.Speed)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}
	service, err := kernel.NewScore(req.Service)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewSubmitRatingCommand(
		orderID, sessionFrom(ctx).Name, food, speed, service)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	if err := s.submitRatingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetDriverRating handles GET /api/v1/drivers/:name/rating - returns a
// driver's running score averages.
func (s *Server) GetDriverRating(ctx echo.Context) error {
	query, err := queries.NewGetDriverRatingQuery(ctx.Param("name"))
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	rating, err := s.getDriverRatingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	view := driverRatingView{Driver: rating.Driver, Count: rating.Count}
	if rating.Rated {
		food := rating.Food.InexactFloat64()
		speed := rating.Speed.InexactFloat64()
		service := rating.Service.InexactFloat64()
		view.Food, view.Speed, view.Service = &food, &speed, &service
	}

	return ctx.JSON(http.StatusOK, view)
}

func bindAndValidate(ctx echo.Context, req any) error {
	if err := ctx.Bind(req); err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := ctx.Validate(req); err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid request body")
	}
	return nil
}

func pathIndex(ctx echo.Context) (int, bool) {
	var index int
	if err := echo.PathParamsBinder(ctx).Int("index", &index).BindError(); err != nil {
		return 0, false
	}
	return index, true
}
