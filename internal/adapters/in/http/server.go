// Package http exposes the order and address use cases over a REST API.
//
// The boundary resolves the acting identity from gateway headers, binds
// request bodies into commands and queries, and translates core errors into
// HTTP statuses. No business rules live here.
package http

import (
	"net/http"
	"strconv"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler        commands.PlaceOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	addAddressHandler        commands.AddAddressCommandHandler
	updateAddressHandler     commands.UpdateAddressCommandHandler
	setDefaultAddressHandler commands.SetDefaultAddressCommandHandler
	deleteAddressHandler     commands.DeleteAddressCommandHandler

	// Query handlers
	getOrderHandler            queries.GetOrderQueryHandler
	getUserOrdersHandler       queries.GetUserOrdersQueryHandler
	getRestaurantOrdersHandler queries.GetRestaurantOrdersQueryHandler
	getUserAddressesHandler    queries.GetUserAddressesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	addAddressHandler commands.AddAddressCommandHandler,
	updateAddressHandler commands.UpdateAddressCommandHandler,
	setDefaultAddressHandler commands.SetDefaultAddressCommandHandler,
	deleteAddressHandler commands.DeleteAddressCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getUserOrdersHandler queries.GetUserOrdersQueryHandler,
	getRestaurantOrdersHandler queries.GetRestaurantOrdersQueryHandler,
	getUserAddressesHandler queries.GetUserAddressesQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:          placeOrderHandler,
		updateOrderStatusHandler:   updateOrderStatusHandler,
		addAddressHandler:          addAddressHandler,
		updateAddressHandler:       updateAddressHandler,
		setDefaultAddressHandler:   setDefaultAddressHandler,
		deleteAddressHandler:       deleteAddressHandler,
		getOrderHandler:            getOrderHandler,
		getUserOrdersHandler:       getUserOrdersHandler,
		getRestaurantOrdersHandler: getRestaurantOrdersHandler,
		getUserAddressesHandler:    getUserAddressesHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance. Everything
// under /api requires resolved identity headers; /health does not.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api", ActorResolver())

	orders := api.Group("/orders")
	orders.POST("/place", s.PlaceOrder)
	orders.GET("/my-orders", s.GetMyOrders)
	orders.GET("/restaurant/:restaurantId", s.GetRestaurantOrders)
	orders.GET("/:orderId", s.GetOrder)
	orders.PUT("/:orderId/accept", s.AcceptOrder)
	orders.PUT("/:orderId/reject", s.RejectOrder)
	orders.PUT("/:orderId/preparing", s.MarkOrderPreparing)
	orders.PUT("/:orderId/ready", s.MarkOrderReady)
	orders.PUT("/:orderId/status", s.UpdateOrderStatus)

	addresses := api.Group("/addresses")
	addresses.GET("", s.GetAddresses)
	addresses.POST("", s.AddAddress)
	addresses.PUT("/:addressId", s.UpdateAddress)
	addresses.PUT("/:addressId/default", s.SetDefaultAddress)
	addresses.DELETE("/:addressId", s.DeleteAddress)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// PlaceOrder handles POST /api/orders/place - places a new order.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx, "Missing identity")
	}

	var req PlaceOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	lines := make([]commands.OrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, commands.OrderLine{
			MenuItemID:   item.MenuItemID,
			Quantity:     item.Quantity,
			Instructions: item.Instructions,
		})
	}

	cmd, err := commands.NewPlaceOrderCommand(
		actor,
		req.RestaurantID,
		req.DeliveryAddressID,
		lines,
		order.PaymentMethod(req.PaymentMethod),
		req.SpecialInstructions,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	placed, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderResponseFromAggregate(placed))
}

// GetOrder handles GET /api/orders/:orderId - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx, "Missing identity")
	}

	orderID, err := pathID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(actor, orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromQuery(resp))
}

// GetMyOrders handles GET /api/orders/my-orders - lists the calling
// customer's orders, newest first.
func (s *Server) GetMyOrders(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx, "Missing identity")
	}

	query, err := queries.NewGetUserOrdersQuery(actor)
	if err != nil {
		return writeError(ctx, err)
	}

	rows, err := s.getUserOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderSummariesFromQuery(rows))
}

// GetRestaurantOrders handles GET /api/orders/restaurant/:restaurantId -
// lists a restaurant's orders, optionally filtered by ?status=.
func (s *Server) GetRestaurantOrders(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx, "Missing identity")
	}

	restaurantID, err := pathID(ctx, "restaurantId")
	if err != nil {
		return badRequest(ctx, "Invalid restaurant id")
	}

	var statusFilter *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		status := order.Status(raw)
		statusFilter = &status
	}

	query, err := queries.NewGetRestaurantOrdersQuery(actor, restaurantID, statusFilter)
	if err != nil {
		return writeError(ctx, err)
	}

	rows, err := s.getRestaurantOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderSummariesFromQuery(rows))
}

// AcceptOrder handles PUT /api/orders/:orderId/accept.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	return s.transitionOrder(ctx, func(actor kernel.Actor, orderID int64) (commands.UpdateOrderStatusCommand, error) {
		return commands.NewAcceptOrderCommand(actor, orderID)
	})
}

// RejectOrder handles PUT /api/orders/:orderId/reject. The body must carry
// the rejection reason.
func (s *Server) RejectOrder(ctx echo.Context) error {
	var req RejectOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	return s.transitionOrder(ctx, func(actor kernel.Actor, orderID int64) (commands.UpdateOrderStatusCommand, error) {
		return commands.NewRejectOrderCommand(actor, orderID, req.Reason)
	})
}

// MarkOrderPreparing handles PUT /api/orders/:orderId/preparing.
func (s *Server) MarkOrderPreparing(ctx echo.Context) error {
	return s.transitionOrder(ctx, func(actor kernel.Actor, orderID int64) (commands.UpdateOrderStatusCommand, error) {
		return commands.NewMarkPreparingCommand(actor, orderID)
	})
}

// MarkOrderReady handles PUT /api/orders/:orderId/ready.
func (s *Server) MarkOrderReady(ctx echo.Context) error {
	return s.transitionOrder(ctx, func(actor kernel.Actor, orderID int64) (commands.UpdateOrderStatusCommand, error) {
		return commands.NewMarkReadyForPickupCommand(actor, orderID)
	})
}

// UpdateOrderStatus handles PUT /api/orders/:orderId/status - the generic
// transition used by delivery partners for the delivery phase.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	var req UpdateStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	return s.transitionOrder(ctx, func(actor kernel.Actor, orderID int64) (commands.UpdateOrderStatusCommand, error) {
		return commands.NewUpdateOrderStatusCommand(actor, orderID, order.Status(req.Status), req.Notes)
	})
}

func (s *Server) transitionOrder(
	ctx echo.Context,
	buildCommand func(actor kernel.Actor, orderID int64) (commands.UpdateOrderStatusCommand, error),
) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx, "Missing identity")
	}

	orderID, err := pathID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := buildCommand(actor, orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromAggregate(updated))
}

// GetAddresses handles GET /api/addresses - lists the caller's saved
// addresses, default first.
func (s *Server) GetAddresses(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx, "Missing identity")
	}

	query, err := queries.NewGetUserAddressesQuery(actor)
	if err != nil {
		return writeError(ctx, err)
	}

	rows, err := s.getUserAddressesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, addressResponsesFromQuery(rows))
}

// AddAddress handles POST /api/addresses - saves a new address.
func (s *Server) AddAddress(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx, "Missing identity")
	}

	var req AddressRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAddAddressCommand(actor, detailsFromRequest(req), req.IsDefault)
	if err != nil {
		return writeError(ctx, err)
	}

	saved, err := s.addAddressHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, addressResponseFromAggregate(saved))
}

// UpdateAddress handles PUT /api/addresses/:addressId - replaces the
// address details. A true default flag also promotes the address; false
// leaves the current default untouched.
func (s *Server) UpdateAddress(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx, "Missing identity")
	}

	addressID, err := pathID(ctx, "addressId")
	if err != nil {
		return badRequest(ctx, "Invalid address id")
	}

	var req AddressRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateAddressCommand(actor, addressID, detailsFromRequest(req), req.IsDefault)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.updateAddressHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, addressResponseFromAggregate(updated))
}

// SetDefaultAddress handles PUT /api/addresses/:addressId/default.
func (s *Server) SetDefaultAddress(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx, "Missing identity")
	}

	addressID, err := pathID(ctx, "addressId")
	if err != nil {
		return badRequest(ctx, "Invalid address id")
	}

	cmd, err := commands.NewSetDefaultAddressCommand(actor, addressID)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.setDefaultAddressHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, addressResponseFromAggregate(updated))
}

// DeleteAddress handles DELETE /api/addresses/:addressId.
func (s *Server) DeleteAddress(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx, "Missing identity")
	}

	addressID, err := pathID(ctx, "addressId")
	if err != nil {
		return badRequest(ctx, "Invalid address id")
	}

	cmd, err := commands.NewDeleteAddressCommand(actor, addressID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.deleteAddressHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func pathID(ctx echo.Context, name string) (int64, error) {
	return strconv.ParseInt(ctx.Param(name), 10, 64)
}
