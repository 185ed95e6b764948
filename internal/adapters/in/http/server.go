// Package http is the inbound HTTP adapter. It binds requests, delegates to
// the application use cases, and maps their results and errors onto the wire
// contract.
package http

import (
	"errors"
	"net/http"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/ports"
	"pizzeria/internal/core/services"
	"pizzeria/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	accessPolicy *services.AccessPolicy
	tokens       ports.TokenService

	// Command handlers
	signUpHandler             commands.SignUpCommandHandler
	placeOrderHandler         commands.PlaceOrderCommandHandler
	updatePendingOrderHandler commands.UpdatePendingOrderCommandHandler
	changeOrderStatusHandler  commands.ChangeOrderStatusCommandHandler
	deleteOrderHandler        commands.DeleteOrderCommandHandler

	// Query handlers
	getUserOrdersHandler queries.GetUserOrdersQueryHandler
	getAllOrdersHandler  queries.GetAllOrdersQueryHandler
	getOrderHandler      queries.GetOrderQueryHandler
}

// NewServer creates a new HTTP server with the required collaborators.
func NewServer(
	accessPolicy *services.AccessPolicy,
	tokens ports.TokenService,
	signUpHandler commands.SignUpCommandHandler,
	placeOrderHandler commands.PlaceOrderCommandHandler,
	updatePendingOrderHandler commands.UpdatePendingOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	getUserOrdersHandler queries.GetUserOrdersQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
) *Server {
	return &Server{
		accessPolicy:              accessPolicy,
		tokens:                    tokens,
		signUpHandler:             signUpHandler,
		placeOrderHandler:         placeOrderHandler,
		updatePendingOrderHandler: updatePendingOrderHandler,
		changeOrderStatusHandler:  changeOrderStatusHandler,
		deleteOrderHandler:        deleteOrderHandler,
		getUserOrdersHandler:      getUserOrdersHandler,
		getAllOrdersHandler:       getAllOrdersHandler,
		getOrderHandler:           getOrderHandler,
	}
}

// RegisterRoutes mounts all API routes on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	auth := e.Group("/api/v1/auth")
	auth.POST("/signup", s.SignUp)
	auth.POST("/login", s.Login)

	orders := e.Group("/api/v1/orders")
	orders.POST("/order/", s.PlaceOrder, s.requireUser)
	orders.PUT("/order/update/:order_id/", s.UpdateOrder, s.requireUser)
	orders.PUT("/order/status/:order_id/", s.UpdateOrderStatus, s.requireAdmin)
	orders.DELETE("/order/delete/:order_id/", s.DeleteOrder, s.requireUser)
	orders.GET("/user/orders/", s.GetUserOrders, s.requireUser)
	orders.GET("/user/order/:order_id/", s.GetUserOrder, s.requireUser)
	orders.GET("/orders/", s.GetAllOrders, s.requireAdmin)
	orders.GET("/orders/:order_id/", s.GetOrder, s.requireAdmin)
}

// SignUp handles POST /api/v1/auth/signup - creates a new account.
func (s *Server) SignUp(ctx echo.Context) error {
	var req SignUpRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}

	cmd, err := commands.NewSignUpCommand(req.Email, req.Username, req.Password, req.IsActive, req.IsStaff)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	u, err := s.signUpHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, SignUpResponse{
		Message:  "User created successfully",
		UserName: u.Username(),
	})
}

// Login handles POST /api/v1/auth/login - exchanges form credentials for a
// bearer token. The username field accepts either the email or the username.
func (s *Server) Login(ctx echo.Context) error {
	identifier := ctx.FormValue("username")
	password := ctx.FormValue("password")

	u, err := s.accessPolicy.Authenticate(ctx.Request().Context(), identifier, password)
	if err != nil {
		// An unknown identifier reads the same as a wrong password.
		if errors.Is(err, errs.ErrObjectNotFound) {
			err = services.ErrBadCredentials
		}
		return respondError(ctx, err)
	}

	token, err := s.tokens.Issue(u.ID())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// PlaceOrder handles POST /api/v1/orders/order/ - places an order for the
// authenticated user.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req PlaceOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}

	cmd, err := commands.NewPlaceOrderCommand(
		currentUser(ctx).ID(),
		req.Quantity,
		order.ParsePizzaSize(req.PizzaSize),
	)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	placed, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderModelFromDomain(placed))
}

// UpdateOrder handles PUT /api/v1/orders/order/update/:order_id/ - edits a
// pending order owned by the authenticated user.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req UpdateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}

	var size *order.PizzaSize
	if req.PizzaSize != nil {
		parsed := order.ParsePizzaSize(*req.PizzaSize)
		size = &parsed
	}

	cmd, err := commands.NewUpdatePendingOrderCommand(orderID, currentUser(ctx).ID(), req.Quantity, size)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	updated, err := s.updatePendingOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderModelFromDomain(updated))
}

// UpdateOrderStatus handles PUT /api/v1/orders/order/status/:order_id/ -
// administrator override of an order's status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req UpdateStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}

	status, err := order.ParseStatus(req.OrderStatus)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, status)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	updated, err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderModelFromDomain(updated))
}

// DeleteOrder handles DELETE /api/v1/orders/order/delete/:order_id/ -
// deletes an order owned by the authenticated user and returns its last
// state.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID, currentUser(ctx).ID())
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	deleted, err := s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderModelFromDomain(deleted))
}

// GetUserOrders handles GET /api/v1/orders/user/orders/ - lists the
// authenticated user's orders.
func (s *Server) GetUserOrders(ctx echo.Context) error {
	query, err := queries.NewGetUserOrdersQuery(currentUser(ctx).ID())
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getUserOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderModelsFromResponses(orders))
}

// GetUserOrder handles GET /api/v1/orders/user/order/:order_id/ - fetches
// one of the authenticated user's orders. Someone else's order reads as
// not-found.
func (s *Server) GetUserOrder(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID, currentUser(ctx).ID(), false)
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderModelFromResponse(resp))
}

// GetAllOrders handles GET /api/v1/orders/orders/ - lists every order.
func (s *Server) GetAllOrders(ctx echo.Context) error {
	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderModelsFromResponses(orders))
}

// GetOrder handles GET /api/v1/orders/orders/:order_id/ - fetches any order
// by ID, administrator view.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID, currentUser(ctx).ID(), true)
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderModelFromResponse(resp))
}

// orderIDParam parses the order_id path parameter. A malformed identifier
// reads the same as a missing order.
func orderIDParam(ctx echo.Context) (kernel.UUID, error) {
	raw := ctx.Param("order_id")
	orderID, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewObjectNotFoundError("order", raw)
	}
	return orderID, nil
}
