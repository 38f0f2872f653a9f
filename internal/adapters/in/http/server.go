package http

import (
	"errors"
	"net/http"
	"strconv"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// MessageResponse is the JSON body returned for acknowledgement-only requests.
type MessageResponse struct {
	Message string `json:"message"`
}

// CreateOrderRequest is the JSON body for POST /orders.
type CreateOrderRequest struct {
	ProductID int64   `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// UpdateOrderRequest is the JSON body for PUT /orders/:id.
// Only the fields present in the request are applied.
type UpdateOrderRequest struct {
	ProductID *int64   `json:"product_id"`
	Quantity  *int     `json:"quantity"`
	Price     *float64 `json:"price"`
	Status    *string  `json:"status"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler     commands.CreateOrderCommandHandler
	updateOrderHandler     commands.UpdateOrderCommandHandler
	startValidationHandler commands.StartOrderValidationCommandHandler
	approveOrderHandler    commands.ApproveOrderCommandHandler
	rejectOrderHandler     commands.RejectOrderCommandHandler

	// Query handlers
	getOrderHandler   queries.GetOrderQueryHandler
	listOrdersHandler queries.ListOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	startValidationHandler commands.StartOrderValidationCommandHandler,
	approveOrderHandler commands.ApproveOrderCommandHandler,
	rejectOrderHandler commands.RejectOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:     createOrderHandler,
		updateOrderHandler:     updateOrderHandler,
		startValidationHandler: startValidationHandler,
		approveOrderHandler:    approveOrderHandler,
		rejectOrderHandler:     rejectOrderHandler,
		getOrderHandler:        getOrderHandler,
		listOrdersHandler:      listOrdersHandler,
	}
}

// RegisterRoutes attaches all order routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/orders", s.CreateOrder)
	e.GET("/orders", s.ListOrders)
	e.GET("/orders/:id", s.GetOrder)
	e.PUT("/orders/:id", s.UpdateOrder)
	e.POST("/orders/:id/validate", s.StartOrderValidation)
	e.POST("/orders/:id/approve", s.ApproveOrder)
	e.POST("/orders/:id/reject", s.RejectOrder)
}

// CreateOrder handles POST /orders - creates a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateOrderCommand(req.ProductID, req.Quantity, req.Price)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrderResponse(created))
}

// GetOrder handles GET /orders/:id - retrieves a single order.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Order ID must be positive")
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return badRequest(ctx, "Order ID must be positive")
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, resp)
}

// ListOrders handles GET /orders - retrieves a page of orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	limit := queries.DefaultPageLimit
	if raw := ctx.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return badRequest(ctx, "Invalid limit parameter")
		}
		limit = parsed
	}

	offset := 0
	if raw := ctx.QueryParam("offset"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return badRequest(ctx, "Invalid offset parameter")
		}
		offset = parsed
	}

	query, err := queries.NewListOrdersQuery(limit, offset)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// UpdateOrder handles PUT /orders/:id - partially updates an order.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	id, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Order ID must be positive")
	}

	var req UpdateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateOrderCommand(id, req.ProductID, req.Quantity, req.Price, req.Status)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	updated, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(updated))
}

// StartOrderValidation handles POST /orders/:id/validate - schedules background validation.
// The response acknowledges scheduling; the status change happens asynchronously.
func (s *Server) StartOrderValidation(ctx echo.Context) error {
	id, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Order ID must be positive")
	}

	cmd, err := commands.NewStartOrderValidationCommand(id)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err = s.startValidationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, MessageResponse{Message: "validation started"})
}

// ApproveOrder handles POST /orders/:id/approve - approves a validated order.
func (s *Server) ApproveOrder(ctx echo.Context) error {
	id, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Order ID must be positive")
	}

	cmd, err := commands.NewApproveOrderCommand(id)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	approved, err := s.approveOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(approved))
}

// RejectOrder handles POST /orders/:id/reject - rejects an order.
func (s *Server) RejectOrder(ctx echo.Context) error {
	id, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "Order ID must be positive")
	}

	cmd, err := commands.NewRejectOrderCommand(id)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	rejected, err := s.rejectOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(rejected))
}

// orderIDParam parses the :id path parameter. Non-numeric and non-positive
// values are both client errors.
func orderIDParam(ctx echo.Context) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, errs.NewValueIsInvalidError("id")
	}
	return id, nil
}

// toOrderResponse maps a domain aggregate into the read-side response shape.
func toOrderResponse(o *order.Order) queries.OrderResponse {
	return queries.OrderResponse{
		ID:        o.ID(),
		ProductID: o.ProductID(),
		Quantity:  o.Quantity(),
		Price:     o.Price(),
		Status:    o.Status().String(),
	}
}

// respondError maps application errors onto HTTP statuses. Workflow and
// validation violations are client errors; only unexpected failures are 5xx.
func respondError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
