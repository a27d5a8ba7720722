package http

import (
	"net/http"

	"customerorder/internal/core/application/usecases/commands"
	"customerorder/internal/core/application/usecases/queries"
	"customerorder/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

var _ servers.ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createCustomerHandler commands.CreateCustomerCommandHandler
	updateCustomerHandler commands.UpdateCustomerCommandHandler
	deleteCustomerHandler commands.DeleteCustomerCommandHandler
	createOrderHandler    commands.CreateOrderCommandHandler
	updateOrderHandler    commands.UpdateOrderCommandHandler
	deleteOrderHandler    commands.DeleteOrderCommandHandler

	// Query handlers
	getCustomerHandler queries.GetCustomerQueryHandler
	getOrderHandler    queries.GetOrderQueryHandler
}

// Handlers groups the use case handlers the Server dispatches to.
type Handlers struct {
	CreateCustomer commands.CreateCustomerCommandHandler
	UpdateCustomer commands.UpdateCustomerCommandHandler
	DeleteCustomer commands.DeleteCustomerCommandHandler
	CreateOrder    commands.CreateOrderCommandHandler
	UpdateOrder    commands.UpdateOrderCommandHandler
	DeleteOrder    commands.DeleteOrderCommandHandler
	GetCustomer    queries.GetCustomerQueryHandler
	GetOrder       queries.GetOrderQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(h Handlers) *Server {
	return &Server{
		createCustomerHandler: h.CreateCustomer,
		updateCustomerHandler: h.UpdateCustomer,
		deleteCustomerHandler: h.DeleteCustomer,
		createOrderHandler:    h.CreateOrder,
		updateOrderHandler:    h.UpdateOrder,
		deleteOrderHandler:    h.DeleteOrder,
		getCustomerHandler:    h.GetCustomer,
		getOrderHandler:       h.GetOrder,
	}
}

// CreateCustomer handles POST /api/v1/customers/.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var body servers.CreateCustomerJSONRequestBody
	if err := bindAndValidate(ctx, &body); err != nil {
		return err
	}

	cmd := commands.NewCreateCustomerCommand(body.FullName, body.EmailAddress, body.PhoneNumber)
	c, err := s.createCustomerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err, errorDetails{exists: "Email address already exists."})
	}

	return ctx.JSON(http.StatusCreated, toCustomerResponse(c))
}

// GetCustomer handles GET /api/v1/customers/:id.
func (s *Server) GetCustomer(ctx echo.Context, id servers.Id) error {
	d := errorDetails{
		invalid:  map[string]string{"id": "Provide a valid ObjectId. The one you've provided is NOT valid."},
		notFound: "Customer NOT found.",
	}

	q, err := queries.NewGetCustomerQuery(id)
	if err != nil {
		return respondError(ctx, err, d)
	}

	c, err := s.getCustomerHandler.Handle(ctx.Request().Context(), q)
	if err != nil {
		return respondError(ctx, err, d)
	}

	return ctx.JSON(http.StatusOK, toCustomerResponse(c))
}

// UpdateCustomer handles PUT /api/v1/customers/:id.
func (s *Server) UpdateCustomer(ctx echo.Context, id servers.Id) error {
	var body servers.UpdateCustomerJSONRequestBody
	if err := bindAndValidate(ctx, &body); err != nil {
		return err
	}

	d := errorDetails{
		invalid:      map[string]string{"id": "Invalid ObjectId provided for update."},
		notFound:     "Customer with ID: " + id + " NOT found.",
		exists:       "Email address already exists.",
		serverPrefix: "Error updating customer: ",
	}

	cmd, err := commands.NewUpdateCustomerCommand(id, body.FullName, body.EmailAddress, body.PhoneNumber)
	if err != nil {
		return respondError(ctx, err, d)
	}

	c, err := s.updateCustomerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err, d)
	}

	return ctx.JSON(http.StatusOK, toCustomerResponse(c))
}

// DeleteCustomer handles DELETE /api/v1/customers/:id. Orders of the customer are kept.
func (s *Server) DeleteCustomer(ctx echo.Context, id servers.Id) error {
	d := errorDetails{
		invalid: map[string]string{
			"id": "Provide a valid customer_id which is of type ObjectId. The one you've provided (" + id + ") is NOT valid.",
		},
		notFound:     "Customer NOT found.",
		serverPrefix: "An unexpected error occurred: ",
	}

	cmd, err := commands.NewDeleteCustomerCommand(id)
	if err != nil {
		return respondError(ctx, err, d)
	}

	if err = s.deleteCustomerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err, d)
	}

	return ctx.JSON(http.StatusOK, servers.Detail{Detail: "Customer deleted successfully."})
}

// CreateOrder handles POST /api/v1/orders/ and texts the confirmation to the customer.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.CreateOrderJSONRequestBody
	if err := bindAndValidate(ctx, &body); err != nil {
		return err
	}

	d := errorDetails{
		invalid:  map[string]string{"customer_id": "Invalid customer ID. Must be a valid ObjectId."},
		notFound: "Customer NOT found.",
	}

	cmd, err := commands.NewCreateOrderCommand(body.Item, body.Price, body.CustomerId)
	if err != nil {
		return respondError(ctx, err, d)
	}

	o, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err, d)
	}

	return ctx.JSON(http.StatusCreated, toOrderResponse(o))
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context, id servers.Id) error {
	d := errorDetails{
		invalid:      map[string]string{"id": "Invalid ObjectId provided."},
		notFound:     "Order NOT found.",
		serverPrefix: "An unexpected error occurred.",
	}

	q, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return respondError(ctx, err, d)
	}

	o, err := s.getOrderHandler.Handle(ctx.Request().Context(), q)
	if err != nil {
		return respondError(ctx, err, d)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(o))
}

// UpdateOrder handles PUT /api/v1/orders/:id.
func (s *Server) UpdateOrder(ctx echo.Context, id servers.Id) error {
	var body servers.UpdateOrderJSONRequestBody
	if err := bindAndValidate(ctx, &body); err != nil {
		return err
	}

	d := errorDetails{
		invalid:      map[string]string{"id": "Invalid ObjectId provided."},
		notFound:     "Order with ID: " + id + " NOT found.",
		serverPrefix: "Error updating order: ",
	}

	var status *string
	if body.Status != nil {
		v := string(*body.Status)
		status = &v
	}

	cmd, err := commands.NewUpdateOrderCommand(id, body.Item, body.Price, status)
	if err != nil {
		return respondError(ctx, err, d)
	}

	o, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err, d)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(o))
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
func (s *Server) DeleteOrder(ctx echo.Context, id servers.Id) error {
	d := errorDetails{
		invalid:      map[string]string{"id": "Invalid ObjectId provided."},
		notFound:     "Order NOT found.",
		serverPrefix: "Error deleting order: ",
	}

	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return respondError(ctx, err, d)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err, d)
	}

	return ctx.JSON(http.StatusOK, servers.Detail{Detail: "Order deleted successfully."})
}
