// Package http exposes the order management operations over an echo HTTP
// API. This is presentation wiring only: all invariants live in the core,
// and the strict name policy is applied here because this is an interactive
// entry surface.
package http

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"shipping/internal/core/application/orders"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/order"
	"shipping/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// OrderManager is the slice of the manager this adapter consumes.
type OrderManager interface {
	AddOrder(ctx context.Context, customerName string, shipperName string, weight float64, distance int) bool
	UpdateOrder(ctx context.Context, orderID int64, weight float64, distance int) bool
	DeleteOrder(ctx context.Context, orderID int64) bool
	FindOrder(orderID int64) (*order.Order, bool)
	AllOrders() []*order.Order
	LoadOrders(ctx context.Context, r io.Reader) orders.ImportReport
}

// Server handles the HTTP surface over the order manager and the party
// directory.
type Server struct {
	manager OrderManager
	parties ports.PartyDirectory
	store   ports.Store
}

// NewServer creates a Server with its collaborators.
func NewServer(manager OrderManager, parties ports.PartyDirectory, store ports.Store) *Server {
	return &Server{
		manager: manager,
		parties: parties,
		store:   store,
	}
}

// RegisterRoutes mounts all routes on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders", s.CreateOrder)
	api.PUT("/orders/:id", s.UpdateOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)
	api.POST("/orders/import", s.ImportOrders)
	api.GET("/customers", s.GetCustomers)
	api.GET("/shippers", s.GetShippers)
}

// Error is the uniform error payload.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Order is the wire representation of a shipping order.
type Order struct {
	ID           int64   `json:"id"`
	CustomerID   int64   `json:"customerId"`
	ShipperID    int64   `json:"shipperId"`
	CustomerName string  `json:"customerName"`
	ShipperName  string  `json:"shipperName"`
	Weight       float64 `json:"weight"`
	Distance     int     `json:"distance"`
	Cost         float64 `json:"cost"`
}

// NewOrder is the request payload for order creation.
type NewOrder struct {
	CustomerName string  `json:"customerName"`
	ShipperName  string  `json:"shipperName"`
	Weight       float64 `json:"weight"`
	Distance     int     `json:"distance"`
}

// OrderUpdate is the request payload for order updates.
type OrderUpdate struct {
	Weight   float64 `json:"weight"`
	Distance int     `json:"distance"`
}

// Customer is the wire representation of a customer.
type Customer struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Shipper is the wire representation of a shipper.
type Shipper struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	if !s.store.IsLive(ctx.Request().Context()) {
		return ctx.JSON(http.StatusServiceUnavailable, Error{
			Code:    http.StatusServiceUnavailable,
			Message: "store is not reachable",
		})
	}

	return ctx.String(http.StatusOK, "Healthy")
}

// GetOrders handles GET /api/v1/orders - returns the cache snapshot.
func (s *Server) GetOrders(ctx echo.Context) error {
	all := s.manager.AllOrders()

	response := make([]Order, len(all))
	for i, o := range all {
		response[i] = toOrderResponse(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := parseOrderID(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "order id must be a positive integer",
		})
	}

	o, found := s.manager.FindOrder(id)
	if !found {
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: "order not found",
		})
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(o))
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req NewOrder
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	// Interactive entry applies the strict policy; the manager re-checks the
	// lenient one.
	if !kernel.IsStrictName(req.CustomerName) {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "customer name must contain only letters separated by single spaces",
		})
	}
	if !kernel.IsStrictName(req.ShipperName) {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "shipper name must contain only letters separated by single spaces",
		})
	}

	if !s.manager.AddOrder(ctx.Request().Context(), req.CustomerName, req.ShipperName, req.Weight, req.Distance) {
		return ctx.JSON(http.StatusUnprocessableEntity, Error{
			Code:    http.StatusUnprocessableEntity,
			Message: "order was not accepted",
		})
	}

	return ctx.NoContent(http.StatusCreated)
}

// UpdateOrder handles PUT /api/v1/orders/:id.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	id, err := parseOrderID(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "order id must be a positive integer",
		})
	}

	var req OrderUpdate
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	if _, found := s.manager.FindOrder(id); !found {
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: "order not found",
		})
	}

	if !s.manager.UpdateOrder(ctx.Request().Context(), id, req.Weight, req.Distance) {
		return ctx.JSON(http.StatusUnprocessableEntity, Error{
			Code:    http.StatusUnprocessableEntity,
			Message: "order was not updated",
		})
	}

	return ctx.NoContent(http.StatusOK)
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	id, err := parseOrderID(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "order id must be a positive integer",
		})
	}

	if !s.manager.DeleteOrder(ctx.Request().Context(), id) {
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: "order not found",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ImportOrders handles POST /api/v1/orders/import - streams the request body
// through the bulk loader and returns the per-line report.
func (s *Server) ImportOrders(ctx echo.Context) error {
	report := s.manager.LoadOrders(ctx.Request().Context(), ctx.Request().Body)
	return ctx.JSON(http.StatusOK, report)
}

// GetCustomers handles GET /api/v1/customers.
func (s *Server) GetCustomers(ctx echo.Context) error {
	customers, err := s.parties.Customers(ctx.Request().Context())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "failed to retrieve customers",
		})
	}

	response := make([]Customer, len(customers))
	for i, c := range customers {
		response[i] = Customer{
			ID:    c.ID(),
			Name:  c.Name().String(),
			Email: c.Email(),
			Phone: c.Phone(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetShippers handles GET /api/v1/shippers.
func (s *Server) GetShippers(ctx echo.Context) error {
	shippers, err := s.parties.Shippers(ctx.Request().Context())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "failed to retrieve shippers",
		})
	}

	response := make([]Shipper, len(shippers))
	for i, sh := range shippers {
		response[i] = Shipper{
			ID:    sh.ID(),
			Name:  sh.Name().String(),
			Phone: sh.Phone(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func toOrderResponse(o *order.Order) Order {
	return Order{
		ID:           o.ID(),
		CustomerID:   o.CustomerID(),
		ShipperID:    o.ShipperID(),
		CustomerName: o.CustomerName(),
		ShipperName:  o.ShipperName(),
		Weight:       o.Weight().Pounds(),
		Distance:     o.Distance().Miles(),
		Cost:         o.Cost(),
	}
}

func parseOrderID(ctx echo.Context) (int64, error) {
	return strconv.ParseInt(ctx.Param("id"), 10, 64)
}
