package handler

import (
	"log/slog"
	"net/http"

	"phonestore/internal/delivery/http/middleware"
	"phonestore/internal/delivery/http/response"
	"phonestore/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminOrderHandler holds dependencies for staff order management.
type AdminOrderHandler struct {
	uc     usecase.OrderAdminUsecase
	logger *slog.Logger
}

// NewAdminOrderHandler is the constructor for AdminOrderHandler, injected by Fx.
func NewAdminOrderHandler(uc usecase.OrderAdminUsecase, logger *slog.Logger) *AdminOrderHandler {
	return &AdminOrderHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListOrders handles the staff request to page through all orders.
func (h *AdminOrderHandler) ListOrders(c echo.Context) error {
	actor, ok := middleware.Actor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	page, err := h.uc.ListAllOrders(c.Request().Context(), actor, usecase.ListOrdersInput{Page: queryPage(c)})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"orders":      page.Orders,
		"page":        page.Page,
		"page_size":   page.PageSize,
		"total_count": page.TotalCount,
	}, "Orders retrieved successfully")
}

// GetOrder handles the staff request to view any order.
func (h *AdminOrderHandler) GetOrder(c echo.Context) error {
	actor, ok := middleware.Actor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order ID")
	}

	order, err := h.uc.GetOrder(c.Request().Context(), actor, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order retrieved successfully")
}

// UpdateStatus handles the staff request to move an order to a new status.
func (h *AdminOrderHandler) UpdateStatus(c echo.Context) error {
	actor, ok := middleware.Actor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order ID")
	}

	var input usecase.UpdateOrderStatusInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	order, err := h.uc.UpdateStatus(c.Request().Context(), actor, orderID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order status updated successfully")
}
