package order

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes order and acceptance-log endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs an order HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /orders. With userId it returns that user's merged
// history, otherwise every open order.
func (h *Handler) List(c *fiber.Ctx) error {
	userID := c.Query("userId")
	if userID == "" {
		orders, err := h.service.AllOrders(c.UserContext())
		if err != nil {
			return fiber.NewError(http.StatusInternalServerError, err.Error())
		}
		return c.JSON(fiber.Map{"orders": orders, "total": len(orders)})
	}

	orders, err := h.service.UserOrders(c.UserContext(), userID, c.Query("userType"))
	if err != nil {
		if errors.Is(err, ErrUnknownUserType) {
			return fiber.NewError(http.StatusBadRequest, err.Error())
		}
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"orders": orders, "total": len(orders)})
}

// AcceptanceLogs handles GET /acceptance-logs.
func (h *Handler) AcceptanceLogs(c *fiber.Ctx) error {
	logs, err := h.service.AcceptanceLogs(c.UserContext())
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"logs": logs, "total": len(logs)})
}

// AcceptanceLog handles GET /acceptance-logs/:id.
func (h *Handler) AcceptanceLog(c *fiber.Ctx) error {
	log, err := h.service.LogByID(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return fiber.NewError(http.StatusNotFound, "acceptance log not found")
		}
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(log)
}
