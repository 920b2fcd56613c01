package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/karigar-app/admin-api/internal/order"
)

// RegisterOrderRoutes wires order and acceptance-log endpoints.
func RegisterOrderRoutes(r fiber.Router, h *order.Handler) {
	r.Get("/orders", h.List)
	r.Get("/acceptance-logs", h.AcceptanceLogs)
	r.Get("/acceptance-logs/:id", h.AcceptanceLog)
}
