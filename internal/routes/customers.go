package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/karigar-app/admin-api/internal/customer"
)

// RegisterCustomerRoutes wires customer management endpoints.
func RegisterCustomerRoutes(r fiber.Router, h *customer.Handler) {
	r.Get("/customers", h.List)
	r.Get("/customers/:id", h.Get)
	r.Patch("/customers/:id", h.Update)
	r.Delete("/customers/:id", h.Delete)
}
