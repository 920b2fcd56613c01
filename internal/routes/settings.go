package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/karigar-app/admin-api/internal/settings"
)

// RegisterSettingsRoutes wires platform settings endpoints.
func RegisterSettingsRoutes(r fiber.Router, h *settings.Handler) {
	r.Get("/settings/cities", h.Cities)
	r.Post("/settings/cities", h.AddCity)
	r.Delete("/settings/cities/:name", h.DeleteCity)
}
