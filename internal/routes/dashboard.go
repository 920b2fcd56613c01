package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/karigar-app/admin-api/internal/dashboard"
)

// RegisterDashboardRoutes wires dashboard aggregate endpoints.
func RegisterDashboardRoutes(r fiber.Router, h *dashboard.Handler) {
	r.Get("/dashboard/counts", h.Counts)
	r.Get("/dashboard/cities", h.Cities)
	r.Get("/dashboard/categories", h.Categories)
	r.Get("/dashboard/user-stats", h.UserStats)
}
