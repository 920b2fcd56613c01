package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/karigar-app/admin-api/internal/dbhealth"
)

// RegisterDBHealthRoutes wires the database health probe.
func RegisterDBHealthRoutes(r fiber.Router, h *dbhealth.Handler) {
	r.Get("/dbhealth", h.Check)
}
