package dbhealth

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes the database health probe.
type Handler struct {
	service *Service
}

// NewHandler constructs a dbhealth HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Check handles GET /dbhealth. The HTTP status mirrors the probe: 200
// while usable, 503 once the record store is gone.
func (h *Handler) Check(c *fiber.Ctx) error {
	report := h.service.Check(c.UserContext())
	if report.Status == StatusOffline {
		return c.Status(http.StatusServiceUnavailable).JSON(report)
	}
	return c.JSON(report)
}
