package dashboard

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes dashboard aggregate endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a dashboard HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Counts handles GET /dashboard/counts.
func (h *Handler) Counts(c *fiber.Ctx) error {
	counts, err := h.service.Counts(c.UserContext())
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(counts)
}

// Cities handles GET /dashboard/cities.
func (h *Handler) Cities(c *fiber.Ctx) error {
	cities, err := h.service.Cities(c.UserContext())
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"cities": cities})
}

// Categories handles GET /dashboard/categories.
func (h *Handler) Categories(c *fiber.Ctx) error {
	categories, err := h.service.Categories(c.UserContext())
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"categories": categories})
}

// UserStats handles GET /dashboard/user-stats.
func (h *Handler) UserStats(c *fiber.Ctx) error {
	stats, err := h.service.UserStats(c.UserContext())
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(stats)
}
