package review

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/karigar-app/admin-api/internal/order"
)

// Handler exposes review endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a review HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /reviews?audience=customer|provider.
func (h *Handler) List(c *fiber.Ctx) error {
	summary, err := h.service.List(c.UserContext(), c.Query("audience"))
	if err != nil {
		if errors.Is(err, ErrUnknownAudience) {
			return fiber.NewError(http.StatusBadRequest, err.Error())
		}
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(summary)
}

// Get handles GET /reviews/:id.
func (h *Handler) Get(c *fiber.Ctx) error {
	r, err := h.service.Get(c.UserContext(), c.Params("id"), c.Query("audience"))
	if err != nil {
		switch {
		case errors.Is(err, ErrUnknownAudience):
			return fiber.NewError(http.StatusBadRequest, err.Error())
		case errors.Is(err, order.ErrNotFound):
			return fiber.NewError(http.StatusNotFound, "review not found")
		}
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(r)
}
