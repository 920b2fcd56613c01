package settings

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes settings endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a settings HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Cities handles GET /settings/cities.
func (h *Handler) Cities(c *fiber.Ctx) error {
	cities, err := h.service.Cities(c.UserContext())
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"cities": cities, "total": len(cities)})
}

// AddCity handles POST /settings/cities.
func (h *Handler) AddCity(c *fiber.Ctx) error {
	var body struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	cities, err := h.service.AddCity(c.UserContext(), body.Name)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyCity):
			return fiber.NewError(http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrDuplicateCity):
			return fiber.NewError(http.StatusConflict, err.Error())
		}
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"cities": cities, "total": len(cities)})
}

// DeleteCity handles DELETE /settings/cities/:name.
func (h *Handler) DeleteCity(c *fiber.Ctx) error {
	cities, err := h.service.DeleteCity(c.UserContext(), c.Params("name"))
	if err != nil {
		if errors.Is(err, ErrCityNotFound) {
			return fiber.NewError(http.StatusNotFound, err.Error())
		}
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"cities": cities, "total": len(cities)})
}
