package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/karigar-app/admin-api/internal/review"
)

// RegisterReviewRoutes wires review endpoints.
func RegisterReviewRoutes(r fiber.Router, h *review.Handler) {
	r.Get("/reviews", h.List)
	r.Get("/reviews/:id", h.Get)
}
