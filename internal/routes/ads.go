package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/karigar-app/admin-api/internal/ads"
)

// RegisterAdRoutes wires ad management endpoints.
func RegisterAdRoutes(r fiber.Router, h *ads.Handler) {
	r.Get("/ads", h.List)
	r.Post("/ads", h.Create)
	r.Get("/ads/stats", h.Stats)
	r.Patch("/ads/:id", h.Update)
	r.Delete("/ads/:id", h.Delete)
	r.Post("/ads/:id/click", h.TrackClick)
	r.Post("/ads/:id/impression", h.TrackImpression)
}
