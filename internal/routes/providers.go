package routes

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/karigar-app/admin-api/internal/notification"
	"github.com/karigar-app/admin-api/internal/provider"
)

// RegisterProviderRoutes wires provider management endpoints. The single
// approve/reject routes pair the status transition with a best-effort
// push notification; the transition result never depends on delivery.
func RegisterProviderRoutes(r fiber.Router, h *provider.Handler, svc *provider.Service, dispatcher *notification.Dispatcher, logger *slog.Logger) {
	r.Get("/providers", h.List)
	r.Post("/providers", h.Create)
	r.Get("/providers/status-counts", h.StatusCounts)
	r.Get("/providers/:id", h.Get)
	r.Patch("/providers/:id", h.Update)
	r.Delete("/providers/:id", h.Delete)

	r.Post("/providers/bulk/approve", h.BulkApprove)
	r.Post("/providers/bulk/reject", h.BulkReject)

	r.Post("/providers/:id/approve", func(c *fiber.Ctx) error {
		id := c.Params("id")
		p, err := svc.Get(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, provider.ErrNotFound) {
				return fiber.NewError(http.StatusNotFound, "provider not found")
			}
			return fiber.NewError(http.StatusInternalServerError, err.Error())
		}
		if err := svc.SetStatus(c.UserContext(), id, provider.StatusAccepted, ""); err != nil {
			return fiber.NewError(http.StatusInternalServerError, err.Error())
		}

		result := dispatcher.SendApproval(c.UserContext(), p.UID, p.Name, notification.UserTypeProvider)
		logOutcome(logger, "provider approved", id, result)
		return c.JSON(fiber.Map{
			"success":      true,
			"status":       provider.StatusAccepted,
			"notification": result,
		})
	})

	r.Post("/providers/:id/reject", func(c *fiber.Ctx) error {
		var body struct {
			Reason string `json:"reason"`
		}
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(http.StatusBadRequest, err.Error())
		}
		if body.Reason == "" {
			return fiber.NewError(http.StatusBadRequest, "reason is required")
		}

		id := c.Params("id")
		p, err := svc.Get(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, provider.ErrNotFound) {
				return fiber.NewError(http.StatusNotFound, "provider not found")
			}
			return fiber.NewError(http.StatusInternalServerError, err.Error())
		}
		if err := svc.SetStatus(c.UserContext(), id, provider.StatusRejected, body.Reason); err != nil {
			return fiber.NewError(http.StatusInternalServerError, err.Error())
		}

		result := dispatcher.SendRejection(c.UserContext(), p.UID, p.Name, body.Reason)
		logOutcome(logger, "provider rejected", id, result)
		return c.JSON(fiber.Map{
			"success":      true,
			"status":       provider.StatusRejected,
			"notification": result,
		})
	})
}

func logOutcome(logger *slog.Logger, msg, id string, result notification.Result) {
	if logger == nil {
		return
	}
	logger.Info(msg,
		slog.String("provider_id", id),
		slog.Bool("notified", result.Success),
	)
}
