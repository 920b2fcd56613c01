package provider

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes provider CRUD and bulk-review endpoints. Single-record
// approve/reject live in the routes package because they also drive the
// notification dispatcher; bulk operations deliberately do not notify.
type Handler struct {
	service *Service
}

// NewHandler constructs a provider HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type bulkRequest struct {
	IDs    []string `json:"ids"`
	Reason string   `json:"reason"`
}

// List handles GET /providers with optional ?status= and ?q= filters.
func (h *Handler) List(c *fiber.Ctx) error {
	var (
		providers []Provider
		err       error
	)
	if term := c.Query("q"); term != "" {
		providers, err = h.service.Search(c.UserContext(), term)
	} else {
		providers, err = h.service.ListByStatus(c.UserContext(), c.Query("status"))
	}
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"providers": providers, "total": len(providers)})
}

// Get handles GET /providers/:id.
func (h *Handler) Get(c *fiber.Ctx) error {
	p, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return fiber.NewError(http.StatusNotFound, "provider not found")
		}
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(p)
}

// Create handles POST /providers.
func (h *Handler) Create(c *fiber.Ctx) error {
	var input CreateInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if input.Name == "" || input.UID == "" {
		return fiber.NewError(http.StatusBadRequest, "uid and name are required")
	}

	p, err := h.service.Create(c.UserContext(), input)
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusCreated).JSON(p)
}

// Update handles PATCH /providers/:id.
func (h *Handler) Update(c *fiber.Ctx) error {
	var input UpdateInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := h.service.Update(c.UserContext(), c.Params("id"), input); err != nil {
		if errors.Is(err, ErrNotFound) {
			return fiber.NewError(http.StatusNotFound, "provider not found")
		}
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"success": true, "message": "Provider updated successfully"})
}

// Delete handles DELETE /providers/:id.
func (h *Handler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			return fiber.NewError(http.StatusNotFound, "provider not found")
		}
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"success": true, "message": "Provider deleted successfully"})
}

// BulkApprove handles POST /providers/bulk/approve. The batch reports one
// outcome: if any transition failed the whole batch reads as failed, even
// though earlier writes may have committed.
func (h *Handler) BulkApprove(c *fiber.Ctx) error {
	var req bulkRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.BulkSetStatus(c.UserContext(), req.IDs, StatusAccepted, ""); err != nil {
		if errors.Is(err, ErrEmptyBatch) {
			return fiber.NewError(http.StatusBadRequest, err.Error())
		}
		return fiber.NewError(http.StatusInternalServerError, "bulk approve failed")
	}
	return c.JSON(fiber.Map{"success": true, "approved": len(req.IDs), "notified": false})
}

// BulkReject handles POST /providers/bulk/reject. A reason is required; an
// empty one aborts before any transition is dispatched.
func (h *Handler) BulkReject(c *fiber.Ctx) error {
	var req bulkRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if req.Reason == "" {
		return fiber.NewError(http.StatusBadRequest, "rejection reason is required")
	}

	if err := h.service.BulkSetStatus(c.UserContext(), req.IDs, StatusRejected, req.Reason); err != nil {
		if errors.Is(err, ErrEmptyBatch) {
			return fiber.NewError(http.StatusBadRequest, err.Error())
		}
		return fiber.NewError(http.StatusInternalServerError, "bulk reject failed")
	}
	return c.JSON(fiber.Map{"success": true, "rejected": len(req.IDs), "notified": false})
}

// StatusCounts handles GET /providers/status-counts.
func (h *Handler) StatusCounts(c *fiber.Ctx) error {
	counts, err := h.service.StatusCounts(c.UserContext())
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(counts)
}
