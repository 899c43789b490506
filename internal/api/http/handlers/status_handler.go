package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/catalog-service/internal/api/dto"
	"github.com/spec-kit/catalog-service/internal/service"
)

// StatusHandler records and lists client status-check pings.
type StatusHandler struct {
	status *service.StatusService
}

// NewStatusHandler constructs handler.
func NewStatusHandler(statusService *service.StatusService) *StatusHandler {
	return &StatusHandler{status: statusService}
}

// Create handles POST /api/status.
func (h *StatusHandler) Create(c *fiber.Ctx) error {
	var req dto.StatusCheckCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	check, err := h.status.Record(c.Context(), req.ClientName)
	if err != nil {
		return err
	}
	return c.JSON(check)
}

// List handles GET /api/status.
func (h *StatusHandler) List(c *fiber.Ctx) error {
	checks, err := h.status.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(checks)
}
