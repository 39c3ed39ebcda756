package handler

import (
	"errors"

	"freight-quoter/internal/core/logger"
	"freight-quoter/internal/features/tariffs/domain"
	"freight-quoter/internal/features/tariffs/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CatalogHandler exposes catalog snapshot metadata and reloads.
type CatalogHandler struct {
	catalog ports.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalog ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

func rayID(c *fiber.Ctx) string {
	id, _ := c.Locals("requestid").(string)
	return id
}

// GetCatalog godoc
// @Summary Describe the active tariff catalog
// @Description Returns version, load time, source, row counts per kind and excluded rows of the current snapshot
// @Tags catalog
// @Produce json
// @Success 200 {object} domain.Stats
// @Failure 503 {object} ErrorResponse
// @Router /catalog [get]
func (h *CatalogHandler) GetCatalog(c *fiber.Ctx) error {
	snapshot, err := h.catalog.Snapshot()
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   rayID(c),
		})
	}

	return c.JSON(snapshot.Stats())
}

// ReloadCatalog godoc
// @Summary Reload the tariff catalog
// @Description Reads the configured source and atomically replaces the active snapshot
// @Tags catalog
// @Produce json
// @Success 200 {object} domain.Stats
// @Failure 422 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /catalog/reload [post]
func (h *CatalogHandler) ReloadCatalog(c *fiber.Ctx) error {
	snapshot, err := h.catalog.Reload(c.UserContext())
	if err != nil {
		logger.Get().Error("Catalog reload request failed", zap.Error(err), zap.String("ray_id", rayID(c)))

		status := fiber.StatusBadGateway
		if errors.Is(err, domain.ErrEmptyCatalog) || errors.Is(err, domain.ErrMalformedCatalog) {
			status = fiber.StatusUnprocessableEntity
		}
		return c.Status(status).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   rayID(c),
		})
	}

	return c.JSON(snapshot.Stats())
}
