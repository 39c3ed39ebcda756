package handler

import (
	"freight-quoter/internal/core/textnorm"
	"freight-quoter/internal/features/hubs/domain"

	"github.com/gofiber/fiber/v2"
)

// HubsHandler serves the hub directory.
type HubsHandler struct {
	directory *domain.Directory
}

// NewHubsHandler creates a new HubsHandler.
func NewHubsHandler(directory *domain.Directory) *HubsHandler {
	return &HubsHandler{directory: directory}
}

// ResolveResponse is the hub chosen for a place.
type ResolveResponse struct {
	Place  string     `json:"place"`
	Region string     `json:"region,omitempty"`
	Hub    domain.Hub `json:"hub"`
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	Message string `json:"message"`
	RayID   string `json:"ray_id,omitempty"`
}

// ListHubs godoc
// @Summary List hubs
// @Tags hubs
// @Produce json
// @Success 200 {array} domain.Hub
// @Router /hubs [get]
func (h *HubsHandler) ListHubs(c *fiber.Ctx) error {
	return c.JSON(h.directory.Hubs())
}

// ResolveHub godoc
// @Summary Resolve the hub serving a place
// @Tags hubs
// @Produce json
// @Param place query string true "City name, optionally City - UF"
// @Param region query string false "State/UF code"
// @Success 200 {object} ResolveResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /hubs/resolve [get]
func (h *HubsHandler) ResolveHub(c *fiber.Ctx) error {
	rayID, _ := c.Locals("requestid").(string)

	place := c.Query("place")
	if place == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "place query parameter is required",
			RayID:   rayID,
		})
	}
	region := c.Query("region")
	if region == "" {
		place, region = textnorm.SplitRegion(place)
	}

	code, ok := h.directory.ResolveHub(place, region)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Message: "no hub serves this place",
			RayID:   rayID,
		})
	}

	hub, _ := h.directory.Lookup(code)
	return c.JSON(ResolveResponse{Place: place, Region: region, Hub: hub})
}
