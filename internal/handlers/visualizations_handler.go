package handlers

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"github.com/okristaps/koknese-be/internal/services"
	"github.com/okristaps/koknese-be/internal/storage"
)

// VisualizationHandler serves the per-place 3D/HTML visualization routes.
type VisualizationHandler struct {
	Service *services.VisualizationService
}

// NewVisualizationHandler creates a VisualizationHandler.
func NewVisualizationHandler(service *services.VisualizationService) *VisualizationHandler {
	return &VisualizationHandler{Service: service}
}

// Get handles GET /visualizations/:placeId, resolving the place's published
// visualization (folder layout first, flat fallback).
// @Summary Get a place's visualization URL
// @Tags visualizations
// @Produce json
// @Param placeId path string true "Place ID"
// @Success 200 {object} models.Visualization
// @Failure 404 {object} map[string]string
// @Router /visualizations/{placeId} [get]
func (h *VisualizationHandler) Get(c *fiber.Ctx) error {
	placeID := c.Params("placeId")

	viz, err := h.Service.Resolve(c.Context(), placeID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": fmt.Sprintf("Visualization not found for place: %s", placeID),
			})
		}
		log.Printf("Error getting visualization: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to get visualization"})
	}
	return c.JSON(viz)
}

// List handles GET /visualizations.
// @Summary List all published visualizations
// @Tags visualizations
// @Produce json
// @Success 200 {object} map[string][]models.Visualization
// @Failure 500 {object} map[string]string
// @Router /visualizations [get]
func (h *VisualizationHandler) List(c *fiber.Ctx) error {
	visualizations, err := h.Service.List(c.Context())
	if err != nil {
		log.Printf("Error listing visualizations: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list visualizations"})
	}
	return c.JSON(fiber.Map{"visualizations": visualizations})
}
