package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/okristaps/koknese-be/internal/models"
	"github.com/okristaps/koknese-be/internal/services"
)

// ModelHandler serves the 3D model routes.
type ModelHandler struct {
	Directory *services.DirectoryService
	Media     *services.MediaService
	URLs      *services.URLResolver
}

// NewModelHandler creates a ModelHandler.
func NewModelHandler(directory *services.DirectoryService, media *services.MediaService, urls *services.URLResolver) *ModelHandler {
	return &ModelHandler{Directory: directory, Media: media, URLs: urls}
}

// List handles GET /models to list all available 3D models.
// @Summary List all 3D models
// @Tags models
// @Produce json
// @Success 200 {object} map[string][]models.Asset
// @Failure 500 {object} map[string]string
// @Router /models [get]
func (h *ModelHandler) List(c *fiber.Ctx) error {
	records, err := h.Directory.List(c.Context(), services.Models, "", true)
	if err != nil {
		log.Printf("Error listing models: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list models"})
	}

	assets := make([]models.Asset, 0, len(records))
	for _, obj := range records {
		assets = append(assets, models.Asset{
			Name:         obj.Key,
			Size:         obj.Size,
			LastModified: obj.LastModified,
			URL:          h.URLs.ObjectURL(services.Models.Bucket, obj.Key),
		})
	}
	return c.JSON(fiber.Map{"models": assets})
}

// Stream handles GET /models/stream/:filename for web viewing.
// @Summary Stream a 3D model
// @Tags models
// @Produce model/gltf-binary
// @Param filename path string true "Model filename (.glb)"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /models/stream/{filename} [get]
func (h *ModelHandler) Stream(c *fiber.Ctx) error {
	return streamObject(c, h.Media, streamSpec{
		family:       services.Models,
		badExtension: "Only .glb files are allowed",
		notFound:     "Model not found",
		failure:      "Failed to stream model",
	})
}

// Download handles GET /models/download/:filename with attachment disposition.
// @Summary Download a 3D model
// @Tags models
// @Produce model/gltf-binary
// @Param filename path string true "Model filename (.glb)"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /models/download/{filename} [get]
func (h *ModelHandler) Download(c *fiber.Ctx) error {
	return streamObject(c, h.Media, streamSpec{
		family:       services.Models,
		badExtension: "Only .glb files are allowed",
		notFound:     "Model not found",
		failure:      "Failed to download model",
		download:     true,
	})
}
