package handlers

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/okristaps/koknese-be/internal/models"
	"github.com/okristaps/koknese-be/internal/services"
)

// ImageHandler serves per-place image groups.
type ImageHandler struct {
	Directory *services.DirectoryService
	URLs      *services.URLResolver
}

// NewImageHandler creates an ImageHandler.
func NewImageHandler(directory *services.DirectoryService, urls *services.URLResolver) *ImageHandler {
	return &ImageHandler{Directory: directory, URLs: urls}
}

// ListGrouped handles GET /images/:placeId, returning the place's images
// partitioned into the four layout slots. A store failure degrades to empty
// groups so the page stays renderable.
// @Summary Get a place's images grouped by layout slot
// @Tags images
// @Produce json
// @Param placeId path string true "Place ID"
// @Success 200 {object} models.GroupedImages
// @Router /images/{placeId} [get]
func (h *ImageHandler) ListGrouped(c *fiber.Ctx) error {
	placeID := c.Params("placeId")
	prefix := placeID + "/"

	records, err := h.Directory.List(c.Context(), services.Images, prefix, false)
	if err != nil {
		log.Printf("Error listing images: %v", err)
		return c.JSON(models.GroupedImages{})
	}

	images := make([]models.ImageInfo, 0, len(records))
	for _, obj := range records {
		images = append(images, models.ImageInfo{
			Filename: strings.TrimPrefix(obj.Key, prefix),
			URL:      h.URLs.ObjectURL(services.Images.Bucket, obj.Key),
		})
	}

	grouped := services.GroupImages(images)
	log.Printf("Grouped %d images for %s: [%d, %d, %d, %d]",
		len(images), placeID,
		len(grouped[models.SlotFirst]), len(grouped[models.SlotUpperMiddle]),
		len(grouped[models.SlotLowerMiddle]), len(grouped[models.SlotLast]))

	return c.JSON(grouped)
}

// Debug handles GET /images/debug with the raw bucket listing.
// @Summary Dump the raw images bucket listing
// @Tags images
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /images/debug [get]
func (h *ImageHandler) Debug(c *fiber.Ctx) error {
	records, err := h.Directory.Store.List(c.Context(), services.Images.Bucket, "", true)
	if err != nil {
		log.Printf("Error listing all objects: %v", err)
		return c.JSON(fiber.Map{"error": err.Error()})
	}

	objects := make([]fiber.Map, 0, len(records))
	for _, obj := range records {
		objects = append(objects, fiber.Map{
			"name":         obj.Key,
			"size":         obj.Size,
			"lastModified": obj.LastModified,
		})
	}
	return c.JSON(fiber.Map{"bucket": services.Images.Bucket, "objects": objects})
}
