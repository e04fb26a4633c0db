package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/okristaps/koknese-be/internal/models"
	"github.com/okristaps/koknese-be/internal/services"
)

// AudioGuideHandler serves the audio guide routes. Audio is always proxied
// through the gateway, so listings carry same-origin stream URLs.
type AudioGuideHandler struct {
	Directory *services.DirectoryService
	Media     *services.MediaService
}

// NewAudioGuideHandler creates an AudioGuideHandler.
func NewAudioGuideHandler(directory *services.DirectoryService, media *services.MediaService) *AudioGuideHandler {
	return &AudioGuideHandler{Directory: directory, Media: media}
}

// List handles GET /audio-guides to list all available audio guides.
// @Summary List all audio guides
// @Tags audio-guides
// @Produce json
// @Success 200 {object} map[string][]models.Asset
// @Failure 500 {object} map[string]string
// @Router /audio-guides [get]
func (h *AudioGuideHandler) List(c *fiber.Ctx) error {
	records, err := h.Directory.List(c.Context(), services.AudioGuides, "", true)
	if err != nil {
		log.Printf("Error listing audio guides: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list audio guides"})
	}

	guides := make([]models.Asset, 0, len(records))
	for _, obj := range records {
		guides = append(guides, models.Asset{
			Name:         obj.Key,
			Size:         obj.Size,
			LastModified: obj.LastModified,
			URL:          services.StreamURL("audio-guides", obj.Key),
		})
	}
	return c.JSON(fiber.Map{"audioGuides": guides})
}

// Stream handles GET /audio-guides/stream/:filename.
// @Summary Stream an audio guide
// @Tags audio-guides
// @Produce audio/mpeg
// @Param filename path string true "Audio filename (mp3, wav, ogg, m4a)"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /audio-guides/stream/{filename} [get]
func (h *AudioGuideHandler) Stream(c *fiber.Ctx) error {
	return streamObject(c, h.Media, streamSpec{
		family:       services.AudioGuides,
		badExtension: "Only audio files are allowed",
		notFound:     "Audio guide not found",
		failure:      "Failed to stream audio guide",
	})
}

// Download handles GET /audio-guides/download/:filename.
// @Summary Download an audio guide
// @Tags audio-guides
// @Produce audio/mpeg
// @Param filename path string true "Audio filename (mp3, wav, ogg, m4a)"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /audio-guides/download/{filename} [get]
func (h *AudioGuideHandler) Download(c *fiber.Ctx) error {
	return streamObject(c, h.Media, streamSpec{
		family:       services.AudioGuides,
		badExtension: "Only audio files are allowed",
		notFound:     "Audio guide not found",
		failure:      "Failed to download audio guide",
		download:     true,
	})
}
