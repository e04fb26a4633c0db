package handlers

import (
	"fmt"
	"log"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"github.com/okristaps/koknese-be/internal/services"
	"github.com/okristaps/koknese-be/internal/storage"
)

// UploadHandler serves the mutation routes: multipart uploads and deletes.
type UploadHandler struct {
	Media          *services.MediaService
	Visualizations *services.VisualizationService
}

// NewUploadHandler creates an UploadHandler.
func NewUploadHandler(media *services.MediaService, visualizations *services.VisualizationService) *UploadHandler {
	return &UploadHandler{Media: media, Visualizations: visualizations}
}

// formFile reads the single "file" multipart field. A missing field is a
// validation error, not a server failure.
func formFile(c *fiber.Ctx) (*multipart.FileHeader, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return nil, services.ErrNoFile
	}
	return fileHeader, nil
}

// UploadModel handles POST /upload/model.
// @Summary Upload a 3D model
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "GLB file"
// @Success 200 {object} models.UploadResult
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /upload/model [post]
func (h *UploadHandler) UploadModel(c *fiber.Ctx) error {
	fileHeader, err := formFile(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No file provided"})
	}

	result, err := h.Media.Upload(c.Context(), services.Models, fileHeader, "models")
	if err != nil {
		if errors.Is(err, services.ErrInvalidExtension) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Only .glb files are allowed"})
		}
		log.Printf("Error uploading model: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to upload model"})
	}
	result.Message = "Model uploaded successfully"
	return c.JSON(result)
}

// UploadAudioGuide handles POST /upload/audio-guide.
// @Summary Upload an audio guide
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Audio file (mp3, wav, ogg, m4a)"
// @Success 200 {object} models.UploadResult
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /upload/audio-guide [post]
func (h *UploadHandler) UploadAudioGuide(c *fiber.Ctx) error {
	fileHeader, err := formFile(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No file provided"})
	}

	result, err := h.Media.Upload(c.Context(), services.AudioGuides, fileHeader, "audio-guides")
	if err != nil {
		if errors.Is(err, services.ErrInvalidExtension) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Only audio files (%s) are allowed", services.AudioGuides.ExtensionList()),
			})
		}
		log.Printf("Error uploading audio guide: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to upload audio guide"})
	}
	result.Message = "Audio guide uploaded successfully"
	return c.JSON(result)
}

// UploadVisualization handles POST /upload/visualization/:placeId with a
// zipped visualization folder.
// @Summary Publish a zipped visualization for a place
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Param placeId path string true "Place ID"
// @Param file formData file true "ZIP archive with index.htm at its root"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /upload/visualization/{placeId} [post]
func (h *UploadHandler) UploadVisualization(c *fiber.Ctx) error {
	placeID := c.Params("placeId")

	fileHeader, err := formFile(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No file provided"})
	}

	count, err := h.Visualizations.UploadArchive(c.Context(), placeID, fileHeader)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidExtension):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Only .zip archives are allowed"})
		case errors.Is(err, services.ErrNoEntryPoint):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		log.Printf("Error uploading visualization for %s: %v", placeID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to upload visualization"})
	}

	return c.JSON(fiber.Map{
		"message": "Visualization uploaded successfully",
		"placeId": placeID,
		"files":   count,
		"url":     h.Visualizations.EntryURL(placeID),
	})
}

// DeleteModel handles DELETE /upload/model/:filename.
// @Summary Delete a 3D model
// @Tags upload
// @Produce json
// @Param filename path string true "Model filename"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /upload/model/{filename} [delete]
func (h *UploadHandler) DeleteModel(c *fiber.Ctx) error {
	filename := paramFilename(c)

	if err := h.Media.Delete(c.Context(), services.Models, filename); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Model not found"})
		}
		log.Printf("Error deleting model %s: %v", filename, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete model"})
	}
	return c.JSON(fiber.Map{"message": "Model deleted successfully", "filename": filename})
}

// DeleteAudioGuide handles DELETE /upload/audio-guide/:filename.
// @Summary Delete an audio guide
// @Tags upload
// @Produce json
// @Param filename path string true "Audio guide filename"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /upload/audio-guide/{filename} [delete]
func (h *UploadHandler) DeleteAudioGuide(c *fiber.Ctx) error {
	filename := paramFilename(c)

	if err := h.Media.Delete(c.Context(), services.AudioGuides, filename); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Audio guide not found"})
		}
		log.Printf("Error deleting audio guide %s: %v", filename, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete audio guide"})
	}
	return c.JSON(fiber.Map{"message": "Audio guide deleted successfully", "filename": filename})
}

// DeleteVisualization handles DELETE /upload/visualization/:placeId,
// removing both key layouts.
// @Summary Delete a place's visualization
// @Tags upload
// @Produce json
// @Param placeId path string true "Place ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /upload/visualization/{placeId} [delete]
func (h *UploadHandler) DeleteVisualization(c *fiber.Ctx) error {
	placeID := c.Params("placeId")

	if err := h.Visualizations.Delete(c.Context(), placeID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": fmt.Sprintf("Visualization not found for place: %s", placeID),
			})
		}
		log.Printf("Error deleting visualization %s: %v", placeID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete visualization"})
	}
	return c.JSON(fiber.Map{"message": "Visualization deleted successfully", "placeId": placeID})
}
