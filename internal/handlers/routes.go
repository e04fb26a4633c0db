package handlers

import "github.com/gofiber/fiber/v2"

// Register wires every API route under the /api prefix.
func Register(app *fiber.App, modelH *ModelHandler, audioH *AudioGuideHandler, imageH *ImageHandler, vizH *VisualizationHandler, uploadH *UploadHandler) {
	api := app.Group("/api")

	modelsGroup := api.Group("/models")
	modelsGroup.Get("/", modelH.List)
	modelsGroup.Get("/stream/:filename", modelH.Stream)
	modelsGroup.Get("/download/:filename", modelH.Download)

	audioGroup := api.Group("/audio-guides")
	audioGroup.Get("/", audioH.List)
	audioGroup.Get("/stream/:filename", audioH.Stream)
	audioGroup.Get("/download/:filename", audioH.Download)

	imagesGroup := api.Group("/images")
	imagesGroup.Get("/debug", imageH.Debug)
	imagesGroup.Get("/:placeId", imageH.ListGrouped)

	vizGroup := api.Group("/visualizations")
	vizGroup.Get("/", vizH.List)
	vizGroup.Get("/:placeId", vizH.Get)

	uploadGroup := api.Group("/upload")
	uploadGroup.Post("/model", uploadH.UploadModel)
	uploadGroup.Post("/audio-guide", uploadH.UploadAudioGuide)
	uploadGroup.Post("/visualization/:placeId", uploadH.UploadVisualization)
	uploadGroup.Delete("/model/:filename", uploadH.DeleteModel)
	uploadGroup.Delete("/audio-guide/:filename", uploadH.DeleteAudioGuide)
	uploadGroup.Delete("/visualization/:placeId", uploadH.DeleteVisualization)
}
