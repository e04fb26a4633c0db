package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okristaps/koknese-be/internal/config"
	"github.com/okristaps/koknese-be/internal/services"
	"github.com/okristaps/koknese-be/internal/storage"
)

func setupApp(t *testing.T) (*fiber.App, *storage.MemoryStore) {
	t.Helper()

	store := storage.NewMemoryStore()
	urls := services.NewURLResolver(&config.Config{MinioEndpoint: "localhost", MinioPort: "9000"})
	directory := services.NewDirectoryService(store)
	media := services.NewMediaService(store)
	visualizations := services.NewVisualizationService(store, urls)

	app := fiber.New()
	Register(app,
		NewModelHandler(directory, media, urls),
		NewAudioGuideHandler(directory, media),
		NewImageHandler(directory, urls),
		NewVisualizationHandler(visualizations),
		NewUploadHandler(media, visualizations),
	)
	return app, store
}

func seed(t *testing.T, store *storage.MemoryStore, bucket, key, contentType, content string) {
	t.Helper()
	err := store.Put(context.Background(), bucket, key, strings.NewReader(content), int64(len(content)), contentType, nil)
	require.NoError(t, err)
}

func uploadRequest(t *testing.T, url, filename string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, url, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func decodeJSON(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestUploadThenStreamAudioGuide(t *testing.T) {
	app, _ := setupApp(t)
	content := []byte("these are the mp3 bytes")

	resp, err := app.Test(uploadRequest(t, "/api/upload/audio-guide", "guide.mp3", content))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeJSON(t, resp)
	assert.Equal(t, "Audio guide uploaded successfully", body["message"])
	assert.Equal(t, "guide.mp3", body["filename"])
	assert.Equal(t, float64(len(content)), body["size"])
	assert.Equal(t, "/api/audio-guides/stream/guide.mp3", body["url"])

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/audio-guides/stream/guide.mp3", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "audio/mpeg", resp.Header.Get(fiber.HeaderContentType))
	assert.Equal(t, "public, max-age=31536000", resp.Header.Get(fiber.HeaderCacheControl))
	assert.Equal(t, "bytes", resp.Header.Get(fiber.HeaderAcceptRanges))
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderETag))

	streamed, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, content, streamed)
}

func TestConditionalGetShortCircuits(t *testing.T) {
	app, store := setupApp(t)
	seed(t, store, "models", "statue.glb", "model/gltf-binary", "glb-bytes")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/models/stream/statue.glb", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	etag := resp.Header.Get(fiber.HeaderETag)
	require.NotEmpty(t, etag)

	req := httptest.NewRequest(http.MethodGet, "/api/models/stream/statue.glb", nil)
	req.Header.Set(fiber.HeaderIfNoneMatch, etag)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotModified, resp.StatusCode)
	assert.Equal(t, etag, resp.Header.Get(fiber.HeaderETag))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Empty(t, body)

	// A stale validator still gets the full response.
	req = httptest.NewRequest(http.MethodGet, "/api/models/stream/statue.glb", nil)
	req.Header.Set(fiber.HeaderIfNoneMatch, `"different-etag"`)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, etag, resp.Header.Get(fiber.HeaderETag))
}

func TestStreamValidation(t *testing.T) {
	app, _ := setupApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/models/stream/evil.txt", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Only .glb files are allowed", decodeJSON(t, resp)["error"])

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/models/stream/missing.glb", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Model not found", decodeJSON(t, resp)["error"])
}

func TestDownloadSetsAttachmentDisposition(t *testing.T) {
	app, store := setupApp(t)
	seed(t, store, "models", "statue.glb", "model/gltf-binary", "glb-bytes")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/models/download/statue.glb", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `attachment; filename="statue.glb"`, resp.Header.Get(fiber.HeaderContentDisposition))
	assert.Empty(t, resp.Header.Get(fiber.HeaderCacheControl))
}

func TestDeleteThenGet(t *testing.T) {
	app, store := setupApp(t)
	seed(t, store, "models", "statue.glb", "model/gltf-binary", "glb-bytes")

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/upload/model/statue.glb", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeJSON(t, resp)
	assert.Equal(t, "Model deleted successfully", body["message"])
	assert.Equal(t, "statue.glb", body["filename"])

	for _, path := range []string{"/api/models/stream/statue.glb", "/api/models/download/statue.glb"} {
		resp, err = app.Test(httptest.NewRequest(http.MethodGet, path, nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, path)
	}

	resp, err = app.Test(httptest.NewRequest(http.MethodDelete, "/api/upload/model/statue.glb", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUploadValidation(t *testing.T) {
	app, _ := setupApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/upload/model", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "No file provided", decodeJSON(t, resp)["error"])

	resp, err = app.Test(uploadRequest(t, "/api/upload/model", "photo.PNG", []byte("png")))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Only .glb files are allowed", decodeJSON(t, resp)["error"])

	resp, err = app.Test(uploadRequest(t, "/api/upload/audio-guide", "track.flac", []byte("flac")))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Only audio files (m4a, mp3, ogg, wav) are allowed", decodeJSON(t, resp)["error"])
}

func TestModelsListingShape(t *testing.T) {
	app, store := setupApp(t)
	seed(t, store, "models", "statue.glb", "model/gltf-binary", "glb")
	seed(t, store, "models", "ignore.txt", "text/plain", "txt")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/models/", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeJSON(t, resp)
	models, ok := body["models"].([]interface{})
	require.True(t, ok)
	require.Len(t, models, 1)

	entry := models[0].(map[string]interface{})
	assert.Equal(t, "statue.glb", entry["name"])
	assert.Equal(t, "http://localhost:9000/models/statue.glb", entry["url"])
}

func TestGroupedImagesEndpoint(t *testing.T) {
	app, store := setupApp(t)
	for _, name := range []string{"a.jpg", "b.jpg", "c.jpg", "d.jpg", "e.jpg"} {
		seed(t, store, "images", "p1/"+name, "image/jpeg", name)
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/images/p1", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var grouped map[string][]map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&grouped))
	require.Len(t, grouped, 4)

	assert.Equal(t, "a.jpg", grouped["1"][0]["filename"])
	assert.Equal(t, "http://localhost:9000/images/p1/a.jpg", grouped["1"][0]["url"])
	require.Len(t, grouped["2"], 2)
	assert.Equal(t, "b.jpg", grouped["2"][0]["filename"])
	assert.Equal(t, "c.jpg", grouped["2"][1]["filename"])
	require.Len(t, grouped["3"], 1)
	assert.Equal(t, "d.jpg", grouped["3"][0]["filename"])
	assert.Equal(t, "e.jpg", grouped["4"][0]["filename"])
}

func TestGroupedImagesEmptyPlace(t *testing.T) {
	app, _ := setupApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/images/nowhere", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var grouped map[string][]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&grouped))
	for _, slot := range []string{"1", "2", "3", "4"} {
		assert.Empty(t, grouped[slot])
	}
}

func TestVisualizationRoutes(t *testing.T) {
	app, store := setupApp(t)
	seed(t, store, "visualizations", "koknese.html", "text/html", "<html></html>")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/visualizations/koknese", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeJSON(t, resp)
	assert.Equal(t, "koknese", body["placeId"])
	assert.Equal(t, "koknese.html", body["filename"])
	assert.Equal(t, "http://localhost:9000/visualizations/koknese.html", body["url"])

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/visualizations/nowhere", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Visualization not found for place: nowhere", decodeJSON(t, resp)["error"])

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/visualizations/", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decodeJSON(t, resp)
	visualizations, ok := list["visualizations"].([]interface{})
	require.True(t, ok)
	assert.Len(t, visualizations, 1)
}

func TestEncodedFilenamesRoundTrip(t *testing.T) {
	app, _ := setupApp(t)
	content := []byte("audio")

	resp, err := app.Test(uploadRequest(t, "/api/upload/audio-guide", "guide 1.mp3", content))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "/api/audio-guides/stream/guide%201.mp3", decodeJSON(t, resp)["url"])

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/audio-guides/stream/guide%201.mp3", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestPlusInFilenameRoundTrips(t *testing.T) {
	app, _ := setupApp(t)

	// "+" is a literal in a path segment and must not decode to a space.
	resp, err := app.Test(uploadRequest(t, "/api/upload/audio-guide", "a+b.mp3", []byte("audio")))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "/api/audio-guides/stream/a+b.mp3", decodeJSON(t, resp)["url"])

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/audio-guides/stream/a+b.mp3", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodDelete, "/api/upload/audio-guide/a+b.mp3", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "a+b.mp3", decodeJSON(t, resp)["filename"])
}
