package main

import (
	"context"
	"log"
	"regexp"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/okristaps/koknese-be/docs"
	"github.com/okristaps/koknese-be/internal/config"
	"github.com/okristaps/koknese-be/internal/handlers"
	"github.com/okristaps/koknese-be/internal/metrics"
	"github.com/okristaps/koknese-be/internal/services"
	"github.com/okristaps/koknese-be/internal/storage"
)

// Browser origins allowed by CORS: deployed frontends on vercel plus local
// development hosts on any port.
var allowedOrigins = []*regexp.Regexp{
	regexp.MustCompile(`https://.*\.vercel\.app$`),
	regexp.MustCompile(`^http://localhost:\d+$`),
	regexp.MustCompile(`^http://127\.0\.0\.1:\d+$`),
}

// @title Koknese Media API
// @version 1.0
// @description Object storage media gateway for place-bound models, audio guides, images and visualizations.
// @BasePath /api
func main() {
	cfg := InitConfig()
	store := InitStore(cfg)

	urls := services.NewURLResolver(cfg)
	directory := services.NewDirectoryService(store)
	media := services.NewMediaService(store)
	visualizations := services.NewVisualizationService(store, urls)

	app := fiber.New(fiber.Config{
		AppName: "koknese-media-gateway",
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: allowOrigin,
		AllowCredentials: true,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
	}))
	app.Use(compress.New())

	// Register Prometheus metrics endpoint
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "timestamp": time.Now().UTC().Format(time.RFC3339)})
	})

	handlers.Register(app,
		handlers.NewModelHandler(directory, media, urls),
		handlers.NewAudioGuideHandler(directory, media),
		handlers.NewImageHandler(directory, urls),
		handlers.NewVisualizationHandler(visualizations),
		handlers.NewUploadHandler(media, visualizations),
	)

	app.Get("/api/swagger/*", swagger.HandlerDefault)

	routes := app.GetRoutes()
	log.Println("Registered routes:")
	for _, r := range routes {
		log.Printf("  %s %s\n", r.Method, r.Path)
	}

	addr := cfg.AppHost + ":" + cfg.AppPort
	log.Printf("Server listening on %s", addr)
	log.Fatal(app.Listen(addr))
}

func allowOrigin(origin string) bool {
	for _, pattern := range allowedOrigins {
		if pattern.MatchString(origin) {
			return true
		}
	}
	log.Printf("CORS blocked origin: %s", origin)
	return false
}

func InitConfig() *config.Config {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}
	return cfg
}

func InitStore(cfg *config.Config) storage.ObjectStore {
	minioStore, err := storage.NewMinioStore(cfg)
	if err != nil {
		log.Fatalf("MinIO client initialization failed: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := minioStore.EnsureBuckets(ctx, services.AllBuckets()); err != nil {
		log.Fatalf("Bucket provisioning failed: %v", err)
	}
	return storage.NewInstrumentedStore(minioStore, metrics.NewCollector())
}
