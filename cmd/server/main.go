package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"

	"github.com/gobodhi/tour-cms/internal/config"
	"github.com/gobodhi/tour-cms/internal/database"
	"github.com/gobodhi/tour-cms/internal/gitrepo"
	"github.com/gobodhi/tour-cms/internal/handlers"
	"github.com/gobodhi/tour-cms/internal/middleware"

	_ "github.com/gobodhi/tour-cms/docs/api" // Swagger docs
)

// @title Bodhi Tour CMS API
// @version 1.0.0
// @description Content management API for the Bodhi virtual tour

// @contact.name API Support
// @contact.url https://github.com/gobodhi/tour-cms

// @host localhost:3001
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name tour_session

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Content repository client
	repo := gitrepo.New(cfg)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.ClientURL,
		AllowCredentials: true,
	}))

	// Prometheus metrics
	prometheus := fiberprometheus.New("tour-cms")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API routes under /api
	api := app.Group("/api")

	requireAuth := middleware.RequireAuth(db, cfg.SessionSecret)

	// Create handlers
	healthHandler := &handlers.HealthHandler{DB: db, Cfg: cfg}
	authHandler := handlers.NewAuthHandler(db, cfg)
	rolesHandler := &handlers.RolesHandler{DB: db}
	topicsHandler := &handlers.TopicsHandler{DB: db}
	screensHandler := &handlers.ScreensHandler{DB: db}
	hotspotsHandler := &handlers.HotspotsHandler{DB: db}
	settingsHandler := &handlers.SettingsHandler{DB: db}
	publishHandler := &handlers.PublishHandler{DB: db, Repo: repo, Cfg: cfg}
	uploadHandler := &handlers.UploadHandler{Repo: repo, Cfg: cfg}

	// Public routes
	api.Get("/health", healthHandler.Health)
	api.Get("/auth/github", authHandler.GitHubLogin)
	api.Get("/auth/github/callback", authHandler.GitHubCallback)
	api.Post("/auth/logout", authHandler.Logout)
	api.Get("/auth/me", requireAuth, authHandler.Me)

	// Role routes
	roles := api.Group("/roles", requireAuth)
	roles.Get("/", rolesHandler.ListRoles)
	roles.Post("/", rolesHandler.CreateRole)
	roles.Post("/reorder", rolesHandler.ReorderRoles)
	roles.Get("/:id", rolesHandler.GetRole)
	roles.Put("/:id", rolesHandler.UpdateRole)
	roles.Delete("/:id", rolesHandler.DeleteRole)

	// Topic routes
	topics := api.Group("/topics", requireAuth)
	topics.Get("/", topicsHandler.ListTopics)
	topics.Post("/", topicsHandler.CreateTopic)
	topics.Get("/:id", topicsHandler.GetTopic)
	topics.Put("/:id", topicsHandler.UpdateTopic)
	topics.Delete("/:id", topicsHandler.DeleteTopic)

	// Screen routes
	screens := api.Group("/screens", requireAuth)
	screens.Get("/topic/:topicId", screensHandler.ListScreensByTopic)
	screens.Post("/", screensHandler.CreateScreen)
	screens.Put("/:id", screensHandler.UpdateScreen)
	screens.Delete("/:id", screensHandler.DeleteScreen)

	// Hotspot routes
	hotspots := api.Group("/hotspots", requireAuth)
	hotspots.Get("/screen/:screenId", hotspotsHandler.ListHotspotsByScreen)
	hotspots.Post("/", hotspotsHandler.CreateHotspot)
	hotspots.Post("/reorder", hotspotsHandler.ReorderHotspots)
	hotspots.Put("/batch-positions", hotspotsHandler.BatchPositions)
	hotspots.Put("/:id", hotspotsHandler.UpdateHotspot)
	hotspots.Delete("/:id", hotspotsHandler.DeleteHotspot)

	// Setting routes
	settings := api.Group("/settings", requireAuth)
	settings.Get("/", settingsHandler.GetSettings)
	settings.Put("/:key", settingsHandler.UpdateSetting)

	// Publish routes
	publish := api.Group("/publish", requireAuth)
	publish.Get("/preview", publishHandler.Preview)
	publish.Post("/", publishHandler.Publish)
	publish.Get("/history", publishHandler.History)
	publish.Post("/import", publishHandler.Import)

	// Upload routes
	api.Post("/upload/screenshot", requireAuth, uploadHandler.UploadScreenshot)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Resource not found",
		})
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	log.Printf("CMS server starting on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}
