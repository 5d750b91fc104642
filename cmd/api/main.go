package main

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/sonyho2715/truong-viet-ngu-sub000/internal/cache"
	"github.com/sonyho2715/truong-viet-ngu-sub000/internal/config"
	"github.com/sonyho2715/truong-viet-ngu-sub000/internal/database"
	"github.com/sonyho2715/truong-viet-ngu-sub000/internal/handler"
	"github.com/sonyho2715/truong-viet-ngu-sub000/internal/middleware"
	"github.com/sonyho2715/truong-viet-ngu-sub000/internal/repository"
	"github.com/sonyho2715/truong-viet-ngu-sub000/internal/service"
)

func main() {
	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Redis is optional; without it the rapid-resubmit guard is skipped.
	cacheClient := cache.Connect(cfg)

	// Initialize repositories
	regRepo := repository.NewRegistrationRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	contentRepo := repository.NewContentRepository(db)
	siteRepo := repository.NewSiteRepository(db)

	// Initialize services
	regService := service.NewRegistrationService(regRepo, studentRepo, cacheClient, cfg.Redis.SubmitWindow)
	exportService := service.NewExportService(regRepo)

	// Initialize handlers
	regHandler := handler.NewRegistrationHandler(regService)
	publicHandler := handler.NewPublicHandler(contentRepo, siteRepo, studentRepo)
	adminHandler := handler.NewAdminHandler(regService, exportService, regRepo, studentRepo, siteRepo)
	adminContentHandler := handler.NewAdminContentHandler(contentRepo, siteRepo, studentRepo)

	// Initialize admin middleware
	adminMiddleware := middleware.NewAdminMiddleware(cfg)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"success": false,
				"error": fiber.Map{
					"code":    "INTERNAL_ERROR",
					"message": err.Error(),
				},
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.CORS.Origins, ","),
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,X-Admin-Key",
	}))

	// API v1 routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Registration. The unversioned path is what the public form posts to;
	// keep both so the form and API clients share one handler.
	app.Post("/api/register", regHandler.Register)
	api.Post("/register", regHandler.Register)
	api.Get("/grades", regHandler.Grades)

	// Public site
	api.Get("/posts", publicHandler.ListPosts)
	api.Get("/posts/:slug", publicHandler.GetPostBySlug)
	api.Get("/events", publicHandler.ListEvents)
	api.Get("/volunteer", publicHandler.ListVolunteers)
	api.Get("/gallery", publicHandler.ListAlbums)
	api.Get("/gallery/:id", publicHandler.GetAlbum)
	api.Get("/slides", publicHandler.ListSlides)
	api.Get("/classes", publicHandler.ListClasses)
	api.Post("/contact", publicHandler.Contact)

	// Admin routes
	adminRoutes := api.Group("/admin", adminMiddleware.Required())

	// Admin - Applications
	adminRoutes.Get("/applications", adminHandler.ListApplications)
	adminRoutes.Get("/applications/export", adminHandler.ExportApplications)
	adminRoutes.Get("/applications/:id", adminHandler.GetApplication)
	adminRoutes.Post("/applications/:id/review", adminHandler.StartReview)
	adminRoutes.Post("/applications/:id/decision", adminHandler.Decide)
	adminRoutes.Post("/applications/:id/convert", adminHandler.Convert)

	// Admin - Dashboard
	adminRoutes.Get("/dashboard/stats", adminHandler.Dashboard)

	// Admin - Students
	adminRoutes.Get("/students", adminHandler.ListStudents)

	// Admin - Contact messages
	adminRoutes.Get("/contacts", adminHandler.ListContacts)
	adminRoutes.Patch("/contacts/:id/status", adminHandler.SetContactStatus)

	// Admin - Blog posts
	adminRoutes.Get("/posts", adminContentHandler.ListPosts)
	adminRoutes.Post("/posts", adminContentHandler.CreatePost)
	adminRoutes.Patch("/posts/:id", adminContentHandler.UpdatePost)
	adminRoutes.Delete("/posts/:id", adminContentHandler.DeletePost)

	// Admin - Calendar events
	adminRoutes.Post("/events", adminContentHandler.CreateEvent)
	adminRoutes.Patch("/events/:id", adminContentHandler.UpdateEvent)
	adminRoutes.Delete("/events/:id", adminContentHandler.DeleteEvent)

	// Admin - Volunteer board
	adminRoutes.Get("/volunteer", adminContentHandler.ListVolunteers)
	adminRoutes.Post("/volunteer", adminContentHandler.CreateVolunteer)
	adminRoutes.Patch("/volunteer/:id", adminContentHandler.UpdateVolunteer)
	adminRoutes.Delete("/volunteer/:id", adminContentHandler.DeleteVolunteer)

	// Admin - Gallery
	adminRoutes.Post("/gallery", adminContentHandler.CreateAlbum)
	adminRoutes.Post("/gallery/:id/images", adminContentHandler.AddAlbumImage)
	adminRoutes.Delete("/gallery/:id/images/:image_id", adminContentHandler.DeleteAlbumImage)
	adminRoutes.Delete("/gallery/:id", adminContentHandler.DeleteAlbum)

	// Admin - Slideshow
	adminRoutes.Get("/slides", adminContentHandler.ListSlides)
	adminRoutes.Post("/slides", adminContentHandler.CreateSlide)
	adminRoutes.Patch("/slides/:id", adminContentHandler.UpdateSlide)
	adminRoutes.Delete("/slides/:id", adminContentHandler.DeleteSlide)

	// Admin - Classes
	adminRoutes.Get("/classes", adminContentHandler.ListClasses)
	adminRoutes.Post("/classes", adminContentHandler.CreateClass)
	adminRoutes.Patch("/classes/:id", adminContentHandler.UpdateClass)
	adminRoutes.Delete("/classes/:id", adminContentHandler.DeleteClass)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}
	log.Printf("Server starting on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
