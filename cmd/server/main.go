package main

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/remastershadhi/api/internal/client"
	"github.com/remastershadhi/api/internal/config"
	"github.com/remastershadhi/api/internal/handler"
	"github.com/remastershadhi/api/internal/middleware"
	"github.com/remastershadhi/api/internal/model"
	"github.com/remastershadhi/api/internal/service"
	"github.com/remastershadhi/api/pkg/response"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if config.APIKey() == "" {
		log.Println("Warning: GEMINI_API_KEY is not set, proxy requests will fail until it is")
	}

	// Initialize validator
	validate := model.NewValidator()

	// Initialize R2 client (optional - export links fall back to mock URLs)
	var storage client.StorageClient
	if cfg.R2.Configured() {
		r2Client, err := client.NewR2Client(&cfg.R2)
		if err != nil {
			log.Printf("Warning: R2 client not initialized: %v", err)
		} else {
			storage = r2Client
		}
	} else {
		log.Println("Info: R2 storage not configured, using mock export links")
	}

	// Initialize services
	lyricsService := service.NewLyricsService(client.NewGeminiFactory(cfg.Gemini.Model))
	exportService := service.NewExportService(storage, cfg.R2.LinkExpiry)

	// Initialize handlers
	proxyHandler := handler.NewProxyHandler(lyricsService, validate, config.APIKey)
	exportHandler := handler.NewExportHandler(exportService, validate)

	// Initialize Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
		BodyLimit:    cfg.Server.BodyLimit,
	})

	// Global middleware
	app.Use(recover.New())
	isDebug := strings.EqualFold(cfg.Server.LogLevel, "debug")
	logFormat := "[${time}] ${status} - ${latency} ${method} ${path}\n"
	if isDebug {
		logFormat = "[${time}] ${status} - ${latency} ${method} ${path} ${queryParams} ${reqHeaders}\n"
		log.Println("Debug logging enabled")
	}
	app.Use(logger.New(logger.Config{
		Format: logFormat,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))
	app.Use(middleware.Metrics())

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"services": fiber.Map{
				"gemini": config.APIKey() != "",
				"r2":     storage != nil,
			},
		})
	})

	// Prometheus metrics
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Gemini proxy: every method reaches the handler, which accepts only POST
	app.All(cfg.Proxy.Path, proxyHandler.Handle)

	// Export routes
	api := app.Group("/api")
	api.Post("/export", exportHandler.Download)
	api.Post("/export/link", exportHandler.Link)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("Shutting down server...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	// Start server
	addr := ":" + cfg.Server.Port
	log.Printf("Server starting on %s (proxy at %s, model %s)", addr, cfg.Proxy.Path, cfg.Gemini.Model)
	if err := app.Listen(addr); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := response.MsgInternalError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	} else {
		log.Printf("Unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	}

	return response.Error(c, code, message)
}
