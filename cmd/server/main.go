package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/courtlab/backend/internal/config"
	"github.com/courtlab/backend/internal/content"
	"github.com/courtlab/backend/internal/database"
	"github.com/courtlab/backend/internal/handlers"
	"github.com/courtlab/backend/internal/middleware"
	"github.com/courtlab/backend/internal/pages"
	"github.com/courtlab/backend/internal/services"
	"github.com/courtlab/backend/internal/storage"
	"github.com/courtlab/backend/pkg/logger"
	"github.com/courtlab/backend/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	logger.Init()

	cfg := config.Load()
	utils.ConfigureSessions(cfg.Session.Secret, cfg.Session.ExpirationHours)

	db, err := database.Connect(cfg.DB)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}

	var avatarStore storage.AvatarStore
	switch cfg.Avatars.Backend {
	case "minio":
		minioStore, err := storage.NewMinIOStore(cfg.MinIO)
		if err != nil {
			log.Fatalf("minio initialization failed: %v", err)
		}
		if err := minioStore.EnsureBucket(context.Background()); err != nil {
			log.Fatalf("failed ensuring minio bucket: %v", err)
		}
		avatarStore = minioStore
	default:
		localStore, err := storage.NewLocalStore(cfg.Avatars.UploadsDir)
		if err != nil {
			log.Fatalf("uploads directory initialization failed: %v", err)
		}
		avatarStore = localStore
	}

	renderer, err := pages.NewRenderer()
	if err != nil {
		log.Fatalf("template parsing failed: %v", err)
	}

	profileService := services.NewProfileService(db)
	favoritesService := services.NewFavoritesService(db)
	drillProvider := content.NewProvider()

	authHandler := handlers.NewAuthHandler(profileService, favoritesService)
	profileHandler := handlers.NewProfileHandler(profileService, favoritesService, avatarStore)
	favoritesHandler := handlers.NewFavoritesHandler(favoritesService)
	pagesHandler := handlers.NewPagesHandler(drillProvider, renderer)

	authMiddleware := middleware.NewAuthMiddleware(profileService)

	app := fiber.New(fiber.Config{BodyLimit: 10 * 1024 * 1024})
	app.Use(recover.New(recover.Config{EnableStackTrace: true}))
	app.Use(middleware.CORS())
	app.Use(middleware.RequestLogger())
	app.Use(middleware.SecurityLogger())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
	})

	app.Static("/static", cfg.Server.StaticDir)

	app.Get("/", pagesHandler.Index)
	app.Post("/", pagesHandler.Index)
	app.Get("/index.html", pagesHandler.Index)
	app.Get("/shooting.html", pagesHandler.Shooting)
	app.Get("/ball-handling.html", pagesHandler.BallHandling)
	app.Get("/defense.html", pagesHandler.Defense)
	app.Get("/fitness.html", pagesHandler.Fitness)
	app.Get("/about.html", pagesHandler.About)
	app.Get("/resources.html", pagesHandler.Resources)
	app.Get("/library.html", pagesHandler.Library)
	app.Get("/login", pagesHandler.Login)
	app.Get("/profile", pagesHandler.Profile)

	app.Post("/search_shooting_drills", pagesHandler.SearchShootingDrills)
	app.Post("/search_ball_handling_drills", pagesHandler.SearchBallHandlingDrills)

	api := app.Group("/api")
	api.Post("/signup", authHandler.Signup)
	api.Post("/login", authHandler.Login)
	api.Post("/logout", authHandler.Logout)
	api.Get("/session", authMiddleware.OptionalAuth, authHandler.Session)

	api.Get("/profile", authMiddleware.RequireAuth, profileHandler.Get)
	api.Put("/profile", authMiddleware.RequireAuth, profileHandler.Update)
	api.Post("/profile/avatar", authMiddleware.RequireAuth, profileHandler.UploadAvatar)
	api.Delete("/profile/avatar", authMiddleware.RequireAuth, profileHandler.DeleteAvatar)

	api.Get("/favorites", authMiddleware.RequireAuth, favoritesHandler.Get)
	api.Put("/favorites", authMiddleware.RequireAuth, favoritesHandler.Replace)
	api.Post("/favorites/toggle", authMiddleware.RequireAuth, favoritesHandler.Toggle)

	listenAddr := fmt.Sprintf(":%s", cfg.Server.Port)

	logger.Info("server_starting", map[string]interface{}{
		"port":    cfg.Server.Port,
		"address": listenAddr,
		"db":      cfg.DB.Driver,
		"avatars": cfg.Avatars.Backend,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(listenAddr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Printf("shutting down server due to signal: %s", sig)
		shutdownDone := make(chan struct{})
		go func() {
			_ = app.Shutdown()
			close(shutdownDone)
		}()
		select {
		case <-shutdownDone:
		case <-time.After(10 * time.Second):
			log.Print("forced shutdown timeout reached")
		}
	case err := <-errCh:
		if err != nil {
			log.Fatalf("server error: %v", err)
		}
	}
}
