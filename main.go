package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"hotel-admin/config"
	"hotel-admin/controllers"
	"hotel-admin/middleware"
	"hotel-admin/routes"
	"hotel-admin/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	log.Printf("✅ Database connection established (%s), migrations applied", db.Dialector.Name())

	var store services.ObjectStore = services.NewLocalStore(cfg.UploadDir, cfg.AppURL)
	if cfg.CloudinaryURL != "" {
		cld, err := services.NewCloudinaryStore(cfg.CloudinaryURL, "hotel")
		if err != nil {
			log.Fatalf("❌ %v", err)
		}
		store = cld
		log.Println("✅ Images are stored on Cloudinary")
	}

	var verifier services.SignatureVerifier
	if v, err := services.NewSvixVerifier(cfg.WebhookSecret); err != nil {
		log.Printf("⚠️  Webhook verification unavailable: %v", err)
	} else {
		verifier = v
	}

	var session *middleware.SessionVerifier
	if cfg.AuthJWTPublicKey != "" {
		session, err = middleware.NewSessionVerifier(cfg.AuthJWTPublicKey)
		if err != nil {
			log.Fatalf("❌ %v", err)
		}
	} else {
		log.Println("⚠️  AUTH_JWT_PUBLIC_KEY not set; /api routes are not session protected")
	}

	registry := services.NewRegistry(db)
	images := services.NewImageService(store, cfg.ImageQuality)
	webhooks := services.NewWebhookService(verifier, services.NewActivityLogger(db))

	router := routes.SetupRouter(routes.Handlers{
		Resources: controllers.Resources(registry),
		Logs:      controllers.Logs(registry),
		Upload:    controllers.NewUploadController(images, cfg.MaxUploadBytes()),
		Webhook:   controllers.NewWebhookController(webhooks),
	}, routes.Options{
		CorsOrigins: cfg.CorsOrigins,
		UploadDir:   cfg.UploadDir,
		Session:     session,
	})

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       30 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Println("✅ Server stopped gracefully")
}
