package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/postpilot/postpilot/internal/config"
	"github.com/postpilot/postpilot/internal/gemini"
	"github.com/postpilot/postpilot/internal/handler"
	"github.com/postpilot/postpilot/internal/linkedin"
	"github.com/postpilot/postpilot/internal/logger"
	"github.com/postpilot/postpilot/internal/middleware"
)

func main() {
	// Load .env file if present
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logg := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer logg.Close()

	// Provider clients
	li := linkedin.NewClient(cfg)

	gen, err := gemini.NewGenerator(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Gemini client: %v", err)
	}

	// Create router
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger(logg))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Initialize handlers
	h := handler.New(cfg, logg, li, gen)

	r.Get("/privacy-policy", h.PrivacyPolicy)

	// OAuth flow
	r.Route("/auth/linkedin", func(r chi.Router) {
		r.Get("/", h.AuthRedirect)
		r.Get("/callback", h.AuthCallback)
	})

	r.Get("/profile", h.GetProfile)

	// Generation endpoints
	r.Route("/generate", func(r chi.Router) {
		r.Post("/content", h.GenerateContent)
		r.Post("/image", h.GenerateImage)
	})

	// Posting endpoints
	r.Post("/upload-image", h.UploadImage)
	r.Post("/post-to-linkedin-auto", h.PostToLinkedIn)

	// Create server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logg.Info("server starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logg.Info("shutting down server")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logg.Info("server stopped")
}
