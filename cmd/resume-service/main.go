package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/resumeparser/resume-parser-backend/internal/resume/events"
	"github.com/resumeparser/resume-parser-backend/internal/resume/extractor"
	"github.com/resumeparser/resume-parser-backend/internal/resume/handler"
	"github.com/resumeparser/resume-parser-backend/internal/resume/ner"
	"github.com/resumeparser/resume-parser-backend/internal/resume/service"
	"github.com/resumeparser/resume-parser-backend/pkg/config"
	"github.com/resumeparser/resume-parser-backend/pkg/httputil"
	"github.com/resumeparser/resume-parser-backend/pkg/i18n"
	"github.com/resumeparser/resume-parser-backend/pkg/logger"
	"github.com/resumeparser/resume-parser-backend/pkg/messaging"
)

func main() {
	// Load configuration
	cfg, err := config.LoadWithValidation("resume-service")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New("resume-service", cfg.Server.Environment)
	log.Info().Msg("starting Resume Service")

	// Text extraction backends; missing ones are logged by the registry
	registry := extractor.NewDefaultRegistry(log)

	// Entity recognition is optional; nil disables the fallback
	recognizer := ner.Resolve(context.Background(), cfg.NER.URL, cfg.NER.Timeout, log)

	// Connect to RabbitMQ when event publishing is on
	var publisher service.EventPublisher
	status := handler.Status{EntityRecognition: recognizer != nil}
	if cfg.RabbitMQ.Enabled {
		rmq, err := messaging.New(context.Background(), &cfg.RabbitMQ, log)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to RabbitMQ")
		}
		defer rmq.Close()

		eventPublisher, err := events.NewResumeEventPublisher(rmq, log)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create event publisher")
		}
		publisher = eventPublisher
		status.Broker = rmq.Health
	}

	// Initialize service
	resumeService := service.NewService(registry, recognizer, publisher, cfg.Parser, log)

	// Initialize handlers
	resumeHandler := handler.NewHandler(resumeService, registry, cfg.Upload, cfg.Parser.Version, status, log)

	// Create router
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RealIP)
	r.Use(httputil.RequestID)
	r.Use(httputil.Logger(log))
	r.Use(httputil.Recoverer(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Language", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID", "Content-Language"},
		AllowCredentials: !cfg.CORS.AllowsAnyOrigin(),
		MaxAge:           300,
	}))
	r.Use(i18n.Middleware)

	resumeHandler.Mount(r)

	// Create server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server
	go func() {
		log.Info().Str("addr", addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	// Graceful shutdown; in-flight parses finish before exit
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
