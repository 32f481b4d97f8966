package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"sitegen_ai_server/api"
	"sitegen_ai_server/config"
	"sitegen_ai_server/internal/ai"
	internalapi "sitegen_ai_server/internal/api"
	"sitegen_ai_server/internal/export"
)

func main() {
	// Load .env before viper reads the environment. Missing .env is normal
	// in production.
	err := godotenv.Load()
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		} else {
			log.Println("Info: .env file not found, relying on system environment variables.")
		}
	} else {
		log.Println("Info: Loaded environment variables from .env file.")
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Cannot load config: %v", err)
	}

	// --- Dependency Initialization ---
	converter := ai.NewConverter(cfg.OpenAIKey, cfg.ModelID)
	exporter := export.NewExporter(cfg.ExportDir)
	if exporter != nil {
		log.Printf("Exporting generated projects under %s", cfg.ExportDir)
	}

	apiHandler := internalapi.NewAPIHandler(converter, exporter)

	appEnv := os.Getenv("APP_ENV")
	if appEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
		log.Println("Running in Gin Debug Mode")
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	if cfg.CORSAllowedOrigins != "" {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = strings.Split(cfg.CORSAllowedOrigins, ",")
		corsCfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
		router.Use(cors.New(corsCfg))
	}

	api.RegisterRoutes(router, apiHandler)

	server := &http.Server{
		Addr:    cfg.ServerAddress,
		Handler: router,
		// Generation waits on the AI service, so the write timeout is the
		// effective per-request deadline.
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting API server on %s\n", cfg.ServerAddress)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("API server listen error: %s\n", err)
		}
		log.Println("API server has stopped listening.")
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Printf("Received signal: %s. Shutting down server...", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("API server forced shutdown error: %v", err)
	} else {
		log.Println("API server gracefully stopped.")
	}

	log.Println("Application exiting.")
}
