package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/light-bringer/optics-service/internal/services"
	"github.com/light-bringer/optics-service/internal/transport/grpc/health"
	httphandler "github.com/light-bringer/optics-service/internal/transport/http"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

func run() error {
	ctx := context.Background()

	// 1. Load configuration from .env and environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}
	config := loadConfig()

	log.Printf("Starting Optics Service...")
	log.Printf("MongoDB Database: %s", config.MongoDatabase)
	log.Printf("gRPC Port: %s", config.GRPCPort)
	log.Printf("HTTP Port: %s", config.HTTPPort)
	if config.AccessToken == "" {
		log.Printf("ACCESS_TOKEN is not set; token issuance and protected routes will fail")
	}

	// 2. Initialize service dependencies (DI container)
	serviceOpts, err := services.NewServiceOptions(ctx, config.MongoURI, config.MongoDatabase, config.AccessToken)
	if err != nil {
		return fmt.Errorf("failed to initialize service: %w", err)
	}
	defer serviceOpts.Close()

	// 3. Start gRPC health server in background
	healthServer := health.NewServer(serviceOpts, health.DefaultInterval)
	lis, err := net.Listen("tcp", ":"+config.GRPCPort)
	if err != nil {
		return fmt.Errorf("failed to listen on gRPC port: %w", err)
	}
	go func() {
		log.Printf("gRPC health server listening on :%s", config.GRPCPort)
		if err := healthServer.Serve(lis); err != nil {
			log.Printf("gRPC server error: %v", err)
		}
	}()

	// 4. Start HTTP server in background
	httpServer := &http.Server{
		Addr:              ":" + config.HTTPPort,
		Handler:           httphandler.NewRouter(serviceOpts.Handlers, config.CORSOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Printf("HTTP server listening on :%s", config.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("HTTP server error: %v", err)
		}
	}()

	// 5. Graceful shutdown handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	healthServer.Stop()

	return nil
}

// Config holds application configuration.
type Config struct {
	MongoURI      string
	MongoDatabase string
	HTTPPort      string
	GRPCPort      string
	AccessToken   string
	CORSOrigins   []string
}

// loadConfig loads configuration from environment variables with defaults.
func loadConfig() Config {
	return Config{
		MongoURI:      getenv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase: getenv("MONGODB_DATABASE", "KashemDB"),
		HTTPPort:      getenv("HTTP_PORT", "5000"),
		GRPCPort:      getenv("GRPC_PORT", "9090"),
		AccessToken:   os.Getenv("ACCESS_TOKEN"),
		CORSOrigins:   splitList(os.Getenv("CORS_ORIGINS")),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitList parses a comma-separated list, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
