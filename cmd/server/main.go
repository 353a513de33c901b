/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the agreement presentation service. Handles
  configuration, dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Read environment config, then command-line flag overrides
  2. Initialize the SQLite agreement cache
  3. Create the backend client (skipped when no backend URL is set)
  4. Configure the HTTP router
  5. Start the server with graceful shutdown

CONFIGURATION:
  Environment (prefix AGREEMENTS_):
    AGREEMENTS_PORT             HTTP server port (default: 8080)
    AGREEMENTS_DB               SQLite database path (default: agreements.db)
    AGREEMENTS_BACKEND_URL      Grants backend agreement endpoint
    AGREEMENTS_BACKEND_TIMEOUT  Backend request timeout (default: 10s)

  Flags override the environment:
    -port, -db, -backend-url

  Without a backend URL the service runs cache-only; load a demo
  scenario to populate it.

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Close the cache store
  4. Exit

EXAMPLES:
  # Cache-only demo mode with in-memory database
  ./server -db=":memory:"

  # Against a real backend
  AGREEMENTS_BACKEND_URL=https://backend/api/agreement ./server

SEE ALSO:
  - api/server.go: Router configuration
  - api/handlers.go: HTTP handlers
  - store/sqlite/sqlite.go: Cache implementation
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/warp/agreement-engine/api"
	"github.com/warp/agreement-engine/client"
	"github.com/warp/agreement-engine/store/sqlite"
)

// Config is read from the environment with the AGREEMENTS_ prefix.
type Config struct {
	Port           int           `envconfig:"PORT" default:"8080"`
	DB             string        `envconfig:"DB" default:"agreements.db"`
	BackendURL     string        `envconfig:"BACKEND_URL"`
	BackendTimeout time.Duration `envconfig:"BACKEND_TIMEOUT" default:"10s"`
}

func main() {
	var cfg Config
	if err := envconfig.Process("agreements", &cfg); err != nil {
		log.Fatalf("Failed to read configuration: %v", err)
	}

	// Flag overrides
	port := flag.Int("port", cfg.Port, "HTTP server port")
	dbPath := flag.String("db", cfg.DB, "SQLite database path")
	backendURL := flag.String("backend-url", cfg.BackendURL, "Grants backend agreement endpoint")
	flag.Parse()

	// Initialize store
	store, err := sqlite.New(*dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer store.Close()

	// Initialize backend client
	var backend *client.Client
	if *backendURL != "" {
		backend = client.New(client.Config{BaseURL: *backendURL, Timeout: cfg.BackendTimeout})
	} else {
		log.Println("No backend URL configured; running cache-only")
	}

	// Initialize handler and router
	handler := api.NewHandler(store, backend)
	router := api.NewRouter(handler)

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on http://localhost:%d", *port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
