package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"finsight/internal/config"
	"finsight/internal/handlers/api"
	"finsight/internal/store"
	"finsight/internal/version"
	"finsight/internal/web"
)

var (
	cfg *config.Config
	st  *store.Store
)

func main() {
	cfg = config.Load()
	log.Printf("Starting Finsight backend on %s", cfg.ListenAddr)
	log.Printf("Version: %s", version.Get())
	log.Printf("Uploads directory: %s", cfg.UploadsDirectory)
	log.Printf("Static directory: %s", cfg.StaticDirectory)

	SetupDependencies(cfg)
	r := SetupRouter()

	log.Fatal(http.ListenAndServe(cfg.ListenAddr, r))
}

// SetupDependencies wires the shared state and handler packages
func SetupDependencies(c *config.Config) {
	cfg = c
	st = store.New()
	api.Initialize(cfg, st)
}

// SetupRouter builds the chi router with middleware, API routes, and the
// SPA catch-all
func SetupRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))

	// The SPA is served from another origin during development
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	api.RegisterRoutes(r)

	// Everything that isn't an API route is an SPA asset request,
	// falling back to the entry document
	r.Get("/*", web.SPAHandler(cfg.StaticDirectory))

	return r
}
