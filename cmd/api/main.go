// cmd/api/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/mux"
	"github.com/territoryiq/backend-go/internal/api"
	"github.com/territoryiq/backend-go/internal/cache"
	"github.com/territoryiq/backend-go/internal/config"
	"github.com/territoryiq/backend-go/internal/repository/postgres"
	"github.com/territoryiq/backend-go/internal/service"
	"github.com/territoryiq/backend-go/internal/storage"
	"github.com/territoryiq/backend-go/pkg/logger"
)

const version = "1.2.0"

func main() {
	cfg := config.Load()

	// Initialize logger
	if cfg.Server.Mode == "debug" {
		logger.SetLevel("debug")
		gin.SetMode(gin.DebugMode)
	} else {
		logger.SetLevel("info")
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize database
	db, err := postgres.NewDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	// Territory cache, falls back to noop when redis is disabled
	territoryCache, err := cache.NewTerritoryCache(cfg.Cache)
	if err != nil {
		logger.Log.Warn().Err(err).Msg("Territory cache unavailable, continuing without it")
		territoryCache = cache.NewNoopTerritoryCache()
	}

	// Raw upload retention, noop when disabled
	archive, err := storage.NewUploadArchive(cfg.Archive)
	if err != nil {
		logger.Log.Warn().Err(err).Msg("Upload archive unavailable, continuing without it")
		archive = storage.NewNoopUploadArchive()
	}

	// Repositories and services
	dealerRepo := postgres.NewDealerRepository(db)
	mixRepo := postgres.NewProductMixRepository(db)
	targetRepo := postgres.NewTargetRepository(db)

	services := &api.Services{
		ImportService:    service.NewImportService(dealerRepo, mixRepo, territoryCache),
		TerritoryService: service.NewTerritoryService(dealerRepo, mixRepo, targetRepo, territoryCache),
		UploadArchive:    archive,
	}

	router := api.NewRouter(services, cfg.Server.AllowedOrigins)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	opsSrv := &http.Server{
		Addr:    ":" + cfg.Server.OpsPort,
		Handler: opsRouter(),
	}

	go func() {
		logger.Log.Info().Str("port", cfg.Server.OpsPort).Msg("Starting ops listener")
		if err := opsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error().Err(err).Msg("Ops listener stopped")
		}
	}()

	go func() {
		logger.Log.Info().Str("port", cfg.Server.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatal().Err(err).Msg("Server forced to shutdown")
	}
	if err := opsSrv.Shutdown(ctx); err != nil {
		logger.Log.Error().Err(err).Msg("Ops listener forced to shutdown")
	}

	logger.Log.Info().Msg("Server exiting")
}

// opsRouter serves the unauthenticated operational endpoints on a separate
// port so they never share the CORS/scoping middleware of the API.
func opsRouter() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}).Methods("GET")

	r.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"version":"` + version + `"}`))
	}).Methods("GET")

	return r
}
