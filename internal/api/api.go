// internal/api/api.go
package api

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/territoryiq/backend-go/internal/api/handlers"
	"github.com/territoryiq/backend-go/internal/api/middleware"
	"github.com/territoryiq/backend-go/internal/service"
	"github.com/territoryiq/backend-go/internal/storage"
)

type Services struct {
	ImportService    *service.ImportService
	TerritoryService *service.TerritoryService
	UploadArchive    storage.UploadArchive
}

func NewRouter(services *Services, allowedOrigins []string) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Logger(),
		middleware.Recovery(),
	)

	defaultOrigins := []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	corsConfig := cors.Config{
		AllowOrigins:     defaultOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Rep-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(allowedOrigins) > 0 {
		normalizedOrigins, allowAll := normalizeAllowedOrigins(allowedOrigins)
		if allowAll {
			corsConfig.AllowOrigins = nil
			corsConfig.AllowOriginFunc = func(origin string) bool { return true }
		} else if len(normalizedOrigins) > 0 {
			corsConfig.AllowOrigins = normalizedOrigins
		}
	}
	router.Use(cors.New(corsConfig))

	apiGroup := router.Group("/api/v1")
	apiGroup.Use(middleware.RepScope())

	if services != nil {
		if services.ImportService != nil {
			archive := services.UploadArchive
			if archive == nil {
				archive = storage.NewNoopUploadArchive()
			}
			importHandler := handlers.NewImportHandler(services.ImportService, archive)
			importGroup := apiGroup.Group("/import")
			{
				importGroup.POST("/dealers", importHandler.UploadDealers)
				importGroup.POST("/sales/preview", importHandler.PreviewSales)
				importGroup.POST("/sales/commit", importHandler.CommitSales)
			}
		}

		if services.TerritoryService != nil {
			territoryHandler := handlers.NewTerritoryHandler(services.TerritoryService)
			apiGroup.GET("/dealers", territoryHandler.GetDealers)
			territoryGroup := apiGroup.Group("/territory")
			{
				territoryGroup.GET("/overview", territoryHandler.GetOverview)
				territoryGroup.GET("/monthly", territoryHandler.GetMonthlyMix)
			}
			apiGroup.GET("/product-mix/:account", territoryHandler.GetProductMix)
			apiGroup.GET("/targets", territoryHandler.GetTargets)
			apiGroup.PUT("/targets", territoryHandler.PutTargets)
		}
	}

	return router
}

func normalizeAllowedOrigins(origins []string) ([]string, bool) {
	var (
		parsed   []string
		allowAll bool
	)
	for _, origin := range origins {
		parts := strings.Split(origin, ",")
		for _, part := range parts {
			trimmed := strings.TrimSpace(part)
			if trimmed == "" {
				continue
			}
			if trimmed == "*" {
				allowAll = true
				continue
			}
			parsed = append(parsed, trimmed)
		}
	}
	return parsed, allowAll
}
