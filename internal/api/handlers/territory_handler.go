// internal/api/handlers/territory_handler.go
package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/territoryiq/backend-go/internal/api/middleware"
	"github.com/territoryiq/backend-go/internal/domain"
	"github.com/territoryiq/backend-go/internal/service"
)

type TerritoryHandler struct {
	territoryService *service.TerritoryService
}

func NewTerritoryHandler(territoryService *service.TerritoryService) *TerritoryHandler {
	return &TerritoryHandler{territoryService: territoryService}
}

// GetOverview returns the year rollup with penetration analytics.
func (h *TerritoryHandler) GetOverview(c *gin.Context) {
	repID := middleware.RepID(c)
	year := parseYear(c)

	overview, err := h.territoryService.Overview(c.Request.Context(), repID, year)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch territory overview"})
		return
	}

	c.JSON(http.StatusOK, overview)
}

// GetMonthlyMix returns the territory-wide per-month rollup.
func (h *TerritoryHandler) GetMonthlyMix(c *gin.Context) {
	repID := middleware.RepID(c)
	year := parseYear(c)

	rows, err := h.territoryService.MonthlyMix(c.Request.Context(), repID, year)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch monthly mix"})
		return
	}

	c.JSON(http.StatusOK, rows)
}

// GetProductMix returns one account's months for a year.
func (h *TerritoryHandler) GetProductMix(c *gin.Context) {
	repID := middleware.RepID(c)
	year := parseYear(c)

	accountNumber := c.Param("account")
	if accountNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "account number is required"})
		return
	}

	rows, err := h.territoryService.ProductMix(c.Request.Context(), repID, accountNumber, year)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch product mix"})
		return
	}

	c.JSON(http.StatusOK, rows)
}

// GetDealers lists all dealer records for the rep.
func (h *TerritoryHandler) GetDealers(c *gin.Context) {
	repID := middleware.RepID(c)

	dealers, err := h.territoryService.Dealers(c.Request.Context(), repID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch dealers"})
		return
	}

	c.JSON(http.StatusOK, dealers)
}

// GetTargets returns the rep's annual targets, or an empty object when unset.
func (h *TerritoryHandler) GetTargets(c *gin.Context) {
	repID := middleware.RepID(c)
	year := parseYear(c)

	target, err := h.territoryService.Targets(c.Request.Context(), repID, year)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch targets"})
		return
	}
	if target == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}

	c.JSON(http.StatusOK, target)
}

// PutTargets upserts the rep's annual targets.
func (h *TerritoryHandler) PutTargets(c *gin.Context) {
	repID := middleware.RepID(c)

	var target domain.ProductMixTarget
	if err := c.ShouldBindJSON(&target); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if target.Year < 2000 || target.Year > 2100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "valid year is required"})
		return
	}
	target.RepID = repID

	if err := h.territoryService.SaveTargets(c.Request.Context(), &target); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save targets"})
		return
	}

	c.JSON(http.StatusOK, target)
}

func parseYear(c *gin.Context) int {
	if y, err := strconv.Atoi(c.Query("year")); err == nil && y >= 2000 && y <= 2100 {
		return y
	}
	return time.Now().Year()
}
