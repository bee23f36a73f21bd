// internal/api/handlers/import_handler.go
package handlers

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/territoryiq/backend-go/internal/api/middleware"
	"github.com/territoryiq/backend-go/internal/domain"
	"github.com/territoryiq/backend-go/internal/service"
	"github.com/territoryiq/backend-go/internal/storage"
)

type ImportHandler struct {
	importService *service.ImportService
	archive       storage.UploadArchive
}

func NewImportHandler(importService *service.ImportService, archive storage.UploadArchive) *ImportHandler {
	return &ImportHandler{importService: importService, archive: archive}
}

// UploadDealers imports the account-mapping CSV (dealer list).
func (h *ImportHandler) UploadDealers(c *gin.Context) {
	repID := middleware.RepID(c)

	data, filename, ok := h.readUpload(c)
	if !ok {
		return
	}

	result, err := h.importService.ImportAccountMapping(c.Request.Context(), repID, bytes.NewReader(data))
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	h.archiveUpload(c, repID, "dealers", filename, data)

	c.JSON(http.StatusOK, result)
}

// PreviewSales parses and aggregates a monthly sales CSV without writing
// anything, returning the confirmation summary plus the count of existing
// records the commit would replace.
func (h *ImportHandler) PreviewSales(c *gin.Context) {
	repID := middleware.RepID(c)

	year, month, ok := h.parsePeriod(c)
	if !ok {
		return
	}

	data, filename, ok := h.readUpload(c)
	if !ok {
		return
	}

	preview, err := h.importService.PreviewSales(c.Request.Context(), repID, bytes.NewReader(data))
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	existing, err := h.importService.ExistingFactCount(c.Request.Context(), repID, year, month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check existing records"})
		return
	}

	h.archiveUpload(c, repID, "sales", filename, data)

	c.JSON(http.StatusOK, gin.H{
		"preview":        preview,
		"existing_count": existing,
		"year":           year,
		"month":          month,
	})
}

type commitSalesRequest struct {
	ParsedData       []domain.AccountSales `json:"parsed_data" binding:"required"`
	UnmatchedDealers []string              `json:"unmatched_dealers"`
}

// CommitSales writes the previously previewed aggregation, fully replacing
// the target period per account.
func (h *ImportHandler) CommitSales(c *gin.Context) {
	repID := middleware.RepID(c)

	year, month, ok := h.parsePeriod(c)
	if !ok {
		return
	}

	var req commitSalesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.importService.CommitSales(c.Request.Context(), repID, year, month, req.ParsedData, req.UnmatchedDealers)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *ImportHandler) parsePeriod(c *gin.Context) (int, int, bool) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 || year > 2100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "valid year parameter is required"})
		return 0, 0, false
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "valid month parameter is required"})
		return 0, 0, false
	}
	return year, month, true
}

func (h *ImportHandler) readUpload(c *gin.Context) ([]byte, string, bool) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file provided"})
		return nil, "", false
	}

	data, err := readMultipartFile(file)
	if err != nil {
		log.Error().Err(err).Str("filename", file.Filename).Msg("failed to read uploaded file")
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read uploaded file"})
		return nil, "", false
	}

	return data, file.Filename, true
}

// archiveUpload retains the raw export, best effort only.
func (h *ImportHandler) archiveUpload(c *gin.Context, repID, kind, filename string, data []byte) {
	if err := h.archive.Store(c.Request.Context(), repID, kind, filename, data); err != nil {
		log.Warn().Err(err).Str("filename", filename).Msg("failed to archive upload")
	}
}

func readMultipartFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
