package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/nexconsult/cnpj-validator/cnpj"
	"github.com/nexconsult/cnpj-validator/internal/models"
	"github.com/nexconsult/cnpj-validator/internal/services"
)

// CacheHandler handles cache management requests
type CacheHandler struct {
	cacheService services.CacheServiceInterface
	logger       *logrus.Logger
}

// NewCacheHandler creates a new cache handler
func NewCacheHandler(cacheService services.CacheServiceInterface, logger *logrus.Logger) *CacheHandler {
	return &CacheHandler{
		cacheService: cacheService,
		logger:       logger,
	}
}

// GetStats handles cache statistics request
// @Summary Get cache statistics
// @Description Get detailed cache statistics and metrics
// @Tags Cache
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} models.ErrorResponse
// @Router /cache/stats [get]
func (h *CacheHandler) GetStats(c *gin.Context) {
	requestID := c.GetString("request_id")

	stats, err := h.cacheService.GetStats(c.Request.Context())
	if err != nil {
		h.logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get cache statistics")

		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:     "Internal server error",
			Message:   "Failed to retrieve cache statistics",
			Code:      "CACHE_STATS_ERROR",
			Timestamp: time.Now(),
			Path:      c.Request.URL.Path,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stats":     stats,
		"health":    h.cacheService.Health(),
		"timestamp": time.Now(),
	})
}

// Clear handles cache clear request
// @Summary Clear all cache
// @Description Drop every cached validation result
// @Tags Cache
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} models.ErrorResponse
// @Router /cache/clear [delete]
func (h *CacheHandler) Clear(c *gin.Context) {
	requestID := c.GetString("request_id")

	if err := h.cacheService.Clear(c.Request.Context()); err != nil {
		h.logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to clear cache")

		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:     "Internal server error",
			Message:   "Failed to clear cache",
			Code:      "CACHE_CLEAR_ERROR",
			Timestamp: time.Now(),
			Path:      c.Request.URL.Path,
		})
		return
	}

	h.logger.WithField("request_id", requestID).Info("Cache cleared")

	c.JSON(http.StatusOK, gin.H{
		"message":   "Cache cleared successfully",
		"success":   true,
		"timestamp": time.Now(),
	})
}

// Delete handles specific cache entry deletion
// @Summary Delete a CNPJ from cache
// @Description Drop the cached validation result of one CNPJ
// @Tags Cache
// @Param cnpj path string true "CNPJ to evict"
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /cache/{cnpj} [delete]
func (h *CacheHandler) Delete(c *gin.Context) {
	requestID := c.GetString("request_id")

	digits := cnpj.Sanitize(c.Param("cnpj"))
	if len(digits) != 14 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:     "Invalid CNPJ format",
			Message:   "CNPJ must contain exactly 14 digits",
			Code:      "INVALID_CNPJ",
			Timestamp: time.Now(),
			Path:      c.Request.URL.Path,
		})
		return
	}

	cacheKey := "cnpj:" + digits

	exists, err := h.cacheService.Exists(c.Request.Context(), cacheKey)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:     "Internal server error",
			Message:   "Failed to check cache",
			Code:      "CACHE_CHECK_ERROR",
			Timestamp: time.Now(),
			Path:      c.Request.URL.Path,
		})
		return
	}

	if !exists {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:     "Not found",
			Message:   "CNPJ not found in cache",
			Code:      "CNPJ_NOT_IN_CACHE",
			Timestamp: time.Now(),
			Path:      c.Request.URL.Path,
		})
		return
	}

	if err := h.cacheService.Delete(c.Request.Context(), cacheKey); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:     "Internal server error",
			Message:   "Failed to delete from cache",
			Code:      "CACHE_DELETE_ERROR",
			Timestamp: time.Now(),
			Path:      c.Request.URL.Path,
		})
		return
	}

	h.logger.WithFields(logrus.Fields{
		"request_id": requestID,
		"cnpj":       digits,
	}).Info("CNPJ evicted from cache")

	c.JSON(http.StatusOK, gin.H{
		"message":   "CNPJ deleted from cache successfully",
		"cnpj":      cnpj.Format(digits),
		"success":   true,
		"timestamp": time.Now(),
	})
}
