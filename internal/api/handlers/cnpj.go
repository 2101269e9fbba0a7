package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/nexconsult/cnpj-validator/cnpj"
	"github.com/nexconsult/cnpj-validator/internal/models"
	"github.com/nexconsult/cnpj-validator/internal/services"
)

// CNPJHandler handles CNPJ validation requests
type CNPJHandler struct {
	validationService services.ValidationServiceInterface
	logger            *logrus.Logger
}

// NewCNPJHandler creates a new CNPJ handler
func NewCNPJHandler(validationService services.ValidationServiceInterface, logger *logrus.Logger) *CNPJHandler {
	return &CNPJHandler{
		validationService: validationService,
		logger:            logger,
	}
}

// Validate handles single CNPJ validation
// @Summary Validate a CNPJ
// @Description Check the structural validity of a CNPJ. An invalid CNPJ is not an error; the result is carried in the body
// @Tags CNPJ
// @Produce json
// @Param cnpj path string true "CNPJ candidate, punctuation allowed" example(04252011000110)
// @Success 200 {object} models.ValidationResponse
// @Failure 429 {object} models.ErrorResponse
// @Router /cnpj/{cnpj} [get]
func (h *CNPJHandler) Validate(c *gin.Context) {
	requestID := c.GetString("request_id")
	candidate := c.Param("cnpj")

	result := h.validationService.Validate(c.Request.Context(), candidate)

	h.logger.WithFields(logrus.Fields{
		"request_id": requestID,
		"cnpj":       result.CNPJ,
		"valid":      result.Valid,
		"cache":      result.Cache,
	}).Info("CNPJ validated")

	if result.Cache {
		c.Header("X-Cache", "HIT")
	} else {
		c.Header("X-Cache", "MISS")
	}

	c.JSON(http.StatusOK, result)
}

// Normalize handles CNPJ normalization
// @Summary Normalize a CNPJ
// @Description Strip punctuation and left-pad with zeros to the canonical 14-digit form. Does not verify the checksum
// @Tags CNPJ
// @Produce json
// @Param cnpj path string true "CNPJ candidate" example(04.252.011/0001-10)
// @Success 200 {object} models.NormalizeResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /cnpj/{cnpj}/normalize [get]
func (h *CNPJHandler) Normalize(c *gin.Context) {
	requestID := c.GetString("request_id")
	candidate := c.Param("cnpj")

	normalized, err := cnpj.Normalize(candidate)
	if err != nil {
		h.logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"input":      candidate,
			"error":      err.Error(),
		}).Warn("CNPJ normalization rejected")

		code := "NORMALIZE_ERROR"
		message := err.Error()
		switch {
		case errors.Is(err, cnpj.ErrNoDigits):
			code = "NO_DIGITS"
			message = "Input contains no digits"
		case errors.Is(err, cnpj.ErrOutOfRange):
			code = "OUT_OF_RANGE"
			message = "Input does not fit in 14 digits"
		}

		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error:     "Cannot normalize input",
			Message:   message,
			Code:      code,
			Timestamp: time.Now(),
			Path:      c.Request.URL.Path,
		})
		return
	}

	c.JSON(http.StatusOK, models.NormalizeResponse{
		Input:      candidate,
		Normalized: normalized,
		Timestamp:  time.Now(),
	})
}

// ValidateBatch handles batch CNPJ validation
// @Summary Validate multiple CNPJs
// @Description Validate up to 100 CNPJ candidates in one request
// @Tags CNPJ
// @Accept json
// @Produce json
// @Param request body models.BatchRequest true "Batch validation request"
// @Success 200 {object} models.BatchResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 429 {object} models.ErrorResponse
// @Router /cnpj/batch [post]
func (h *CNPJHandler) ValidateBatch(c *gin.Context) {
	start := time.Now()
	requestID := c.GetString("request_id")

	var request models.BatchRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid batch request format")

		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:     "Invalid request format",
			Message:   err.Error(),
			Code:      "INVALID_REQUEST",
			Timestamp: time.Now(),
			Path:      c.Request.URL.Path,
		})
		return
	}

	results := h.validationService.ValidateBatch(c.Request.Context(), request.CNPJs)

	validCount := 0
	for _, result := range results {
		if result.Valid {
			validCount++
		}
	}

	duration := time.Since(start)
	h.logger.WithFields(logrus.Fields{
		"request_id": requestID,
		"total":      len(results),
		"valid":      validCount,
		"invalid":    len(results) - validCount,
		"duration":   duration,
	}).Info("Batch CNPJ validation completed")

	c.JSON(http.StatusOK, models.BatchResponse{
		Results:    results,
		Total:      len(results),
		Valid:      validCount,
		Invalid:    len(results) - validCount,
		DurationMs: duration.Milliseconds(),
		Timestamp:  time.Now(),
	})
}

// Extract handles CNPJ extraction from free text
// @Summary Extract CNPJs from text
// @Description Find every structurally valid CNPJ in a block of free text
// @Tags CNPJ
// @Produce json
// @Param text query string true "Text to scan"
// @Success 200 {object} models.ExtractResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /cnpj/extract [get]
func (h *CNPJHandler) Extract(c *gin.Context) {
	requestID := c.GetString("request_id")

	text := c.Query("text")
	if text == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:     "Missing text parameter",
			Message:   "Provide the text to scan in the 'text' query parameter",
			Code:      "MISSING_TEXT",
			Timestamp: time.Now(),
			Path:      c.Request.URL.Path,
		})
		return
	}

	found := cnpj.ExtractFromText(text)

	h.logger.WithFields(logrus.Fields{
		"request_id": requestID,
		"text_len":   len(text),
		"found":      len(found),
	}).Info("CNPJ extraction completed")

	c.JSON(http.StatusOK, models.ExtractResponse{
		CNPJs:     found,
		Count:     len(found),
		Timestamp: time.Now(),
	})
}
