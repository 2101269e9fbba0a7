package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/nexconsult/cnpj-validator/cnpj"
	"github.com/nexconsult/cnpj-validator/internal/models"
)

const cacheKeyPrefix = "cnpj:"

// ValidationService wraps the pure cnpj package with result caching and
// structured logging. Validation itself never fails; the cache only spares
// re-serialization of hot lookups.
type ValidationService struct {
	cache  CacheServiceInterface
	logger *logrus.Logger
}

// NewValidationService creates a new validation service
func NewValidationService(cache CacheServiceInterface, logger *logrus.Logger) ValidationServiceInterface {
	return &ValidationService{
		cache:  cache,
		logger: logger,
	}
}

// Validate analyzes a single candidate, serving repeated lookups of
// well-formed candidates from cache.
func (s *ValidationService) Validate(ctx context.Context, candidate string) *models.ValidationResponse {
	digits := cnpj.Sanitize(candidate)

	// Only candidates of plausible length are worth a cache slot.
	cacheable := len(digits) == 14
	key := cacheKeyPrefix + digits

	if cacheable {
		if cached, err := s.cache.Get(ctx, key); err == nil {
			var response models.ValidationResponse
			unmarshalErr := json.Unmarshal([]byte(cached), &response)
			if unmarshalErr == nil {
				response.Cache = true
				return &response
			}
			s.logger.WithFields(logrus.Fields{
				"key":   key,
				"error": unmarshalErr.Error(),
			}).Warn("Discarding corrupt cache entry")
			_ = s.cache.Delete(ctx, key)
		}
	}

	info := cnpj.Analyze(candidate)
	response := &models.ValidationResponse{
		CNPJ:      info.Digits,
		Valid:     info.Valid,
		Formatted: info.Formatted,
		Type:      info.Type,
		Root:      info.Root,
		Branch:    info.Branch,
		CheckedAt: time.Now().UTC(),
	}

	if cacheable {
		if data, err := json.Marshal(response); err == nil {
			if err := s.cache.Set(ctx, key, string(data)); err != nil {
				s.logger.WithField("key", key).WithError(err).Debug("Cache set failed")
			}
		}
	}

	return response
}

// ValidateBatch validates every candidate in order.
func (s *ValidationService) ValidateBatch(ctx context.Context, candidates []string) []models.BatchResult {
	results := make([]models.BatchResult, 0, len(candidates))

	for _, candidate := range candidates {
		response := s.Validate(ctx, candidate)
		results = append(results, models.BatchResult{
			CNPJ:      candidate,
			Valid:     response.Valid,
			Formatted: response.Formatted,
		})
	}

	return results
}

// Health returns validation service health status. The validator is pure
// and carries no dependencies, so it is always healthy.
func (s *ValidationService) Health() map[string]interface{} {
	return map[string]interface{}{
		"status": "healthy",
	}
}
