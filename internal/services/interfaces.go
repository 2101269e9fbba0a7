package services

import (
	"context"

	"github.com/nexconsult/cnpj-validator/internal/models"
)

// CacheServiceInterface defines the cache service contract
type CacheServiceInterface interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	Exists(ctx context.Context, key string) (bool, error)
	GetStats(ctx context.Context) (map[string]interface{}, error)
	Health() map[string]interface{}
}

// ValidationServiceInterface defines the CNPJ validation service contract
type ValidationServiceInterface interface {
	Validate(ctx context.Context, candidate string) *models.ValidationResponse
	ValidateBatch(ctx context.Context, candidates []string) []models.BatchResult
	Health() map[string]interface{}
}
