package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestValidationService() ValidationServiceInterface {
	cache := NewCacheService(nil, time.Minute, testLogger())
	return NewValidationService(cache, testLogger())
}

func TestValidationServiceValidate(t *testing.T) {
	svc := newTestValidationService()
	ctx := context.Background()

	t.Run("valid cnpj", func(t *testing.T) {
		result := svc.Validate(ctx, "04.252.011/0001-10")
		assert.True(t, result.Valid)
		assert.Equal(t, "04252011000110", result.CNPJ)
		assert.Equal(t, "04.252.011/0001-10", result.Formatted)
		assert.Equal(t, "MATRIZ", result.Type)
		assert.Equal(t, "04252011", result.Root)
		assert.Equal(t, "0001", result.Branch)
		assert.False(t, result.Cache)
		assert.False(t, result.CheckedAt.IsZero())
	})

	t.Run("invalid cnpj", func(t *testing.T) {
		result := svc.Validate(ctx, "12345678901234")
		assert.False(t, result.Valid)
		assert.Equal(t, "12345678901234", result.CNPJ)
		assert.Empty(t, result.Formatted)
	})

	t.Run("empty input", func(t *testing.T) {
		result := svc.Validate(ctx, "")
		assert.False(t, result.Valid)
		assert.Empty(t, result.CNPJ)
	})
}

func TestValidationServiceCachesRepeatLookups(t *testing.T) {
	svc := newTestValidationService()
	ctx := context.Background()

	first := svc.Validate(ctx, "04252011000110")
	require.False(t, first.Cache)

	second := svc.Validate(ctx, "04252011000110")
	assert.True(t, second.Cache)
	assert.Equal(t, first.Valid, second.Valid)
	assert.Equal(t, first.CNPJ, second.CNPJ)
}

func TestValidationServiceDoesNotCacheShortInput(t *testing.T) {
	svc := newTestValidationService()
	ctx := context.Background()

	svc.Validate(ctx, "123")
	result := svc.Validate(ctx, "123")
	assert.False(t, result.Cache)
}

func TestValidationServiceValidateBatch(t *testing.T) {
	svc := newTestValidationService()

	results := svc.ValidateBatch(context.Background(), []string{
		"04252011000110",
		"11222333000181",
		"00000000000000",
		"not a cnpj",
	})

	require.Len(t, results, 4)
	assert.True(t, results[0].Valid)
	assert.True(t, results[1].Valid)
	assert.False(t, results[2].Valid)
	assert.False(t, results[3].Valid)

	// Inputs are echoed back untouched so callers can correlate.
	assert.Equal(t, "not a cnpj", results[3].CNPJ)
}

func TestValidationServiceHealth(t *testing.T) {
	svc := newTestValidationService()
	assert.Equal(t, "healthy", svc.Health()["status"])
}
