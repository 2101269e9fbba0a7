package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexconsult/cnpj-validator/internal/models"
	"github.com/nexconsult/cnpj-validator/internal/services"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	log := logrus.New()
	log.SetOutput(io.Discard)

	cache := services.NewCacheService(nil, time.Minute, log)
	validation := services.NewValidationService(cache, log)
	handler := NewCNPJHandler(validation, log)

	router := gin.New()
	v1 := router.Group("/api/v1")
	cnpjGroup := v1.Group("/cnpj")
	cnpjGroup.GET("/extract", handler.Extract)
	cnpjGroup.GET("/:cnpj", handler.Validate)
	cnpjGroup.GET("/:cnpj/normalize", handler.Normalize)
	cnpjGroup.POST("/batch", handler.ValidateBatch)

	return router
}

func TestValidateEndpoint(t *testing.T) {
	router := newTestRouter()

	t.Run("valid cnpj", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/cnpj/04252011000110", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "MISS", w.Header().Get("X-Cache"))

		var response models.ValidationResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.True(t, response.Valid)
		assert.Equal(t, "04252011000110", response.CNPJ)
		assert.Equal(t, "04.252.011/0001-10", response.Formatted)
	})

	t.Run("invalid cnpj is 200 with valid false", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/cnpj/00000000000000", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var response models.ValidationResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.False(t, response.Valid)
	})

	t.Run("second lookup hits the cache", func(t *testing.T) {
		target := "/api/v1/cnpj/11222333000181"

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
		require.Equal(t, "MISS", w.Header().Get("X-Cache"))

		w = httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, "HIT", w.Header().Get("X-Cache"))
	})
}

func TestNormalizeEndpoint(t *testing.T) {
	router := newTestRouter()

	t.Run("pads short input", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/cnpj/1/normalize", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var response models.NormalizeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "00000000000001", response.Normalized)
	})

	t.Run("no digits is 422", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/cnpj/abc/normalize", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var response models.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "NO_DIGITS", response.Code)
	})

	t.Run("too many digits is 422", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/cnpj/123456789012345/normalize", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var response models.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "OUT_OF_RANGE", response.Code)
	})
}

func TestBatchEndpoint(t *testing.T) {
	router := newTestRouter()

	t.Run("mixed batch", func(t *testing.T) {
		body := `{"cnpjs":["04252011000110","11111111111111"]}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/cnpj/batch", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var response models.BatchResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, 2, response.Total)
		assert.Equal(t, 1, response.Valid)
		assert.Equal(t, 1, response.Invalid)
		require.Len(t, response.Results, 2)
		assert.True(t, response.Results[0].Valid)
		assert.False(t, response.Results[1].Valid)
	})

	t.Run("empty list is 400", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/cnpj/batch", strings.NewReader(`{"cnpjs":[]}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed body is 400", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/cnpj/batch", strings.NewReader(`not json`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestExtractEndpoint(t *testing.T) {
	router := newTestRouter()

	t.Run("finds cnpjs in text", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet,
			"/api/v1/cnpj/extract?text=Fornecedor+04.252.011%2F0001-10+e+11222333000181", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var response models.ExtractResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, 2, response.Count)
		assert.Equal(t, []string{"04252011000110", "11222333000181"}, response.CNPJs)
	})

	t.Run("missing text is 400", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/cnpj/extract", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
