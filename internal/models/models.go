package models

import (
	"time"
)

// ValidationResponse represents the result of validating a single CNPJ
type ValidationResponse struct {
	CNPJ      string    `json:"cnpj" example:"04252011000110"`
	Valid     bool      `json:"valid" example:"true"`
	Formatted string    `json:"formatted,omitempty" example:"04.252.011/0001-10"`
	Type      string    `json:"type,omitempty" example:"MATRIZ"`
	Root      string    `json:"root,omitempty" example:"04252011"`
	Branch    string    `json:"branch,omitempty" example:"0001"`
	CheckedAt time.Time `json:"checked_at" example:"2024-01-15T10:30:00Z"`
	Cache     bool      `json:"cache" example:"false"`
}

// NormalizeResponse represents the result of normalizing a CNPJ
type NormalizeResponse struct {
	Input      string    `json:"input" example:"04.252.011/0001-10"`
	Normalized string    `json:"normalized" example:"04252011000110"`
	Timestamp  time.Time `json:"timestamp" example:"2024-01-15T10:30:00Z"`
}

// BatchRequest represents a batch CNPJ validation request
type BatchRequest struct {
	CNPJs []string `json:"cnpjs" binding:"required,min=1,max=100" example:"[\"04252011000110\",\"11222333000181\"]"`
}

// BatchResponse represents a batch CNPJ validation response
type BatchResponse struct {
	Results    []BatchResult `json:"results"`
	Total      int           `json:"total" example:"2"`
	Valid      int           `json:"valid" example:"2"`
	Invalid    int           `json:"invalid" example:"0"`
	DurationMs int64         `json:"duration_ms" example:"3"`
	Timestamp  time.Time     `json:"timestamp" example:"2024-01-15T10:30:00Z"`
}

// BatchResult represents individual result in batch response
type BatchResult struct {
	CNPJ      string `json:"cnpj" example:"04252011000110"`
	Valid     bool   `json:"valid" example:"true"`
	Formatted string `json:"formatted,omitempty" example:"04.252.011/0001-10"`
}

// ExtractResponse represents CNPJs extracted from free text
type ExtractResponse struct {
	CNPJs     []string  `json:"cnpjs" example:"[\"04252011000110\"]"`
	Count     int       `json:"count" example:"1"`
	Timestamp time.Time `json:"timestamp" example:"2024-01-15T10:30:00Z"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string    `json:"error" example:"Invalid request"`
	Message   string    `json:"message" example:"Input contains no digits"`
	Code      string    `json:"code,omitempty" example:"NO_DIGITS"`
	Timestamp time.Time `json:"timestamp" example:"2024-01-15T10:30:00Z"`
	Path      string    `json:"path" example:"/api/v1/cnpj/abc/normalize"`
}

// HealthResponse represents health check response
type HealthResponse struct {
	Status    string                 `json:"status" example:"healthy"`
	Timestamp time.Time              `json:"timestamp" example:"2024-01-15T10:30:00Z"`
	Version   string                 `json:"version" example:"1.0.0"`
	Services  map[string]ServiceInfo `json:"services"`
	Uptime    string                 `json:"uptime" example:"2h30m45s"`
}

// ServiceInfo represents individual service health
type ServiceInfo struct {
	Status    string    `json:"status" example:"healthy"`
	LastCheck time.Time `json:"last_check" example:"2024-01-15T10:30:00Z"`
	Error     string    `json:"error,omitempty"`
}
