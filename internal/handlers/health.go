package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/ifct-tools/explorer-api/internal/service"
)

// HealthHandler provides health check endpoint
type HealthHandler struct {
	service *service.CatalogService
	logger  *slog.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(service *service.CatalogService, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		service: service,
		logger:  logger,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string         `json:"status"`
	Timestamp time.Time      `json:"timestamp"`
	Version   string         `json:"version"`
	Dataset   service.Status `json:"dataset"`
}

// ServeHTTP handles health check requests. The service stays healthy
// when the dataset is missing; the degraded state is reported in the
// dataset block instead.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ds := h.service.Status(r.Context())

	status := "healthy"
	if !ds.Loaded {
		status = "degraded"
	}

	response := HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC(),
		Version:   "1.0.0",
		Dataset:   ds,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logger.Error("failed to encode health response", "error", err)
	}
}
