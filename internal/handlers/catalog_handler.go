package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ifct-tools/explorer-api/internal/dataset"
	"github.com/ifct-tools/explorer-api/internal/service"
)

// CatalogHandler handles browsing requests over the composition table
type CatalogHandler struct {
	service *service.CatalogService
	logger  *slog.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(service *service.CatalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		logger:  logger,
	}
}

// categoryFilter reads the category query parameter, defaulting to the
// "All" sentinel when absent.
func categoryFilter(r *http.Request) string {
	if c := r.URL.Query().Get("category"); c != "" {
		return c
	}
	return dataset.AllCategories
}

// ListCategories handles GET /api/categories
// Returns "All" plus every distinct category in alphabetical order.
// When the dataset is unavailable the list is empty and the response
// carries a notice instead of failing.
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	categories, err := h.service.Categories(ctx)
	if err != nil {
		if errors.Is(err, dataset.ErrSourceUnavailable) {
			h.logger.Warn("dataset unavailable", "error", err)
			WriteJSON(w, http.StatusOK, map[string]interface{}{
				"categories": []string{},
				"error":      "dataset unavailable",
			}, h.logger)
			return
		}

		h.logger.Error("failed to list categories", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{"categories": categories}, h.logger)
}

// ListItems handles GET /api/items?category={category}
// Returns the distinct item names within the category filter.
func (h *CatalogHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	category := categoryFilter(r)

	items, err := h.service.Items(ctx, category)
	if err != nil {
		if errors.Is(err, dataset.ErrSourceUnavailable) {
			h.logger.Warn("dataset unavailable", "error", err)
			WriteJSON(w, http.StatusOK, map[string]interface{}{
				"category": category,
				"items":    []string{},
				"error":    "dataset unavailable",
			}, h.logger)
			return
		}

		h.logger.Error("failed to list items", "category", category, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"category": category,
		"items":    items,
	}, h.logger)
}

// GetItem handles GET /api/items/{name}
// Returns the raw record for one item:
// - 200: successful operation
// - 400: Invalid name supplied
// - 404: Item not found in the current candidate set
// - 503: dataset unavailable
func (h *CatalogHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := chi.URLParam(r, "name")
	category := categoryFilter(r)

	if name == "" {
		h.logger.Warn("item name is required")
		WriteError(w, http.StatusBadRequest, "Invalid name supplied", h.logger)
		return
	}

	rec, err := h.service.Record(ctx, category, name)
	if err != nil {
		h.writeRecordError(w, err, category, name)
		return
	}

	WriteJSON(w, http.StatusOK, rec, h.logger)
}

// GetProfile handles GET /api/items/{name}/profile
// Returns the grouped nutrient views for one item. Status mapping is
// the same as GetItem.
func (h *CatalogHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := chi.URLParam(r, "name")
	category := categoryFilter(r)

	if name == "" {
		h.logger.Warn("item name is required")
		WriteError(w, http.StatusBadRequest, "Invalid name supplied", h.logger)
		return
	}

	profile, err := h.service.Profile(ctx, category, name)
	if err != nil {
		h.writeRecordError(w, err, category, name)
		return
	}

	WriteJSON(w, http.StatusOK, profile, h.logger)
}

func (h *CatalogHandler) writeRecordError(w http.ResponseWriter, err error, category, name string) {
	switch {
	case errors.Is(err, dataset.ErrSelectionNotFound):
		h.logger.Info("item not found", "category", category, "name", name)
		WriteError(w, http.StatusNotFound, "Item not found", h.logger)
	case errors.Is(err, dataset.ErrSourceUnavailable):
		h.logger.Warn("dataset unavailable", "error", err)
		WriteError(w, http.StatusServiceUnavailable, "dataset unavailable", h.logger)
	default:
		h.logger.Error("failed to resolve item", "category", category, "name", name, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
	}
}
