package vehicles

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/otoplaza/showroom-ai/pkg/logging"
)

// Handler handles HTTP requests for the vehicle catalog
type Handler struct {
	catalog *Catalog
	logger  *logging.Logger
}

// NewHandler creates a new vehicles handler
func NewHandler(catalog *Catalog, logger *logging.Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// ListVehicles handles GET /api/vehicles requests
func (h *Handler) ListVehicles(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.catalog.All())
}

// ListByCategory handles GET /api/vehicles/{category} requests
func (h *Handler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")

	list, err := h.catalog.ByCategory(category)
	if err != nil {
		if errors.Is(err, ErrUnknownCategory) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"error": "Kategori bulunamadı"})
			return
		}
		h.logger.Error("failed to read catalog", "error", err, "category", category)
		http.Error(w, "failed to read catalog", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}
