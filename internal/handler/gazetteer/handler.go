package gazetteer

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kestrelbay/wildscope/backend/pkg/utils"
)

// AnimalLister exposes the known animal names clients can autocomplete from.
type AnimalLister interface {
	Animals() []string
}

// Handler serves read-only gazetteer lookups.
type Handler struct {
	animals AnimalLister
}

func New(animals AnimalLister) *Handler {
	return &Handler{animals: animals}
}

// RegisterRoutes mounts the gazetteer endpoints.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/gazetteer/animals", h.handleListAnimals)
}

func (h *Handler) handleListAnimals(w http.ResponseWriter, _ *http.Request) {
	names := h.animals.Animals()
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"animals": names,
		"count":   len(names),
	})
}
