package taxonomy_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"marketplace/internal/entities"
	"marketplace/internal/generated/dto"
	"marketplace/internal/service/catalog"
	"marketplace/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	kind := entities.TaxonomyKind(mux.Vars(r)["kind"])

	entryEntities, err := h.service.GetEntries(r.Context(), kind)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidKind):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	entryDTOs := make([]dto.TaxonomyEntry, len(entryEntities))
	for i, entry := range entryEntities {
		entryDTOs[i].ID = entry.ID
		entryDTOs[i].Kind = entry.Kind.String()
		entryDTOs[i].Name = entry.Name
		entryDTOs[i].IsActive = entry.IsActive
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(entryDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
