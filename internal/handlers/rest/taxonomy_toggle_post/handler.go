package taxonomy_toggle_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

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
	vars := mux.Vars(r)
	kind := entities.TaxonomyKind(vars["kind"])
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	entry, err := h.service.ToggleActive(r.Context(), kind, id)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidKind),
			errors.Is(err, catalog.ErrInvalidEntryID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, catalog.ErrEntryNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.TaxonomyEntry{
		ID:       entry.ID,
		Kind:     entry.Kind.String(),
		Name:     entry.Name,
		IsActive: entry.IsActive,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
