package page_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"marketplace/internal/generated/dto"
	"marketplace/internal/service/content"
	"marketplace/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	pageEntity, err := h.service.GetPage(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, content.ErrInvalidPageID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, content.ErrPageNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	pageDTO := dto.Page{
		ID:        pageEntity.ID,
		Slug:      pageEntity.Slug,
		Category:  pageEntity.Category,
		Title:     pageEntity.Title,
		Body:      pageEntity.Body,
		Published: pageEntity.Published,
		CreatedAt: pageEntity.CreatedAt,
		UpdatedAt: pageEntity.UpdatedAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(pageDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
