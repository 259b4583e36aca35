package pages_get

import (
	"encoding/json"
	"net/http"

	"marketplace/internal/generated/dto"
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
	pageEntities, err := h.service.GetPages(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	pageDTOs := make([]dto.Page, len(pageEntities))
	for i, pageEntity := range pageEntities {
		pageDTOs[i].ID = pageEntity.ID
		pageDTOs[i].Slug = pageEntity.Slug
		pageDTOs[i].Category = pageEntity.Category
		pageDTOs[i].Title = pageEntity.Title
		pageDTOs[i].Body = pageEntity.Body
		pageDTOs[i].Published = pageEntity.Published
		pageDTOs[i].CreatedAt = pageEntity.CreatedAt
		pageDTOs[i].UpdatedAt = pageEntity.UpdatedAt
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(pageDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
