package page_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"marketplace/internal/entities"
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
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var pageCreateDTO dto.PageCreate
	err := json.NewDecoder(r.Body).Decode(&pageCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	pageModifyEntity := entities.PageContentModify{
		Slug:  &pageCreateDTO.Slug,
		Title: &pageCreateDTO.Title,
	}
	if pageCreateDTO.Category != nil {
		pageModifyEntity.Category = pageCreateDTO.Category
	}
	if pageCreateDTO.Body != nil {
		pageModifyEntity.Body = pageCreateDTO.Body
	}
	if pageCreateDTO.Published != nil {
		pageModifyEntity.Published = pageCreateDTO.Published
	}

	pageEntity, err := h.service.CreatePage(r.Context(), pageModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, content.ErrMissingRequiredFields),
			errors.Is(err, content.ErrInvalidSlug):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, content.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.PageCreateResponse{
		ID: pageEntity.ID,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
