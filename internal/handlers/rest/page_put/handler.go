package page_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
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
	id := mux.Vars(r)["id"]

	var pageUpdateDTO dto.PageUpdate
	err := json.NewDecoder(r.Body).Decode(&pageUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	pageModifyEntity := entities.PageContentModify{
		ID: &id,
	}

	// Опциональные параметры
	if pageUpdateDTO.Slug != nil {
		pageModifyEntity.Slug = pageUpdateDTO.Slug
	}
	if pageUpdateDTO.Category != nil {
		pageModifyEntity.Category = pageUpdateDTO.Category
	}
	if pageUpdateDTO.Title != nil {
		pageModifyEntity.Title = pageUpdateDTO.Title
	}
	if pageUpdateDTO.Body != nil {
		pageModifyEntity.Body = pageUpdateDTO.Body
	}
	if pageUpdateDTO.Published != nil {
		pageModifyEntity.Published = pageUpdateDTO.Published
	}

	res, err := h.service.UpdatePage(r.Context(), pageModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, content.ErrMissingRequiredFields),
			errors.Is(err, content.ErrInvalidPageID),
			errors.Is(err, content.ErrInvalidSlug):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, content.ErrPageNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, content.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Page{
		ID:        res.ID,
		Slug:      res.Slug,
		Category:  res.Category,
		Title:     res.Title,
		Body:      res.Body,
		Published: res.Published,
		CreatedAt: res.CreatedAt,
		UpdatedAt: res.UpdatedAt,
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
