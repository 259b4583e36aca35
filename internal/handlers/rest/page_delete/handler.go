package page_delete

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"marketplace/internal/service/content"
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

	err := h.service.DeletePage(r.Context(), id)
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

	w.WriteHeader(http.StatusNoContent)
}
