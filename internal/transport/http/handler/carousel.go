package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Shreyas75/cmv-backend/internal/application/carousel"
	"github.com/Shreyas75/cmv-backend/internal/domain"
	"github.com/go-chi/chi/v5"
)

// CarouselHandler handles home-page carousel slides.
type CarouselHandler struct {
	svc carousel.Service
}

func NewCarouselHandler(svc carousel.Service) *CarouselHandler {
	return &CarouselHandler{svc: svc}
}

func (h *CarouselHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if items == nil {
		items = []domain.CarouselItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *CarouselHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateCarouselItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	item, err := h.svc.Create(r.Context(), req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *CarouselHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "carousel item deleted"})
}
