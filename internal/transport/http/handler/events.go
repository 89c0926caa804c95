package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Shreyas75/cmv-backend/internal/application/event"
	"github.com/Shreyas75/cmv-backend/internal/domain"
	"github.com/go-chi/chi/v5"
)

// EventHandler handles the upcoming, featured, and archived event endpoints.
type EventHandler struct {
	svc         event.Service
	frontendURL string
}

func NewEventHandler(svc event.Service, frontendURL string) *EventHandler {
	return &EventHandler{svc: svc, frontendURL: frontendURL}
}

// upcomingEventResponse augments the stored record with the combined image list.
type upcomingEventResponse struct {
	*domain.UpcomingEvent
	AllImages []string `json:"allImages"`
}

func toUpcomingResponse(e *domain.UpcomingEvent) upcomingEventResponse {
	return upcomingEventResponse{UpcomingEvent: e, AllImages: e.AllImages()}
}

// featuredEventResponse adds social-sharing metadata for the front-end.
type featuredEventResponse struct {
	*domain.FeaturedEvent
	AllImages       []string `json:"allImages"`
	ShareURL        string   `json:"shareUrl"`
	MetaTitle       string   `json:"metaTitle"`
	MetaDescription string   `json:"metaDescription"`
	Year            int      `json:"year"`
}

func (h *EventHandler) toFeaturedResponse(e *domain.FeaturedEvent) featuredEventResponse {
	return featuredEventResponse{
		FeaturedEvent:   e,
		AllImages:       e.AllImages(),
		ShareURL:        e.ShareURL(h.frontendURL),
		MetaTitle:       e.MetaTitle(),
		MetaDescription: e.MetaDescription(),
		Year:            e.Year(),
	}
}

type archivedEventResponse struct {
	*domain.ArchivedEvent
	AllImages []string `json:"allImages"`
	Year      int      `json:"year"`
}

func toArchivedResponse(e *domain.ArchivedEvent) archivedEventResponse {
	return archivedEventResponse{ArchivedEvent: e, AllImages: e.AllImages(), Year: e.Year()}
}

func (h *EventHandler) ListUpcoming(w http.ResponseWriter, r *http.Request) {
	events, err := h.svc.ListUpcoming(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	resp := make([]upcomingEventResponse, len(events))
	for i := range events {
		resp[i] = toUpcomingResponse(&events[i])
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *EventHandler) GetUpcoming(w http.ResponseWriter, r *http.Request) {
	e, err := h.svc.GetUpcoming(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toUpcomingResponse(e))
}

func (h *EventHandler) CreateUpcoming(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateUpcomingEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	e, err := h.svc.CreateUpcoming(r.Context(), req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toUpcomingResponse(e))
}

func (h *EventHandler) UpdateUpcoming(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateUpcomingEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	e, err := h.svc.UpdateUpcoming(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toUpcomingResponse(e))
}

func (h *EventHandler) DeleteUpcoming(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteUpcoming(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "event deleted"})
}

func (h *EventHandler) ListFeatured(w http.ResponseWriter, r *http.Request) {
	events, err := h.svc.ListFeatured(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	resp := make([]featuredEventResponse, len(events))
	for i := range events {
		resp[i] = h.toFeaturedResponse(&events[i])
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *EventHandler) GetFeatured(w http.ResponseWriter, r *http.Request) {
	e, err := h.svc.GetFeatured(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.toFeaturedResponse(e))
}

func (h *EventHandler) CreateFeatured(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateFeaturedEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	e, err := h.svc.CreateFeatured(r.Context(), req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, h.toFeaturedResponse(e))
}

func (h *EventHandler) DeleteFeatured(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteFeatured(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "event deleted"})
}

func (h *EventHandler) ListArchived(w http.ResponseWriter, r *http.Request) {
	events, err := h.svc.ListArchived(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	resp := make([]archivedEventResponse, len(events))
	for i := range events {
		resp[i] = toArchivedResponse(&events[i])
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *EventHandler) GetArchived(w http.ResponseWriter, r *http.Request) {
	e, err := h.svc.GetArchived(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toArchivedResponse(e))
}

func (h *EventHandler) ListArchivedYears(w http.ResponseWriter, r *http.Request) {
	years, err := h.svc.ListArchivedYears(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if years == nil {
		years = []int{}
	}
	writeJSON(w, http.StatusOK, map[string][]int{"years": years})
}

func (h *EventHandler) CreateArchived(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateArchivedEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	e, err := h.svc.CreateArchived(r.Context(), req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toArchivedResponse(e))
}

func (h *EventHandler) UpdateArchived(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateArchivedEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	e, err := h.svc.UpdateArchived(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toArchivedResponse(e))
}

func (h *EventHandler) DeleteArchived(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteArchived(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "event deleted"})
}
