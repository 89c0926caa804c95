package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Shreyas75/cmv-backend/internal/application/volunteer"
	"github.com/Shreyas75/cmv-backend/internal/domain"
)

// VolunteerHandler handles volunteer sign-up submissions.
type VolunteerHandler struct {
	svc volunteer.Service
}

func NewVolunteerHandler(svc volunteer.Service) *VolunteerHandler {
	return &VolunteerHandler{svc: svc}
}

func (h *VolunteerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateVolunteerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	v, err := h.svc.Create(r.Context(), req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, v)
}
