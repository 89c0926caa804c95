package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Shreyas75/cmv-backend/internal/application/registration"
	"github.com/Shreyas75/cmv-backend/internal/domain"
)

// RegistrationHandler handles competition registrations.
type RegistrationHandler struct {
	svc registration.Service
}

func NewRegistrationHandler(svc registration.Service) *RegistrationHandler {
	return &RegistrationHandler{svc: svc}
}

type registrationResponse struct {
	RegistrationID  string `json:"registrationId"`
	ParticipantName string `json:"participantName"`
	Message         string `json:"message"`
}

func (h *RegistrationHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateRegistrationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	reg, err := h.svc.Create(r.Context(), req, clientIP(r), r.UserAgent())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, registrationResponse{
		RegistrationID:  reg.RegistrationID,
		ParticipantName: reg.ParticipantName,
		Message:         "Registration successful",
	})
}

func (h *RegistrationHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *RegistrationHandler) Export(w http.ResponseWriter, r *http.Request) {
	csvDoc, err := h.svc.ExportCSV(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	filename := fmt.Sprintf("cgcc-registrations-%s.csv", time.Now().UTC().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(csvDoc))
}
