package handler

import (
	"encoding/json"
	"net"
	"net/http"
	"strings"

	"github.com/Shreyas75/cmv-backend/internal/application/donation"
	"github.com/Shreyas75/cmv-backend/internal/domain"
)

// DonationHandler handles public donation submissions.
type DonationHandler struct {
	svc donation.Service
}

func NewDonationHandler(svc donation.Service) *DonationHandler {
	return &DonationHandler{svc: svc}
}

type donationResponse struct {
	DonationRef string  `json:"donationRef"`
	Status      string  `json:"status"`
	Amount      float64 `json:"amount"`
	Message     string  `json:"message"`
}

func (h *DonationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateDonationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	d, err := h.svc.Create(r.Context(), req, clientIP(r), r.UserAgent())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, donationResponse{
		DonationRef: d.DonationRef,
		Status:      d.Status,
		Amount:      d.Amount,
		Message:     "Donation submitted successfully. A receipt has been sent to your email.",
	})
}

// clientIP resolves the submitting client's IP, honoring the proxy header.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
