package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/Shreyas75/cmv-backend/internal/application/export"
	"github.com/Shreyas75/cmv-backend/internal/domain"
)

// AdminHandler handles the JWT-protected donation reporting endpoints.
type AdminHandler struct {
	exportSvc *export.Service
}

func NewAdminHandler(exportSvc *export.Service) *AdminHandler {
	return &AdminHandler{exportSvc: exportSvc}
}

// ExportDonations streams a filtered donation CSV. Filters come in as query
// parameters; an invalid value is a client error, not an empty filter.
func (h *AdminHandler) ExportDonations(w http.ResponseWriter, r *http.Request) {
	filters, err := parseDonationFilters(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	csvDoc, count, err := h.exportSvc.DonationsCSV(r.Context(), filters)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	filename := fmt.Sprintf("donations-%s.csv", time.Now().UTC().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("X-Total-Records", strconv.Itoa(count))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(csvDoc))
}

func (h *AdminHandler) DonationStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.exportSvc.DonationStats(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

type recentDonationsResponse struct {
	Donations []domain.Donation `json:"donations"`
	Total     int               `json:"total"`
	Page      int               `json:"page"`
	Limit     int               `json:"limit"`
}

func (h *AdminHandler) RecentDonations(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", 20)

	donations, total, err := h.exportSvc.RecentDonations(r.Context(), page, limit)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, recentDonationsResponse{
		Donations: donations,
		Total:     total,
		Page:      page,
		Limit:     limit,
	})
}

func parseDonationFilters(r *http.Request) (export.DonationFilters, error) {
	q := r.URL.Query()
	var f export.DonationFilters

	if v := q.Get("startDate"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return f, fmt.Errorf("startDate must be YYYY-MM-DD")
		}
		f.StartDate = &t
	}
	if v := q.Get("endDate"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return f, fmt.Errorf("endDate must be YYYY-MM-DD")
		}
		// Inclusive of the whole end day.
		end := t.Add(24*time.Hour - time.Nanosecond)
		f.EndDate = &end
	}
	f.Status = q.Get("status")
	f.Reason = q.Get("reason")
	if v := q.Get("minAmount"); v != "" {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return f, fmt.Errorf("minAmount must be a number")
		}
		f.MinAmount = &n
	}
	if v := q.Get("maxAmount"); v != "" {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return f, fmt.Errorf("maxAmount must be a number")
		}
		f.MaxAmount = &n
	}
	return f, nil
}

func queryInt(r *http.Request, key string, fallback int) int {
	if v := r.URL.Query().Get(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
