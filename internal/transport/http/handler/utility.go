package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Shreyas75/cmv-backend/internal/application/export"
	"github.com/Shreyas75/cmv-backend/internal/application/media"
)

// exportErrorBody travels on the text/csv channel, which cannot carry a
// structured error.
const exportErrorBody = "Error exporting data. Please try again later."

// UtilityHandler handles image uploads and the on-demand volunteer export.
type UtilityHandler struct {
	mediaSvc  media.Service
	exportSvc *export.Service
}

func NewUtilityHandler(mediaSvc media.Service, exportSvc *export.Service) *UtilityHandler {
	return &UtilityHandler{mediaSvc: mediaSvc, exportSvc: exportSvc}
}

type uploadImageRequest struct {
	ImageBase64  string   `json:"imageBase64"`
	ImagesBase64 []string `json:"imagesBase64"`
}

type uploadImageResponse struct {
	ImageURL  string   `json:"imageUrl,omitempty"`
	ImageURLs []string `json:"imageUrls,omitempty"`
}

func (h *UtilityHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	var req uploadImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	switch {
	case req.ImageBase64 != "":
		url, err := h.mediaSvc.UploadImage(r.Context(), req.ImageBase64)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, uploadImageResponse{ImageURL: url})
	case len(req.ImagesBase64) > 0:
		urls, err := h.mediaSvc.UploadImages(r.Context(), req.ImagesBase64)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, uploadImageResponse{ImageURLs: urls})
	default:
		writeError(w, http.StatusBadRequest, "imageBase64 or imagesBase64 is required")
	}
}

// ExportUserData streams the volunteer collection as a CSV download. The
// response is always text/csv with an attachment disposition, including the
// empty-collection and failure cases, because the consumer saves whatever
// arrives straight to disk.
func (h *UtilityHandler) ExportUserData(w http.ResponseWriter, r *http.Request) {
	result, err := h.exportSvc.VolunteersCSV(r.Context())

	w.Header().Set("Content-Type", "text/csv")
	if err != nil {
		w.Header().Set("Content-Disposition", `attachment; filename="export-error.csv"`)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(exportErrorBody))
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="volunteer-data.csv"`)
	w.WriteHeader(http.StatusOK)
	if result.Empty {
		_, _ = w.Write([]byte(export.EmptySentinel))
		return
	}
	_, _ = w.Write([]byte(result.CSV))
}
