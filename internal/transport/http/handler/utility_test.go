package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Shreyas75/cmv-backend/internal/application/export"
	"github.com/Shreyas75/cmv-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVolunteerStore struct {
	volunteers []domain.Volunteer
	err        error
}

func (s *stubVolunteerStore) Scan(ctx context.Context) ([]domain.Volunteer, error) {
	return s.volunteers, s.err
}

type stubDonationStore struct{}

func (s *stubDonationStore) Scan(ctx context.Context) ([]domain.Donation, error) {
	return nil, nil
}

func exportHandler(store *stubVolunteerStore) *UtilityHandler {
	return NewUtilityHandler(nil, export.NewService(store, &stubDonationStore{}))
}

func getExport(h *UtilityHandler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/export-user-data", nil)
	rr := httptest.NewRecorder()
	h.ExportUserData(rr, req)
	return rr
}

func TestExportUserData_Success(t *testing.T) {
	store := &stubVolunteerStore{volunteers: []domain.Volunteer{{
		FirstName: "Ravi",
		LastName:  "Patel",
		Email:     "ravi@example.com",
		PhoneNo:   "9123456780",
		DOB:       "1990-01-01",
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}}}

	rr := getExport(exportHandler(store))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/csv", rr.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="volunteer-data.csv"`, rr.Header().Get("Content-Disposition"))
	assert.Contains(t, rr.Body.String(), "firstName,lastName,email,phoneNo,dob,additionalComments,createdAt")
	assert.Contains(t, rr.Body.String(), "Ravi")
}

func TestExportUserData_EmptyCollection(t *testing.T) {
	rr := getExport(exportHandler(&stubVolunteerStore{}))

	// Still a CSV download; the body is the sentinel line, not an error envelope.
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/csv", rr.Header().Get("Content-Type"))
	assert.Equal(t, export.EmptySentinel, rr.Body.String())
}

func TestExportUserData_FetchFailure(t *testing.T) {
	rr := getExport(exportHandler(&stubVolunteerStore{err: errors.New("scan throttled")}))

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "text/csv", rr.Header().Get("Content-Type"))
	assert.Equal(t, "Error exporting data. Please try again later.", rr.Body.String())
}
