package export

import (
	"context"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/Shreyas75/cmv-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mocks ---

type mockVolunteerStore struct{ mock.Mock }

func (m *mockVolunteerStore) Scan(ctx context.Context) ([]domain.Volunteer, error) {
	args := m.Called(ctx)
	if v, _ := args.Get(0).([]domain.Volunteer); v != nil {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockDonationStore struct{ mock.Mock }

func (m *mockDonationStore) Scan(ctx context.Context) ([]domain.Donation, error) {
	args := m.Called(ctx)
	if d, _ := args.Get(0).([]domain.Donation); d != nil {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func volunteer(first string, created time.Time) domain.Volunteer {
	return domain.Volunteer{
		FirstName: first,
		LastName:  "Sharma",
		Email:     strings.ToLower(first) + "@example.com",
		PhoneNo:   "9876543210",
		DOB:       "2001-05-14",
		CreatedAt: created,
	}
}

// --- VolunteersCSV ---

func TestVolunteersCSV_EmptyCollection(t *testing.T) {
	vs := &mockVolunteerStore{}
	vs.On("Scan", mock.Anything).Return([]domain.Volunteer{}, nil)

	res, err := NewService(vs, nil).VolunteersCSV(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Empty)
	assert.Empty(t, res.CSV)
}

func TestVolunteersCSV_HeaderAndRowCount(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	vs := &mockVolunteerStore{}
	vs.On("Scan", mock.Anything).Return([]domain.Volunteer{
		volunteer("A", now),
		volunteer("B", now.Add(time.Minute)),
	}, nil)

	res, err := NewService(vs, nil).VolunteersCSV(context.Background())
	require.NoError(t, err)
	require.False(t, res.Empty)

	records, err := csv.NewReader(strings.NewReader(res.CSV)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3, "header + 2 rows")
	assert.Equal(t, []string{"firstName", "lastName", "email", "phoneNo", "dob", "additionalComments", "createdAt"}, records[0])

	// Rows preserve read order.
	assert.Equal(t, "A", records[1][0])
	assert.Equal(t, "B", records[2][0])
	assert.Equal(t, "2025-03-01T10:00:00Z", records[1][6])
}

func TestVolunteersCSV_QuotesFieldsWithDelimitersAndQuotes(t *testing.T) {
	v := volunteer("A", time.Now())
	v.AdditionalComments = `available "weekends", and holidays`
	vs := &mockVolunteerStore{}
	vs.On("Scan", mock.Anything).Return([]domain.Volunteer{v}, nil)

	res, err := NewService(vs, nil).VolunteersCSV(context.Background())
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(res.CSV)).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, v.AdditionalComments, records[1][5], "round-trips through standard CSV escaping")
}

func TestVolunteersCSV_FetchError(t *testing.T) {
	vs := &mockVolunteerStore{}
	vs.On("Scan", mock.Anything).Return(nil, assert.AnError)

	_, err := NewService(vs, nil).VolunteersCSV(context.Background())
	require.Error(t, err)
}

// --- DonationsCSV ---

func donation(ref string, amount float64, status, reason string, created time.Time) domain.Donation {
	return domain.Donation{
		DonationRef:       ref,
		FullName:          "Ravi Patel",
		Email:             "ravi@example.com",
		PhoneNumber:       "9123456780",
		State:             "Maharashtra",
		City:              "Vasai",
		PinCode:           "401201",
		Address:           "12, Temple Road",
		Seek80G:           "yes",
		Amount:            amount,
		TransactionID:     "TXN-" + ref,
		ReasonForDonation: reason,
		Status:            status,
		CreatedAt:         created,
		UpdatedAt:         created,
	}
}

func TestDonationsCSV_NoMatches(t *testing.T) {
	ds := &mockDonationStore{}
	ds.On("Scan", mock.Anything).Return([]domain.Donation{}, nil)

	_, _, err := NewService(nil, ds).DonationsCSV(context.Background(), DonationFilters{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDonationsCSV_FiltersAndOrdering(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	ds := &mockDonationStore{}
	ds.On("Scan", mock.Anything).Return([]domain.Donation{
		donation("CMV1", 100, domain.DonationCompleted, "Gurudakshina", base),
		donation("CMV2", 5000, domain.DonationCompleted, "Building Fund", base.AddDate(0, 1, 0)),
		donation("CMV3", 200, domain.DonationPending, "Gurudakshina", base.AddDate(0, 2, 0)),
	}, nil)

	csvText, count, err := NewService(nil, ds).DonationsCSV(context.Background(), DonationFilters{
		Status: domain.DonationCompleted,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	records, err := csv.NewReader(strings.NewReader(csvText)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	// Newest first.
	assert.Equal(t, "CMV2", records[1][0])
	assert.Equal(t, "CMV1", records[2][0])
}

func TestDonationsCSV_AmountRange(t *testing.T) {
	base := time.Now()
	ds := &mockDonationStore{}
	ds.On("Scan", mock.Anything).Return([]domain.Donation{
		donation("CMV1", 50, domain.DonationCompleted, "Gurudakshina", base),
		donation("CMV2", 500, domain.DonationCompleted, "Gurudakshina", base),
		donation("CMV3", 5000, domain.DonationCompleted, "Gurudakshina", base),
	}, nil)

	minAmt, maxAmt := 100.0, 1000.0
	_, count, err := NewService(nil, ds).DonationsCSV(context.Background(), DonationFilters{
		MinAmount: &minAmt,
		MaxAmount: &maxAmt,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

// --- DonationStats / RecentDonations ---

func TestDonationStats(t *testing.T) {
	base := time.Now()
	ds := &mockDonationStore{}
	ds.On("Scan", mock.Anything).Return([]domain.Donation{
		donation("CMV1", 100, domain.DonationCompleted, "Gurudakshina", base),
		donation("CMV2", 400, domain.DonationPending, "Building Fund", base),
	}, nil)

	stats, err := NewService(nil, ds).DonationStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalCount)
	assert.Equal(t, 500.0, stats.TotalAmount)
	assert.Equal(t, 1, stats.ByStatus[domain.DonationCompleted])
	assert.Equal(t, 400.0, stats.ByReason["Building Fund"])
}

func TestRecentDonations_Pagination(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	var all []domain.Donation
	for i := 0; i < 5; i++ {
		all = append(all, donation("CMV"+strings.Repeat("X", i+1), 100, domain.DonationCompleted, "Gurudakshina", base.AddDate(0, 0, i)))
	}
	ds := &mockDonationStore{}
	ds.On("Scan", mock.Anything).Return(all, nil)

	svc := NewService(nil, ds)
	page1, total, err := svc.RecentDonations(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	require.Len(t, page1, 2)
	assert.Equal(t, "CMVXXXXX", page1[0].DonationRef, "newest first")

	page3, _, err := svc.RecentDonations(context.Background(), 3, 2)
	require.NoError(t, err)
	assert.Len(t, page3, 1)

	empty, _, err := svc.RecentDonations(context.Background(), 9, 2)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
