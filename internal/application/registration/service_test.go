package registration

import (
	"context"
	"encoding/csv"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/Shreyas75/cmv-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockStore struct{ mock.Mock }

func (m *mockStore) Put(ctx context.Context, r *domain.Registration) error {
	return m.Called(ctx, r).Error(0)
}

func (m *mockStore) GetByEmailMobile(ctx context.Context, email, mobile string) (*domain.Registration, error) {
	args := m.Called(ctx, email, mobile)
	if r, _ := args.Get(0).(*domain.Registration); r != nil {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStore) Scan(ctx context.Context) ([]domain.Registration, error) {
	args := m.Called(ctx)
	if r, _ := args.Get(0).([]domain.Registration); r != nil {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockMailer struct{ mock.Mock }

func (m *mockMailer) SendEmail(to, subject, text string) error {
	return m.Called(to, subject, text).Error(0)
}

func okMailer() *mockMailer {
	ml := &mockMailer{}
	ml.On("SendEmail", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	return ml
}

func validRequest() domain.CreateRegistrationRequest {
	return domain.CreateRegistrationRequest{
		RegistrationVia: "School",
		FirstName:       "Aarav",
		MiddleName:      "Kumar",
		LastName:        "Mehta",
		SchoolName:      "St. Augustine High School",
		Standard:        "5th",
		ParentName:      "Suresh Mehta",
		MobileNo:        "9876543210",
		EmailAddress:    "Suresh@Example.com",
		DateOfBirth:     "2014-06-20",
	}
}

var idPattern = regexp.MustCompile(`^CGCC2025\d{13}\d{3}$`)

func TestCreate_Success(t *testing.T) {
	store := &mockStore{}
	store.On("GetByEmailMobile", mock.Anything, "Suresh@Example.com", "9876543210").Return(nil, domain.ErrNotFound)
	store.On("Put", mock.Anything, mock.Anything).Return(nil)

	reg, err := NewService(store, okMailer()).Create(context.Background(), validRequest(), "1.2.3.4", "agent")
	require.NoError(t, err)

	assert.Regexp(t, idPattern, reg.RegistrationID)
	assert.Equal(t, "Aarav Kumar Mehta", reg.ParticipantName)
	assert.Equal(t, "suresh@example.com", reg.EmailAddress, "email is lowercased")
	assert.Equal(t, CompetitionYear, reg.CompetitionYear)
}

func TestCreate_ParticipantNameSkipsEmptyMiddleName(t *testing.T) {
	store := &mockStore{}
	store.On("GetByEmailMobile", mock.Anything, mock.Anything, mock.Anything).Return(nil, domain.ErrNotFound)
	store.On("Put", mock.Anything, mock.Anything).Return(nil)

	req := validRequest()
	req.MiddleName = "  "
	reg, err := NewService(store, okMailer()).Create(context.Background(), req, "", "")
	require.NoError(t, err)
	assert.Equal(t, "Aarav Mehta", reg.ParticipantName)
}

func TestCreate_SendsConfirmationEmail(t *testing.T) {
	store := &mockStore{}
	store.On("GetByEmailMobile", mock.Anything, mock.Anything, mock.Anything).Return(nil, domain.ErrNotFound)
	store.On("Put", mock.Anything, mock.Anything).Return(nil)
	ml := &mockMailer{}
	ml.On("SendEmail", "suresh@example.com", mock.Anything, mock.Anything).Return(nil)

	_, err := NewService(store, ml).Create(context.Background(), validRequest(), "", "")
	require.NoError(t, err)
	ml.AssertExpectations(t)
}

func TestCreate_ConfirmationFailureDoesNotFailRegistration(t *testing.T) {
	store := &mockStore{}
	store.On("GetByEmailMobile", mock.Anything, mock.Anything, mock.Anything).Return(nil, domain.ErrNotFound)
	store.On("Put", mock.Anything, mock.Anything).Return(nil)
	ml := &mockMailer{}
	ml.On("SendEmail", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("smtp down"))

	reg, err := NewService(store, ml).Create(context.Background(), validRequest(), "", "")
	require.NoError(t, err)
	assert.NotEmpty(t, reg.RegistrationID)
}

func TestCreate_DuplicateEmailMobile(t *testing.T) {
	store := &mockStore{}
	store.On("GetByEmailMobile", mock.Anything, mock.Anything, mock.Anything).Return(&domain.Registration{}, nil)

	_, err := NewService(store, okMailer()).Create(context.Background(), validRequest(), "", "")
	assert.ErrorIs(t, err, domain.ErrConflict)
	store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
}

func TestCreate_OtherRequiresSpecify(t *testing.T) {
	req := validRequest()
	req.RegistrationVia = "Other"
	req.OtherSpecify = ""

	_, err := NewService(&mockStore{}, okMailer()).Create(context.Background(), req, "", "")
	assert.ErrorIs(t, err, domain.ErrBadRequest)
}

func TestCreate_FutureDateOfBirth(t *testing.T) {
	req := validRequest()
	req.DateOfBirth = time.Now().AddDate(1, 0, 0).Format("2006-01-02")

	_, err := NewService(&mockStore{}, okMailer()).Create(context.Background(), req, "", "")
	assert.ErrorIs(t, err, domain.ErrBadRequest)
}

func TestCreate_InvalidMobile(t *testing.T) {
	req := validRequest()
	req.MobileNo = "12345"

	_, err := NewService(&mockStore{}, okMailer()).Create(context.Background(), req, "", "")
	assert.ErrorIs(t, err, domain.ErrBadRequest)
}

func TestStats(t *testing.T) {
	store := &mockStore{}
	store.On("Scan", mock.Anything).Return([]domain.Registration{
		{Standard: "5th", RegistrationVia: "School"},
		{Standard: "5th", RegistrationVia: "Balavihar Centre"},
		{Standard: "8th", RegistrationVia: "School"},
	}, nil)

	stats, err := NewService(store, okMailer()).Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.ByStandard["5th"])
	assert.Equal(t, 2, stats.ByVia["School"])
}

func TestExportCSV(t *testing.T) {
	store := &mockStore{}
	store.On("Scan", mock.Anything).Return([]domain.Registration{
		{
			RegistrationID:  "CGCC20251",
			ParticipantName: "Aarav Mehta",
			Standard:        "5th",
			SchoolName:      "St. Augustine",
			RegistrationVia: "Other",
			OtherSpecify:    "Homeschool",
			CreatedAt:       time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		},
	}, nil)

	out, err := NewService(store, okMailer()).ExportCSV(context.Background())
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Other (Homeschool)", records[1][8])
}

func TestExportCSV_Empty(t *testing.T) {
	store := &mockStore{}
	store.On("Scan", mock.Anything).Return([]domain.Registration{}, nil)

	_, err := NewService(store, okMailer()).ExportCSV(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
