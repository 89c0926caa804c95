package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/Shreyas75/cmv-backend/internal/domain"
)

// EmptySentinel is the literal body the front-end expects in place of a CSV
// document when there is nothing to export. It travels on a text/csv channel
// that cannot carry a structured error, so callers must special-case it.
const EmptySentinel = "No users found in the database."

// volunteerFields is the fixed, ordered column set of the volunteer export.
var volunteerFields = []string{
	"firstName", "lastName", "email", "phoneNo", "dob", "additionalComments", "createdAt",
}

// Result is the outcome of a volunteer export: either the collection was
// empty, or CSV holds a complete document. The boundary layer maps each
// variant to the plain-text contract the front-end expects.
type Result struct {
	Empty bool
	CSV   string
}

type VolunteerStore interface {
	Scan(ctx context.Context) ([]domain.Volunteer, error)
}

type DonationStore interface {
	Scan(ctx context.Context) ([]domain.Donation, error)
}

type Service struct {
	volunteers VolunteerStore
	donations  DonationStore
	location   *time.Location
}

func NewService(volunteers VolunteerStore, donations DonationStore) *Service {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		loc = time.UTC
	}
	return &Service{volunteers: volunteers, donations: donations, location: loc}
}

// VolunteersCSV materializes all volunteer records as CSV in read order.
func (s *Service) VolunteersCSV(ctx context.Context) (Result, error) {
	volunteers, err := s.volunteers.Scan(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("fetch volunteers: %w", err)
	}
	if len(volunteers) == 0 {
		return Result{Empty: true}, nil
	}

	var sb strings.Builder
	w := csv.NewWriter(&sb)
	if err := w.Write(volunteerFields); err != nil {
		return Result{}, err
	}
	for _, v := range volunteers {
		row := []string{
			v.FirstName,
			v.LastName,
			v.Email,
			v.PhoneNo,
			v.DOB,
			v.AdditionalComments,
			v.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := w.Write(row); err != nil {
			return Result{}, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return Result{}, err
	}
	return Result{CSV: sb.String()}, nil
}

// DonationFilters narrows a donation export. Zero values mean "no filter".
type DonationFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
	Status    string
	MinAmount *float64
	MaxAmount *float64
	Reason    string
}

func (f DonationFilters) matches(d *domain.Donation) bool {
	if f.StartDate != nil && d.CreatedAt.Before(*f.StartDate) {
		return false
	}
	if f.EndDate != nil && d.CreatedAt.After(*f.EndDate) {
		return false
	}
	if f.Status != "" && d.Status != f.Status {
		return false
	}
	if f.MinAmount != nil && d.Amount < *f.MinAmount {
		return false
	}
	if f.MaxAmount != nil && d.Amount > *f.MaxAmount {
		return false
	}
	if f.Reason != "" && d.ReasonForDonation != f.Reason {
		return false
	}
	return true
}

var donationFields = []string{
	"Donation Reference", "Full Name", "Email", "Phone Number", "State", "City",
	"Pin Code", "Address", "Seek 80G Certificate", "Amount (Rs.)",
	"Transaction ID", "Reason for Donation", "Purpose", "Status", "IP Address",
	"Created Date", "Updated Date",
}

// DonationsCSV exports donations matching the filters, newest first, with
// human-readable headers and IST timestamps. The hashed PAN never appears.
// Returns domain.ErrNotFound when nothing matches.
func (s *Service) DonationsCSV(ctx context.Context, filters DonationFilters) (string, int, error) {
	donations, err := s.donations.Scan(ctx)
	if err != nil {
		return "", 0, fmt.Errorf("fetch donations: %w", err)
	}

	var matched []domain.Donation
	for i := range donations {
		if filters.matches(&donations[i]) {
			matched = append(matched, donations[i])
		}
	}
	if len(matched) == 0 {
		return "", 0, fmt.Errorf("no donations found for the given criteria: %w", domain.ErrNotFound)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	var sb strings.Builder
	w := csv.NewWriter(&sb)
	if err := w.Write(donationFields); err != nil {
		return "", 0, err
	}
	for _, d := range matched {
		row := []string{
			d.DonationRef,
			d.FullName,
			d.Email,
			d.PhoneNumber,
			d.State,
			d.City,
			d.PinCode,
			d.Address,
			d.Seek80G,
			strconv.FormatFloat(d.Amount, 'f', -1, 64),
			d.TransactionID,
			d.ReasonForDonation,
			d.Purpose,
			d.Status,
			d.IPAddress,
			d.CreatedAt.In(s.location).Format("02/01/2006, 15:04:05"),
			d.UpdatedAt.In(s.location).Format("02/01/2006, 15:04:05"),
		}
		if err := w.Write(row); err != nil {
			return "", 0, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", 0, err
	}
	return sb.String(), len(matched), nil
}

// DonationStats summarizes the donations table for the admin dashboard.
type DonationStats struct {
	TotalCount  int                `json:"totalCount"`
	TotalAmount float64            `json:"totalAmount"`
	ByStatus    map[string]int     `json:"byStatus"`
	ByReason    map[string]float64 `json:"byReason"`
}

func (s *Service) DonationStats(ctx context.Context) (*DonationStats, error) {
	donations, err := s.donations.Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch donations: %w", err)
	}
	stats := &DonationStats{
		ByStatus: make(map[string]int),
		ByReason: make(map[string]float64),
	}
	for _, d := range donations {
		stats.TotalCount++
		stats.TotalAmount += d.Amount
		stats.ByStatus[d.Status]++
		stats.ByReason[d.ReasonForDonation] += d.Amount
	}
	return stats, nil
}

// RecentDonations returns a page of donations, newest first, with the total
// record count for pagination.
func (s *Service) RecentDonations(ctx context.Context, page, limit int) ([]domain.Donation, int, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	donations, err := s.donations.Scan(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("fetch donations: %w", err)
	}
	sort.Slice(donations, func(i, j int) bool {
		return donations[i].CreatedAt.After(donations[j].CreatedAt)
	})
	total := len(donations)
	start := (page - 1) * limit
	if start >= total {
		return []domain.Donation{}, total, nil
	}
	end := start + limit
	if end > total {
		end = total
	}
	return donations[start:end], total, nil
}
