package registration

import (
	"context"
	"crypto/rand"
	"encoding/csv"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/Shreyas75/cmv-backend/internal/domain"
	"github.com/Shreyas75/cmv-backend/internal/pkg/validate"
)

// CompetitionYear is the active competition edition.
const CompetitionYear = 2025

type Store interface {
	Put(ctx context.Context, r *domain.Registration) error
	GetByEmailMobile(ctx context.Context, email, mobile string) (*domain.Registration, error)
	Scan(ctx context.Context) ([]domain.Registration, error)
}

// Mailer sends the plain-text registration confirmation.
type Mailer interface {
	SendEmail(to, subject, text string) error
}

// Stats summarizes registrations for the organizers.
type Stats struct {
	Total      int            `json:"total"`
	ByStandard map[string]int `json:"byStandard"`
	ByVia      map[string]int `json:"byVia"`
}

type Service interface {
	Create(ctx context.Context, req domain.CreateRegistrationRequest, ipAddress, userAgent string) (*domain.Registration, error)
	Stats(ctx context.Context) (*Stats, error)
	ExportCSV(ctx context.Context) (string, error)
}

type service struct {
	store  Store
	mailer Mailer
}

func NewService(store Store, mailer Mailer) Service {
	return &service{store: store, mailer: mailer}
}

func (s *service) Create(ctx context.Context, req domain.CreateRegistrationRequest, ipAddress, userAgent string) (*domain.Registration, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%s: %w", err, domain.ErrBadRequest)
	}
	if req.RegistrationVia == "Other" && strings.TrimSpace(req.OtherSpecify) == "" {
		return nil, fmt.Errorf("otherSpecify is required when registering via Other: %w", domain.ErrBadRequest)
	}
	if dob, err := time.Parse("2006-01-02", req.DateOfBirth); err != nil {
		return nil, fmt.Errorf("dateOfBirth must be YYYY-MM-DD: %w", domain.ErrBadRequest)
	} else if dob.After(time.Now()) {
		return nil, fmt.Errorf("dateOfBirth cannot be in the future: %w", domain.ErrBadRequest)
	}

	if _, err := s.store.GetByEmailMobile(ctx, req.EmailAddress, req.MobileNo); err == nil {
		return nil, fmt.Errorf("a registration already exists for this email and mobile number: %w", domain.ErrConflict)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	reg := &domain.Registration{
		RegistrationID:  generateRegistrationID(),
		RegistrationVia: req.RegistrationVia,
		OtherSpecify:    req.OtherSpecify,
		FirstName:       req.FirstName,
		MiddleName:      req.MiddleName,
		LastName:        req.LastName,
		SchoolName:      req.SchoolName,
		Standard:        req.Standard,
		ParentName:      req.ParentName,
		MobileNo:        req.MobileNo,
		EmailAddress:    strings.ToLower(req.EmailAddress),
		DateOfBirth:     req.DateOfBirth,
		CompetitionYear: CompetitionYear,
		IPAddress:       ipAddress,
		UserAgent:       userAgent,
		CreatedAt:       time.Now().UTC(),
	}
	reg.ParticipantName = reg.FullName()

	if err := s.store.Put(ctx, reg); err != nil {
		return nil, err
	}

	// Confirmation failure is logged, not surfaced: the registration stands.
	if err := s.sendConfirmation(reg); err != nil {
		slog.Error("registration confirmation email failed", "registrationId", reg.RegistrationID, "err", err)
	}
	return reg, nil
}

func (s *service) sendConfirmation(reg *domain.Registration) error {
	text := fmt.Sprintf(
		"Dear %s,\n\n%s has been registered for the Chinmaya Gita Chanting Competition %d.\nRegistration ID: %s\n\nPlease keep this ID for future reference.\n\nChinmaya Mission Vasai",
		reg.ParentName, reg.ParticipantName, reg.CompetitionYear, reg.RegistrationID)
	return s.mailer.SendEmail(reg.EmailAddress,
		fmt.Sprintf("CGCC %d Registration Confirmation", reg.CompetitionYear), text)
}

func (s *service) Stats(ctx context.Context) (*Stats, error) {
	regs, err := s.store.Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch registrations: %w", err)
	}
	stats := &Stats{
		ByStandard: make(map[string]int),
		ByVia:      make(map[string]int),
	}
	for _, r := range regs {
		stats.Total++
		stats.ByStandard[r.Standard]++
		stats.ByVia[r.RegistrationVia]++
	}
	return stats, nil
}

var exportFields = []string{
	"Registration ID", "Participant Name", "Standard", "School Name",
	"Parent Name", "Mobile No", "Email Address", "Date of Birth",
	"Registration Via", "Registration Date",
}

// ExportCSV materializes all registrations as CSV. Returns domain.ErrNotFound
// when there are none.
func (s *service) ExportCSV(ctx context.Context) (string, error) {
	regs, err := s.store.Scan(ctx)
	if err != nil {
		return "", fmt.Errorf("fetch registrations: %w", err)
	}
	if len(regs) == 0 {
		return "", fmt.Errorf("no registrations found: %w", domain.ErrNotFound)
	}

	var sb strings.Builder
	w := csv.NewWriter(&sb)
	if err := w.Write(exportFields); err != nil {
		return "", err
	}
	for _, r := range regs {
		via := r.RegistrationVia
		if via == "Other" && r.OtherSpecify != "" {
			via = "Other (" + r.OtherSpecify + ")"
		}
		row := []string{
			r.RegistrationID,
			r.ParticipantName,
			r.Standard,
			r.SchoolName,
			r.ParentName,
			r.MobileNo,
			r.EmailAddress,
			r.DateOfBirth,
			via,
			r.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// generateRegistrationID builds an ID like CGCC2025<unix-millis><3 digits>.
func generateRegistrationID() string {
	n, err := rand.Int(rand.Reader, big.NewInt(1000))
	if err != nil {
		n = big.NewInt(0)
	}
	return "CGCC" + strconv.Itoa(CompetitionYear) + strconv.FormatInt(time.Now().UnixMilli(), 10) + fmt.Sprintf("%03d", n.Int64())
}
