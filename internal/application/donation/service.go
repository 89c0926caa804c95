package donation

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/Shreyas75/cmv-backend/internal/domain"
	"github.com/Shreyas75/cmv-backend/internal/pkg/id"
	"github.com/Shreyas75/cmv-backend/internal/pkg/validate"
)

type Store interface {
	Put(ctx context.Context, d *domain.Donation) error
	GetByTransactionID(ctx context.Context, transactionID string) (*domain.Donation, error)
}

// Mailer is the receipt-email capability.
type Mailer interface {
	SendHTMLEmail(to, subject, text, html string) error
}

type Service interface {
	// Create persists a donation and sends a receipt email. A receipt failure
	// is logged but does not fail the submission.
	Create(ctx context.Context, req domain.CreateDonationRequest, ipAddress, userAgent string) (*domain.Donation, error)
}

type service struct {
	store  Store
	mailer Mailer
}

func NewService(store Store, mailer Mailer) Service {
	return &service{store: store, mailer: mailer}
}

func (s *service) Create(ctx context.Context, req domain.CreateDonationRequest, ipAddress, userAgent string) (*domain.Donation, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%s: %w", err, domain.ErrBadRequest)
	}

	if _, err := s.store.GetByTransactionID(ctx, req.TransactionID); err == nil {
		return nil, fmt.Errorf("duplicate transaction ID: %w", domain.ErrConflict)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	d := &domain.Donation{
		DonationID:        id.New(),
		FullName:          req.FullName,
		Email:             req.Email,
		PhoneNumber:       req.PhoneNumber,
		PANHash:           hashPAN(req.PANCardNumber),
		State:             req.State,
		City:              req.City,
		PinCode:           req.PinCode,
		Address:           req.Address,
		Seek80G:           req.Seek80G,
		Amount:            req.Amount,
		TransactionID:     req.TransactionID,
		ReasonForDonation: req.ReasonForDonation,
		Purpose:           req.Purpose,
		DonationRef:       generateRef(),
		Status:            domain.DonationPending,
		IPAddress:         ipAddress,
		UserAgent:         userAgent,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := s.store.Put(ctx, d); err != nil {
		return nil, err
	}
	slog.Info("donation submitted", "ref", d.DonationRef, "email", d.Email)

	if err := s.sendReceipt(d); err != nil {
		slog.Error("donation receipt email failed", "ref", d.DonationRef, "err", err)
	}
	return d, nil
}

func (s *service) sendReceipt(d *domain.Donation) error {
	text := fmt.Sprintf(
		"Dear %s,\n\nThank you for your generous donation of Rs. %.0f. Your reference number is %s.\n\nChinmaya Mission",
		d.FullName, d.Amount, d.DonationRef)
	html := fmt.Sprintf(
		"<p>Dear %s,</p><p>Thank you for your generous donation of <b>Rs. %.0f</b>.<br>Your reference number is <b>%s</b>.</p><p>Chinmaya Mission</p>",
		d.FullName, d.Amount, d.DonationRef)
	return s.mailer.SendHTMLEmail(d.Email, "Thank you for your donation", text, html)
}

// hashPAN stores only a SHA-256 digest of the PAN number. Empty input stays empty.
func hashPAN(pan string) string {
	if pan == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(pan))
	return hex.EncodeToString(sum[:])
}

// generateRef builds a reference like CMV<unix-millis><4 digits>.
func generateRef() string {
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		n = big.NewInt(0)
	}
	return fmt.Sprintf("CMV%d%04d", time.Now().UnixMilli(), n.Int64())
}
