package otp

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"time"

	"github.com/Shreyas75/cmv-backend/internal/domain"
)

// CodeTTL is how long an issued code stays valid.
const CodeTTL = 5 * time.Minute

// Verification failure modes. The texts are part of the API contract: the
// verify handler returns them verbatim as the response error string.
var (
	ErrNotFound = errors.New("OTP not found or expired")
	ErrMismatch = errors.New("invalid OTP")
	ErrExpired  = errors.New("OTP expired. Please request a new one.")
)

// Store holds one live code per identifier. The DynamoDB implementation
// backs it with a TTL attribute so abandoned codes are evicted by the store.
type Store interface {
	Put(ctx context.Context, v *domain.Verification) error
	Get(ctx context.Context, identifier string) (*domain.Verification, error)
	Delete(ctx context.Context, identifier string) error
}

// Mailer is the email capability the service needs for code delivery.
type Mailer interface {
	SendHTMLEmail(to, subject, text, html string) error
}

// SMSSender delivers codes to phone-style identifiers.
type SMSSender interface {
	SendSMS(ctx context.Context, to, message string) error
}

type Service interface {
	// Issue binds a fresh code to the identifier and dispatches it. A send
	// failure is reported but does not roll back the stored code.
	Issue(ctx context.Context, identifier string) error
	// Verify checks a submitted code. Success consumes the stored record, so
	// a second verify with the same code fails with ErrNotFound.
	Verify(ctx context.Context, identifier, code string) error
}

type service struct {
	store     Store
	mailer    Mailer
	smsSender SMSSender
	now       func() time.Time
}

func NewService(store Store, mailer Mailer, smsSender SMSSender) Service {
	return &service{store: store, mailer: mailer, smsSender: smsSender, now: time.Now}
}

func (s *service) Issue(ctx context.Context, identifier string) error {
	code, err := generateCode()
	if err != nil {
		return err
	}

	v := &domain.Verification{
		Identifier: identifier,
		Code:       code,
		ExpiresAt:  s.now().Add(CodeTTL).Unix(),
	}
	if err := s.store.Put(ctx, v); err != nil {
		return err
	}

	if err := s.dispatch(ctx, identifier, code); err != nil {
		slog.Error("failed to dispatch OTP", "identifier", identifier, "err", err)
		return fmt.Errorf("dispatch OTP: %w", domain.ErrUpstream)
	}
	return nil
}

func (s *service) Verify(ctx context.Context, identifier, code string) error {
	v, err := s.store.Get(ctx, identifier)
	if err != nil {
		return ErrNotFound
	}
	if v.Code != code {
		return ErrMismatch
	}
	if s.now().Unix() > v.ExpiresAt {
		if err := s.store.Delete(ctx, identifier); err != nil {
			slog.Warn("failed to delete expired OTP", "identifier", identifier, "err", err)
		}
		return ErrExpired
	}
	// Single use: a valid code is consumed on verification.
	if err := s.store.Delete(ctx, identifier); err != nil {
		slog.Warn("failed to delete verified OTP", "identifier", identifier, "err", err)
	}
	return nil
}

func (s *service) dispatch(ctx context.Context, identifier, code string) error {
	if looksLikePhone(identifier) {
		if s.smsSender == nil {
			return errors.New("sms delivery is not configured")
		}
		return s.smsSender.SendSMS(ctx, identifier,
			fmt.Sprintf("Your OTP code is %s. It is valid for 5 minutes. - Chinmaya Mission Vasai", code))
	}
	text := fmt.Sprintf("Your OTP code is %s. It is valid for 5 minutes.\n\nBest regards,\nChinmaya Mission Vasai", code)
	return s.mailer.SendHTMLEmail(identifier, "Your OTP Code - Chinmaya Mission Vasai", text, otpHTML(code))
}

// generateCode draws a 6-digit code uniformly from [100000, 999999].
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", 100000+n.Int64()), nil
}

// looksLikePhone treats any identifier without an "@" that is mostly digits
// as a phone number.
func looksLikePhone(identifier string) bool {
	if strings.Contains(identifier, "@") {
		return false
	}
	digits := 0
	for _, r := range identifier {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= 7
}

func otpHTML(code string) string {
	return fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
			<h2 style="color: #d4af37;">Chinmaya Mission Vasai</h2>
			<p>Your OTP code is: <strong style="font-size: 24px; color: #d4af37;">%s</strong></p>
			<p>This code is valid for 5 minutes.</p>
			<hr style="border: 1px solid #ddd; margin: 20px 0;">
			<p style="color: #666; font-size: 12px;">
				Best regards,<br>
				Chinmaya Mission Vasai<br>
				Website: https://chinmayamissionvasai.com<br>
				Email: info@chinmayamissionvasai.com
			</p>
		</div>`, code)
}
