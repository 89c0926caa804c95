package admin

import (
	"fmt"

	"github.com/Shreyas75/cmv-backend/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// TokenSigner issues a signed session token for an authenticated admin.
type TokenSigner interface {
	Sign(username string) (string, error)
}

type Service interface {
	// Login checks the credentials against the configured admin account and
	// returns a session token. Wrong credentials return domain.ErrUnauthorized.
	Login(username, password string) (string, error)
}

type service struct {
	username     string
	passwordHash string
	signer       TokenSigner
}

func NewService(username, passwordHash string, signer TokenSigner) Service {
	return &service{username: username, passwordHash: passwordHash, signer: signer}
}

func (s *service) Login(username, password string) (string, error) {
	if s.signer == nil || s.username == "" || s.passwordHash == "" {
		return "", fmt.Errorf("admin account is not configured: %w", domain.ErrUnauthorized)
	}
	if username != s.username {
		// bcrypt comparison runs anyway so the two failure paths take
		// comparable time.
		_ = bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password))
		return "", fmt.Errorf("invalid credentials: %w", domain.ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		return "", fmt.Errorf("invalid credentials: %w", domain.ErrUnauthorized)
	}
	token, err := s.signer.Sign(username)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return token, nil
}
