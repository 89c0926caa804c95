package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/Shreyas75/cmv-backend/internal/application/admin"
	"github.com/Shreyas75/cmv-backend/internal/application/otp"
	"github.com/Shreyas75/cmv-backend/internal/domain"
)

// AuthHandler handles OTP verification and admin login.
type AuthHandler struct {
	otpSvc   otp.Service
	adminSvc admin.Service
}

func NewAuthHandler(otpSvc otp.Service, adminSvc admin.Service) *AuthHandler {
	return &AuthHandler{otpSvc: otpSvc, adminSvc: adminSvc}
}

type sendOTPRequest struct {
	Email string `json:"email"`
}

func (h *AuthHandler) SendOTP(w http.ResponseWriter, r *http.Request) {
	var req sendOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	identifier := strings.TrimSpace(req.Email)
	if identifier == "" {
		writeError(w, http.StatusBadRequest, "email is required")
		return
	}
	if err := h.otpSvc.Issue(r.Context(), identifier); err != nil {
		if errors.Is(err, domain.ErrUpstream) {
			writeError(w, http.StatusInternalServerError, "failed to send OTP")
			return
		}
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "OTP sent successfully"})
}

// verifyOTPRequest accepts either field name; older front-end builds send
// email, newer ones identifier.
type verifyOTPRequest struct {
	Identifier string `json:"identifier"`
	Email      string `json:"email"`
	OTP        string `json:"otp"`
}

func (h *AuthHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req verifyOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, StatusEnvelope{Success: false, Error: "invalid request body"})
		return
	}
	identifier := strings.TrimSpace(req.Identifier)
	if identifier == "" {
		identifier = strings.TrimSpace(req.Email)
	}
	if identifier == "" || req.OTP == "" {
		writeJSON(w, http.StatusBadRequest, StatusEnvelope{Success: false, Error: "identifier and otp are required"})
		return
	}
	if err := h.otpSvc.Verify(r.Context(), identifier, req.OTP); err != nil {
		writeJSON(w, http.StatusBadRequest, StatusEnvelope{Success: false, Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, StatusEnvelope{Success: true, Message: "OTP verified successfully"})
}

type adminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type adminLoginResponse struct {
	Token string `json:"token"`
}

func (h *AuthHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req adminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	token, err := h.adminSvc.Login(req.Username, req.Password)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, adminLoginResponse{Token: token})
}
