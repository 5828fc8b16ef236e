package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"property-marketplace/marketplace-service/models"
)

// AuthService is the slice of the auth service the handlers need.
type AuthService interface {
	Signup(ctx context.Context, req models.SignupRequest) (*models.UserProfile, error)
	Login(ctx context.Context, email, password string) (string, *models.UserProfile, error)
	ForgotPassword(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, code string) (string, error)
	ResetPassword(ctx context.Context, email, resetToken, newPassword string) error
}

type AuthHandler struct {
	AuthService AuthService
}

func NewAuthHandler(authService AuthService) *AuthHandler {
	return &AuthHandler{AuthService: authService}
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, models.NewValidationError("invalid request data"))
		return
	}

	profile, err := h.AuthService.Signup(r.Context(), req)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, "Signup successful", map[string]interface{}{"user": profile})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, models.NewValidationError("invalid request data"))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, r, err)
		return
	}

	token, profile, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, "Login successful", map[string]interface{}{
		"token": token,
		"user":  profile,
	})
}

func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, models.NewValidationError("invalid request data"))
		return
	}
	if req.Email == "" {
		respondError(w, r, models.NewValidationError("email is required"))
		return
	}

	if err := h.AuthService.ForgotPassword(r.Context(), req.Email); err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, "OTP sent to email", nil)
}

func (h *AuthHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req models.VerifyOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, models.NewValidationError("invalid request data"))
		return
	}
	if req.Email == "" || req.OTP == "" {
		respondError(w, r, models.NewValidationError("email and otp are required"))
		return
	}

	resetToken, err := h.AuthService.VerifyOTP(r.Context(), req.Email, req.OTP)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, "OTP verified", map[string]interface{}{"resetToken": resetToken})
}

func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, models.NewValidationError("invalid request data"))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, r, err)
		return
	}

	if err := h.AuthService.ResetPassword(r.Context(), req.Email, req.ResetToken, req.NewPassword); err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, "Password reset successfully", nil)
}
