package models

import (
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
)

type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	Email      string             `bson:"email" json:"email"`
	Phone      string             `bson:"phone" json:"phone"`
	Password   string             `bson:"password" json:"-"`
	Role       string             `bson:"role" json:"role"`
	OTP        string             `bson:"otp,omitempty" json:"-"`
	OTPExpires time.Time          `bson:"otpExpires,omitempty" json:"-"`
}

// UserProfile is the sanitized projection returned by the API. It never
// carries the password hash or the pending OTP fields.
type UserProfile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

func (u User) Profile() UserProfile {
	return UserProfile{
		ID:    u.ID.Hex(),
		Name:  u.Name,
		Email: u.Email,
		Phone: u.Phone,
		Role:  u.Role,
	}
}

var (
	emailRegex = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)
	phoneRegex = regexp.MustCompile(`^[0-9]{10}$`)
)

type SignupRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Role            string `json:"role"`
}

func (r SignupRequest) Validate() error {
	if r.Name == "" || r.Email == "" || r.Phone == "" || r.Password == "" || r.ConfirmPassword == "" || r.Role == "" {
		return NewValidationError("all fields are required")
	}
	if len(r.Password) < 6 {
		return NewValidationError("password must be at least 6 characters long")
	}
	if r.Password != r.ConfirmPassword {
		return NewValidationError("passwords do not match")
	}
	if !emailRegex.MatchString(r.Email) {
		return NewValidationError("please enter a valid email address")
	}
	if !phoneRegex.MatchString(r.Phone) {
		return NewValidationError("please enter a valid 10-digit phone number")
	}
	if r.Role != RoleBuyer && r.Role != RoleSeller {
		return NewValidationError("role must be either buyer or seller")
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	if r.Email == "" || r.Password == "" {
		return NewValidationError("email and password are required")
	}
	return nil
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type VerifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email"`
	ResetToken  string `json:"resetToken"`
	NewPassword string `json:"newPassword"`
}

func (r ResetPasswordRequest) Validate() error {
	if r.Email == "" || r.ResetToken == "" || r.NewPassword == "" {
		return NewValidationError("missing required fields")
	}
	if len(r.NewPassword) < 6 {
		return NewValidationError("password must be at least 6 characters long")
	}
	return nil
}
