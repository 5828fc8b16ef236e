package utils

import (
	"fmt"
	"time"

	"property-marketplace/marketplace-service/models"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/rand"
)

// GenerateOTP returns a 6-digit numeric one-time code.
func GenerateOTP() string {
	rand.Seed(uint64(time.Now().UnixNano()))
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

// HashOTP stores only a one-way hash of the code; the plaintext goes out by
// email and is never persisted.
func HashOTP(code string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash OTP: %v", err)
	}
	return string(hashed), nil
}

// CheckOTP verifies a submitted code against the stored hash and expiry.
func CheckOTP(hash string, expires time.Time, code string) error {
	if hash == "" || expires.IsZero() {
		return models.ErrOTPExpired
	}
	if time.Now().After(expires) {
		return models.ErrOTPExpired
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(code)); err != nil {
		return models.ErrOTPInvalid
	}
	return nil
}
