package services

import (
	"fmt"
	"time"

	"property-marketplace/marketplace-service/models"

	"github.com/golang-jwt/jwt/v5"
)

const (
	AuthTokenTTL  = 24 * time.Hour
	ResetTokenTTL = 15 * time.Minute

	resetPurpose = "password_reset"
)

type AuthClaims struct {
	Email  string `json:"email"`
	UserID string `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type ResetClaims struct {
	Email   string `json:"email"`
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

// JWTService signs and verifies the two token kinds: 24h bearer tokens for
// login sessions and 15m tokens authorizing a password reset. The secret is
// validated at startup and never defaulted.
type JWTService struct {
	secret []byte
}

func NewJWTService(secret string) *JWTService {
	return &JWTService{secret: []byte(secret)}
}

// GenerateAuthToken issues the login session token bound to the user's
// identity.
func (s *JWTService) GenerateAuthToken(email, userID, role string) (string, error) {
	claims := &AuthClaims{
		Email:  email,
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(AuthTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// GenerateResetToken issues the short-lived token bound to the email whose
// OTP was just verified. A session token cannot stand in for it.
func (s *JWTService) GenerateResetToken(email string) (string, error) {
	claims := &ResetClaims{
		Email:   email,
		Purpose: resetPurpose,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ResetTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *JWTService) ValidateAuthToken(tokenStr string) (*AuthClaims, error) {
	claims := &AuthClaims{}
	if err := s.parseInto(tokenStr, claims); err != nil {
		return nil, err
	}
	if claims.UserID == "" {
		return nil, models.ErrTokenInvalid
	}
	return claims, nil
}

func (s *JWTService) ValidateResetToken(tokenStr string) (*ResetClaims, error) {
	claims := &ResetClaims{}
	if err := s.parseInto(tokenStr, claims); err != nil {
		return nil, err
	}
	if claims.Purpose != resetPurpose {
		return nil, models.ErrTokenInvalid
	}
	return claims, nil
}

func (s *JWTService) parseInto(tokenStr string, claims jwt.Claims) error {
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return models.ErrTokenInvalid
	}
	return nil
}
