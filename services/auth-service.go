package services

import (
	"context"
	"errors"
	"fmt"
	"html"
	"time"

	"property-marketplace/marketplace-service/logging"
	"property-marketplace/marketplace-service/models"
	"property-marketplace/marketplace-service/utils"

	"github.com/sony/gobreaker"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

const otpTTL = time.Hour

// AuthService implements signup, login and the OTP-gated password-reset flow
// over the users collection.
type AuthService struct {
	UserCollection *mongo.Collection
	JWTService     *JWTService
	EmailBreaker   *gobreaker.CircuitBreaker
}

func NewAuthService(userCollection *mongo.Collection, jwtService *JWTService, emailBreaker *gobreaker.CircuitBreaker) *AuthService {
	return &AuthService{
		UserCollection: userCollection,
		JWTService:     jwtService,
		EmailBreaker:   emailBreaker,
	}
}

// Signup validates the request, rejects duplicate email or phone and persists
// the user with a one-way password hash.
func (s *AuthService) Signup(ctx context.Context, req models.SignupRequest) (*models.UserProfile, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	filter := bson.M{"$or": bson.A{bson.M{"email": req.Email}, bson.M{"phone": req.Phone}}}
	var existing models.User
	if err := s.UserCollection.FindOne(ctx, filter).Decode(&existing); err == nil {
		return nil, models.ErrUserAlreadyExists
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to check existing user: %v", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %v", err)
	}

	user := models.User{
		Name:     html.EscapeString(req.Name),
		Email:    req.Email,
		Phone:    req.Phone,
		Password: string(hashedPassword),
		Role:     req.Role,
	}

	result, err := s.UserCollection.InsertOne(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to save user: %v", err)
	}
	user.ID = result.InsertedID.(primitive.ObjectID)

	logging.Logger.Infof("Event ID: USER_REGISTERED, Description: New user registered with email '%s'", user.Email)

	profile := user.Profile()
	return &profile, nil
}

// Login verifies the credentials and issues a 24h session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.UserProfile, error) {
	var user models.User
	if err := s.UserCollection.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		return "", nil, models.ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, models.ErrInvalidCredentials
	}

	token, err := s.JWTService.GenerateAuthToken(user.Email, user.ID.Hex(), user.Role)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %v", err)
	}

	profile := user.Profile()
	return token, &profile, nil
}

// ForgotPassword stores a hashed one-time code with a one-hour expiry and
// mails the plaintext code to the user. A new call overwrites any pending
// code, so only one is ever live.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	var user models.User
	if err := s.UserCollection.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		return models.ErrUserNotFound
	}

	code := utils.GenerateOTP()
	hashedCode, err := utils.HashOTP(code)
	if err != nil {
		return err
	}

	update := bson.M{"$set": bson.M{
		"otp":        hashedCode,
		"otpExpires": time.Now().Add(otpTTL),
	}}
	if _, err := s.UserCollection.UpdateOne(ctx, bson.M{"email": email}, update); err != nil {
		return fmt.Errorf("failed to store OTP: %v", err)
	}

	subject := "Your password reset code"
	body := fmt.Sprintf("Your password reset code is %s. It expires in one hour.", code)
	if _, err := s.EmailBreaker.Execute(func() (interface{}, error) {
		return nil, utils.SendEmail(user.Email, subject, body)
	}); err != nil {
		return fmt.Errorf("failed to send OTP: %v", err)
	}

	logging.Logger.Infof("Event ID: OTP_ISSUED, Description: Password reset code sent to '%s'", user.Email)
	return nil
}

// VerifyOTP checks the pending code and its expiry, then issues a 15m reset
// token bound to the email.
func (s *AuthService) VerifyOTP(ctx context.Context, email, code string) (string, error) {
	var user models.User
	if err := s.UserCollection.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		return "", models.ErrOTPExpired
	}

	if err := utils.CheckOTP(user.OTP, user.OTPExpires, code); err != nil {
		return "", err
	}

	resetToken, err := s.JWTService.GenerateResetToken(email)
	if err != nil {
		return "", fmt.Errorf("failed to generate reset token: %v", err)
	}
	return resetToken, nil
}

// ResetPassword verifies the reset token against the supplied email, stores
// the new hash and clears the pending code and its expiry in one update.
func (s *AuthService) ResetPassword(ctx context.Context, email, resetToken, newPassword string) error {
	claims, err := s.JWTService.ValidateResetToken(resetToken)
	if err != nil {
		return err
	}
	if claims.Email != email {
		return models.ErrTokenInvalid
	}

	var user models.User
	if err := s.UserCollection.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		return models.ErrUserNotFound
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %v", err)
	}

	update := bson.M{
		"$set":   bson.M{"password": string(hashedPassword)},
		"$unset": bson.M{"otp": "", "otpExpires": ""},
	}
	if _, err := s.UserCollection.UpdateOne(ctx, bson.M{"email": email}, update); err != nil {
		return fmt.Errorf("failed to update password: %v", err)
	}

	logging.Logger.Infof("Event ID: PASSWORD_RESET, Description: Password reset completed for '%s'", user.Email)
	return nil
}
