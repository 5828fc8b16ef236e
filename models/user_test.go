package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func validSignup() SignupRequest {
	return SignupRequest{
		Name:            "A",
		Email:           "a@x.com",
		Phone:           "9999999999",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		Role:            "buyer",
	}
}

func TestSignupRequestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(*SignupRequest)
		wantErr bool
	}{
		{name: "valid buyer", mutate: func(r *SignupRequest) {}, wantErr: false},
		{name: "valid seller", mutate: func(r *SignupRequest) { r.Role = "seller" }, wantErr: false},
		{name: "missing name", mutate: func(r *SignupRequest) { r.Name = "" }, wantErr: true},
		{name: "missing email", mutate: func(r *SignupRequest) { r.Email = "" }, wantErr: true},
		{name: "missing phone", mutate: func(r *SignupRequest) { r.Phone = "" }, wantErr: true},
		{name: "missing confirm", mutate: func(r *SignupRequest) { r.ConfirmPassword = "" }, wantErr: true},
		{name: "short password", mutate: func(r *SignupRequest) { r.Password = "abc12"; r.ConfirmPassword = "abc12" }, wantErr: true},
		{name: "password mismatch", mutate: func(r *SignupRequest) { r.ConfirmPassword = "secret2" }, wantErr: true},
		{name: "bad email", mutate: func(r *SignupRequest) { r.Email = "not-an-email" }, wantErr: true},
		{name: "short phone", mutate: func(r *SignupRequest) { r.Phone = "12345" }, wantErr: true},
		{name: "alpha phone", mutate: func(r *SignupRequest) { r.Phone = "99999abc99" }, wantErr: true},
		{name: "unknown role", mutate: func(r *SignupRequest) { r.Role = "admin" }, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := validSignup()
			tc.mutate(&req)

			err := req.Validate()
			if tc.wantErr {
				require.Error(t, err)
				var validationErr *ValidationError
				assert.ErrorAs(t, err, &validationErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestResetPasswordRequestValidate(t *testing.T) {
	assert.Error(t, ResetPasswordRequest{Email: "a@x.com", ResetToken: "t"}.Validate())
	assert.Error(t, ResetPasswordRequest{Email: "a@x.com", ResetToken: "t", NewPassword: "short"}.Validate())
	assert.NoError(t, ResetPasswordRequest{Email: "a@x.com", ResetToken: "t", NewPassword: "longenough"}.Validate())
}

// The JSON shape of a user must never expose the password hash or the OTP
// fields.
func TestUserJSONHidesSecrets(t *testing.T) {
	user := User{
		ID:       primitive.NewObjectID(),
		Name:     "A",
		Email:    "a@x.com",
		Phone:    "9999999999",
		Password: "$2a$10$hash",
		Role:     RoleBuyer,
		OTP:      "$2a$10$otphash",
	}

	raw, err := json.Marshal(user)
	require.NoError(t, err)

	assert.NotContains(t, string(raw), "hash")
	assert.NotContains(t, string(raw), "password")
	assert.NotContains(t, string(raw), "otp")
}

func TestProfileProjection(t *testing.T) {
	id := primitive.NewObjectID()
	user := User{ID: id, Name: "A", Email: "a@x.com", Phone: "9999999999", Password: "hash", Role: RoleSeller}

	profile := user.Profile()
	assert.Equal(t, id.Hex(), profile.ID)
	assert.Equal(t, "A", profile.Name)
	assert.Equal(t, "a@x.com", profile.Email)
	assert.Equal(t, RoleSeller, profile.Role)
}
