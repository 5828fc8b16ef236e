package utils

import (
	"testing"
	"time"

	"property-marketplace/marketplace-service/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOTPFormat(t *testing.T) {
	for i := 0; i < 20; i++ {
		code := GenerateOTP()
		require.Len(t, code, 6)
		for _, c := range code {
			assert.True(t, c >= '0' && c <= '9')
		}
	}
}

func TestCheckOTP(t *testing.T) {
	code := "123456"
	hash, err := HashOTP(code)
	require.NoError(t, err)

	future := time.Now().Add(time.Hour)

	assert.NoError(t, CheckOTP(hash, future, code))
	assert.ErrorIs(t, CheckOTP(hash, future, "654321"), models.ErrOTPInvalid)
}

// A correct code is still rejected once the stored expiry has passed.
func TestCheckOTPExpired(t *testing.T) {
	code := "123456"
	hash, err := HashOTP(code)
	require.NoError(t, err)

	expired := time.Now().Add(-time.Minute)
	assert.ErrorIs(t, CheckOTP(hash, expired, code), models.ErrOTPExpired)
}

func TestCheckOTPNoPendingCode(t *testing.T) {
	assert.ErrorIs(t, CheckOTP("", time.Time{}, "123456"), models.ErrOTPExpired)
}

func TestHashOTPNeverStoresPlaintext(t *testing.T) {
	code := "123456"
	hash, err := HashOTP(code)
	require.NoError(t, err)
	assert.NotContains(t, hash, code)
}
