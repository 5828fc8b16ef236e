package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"property-marketplace/marketplace-service/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedHandler(t *testing.T, wantUserID string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, wantUserID, claims.UserID)
		w.WriteHeader(http.StatusOK)
	})
}

func TestJWTAuthMiddlewareMissingHeader(t *testing.T) {
	jwtService := services.NewJWTService("test-signing-secret")
	handler := JWTAuthMiddleware(jwtService)(protectedHandler(t, ""))

	req := httptest.NewRequest(http.MethodPost, "/api/listings", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestJWTAuthMiddlewareMissingBearerPrefix(t *testing.T) {
	jwtService := services.NewJWTService("test-signing-secret")
	handler := JWTAuthMiddleware(jwtService)(protectedHandler(t, ""))

	req := httptest.NewRequest(http.MethodPost, "/api/listings", nil)
	req.Header.Set("Authorization", "some-token")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestJWTAuthMiddlewareInvalidToken(t *testing.T) {
	jwtService := services.NewJWTService("test-signing-secret")
	handler := JWTAuthMiddleware(jwtService)(protectedHandler(t, ""))

	req := httptest.NewRequest(http.MethodPost, "/api/listings", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestJWTAuthMiddlewarePassesClaims(t *testing.T) {
	jwtService := services.NewJWTService("test-signing-secret")
	token, err := jwtService.GenerateAuthToken("a@x.com", "5f1d7f1e8e6f4b2a1c3d5e7f", "seller")
	require.NoError(t, err)

	handler := JWTAuthMiddleware(jwtService)(protectedHandler(t, "5f1d7f1e8e6f4b2a1c3d5e7f"))

	req := httptest.NewRequest(http.MethodPost, "/api/listings", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

// A reset token is not a session token; the listing routes must refuse it.
func TestJWTAuthMiddlewareRejectsResetToken(t *testing.T) {
	jwtService := services.NewJWTService("test-signing-secret")
	token, err := jwtService.GenerateResetToken("a@x.com")
	require.NoError(t, err)

	handler := JWTAuthMiddleware(jwtService)(protectedHandler(t, ""))

	req := httptest.NewRequest(http.MethodPost, "/api/listings", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
