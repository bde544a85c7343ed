package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ankitr/coachdesk/internal/pkg/auth"
)

func newAuthTestRouter(jwtService *auth.JWTService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	authMiddleware := NewAuthMiddleware(jwtService)
	router.GET("/protected", authMiddleware.JWTAuth(), func(c *gin.Context) {
		id, ok := StudentID(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "student id missing from context"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"studentId": id})
	})
	return router
}

func TestJWTAuthAcceptsValidToken(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "coachdesk.test",
	})
	router := newAuthTestRouter(jwtService)

	token, _, err := jwtService.GenerateToken(42, "Ravi", "9876543210")
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "42")
}

func TestJWTAuthRejectsMissingAndMalformedHeaders(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
	})
	router := newAuthTestRouter(jwtService)

	// No header
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("GET", "/protected", nil))
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	// Wrong scheme
	recorder = httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	// Garbage token
	recorder = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestJWTAuthRejectsExpiredToken(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: -time.Minute,
	})
	router := newAuthTestRouter(jwtService)

	token, _, err := jwtService.GenerateToken(42, "Ravi", "9876543210")
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "AUTH_003")
}
