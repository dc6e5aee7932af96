package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hr-backend/internal/api/middleware"
	"hr-backend/internal/auth"
	"hr-backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-test-secret"

func tokenFor(t *testing.T, role models.Role) string {
	t.Helper()
	user := &models.User{ID: uuid.New(), Email: "someone@example.com", Role: role}
	token, err := auth.NewAccessToken(testSecret, user, 15*time.Minute)
	require.NoError(t, err)
	return token
}

func newProtectedRouter(guard gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", middleware.JWTAuthMiddleware(testSecret), guard, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func request(router *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequireRecruitingAccess(t *testing.T) {
	router := newProtectedRouter(middleware.RequireRecruitingAccess())

	tests := []struct {
		name           string
		role           models.Role
		expectedStatus int
	}{
		{name: "admin allowed", role: models.RoleAdmin, expectedStatus: http.StatusOK},
		{name: "hr allowed", role: models.RoleHR, expectedStatus: http.StatusOK},
		{name: "candidate forbidden", role: models.RoleCandidate, expectedStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := request(router, tokenFor(t, tt.role))
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	router := newProtectedRouter(middleware.RequireAdmin())

	assert.Equal(t, http.StatusOK, request(router, tokenFor(t, models.RoleAdmin)).Code)
	assert.Equal(t, http.StatusForbidden, request(router, tokenFor(t, models.RoleHR)).Code)
	assert.Equal(t, http.StatusForbidden, request(router, tokenFor(t, models.RoleCandidate)).Code)
}

func TestJWTAuthMiddleware_MissingToken(t *testing.T) {
	router := newProtectedRouter(middleware.RequireRecruitingAccess())
	assert.Equal(t, http.StatusUnauthorized, request(router, "").Code)
}

func TestJWTAuthMiddleware_ExpiredToken(t *testing.T) {
	user := &models.User{ID: uuid.New(), Email: "someone@example.com", Role: models.RoleAdmin}
	token, err := auth.NewAccessToken(testSecret, user, -time.Minute)
	require.NoError(t, err)

	router := newProtectedRouter(middleware.RequireRecruitingAccess())
	assert.Equal(t, http.StatusUnauthorized, request(router, token).Code)
}
