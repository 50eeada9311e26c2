package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "usr-1",
		"email":   "ops@terravita.example",
		"role":    role,
	})
	s, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func TestAdminRouteProtection(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")

	r := gin.New()
	admin := r.Group("/admin")
	admin.Use(AuthMiddleware(), AdminMiddleware())
	admin.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	do := func(authHeader string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
		if authHeader != "" {
			req.Header.Set("Authorization", authHeader)
		}
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusUnauthorized, do(""))
	assert.Equal(t, http.StatusUnauthorized, do("Bearer not-a-token"))
	assert.Equal(t, http.StatusUnauthorized, do("Basic abc"))
	assert.Equal(t, http.StatusForbidden, do("Bearer "+signToken(t, "test-secret", "Editor")))
	assert.Equal(t, http.StatusUnauthorized, do("Bearer "+signToken(t, "wrong-secret", "Admin")))
	assert.Equal(t, http.StatusOK, do("Bearer "+signToken(t, "test-secret", "Admin")))
}
