package routes_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/parkpilot/parkpilot/internal/app/controllers"
	"github.com/parkpilot/parkpilot/internal/app/models"
	"github.com/parkpilot/parkpilot/internal/app/routes"
	"github.com/parkpilot/parkpilot/internal/app/services"
	"github.com/parkpilot/parkpilot/internal/middleware"
	"github.com/parkpilot/parkpilot/internal/pkg/auth"
)

// testEngine builds the real route table over empty services. Only guard
// rejections are exercised here, so no handler ever runs.
func testEngine(jwtService *auth.JWTService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	routes.SetupRouter(router, controllers.NewControllers(&services.Services{}), middleware.NewAuthMiddleware(jwtService))
	return router
}

func TestLocationDetailScopedToCallerSite(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExpiry: time.Hour,
		TokenIssuer: "parkpilot.test",
	})
	router := testEngine(jwtService)

	// Anonymous callers never reach the site check
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/locations/id/7", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// A valet assigned to site 8 cannot read site 7
	podiumID, locationID := int64(2), int64(8)
	token, err := jwtService.GenerateToken(4, "valet", models.RoleValet, &podiumID, &locationID)
	assert.NoError(t, err)

	req, _ = http.NewRequest(http.MethodGet, "/api/v1/locations/id/7", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// No location claim at all also fails closed
	bareToken, err := jwtService.GenerateToken(5, "floater", models.RoleValet, nil, nil)
	assert.NoError(t, err)

	req, _ = http.NewRequest(http.MethodGet, "/api/v1/locations/id/7", nil)
	req.Header.Set("Authorization", "Bearer "+bareToken)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
