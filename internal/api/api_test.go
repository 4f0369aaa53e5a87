package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/mealforge/backend/internal/service"
)

func TestHealthCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/health", HealthCheck)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestErrorStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, errorStatus(service.ErrRecipeNotFound))
	assert.Equal(t, http.StatusBadRequest, errorStatus(service.ErrInvalidServings))
	assert.Equal(t, http.StatusConflict, errorStatus(service.ErrUserExists))
	assert.Equal(t, http.StatusUnauthorized, errorStatus(service.ErrInvalidCredentials))
	assert.Equal(t, http.StatusInternalServerError, errorStatus(assert.AnError))
}

func TestUnauthenticatedRequestGetsJSONError(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := PerformRequest(router, "GET", "/api/v1/favorites", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, decodeBody(t, w), "error")
}
