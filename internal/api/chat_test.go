package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChatAnonymous(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := PerformRequest(router, "POST", "/api/v1/chat", map[string]interface{}{
		"message": "how do I substitute butter",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, decodeBody(t, w)["response"])
}

func TestChatAuthenticatedFavorites(t *testing.T) {
	router, _ := setupTestRouter(t)
	token := CreateTestUserAndToken(t, router, "holly")

	w := PerformRequestWithToken(router, "POST", "/api/v1/recipes/Greek%20Salad/favorite", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)

	w = PerformRequestWithToken(router, "POST", "/api/v1/chat", map[string]interface{}{
		"message": "show my favorites",
	}, token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, decodeBody(t, w)["response"], "Greek Salad")
}

func TestChatRejectsEmptyMessage(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := PerformRequest(router, "POST", "/api/v1/chat", map[string]interface{}{
		"message": "",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubstitutionsEndpoint(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := PerformRequest(router, "POST", "/api/v1/substitutions", map[string]interface{}{
		"ingredient": "butter",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "butter", body["ingredient"])
	assert.NotEmpty(t, body["substitutions"])
}

func TestTipsEndpoint(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := PerformRequest(router, "GET", "/api/v1/tips", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "general", body["category"])
	assert.NotEmpty(t, body["tips"])

	w = PerformRequest(router, "GET", "/api/v1/tips?category=knife_skills", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "knife_skills", decodeBody(t, w)["category"])
}
