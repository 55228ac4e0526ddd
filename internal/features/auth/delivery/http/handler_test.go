package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"supermercado-backend/internal/features/auth/service"
	"supermercado-backend/internal/features/user/repository/memory"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewAuthHandler(service.New(memory.New())).RegisterRoutes(router.Group("/api"))
	return router
}

func postJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestLoginEndpoint(t *testing.T) {
	router := setupRouter()

	w := postJSON(router, "/api/auth/login", LoginRequest{Email: "brccesar@gmail.com", Name: "Cesar Ortiz"})
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		User    struct {
			ID    int    `json:"id"`
			Name  string `json:"name"`
			Email string `json:"email"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, 1, body.User.ID)
	assert.Equal(t, "Cesar Ortiz", body.User.Name)
}

func TestLoginInvalidCredentials(t *testing.T) {
	router := setupRouter()

	w := postJSON(router, "/api/auth/login", LoginRequest{Email: "nobody@example.com", Name: "Nobody"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginMissingFields(t *testing.T) {
	router := setupRouter()

	w := postJSON(router, "/api/auth/login", map[string]string{"email": "brccesar@gmail.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMeWithoutSession(t *testing.T) {
	router := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginThenMeThenLogout(t *testing.T) {
	router := setupRouter()

	w := postJSON(router, "/api/auth/login", LoginRequest{Email: "maria.garcia@email.com", Name: "María García"})
	require.Equal(t, http.StatusOK, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var user struct {
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	assert.Equal(t, "María García", user.Name)

	w = postJSON(router, "/api/auth/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
