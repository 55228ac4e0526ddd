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

	"supermercado-backend/internal/features/user/models"
	"supermercado-backend/internal/features/user/repository/memory"
	"supermercado-backend/internal/features/user/service"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewUserHandler(service.New(memory.New()))
	handler.RegisterRoutes(router.Group("/api"))
	return router
}

func doRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestListUsersSeeded(t *testing.T) {
	router := setupRouter()

	w := doRequest(router, http.MethodGet, "/api/users", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var users []models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	require.Len(t, users, 3)
	assert.Equal(t, "Cesar Ortiz", users[0].Name)
}

func TestCreateThenDeleteScenario(t *testing.T) {
	router := setupRouter()

	// Seeded with 3; a valid create makes 4.
	w := doRequest(router, http.MethodPost, "/api/users", models.CreateUserRequest{
		Name: "John Smith", Email: "john@example.com", Phone: "3001234567", Address: "Carrera 7 #10-20",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, 4, created.ID)

	w = doRequest(router, http.MethodGet, "/api/users", nil)
	var users []models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	assert.Len(t, users, 4)

	// Deleting the new user brings the list back to 3.
	w = doRequest(router, http.MethodDelete, "/api/users/4", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodGet, "/api/users", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	assert.Len(t, users, 3)
}

func TestCreateValidationError(t *testing.T) {
	router := setupRouter()

	w := doRequest(router, http.MethodPost, "/api/users", models.CreateUserRequest{
		Name: "John123", Email: "john@example.com", Phone: "3001234567", Address: "x",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "letters and spaces")
}

func TestCreateMissingFields(t *testing.T) {
	router := setupRouter()

	w := doRequest(router, http.MethodPost, "/api/users", map[string]string{"name": "John Smith"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetUserByID(t *testing.T) {
	router := setupRouter()

	w := doRequest(router, http.MethodGet, "/api/users/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var user models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	assert.Equal(t, "Cesar Ortiz", user.Name)

	w = doRequest(router, http.MethodGet, "/api/users/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(router, http.MethodGet, "/api/users/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdatePathIDWins(t *testing.T) {
	router := setupRouter()

	w := doRequest(router, http.MethodPut, "/api/users/2", models.UpdateUserRequest{
		Name: "Maria Garcia", Email: "maria.garcia@email.com", Phone: "3012345678", Address: "Nueva direccion",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var user models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	assert.Equal(t, 2, user.ID)
	assert.Equal(t, "Nueva direccion", user.Address)
}

func TestUpdateNotFound(t *testing.T) {
	router := setupRouter()

	w := doRequest(router, http.MethodPut, "/api/users/99", models.UpdateUserRequest{
		Name: "Ghost User", Email: "g@g.co", Phone: "3001234567", Address: "nowhere",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteNotFound(t *testing.T) {
	router := setupRouter()

	w := doRequest(router, http.MethodDelete, "/api/users/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSearchByNameQuery(t *testing.T) {
	router := setupRouter()

	w := doRequest(router, http.MethodGet, "/api/users?name=carlos", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var users []models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	require.Len(t, users, 1)
	assert.Equal(t, "Carlos López", users[0].Name)
}

func TestSearchNoMatchesReturnsEmptyArray(t *testing.T) {
	router := setupRouter()

	w := doRequest(router, http.MethodGet, "/api/users?name=zzz", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestAddressSerializesAsString(t *testing.T) {
	router := setupRouter()

	w := doRequest(router, http.MethodGet, "/api/users/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	assert.NotEqual(t, "null", string(raw["address"]))
}
