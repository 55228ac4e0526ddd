package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"supermercado-backend/internal/common/cache"
	"supermercado-backend/internal/features/employee/models"
	"supermercado-backend/internal/features/employee/repository/memory"
	"supermercado-backend/internal/features/employee/service"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	svc := service.New(memory.New(), cache.NewMemory(time.Minute))
	NewEmployeeHandler(svc).RegisterRoutes(router.Group("/api"))
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

func TestListEmployees(t *testing.T) {
	router := setupRouter()

	w := doRequest(router, http.MethodGet, "/api/empleados", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var employees []models.Employee
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &employees))
	require.Len(t, employees, 10)
	assert.Equal(t, "Ana María López", employees[0].Nombre)
}

func TestEmployeeWireShape(t *testing.T) {
	router := setupRouter()

	w := doRequest(router, http.MethodGet, "/api/empleados/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	for _, field := range []string{"id", "nombre", "cargo", "salario", "telefono", "email", "departamento", "fechaIngreso", "activo"} {
		assert.Contains(t, raw, field)
	}

	// fechaIngreso is a bare date.
	var fecha string
	require.NoError(t, json.Unmarshal(raw["fechaIngreso"], &fecha))
	_, err := time.Parse("2006-01-02", fecha)
	assert.NoError(t, err)
}

func TestSoftDeleteViaAPI(t *testing.T) {
	router := setupRouter()

	w := doRequest(router, http.MethodDelete, "/api/empleados/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodGet, "/api/empleados/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(router, http.MethodGet, "/api/empleados", nil)
	var employees []models.Employee
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &employees))
	assert.Len(t, employees, 9)
}

func TestSearchQueryParam(t *testing.T) {
	router := setupRouter()

	w := doRequest(router, http.MethodGet, "/api/empleados?q=Cajero", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var employees []models.Employee
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &employees))
	assert.Len(t, employees, 2)

	// Falls back to name search when the term matches no cargo.
	w = doRequest(router, http.MethodGet, "/api/empleados?q=Ana", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &employees))
	require.Len(t, employees, 1)
	assert.Equal(t, "Ana María López", employees[0].Nombre)
}

func TestFilterByDepartamento(t *testing.T) {
	router := setupRouter()

	w := doRequest(router, http.MethodGet, "/api/empleados?departamento=Ventas", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var employees []models.Employee
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &employees))
	assert.Len(t, employees, 4)
}

func TestCreateEmployee(t *testing.T) {
	router := setupRouter()

	w := doRequest(router, http.MethodPost, "/api/empleados", models.CreateEmployeeRequest{
		Nombre: "Nuevo Empleado", Cargo: "Cajero", Salario: 950000, Telefono: "3001234567",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Employee
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, 11, created.ID)
	assert.Equal(t, "General", created.Departamento)
	assert.True(t, created.Activo)
}

func TestCreateEmployeeSalaryBounds(t *testing.T) {
	router := setupRouter()

	for salario, wantStatus := range map[float64]int{
		799999:   http.StatusBadRequest,
		800000:   http.StatusCreated,
		10000000: http.StatusCreated,
		10000001: http.StatusBadRequest,
	} {
		w := doRequest(router, http.MethodPost, "/api/empleados", models.CreateEmployeeRequest{
			Nombre: "Empleado Limite", Cargo: "Cajero", Salario: salario,
		})
		assert.Equal(t, wantStatus, w.Code, "salario %v", salario)
	}
}

func TestUpdateEmployee(t *testing.T) {
	router := setupRouter()

	w := doRequest(router, http.MethodPut, "/api/empleados/2", models.UpdateEmployeeRequest{
		Nombre: "Carlos Mendoza", Cargo: "Supervisor", Salario: 1500000, Departamento: "Ventas",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Employee
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "Supervisor", updated.Cargo)
	assert.Equal(t, 2, updated.ID)
}

func TestUpdateEmployeeNotFound(t *testing.T) {
	router := setupRouter()

	w := doRequest(router, http.MethodPut, "/api/empleados/99", models.UpdateEmployeeRequest{
		Nombre: "Ghost Employee", Cargo: "Cajero", Salario: 900000,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCargosEndpoint(t *testing.T) {
	router := setupRouter()

	w := doRequest(router, http.MethodGet, "/api/empleados/cargos", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var cargos []string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cargos))
	assert.Equal(t, []string{"Almacenista", "Cajero", "Gerente", "Limpieza", "Seguridad", "Supervisor", "Vendedor"}, cargos)
}

func TestDepartamentosEndpoint(t *testing.T) {
	router := setupRouter()

	w := doRequest(router, http.MethodGet, "/api/empleados/departamentos", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var departamentos []string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &departamentos))
	assert.Contains(t, departamentos, "Ventas")
	assert.Contains(t, departamentos, "Logística")
}

func TestEstadisticasEndpoint(t *testing.T) {
	router := setupRouter()

	w := doRequest(router, http.MethodGet, "/api/empleados/estadisticas", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats map[string]int
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 2, stats["Cajero"])
}
