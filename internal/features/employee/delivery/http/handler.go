package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	apperrors "supermercado-backend/internal/common/errors"
	"supermercado-backend/internal/features/employee/models"
	"supermercado-backend/internal/features/employee/service"
)

type EmployeeHandler struct {
	service service.Service
}

func NewEmployeeHandler(service service.Service) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

func (h *EmployeeHandler) RegisterRoutes(router *gin.RouterGroup) {
	empleados := router.Group("/empleados")
	{
		empleados.GET("", h.List)
		empleados.POST("", h.Create)
		empleados.GET("/cargos", h.Cargos)
		empleados.GET("/departamentos", h.Departamentos)
		empleados.GET("/estadisticas", h.Estadisticas)
		empleados.GET("/:id", h.GetByID)
		empleados.PUT("/:id", h.Update)
		empleados.DELETE("/:id", h.Delete)
	}
}

// @Summary List employees
// @Description List active employees. ?q= searches cargo first and falls back to nombre; ?cargo= and ?departamento= filter directly.
// @Tags empleados
// @Produce json
// @Param q query string false "Search term (cargo, then nombre)"
// @Param cargo query string false "Cargo substring filter"
// @Param departamento query string false "Departamento substring filter"
// @Success 200 {array} models.Employee
// @Router /empleados [get]
func (h *EmployeeHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		employees []*models.Employee
		err       error
	)

	switch {
	case c.Query("q") != "":
		employees, err = h.service.Search(ctx, c.Query("q"))
	case c.Query("cargo") != "":
		employees, err = h.service.FindByCargo(ctx, c.Query("cargo"))
	case c.Query("departamento") != "":
		employees, err = h.service.FindByDepartamento(ctx, c.Query("departamento"))
	default:
		employees, err = h.service.GetAll(ctx)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	if employees == nil {
		employees = []*models.Employee{}
	}
	c.JSON(http.StatusOK, employees)
}

// @Summary Create employee
// @Description Validate and create a new active employee; hireDate defaults to today
// @Tags empleados
// @Accept json
// @Produce json
// @Param employee body models.CreateEmployeeRequest true "Employee data"
// @Success 201 {object} models.Employee
// @Failure 400 {object} map[string]string "Validation error"
// @Router /empleados [post]
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req models.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	employee, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, employee)
}

// @Summary Get employee by id
// @Description Returns the employee only while active; soft-deleted records are 404
// @Tags empleados
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {object} models.Employee
// @Failure 404 {object} map[string]string "Not found"
// @Router /empleados/{id} [get]
func (h *EmployeeHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	employee, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, employee)
}

// @Summary Update employee
// @Description Full-record replace of an active employee; the path id wins
// @Tags empleados
// @Accept json
// @Produce json
// @Param id path int true "Employee ID"
// @Param employee body models.UpdateEmployeeRequest true "Employee data"
// @Success 200 {object} models.Employee
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Not found"
// @Router /empleados/{id} [put]
func (h *EmployeeHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req models.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	employee, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, employee)
}

// @Summary Delete employee
// @Description Soft delete: the record is deactivated, not removed
// @Tags empleados
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {object} map[string]string "Confirmation"
// @Failure 404 {object} map[string]string "Not found"
// @Router /empleados/{id} [delete]
func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "empleado eliminado"})
}

// @Summary List distinct cargos
// @Tags empleados
// @Produce json
// @Success 200 {array} string
// @Router /empleados/cargos [get]
func (h *EmployeeHandler) Cargos(c *gin.Context) {
	cargos, err := h.service.Cargos(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if cargos == nil {
		cargos = []string{}
	}
	c.JSON(http.StatusOK, cargos)
}

// @Summary List distinct departamentos
// @Tags empleados
// @Produce json
// @Success 200 {array} string
// @Router /empleados/departamentos [get]
func (h *EmployeeHandler) Departamentos(c *gin.Context) {
	departamentos, err := h.service.Departamentos(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if departamentos == nil {
		departamentos = []string{}
	}
	c.JSON(http.StatusOK, departamentos)
}

// @Summary Headcount per cargo
// @Tags empleados
// @Produce json
// @Success 200 {object} map[string]int
// @Router /empleados/estadisticas [get]
func (h *EmployeeHandler) Estadisticas(c *gin.Context) {
	stats, err := h.service.Estadisticas(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func parseID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid employee id"})
		return 0, false
	}
	return id, true
}

func respondError(c *gin.Context, err error) {
	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		log.Error().Err(err).Msg("unexpected error in employee handler")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	switch appErr.Code {
	case apperrors.ErrCodeValidation, apperrors.ErrCodeConflict, apperrors.ErrCodeBadRequest:
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": appErr.Message})
	case apperrors.ErrCodeNotFound:
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": appErr.Message})
	default:
		log.Error().Err(appErr).Msg("storage failure in employee handler")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
