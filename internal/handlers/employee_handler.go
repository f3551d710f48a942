package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "targetrack/internal/errors"
	"targetrack/internal/filter"
	"targetrack/internal/models"
	"targetrack/internal/services"
)

// EmployeeHandler handles employee-related requests.
type EmployeeHandler struct {
	employeeService services.EmployeeServicer
	auditService    services.AuditServicer
}

// NewEmployeeHandler creates a new EmployeeHandler.
func NewEmployeeHandler(employeeService services.EmployeeServicer, auditService services.AuditServicer) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService, auditService: auditService}
}

// CreateEmployeeRequest represents the request payload for creating an employee.
type CreateEmployeeRequest struct {
	Name           string          `json:"name" binding:"required,max=100"`
	Position       models.Position `json:"position" binding:"required,position"`
	OfficeLocation string          `json:"office_location" binding:"required,max=100"`
	EntryDate      string          `json:"entry_date" binding:"required" example:"2023-01-09"`
}

// UpdateEmployeeRequest represents the request payload for updating an employee.
// Omitted fields keep their current value.
type UpdateEmployeeRequest struct {
	Name           *string          `json:"name" binding:"omitempty,min=1,max=100"`
	Position       *models.Position `json:"position" binding:"omitempty,position"`
	OfficeLocation *string          `json:"office_location" binding:"omitempty,min=1,max=100"`
	EntryDate      *string          `json:"entry_date" example:"2023-01-09"`
}

// parseDate accepts a calendar date or a full RFC 3339 timestamp.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "entry_date must be YYYY-MM-DD")
	}
	return t, nil
}

// CreateEmployee handles the creation of a new employee
// @Summary     Create an employee
// @Tags        employees
// @Accept      json
// @Produce     json
// @Param       request body CreateEmployeeRequest true "Employee details"
// @Success     201 {object} models.Employee
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /employees [post]
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	entry, err := parseDate(req.EntryDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	employee, err := h.employeeService.CreateEmployee(services.EmployeeInput{
		Name:           req.Name,
		Position:       req.Position,
		OfficeLocation: req.OfficeLocation,
		EntryDate:      entry,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("CREATE_EMPLOYEE", "employee", employee.ID, c.ClientIP(),
		map[string]interface{}{"name": employee.Name, "position": employee.Position})

	c.JSON(http.StatusCreated, employee)
}

// GetEmployees lists every employee with their targets
// @Summary     List employees
// @Tags        employees
// @Produce     json
// @Success     200 {array} models.Employee
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /employees [get]
func (h *EmployeeHandler) GetEmployees(c *gin.Context) {
	employees, err := h.employeeService.GetEmployees()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, employees)
}

// ViewEmployees serves one filtered page of employees
// @Summary     Filtered employee list
// @Tags        employees
// @Produce     json
// @Param       search     query string false "Matches name, position or office"
// @Param       position   query string false "AO or FO"
// @Param       office     query string false "Office location"
// @Param       entry_year query int    false "Entry year"
// @Param       page       query int    false "Page (8 per page)"
// @Success     200 {object} ViewResponse[models.Employee]
// @Failure     400 {object} ErrorResponse "Invalid filter"
// @Router      /employees/view [get]
func (h *EmployeeHandler) ViewEmployees(c *gin.Context) {
	state, ok := bindView(c)
	if !ok {
		return
	}

	employees, err := h.employeeService.GetEmployees()
	if err != nil {
		respondWithError(c, err)
		return
	}
	respondWithView(c, employees, filter.Employees(state), state)
}

// GetEmployeeByID returns one employee with their targets
// @Summary     Get employee
// @Tags        employees
// @Produce     json
// @Param       id path string true "Employee ID"
// @Success     200 {object} models.Employee
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Employee not found"
// @Router      /employees/{id} [get]
func (h *EmployeeHandler) GetEmployeeByID(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	employee, err := h.employeeService.GetEmployeeByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, employee)
}

// UpdateEmployee updates an employee
// @Summary     Update employee
// @Tags        employees
// @Accept      json
// @Produce     json
// @Param       id      path string                true "Employee ID"
// @Param       request body UpdateEmployeeRequest true "Fields to change"
// @Success     200 {object} models.Employee
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Employee not found"
// @Router      /employees/{id} [put]
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	update := services.EmployeeUpdate{
		Name:           req.Name,
		Position:       req.Position,
		OfficeLocation: req.OfficeLocation,
	}
	if req.EntryDate != nil {
		entry, err := parseDate(*req.EntryDate)
		if err != nil {
			respondWithError(c, err)
			return
		}
		update.EntryDate = &entry
	}

	employee, err := h.employeeService.UpdateEmployee(id, update)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("UPDATE_EMPLOYEE", "employee", id, c.ClientIP(), nil)
	c.JSON(http.StatusOK, employee)
}

// DeleteEmployee soft-deletes an employee; their targets stay for reporting
// @Summary     Delete employee
// @Tags        employees
// @Produce     json
// @Param       id path string true "Employee ID"
// @Success     200 {object} map[string]string
// @Failure     404 {object} ErrorResponse "Employee not found"
// @Router      /employees/{id} [delete]
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.employeeService.DeleteEmployee(id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("DELETE_EMPLOYEE", "employee", id, c.ClientIP(), nil)
	c.JSON(http.StatusOK, gin.H{"message": "Employee deleted successfully"})
}
