package handler

import (
	"net/http"
	"strconv"

	"clinic-admin/internal/delivery/dto"
	"clinic-admin/internal/usecase"
	"clinic-admin/pkg/response"
	"clinic-admin/pkg/validator"
)

type EmployeeHandler struct {
	employeeUsecase usecase.EmployeeUsecase
	reportUsecase   usecase.ReportUsecase
	validator       *validator.CustomValidator
}

func NewEmployeeHandler(employeeUsecase usecase.EmployeeUsecase, reportUsecase usecase.ReportUsecase, validator *validator.CustomValidator) *EmployeeHandler {
	return &EmployeeHandler{
		employeeUsecase: employeeUsecase,
		reportUsecase:   reportUsecase,
		validator:       validator,
	}
}

// CreateEmployee handles employee creation
// @Summary Create an employee
// @Tags Employees
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.EmployeeRequest true "Employee"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /employees [post]
func (h *EmployeeHandler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req dto.EmployeeRequest
	if !decodeJSON(w, r, h.validator, &req) {
		return
	}

	employee, err := h.employeeUsecase.CreateEmployee(r.Context(), &req)
	if err != nil {
		respondError(w, err, "Failed to create employee")
		return
	}

	response.Success(w, http.StatusCreated, "Employee created successfully", employee)
}

func (h *EmployeeHandler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "employee")
	if !ok {
		return
	}

	employee, err := h.employeeUsecase.GetEmployee(r.Context(), id)
	if err != nil {
		respondError(w, err, "Failed to get employee")
		return
	}

	response.Success(w, http.StatusOK, "Employee retrieved successfully", employee)
}

func (h *EmployeeHandler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "employee")
	if !ok {
		return
	}

	var req dto.EmployeeRequest
	if !decodeJSON(w, r, h.validator, &req) {
		return
	}

	employee, err := h.employeeUsecase.UpdateEmployee(r.Context(), id, &req)
	if err != nil {
		respondError(w, err, "Failed to update employee")
		return
	}

	response.Success(w, http.StatusOK, "Employee updated successfully", employee)
}

func (h *EmployeeHandler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "employee")
	if !ok {
		return
	}

	if err := h.employeeUsecase.DeleteEmployee(r.Context(), id); err != nil {
		respondError(w, err, "Failed to delete employee")
		return
	}

	response.Success(w, http.StatusOK, "Employee deleted successfully", nil)
}

// GetHistory returns one page (5 consultations) of an employee's history.
// @Summary Employee consultation history
// @Tags Employees
// @Security BearerAuth
// @Produce json
// @Param id path string true "Employee ID"
// @Param page query int false "Page number" default(1)
// @Router /employees/{id}/history [get]
func (h *EmployeeHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "employee")
	if !ok {
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}

	history, err := h.reportUsecase.GetEmployeeHistory(r.Context(), id, page)
	if err != nil {
		respondError(w, err, "Failed to get employee history")
		return
	}

	response.Success(w, http.StatusOK, "Employee history retrieved successfully", history)
}

func (h *EmployeeHandler) ExportHistory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "employee")
	if !ok {
		return
	}

	history, err := h.reportUsecase.ExportEmployeeHistory(r.Context(), id)
	if err != nil {
		respondError(w, err, "Failed to export employee history")
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="historique-`+history.Employee.Matricule+`.json"`)
	response.JSON(w, http.StatusOK, history)
}
