package handler

import (
	"github.com/deppfellow/hrms/internal/model"
	"github.com/deppfellow/hrms/internal/server"
	"github.com/deppfellow/hrms/internal/service"
	"github.com/labstack/echo/v4"
)

type EmployeeHandler struct {
	Handler
	employees *service.EmployeeService
}

func NewEmployeeHandler(s *server.Server, employees *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{
		Handler:   NewHandler(s),
		employees: employees,
	}
}

func (h *EmployeeHandler) ListEmployees(c echo.Context, _ *model.ListEmployeesRequest) ([]model.EmployeeResponse, error) {
	return h.employees.ListEmployees(c.Request().Context())
}

func (h *EmployeeHandler) CreateEmployee(c echo.Context, req *model.EmployeeRequest) (*model.MutationResponse, error) {
	return h.employees.CreateEmployee(c.Request().Context(), req)
}

func (h *EmployeeHandler) UpdateEmployee(c echo.Context, req *model.UpdateEmployeeRequest) (*model.MutationResponse, error) {
	return h.employees.UpdateEmployee(c.Request().Context(), req)
}

func (h *EmployeeHandler) DeleteEmployee(c echo.Context, req *model.DeleteEmployeeRequest) (*model.MutationResponse, error) {
	return h.employees.DeleteEmployee(c.Request().Context(), req)
}
