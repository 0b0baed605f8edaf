package handler

import (
	"github.com/deppfellow/hrms/internal/model"
	"github.com/deppfellow/hrms/internal/server"
	"github.com/deppfellow/hrms/internal/service"
	"github.com/labstack/echo/v4"
)

type AttendanceHandler struct {
	Handler
	attendance *service.AttendanceService
}

func NewAttendanceHandler(s *server.Server, attendance *service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{
		Handler:    NewHandler(s),
		attendance: attendance,
	}
}

func (h *AttendanceHandler) MarkAttendance(c echo.Context, req *model.AttendanceRequest) (*model.MutationResponse, error) {
	return h.attendance.MarkAttendance(c.Request().Context(), req)
}

func (h *AttendanceHandler) EmployeeAttendance(c echo.Context, req *model.EmployeeAttendanceRequest) ([]model.AttendanceResponse, error) {
	return h.attendance.EmployeeAttendance(c.Request().Context(), req)
}

func (h *AttendanceHandler) ListAttendance(c echo.Context, req *model.ListAttendanceRequest) ([]model.AttendanceResponse, error) {
	return h.attendance.ListAttendance(c.Request().Context(), req)
}

func (h *AttendanceHandler) AttendanceOnDate(c echo.Context, req *model.AttendanceDateRequest) (*model.AttendanceResponse, error) {
	return h.attendance.AttendanceOnDate(c.Request().Context(), req)
}

func (h *AttendanceHandler) AttendanceSummary(c echo.Context, req *model.AttendanceSummaryRequest) (*model.AttendanceSummary, error) {
	return h.attendance.AttendanceSummary(c.Request().Context(), req)
}
