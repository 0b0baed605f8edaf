package service

import (
	"context"
	"fmt"
	"time"

	"github.com/deppfellow/hrms/internal/errs"
	"github.com/deppfellow/hrms/internal/model"
)

type AttendanceService struct {
	employees  EmployeeStore
	attendance AttendanceStore
	now        func() time.Time
}

func NewAttendanceService(employees EmployeeStore, attendance AttendanceStore, now func() time.Time) *AttendanceService {
	return &AttendanceService{
		employees:  employees,
		attendance: attendance,
		now:        now,
	}
}

// MarkAttendance sets the status for (emp_id, date), creating the record
// when it does not exist yet. A repeated mark only changes the status.
func (s *AttendanceService) MarkAttendance(ctx context.Context, req *model.AttendanceRequest) (*model.MutationResponse, error) {
	if err := s.requireEmployee(ctx, req.EmpID); err != nil {
		return nil, err
	}

	id, created, err := s.attendance.Upsert(ctx, req.ToAttendance(s.now().Unix()))
	if err != nil {
		return nil, err
	}

	if created {
		return model.Created(id.Hex(), "Attendance marked successfully"), nil
	}
	return model.OK("Attendance updated successfully"), nil
}

// EmployeeAttendance lists one employee's records, newest date first.
func (s *AttendanceService) EmployeeAttendance(ctx context.Context, req *model.EmployeeAttendanceRequest) ([]model.AttendanceResponse, error) {
	if err := s.requireEmployee(ctx, req.EmpID); err != nil {
		return nil, err
	}
	return s.find(ctx, req.Filter())
}

// ListAttendance lists records across employees. Naming an emp_id that does
// not exist is a 404, same as the per-employee route.
func (s *AttendanceService) ListAttendance(ctx context.Context, req *model.ListAttendanceRequest) ([]model.AttendanceResponse, error) {
	if req.EmpID != "" {
		if err := s.requireEmployee(ctx, req.EmpID); err != nil {
			return nil, err
		}
	}
	return s.find(ctx, req.Filter())
}

func (s *AttendanceService) AttendanceOnDate(ctx context.Context, req *model.AttendanceDateRequest) (*model.AttendanceResponse, error) {
	if err := s.requireEmployee(ctx, req.EmpID); err != nil {
		return nil, err
	}

	record, err := s.attendance.FindByDate(ctx, req.EmpID, req.Date)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, errs.NewNotFoundError(fmt.Sprintf("No attendance record found for %s", req.Date), true, nil)
	}

	response := model.NewAttendanceResponse(*record)
	return &response, nil
}

func (s *AttendanceService) AttendanceSummary(ctx context.Context, req *model.AttendanceSummaryRequest) (*model.AttendanceSummary, error) {
	if err := s.requireEmployee(ctx, req.EmpID); err != nil {
		return nil, err
	}

	counts, err := s.attendance.CountByStatus(ctx, req.EmpID)
	if err != nil {
		return nil, err
	}

	summary := model.NewAttendanceSummary(counts)
	return &summary, nil
}

func (s *AttendanceService) find(ctx context.Context, f model.AttendanceFilter) ([]model.AttendanceResponse, error) {
	records, err := s.attendance.Find(ctx, f)
	if err != nil {
		return nil, err
	}
	return model.NewAttendanceResponses(records), nil
}

func (s *AttendanceService) requireEmployee(ctx context.Context, empID string) error {
	exists, err := s.employees.ExistsByEmpID(ctx, empID)
	if err != nil {
		return err
	}
	if !exists {
		return errs.NewNotFoundError(fmt.Sprintf("Employee with ID '%s' not found", empID), true, nil)
	}
	return nil
}
