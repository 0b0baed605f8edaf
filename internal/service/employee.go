package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/deppfellow/hrms/internal/errs"
	"github.com/deppfellow/hrms/internal/lib/job"
	"github.com/deppfellow/hrms/internal/model"
	"github.com/deppfellow/hrms/internal/mongoerr"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type EmployeeService struct {
	employees EmployeeStore
	notifier  WelcomeNotifier
	logger    *zerolog.Logger
	now       func() time.Time
}

// NewEmployeeService builds the service. notifier may be nil, in which case
// no welcome email is queued.
func NewEmployeeService(employees EmployeeStore, notifier WelcomeNotifier, logger *zerolog.Logger, now func() time.Time) *EmployeeService {
	return &EmployeeService{
		employees: employees,
		notifier:  notifier,
		logger:    logger,
		now:       now,
	}
}

func (s *EmployeeService) ListEmployees(ctx context.Context) ([]model.EmployeeResponse, error) {
	employees, err := s.employees.List(ctx)
	if err != nil {
		return nil, err
	}
	return model.NewEmployeeResponses(employees), nil
}

// CreateEmployee inserts a new employee. The unique indexes on emp_id and
// email decide conflicts, so two concurrent creates cannot both succeed.
func (s *EmployeeService) CreateEmployee(ctx context.Context, req *model.EmployeeRequest) (*model.MutationResponse, error) {
	employee := req.ToEmployee(s.now().Unix())

	id, err := s.employees.Insert(ctx, employee)
	if err != nil {
		return nil, employeeConflict(err, req)
	}

	s.queueWelcome(ctx, employee)

	return model.Created(id.Hex(), "Employee created successfully"), nil
}

// UpdateEmployee replaces the validated fields of the employee addressed by
// req.ID and refreshes updated_at.
func (s *EmployeeService) UpdateEmployee(ctx context.Context, req *model.UpdateEmployeeRequest) (*model.MutationResponse, error) {
	id, err := parseEmployeeID(req.ID)
	if err != nil {
		return nil, err
	}

	changes := req.ToEmployee(s.now().Unix())

	matched, err := s.employees.Update(ctx, id, changes)
	if err != nil {
		return nil, employeeConflict(err, &req.EmployeeRequest)
	}
	if !matched {
		return nil, errs.NewNotFoundError("Employee not found", true, nil)
	}

	return model.OK("Employee updated successfully"), nil
}

// DeleteEmployee permanently removes an employee. Attendance records that
// reference it are kept.
func (s *EmployeeService) DeleteEmployee(ctx context.Context, req *model.DeleteEmployeeRequest) (*model.MutationResponse, error) {
	id, err := parseEmployeeID(req.ID)
	if err != nil {
		return nil, err
	}

	deleted, err := s.employees.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if !deleted {
		return nil, errs.NewNotFoundError("Employee not found", true, nil)
	}

	return model.OK("Employee deleted successfully"), nil
}

// queueWelcome is best effort: a failure is logged and never reaches the client.
func (s *EmployeeService) queueWelcome(ctx context.Context, e *model.Employee) {
	if s.notifier == nil {
		return
	}

	err := s.notifier.EnqueueWelcomeEmail(ctx, job.WelcomeEmailPayload{
		To:         e.Email,
		Name:       e.Name,
		EmpID:      e.EmpID,
		Department: e.Department,
	})
	if err != nil {
		loggerFrom(ctx, s.logger).Warn().
			Err(err).
			Str("emp_id", e.EmpID).
			Msg("failed to queue welcome email")
	}
}

func parseEmployeeID(hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, errs.NewBadRequestError("Invalid employee ID format", true, nil, nil)
	}
	return id, nil
}

// employeeConflict names the clashing value when err is a duplicate key on
// one of the employee unique indexes. Other errors pass through.
func employeeConflict(err error, req *model.EmployeeRequest) error {
	var mongoErr *mongoerr.Error
	if !errors.As(err, &mongoErr) || mongoErr.Code != mongoerr.DuplicateKey {
		return err
	}

	switch mongoErr.Index {
	case model.EmpIDIndex:
		return errs.NewConflictError(fmt.Sprintf("Employee with ID '%s' already exists", req.EmpID), true, nil)
	case model.EmailIndex:
		return errs.NewConflictError(fmt.Sprintf("Employee with email '%s' already exists", req.Email), true, nil)
	default:
		return err
	}
}

// loggerFrom prefers the request-scoped logger carried by ctx.
func loggerFrom(ctx context.Context, fallback *zerolog.Logger) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return fallback
}
