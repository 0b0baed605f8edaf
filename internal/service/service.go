// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// It receives validated data from the handler, performs
// business operations, and calls repository methods to interact
// with the data. Domain failures leave this package as *errs.HTTPError.
package service

import (
	"context"

	"github.com/deppfellow/hrms/internal/lib/job"
	"github.com/deppfellow/hrms/internal/model"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EmployeeStore persists employees. *repository.EmployeeRepository satisfies it.
type EmployeeStore interface {
	List(ctx context.Context) ([]model.Employee, error)
	Insert(ctx context.Context, e *model.Employee) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, e *model.Employee) (bool, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
	ExistsByEmpID(ctx context.Context, empID string) (bool, error)
}

// AttendanceStore persists attendance. *repository.AttendanceRepository satisfies it.
type AttendanceStore interface {
	Upsert(ctx context.Context, a *model.Attendance) (primitive.ObjectID, bool, error)
	Find(ctx context.Context, f model.AttendanceFilter) ([]model.Attendance, error)
	FindByDate(ctx context.Context, empID, date string) (*model.Attendance, error)
	CountByStatus(ctx context.Context, empID string) (map[string]int64, error)
}

// WelcomeNotifier queues the welcome email. *job.JobService satisfies it.
type WelcomeNotifier interface {
	EnqueueWelcomeEmail(ctx context.Context, p job.WelcomeEmailPayload) error
}
