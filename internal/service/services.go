package service

import (
	"time"

	"github.com/deppfellow/hrms/internal/lib/job"
	"github.com/deppfellow/hrms/internal/repository"
	"github.com/deppfellow/hrms/internal/server"
)

type Services struct {
	Employees  *EmployeeService
	Attendance *AttendanceService
	Job        *job.JobService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	// A nil *JobService must not become a non-nil WelcomeNotifier.
	var notifier WelcomeNotifier
	if s.Job != nil {
		notifier = s.Job
	}

	return &Services{
		Employees:  NewEmployeeService(repos.Employees, notifier, s.Logger, time.Now),
		Attendance: NewAttendanceService(repos.Employees, repos.Attendance, time.Now),
		Job:        s.Job,
	}, nil
}
