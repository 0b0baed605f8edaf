package repository

import (
	"github.com/deppfellow/hrms/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Employees  *EmployeeRepository
	Attendance *AttendanceRepository
}

// NewRepositories builds every repository on the server's database handle.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Employees:  NewEmployeeRepository(s.DB.DB),
		Attendance: NewAttendanceRepository(s.DB.DB),
	}
}
