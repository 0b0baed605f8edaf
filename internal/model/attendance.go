package model

import (
	"github.com/deppfellow/hrms/internal/validation"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
)

// Attendance is the document stored in the attendance collection. At most
// one exists per (EmpID, Date).
type Attendance struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	EmpID     string             `bson:"emp_id"`
	Date      string             `bson:"date"`
	Status    string             `bson:"status"`
	CreatedAt int64              `bson:"created_at"`
}

// AttendanceRequest is the payload of POST /attendance/mark.
type AttendanceRequest struct {
	EmpID  string `json:"emp_id" validate:"required"`
	Date   string `json:"date" validate:"required,datetime=2006-01-02"`
	Status string `json:"status" validate:"required,oneof=Present Absent"`
}

func (r *AttendanceRequest) Validate() error {
	return validation.Struct(r)
}

// ToAttendance builds a new document created at now.
func (r *AttendanceRequest) ToAttendance(now int64) *Attendance {
	return &Attendance{
		EmpID:     r.EmpID,
		Date:      r.Date,
		Status:    r.Status,
		CreatedAt: now,
	}
}

// AttendanceFilter selects attendance records. Empty fields do not filter;
// StartDate and EndDate are inclusive.
type AttendanceFilter struct {
	EmpID     string
	StartDate string
	EndDate   string
}

// ListAttendanceRequest is GET /attendance.
type ListAttendanceRequest struct {
	EmpID     string `query:"emp_id"`
	StartDate string `query:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `query:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

func (r *ListAttendanceRequest) Validate() error {
	return validation.Struct(r)
}

func (r *ListAttendanceRequest) Filter() AttendanceFilter {
	return AttendanceFilter{EmpID: r.EmpID, StartDate: r.StartDate, EndDate: r.EndDate}
}

// EmployeeAttendanceRequest is GET /attendance/:emp_id.
type EmployeeAttendanceRequest struct {
	EmpID     string `param:"emp_id" validate:"required"`
	StartDate string `query:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `query:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

func (r *EmployeeAttendanceRequest) Validate() error {
	return validation.Struct(r)
}

func (r *EmployeeAttendanceRequest) Filter() AttendanceFilter {
	return AttendanceFilter{EmpID: r.EmpID, StartDate: r.StartDate, EndDate: r.EndDate}
}

// AttendanceDateRequest is GET /attendance/:emp_id/:date.
type AttendanceDateRequest struct {
	EmpID string `param:"emp_id" validate:"required"`
	Date  string `param:"date" validate:"required,datetime=2006-01-02"`
}

func (r *AttendanceDateRequest) Validate() error {
	return validation.Struct(r)
}

// AttendanceSummaryRequest is GET /attendance/:emp_id/summary.
type AttendanceSummaryRequest struct {
	EmpID string `param:"emp_id" validate:"required"`
}

func (r *AttendanceSummaryRequest) Validate() error {
	return validation.Struct(r)
}

// AttendanceSummary counts an employee's records per status.
type AttendanceSummary struct {
	Present int64 `json:"Present"`
	Absent  int64 `json:"Absent"`
	Total   int64 `json:"total"`
}

// NewAttendanceSummary builds a summary from per-status counts. Statuses
// without records count as zero.
func NewAttendanceSummary(counts map[string]int64) AttendanceSummary {
	present := counts[StatusPresent]
	absent := counts[StatusAbsent]
	return AttendanceSummary{
		Present: present,
		Absent:  absent,
		Total:   present + absent,
	}
}

// AttendanceResponse is the external representation of an Attendance.
type AttendanceResponse struct {
	ID        string `json:"id"`
	EmpID     string `json:"emp_id"`
	Date      string `json:"date"`
	Status    string `json:"status"`
	CreatedAt int64  `json:"created_at"`
}

// NewAttendanceResponse projects a stored record, rendering its ObjectID as hex.
func NewAttendanceResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:        a.ID.Hex(),
		EmpID:     a.EmpID,
		Date:      a.Date,
		Status:    a.Status,
		CreatedAt: a.CreatedAt,
	}
}

// NewAttendanceResponses projects records in the order given, never nil.
func NewAttendanceResponses(records []Attendance) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(records))
	for _, a := range records {
		out = append(out, NewAttendanceResponse(a))
	}
	return out
}
