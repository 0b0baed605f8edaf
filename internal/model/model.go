// Package model holds the stored document shapes, the request payloads
// accepted by the API and the projections returned to clients.
package model

import "net/http"

const (
	// EmployeesCollection stores Employee documents.
	EmployeesCollection = "employees"

	// AttendanceCollection stores Attendance documents.
	AttendanceCollection = "attendance"

	// Unique index names. Duplicate key errors name the violated index, so
	// these are also used to tell which field collided.
	EmpIDIndex          = "emp_id_1"
	EmailIndex          = "email_1"
	AttendanceDateIndex = "emp_id_1_date_1"

	// DateLayout is the YYYY-MM-DD form attendance dates are stored in.
	DateLayout = "2006-01-02"
)

// MutationResponse is the envelope returned by write operations.
type MutationResponse struct {
	StatusCode int    `json:"status_code"`
	ID         string `json:"id,omitempty"`
	Message    string `json:"message"`
}

// HTTPStatus lets the handler pipeline use StatusCode as the response status.
func (r *MutationResponse) HTTPStatus() int {
	return r.StatusCode
}

// Created builds a 201 envelope.
func Created(id, message string) *MutationResponse {
	return &MutationResponse{StatusCode: http.StatusCreated, ID: id, Message: message}
}

// OK builds a 200 envelope.
func OK(message string) *MutationResponse {
	return &MutationResponse{StatusCode: http.StatusOK, Message: message}
}
