package model

import (
	"github.com/deppfellow/hrms/internal/validation"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Employee is the document stored in the employees collection.
type Employee struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	EmpID      string             `bson:"emp_id"`
	Name       string             `bson:"name"`
	Age        int                `bson:"age"`
	Email      string             `bson:"email"`
	Department string             `bson:"department"`
	CreatedAt  int64              `bson:"created_at"`
	UpdatedAt  int64              `bson:"updated_at"`
}

// EmployeeRequest is the payload accepted by create and update.
// Timestamps are owned by the server and never read from the client.
type EmployeeRequest struct {
	EmpID      string `json:"emp_id" validate:"required,alphanum"`
	Name       string `json:"name" validate:"required,min=1,max=100"`
	Age        int    `json:"age" validate:"gte=18,lte=70"`
	Email      string `json:"email" validate:"required,email"`
	Department string `json:"department" validate:"required,min=1,max=100"`
}

func (r *EmployeeRequest) Validate() error {
	return validation.Struct(r)
}

// ToEmployee builds a new document stamped with now as both timestamps.
func (r *EmployeeRequest) ToEmployee(now int64) *Employee {
	return &Employee{
		EmpID:      r.EmpID,
		Name:       r.Name,
		Age:        r.Age,
		Email:      r.Email,
		Department: r.Department,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// UpdateEmployeeRequest addresses an employee by its ObjectID hex.
type UpdateEmployeeRequest struct {
	ID string `param:"employee_id" json:"-" validate:"required"`
	EmployeeRequest
}

func (r *UpdateEmployeeRequest) Validate() error {
	return validation.Struct(r)
}

// DeleteEmployeeRequest addresses an employee by its ObjectID hex.
type DeleteEmployeeRequest struct {
	ID string `param:"employee_id" validate:"required"`
}

func (r *DeleteEmployeeRequest) Validate() error {
	return validation.Struct(r)
}

// ListEmployeesRequest takes no input.
type ListEmployeesRequest struct{}

func (r *ListEmployeesRequest) Validate() error {
	return nil
}

// EmployeeResponse is the external representation of an Employee.
type EmployeeResponse struct {
	ID         string `json:"id"`
	EmpID      string `json:"emp_id"`
	Name       string `json:"name"`
	Age        int    `json:"age"`
	Email      string `json:"email"`
	Department string `json:"department"`
	CreatedAt  int64  `json:"created_at"`
	UpdatedAt  int64  `json:"updated_at"`
}

// NewEmployeeResponse projects a stored employee, rendering its ObjectID as hex.
func NewEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         e.ID.Hex(),
		EmpID:      e.EmpID,
		Name:       e.Name,
		Age:        e.Age,
		Email:      e.Email,
		Department: e.Department,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

// NewEmployeeResponses projects employees in the order given. The result is
// never nil so an empty collection serializes as [].
func NewEmployeeResponses(employees []Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, NewEmployeeResponse(e))
	}
	return out
}
