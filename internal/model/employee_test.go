package model

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func validEmployeeRequest() EmployeeRequest {
	return EmployeeRequest{
		EmpID:      "EMP001",
		Name:       "Ada Lovelace",
		Age:        36,
		Email:      "ada@example.com",
		Department: "Engineering",
	}
}

// failedFields returns the field names reported by a validator error.
func failedFields(t *testing.T, err error) []string {
	t.Helper()

	var validationErrors validator.ValidationErrors
	require.True(t, errors.As(err, &validationErrors), "expected validator errors, got %v", err)

	fields := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fields = append(fields, fe.Field())
	}
	return fields
}

func TestEmployeeRequest_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *EmployeeRequest)
		field  string
	}{
		{"missing emp_id", func(r *EmployeeRequest) { r.EmpID = "" }, "emp_id"},
		{"non alphanumeric emp_id", func(r *EmployeeRequest) { r.EmpID = "EMP-001" }, "emp_id"},
		{"missing name", func(r *EmployeeRequest) { r.Name = "" }, "name"},
		{"name too long", func(r *EmployeeRequest) { r.Name = strings.Repeat("a", 101) }, "name"},
		{"too young", func(r *EmployeeRequest) { r.Age = 17 }, "age"},
		{"too old", func(r *EmployeeRequest) { r.Age = 71 }, "age"},
		{"invalid email", func(r *EmployeeRequest) { r.Email = "not-an-email" }, "email"},
		{"missing department", func(r *EmployeeRequest) { r.Department = "" }, "department"},
		{"department too long", func(r *EmployeeRequest) { r.Department = strings.Repeat("d", 101) }, "department"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validEmployeeRequest()
			tt.mutate(&req)

			err := req.Validate()
			require.Error(t, err)
			assert.Equal(t, []string{tt.field}, failedFields(t, err))
		})
	}
}

func TestEmployeeRequest_ValidateBounds(t *testing.T) {
	for _, age := range []int{18, 70} {
		req := validEmployeeRequest()
		req.Age = age
		assert.NoError(t, req.Validate(), "age %d", age)
	}

	req := validEmployeeRequest()
	req.Name = strings.Repeat("n", 100)
	assert.NoError(t, req.Validate())
}

func TestUpdateEmployeeRequest_Validate(t *testing.T) {
	req := UpdateEmployeeRequest{EmployeeRequest: validEmployeeRequest()}
	err := req.Validate()
	require.Error(t, err)
	assert.Equal(t, []string{"employee_id"}, failedFields(t, err))

	req.ID = primitive.NewObjectID().Hex()
	assert.NoError(t, req.Validate())
}

func TestUpdateEmployeeRequest_BodyCannotSetID(t *testing.T) {
	req := UpdateEmployeeRequest{ID: "from-path"}
	require.NoError(t, json.Unmarshal([]byte(`{"id":"from-body","emp_id":"E1"}`), &req))

	assert.Equal(t, "from-path", req.ID)
	assert.Equal(t, "E1", req.EmpID)
}

func TestEmployeeRequest_ToEmployee(t *testing.T) {
	req := validEmployeeRequest()
	emp := req.ToEmployee(1700000000)

	assert.True(t, emp.ID.IsZero())
	assert.Equal(t, req.EmpID, emp.EmpID)
	assert.Equal(t, req.Email, emp.Email)
	assert.Equal(t, int64(1700000000), emp.CreatedAt)
	assert.Equal(t, int64(1700000000), emp.UpdatedAt)
}

func TestNewEmployeeResponse(t *testing.T) {
	id := primitive.NewObjectID()
	emp := Employee{
		ID:         id,
		EmpID:      "EMP001",
		Name:       "Ada Lovelace",
		Age:        36,
		Email:      "ada@example.com",
		Department: "Engineering",
		CreatedAt:  10,
		UpdatedAt:  20,
	}

	resp := NewEmployeeResponse(emp)
	assert.Equal(t, EmployeeResponse{
		ID:         id.Hex(),
		EmpID:      "EMP001",
		Name:       "Ada Lovelace",
		Age:        36,
		Email:      "ada@example.com",
		Department: "Engineering",
		CreatedAt:  10,
		UpdatedAt:  20,
	}, resp)

	body, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"`+id.Hex()+`","emp_id":"EMP001","name":"Ada Lovelace","age":36,
		"email":"ada@example.com","department":"Engineering","created_at":10,"updated_at":20}`, string(body))
}

func TestNewEmployeeResponses_PreservesOrder(t *testing.T) {
	first := Employee{ID: primitive.NewObjectID(), EmpID: "B"}
	second := Employee{ID: primitive.NewObjectID(), EmpID: "A"}

	out := NewEmployeeResponses([]Employee{first, second})
	require.Len(t, out, 2)
	assert.Equal(t, "B", out[0].EmpID)
	assert.Equal(t, "A", out[1].EmpID)
}

func TestNewEmployeeResponses_EmptyIsArray(t *testing.T) {
	body, err := json.Marshal(NewEmployeeResponses(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(body))
}
