package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/deppfellow/hrms/internal/errs"
	"github.com/deppfellow/hrms/internal/model"
	"github.com/deppfellow/hrms/internal/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var fixedNow = time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)

func clock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newEmployeeService(store *testutil.EmployeeStore, notifier WelcomeNotifier) *EmployeeService {
	logger := zerolog.Nop()
	return NewEmployeeService(store, notifier, &logger, clock(fixedNow))
}

func employeeRequest(empID, email string) *model.EmployeeRequest {
	return &model.EmployeeRequest{
		EmpID:      empID,
		Name:       "Ada Lovelace",
		Age:        36,
		Email:      email,
		Department: "Engineering",
	}
}

func requireHTTPError(t *testing.T, err error, status int, message string) {
	t.Helper()
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %v", err)
	assert.Equal(t, status, httpErr.Status)
	assert.Equal(t, message, httpErr.Message)
}

func TestCreateEmployee(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewEmployeeStore()
	notifier := &testutil.Notifier{}
	svc := newEmployeeService(store, notifier)

	res, err := svc.CreateEmployee(ctx, employeeRequest("E1", "ada@example.com"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, res.StatusCode)
	assert.Equal(t, "Employee created successfully", res.Message)

	id, err := primitive.ObjectIDFromHex(res.ID)
	require.NoError(t, err)

	stored, ok := store.Get(id)
	require.True(t, ok)
	assert.Equal(t, fixedNow.Unix(), stored.CreatedAt)
	assert.Equal(t, fixedNow.Unix(), stored.UpdatedAt)

	require.Len(t, notifier.Queued, 1)
	assert.Equal(t, "ada@example.com", notifier.Queued[0].To)
	assert.Equal(t, "E1", notifier.Queued[0].EmpID)
}

func TestCreateEmployee_Conflicts(t *testing.T) {
	ctx := context.Background()
	svc := newEmployeeService(testutil.NewEmployeeStore(), nil)

	_, err := svc.CreateEmployee(ctx, employeeRequest("E1", "ada@example.com"))
	require.NoError(t, err)

	_, err = svc.CreateEmployee(ctx, employeeRequest("E1", "other@example.com"))
	requireHTTPError(t, err, http.StatusConflict, "Employee with ID 'E1' already exists")

	_, err = svc.CreateEmployee(ctx, employeeRequest("E2", "ada@example.com"))
	requireHTTPError(t, err, http.StatusConflict, "Employee with email 'ada@example.com' already exists")

	employees, err := svc.ListEmployees(ctx)
	require.NoError(t, err)
	assert.Len(t, employees, 1)
}

func TestCreateEmployee_WelcomeFailureIsIgnored(t *testing.T) {
	notifier := &testutil.Notifier{Err: errors.New("redis down")}
	svc := newEmployeeService(testutil.NewEmployeeStore(), notifier)

	res, err := svc.CreateEmployee(context.Background(), employeeRequest("E1", "ada@example.com"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, res.StatusCode)
}

func TestListEmployees(t *testing.T) {
	ctx := context.Background()
	svc := newEmployeeService(testutil.NewEmployeeStore(), nil)

	employees, err := svc.ListEmployees(ctx)
	require.NoError(t, err)
	assert.NotNil(t, employees)
	assert.Empty(t, employees)

	for _, id := range []string{"E1", "E2", "E3"} {
		_, err := svc.CreateEmployee(ctx, employeeRequest(id, id+"@example.com"))
		require.NoError(t, err)
	}

	employees, err = svc.ListEmployees(ctx)
	require.NoError(t, err)
	require.Len(t, employees, 3)
	assert.Equal(t, "E1", employees[0].EmpID)
	assert.Equal(t, "E3", employees[2].EmpID)
	assert.Len(t, employees[0].ID, 24)
}

func TestUpdateEmployee(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewEmployeeStore()
	logger := zerolog.Nop()
	created, err := NewEmployeeService(store, nil, &logger, clock(fixedNow)).
		CreateEmployee(ctx, employeeRequest("E1", "ada@example.com"))
	require.NoError(t, err)

	later := fixedNow.Add(time.Hour)
	svc := NewEmployeeService(store, nil, &logger, clock(later))

	t.Run("updates fields and updated_at", func(t *testing.T) {
		req := &model.UpdateEmployeeRequest{ID: created.ID, EmployeeRequest: *employeeRequest("E1", "ada@corp.example.com")}
		req.Department = "Research"

		res, err := svc.UpdateEmployee(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Equal(t, "Employee updated successfully", res.Message)

		id, _ := primitive.ObjectIDFromHex(created.ID)
		stored, _ := store.Get(id)
		assert.Equal(t, "Research", stored.Department)
		assert.Equal(t, "ada@corp.example.com", stored.Email)
		assert.Equal(t, fixedNow.Unix(), stored.CreatedAt)
		assert.Equal(t, later.Unix(), stored.UpdatedAt)
	})

	t.Run("malformed id", func(t *testing.T) {
		req := &model.UpdateEmployeeRequest{ID: "not-an-id", EmployeeRequest: *employeeRequest("E1", "ada@example.com")}
		_, err := svc.UpdateEmployee(ctx, req)
		requireHTTPError(t, err, http.StatusBadRequest, "Invalid employee ID format")
	})

	t.Run("unknown id", func(t *testing.T) {
		req := &model.UpdateEmployeeRequest{ID: primitive.NewObjectID().Hex(), EmployeeRequest: *employeeRequest("E9", "e9@example.com")}
		_, err := svc.UpdateEmployee(ctx, req)
		requireHTTPError(t, err, http.StatusNotFound, "Employee not found")
	})

	t.Run("keeping own emp_id is not a conflict", func(t *testing.T) {
		req := &model.UpdateEmployeeRequest{ID: created.ID, EmployeeRequest: *employeeRequest("E1", "ada@corp.example.com")}
		_, err := svc.UpdateEmployee(ctx, req)
		require.NoError(t, err)
	})

	t.Run("taking another employee's email", func(t *testing.T) {
		_, err := svc.CreateEmployee(ctx, employeeRequest("E2", "grace@example.com"))
		require.NoError(t, err)

		req := &model.UpdateEmployeeRequest{ID: created.ID, EmployeeRequest: *employeeRequest("E1", "grace@example.com")}
		_, err = svc.UpdateEmployee(ctx, req)
		requireHTTPError(t, err, http.StatusConflict, "Employee with email 'grace@example.com' already exists")
	})
}

func TestDeleteEmployee(t *testing.T) {
	ctx := context.Background()
	svc := newEmployeeService(testutil.NewEmployeeStore(), nil)

	created, err := svc.CreateEmployee(ctx, employeeRequest("E1", "ada@example.com"))
	require.NoError(t, err)

	res, err := svc.DeleteEmployee(ctx, &model.DeleteEmployeeRequest{ID: created.ID})
	require.NoError(t, err)
	assert.Equal(t, "Employee deleted successfully", res.Message)

	_, err = svc.DeleteEmployee(ctx, &model.DeleteEmployeeRequest{ID: created.ID})
	requireHTTPError(t, err, http.StatusNotFound, "Employee not found")

	_, err = svc.DeleteEmployee(ctx, &model.DeleteEmployeeRequest{ID: "xyz"})
	requireHTTPError(t, err, http.StatusBadRequest, "Invalid employee ID format")
}

func TestStoreErrorsPassThrough(t *testing.T) {
	store := testutil.NewEmployeeStore()
	store.Err = errors.New("connection refused")
	svc := newEmployeeService(store, nil)

	_, err := svc.ListEmployees(context.Background())
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, errs.StatusOf(err))
}
