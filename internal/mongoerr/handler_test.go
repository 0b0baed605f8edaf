package mongoerr

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/hrms/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

func duplicateKeyError(collection, index, key, value string) error {
	return mongo.WriteException{
		WriteErrors: mongo.WriteErrors{{
			Index: 0,
			Code:  DuplicateKeyCode,
			Message: fmt.Sprintf(`E11000 duplicate key error collection: hrms_db.%s index: %s dup key: { %s: "%s" }`,
				collection, index, key, value),
		}},
	}
}

func TestConvert_DuplicateKey(t *testing.T) {
	err := duplicateKeyError("employees", "email_1", "email", "ada@example.com")

	converted := Convert(err)
	require.NotNil(t, converted)
	assert.Equal(t, DuplicateKey, converted.Code)
	assert.Equal(t, "employees", converted.Collection)
	assert.Equal(t, "email_1", converted.Index)
	assert.Equal(t, "email", converted.Field)
	assert.True(t, errors.As(converted, new(mongo.WriteException)))
}

func TestConvert_CompoundIndex(t *testing.T) {
	converted := Convert(duplicateKeyError("attendance", "emp_id_1_date_1", "emp_id", "E1"))
	require.NotNil(t, converted)
	assert.Equal(t, "emp_id_1_date_1", converted.Index)
	assert.Equal(t, "emp_id", converted.Field)
}

func TestConvert_Classification(t *testing.T) {
	assert.Nil(t, Convert(nil))
	assert.Equal(t, NoDocuments, Convert(fmt.Errorf("find: %w", mongo.ErrNoDocuments)).Code)
	assert.Equal(t, Timeout, Convert(context.DeadlineExceeded).Code)
	assert.Equal(t, Other, Convert(errors.New("boom")).Code)

	already := &Error{Code: DuplicateKey, Field: "emp_id"}
	assert.Same(t, already, Convert(fmt.Errorf("insert: %w", already)))
}

func TestErrCode(t *testing.T) {
	assert.Equal(t, DuplicateKey, ErrCode(duplicateKeyError("employees", "emp_id_1", "emp_id", "E1")))
	assert.Equal(t, NoDocuments, ErrCode(mongo.ErrNoDocuments))
	assert.Equal(t, Other, ErrCode(nil))
}

func TestFieldFromIndex(t *testing.T) {
	assert.Equal(t, "emp_id", FieldFromIndex("emp_id_1"))
	assert.Equal(t, "email", FieldFromIndex("email_1"))
	assert.Equal(t, "emp_id", FieldFromIndex("emp_id_1_date_1"))
	assert.Equal(t, "created_at", FieldFromIndex("created_at_-1"))
}

func TestConflictMessage(t *testing.T) {
	tests := []struct {
		err  Error
		want string
	}{
		{Error{Collection: "employees", Index: "emp_id_1"}, "An employee with this Emp Id already exists"},
		{Error{Collection: "departments", Index: "name_1"}, "A department with this Name already exists"},
		{Error{Collection: "attendance", Index: "emp_id_1_date_1"}, "An attendance record with this Emp Id and Date already exists"},
		{Error{}, "A record with this identifier already exists"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, conflictMessage(&tt.err))
		})
	}
}

func TestIndexFields(t *testing.T) {
	assert.Equal(t, []string{"emp_id", "date"}, indexFields("emp_id_1_date_1"))
	assert.Equal(t, []string{"created_at"}, indexFields("created_at_-1"))
	assert.Empty(t, indexFields(""))
}

func TestHandleError(t *testing.T) {
	t.Run("http error passes through", func(t *testing.T) {
		original := errs.NewNotFoundError("Employee not found", true, nil)
		assert.Same(t, original, HandleError(original))
	})

	t.Run("duplicate key becomes conflict", func(t *testing.T) {
		err := HandleError(duplicateKeyError("employees", "email_1", "email", "ada@example.com"))

		var httpErr *errs.HTTPError
		require.True(t, errors.As(err, &httpErr))
		assert.Equal(t, http.StatusConflict, httpErr.Status)
		assert.Equal(t, "EMPLOYEE_ALREADY_EXISTS", httpErr.Code)
		assert.Equal(t, "An employee with this Email already exists", httpErr.Message)
	})

	t.Run("compound index names every field", func(t *testing.T) {
		err := HandleError(duplicateKeyError("attendance", "emp_id_1_date_1", "emp_id", "E1"))

		var httpErr *errs.HTTPError
		require.True(t, errors.As(err, &httpErr))
		assert.Equal(t, "ATTENDANCE_ALREADY_EXISTS", httpErr.Code)
		assert.Equal(t, "An attendance record with this Emp Id and Date already exists", httpErr.Message)
	})

	t.Run("no documents becomes not found", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, errs.StatusOf(HandleError(mongo.ErrNoDocuments)))
	})

	t.Run("unknown error is opaque", func(t *testing.T) {
		err := HandleError(errors.New("connection reset by peer: secret host 10.0.0.7"))

		var httpErr *errs.HTTPError
		require.True(t, errors.As(err, &httpErr))
		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
		assert.Equal(t, "Internal Server Error", httpErr.Message)
	})
}
