package database

import (
	"context"
	"testing"

	"github.com/deppfellow/hrms/internal/model"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestRequiredIndexes(t *testing.T) {
	defs := requiredIndexes()
	require.Len(t, defs, 3)

	byName := map[string]indexDef{}
	for _, def := range defs {
		require.NotNil(t, def.model.Options.Name)
		require.NotNil(t, def.model.Options.Unique)
		assert.True(t, *def.model.Options.Unique)
		byName[*def.model.Options.Name] = def
	}

	assert.Equal(t, model.EmployeesCollection, byName[model.EmpIDIndex].collection)
	assert.Equal(t, model.EmployeesCollection, byName[model.EmailIndex].collection)

	attendance := byName[model.AttendanceDateIndex]
	assert.Equal(t, model.AttendanceCollection, attendance.collection)
	assert.Equal(t, bson.D{{Key: "emp_id", Value: 1}, {Key: "date", Value: 1}}, attendance.model.Keys)
}

func TestEnsureIndexes(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	logger := zerolog.Nop()

	mt.Run("creates every index", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(),
			mtest.CreateSuccessResponse(),
			mtest.CreateSuccessResponse(),
		)

		require.NoError(mt, EnsureIndexes(context.Background(), &logger, mt.DB))
	})

	mt.Run("surfaces server errors", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    86,
			Name:    "IndexKeySpecsConflict",
			Message: "existing index has different options",
		}))

		err := EnsureIndexes(context.Background(), &logger, mt.DB)
		require.Error(mt, err)
		assert.Contains(mt, err.Error(), "creating index on employees")
	})
}
