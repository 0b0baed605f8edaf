package database

import (
	"context"
	"fmt"

	"github.com/deppfellow/hrms/internal/model"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// indexDef is a named index on one collection.
type indexDef struct {
	collection string
	model      mongo.IndexModel
}

// requiredIndexes lists the unique indexes that back the uniqueness rules:
// one employee per emp_id, one employee per email and one attendance record
// per (emp_id, date).
func requiredIndexes() []indexDef {
	unique := func(name string) *options.IndexOptions {
		return options.Index().SetName(name).SetUnique(true)
	}

	return []indexDef{
		{
			collection: model.EmployeesCollection,
			model: mongo.IndexModel{
				Keys:    bson.D{{Key: "emp_id", Value: 1}},
				Options: unique(model.EmpIDIndex),
			},
		},
		{
			collection: model.EmployeesCollection,
			model: mongo.IndexModel{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: unique(model.EmailIndex),
			},
		},
		{
			collection: model.AttendanceCollection,
			model: mongo.IndexModel{
				Keys:    bson.D{{Key: "emp_id", Value: 1}, {Key: "date", Value: 1}},
				Options: unique(model.AttendanceDateIndex),
			},
		},
	}
}

// EnsureIndexes creates the unique indexes the service relies on.
//
// Creating an index that already exists with the same definition is a no-op
// on the server, so this runs on every startup.
func EnsureIndexes(ctx context.Context, logger *zerolog.Logger, db *mongo.Database) error {
	for _, def := range requiredIndexes() {
		name, err := db.Collection(def.collection).Indexes().CreateOne(ctx, def.model)
		if err != nil {
			return fmt.Errorf("creating index on %s: %w", def.collection, err)
		}

		logger.Debug().
			Str("collection", def.collection).
			Str("index", name).
			Msg("index ensured")
	}

	logger.Info().Int("count", len(requiredIndexes())).Msg("database indexes up to date")
	return nil
}
