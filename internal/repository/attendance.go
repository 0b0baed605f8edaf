package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/hrms/internal/model"
	"github.com/deppfellow/hrms/internal/mongoerr"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AttendanceRepository struct {
	coll *mongo.Collection
}

func NewAttendanceRepository(db *mongo.Database) *AttendanceRepository {
	return &AttendanceRepository{coll: db.Collection(model.AttendanceCollection)}
}

// Upsert records a's status for (a.EmpID, a.Date) in one conditional write.
//
// When no record exists one is inserted with a.CreatedAt and its id is
// returned with created=true. Otherwise only the status changes and the
// returned id is NilObjectID.
//
// Two concurrent upserts of a fresh key can both attempt the insert; the
// loser gets a duplicate key error from emp_id_1_date_1 and is retried once,
// at which point it matches the winner's record.
func (r *AttendanceRepository) Upsert(ctx context.Context, a *model.Attendance) (primitive.ObjectID, bool, error) {
	filter := bson.D{
		{Key: "emp_id", Value: a.EmpID},
		{Key: "date", Value: a.Date},
	}
	update := bson.D{
		{Key: "$set", Value: bson.D{{Key: "status", Value: a.Status}}},
		{Key: "$setOnInsert", Value: bson.D{{Key: "created_at", Value: a.CreatedAt}}},
	}
	opts := options.Update().SetUpsert(true)

	res, err := r.coll.UpdateOne(ctx, filter, update, opts)
	if err != nil && mongo.IsDuplicateKeyError(err) {
		res, err = r.coll.UpdateOne(ctx, filter, update, opts)
	}
	if err != nil {
		return primitive.NilObjectID, false, fmt.Errorf("failed to mark attendance for %s on %s: %w", a.EmpID, a.Date, mongoerr.Convert(err))
	}

	if res.UpsertedID == nil {
		return primitive.NilObjectID, false, nil
	}

	id, ok := res.UpsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, false, fmt.Errorf("unexpected upserted id type %T", res.UpsertedID)
	}

	a.ID = id
	return id, true, nil
}

// Find returns the records selected by f, newest date first.
func (r *AttendanceRepository) Find(ctx context.Context, f model.AttendanceFilter) ([]model.Attendance, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	cursor, err := r.coll.Find(ctx, attendanceFilter(f), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance: %w", mongoerr.Convert(err))
	}

	records := []model.Attendance{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode attendance: %w", mongoerr.Convert(err))
	}

	return records, nil
}

// FindByDate returns the record for (empID, date), or nil when there is none.
func (r *AttendanceRepository) FindByDate(ctx context.Context, empID, date string) (*model.Attendance, error) {
	var record model.Attendance

	err := r.coll.FindOne(ctx, bson.D{
		{Key: "emp_id", Value: empID},
		{Key: "date", Value: date},
	}).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch attendance for %s on %s: %w", empID, date, mongoerr.Convert(err))
	}

	return &record, nil
}

type statusCount struct {
	Status string `bson:"_id"`
	Count  int64  `bson:"count"`
}

// CountByStatus groups empID's records by status. Statuses with no records
// are absent from the result.
func (r *AttendanceRepository) CountByStatus(ctx context.Context, empID string) (map[string]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "emp_id", Value: empID}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$status"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize attendance for %s: %w", empID, mongoerr.Convert(err))
	}

	var rows []statusCount
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode attendance summary: %w", mongoerr.Convert(err))
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// attendanceFilter turns f into a query. Date bounds are inclusive and
// compare lexically, which orders YYYY-MM-DD strings by calendar date.
func attendanceFilter(f model.AttendanceFilter) bson.M {
	query := bson.M{}
	if f.EmpID != "" {
		query["emp_id"] = f.EmpID
	}

	dateRange := bson.M{}
	if f.StartDate != "" {
		dateRange["$gte"] = f.StartDate
	}
	if f.EndDate != "" {
		dateRange["$lte"] = f.EndDate
	}
	if len(dateRange) > 0 {
		query["date"] = dateRange
	}

	return query
}
