package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/hrms/internal/model"
	"github.com/deppfellow/hrms/internal/mongoerr"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type EmployeeRepository struct {
	coll *mongo.Collection
}

func NewEmployeeRepository(db *mongo.Database) *EmployeeRepository {
	return &EmployeeRepository{coll: db.Collection(model.EmployeesCollection)}
}

// List returns every employee in store order.
func (r *EmployeeRepository) List(ctx context.Context) ([]model.Employee, error) {
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", mongoerr.Convert(err))
	}

	employees := []model.Employee{}
	if err := cursor.All(ctx, &employees); err != nil {
		return nil, fmt.Errorf("failed to decode employees: %w", mongoerr.Convert(err))
	}

	return employees, nil
}

// Insert stores e and returns its new ObjectID. A clash on emp_id or email
// comes back as a mongoerr.DuplicateKey error naming the index.
func (r *EmployeeRepository) Insert(ctx context.Context, e *model.Employee) (primitive.ObjectID, error) {
	res, err := r.coll.InsertOne(ctx, e)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to insert employee %s: %w", e.EmpID, mongoerr.Convert(err))
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}

	e.ID = id
	return id, nil
}

// Update overwrites the mutable fields of the employee with the given id
// and stamps updated_at. created_at is left untouched. It reports whether a
// document matched.
func (r *EmployeeRepository) Update(ctx context.Context, id primitive.ObjectID, e *model.Employee) (bool, error) {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "emp_id", Value: e.EmpID},
		{Key: "name", Value: e.Name},
		{Key: "age", Value: e.Age},
		{Key: "email", Value: e.Email},
		{Key: "department", Value: e.Department},
		{Key: "updated_at", Value: e.UpdatedAt},
	}}}

	res, err := r.coll.UpdateByID(ctx, id, update)
	if err != nil {
		return false, fmt.Errorf("failed to update employee %s: %w", id.Hex(), mongoerr.Convert(err))
	}

	return res.MatchedCount > 0, nil
}

// Delete removes the employee with the given id and reports whether one existed.
func (r *EmployeeRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return false, fmt.Errorf("failed to delete employee %s: %w", id.Hex(), mongoerr.Convert(err))
	}

	return res.DeletedCount > 0, nil
}

func (r *EmployeeRepository) ExistsByEmpID(ctx context.Context, empID string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.D{{Key: "emp_id", Value: empID}}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to look up employee %s: %w", empID, mongoerr.Convert(err))
	}

	return n > 0, nil
}
