// Package testutil provides in-memory doubles of the MongoDB repositories.
//
// They enforce the same unique indexes as the real collections and report
// violations as *mongoerr.Error values, so services and handlers can be
// tested without a database.
package testutil

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/deppfellow/hrms/internal/lib/job"
	"github.com/deppfellow/hrms/internal/model"
	"github.com/deppfellow/hrms/internal/mongoerr"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func duplicate(collection, index string) error {
	return &mongoerr.Error{
		Code:       mongoerr.DuplicateKey,
		Collection: collection,
		Index:      index,
		Field:      mongoerr.FieldFromIndex(index),
		Message:    fmt.Sprintf("E11000 duplicate key error collection: test.%s index: %s", collection, index),
	}
}

// EmployeeStore is an in-memory employees collection.
type EmployeeStore struct {
	mu        sync.Mutex
	employees []model.Employee

	// Err, when set, is returned by every call.
	Err error
}

func NewEmployeeStore() *EmployeeStore {
	return &EmployeeStore{}
}

func (s *EmployeeStore) List(_ context.Context) ([]model.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]model.Employee, len(s.employees))
	copy(out, s.employees)
	return out, nil
}

func (s *EmployeeStore) Insert(_ context.Context, e *model.Employee) (primitive.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return primitive.NilObjectID, s.Err
	}
	if err := s.checkUnique(primitive.NilObjectID, e); err != nil {
		return primitive.NilObjectID, err
	}

	e.ID = primitive.NewObjectID()
	s.employees = append(s.employees, *e)
	return e.ID, nil
}

func (s *EmployeeStore) Update(_ context.Context, id primitive.ObjectID, e *model.Employee) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return false, s.Err
	}

	i := s.indexOf(id)
	if i < 0 {
		return false, nil
	}
	if err := s.checkUnique(id, e); err != nil {
		return false, err
	}

	stored := &s.employees[i]
	stored.EmpID = e.EmpID
	stored.Name = e.Name
	stored.Age = e.Age
	stored.Email = e.Email
	stored.Department = e.Department
	stored.UpdatedAt = e.UpdatedAt
	return true, nil
}

func (s *EmployeeStore) Delete(_ context.Context, id primitive.ObjectID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return false, s.Err
	}

	i := s.indexOf(id)
	if i < 0 {
		return false, nil
	}
	s.employees = append(s.employees[:i], s.employees[i+1:]...)
	return true, nil
}

func (s *EmployeeStore) ExistsByEmpID(_ context.Context, empID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return false, s.Err
	}
	for _, e := range s.employees {
		if e.EmpID == empID {
			return true, nil
		}
	}
	return false, nil
}

// Get returns a copy of the stored employee with id.
func (s *EmployeeStore) Get(id primitive.ObjectID) (model.Employee, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(id); i >= 0 {
		return s.employees[i], true
	}
	return model.Employee{}, false
}

func (s *EmployeeStore) indexOf(id primitive.ObjectID) int {
	for i, e := range s.employees {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// checkUnique mirrors the emp_id_1 and email_1 indexes, ignoring the
// document being updated.
func (s *EmployeeStore) checkUnique(self primitive.ObjectID, e *model.Employee) error {
	for _, other := range s.employees {
		if other.ID == self {
			continue
		}
		if other.EmpID == e.EmpID {
			return duplicate(model.EmployeesCollection, model.EmpIDIndex)
		}
		if other.Email == e.Email {
			return duplicate(model.EmployeesCollection, model.EmailIndex)
		}
	}
	return nil
}

// AttendanceStore is an in-memory attendance collection keyed by (emp_id, date).
type AttendanceStore struct {
	mu      sync.Mutex
	records []model.Attendance

	// Err, when set, is returned by every call.
	Err error
}

func NewAttendanceStore() *AttendanceStore {
	return &AttendanceStore{}
}

func (s *AttendanceStore) Upsert(_ context.Context, a *model.Attendance) (primitive.ObjectID, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return primitive.NilObjectID, false, s.Err
	}

	for i := range s.records {
		if s.records[i].EmpID == a.EmpID && s.records[i].Date == a.Date {
			s.records[i].Status = a.Status
			return primitive.NilObjectID, false, nil
		}
	}

	a.ID = primitive.NewObjectID()
	s.records = append(s.records, *a)
	return a.ID, true, nil
}

func (s *AttendanceStore) Find(_ context.Context, f model.AttendanceFilter) ([]model.Attendance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}

	out := []model.Attendance{}
	for _, r := range s.records {
		if f.EmpID != "" && r.EmpID != f.EmpID {
			continue
		}
		if f.StartDate != "" && r.Date < f.StartDate {
			continue
		}
		if f.EndDate != "" && r.Date > f.EndDate {
			continue
		}
		out = append(out, r)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

func (s *AttendanceStore) FindByDate(_ context.Context, empID, date string) (*model.Attendance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}
	for _, r := range s.records {
		if r.EmpID == empID && r.Date == date {
			record := r
			return &record, nil
		}
	}
	return nil, nil
}

func (s *AttendanceStore) CountByStatus(_ context.Context, empID string) (map[string]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}
	counts := map[string]int64{}
	for _, r := range s.records {
		if r.EmpID == empID {
			counts[r.Status]++
		}
	}
	return counts, nil
}

// Len reports how many records are stored.
func (s *AttendanceStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Notifier records queued welcome emails.
type Notifier struct {
	mu     sync.Mutex
	Queued []job.WelcomeEmailPayload

	// Err, when set, is returned instead of queueing.
	Err error
}

func (n *Notifier) EnqueueWelcomeEmail(_ context.Context, p job.WelcomeEmailPayload) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.Err != nil {
		return n.Err
	}
	n.Queued = append(n.Queued, p)
	return nil
}
