// internal/testutil/fixtures.go
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/rosterhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateStudent inserts an active student with the given names and
// phone number. Returns the created student with its generated ID.
func (f *Fixtures) CreateStudent(ctx context.Context, fullNameEn, phoneNumber string) models.Student {
	f.t.Helper()

	now := time.Now().UTC()
	st := models.Student{
		ID:          primitive.NewObjectID(),
		FullNameEn:  fullNameEn,
		FullNameKh:  fullNameEn + " (KH)",
		DateOfBirth: "2000-01-01",
		Gender:      models.GenderFemale,
		PhoneNumber: phoneNumber,
		Courses:     []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := f.db.Collection("students").InsertOne(ctx, st); err != nil {
		f.t.Fatalf("failed to create test student: %v", err)
	}
	return st
}

// CreateStudentWithCourses inserts an active student already enrolled
// in the given course IDs.
func (f *Fixtures) CreateStudentWithCourses(ctx context.Context, fullNameEn, phoneNumber string, courseIDs []string) models.Student {
	f.t.Helper()

	st := f.CreateStudent(ctx, fullNameEn, phoneNumber)
	st.Courses = courseIDs
	if _, err := f.db.Collection("students").ReplaceOne(ctx, map[string]any{"_id": st.ID}, st); err != nil {
		f.t.Fatalf("failed to set test student courses: %v", err)
	}
	return st
}

// CreateDeletedStudent inserts a tombstoned student.
func (f *Fixtures) CreateDeletedStudent(ctx context.Context, fullNameEn, phoneNumber string) models.Student {
	f.t.Helper()

	st := f.CreateStudent(ctx, fullNameEn, phoneNumber)
	now := time.Now().UTC()
	st.IsDeleted = true
	st.DeletedAt = &now
	if _, err := f.db.Collection("students").ReplaceOne(ctx, map[string]any{"_id": st.ID}, st); err != nil {
		f.t.Fatalf("failed to tombstone test student: %v", err)
	}
	return st
}

// CreateCourse inserts an active course with the given name and dates.
func (f *Fixtures) CreateCourse(ctx context.Context, name, startDate, endDate string) models.Course {
	f.t.Helper()

	now := time.Now().UTC()
	c := models.Course{
		ID:               primitive.NewObjectID(),
		Name:             name,
		ProfessorName:    "Prof. Test",
		NumberOfStudents: 30,
		StartDate:        startDate,
		EndDate:          endDate,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if _, err := f.db.Collection("courses").InsertOne(ctx, c); err != nil {
		f.t.Fatalf("failed to create test course: %v", err)
	}
	return c
}
