// internal/app/store/courses/coursestore.go
package coursestore

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dalemusser/rosterhub/internal/app/system/apperrors"
	"github.com/dalemusser/rosterhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("courses")}
}

// Create inserts a new course after checking required fields.
func (s *Store) Create(ctx context.Context, c models.Course) (models.Course, error) {
	if strings.TrimSpace(c.Name) == "" || strings.TrimSpace(c.ProfessorName) == "" {
		return models.Course{}, apperrors.MissingRequirement("Missing required course details")
	}

	now := time.Now().UTC()
	c.ID = primitive.NewObjectID()
	c.IsDeleted = false
	c.DeletedAt = nil
	c.CreatedAt = now
	c.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, c); err != nil {
		return models.Course{}, apperrors.Internal("Unexpected error occurred while creating course")
	}
	return c, nil
}

// GetAll returns every active course.
func (s *Store) GetAll(ctx context.Context) ([]models.Course, error) {
	cur, err := s.c.Find(ctx, bson.M{"isDeleted": false})
	if err != nil {
		return nil, apperrors.Internal("Unexpected error occurred while listing courses")
	}
	defer cur.Close(ctx)

	var courses []models.Course
	if err := cur.All(ctx, &courses); err != nil {
		return nil, apperrors.Internal("Unexpected error occurred while listing courses")
	}
	if len(courses) == 0 {
		return nil, apperrors.NotFound("Course Not Found")
	}
	return courses, nil
}

// Update holds the replacement field values for a course update. Fields
// overwrite only when supplied; NumberOfStudents uses a pointer so zero
// can be set deliberately.
type Update struct {
	Name             string
	ProfessorName    string
	NumberOfStudents *int
	StartDate        string
	EndDate          string
}

// UpdateCourse applies upd in a single conditional find-and-update.
func (s *Store) UpdateCourse(ctx context.Context, id primitive.ObjectID, upd Update) (models.Course, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if upd.Name != "" {
		set["Name"] = upd.Name
	}
	if upd.ProfessorName != "" {
		set["professorName"] = upd.ProfessorName
	}
	if upd.NumberOfStudents != nil {
		set["numberOfStudents"] = *upd.NumberOfStudents
	}
	if upd.StartDate != "" {
		set["startDate"] = upd.StartDate
	}
	if upd.EndDate != "" {
		set["endDate"] = upd.EndDate
	}

	var c models.Course
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Course{}, apperrors.NotFound("Invalid Course ID")
	}
	if err != nil {
		return models.Course{}, apperrors.Internal("Unexpected error occurred while updating course")
	}
	return c, nil
}

// Delete tombstones a course.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (models.Course, error) {
	now := time.Now().UTC()
	var c models.Course
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"isDeleted": true, "deletedAt": now, "updated_at": now}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Course{}, apperrors.NotFound("Invalid Course ID To Delete")
	}
	if err != nil {
		return models.Course{}, apperrors.Internal("Unexpected error occurred while deleting course")
	}
	return c, nil
}

// ByName matches the course name exactly.
func (s *Store) ByName(ctx context.Context, name string) ([]models.Course, error) {
	cur, err := s.c.Find(ctx, bson.M{"Name": name})
	if err != nil {
		return nil, apperrors.Internal("Unexpected error occurred while finding course")
	}
	defer cur.Close(ctx)

	var courses []models.Course
	if err := cur.All(ctx, &courses); err != nil {
		return nil, apperrors.Internal("Unexpected error occurred while finding course")
	}
	if len(courses) == 0 {
		return nil, apperrors.NotFound("Course Not Found")
	}
	return courses, nil
}

// DateRange filters active courses by their own start and end dates.
// Each bound is optional and applies only when supplied.
type DateRange struct {
	StartDate string
	EndDate   string
}

// FilterStartDateByEndDate returns active courses whose startDate is on
// or after the given start bound and whose endDate is on or before the
// given end bound. Dates compare as strings, so the filter selects
// courses falling inside the bounds rather than courses overlapping an
// interval.
func (s *Store) FilterStartDateByEndDate(ctx context.Context, filter DateRange) ([]models.Course, error) {
	query := bson.M{"isDeleted": false}
	if filter.StartDate != "" {
		query["startDate"] = bson.M{"$gte": filter.StartDate}
	}
	if filter.EndDate != "" {
		query["endDate"] = bson.M{"$lte": filter.EndDate}
	}

	cur, err := s.c.Find(ctx, query)
	if err != nil {
		return nil, apperrors.Internal("Unexpected error occurred while filtering courses")
	}
	defer cur.Close(ctx)

	var courses []models.Course
	if err := cur.All(ctx, &courses); err != nil {
		return nil, apperrors.Internal("Unexpected error occurred while filtering courses")
	}
	if len(courses) == 0 {
		return nil, apperrors.NotFound("Course Not Found")
	}
	return courses, nil
}

// ByID loads a course by ObjectID. No deleted filter.
func (s *Store) ByID(ctx context.Context, id primitive.ObjectID) (*models.Course, error) {
	var c models.Course
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NotFound("Course Not Found")
	}
	if err != nil {
		return nil, apperrors.Internal("Unexpected error occurred while finding course")
	}
	return &c, nil
}
