// internal/app/service/courses/service.go

// Package coursesvc is the orchestration layer between the course HTTP
// feature and the course store. The course report crosses entities: it
// reads enrollment counts from the students collection.
package coursesvc

import (
	"context"

	coursestore "github.com/dalemusser/rosterhub/internal/app/store/courses"
	studentstore "github.com/dalemusser/rosterhub/internal/app/store/students"
	"github.com/dalemusser/rosterhub/internal/app/system/apperrors"
	"github.com/dalemusser/rosterhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Service struct {
	courses  *coursestore.Store
	students *studentstore.Store
	log      *zap.Logger
}

func New(db *mongo.Database, logger *zap.Logger) *Service {
	return &Service{
		courses:  coursestore.New(db),
		students: studentstore.New(db),
		log:      logger,
	}
}

func parseID(id, notFoundMsg string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, apperrors.NotFound(notFoundMsg)
	}
	return oid, nil
}

func (s *Service) Create(ctx context.Context, c models.Course) (models.Course, error) {
	return s.courses.Create(ctx, c)
}

func (s *Service) GetAll(ctx context.Context) ([]models.Course, error) {
	return s.courses.GetAll(ctx)
}

func (s *Service) Update(ctx context.Context, id string, upd coursestore.Update) (models.Course, error) {
	oid, err := parseID(id, "Invalid Course ID")
	if err != nil {
		return models.Course{}, err
	}
	return s.courses.UpdateCourse(ctx, oid, upd)
}

func (s *Service) Delete(ctx context.Context, id string) (models.Course, error) {
	oid, err := parseID(id, "Invalid Course ID To Delete")
	if err != nil {
		return models.Course{}, err
	}
	return s.courses.Delete(ctx, oid)
}

func (s *Service) ByName(ctx context.Context, name string) ([]models.Course, error) {
	return s.courses.ByName(ctx, name)
}

func (s *Service) FilterByDates(ctx context.Context, filter coursestore.DateRange) ([]models.Course, error) {
	return s.courses.FilterStartDateByEndDate(ctx, filter)
}

func (s *Service) ByID(ctx context.Context, id string) (*models.Course, error) {
	oid, err := parseID(id, "Course Not Found")
	if err != nil {
		return nil, err
	}
	c, err := s.courses.ByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperrors.NotFound("Course Not Found")
	}
	return c, nil
}

// Report summarizes a course with its registered-student count.
type Report struct {
	CourseName                 string `json:"courseName"`
	Professor                  string `json:"professor"`
	StartDate                  string `json:"startDate"`
	EndDate                    string `json:"endDate"`
	LimitNumberOfStudents      int    `json:"limitNumberOfStudents"`
	NumberOfRegisteredStudents int64  `json:"numberOfRegisteredStudents"`
}

// BuildReport resolves the course and counts the active students whose
// course list references it. Tombstoned students do not count.
func (s *Service) BuildReport(ctx context.Context, courseID string) (Report, error) {
	c, err := s.ByID(ctx, courseID)
	if err != nil {
		return Report{}, err
	}

	registered, err := s.students.CountEnrolled(ctx, c.ID.Hex())
	if err != nil {
		return Report{}, err
	}

	return Report{
		CourseName:                 c.Name,
		Professor:                  c.ProfessorName,
		StartDate:                  c.StartDate,
		EndDate:                    c.EndDate,
		LimitNumberOfStudents:      c.NumberOfStudents,
		NumberOfRegisteredStudents: registered,
	}, nil
}
