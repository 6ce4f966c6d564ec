// internal/app/service/students/service.go

// Package studentsvc is the orchestration layer between the student
// HTTP feature and the student store. It parses opaque entity IDs,
// delegates to the store, and re-asserts not-found conditions so a nil
// result can never escape to a caller.
package studentsvc

import (
	"context"

	studentstore "github.com/dalemusser/rosterhub/internal/app/store/students"
	"github.com/dalemusser/rosterhub/internal/app/system/apperrors"
	"github.com/dalemusser/rosterhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Service struct {
	students *studentstore.Store
	log      *zap.Logger
}

func New(db *mongo.Database, logger *zap.Logger) *Service {
	return &Service{
		students: studentstore.New(db),
		log:      logger,
	}
}

// parseID converts an opaque hex ID into an ObjectID. A malformed ID is
// indistinguishable from a missing record as far as callers are
// concerned, so it surfaces as the same not-found failure.
func parseID(id, notFoundMsg string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, apperrors.NotFound(notFoundMsg)
	}
	return oid, nil
}

func (s *Service) Create(ctx context.Context, st models.Student) (models.Student, error) {
	return s.students.Create(ctx, st)
}

func (s *Service) GetAll(ctx context.Context) ([]models.Student, error) {
	return s.students.GetAll(ctx)
}

// ByPhoneNumber resolves a student by phone number. Unlike the store,
// an absent record is an error here: callers of the service expect a
// student or a failure, never nil.
func (s *Service) ByPhoneNumber(ctx context.Context, phoneNumber string) (*models.Student, error) {
	st, err := s.students.ByPhoneNumber(ctx, phoneNumber)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, apperrors.NotFound("Student Not Found")
	}
	return st, nil
}

func (s *Service) Update(ctx context.Context, id string, upd studentstore.Update) (models.Student, error) {
	oid, err := parseID(id, "Invalid Student ID To Update")
	if err != nil {
		return models.Student{}, err
	}
	return s.students.UpdateStudent(ctx, oid, upd)
}

func (s *Service) Delete(ctx context.Context, id string) (models.Student, error) {
	oid, err := parseID(id, "Invalid Student ID To Delete")
	if err != nil {
		return models.Student{}, err
	}
	return s.students.Delete(ctx, oid)
}

func (s *Service) ByName(ctx context.Context, name string) ([]models.Student, error) {
	return s.students.ByName(ctx, name)
}

func (s *Service) ByID(ctx context.Context, id string) (*models.Student, error) {
	oid, err := parseID(id, "Student Not Found")
	if err != nil {
		return nil, err
	}
	st, err := s.students.ByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, apperrors.NotFound("Student Not Found")
	}
	return st, nil
}

// Enroll adds courseID to the student's course list. Enrolling in a
// course the student already holds is a silent no-op. The course is not
// resolved or validated; the list is a plain set of foreign IDs.
func (s *Service) Enroll(ctx context.Context, studentID, courseID string) (models.Student, error) {
	oid, err := parseID(studentID, "Student not found.")
	if err != nil {
		return models.Student{}, err
	}
	return s.students.AddCourse(ctx, oid, courseID)
}

// Unenroll removes every occurrence of courseID from the student's
// course list. Removing a course the student never held succeeds.
func (s *Service) Unenroll(ctx context.Context, studentID, courseID string) (models.Student, error) {
	oid, err := parseID(studentID, "Student not found.")
	if err != nil {
		return models.Student{}, err
	}
	return s.students.RemoveCourse(ctx, oid, courseID)
}

// Report summarizes a single student with their enrolled-course count.
type Report struct {
	FullNameEn      string `json:"fullNameEn"`
	FullNameKh      string `json:"fullNameKh"`
	DateOfBirth     string `json:"dateOfBirth"`
	Gender          string `json:"gender"`
	PhoneNumber     string `json:"phoneNumber"`
	NumberOfCourses int    `json:"numberOfCourses"`
}

// BuildReport resolves the student and assembles their report.
func (s *Service) BuildReport(ctx context.Context, studentID string) (Report, error) {
	st, err := s.ByID(ctx, studentID)
	if err != nil {
		return Report{}, err
	}
	return Report{
		FullNameEn:      st.FullNameEn,
		FullNameKh:      st.FullNameKh,
		DateOfBirth:     st.DateOfBirth,
		Gender:          st.Gender,
		PhoneNumber:     st.PhoneNumber,
		NumberOfCourses: len(st.Courses),
	}, nil
}
