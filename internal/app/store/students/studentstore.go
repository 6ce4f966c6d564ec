// internal/app/store/students/studentstore.go
package studentstore

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/dalemusser/rosterhub/internal/app/system/apperrors"
	"github.com/dalemusser/rosterhub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("students")}
}

// phonePattern mirrors the storage-layer validator: the number must
// contain ten consecutive digits.
var phonePattern = regexp.MustCompile(`\d{10}`)

// Create inserts a new student after checking required fields and
// phone-number uniqueness. The duplicate check runs across the whole
// collection, tombstoned records included; the unique index on
// phoneNumber is the backstop for the race between check and insert.
func (s *Store) Create(ctx context.Context, st models.Student) (models.Student, error) {
	if strings.TrimSpace(st.PhoneNumber) == "" || strings.TrimSpace(st.FullNameEn) == "" {
		return models.Student{}, apperrors.MissingRequirement("Missing required student details")
	}
	if !phonePattern.MatchString(st.PhoneNumber) {
		return models.Student{}, apperrors.MissingRequirement("Invalid phone number")
	}

	existing, err := s.ByPhoneNumber(ctx, st.PhoneNumber)
	if err != nil {
		return models.Student{}, err
	}
	if existing != nil {
		return models.Student{}, apperrors.Duplicate("Student Already Exist")
	}

	now := time.Now().UTC()
	st.ID = primitive.NewObjectID()
	if st.Courses == nil {
		st.Courses = []string{}
	}
	st.IsDeleted = false
	st.DeletedAt = nil
	st.CreatedAt = now
	st.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, st); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Student{}, apperrors.Duplicate("Student Already Exist")
		}
		return models.Student{}, apperrors.Internal("Unexpected error occurred while creating student")
	}
	return st, nil
}

// ByPhoneNumber returns the student holding the number, or nil when no
// record matches. Absence is a normal result here, not an error; Create
// uses this for its duplicate check.
func (s *Store) ByPhoneNumber(ctx context.Context, phoneNumber string) (*models.Student, error) {
	var st models.Student
	err := s.c.FindOne(ctx, bson.M{"phoneNumber": phoneNumber}).Decode(&st)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Internal("Unexpected error occurred while finding student")
	}
	return &st, nil
}

// GetAll returns every active student.
func (s *Store) GetAll(ctx context.Context) ([]models.Student, error) {
	cur, err := s.c.Find(ctx, bson.M{"isDeleted": false})
	if err != nil {
		return nil, apperrors.Internal("Unexpected error occurred while listing students")
	}
	defer cur.Close(ctx)

	var students []models.Student
	if err := cur.All(ctx, &students); err != nil {
		return nil, apperrors.Internal("Unexpected error occurred while listing students")
	}
	if len(students) == 0 {
		return nil, apperrors.NotFound("Student Not Found")
	}
	return students, nil
}

// Update holds the replacement field values for a student update.
// FullNameEn and PhoneNumber are mandatory even on a partial payload;
// the remaining fields overwrite only when supplied.
type Update struct {
	FullNameEn  string
	FullNameKh  string
	DateOfBirth string
	Gender      string
	PhoneNumber string
}

// UpdateStudent applies upd in a single conditional find-and-update, so
// there is no window between the existence check and the write.
func (s *Store) UpdateStudent(ctx context.Context, id primitive.ObjectID, upd Update) (models.Student, error) {
	if strings.TrimSpace(upd.PhoneNumber) == "" || strings.TrimSpace(upd.FullNameEn) == "" {
		return models.Student{}, apperrors.MissingRequirement("Missing required student details")
	}

	set := bson.M{
		"fullNameEn":  upd.FullNameEn,
		"phoneNumber": upd.PhoneNumber,
		"updated_at":  time.Now().UTC(),
	}
	if upd.FullNameKh != "" {
		set["fullNameKh"] = upd.FullNameKh
	}
	if upd.DateOfBirth != "" {
		set["dateOfBirth"] = upd.DateOfBirth
	}
	if upd.Gender != "" {
		set["gender"] = upd.Gender
	}

	var st models.Student
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&st)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Student{}, apperrors.NotFound("Invalid Student ID To Update")
	}
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.Student{}, apperrors.Duplicate("Student Already Exist")
		}
		return models.Student{}, apperrors.Internal("Unexpected error occurred while updating student")
	}
	return st, nil
}

// Delete tombstones a student. The record stays findable by ID with
// IsDeleted set and DeletedAt stamped.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (models.Student, error) {
	now := time.Now().UTC()
	var st models.Student
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"isDeleted": true, "deletedAt": now, "updated_at": now}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&st)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Student{}, apperrors.NotFound("Invalid Student ID To Delete")
	}
	if err != nil {
		return models.Student{}, apperrors.Internal("Unexpected error occurred while deleting student")
	}
	return st, nil
}

// ByName matches name exactly against either the Latin or the Khmer
// full name. Tombstoned records are included.
func (s *Store) ByName(ctx context.Context, name string) ([]models.Student, error) {
	query := bson.M{"$or": bson.A{
		bson.M{"fullNameEn": name},
		bson.M{"fullNameKh": name},
	}}
	cur, err := s.c.Find(ctx, query)
	if err != nil {
		return nil, apperrors.Internal("Unexpected error occurred while finding student")
	}
	defer cur.Close(ctx)

	var students []models.Student
	if err := cur.All(ctx, &students); err != nil {
		return nil, apperrors.Internal("Unexpected error occurred while finding student")
	}
	if len(students) == 0 {
		return nil, apperrors.NotFound("Student Not Found")
	}
	return students, nil
}

// ByID loads a student by ObjectID. No deleted filter: a tombstoned
// student is still findable by ID.
func (s *Store) ByID(ctx context.Context, id primitive.ObjectID) (*models.Student, error) {
	var st models.Student
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&st)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NotFound("Student Not Found")
	}
	if err != nil {
		return nil, apperrors.Internal("Unexpected error occurred while finding student")
	}
	return &st, nil
}

// AddCourse appends courseID to the student's course list. $addToSet
// makes re-adding a held course a silent no-op, and the single update
// removes the check-then-act window on the student record.
func (s *Store) AddCourse(ctx context.Context, id primitive.ObjectID, courseID string) (models.Student, error) {
	var st models.Student
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{
			"$addToSet": bson.M{"courses": courseID},
			"$set":      bson.M{"updated_at": time.Now().UTC()},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&st)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Student{}, apperrors.NotFound("Student not found.")
	}
	if err != nil {
		return models.Student{}, apperrors.Internal("Unexpected error occurred while registering course")
	}
	return st, nil
}

// RemoveCourse strips every occurrence of courseID from the student's
// course list. Removing a course the student never held succeeds.
func (s *Store) RemoveCourse(ctx context.Context, id primitive.ObjectID, courseID string) (models.Student, error) {
	var st models.Student
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{
			"$pull": bson.M{"courses": courseID},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&st)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Student{}, apperrors.NotFound("Student not found.")
	}
	if err != nil {
		return models.Student{}, apperrors.Internal("Unexpected error occurred while removing course")
	}
	return st, nil
}

// CountEnrolled returns how many active students hold courseID in their
// course list. Tombstoned students are excluded from the count.
func (s *Store) CountEnrolled(ctx context.Context, courseID string) (int64, error) {
	n, err := s.c.CountDocuments(ctx, bson.M{"courses": courseID, "isDeleted": false})
	if err != nil {
		return 0, apperrors.Internal("Unexpected error occurred while counting students")
	}
	return n, nil
}
