// internal/domain/models/student.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Gender values accepted on student records.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
)

// Student represents an enrolled or formerly enrolled student.
//
// NOTE:
//   - Students are never physically removed. "Delete" sets IsDeleted and
//     DeletedAt; list queries filter on isDeleted unless stated otherwise.
//   - Courses holds course ObjectID hex strings. The relation is
//     unidirectional; no student list is stored on the course document.
//   - PhoneNumber is unique across the whole collection, deleted records
//     included. The unique index enforces this at the storage layer.
type Student struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullNameEn  string             `bson:"fullNameEn" json:"fullNameEn"`
	FullNameKh  string             `bson:"fullNameKh" json:"fullNameKh"`
	DateOfBirth string             `bson:"dateOfBirth" json:"dateOfBirth"`
	Gender      string             `bson:"gender" json:"gender"` // Male | Female
	PhoneNumber string             `bson:"phoneNumber" json:"phoneNumber"`
	Courses     []string           `bson:"courses" json:"courses"`

	IsDeleted bool       `bson:"isDeleted" json:"isDeleted"`
	DeletedAt *time.Time `bson:"deletedAt" json:"deletedAt"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
