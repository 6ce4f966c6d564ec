// internal/domain/models/course.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Course represents a course offering.
//
// NOTE:
//   - StartDate and EndDate are opaque date strings (YYYY-MM-DD by
//     convention) compared lexicographically in range filters; they are
//     never parsed as calendar dates.
//   - NumberOfStudents is a declared capacity ceiling. It is reported but
//     not enforced against the enrollment count.
//   - Same tombstone semantics as Student: IsDeleted/DeletedAt, no
//     physical removal.
type Course struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name             string             `bson:"Name" json:"Name"`
	ProfessorName    string             `bson:"professorName" json:"professorName"`
	NumberOfStudents int                `bson:"numberOfStudents" json:"numberOfStudents"`
	StartDate        string             `bson:"startDate" json:"startDate"`
	EndDate          string             `bson:"endDate" json:"endDate"`

	IsDeleted bool       `bson:"isDeleted" json:"isDeleted"`
	DeletedAt *time.Time `bson:"deletedAt" json:"deletedAt"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
