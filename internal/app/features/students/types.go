// internal/app/features/students/types.go
package students

// createRequest is the JSON body for POST /students.
type createRequest struct {
	FullNameEn  string `json:"fullNameEn"`
	FullNameKh  string `json:"fullNameKh"`
	DateOfBirth string `json:"dateOfBirth"`
	Gender      string `json:"gender"`
	PhoneNumber string `json:"phoneNumber"`
}

// updateRequest is the JSON body for PUT /students/{id}. The fields are
// the same as createRequest; fullNameEn and phoneNumber must be
// resupplied even on a partial update.
type updateRequest struct {
	FullNameEn  string `json:"fullNameEn"`
	FullNameKh  string `json:"fullNameKh"`
	DateOfBirth string `json:"dateOfBirth"`
	Gender      string `json:"gender"`
	PhoneNumber string `json:"phoneNumber"`
}

// envelope wraps mutation and report responses.
type envelope struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}
