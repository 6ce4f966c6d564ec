// internal/app/features/courses/types.go
package courses

// createRequest is the JSON body for POST /courses. The capitalized
// "Name" key is part of the wire contract.
type createRequest struct {
	Name             string `json:"Name"`
	ProfessorName    string `json:"professorName"`
	NumberOfStudents int    `json:"numberOfStudents"`
	StartDate        string `json:"startDate"`
	EndDate          string `json:"endDate"`
}

// updateRequest is the JSON body for PUT /courses/{id}. All fields are
// optional; NumberOfStudents is a pointer so an explicit zero survives
// decoding.
type updateRequest struct {
	Name             string `json:"Name"`
	ProfessorName    string `json:"professorName"`
	NumberOfStudents *int   `json:"numberOfStudents"`
	StartDate        string `json:"startDate"`
	EndDate          string `json:"endDate"`
}

// envelope wraps mutation and report responses.
type envelope struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}
