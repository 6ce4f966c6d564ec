// internal/app/features/reports/handler.go
package reports

import (
	"context"
	"encoding/json"
	"net/http"

	coursestore "github.com/dalemusser/rosterhub/internal/app/store/courses"
	"github.com/dalemusser/rosterhub/internal/app/store/queries/reportqueries"
	"github.com/dalemusser/rosterhub/internal/app/system/apperrors"
	"github.com/dalemusser/rosterhub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the aggregate enrollment report across all courses.
type Handler struct {
	DB      *mongo.Database
	Courses *coursestore.Store
	Log     *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:      db,
		Courses: coursestore.New(db),
		Log:     logger,
	}
}

// row is one course line in the aggregate report, shaped like the
// single-course report.
type row struct {
	CourseName                 string `json:"courseName"`
	Professor                  string `json:"professor"`
	StartDate                  string `json:"startDate"`
	EndDate                    string `json:"endDate"`
	LimitNumberOfStudents      int    `json:"limitNumberOfStudents"`
	NumberOfRegisteredStudents int64  `json:"numberOfRegisteredStudents"`
}

// ServeCourses handles GET /reports/courses: every active course with
// its registered-student count in one response.
func (h *Handler) ServeCourses(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	courses, err := h.Courses.GetAll(ctx)
	if err != nil {
		apperrors.Write(w, h.Log, err)
		return
	}

	ids := make([]string, 0, len(courses))
	for _, c := range courses {
		ids = append(ids, c.ID.Hex())
	}

	counts, err := reportqueries.CountRegisteredPerCourse(ctx, h.DB, ids)
	if err != nil {
		h.Log.Error("course report counts failed", zap.Error(err))
		apperrors.Write(w, h.Log, apperrors.Internal("Unexpected error occurred while building report"))
		return
	}

	rows := make([]row, 0, len(courses))
	for _, c := range courses {
		rows = append(rows, row{
			CourseName:                 c.Name,
			Professor:                  c.ProfessorName,
			StartDate:                  c.StartDate,
			EndDate:                    c.EndDate,
			LimitNumberOfStudents:      c.NumberOfStudents,
			NumberOfRegisteredStudents: counts[c.ID.Hex()],
		})
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(rows)
}
