// internal/app/features/courses/report.go
package courses

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dalemusser/rosterhub/internal/app/system/apperrors"
	"github.com/dalemusser/rosterhub/internal/app/system/timeouts"
)

// ServeReport handles GET /courses/{courseID}/report. The registered
// count crosses entities: it counts active students whose course list
// references this course.
func (h *Handler) ServeReport(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	report, err := h.Svc.BuildReport(ctx, chi.URLParam(r, "courseID"))
	if err != nil {
		apperrors.Write(w, h.Log, err)
		return
	}

	writeJSON(w, http.StatusOK, envelope{Message: "Course Report", Data: report})
}
