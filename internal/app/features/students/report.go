// internal/app/features/students/report.go
package students

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dalemusser/rosterhub/internal/app/system/apperrors"
	"github.com/dalemusser/rosterhub/internal/app/system/timeouts"
)

// ServeReport handles GET /students/{studentID}/report.
func (h *Handler) ServeReport(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	report, err := h.Svc.BuildReport(ctx, chi.URLParam(r, "studentID"))
	if err != nil {
		apperrors.Write(w, h.Log, err)
		return
	}

	writeJSON(w, http.StatusOK, envelope{Message: "Student Report", Data: report})
}
