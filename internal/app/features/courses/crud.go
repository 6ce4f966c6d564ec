// internal/app/features/courses/crud.go
package courses

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	coursestore "github.com/dalemusser/rosterhub/internal/app/store/courses"
	"github.com/dalemusser/rosterhub/internal/app/system/apperrors"
	"github.com/dalemusser/rosterhub/internal/app/system/timeouts"
	"github.com/dalemusser/rosterhub/internal/domain/models"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// HandleCreate handles POST /courses.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperrors.Write(w, h.Log, apperrors.MissingRequirement("Invalid request body"))
		return
	}

	c, err := h.Svc.Create(ctx, models.Course{
		Name:             req.Name,
		ProfessorName:    req.ProfessorName,
		NumberOfStudents: req.NumberOfStudents,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
	})
	if err != nil {
		apperrors.Write(w, h.Log, err)
		return
	}

	writeJSON(w, http.StatusCreated, envelope{Message: "Course created successfully", Data: c})
}

// ServeList handles GET /courses: every active course.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	courses, err := h.Svc.GetAll(ctx)
	if err != nil {
		apperrors.Write(w, h.Log, err)
		return
	}

	writeJSON(w, http.StatusOK, courses)
}

// HandleUpdate handles PUT /courses/{id}.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperrors.Write(w, h.Log, apperrors.MissingRequirement("Invalid request body"))
		return
	}

	c, err := h.Svc.Update(ctx, chi.URLParam(r, "id"), coursestore.Update{
		Name:             req.Name,
		ProfessorName:    req.ProfessorName,
		NumberOfStudents: req.NumberOfStudents,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
	})
	if err != nil {
		apperrors.Write(w, h.Log, err)
		return
	}

	writeJSON(w, http.StatusOK, c)
}

// HandleDelete handles DELETE /courses/{id}: a soft delete.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	c, err := h.Svc.Delete(ctx, chi.URLParam(r, "id"))
	if err != nil {
		apperrors.Write(w, h.Log, err)
		return
	}

	writeJSON(w, http.StatusOK, envelope{Message: "Delete Successfully", Data: c})
}
