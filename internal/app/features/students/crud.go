// internal/app/features/students/crud.go
package students

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	studentstore "github.com/dalemusser/rosterhub/internal/app/store/students"
	"github.com/dalemusser/rosterhub/internal/app/system/apperrors"
	"github.com/dalemusser/rosterhub/internal/app/system/timeouts"
	"github.com/dalemusser/rosterhub/internal/domain/models"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// HandleCreate handles POST /students.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperrors.Write(w, h.Log, apperrors.MissingRequirement("Invalid request body"))
		return
	}

	st, err := h.Svc.Create(ctx, models.Student{
		FullNameEn:  req.FullNameEn,
		FullNameKh:  req.FullNameKh,
		DateOfBirth: req.DateOfBirth,
		Gender:      req.Gender,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		apperrors.Write(w, h.Log, err)
		return
	}

	writeJSON(w, http.StatusCreated, envelope{Message: "Student created successfully", Data: st})
}

// ServeList handles GET /students: every active student.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	students, err := h.Svc.GetAll(ctx)
	if err != nil {
		apperrors.Write(w, h.Log, err)
		return
	}

	writeJSON(w, http.StatusOK, students)
}

// HandleUpdate handles PUT /students/{id}.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperrors.Write(w, h.Log, apperrors.MissingRequirement("Invalid request body"))
		return
	}

	st, err := h.Svc.Update(ctx, chi.URLParam(r, "id"), studentstore.Update{
		FullNameEn:  req.FullNameEn,
		FullNameKh:  req.FullNameKh,
		DateOfBirth: req.DateOfBirth,
		Gender:      req.Gender,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		apperrors.Write(w, h.Log, err)
		return
	}

	writeJSON(w, http.StatusOK, st)
}

// HandleDelete handles DELETE /students/{id}: a soft delete, the
// record stays in the collection as a tombstone.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	st, err := h.Svc.Delete(ctx, chi.URLParam(r, "id"))
	if err != nil {
		apperrors.Write(w, h.Log, err)
		return
	}

	writeJSON(w, http.StatusOK, envelope{Message: "Delete Successfully", Data: st})
}
