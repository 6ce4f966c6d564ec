// internal/app/features/students/search.go
package students

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dalemusser/rosterhub/internal/app/system/apperrors"
	"github.com/dalemusser/rosterhub/internal/app/system/timeouts"
)

// ServeSearchByName handles GET /students/search?name= and
// GET /students/search?phone=. The name match is exact against either
// the Latin or the Khmer name, tombstones included. A phone lookup
// returns the single holder of the number.
func (h *Handler) ServeSearchByName(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if phone := r.URL.Query().Get("phone"); phone != "" {
		st, err := h.Svc.ByPhoneNumber(ctx, phone)
		if err != nil {
			apperrors.Write(w, h.Log, err)
			return
		}
		writeJSON(w, http.StatusOK, st)
		return
	}

	name := r.URL.Query().Get("name")
	if name == "" {
		apperrors.Write(w, h.Log, apperrors.MissingRequirement("Name parameter is required"))
		return
	}

	students, err := h.Svc.ByName(ctx, name)
	if err != nil {
		apperrors.Write(w, h.Log, err)
		return
	}

	writeJSON(w, http.StatusOK, students)
}

// ServeByID handles GET /students/{id}. Tombstoned students resolve
// here with isDeleted set.
func (h *Handler) ServeByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	st, err := h.Svc.ByID(ctx, chi.URLParam(r, "id"))
	if err != nil {
		apperrors.Write(w, h.Log, err)
		return
	}

	writeJSON(w, http.StatusOK, st)
}
