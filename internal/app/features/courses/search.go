// internal/app/features/courses/search.go
package courses

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	coursestore "github.com/dalemusser/rosterhub/internal/app/store/courses"
	"github.com/dalemusser/rosterhub/internal/app/system/apperrors"
	"github.com/dalemusser/rosterhub/internal/app/system/timeouts"
)

// ServeSearchByName handles GET /courses/search?name=. Exact match.
func (h *Handler) ServeSearchByName(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	name := r.URL.Query().Get("name")
	if name == "" {
		apperrors.Write(w, h.Log, apperrors.MissingRequirement("Name parameter is required"))
		return
	}

	courses, err := h.Svc.ByName(ctx, name)
	if err != nil {
		apperrors.Write(w, h.Log, err)
		return
	}

	writeJSON(w, http.StatusOK, courses)
}

// ServeFilterByDates handles GET /courses/dates?startDate=&endDate=.
// Both bounds are optional; each applies only when supplied. The filter
// returns active courses whose own start/end fall within the bounds.
func (h *Handler) ServeFilterByDates(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	filter := coursestore.DateRange{
		StartDate: r.URL.Query().Get("startDate"),
		EndDate:   r.URL.Query().Get("endDate"),
	}

	courses, err := h.Svc.FilterByDates(ctx, filter)
	if err != nil {
		apperrors.Write(w, h.Log, err)
		return
	}

	writeJSON(w, http.StatusOK, courses)
}

// ServeByID handles GET /courses/{id}. Tombstoned courses resolve here
// with isDeleted set.
func (h *Handler) ServeByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	c, err := h.Svc.ByID(ctx, chi.URLParam(r, "id"))
	if err != nil {
		apperrors.Write(w, h.Log, err)
		return
	}

	writeJSON(w, http.StatusOK, c)
}
