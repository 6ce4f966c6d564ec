package apperrors_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/rosterhub/internal/app/system/apperrors"
	"go.uber.org/zap"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *apperrors.Error
		wantStatus int
	}{
		{"internal", apperrors.Internal("boom"), http.StatusInternalServerError},
		{"not found", apperrors.NotFound("gone"), http.StatusNotFound},
		{"missing requirement", apperrors.MissingRequirement("need more"), http.StatusBadRequest},
		{"duplicate", apperrors.Duplicate("already there"), http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.StatusCode != tt.wantStatus {
				t.Errorf("StatusCode: got %d, want %d", tt.err.StatusCode, tt.wantStatus)
			}
			if tt.err.Error() != tt.err.Message {
				t.Errorf("Error(): got %q, want %q", tt.err.Error(), tt.err.Message)
			}
		})
	}
}

func TestPredicates(t *testing.T) {
	if !apperrors.IsNotFound(apperrors.NotFound("x")) {
		t.Error("IsNotFound should match a NotFound error")
	}
	if apperrors.IsNotFound(apperrors.Duplicate("x")) {
		t.Error("IsNotFound should not match a Duplicate error")
	}
	if apperrors.IsDuplicate(errors.New("plain")) {
		t.Error("IsDuplicate should not match a plain error")
	}

	wrapped := fmt.Errorf("saving student: %w", apperrors.Duplicate("taken"))
	if !apperrors.IsDuplicate(wrapped) {
		t.Error("IsDuplicate should see through wrapping")
	}
}

func TestAs(t *testing.T) {
	e := apperrors.As(fmt.Errorf("outer: %w", apperrors.MissingRequirement("phone required")))
	if e == nil {
		t.Fatal("As returned nil for a wrapped taxonomy error")
	}
	if e.Message != "phone required" {
		t.Errorf("Message: got %q, want %q", e.Message, "phone required")
	}

	if apperrors.As(errors.New("plain")) != nil {
		t.Error("As should return nil for a non-taxonomy error")
	}
}

func TestWrite_TaxonomyError(t *testing.T) {
	rec := httptest.NewRecorder()
	apperrors.Write(rec, zap.NewNop(), apperrors.NotFound("Student Not Found"))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusNotFound)
	}

	var body struct {
		Error struct {
			Message    string `json:"message"`
			StatusCode int    `json:"statusCode"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.Error.Message != "Student Not Found" {
		t.Errorf("message: got %q, want %q", body.Error.Message, "Student Not Found")
	}
	if body.Error.StatusCode != http.StatusNotFound {
		t.Errorf("statusCode: got %d, want %d", body.Error.StatusCode, http.StatusNotFound)
	}
}

func TestWrite_UnknownErrorBecomesInternal(t *testing.T) {
	rec := httptest.NewRecorder()
	apperrors.Write(rec, zap.NewNop(), errors.New("driver exploded"))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusInternalServerError)
	}

	var body struct {
		Error struct {
			Message    string `json:"message"`
			StatusCode int    `json:"statusCode"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.Error.Message != "Internal Server Error" {
		t.Errorf("message: got %q, want %q", body.Error.Message, "Internal Server Error")
	}
}
