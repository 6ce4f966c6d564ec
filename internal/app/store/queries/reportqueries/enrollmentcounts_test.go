package reportqueries_test

import (
	"testing"

	"github.com/dalemusser/rosterhub/internal/app/store/queries/reportqueries"
	studentstore "github.com/dalemusser/rosterhub/internal/app/store/students"
	"github.com/dalemusser/rosterhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCountRegisteredPerCourse(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	students := studentstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	courseA := primitive.NewObjectID().Hex()
	courseB := primitive.NewObjectID().Hex()
	courseC := primitive.NewObjectID().Hex()

	fixtures.CreateStudentWithCourses(ctx, "Both Courses", "0110110110", []string{courseA, courseB})
	fixtures.CreateStudentWithCourses(ctx, "Only A", "0220220220", []string{courseA})

	gone := fixtures.CreateStudentWithCourses(ctx, "Deleted In A", "0330330330", []string{courseA})
	if _, err := students.Delete(ctx, gone.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	counts, err := reportqueries.CountRegisteredPerCourse(ctx, db, []string{courseA, courseB, courseC})
	if err != nil {
		t.Fatalf("CountRegisteredPerCourse failed: %v", err)
	}

	if got := counts[courseA]; got != 2 {
		t.Errorf("course A: got %d, want 2", got)
	}
	if got := counts[courseB]; got != 1 {
		t.Errorf("course B: got %d, want 1", got)
	}
	if got := counts[courseC]; got != 0 {
		t.Errorf("course C: got %d, want 0", got)
	}
}

func TestCountRegisteredPerCourse_NoCourses(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	counts, err := reportqueries.CountRegisteredPerCourse(ctx, db, nil)
	if err != nil {
		t.Fatalf("CountRegisteredPerCourse failed: %v", err)
	}
	if len(counts) != 0 {
		t.Errorf("got %d entries, want 0", len(counts))
	}
}
