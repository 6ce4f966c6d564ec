package students_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/rosterhub/internal/app/features/students"
	"github.com/dalemusser/rosterhub/internal/domain/models"
	"github.com/dalemusser/rosterhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newRouter(t *testing.T) (http.Handler, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	h := students.NewHandler(db, zap.NewNop())
	return students.Routes(h), db
}

type errorBody struct {
	Error struct {
		Message    string `json:"message"`
		StatusCode int    `json:"statusCode"`
	} `json:"error"`
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding error body: %v", err)
	}
	return body
}

func TestHandleCreate(t *testing.T) {
	router, _ := newRouter(t)

	body := `{"fullNameEn":"Sok Dara","fullNameKh":"សុខ ដារ៉ា","dateOfBirth":"2001-04-15","gender":"Male","phoneNumber":"0123456789"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want %d (body %s)", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var resp struct {
		Message string         `json:"message"`
		Data    models.Student `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Message != "Student created successfully" {
		t.Errorf("message: got %q, want %q", resp.Message, "Student created successfully")
	}
	if resp.Data.FullNameEn != "Sok Dara" {
		t.Errorf("fullNameEn: got %q, want %q", resp.Data.FullNameEn, "Sok Dara")
	}
	if resp.Data.ID == primitive.NilObjectID {
		t.Error("expected assigned ID in response")
	}
}

func TestHandleCreate_DuplicatePhone(t *testing.T) {
	router, db := newRouter(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateStudent(ctx, "First One", "0123456789")

	body := `{"fullNameEn":"Second One","phoneNumber":"0123456789"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusConflict)
	}
	if got := decodeError(t, rec).Error.Message; got != "Student Already Exist" {
		t.Errorf("message: got %q, want %q", got, "Student Already Exist")
	}
}

func TestHandleCreate_MalformedBody(t *testing.T) {
	router, _ := newRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestServeList(t *testing.T) {
	router, db := newRouter(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateStudent(ctx, "Active", "0101010101")
	fixtures.CreateDeletedStudent(ctx, "Gone", "0202020202")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	var list []models.Student
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(list) != 1 || list[0].FullNameEn != "Active" {
		t.Errorf("unexpected listing: %+v", list)
	}
}

func TestServeList_Empty(t *testing.T) {
	router, _ := newRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusNotFound)
	}
	if got := decodeError(t, rec).Error.Message; got != "Student Not Found" {
		t.Errorf("message: got %q, want %q", got, "Student Not Found")
	}
}

func TestServeSearchByName(t *testing.T) {
	router, db := newRouter(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateStudent(ctx, "Sok Dara", "0303030303")

	req := httptest.NewRequest(http.MethodGet, "/search?name=Sok+Dara", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d (body %s)", rec.Code, http.StatusOK, rec.Body.String())
	}
	var list []models.Student
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("got %d students, want 1", len(list))
	}
}

func TestServeSearchByPhone(t *testing.T) {
	router, db := newRouter(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateStudent(ctx, "Phone Holder", "0707070707")

	req := httptest.NewRequest(http.MethodGet, "/search?phone=0707070707", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d (body %s)", rec.Code, http.StatusOK, rec.Body.String())
	}
	var st models.Student
	if err := json.Unmarshal(rec.Body.Bytes(), &st); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if st.FullNameEn != "Phone Holder" {
		t.Errorf("fullNameEn: got %q, want %q", st.FullNameEn, "Phone Holder")
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/search?phone=0000000000", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown phone status: got %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestServeSearchByName_MissingParam(t *testing.T) {
	router, _ := newRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/search", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestServeByID_FindsTombstone(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := students.NewHandler(db, zap.NewNop())
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	st := fixtures.CreateDeletedStudent(ctx, "Tombstoned", "0808080808")

	req := testutil.WithChiURLParam(testutil.NewRequest(http.MethodGet, "/"+st.ID.Hex()), "id", st.ID.Hex())
	rec := httptest.NewRecorder()
	h.ServeByID(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d (body %s)", rec.Code, http.StatusOK, rec.Body.String())
	}
	var got models.Student
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !got.IsDeleted {
		t.Error("expected tombstoned student to resolve by ID with isDeleted set")
	}
}

func TestHandleUpdate_MalformedID(t *testing.T) {
	router, _ := newRouter(t)

	body := `{"fullNameEn":"Anyone","phoneNumber":"0123456789"}`
	req := httptest.NewRequest(http.MethodPut, "/not-a-hex-id", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusNotFound)
	}
	if got := decodeError(t, rec).Error.Message; got != "Invalid Student ID To Update" {
		t.Errorf("message: got %q, want %q", got, "Invalid Student ID To Update")
	}
}

func TestHandleDelete(t *testing.T) {
	router, db := newRouter(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	st := fixtures.CreateStudent(ctx, "To Delete", "0404040404")

	req := httptest.NewRequest(http.MethodDelete, "/"+st.ID.Hex(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d (body %s)", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp struct {
		Message string         `json:"message"`
		Data    models.Student `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Message != "Delete Successfully" {
		t.Errorf("message: got %q, want %q", resp.Message, "Delete Successfully")
	}
	if !resp.Data.IsDeleted {
		t.Error("expected tombstoned student in response")
	}
}

func TestEnrollAndUnenroll(t *testing.T) {
	router, db := newRouter(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	st := fixtures.CreateStudent(ctx, "Enrollee", "0505050505")
	courseID := primitive.NewObjectID().Hex()
	path := "/" + st.ID.Hex() + "/courses/" + courseID

	req := httptest.NewRequest(http.MethodPost, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("enroll status: got %d, want %d (body %s)", rec.Code, http.StatusCreated, rec.Body.String())
	}

	// Enrolling twice keeps a single membership.
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, nil))
	if rec.Code != http.StatusCreated {
		t.Fatalf("repeat enroll status: got %d, want %d", rec.Code, http.StatusCreated)
	}
	var resp struct {
		Data models.Student `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Data.Courses) != 1 {
		t.Errorf("courses after repeat enroll: got %v, want exactly one entry", resp.Data.Courses)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, path, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("unenroll status: got %d, want %d", rec.Code, http.StatusOK)
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Data.Courses) != 0 {
		t.Errorf("courses after unenroll: got %v, want none", resp.Data.Courses)
	}
}

func TestServeReport(t *testing.T) {
	router, db := newRouter(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	st := fixtures.CreateStudentWithCourses(ctx, "Reported", "0606060606", []string{
		primitive.NewObjectID().Hex(),
		primitive.NewObjectID().Hex(),
	})

	req := httptest.NewRequest(http.MethodGet, "/"+st.ID.Hex()+"/report", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d (body %s)", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp struct {
		Message string `json:"message"`
		Data    struct {
			FullNameEn      string `json:"fullNameEn"`
			NumberOfCourses int    `json:"numberOfCourses"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Message != "Student Report" {
		t.Errorf("message: got %q, want %q", resp.Message, "Student Report")
	}
	if resp.Data.NumberOfCourses != 2 {
		t.Errorf("numberOfCourses: got %d, want 2", resp.Data.NumberOfCourses)
	}
}
