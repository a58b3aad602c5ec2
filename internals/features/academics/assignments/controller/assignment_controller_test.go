package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"schools24_backend/internals/constants"
	assignModel "schools24_backend/internals/features/academics/assignments/model"
	classModel "schools24_backend/internals/features/academics/classes/model"
	subjectModel "schools24_backend/internals/features/academics/subjects/model"
	userModel "schools24_backend/internals/features/users/user/model"
)

type fixtures struct {
	class   classModel.SchoolClassModel
	subject subjectModel.SubjectModel
	teacher userModel.UserModel
}

func setupApp(t *testing.T, name string) (*fiber.App, *gorm.DB, fixtures) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
		&userModel.UserModel{},
		&classModel.SchoolClassModel{},
		&subjectModel.SubjectModel{},
		&assignModel.ClassSubjectTeacherModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	fx := fixtures{
		class:   classModel.SchoolClassModel{Name: "5A", Grade: "5", Section: "A", MaxStudents: 40, IsActive: true},
		subject: subjectModel.SubjectModel{Name: "Mathematics", Code: "MATH", IsActive: true},
		teacher: userModel.UserModel{
			Name: "Ravi", Email: "ravi@example.com", Password: "hash",
			Role: constants.RoleTeacher, UserID: "TCH-1", IsActive: true,
		},
	}
	for _, m := range []any{&fx.class, &fx.subject, &fx.teacher} {
		if err := db.Create(m).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	ctl := NewAssignmentController(db)
	app := fiber.New()
	app.Get("/api/admin/classes/:id/assignments", ctl.ListForClass)
	app.Put("/api/admin/classes/:id/assign-teacher", ctl.AssignTeacher)
	app.Delete("/api/admin/classes/:id/remove-teacher", ctl.RemoveTeacher)
	return app, db, fx
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var out map[string]any
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &out); err != nil {
			t.Fatalf("unmarshal %q: %v", raw, err)
		}
	}
	return resp, out
}

func TestAssignAndRemoveTeacher(t *testing.T) {
	app, db, fx := setupApp(t, t.Name())
	base := "/api/admin/classes/" + fx.class.ID.String()
	payload := fiber.Map{"teacherId": fx.teacher.ID, "subjectId": fx.subject.ID}

	resp, body := doJSON(t, app, http.MethodPut, base+"/assign-teacher", payload)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("assign status %d: %v", resp.StatusCode, body)
	}

	// Same triple again conflicts.
	resp, body = doJSON(t, app, http.MethodPut, base+"/assign-teacher", payload)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 got %d: %v", resp.StatusCode, body)
	}

	resp, body = doJSON(t, app, http.MethodGet, base+"/assignments", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list status %d: %v", resp.StatusCode, body)
	}
	assignments := body["data"].(map[string]any)["assignments"].([]any)
	if len(assignments) != 1 {
		t.Fatalf("expected 1 assignment got %d", len(assignments))
	}

	resp, body = doJSON(t, app, http.MethodDelete, base+"/remove-teacher", payload)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("remove status %d: %v", resp.StatusCode, body)
	}
	var n int64
	db.Model(&assignModel.ClassSubjectTeacherModel{}).Count(&n)
	if n != 0 {
		t.Fatalf("expected 0 assignments after removal got %d", n)
	}

	// Removing again is a 404.
	resp, body = doJSON(t, app, http.MethodDelete, base+"/remove-teacher", payload)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 got %d: %v", resp.StatusCode, body)
	}
}

func TestAssignTeacherMissingReferences(t *testing.T) {
	app, db, fx := setupApp(t, t.Name())
	base := "/api/admin/classes/" + fx.class.ID.String()

	// Unknown teacher.
	resp, body := doJSON(t, app, http.MethodPut, base+"/assign-teacher", fiber.Map{
		"teacherId": uuid.New(), "subjectId": fx.subject.ID,
	})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown teacher got %d: %v", resp.StatusCode, body)
	}

	// Unknown subject.
	resp, body = doJSON(t, app, http.MethodPut, base+"/assign-teacher", fiber.Map{
		"teacherId": fx.teacher.ID, "subjectId": uuid.New(),
	})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown subject got %d: %v", resp.StatusCode, body)
	}

	// Unknown class.
	resp, body = doJSON(t, app, http.MethodPut, "/api/admin/classes/"+uuid.NewString()+"/assign-teacher", fiber.Map{
		"teacherId": fx.teacher.ID, "subjectId": fx.subject.ID,
	})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown class got %d: %v", resp.StatusCode, body)
	}

	// A student cannot be assigned as a teacher.
	stu := userModel.UserModel{
		Name: "Asha", Email: "asha@example.com", Password: "hash",
		Role: constants.RoleStudent, UserID: "STU-1", IsActive: true,
	}
	if err := db.Create(&stu).Error; err != nil {
		t.Fatalf("seed student: %v", err)
	}
	resp, body = doJSON(t, app, http.MethodPut, base+"/assign-teacher", fiber.Map{
		"teacherId": stu.ID, "subjectId": fx.subject.ID,
	})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for non-teacher got %d: %v", resp.StatusCode, body)
	}
}
