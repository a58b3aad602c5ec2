package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	schoolModel "schools24_backend/internals/features/schools/school/model"
	userModel "schools24_backend/internals/features/users/user/model"
)

func setupApp(t *testing.T, name string) (*fiber.App, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&schoolModel.SchoolModel{}, &userModel.UserModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	ctl := NewSchoolController(db)
	app := fiber.New()
	dev := app.Group("/api/developer")
	dev.Get("/overview", ctl.Overview)
	dev.Get("/schools/export", ctl.ExportCSV)
	dev.Get("/schools", ctl.ListSchools)
	dev.Post("/schools", ctl.CreateSchool)
	dev.Get("/schools/:id/locks", ctl.GetLocks)
	dev.Put("/schools/:id/locks", ctl.UpdateLocks)
	dev.Get("/schools/:id/users", ctl.ListSchoolUsers)
	dev.Post("/schools/:id/users", ctl.CreateSchoolUser)
	dev.Post("/schools/:id/provision-admin", ctl.ProvisionAdmin)
	return app, db
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
	if len(raw) > 0 && strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(raw, &out); err != nil {
			t.Fatalf("unmarshal %q: %v", raw, err)
		}
	}
	return resp, out
}

func TestCreateSchoolAndDuplicateCode(t *testing.T) {
	app, _ := setupApp(t, t.Name())

	resp, body := doJSON(t, app, http.MethodPost, "/api/developer/schools", fiber.Map{
		"name": "Green Valley", "code": "GV", "city": "Pune",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create school status %d: %v", resp.StatusCode, body)
	}

	resp, body = doJSON(t, app, http.MethodPost, "/api/developer/schools", fiber.Map{
		"name": "Green Valley Copy", "code": "GV",
	})
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 got %d: %v", resp.StatusCode, body)
	}
	if body["error_code"].(string) != "CONFLICT" {
		t.Fatalf("expected CONFLICT got %v", body["error_code"])
	}

	// Missing code fails validation.
	resp, _ = doJSON(t, app, http.MethodPost, "/api/developer/schools", fiber.Map{
		"name": "No Code",
	})
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 got %d", resp.StatusCode)
	}
}

func TestListSchoolsSearchAndPaging(t *testing.T) {
	app, db := setupApp(t, t.Name())

	for i := 0; i < 12; i++ {
		s := schoolModel.SchoolModel{Code: fmt.Sprintf("SCH-%02d", i), Name: fmt.Sprintf("School %02d", i)}
		if err := db.Create(&s).Error; err != nil {
			t.Fatalf("seed school %d: %v", i, err)
		}
	}

	resp, body := doJSON(t, app, http.MethodGet, "/api/developer/schools?page=1&pageSize=10", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list status %d: %v", resp.StatusCode, body)
	}
	data := body["data"].(map[string]any)
	if got := len(data["schools"].([]any)); got != 10 {
		t.Fatalf("expected 10 on first page got %d", got)
	}
	if data["total"].(float64) != 12 {
		t.Fatalf("expected total 12 got %v", data["total"])
	}

	resp, body = doJSON(t, app, http.MethodGet, "/api/developer/schools?q=sch-03", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("search status %d: %v", resp.StatusCode, body)
	}
	data = body["data"].(map[string]any)
	if got := len(data["schools"].([]any)); got != 1 {
		t.Fatalf("expected 1 match got %d", got)
	}
}

func TestProvisioningLocksBlockCreation(t *testing.T) {
	app, db := setupApp(t, t.Name())

	sch := schoolModel.SchoolModel{Code: "S1", Name: "School One"}
	if err := db.Create(&sch).Error; err != nil {
		t.Fatalf("seed school: %v", err)
	}
	base := "/api/developer/schools/" + sch.ID.String()

	// Lock student creation.
	resp, body := doJSON(t, app, http.MethodPut, base+"/locks", fiber.Map{
		"lockTeacherCreation": false, "lockStudentCreation": true,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update locks status %d: %v", resp.StatusCode, body)
	}

	resp, body = doJSON(t, app, http.MethodGet, base+"/locks", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get locks status %d: %v", resp.StatusCode, body)
	}
	data := body["data"].(map[string]any)
	if data["lockStudentCreation"].(bool) != true || data["lockTeacherCreation"].(bool) != false {
		t.Fatalf("locks mismatch: %v", data)
	}

	// Student creation is now blocked.
	resp, body = doJSON(t, app, http.MethodPost, base+"/users", fiber.Map{
		"name": "Asha", "email": "asha@example.com", "userId": "STU-1", "password": "secret1", "role": "student",
	})
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 for locked student creation got %d: %v", resp.StatusCode, body)
	}

	// Teachers still go through.
	resp, body = doJSON(t, app, http.MethodPost, base+"/users", fiber.Map{
		"name": "Ravi", "email": "ravi@example.com", "userId": "TCH-1", "password": "secret1", "role": "teacher",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected teacher created got %d: %v", resp.StatusCode, body)
	}

	// Duplicate email is rejected.
	resp, body = doJSON(t, app, http.MethodPost, base+"/users", fiber.Map{
		"name": "Ravi Again", "email": "ravi@example.com", "userId": "TCH-2", "password": "secret1", "role": "teacher",
	})
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate email got %d: %v", resp.StatusCode, body)
	}
}

func TestProvisionAdminForcesRoleAndHashesPassword(t *testing.T) {
	app, db := setupApp(t, t.Name())

	sch := schoolModel.SchoolModel{Code: "S1", Name: "School One"}
	if err := db.Create(&sch).Error; err != nil {
		t.Fatalf("seed school: %v", err)
	}

	resp, body := doJSON(t, app, http.MethodPost, "/api/developer/schools/"+sch.ID.String()+"/provision-admin", fiber.Map{
		"name": "Head", "email": "head@example.com", "userId": "ADM-1", "password": "secret1", "role": "student",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("provision admin status %d: %v", resp.StatusCode, body)
	}
	user := body["data"].(map[string]any)["user"].(map[string]any)
	if user["role"].(string) != "admin" {
		t.Fatalf("expected forced admin role got %v", user["role"])
	}

	var stored userModel.UserModel
	if err := db.First(&stored, "email = ?", "head@example.com").Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if stored.Password == "secret1" {
		t.Fatalf("password stored in plaintext")
	}
	if !stored.CheckPassword("secret1") {
		t.Fatalf("stored hash does not verify")
	}
}

func TestExportCSV(t *testing.T) {
	app, db := setupApp(t, t.Name())

	s := schoolModel.SchoolModel{Code: "GV", Name: "Green Valley", City: "Pune"}
	if err := db.Create(&s).Error; err != nil {
		t.Fatalf("seed school: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/developer/schools/export", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("export status %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Fatalf("expected text/csv got %q", ct)
	}
	raw, _ := io.ReadAll(resp.Body)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 row got %d lines", len(lines))
	}
	if !strings.Contains(lines[1], "Green Valley") || !strings.Contains(lines[1], "GV") {
		t.Fatalf("row missing fields: %q", lines[1])
	}
}
