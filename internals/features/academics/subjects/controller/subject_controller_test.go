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
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	subjectModel "schools24_backend/internals/features/academics/subjects/model"
)

func setupApp(t *testing.T, name string) *fiber.App {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&subjectModel.SubjectModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	ctl := NewSubjectController(db)
	app := fiber.New()
	app.Get("/api/admin/subjects", ctl.ListSubjects)
	app.Post("/api/admin/subjects", ctl.CreateSubject)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) (*http.Response, map[string]any) {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	out := map[string]any{}
	raw, _ = io.ReadAll(resp.Body)
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &out); err != nil {
			t.Fatalf("unmarshal %q: %v", raw, err)
		}
	}
	return resp, out
}

func TestCreateSubjectUppercasesCode(t *testing.T) {
	app := setupApp(t, t.Name())

	resp, body := postJSON(t, app, "/api/admin/subjects", fiber.Map{
		"name": "Mathematics", "code": " math ",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status %d: %v", resp.StatusCode, body)
	}
	subj := body["data"].(map[string]any)["subject"].(map[string]any)
	if subj["code"].(string) != "MATH" {
		t.Fatalf("expected MATH got %v", subj["code"])
	}

	// Same code in another case conflicts.
	resp, body = postJSON(t, app, "/api/admin/subjects", fiber.Map{
		"name": "Maths Again", "code": "Math",
	})
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 got %d: %v", resp.StatusCode, body)
	}
}
