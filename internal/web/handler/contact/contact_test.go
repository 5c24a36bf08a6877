package contact

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/brightpage/brightpage/internal/config"
	contactcontroller "github.com/brightpage/brightpage/internal/db/controller/contact"
	"github.com/brightpage/brightpage/internal/db/models"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite in-memory db: %v", err)
	}

	if err = db.AutoMigrate(&models.ContactSubmission{}); err != nil {
		t.Fatalf("failed to migrate models: %v", err)
	}

	app := fiber.New()

	var s Service
	s.Init(app, &config.Config{}, db)

	return app, db
}

func post(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, Path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}

	return resp
}

func TestPost_StoresSubmissionUnread(t *testing.T) {
	app, db := newTestApp(t)

	resp := post(t, app,
		`{"companyName":"Acme","contactName":"Jane","email":"jane@acme.test","projectContent":"We need a website."}`)

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", resp.StatusCode)
	}

	var sub models.ContactSubmission
	if err := json.NewDecoder(resp.Body).Decode(&sub); err != nil {
		t.Fatalf("failed to decode submission: %v", err)
	}

	if sub.CompanyName != "Acme" || sub.Email != "jane@acme.test" {
		t.Fatalf("unexpected submission: %+v", sub)
	}

	if sub.IsRead {
		t.Fatal("new submissions must be stored unread")
	}

	stored, err := contactcontroller.GetAll(db)
	if err != nil {
		t.Fatalf("failed to fetch submissions: %v", err)
	}

	if len(stored) != 1 {
		t.Fatalf("expected 1 stored submission, got %d", len(stored))
	}
}

func TestPost_ClientSuppliedIsReadIgnored(t *testing.T) {
	app, db := newTestApp(t)

	resp := post(t, app,
		`{"companyName":"Acme","contactName":"Jane","email":"jane@acme.test","projectContent":"Hi","isRead":true}`)
	_ = resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", resp.StatusCode)
	}

	stored, err := contactcontroller.GetAll(db)
	if err != nil {
		t.Fatalf("failed to fetch submissions: %v", err)
	}

	if len(stored) != 1 || stored[0].IsRead {
		t.Fatal("isRead from the client must be ignored")
	}
}

func TestPost_Validation(t *testing.T) {
	app, db := newTestApp(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "missing company", body: `{"contactName":"Jane","email":"jane@acme.test","projectContent":"Hi"}`},
		{name: "missing contact", body: `{"companyName":"Acme","email":"jane@acme.test","projectContent":"Hi"}`},
		{name: "missing email", body: `{"companyName":"Acme","contactName":"Jane","projectContent":"Hi"}`},
		{name: "invalid email", body: `{"companyName":"Acme","contactName":"Jane","email":"not-an-email","projectContent":"Hi"}`},
		{name: "missing content", body: `{"companyName":"Acme","contactName":"Jane","email":"jane@acme.test"}`},
		{name: "malformed body", body: `{broken`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := post(t, app, tt.body)

			defer func() {
				_ = resp.Body.Close()
			}()

			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("expected 400 Bad Request, got %d", resp.StatusCode)
			}
		})
	}

	stored, err := contactcontroller.GetAll(db)
	if err != nil {
		t.Fatalf("failed to fetch submissions: %v", err)
	}

	if len(stored) != 0 {
		t.Fatalf("invalid submissions must not be stored, got %d", len(stored))
	}
}
