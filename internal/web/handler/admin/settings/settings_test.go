package settings

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/storage"
	"gorm.io/gorm"

	"github.com/brightpage/brightpage/internal/auth"
	"github.com/brightpage/brightpage/internal/config"
	settingcontroller "github.com/brightpage/brightpage/internal/db/controller/setting"
	"github.com/brightpage/brightpage/internal/db/models"
	"github.com/brightpage/brightpage/internal/web/session"
)

// testStorage is a minimal in-memory implementation of storage.Storage for tests.
type testStorage struct {
	mu   sync.RWMutex
	data map[string][]byte
}

var _ storage.Storage = (*testStorage)(nil)

func (s *testStorage) Get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v := s.data[key]
	out := make([]byte, len(v))
	copy(out, v)

	return out, nil
}

func (s *testStorage) Set(key string, val []byte, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data == nil {
		s.data = make(map[string][]byte)
	}

	buf := make([]byte, len(val))
	copy(buf, val)
	s.data[key] = buf

	return nil
}

func (s *testStorage) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)

	return nil
}

func (s *testStorage) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = make(map[string][]byte)

	return nil
}

func (s *testStorage) Close() error { return nil }

type testEnv struct {
	app       *fiber.App
	db        *gorm.DB
	sessionID string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite in-memory db: %v", err)
	}

	if err = db.AutoMigrate(&models.User{}, &models.SiteSetting{}); err != nil {
		t.Fatalf("failed to migrate models: %v", err)
	}

	store := session.NewStore(&testStorage{data: make(map[string][]byte)}, time.Minute)

	app := fiber.New()
	app.Use(auth.ResolveSession(store, db))

	var s Service
	s.Init(app, &config.Config{}, db)

	admin := &models.User{
		Username:   "admin",
		Password:   models.HashPassword("changeme"),
		Active:     true,
		AuthSource: models.AuthSourceLocal,
	}
	if err = db.Create(admin).Error; err != nil {
		t.Fatalf("failed to create admin user: %v", err)
	}

	sessionID, err := session.GenerateSessionID()
	if err != nil {
		t.Fatalf("failed to generate session ID: %v", err)
	}

	if err = store.Write(sessionID, &session.Data{UserID: admin.ID}); err != nil {
		t.Fatalf("failed to write session: %v", err)
	}

	return &testEnv{app: app, db: db, sessionID: sessionID}
}

func (e *testEnv) request(t *testing.T, method, target, body string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}

	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: e.sessionID})

	resp, err := e.app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}

	return resp
}

func TestAdminRoutes_RequireSession(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, Path, nil)

	resp, err := env.app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without session, got %d", resp.StatusCode)
	}
}

func TestList_IncludesNonPublicSettings(t *testing.T) {
	env := newTestEnv(t)

	for _, key := range []string{"site_title", "smtp_password"} {
		if _, err := settingcontroller.Set(env.db, key, "value", ""); err != nil {
			t.Fatalf("failed to seed setting %q: %v", key, err)
		}
	}

	resp := env.request(t, http.MethodGet, Path, "")

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", resp.StatusCode)
	}

	var all []models.SiteSetting
	if err := json.NewDecoder(resp.Body).Decode(&all); err != nil {
		t.Fatalf("failed to decode settings: %v", err)
	}

	if len(all) != 2 {
		t.Fatalf("admin listing must include every setting, got %d", len(all))
	}
}

func TestPut_CreatesAndUpdates(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, http.MethodPut, Path+"/site_title",
		`{"settingValue":"BrightPage","description":"Site title"}`)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", resp.StatusCode)
	}

	var st models.SiteSetting
	if err := json.NewDecoder(resp.Body).Decode(&st); err != nil {
		t.Fatalf("failed to decode setting: %v", err)
	}

	_ = resp.Body.Close()

	if st.SettingKey != "site_title" || st.SettingValue != "BrightPage" {
		t.Fatalf("unexpected setting: %+v", st)
	}

	firstID := st.ID

	// updating the same key keeps the row
	resp = env.request(t, http.MethodPut, Path+"/site_title", `{"settingValue":"New Title"}`)

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(&st); err != nil {
		t.Fatalf("failed to decode setting: %v", err)
	}

	if st.ID != firstID || st.SettingValue != "New Title" {
		t.Fatalf("upsert must keep the row, got %+v", st)
	}
}

func TestPut_Validation(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "missing value", body: `{"description":"no value"}`},
		{name: "malformed body", body: `{broken`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := env.request(t, http.MethodPut, Path+"/site_title", tt.body)

			defer func() {
				_ = resp.Body.Close()
			}()

			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("expected 400 Bad Request, got %d", resp.StatusCode)
			}
		})
	}
}
