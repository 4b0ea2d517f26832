package admin

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/hospkit/hospkit/internal/platform/storage"
)

func newTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store := storage.New(afero.NewMemMapFs(), "/data", zerolog.Nop())
	if err := store.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return store
}

func TestLogRepository_CapsAtHundred(t *testing.T) {
	ctx := context.Background()
	logs := NewLogRepository(newTestStore(t))

	for i := 0; i < 150; i++ {
		_, err := logs.Append(ctx, SystemLog{
			UserID:   "1",
			UserName: "Admin User",
			Action:   fmt.Sprintf("action-%d", i),
			Resource: "patients",
			Status:   "success",
		})
		if err != nil {
			t.Fatalf("Append %d: %v", i, err)
		}
	}

	all, err := logs.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(all) != 100 {
		t.Fatalf("expected 100 entries after cap, got %d", len(all))
	}
	if all[0].Action != "action-50" {
		t.Errorf("expected oldest surviving entry action-50, got %s", all[0].Action)
	}
	if all[99].Action != "action-149" {
		t.Errorf("expected newest entry action-149, got %s", all[99].Action)
	}
}

func TestLogRepository_StampsEntries(t *testing.T) {
	ctx := context.Background()
	logs := NewLogRepository(newTestStore(t))

	created, err := logs.Append(ctx, SystemLog{UserID: "1", Action: "login", Status: "success"})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if created.ID == "" || created.Timestamp.IsZero() {
		t.Errorf("expected server-assigned id and timestamp, got %+v", created)
	}
}

func TestUserRepository_CreateDefaultsPermissions(t *testing.T) {
	ctx := context.Background()
	users := NewUserRepository(newTestStore(t))

	created, err := users.Create(ctx, SystemUser{Name: "Nina", Email: "nina@hospital.com", Role: RoleNurse, Status: "active"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Permissions == nil || len(created.Permissions) != 0 {
		t.Errorf("expected empty permission list, got %#v", created.Permissions)
	}
}

func TestHandler_Health(t *testing.T) {
	store := newTestStore(t)
	h := NewHandler(NewUserRepository(store), NewLogRepository(store), store)
	e := echo.New()
	h.RegisterRoutes(e.Group("/api"))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var out struct {
		Success bool         `json:"success"`
		Data    SystemHealth `json:"data"`
	}
	json.Unmarshal(rec.Body.Bytes(), &out)
	if !out.Success {
		t.Fatalf("bad envelope: %s", rec.Body.String())
	}
	if out.Data.Status != "healthy" || out.Data.API != "operational" {
		t.Errorf("unexpected health summary: %+v", out.Data)
	}
	if out.Data.Database != "connected" {
		t.Errorf("expected connected database, got %s", out.Data.Database)
	}
	// Seed data ships one active admin account.
	if out.Data.ActiveUsers != 1 {
		t.Errorf("expected 1 active user, got %d", out.Data.ActiveUsers)
	}
	if out.Data.StorageUsed < 0 || out.Data.StorageUsed > out.Data.Storage {
		t.Errorf("storage usage out of range: %v/%v", out.Data.StorageUsed, out.Data.Storage)
	}
}

func TestHandler_AppendAndListLogs(t *testing.T) {
	store := newTestStore(t)
	h := NewHandler(NewUserRepository(store), NewLogRepository(store), store)
	e := echo.New()
	h.RegisterRoutes(e.Group("/api"))

	body := `{"userId":"1","userName":"Admin User","action":"update","resource":"patients","status":"success"}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/logs", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/admin/logs", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	var out struct {
		Success bool        `json:"success"`
		Data    []SystemLog `json:"data"`
	}
	json.Unmarshal(rec.Body.Bytes(), &out)
	if len(out.Data) != 1 || out.Data[0].Action != "update" {
		t.Errorf("unexpected log list: %s", rec.Body.String())
	}
}
