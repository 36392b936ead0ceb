package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kosdesign/game-center/internal/config"
	"github.com/kosdesign/game-center/internal/models"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	err = db.AutoMigrate(&models.GameParent{}, &models.GameVersion{}, &models.ChangelogEntry{}, &models.Admin{})
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := config.Config{
		AppEnv:    "test",
		JWTSecret: "test-secret",
		JWTTTL:    time.Hour,
	}
	config.Current = cfg

	admin := &models.Admin{
		AdminID:  uuid.NewString(),
		Username: "root",
		Email:    "root@example.com",
		Role:     models.RoleAdmin,
	}
	if err := admin.SetPassword("secret123"); err != nil {
		t.Fatal(err)
	}
	if err := db.Create(admin).Error; err != nil {
		t.Fatalf("seed admin: %v", err)
	}

	return New(db, cfg, zap.NewNop()), db
}

func request(t *testing.T, app *fiber.App, method, path string, body interface{}, bearer string) (*http.Response, Envelope) {
	t.Helper()
	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		buf = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	var env Envelope
	raw, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil {
			t.Fatalf("%s %s: decode %q: %v", method, path, raw, err)
		}
	}
	return resp, env
}

// Envelope mirrors the handlers' response shape for decoding.
type Envelope struct {
	Success   bool            `json:"success"`
	Data      json.RawMessage `json:"data"`
	Message   string          `json:"message"`
	Error     string          `json:"error"`
	Timestamp string          `json:"timestamp"`
}

func login(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp, env := request(t, app, http.MethodPost, "/auth/login", fiber.Map{
		"username": "root",
		"password": "secret123",
	}, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login: status %d, body %s", resp.StatusCode, env.Message)
	}
	var result struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &result); err != nil || result.Token == "" {
		t.Fatalf("login payload: %s (%v)", env.Data, err)
	}
	return result.Token
}

func gamePayload(gameID, name, version string, port int) fiber.Map {
	return fiber.Map{
		"game_id":          gameID,
		"game_name":        name,
		"game_version":     version,
		"description":      "integration fixture",
		"port_type":        "fixed",
		"port":             port,
		"api_url":          "https://api.example.com/" + gameID,
		"type":             "PROD",
		"server_game_ip":   "10.0.0.1",
		"server_game_type": "UDP",
	}
}

func TestLogin(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := request(t, app, http.MethodPost, "/auth/login", fiber.Map{
		"username": "root",
		"password": "wrong",
	}, "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("bad password: status %d", resp.StatusCode)
	}

	resp, _ = request(t, app, http.MethodPost, "/auth/login", fiber.Map{"username": "root"}, "")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("missing password: status %d", resp.StatusCode)
	}

	login(t, app)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app, _ := newTestApp(t)

	resp, env := request(t, app, http.MethodPost, "/games/", gamePayload("g1", "G", "1.0", 3000), "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("anonymous create: status %d", resp.StatusCode)
	}
	if env.Success {
		t.Fatal("failure envelope reports success")
	}

	resp, _ = request(t, app, http.MethodPost, "/games/", gamePayload("g1", "G", "1.0", 3000), "not-a-jwt")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("garbage token: status %d", resp.StatusCode)
	}
}

func TestGameCRUDOverHTTP(t *testing.T) {
	app, _ := newTestApp(t)
	jwt := login(t, app)

	resp, env := request(t, app, http.MethodPost, "/games/", gamePayload("g1", "Game One", "1.0", 3000), jwt)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create: status %d, %s", resp.StatusCode, env.Message)
	}
	var game models.Game
	if err := json.Unmarshal(env.Data, &game); err != nil {
		t.Fatal(err)
	}
	if game.GameID != "g1" || game.APIToken == "" {
		t.Fatalf("created game: %+v", game)
	}

	// duplicate version conflicts
	resp, _ = request(t, app, http.MethodPost, "/games/", gamePayload("g1", "Game One", "1.0", 3000), jwt)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("duplicate: status %d", resp.StatusCode)
	}

	resp, env = request(t, app, http.MethodGet, "/games/g1", nil, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get: status %d", resp.StatusCode)
	}

	resp, env = request(t, app, http.MethodPut, "/games/g1?version=1.0", fiber.Map{"description": "changed"}, jwt)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update: status %d, %s", resp.StatusCode, env.Message)
	}
	if err := json.Unmarshal(env.Data, &game); err != nil {
		t.Fatal(err)
	}
	if game.Description != "changed" {
		t.Fatalf("update not applied: %+v", game)
	}

	// the version query parameter is mandatory on the legacy update
	resp, _ = request(t, app, http.MethodPut, "/games/g1", fiber.Map{"description": "x"}, jwt)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("update without version: status %d", resp.StatusCode)
	}

	resp, _ = request(t, app, http.MethodGet, "/games/", nil, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list: status %d", resp.StatusCode)
	}

	resp, _ = request(t, app, http.MethodDelete, "/games/g1", nil, jwt)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete: status %d", resp.StatusCode)
	}
	resp, _ = request(t, app, http.MethodDelete, "/games/g1", nil, jwt)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("second delete: status %d", resp.StatusCode)
	}
}

func TestVersionRoutes(t *testing.T) {
	app, _ := newTestApp(t)
	jwt := login(t, app)

	if resp, _ := request(t, app, http.MethodPost, "/games/", gamePayload("g1", "G", "1.0", 3000), jwt); resp.StatusCode != http.StatusCreated {
		t.Fatalf("fixture: status %d", resp.StatusCode)
	}

	payload := gamePayload("g1", "", "2.0", 3001)
	delete(payload, "game_id")
	delete(payload, "game_name")
	resp, env := request(t, app, http.MethodPost, "/games/parents/g1/versions", payload, jwt)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create version: status %d, %s", resp.StatusCode, env.Message)
	}

	resp, env = request(t, app, http.MethodGet, "/games/parents/g1/versions", nil, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list versions: status %d", resp.StatusCode)
	}
	var versions []models.GameVersion
	if err := json.Unmarshal(env.Data, &versions); err != nil {
		t.Fatal(err)
	}
	if len(versions) != 2 {
		t.Fatalf("versions: %d, want 2", len(versions))
	}

	resp, _ = request(t, app, http.MethodGet, "/games/parents/g1/versions/2.0", nil, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get version: status %d", resp.StatusCode)
	}

	resp, env = request(t, app, http.MethodGet, "/games/parents/g1/versions/2.0/changelog", nil, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("version changelog: status %d", resp.StatusCode)
	}
	var entries []models.ChangelogEntry
	if err := json.Unmarshal(env.Data, &entries); err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].ChangeType != models.ChangeTypeCreated {
		t.Fatalf("changelog entries: %+v", entries)
	}
	if entries[0].ChangedBy != "root" {
		t.Fatalf("changed_by = %q, want the authenticated admin", entries[0].ChangedBy)
	}

	resp, _ = request(t, app, http.MethodDelete, "/games/parents/g1/versions/2.0", nil, jwt)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete version: status %d", resp.StatusCode)
	}
	resp, _ = request(t, app, http.MethodGet, "/games/parents/g1/versions/2.0", nil, "")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("deleted version still served: status %d", resp.StatusCode)
	}
}

func TestLookupEndpoint(t *testing.T) {
	app, db := newTestApp(t)
	jwt := login(t, app)

	if resp, _ := request(t, app, http.MethodPost, "/games/", gamePayload("g1", "G", "1.0", 3000), jwt); resp.StatusCode != http.StatusCreated {
		t.Fatal("fixture create failed")
	}
	var parent models.GameParent
	if err := db.Where("game_id = ?", "g1").First(&parent).Error; err != nil {
		t.Fatal(err)
	}
	var version models.GameVersion
	if err := db.Where("game_id = ?", "g1").First(&version).Error; err != nil {
		t.Fatal(err)
	}

	lookup := func(token string, versionID uint) (*http.Response, Envelope) {
		req := httptest.NewRequest(http.MethodPost, "/game/info",
			bytes.NewReader([]byte(fmt.Sprintf(`{"version_id":%d}`, versionID))))
		req.Header.Set("Content-Type", "application/json")
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		resp, err := app.Test(req, -1)
		if err != nil {
			t.Fatal(err)
		}
		var env Envelope
		raw, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		json.Unmarshal(raw, &env)
		return resp, env
	}

	// happy path
	resp, env := lookup(parent.APIToken, version.ID)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("valid lookup: status %d, %s", resp.StatusCode, env.Message)
	}
	var got models.GameVersion
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatal(err)
	}
	if got.GameID != "g1" || got.GameVersion != "1.0" {
		t.Fatalf("lookup payload: %+v", got)
	}

	// missing bearer header
	req := httptest.NewRequest(http.MethodPost, "/game/info", bytes.NewReader([]byte(`{"version_id":1}`)))
	req.Header.Set("Content-Type", "application/json")
	respNoAuth, _ := app.Test(req, -1)
	if respNoAuth.StatusCode != http.StatusUnauthorized {
		t.Fatalf("no auth header: status %d", respNoAuth.StatusCode)
	}

	// missing version_id
	resp, _ = lookup(parent.APIToken, 0)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("missing version_id: status %d", resp.StatusCode)
	}

	// structurally invalid token (no separator)
	resp, _ = lookup("notatoken", version.ID)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("malformed token: status %d", resp.StatusCode)
	}

	// unknown version id
	resp, _ = lookup(parent.APIToken, version.ID+100)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown version: status %d", resp.StatusCode)
	}

	// well-formed token for the wrong game
	resp, _ = lookup("g2.0000000000000000000000000000000000000000000000000000000000000000", version.ID)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("wrong token: status %d", resp.StatusCode)
	}
}

func TestAdminRoutesRoleGate(t *testing.T) {
	app, db := newTestApp(t)

	viewer := &models.Admin{
		AdminID:  uuid.NewString(),
		Username: "viewer",
		Email:    "viewer@example.com",
		Role:     models.RoleViewer,
	}
	if err := viewer.SetPassword("secret123"); err != nil {
		t.Fatal(err)
	}
	if err := db.Create(viewer).Error; err != nil {
		t.Fatal(err)
	}

	resp, env := request(t, app, http.MethodPost, "/auth/login", fiber.Map{
		"username": "viewer",
		"password": "secret123",
	}, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("viewer login: status %d", resp.StatusCode)
	}
	var result struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &result); err != nil {
		t.Fatal(err)
	}

	resp, _ = request(t, app, http.MethodGet, "/admins/", nil, result.Token)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("viewer on /admins: status %d", resp.StatusCode)
	}

	adminJWT := login(t, app)
	resp, _ = request(t, app, http.MethodGet, "/admins/", nil, adminJWT)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("admin on /admins: status %d", resp.StatusCode)
	}

	resp, env = request(t, app, http.MethodPost, "/admins/", fiber.Map{
		"username": "second",
		"email":    "second@example.com",
		"password": "longenough",
		"role":     models.RoleViewer,
	}, adminJWT)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create admin: status %d, %s", resp.StatusCode, env.Message)
	}
}

func TestHealthz(t *testing.T) {
	app, _ := newTestApp(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("healthz: status %d", resp.StatusCode)
	}
}
