package handler_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/AkhilKonduru1/Eventure/internal/config"
	"github.com/AkhilKonduru1/Eventure/internal/database"
	"github.com/AkhilKonduru1/Eventure/internal/models"
	"github.com/AkhilKonduru1/Eventure/internal/router"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := &config.Config{
		Session: config.SessionConfig{
			Secret:      "test-secret",
			ExpireHours: 1,
		},
	}
	return router.SetupRouter(cfg, db), db
}

// do issues a JSON request, optionally carrying a session cookie.
func do(t *testing.T, r *gin.Engine, method, path, body, cookie string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response %q: %v", w.Body.String(), err)
	}
	return body
}

// sessionCookie extracts the session cookie pair from a signup/login reply.
func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Value != "" {
			return c.Name + "=" + c.Value
		}
	}
	t.Fatal("no session cookie set")
	return ""
}

func signup(t *testing.T, r *gin.Engine, name, email, location string) string {
	t.Helper()
	w := do(t, r, http.MethodPost, "/auth/signup",
		fmt.Sprintf(`{"name":%q,"email":%q,"password":"secretpw","location":%q}`, name, email, location), "")
	if w.Code != http.StatusOK {
		t.Fatalf("signup status = %d: %s", w.Code, w.Body.String())
	}
	return sessionCookie(t, w)
}

func TestHealth(t *testing.T) {
	r, _ := newTestServer(t)

	w := do(t, r, http.MethodGet, "/health", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if body := decode(t, w); body["status"] != "healthy" {
		t.Errorf("status field = %v, want healthy", body["status"])
	}
}

func TestSignupAndLogin(t *testing.T) {
	r, _ := newTestServer(t)

	w := do(t, r, http.MethodPost, "/auth/signup",
		`{"name":"Alice","email":"alice@example.com","password":"secretpw","location":"Paris"}`, "")
	if w.Code != http.StatusOK {
		t.Fatalf("signup status = %d: %s", w.Code, w.Body.String())
	}
	body := decode(t, w)
	user, ok := body["user"].(map[string]any)
	if !ok {
		t.Fatalf("signup body has no user object: %v", body)
	}
	if user["email"] != "alice@example.com" || user["location"] != "Paris" {
		t.Errorf("user = %v", user)
	}
	sessionCookie(t, w)

	// login with the same credentials succeeds
	w = do(t, r, http.MethodPost, "/auth/login",
		`{"email":"alice@example.com","password":"secretpw"}`, "")
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d: %s", w.Code, w.Body.String())
	}

	// login with a wrong password is rejected
	w = do(t, r, http.MethodPost, "/auth/login",
		`{"email":"alice@example.com","password":"wrongpw"}`, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("bad login status = %d, want 401", w.Code)
	}
	if body := decode(t, w); body["error"] == nil {
		t.Error("failure body missing error key")
	}
}

func TestSignupMissingFields(t *testing.T) {
	r, _ := newTestServer(t)

	cases := []string{
		`{}`,
		`{"name":"Alice"}`,
		`{"name":"Alice","email":"a@example.com","password":"pw","location":""}`,
	}
	for _, body := range cases {
		w := do(t, r, http.MethodPost, "/auth/signup", body, "")
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want 400", body, w.Code)
		}
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	r, _ := newTestServer(t)
	signup(t, r, "Alice", "alice@example.com", "Paris")

	w := do(t, r, http.MethodPost, "/auth/signup",
		`{"name":"Other","email":"alice@example.com","password":"otherpw","location":"Lyon"}`, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if body := decode(t, w); body["error"] != "Email already registered" {
		t.Errorf("error = %v", body["error"])
	}
}

func TestMe(t *testing.T) {
	r, db := newTestServer(t)

	// unauthenticated
	w := do(t, r, http.MethodGet, "/auth/me", "", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}

	cookie := signup(t, r, "Alice", "alice@example.com", "Paris")

	w = do(t, r, http.MethodGet, "/auth/me", "", cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	user := decode(t, w)["user"].(map[string]any)
	if user["name"] != "Alice" {
		t.Errorf("name = %v, want Alice", user["name"])
	}

	// session outliving the row yields 404
	if err := db.Where("email = ?", "alice@example.com").Delete(&models.User{}).Error; err != nil {
		t.Fatalf("delete user: %v", err)
	}
	w = do(t, r, http.MethodGet, "/auth/me", "", cookie)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestLogout(t *testing.T) {
	r, _ := newTestServer(t)

	// logout without a session is a no-op success
	w := do(t, r, http.MethodPost, "/auth/logout", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if body := decode(t, w); body["success"] != true {
		t.Errorf("body = %v", body)
	}
}

func TestDiscover(t *testing.T) {
	r, _ := newTestServer(t)

	// auth required
	w := do(t, r, http.MethodPost, "/adventures/discover", `{}`, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}

	cookie := signup(t, r, "Alice", "alice@example.com", "Paris")

	// explicit count
	w = do(t, r, http.MethodPost, "/adventures/discover", `{"count":3}`, cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	advs := decode(t, w)["adventures"].([]any)
	if len(advs) != 3 {
		t.Fatalf("adventure count = %d, want 3", len(advs))
	}

	// location defaults to the stored home location
	first := advs[0].(map[string]any)
	if first["location"] != "Paris" {
		t.Errorf("location = %v, want Paris (session default)", first["location"])
	}

	// zero count returns an empty list
	w = do(t, r, http.MethodPost, "/adventures/discover", `{"count":0}`, cookie)
	if len(decode(t, w)["adventures"].([]any)) != 0 {
		t.Error("count 0 should return no adventures")
	}

	// absent body falls back to the default count
	w = do(t, r, http.MethodPost, "/adventures/discover", "", cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	if got := len(decode(t, w)["adventures"].([]any)); got != 6 {
		t.Errorf("default count = %d, want 6", got)
	}

	// filters are honored
	w = do(t, r, http.MethodPost, "/adventures/discover",
		`{"mood_filter":"foodie","duration_filter":"90","count":2}`, cookie)
	for _, a := range decode(t, w)["adventures"].([]any) {
		adv := a.(map[string]any)
		if adv["mood"] != "foodie" {
			t.Errorf("mood = %v, want foodie", adv["mood"])
		}
		if adv["estimatedTime"] != "1 hour" {
			t.Errorf("estimatedTime = %v, want 1 hour", adv["estimatedTime"])
		}
	}
}

func TestSaveAndMemories(t *testing.T) {
	r, _ := newTestServer(t)
	cookie := signup(t, r, "Alice", "alice@example.com", "Paris")

	// missing id
	w := do(t, r, http.MethodPost, "/adventures/save", `{}`, cookie)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	// save then duplicate
	w = do(t, r, http.MethodPost, "/adventures/save", `{"adventure_id":"adv-1"}`, cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("save status = %d: %s", w.Code, w.Body.String())
	}
	w = do(t, r, http.MethodPost, "/adventures/save", `{"adventure_id":"adv-1"}`, cookie)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate save status = %d, want 400", w.Code)
	}
	if body := decode(t, w); body["error"] != "Adventure already saved" {
		t.Errorf("error = %v", body["error"])
	}

	// more saves, spaced out for distinct timestamps
	for _, id := range []string{"adv-2", "adv-3"} {
		time.Sleep(5 * time.Millisecond)
		w = do(t, r, http.MethodPost, "/adventures/save",
			fmt.Sprintf(`{"adventure_id":%q}`, id), cookie)
		if w.Code != http.StatusOK {
			t.Fatalf("save %s status = %d", id, w.Code)
		}
	}

	w = do(t, r, http.MethodGet, "/adventures/memories", "", cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("memories status = %d: %s", w.Code, w.Body.String())
	}
	memories := decode(t, w)["memories"].([]any)
	if len(memories) != 3 {
		t.Fatalf("memories count = %d, want 3", len(memories))
	}
	got := make([]string, len(memories))
	for i, m := range memories {
		got[i] = m.(map[string]any)["adventure_id"].(string)
	}
	want := []string{"adv-3", "adv-2", "adv-1"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("memories order = %v, want %v", got, want)
		}
	}
}

func TestExportMemories(t *testing.T) {
	r, _ := newTestServer(t)
	cookie := signup(t, r, "Alice", "alice@example.com", "Paris")

	w := do(t, r, http.MethodPost, "/adventures/save", `{"adventure_id":"adv-1"}`, cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("save status = %d", w.Code)
	}

	w = do(t, r, http.MethodGet, "/adventures/memories/export", "", cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("export status = %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "spreadsheetml") {
		t.Errorf("content type = %q, want xlsx", ct)
	}
	if w.Body.Len() == 0 {
		t.Error("export body should not be empty")
	}
}
