package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/courtlab/backend/internal/content"
	"github.com/courtlab/backend/internal/database"
	"github.com/courtlab/backend/internal/middleware"
	"github.com/courtlab/backend/internal/models"
	"github.com/courtlab/backend/internal/pages"
	"github.com/courtlab/backend/internal/services"
	"github.com/courtlab/backend/internal/storage"
	"github.com/courtlab/backend/pkg/logger"
	"github.com/courtlab/backend/pkg/utils"
	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

type testEnv struct {
	app        *fiber.App
	db         *gorm.DB
	uploadsDir string
}

var testSetupOnce sync.Once

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	testSetupOnce.Do(func() {
		logger.Init()
		utils.ConfigureSessions("test-secret", 24)
	})

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed opening in-memory sqlite database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed getting sql.DB from gorm: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed migrating schema: %v", err)
	}

	uploadsDir := t.TempDir()
	avatarStore, err := storage.NewLocalStore(uploadsDir)
	if err != nil {
		t.Fatalf("failed creating local avatar store: %v", err)
	}

	renderer, err := pages.NewRenderer()
	if err != nil {
		t.Fatalf("failed parsing page templates: %v", err)
	}

	profileService := services.NewProfileService(db)
	favoritesService := services.NewFavoritesService(db)
	drillProvider := content.NewProvider()

	authHandler := NewAuthHandler(profileService, favoritesService)
	profileHandler := NewProfileHandler(profileService, favoritesService, avatarStore)
	favoritesHandler := NewFavoritesHandler(favoritesService)
	pagesHandler := NewPagesHandler(drillProvider, renderer)

	authMiddleware := middleware.NewAuthMiddleware(profileService)

	app := fiber.New(fiber.Config{BodyLimit: 10 * 1024 * 1024})
	app.Use(recover.New(recover.Config{EnableStackTrace: true}))
	app.Use(middleware.CORS())
	app.Use(middleware.RequestLogger())
	app.Use(middleware.SecurityLogger())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
	})

	app.Get("/", pagesHandler.Index)
	app.Post("/", pagesHandler.Index)
	app.Get("/index.html", pagesHandler.Index)
	app.Get("/shooting.html", pagesHandler.Shooting)
	app.Get("/ball-handling.html", pagesHandler.BallHandling)
	app.Get("/defense.html", pagesHandler.Defense)
	app.Get("/fitness.html", pagesHandler.Fitness)
	app.Get("/about.html", pagesHandler.About)
	app.Get("/resources.html", pagesHandler.Resources)
	app.Get("/library.html", pagesHandler.Library)
	app.Get("/login", pagesHandler.Login)
	app.Get("/profile", pagesHandler.Profile)

	app.Post("/search_shooting_drills", pagesHandler.SearchShootingDrills)
	app.Post("/search_ball_handling_drills", pagesHandler.SearchBallHandlingDrills)

	api := app.Group("/api")
	api.Post("/signup", authHandler.Signup)
	api.Post("/login", authHandler.Login)
	api.Post("/logout", authHandler.Logout)
	api.Get("/session", authMiddleware.OptionalAuth, authHandler.Session)

	api.Get("/profile", authMiddleware.RequireAuth, profileHandler.Get)
	api.Put("/profile", authMiddleware.RequireAuth, profileHandler.Update)
	api.Post("/profile/avatar", authMiddleware.RequireAuth, profileHandler.UploadAvatar)
	api.Delete("/profile/avatar", authMiddleware.RequireAuth, profileHandler.DeleteAvatar)

	api.Get("/favorites", authMiddleware.RequireAuth, favoritesHandler.Get)
	api.Put("/favorites", authMiddleware.RequireAuth, favoritesHandler.Replace)
	api.Post("/favorites/toggle", authMiddleware.RequireAuth, favoritesHandler.Toggle)

	return &testEnv{app: app, db: db, uploadsDir: uploadsDir}
}

func createTestProfile(t *testing.T, db *gorm.DB, email, password string) (*models.UserProfile, string) {
	t.Helper()

	hash, err := utils.HashPassword(password)
	if err != nil {
		t.Fatalf("failed hashing password: %v", err)
	}

	profile := &models.UserProfile{
		FullName:   "Test Player",
		Email:      email,
		Password:   hash,
		SkillLevel: models.DefaultSkillLevel,
	}
	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("failed creating test profile: %v", err)
	}

	token, err := utils.GenerateSessionToken(profile.ID)
	if err != nil {
		t.Fatalf("failed generating session token: %v", err)
	}

	return profile, token
}

func sessionHeaders(token string) map[string]string {
	return map[string]string{"Cookie": middleware.SessionCookieName + "=" + token}
}

func performRequest(t *testing.T, app *fiber.App, method, path string, body io.Reader, headers map[string]string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(method, path, body)
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := app.Test(req, int((10 * time.Second).Milliseconds()))
	if err != nil {
		t.Fatalf("request %s %s failed: %v", method, path, err)
	}

	return resp
}

func performJSONRequest(t *testing.T, app *fiber.App, method, path string, payload any, headers map[string]string) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("failed to marshal payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	requestHeaders := map[string]string{}
	for key, value := range headers {
		requestHeaders[key] = value
	}
	if payload != nil {
		requestHeaders["Content-Type"] = "application/json"
	}

	return performRequest(t, app, method, path, body, requestHeaders)
}

func decodeJSONMap(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed reading response body: %v", err)
	}

	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("failed decoding JSON response: %v body=%q", err, string(raw))
	}

	return payload
}

func assertStatus(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	if resp.StatusCode != expected {
		t.Fatalf("expected status %d, got %d", expected, resp.StatusCode)
	}
}

func assertErrorMessage(t *testing.T, body map[string]any, expected string) {
	t.Helper()
	if got, _ := body["error"].(string); got != expected {
		t.Fatalf("expected error %q, got %q", expected, got)
	}
}

func profileFromBody(t *testing.T, body map[string]any) map[string]any {
	t.Helper()
	profile, ok := body["profile"].(map[string]any)
	if !ok {
		t.Fatalf("expected profile object in response, got %+v", body)
	}
	return profile
}

func favoritesFromBody(t *testing.T, body map[string]any) []string {
	t.Helper()
	raw, ok := body["favorites"].([]any)
	if !ok {
		t.Fatalf("expected favorites array in response, got %+v", body)
	}
	favorites := make([]string, 0, len(raw))
	for _, item := range raw {
		value, ok := item.(string)
		if !ok {
			t.Fatalf("expected string favorite, got %T", item)
		}
		favorites = append(favorites, value)
	}
	return favorites
}

func assertFavorites(t *testing.T, got []string, expected []string) {
	t.Helper()
	if len(got) != len(expected) {
		t.Fatalf("expected favorites %v, got %v", expected, got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Fatalf("expected favorites %v, got %v", expected, got)
		}
	}
}
