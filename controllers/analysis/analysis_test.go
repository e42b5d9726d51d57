package analysisController_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"palpite/config"
	"palpite/database"
	"palpite/middleware"
	"palpite/models"
	adminRoutes "palpite/routers/adminRoutes"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	config.AppConfig = &config.Config{
		JWTKey:    "test-secret-key",
		SaltRound: 4,
	}
	os.Exit(m.Run())
}

func setupTest(t *testing.T) (*fiber.App, string) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Prediction{}, &models.Purchase{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	database.Database = database.DbInstance{Db: db}

	admin := models.User{Username: "admin", FullName: "Admin", Email: "admin@palpite.com", Password: "x", IsAdmin: true}
	if err := db.Create(&admin).Error; err != nil {
		t.Fatalf("failed to create admin: %v", err)
	}
	token, err := middleware.GenerateJWT(admin.ID, admin.Username, admin.Email)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	app := fiber.New()
	adminRoutes.SetupAdminRoutes(app)
	return app, token
}

func postAnalysis(t *testing.T, app *fiber.App, token string, body fiber.Map) (*http.Response, json.RawMessage) {
	t.Helper()

	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/admin/analysis", bytes.NewBuffer(raw))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp, env.Data
}

func TestGenerateAnalysisFallsBackWithoutKey(t *testing.T) {
	app, token := setupTest(t)

	resp, data := postAnalysis(t, app, token, fiber.Map{
		"matchName": "Flamengo x Palmeiras",
		"league":    "Brasileirão Série A",
		"teamHome":  "Flamengo",
		"teamAway":  "Palmeiras",
	})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200 even without an AI backend", resp.StatusCode)
	}

	var out struct {
		Analysis string `json:"analysis"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("failed to parse analysis: %v", err)
	}
	if !strings.Contains(out.Analysis, "Flamengo") || !strings.Contains(out.Analysis, "Palmeiras") {
		t.Errorf("fallback analysis should mention both teams, got %q", out.Analysis)
	}
}

func TestGenerateAnalysisValidation(t *testing.T) {
	app, token := setupTest(t)

	resp, _ := postAnalysis(t, app, token, fiber.Map{"matchName": "A x B"})
	if resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", resp.StatusCode)
	}
}

func TestGenerateAnalysisRequiresAuth(t *testing.T) {
	app, _ := setupTest(t)

	resp, _ := postAnalysis(t, app, "", fiber.Map{
		"matchName": "A x B",
		"league":    "L",
		"teamHome":  "A",
		"teamAway":  "B",
	})
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}
