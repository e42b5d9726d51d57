package adminController_test

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
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	config.AppConfig = &config.Config{
		JWTKey:              "test-secret-key",
		SaltRound:           4,
		PurchaseExpiryHours: 24,
	}
	os.Exit(m.Run())
}

func setupTest(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Prediction{}, &models.Purchase{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	adminRoutes.SetupAdminRoutes(app)
	return app, db
}

func createUser(t *testing.T, db *gorm.DB, username, fullName string, isAdmin bool) models.User {
	t.Helper()
	user := models.User{
		Username: username,
		FullName: fullName,
		Email:    username + "@palpite.com",
		Password: "not-checked-here",
		IsAdmin:  isAdmin,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

func authToken(t *testing.T, user models.User) string {
	t.Helper()
	token, err := middleware.GenerateJWT(user.ID, user.Username, user.Email)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return token
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, envelope) {
	t.Helper()

	reqBody := bytes.NewBuffer(nil)
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reqBody = bytes.NewBuffer(raw)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request %s %s failed: %v", method, path, err)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp, env
}

func TestListUsersOrderedByName(t *testing.T) {
	app, db := setupTest(t)
	admin := createUser(t, db, "admin", "Carlos Mendes", true)
	createUser(t, db, "ana", "Ana Souza", false)
	createUser(t, db, "bruno", "Bruno Lima", false)
	createUser(t, db, "ghost", "", false)

	resp, env := doJSON(t, app, "GET", "/admin/users", authToken(t, admin), nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", resp.StatusCode, env.Message)
	}

	var users []models.User
	if err := json.Unmarshal(env.Data, &users); err != nil {
		t.Fatalf("failed to parse users: %v", err)
	}
	if len(users) != 4 {
		t.Fatalf("len(users) = %d, want 4", len(users))
	}

	// Blank names sort first, the rest alphabetically
	wantOrder := []string{"", "Ana Souza", "Bruno Lima", "Carlos Mendes"}
	for i, want := range wantOrder {
		if users[i].FullName != want {
			t.Errorf("users[%d].FullName = %q, want %q", i, users[i].FullName, want)
		}
	}

	for _, u := range users {
		if u.Password != "" {
			t.Error("password hash must never appear in responses")
		}
	}
}

func TestListUsersRequiresAdmin(t *testing.T) {
	app, db := setupTest(t)
	user := createUser(t, db, "viewer", "Viewer", false)

	resp, _ := doJSON(t, app, "GET", "/admin/users", authToken(t, user), nil)
	if resp.StatusCode != fiber.StatusForbidden {
		t.Errorf("status = %d, want 403", resp.StatusCode)
	}

	resp, _ = doJSON(t, app, "GET", "/admin/users", "", nil)
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("anonymous status = %d, want 401", resp.StatusCode)
	}
}

func TestSetAdminTakesEffectWithoutReauth(t *testing.T) {
	app, db := setupTest(t)
	admin := createUser(t, db, "admin", "Admin", true)
	target := createUser(t, db, "target", "Target", false)

	// Token minted while the target is still a regular user
	targetToken := authToken(t, target)

	resp, _ := doJSON(t, app, "GET", "/admin/users", targetToken, nil)
	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("pre-grant status = %d, want 403", resp.StatusCode)
	}

	path := "/admin/users/" + strconv.Itoa(int(target.ID)) + "/admin"
	resp, env := doJSON(t, app, "PATCH", path, authToken(t, admin), fiber.Map{"isAdmin": true})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("grant status = %d, want 200 (%s)", resp.StatusCode, env.Message)
	}

	// Same token now passes: the admin check reads the store, not the token
	resp, _ = doJSON(t, app, "GET", "/admin/users", targetToken, nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("post-grant status = %d, want 200", resp.StatusCode)
	}

	// And revocation bites immediately too
	resp, _ = doJSON(t, app, "PATCH", path, authToken(t, admin), fiber.Map{"isAdmin": false})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("revoke status = %d, want 200", resp.StatusCode)
	}
	resp, _ = doJSON(t, app, "GET", "/admin/users", targetToken, nil)
	if resp.StatusCode != fiber.StatusForbidden {
		t.Errorf("post-revoke status = %d, want 403", resp.StatusCode)
	}
}

func TestSetAdminValidation(t *testing.T) {
	app, db := setupTest(t)
	admin := createUser(t, db, "admin", "Admin", true)

	resp, _ := doJSON(t, app, "PATCH", "/admin/users/1/admin", authToken(t, admin), fiber.Map{})
	if resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", resp.StatusCode)
	}
}

func TestSetAdminNotFound(t *testing.T) {
	app, db := setupTest(t)
	admin := createUser(t, db, "admin", "Admin", true)

	resp, _ := doJSON(t, app, "PATCH", "/admin/users/999/admin", authToken(t, admin), fiber.Map{"isAdmin": true})
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}
