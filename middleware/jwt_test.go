package middleware

import (
	"net/http/httptest"
	"palpite/config"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func init() {
	config.AppConfig = &config.Config{JWTKey: "test-secret-key"}
}

func protectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected", JWTMiddleware, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"userId": c.Locals("userId")})
	})
	app.Get("/optional", OptionalJWTMiddleware, func(c *fiber.Ctx) error {
		userId, _ := c.Locals("userId").(uint)
		return c.JSON(fiber.Map{"userId": userId})
	})
	return app
}

func TestGenerateJWT(t *testing.T) {
	token, err := GenerateJWT(7, "tipster", "tipster@palpite.com")
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}
	if token == "" {
		t.Fatal("token should not be empty")
	}

	userID, err := parseToken(token)
	if err != nil {
		t.Fatalf("parseToken failed: %v", err)
	}
	if userID != 7 {
		t.Errorf("userID = %d, want 7", userID)
	}
}

func TestJWTMiddlewareMissingHeader(t *testing.T) {
	app := protectedApp()

	req := httptest.NewRequest("GET", "/protected", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

func TestJWTMiddlewareInvalidToken(t *testing.T) {
	app := protectedApp()

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

func TestJWTMiddlewareValidToken(t *testing.T) {
	app := protectedApp()

	token, _ := GenerateJWT(3, "tipster", "tipster@palpite.com")
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestOptionalJWTMiddlewareAllowsAnonymous(t *testing.T) {
	app := protectedApp()

	req := httptest.NewRequest("GET", "/optional", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestOptionalJWTMiddlewareIgnoresBadToken(t *testing.T) {
	app := protectedApp()

	req := httptest.NewRequest("GET", "/optional", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}
