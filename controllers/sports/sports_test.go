package sportsController_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"palpite/config"
	sportsRoutes "palpite/routers/sportsRoutes"
	"palpite/utils"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestMain(m *testing.M) {
	config.AppConfig = &config.Config{
		JWTKey:    "test-secret-key",
		SaltRound: 4,
	}
	os.Exit(m.Run())
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func get(t *testing.T, app *fiber.App, path string) envelope {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return env
}

func TestLeaguesEndpoint(t *testing.T) {
	app := fiber.New()
	sportsRoutes.SetupSportsRoutes(app)

	env := get(t, app, "/sports/leagues")

	var leagues []utils.League
	if err := json.Unmarshal(env.Data, &leagues); err != nil {
		t.Fatalf("failed to parse leagues: %v", err)
	}
	if len(leagues) != 9 {
		t.Fatalf("len(leagues) = %d, want 9", len(leagues))
	}
	for i := 1; i < len(leagues); i++ {
		if leagues[i].Name < leagues[i-1].Name {
			t.Errorf("leagues not sorted by name: %q before %q", leagues[i-1].Name, leagues[i].Name)
		}
	}
}

func TestMatchesEndpointServesMockWithoutKey(t *testing.T) {
	app := fiber.New()
	sportsRoutes.SetupSportsRoutes(app)

	env := get(t, app, "/sports/matches?leagueId=2013")

	var matches []utils.Match
	if err := json.Unmarshal(env.Data, &matches); err != nil {
		t.Fatalf("failed to parse matches: %v", err)
	}
	if len(matches) != 5 {
		t.Fatalf("len(matches) = %d, want 5", len(matches))
	}
	for _, m := range matches {
		if m.HomeTeam == "" || m.AwayTeam == "" {
			t.Errorf("match %d has empty team names", m.ID)
		}
	}
}
