package utils

import (
	"encoding/json"
	"fmt"
	"log"
	"palpite/config"
	"sort"
	"time"

	"github.com/go-resty/resty/v2"
)

// League is one competition in the fixed catalog used by the prediction form.
type League struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

// Match is an upcoming fixture from football-data.org (or the mock list).
type Match struct {
	ID       int       `json:"id"`
	HomeTeam string    `json:"homeTeam"`
	AwayTeam string    `json:"awayTeam"`
	League   string    `json:"league"`
	UtcDate  time.Time `json:"utcDate"`
}

// footballDataResponse represents the matches payload from football-data.org
type footballDataResponse struct {
	Matches []struct {
		ID       int `json:"id"`
		HomeTeam struct {
			Name string `json:"name"`
		} `json:"homeTeam"`
		AwayTeam struct {
			Name string `json:"name"`
		} `json:"awayTeam"`
		Competition struct {
			Name string `json:"name"`
		} `json:"competition"`
		UtcDate time.Time `json:"utcDate"`
	} `json:"matches"`
}

// GetLeagues returns the supported league catalog, alphabetically sorted by name.
// IDs are football-data.org competition IDs.
func GetLeagues() []League {
	leagues := []League{
		{ID: 2013, Name: "Brasileirão Série A", Country: "Brazil"},
		{ID: 2021, Name: "Premier League", Country: "England"},
		{ID: 2014, Name: "La Liga", Country: "Spain"},
		{ID: 2019, Name: "Serie A", Country: "Italy"},
		{ID: 2002, Name: "Bundesliga", Country: "Germany"},
		{ID: 2015, Name: "Ligue 1", Country: "France"},
		{ID: 2003, Name: "Eredivisie", Country: "Netherlands"},
		{ID: 2001, Name: "Champions League", Country: "Europe"},
		{ID: 2152, Name: "Copa Libertadores", Country: "South America"},
	}

	sort.Slice(leagues, func(i, j int) bool {
		return leagues[i].Name < leagues[j].Name
	})

	return leagues
}

// GetUpcomingMatches fetches scheduled fixtures from football-data.org.
// Pass leagueID 0 for all competitions. Without a configured API key, or on
// any fetch or parse failure, the deterministic mock list is returned so
// callers never need failure handling for fixtures.
func GetUpcomingMatches(leagueID int) []Match {
	if config.AppConfig.FootballApiKey == "" {
		log.Println("Sports API key not set. Using mock match data.")
		return GetMockMatches()
	}

	endpoint := "/matches"
	if leagueID > 0 {
		endpoint = fmt.Sprintf("/competitions/%d/matches", leagueID)
	}
	url := fmt.Sprintf("%s%s?status=SCHEDULED", config.AppConfig.FootballApiURL, endpoint)

	client := resty.New().SetTimeout(10 * time.Second)
	resp, err := client.R().
		SetHeader("X-Auth-Token", config.AppConfig.FootballApiKey).
		Get(url)
	if err != nil {
		log.Printf("Error fetching matches: %v", err)
		return GetMockMatches()
	}
	if resp.StatusCode() != 200 {
		log.Printf("Fixtures API returned status %d: %s", resp.StatusCode(), resp.String())
		return GetMockMatches()
	}

	var data footballDataResponse
	if err := json.Unmarshal(resp.Body(), &data); err != nil {
		log.Printf("Failed to parse fixtures response: %v", err)
		return GetMockMatches()
	}

	matches := make([]Match, 0, len(data.Matches))
	for _, m := range data.Matches {
		matches = append(matches, Match{
			ID:       m.ID,
			HomeTeam: m.HomeTeam.Name,
			AwayTeam: m.AwayTeam.Name,
			League:   m.Competition.Name,
			UtcDate:  m.UtcDate,
		})
	}

	return matches
}

// GetMockMatches returns five fixtures with dates relative to the call time,
// used whenever the live fixtures source is unavailable.
func GetMockMatches() []Match {
	now := time.Now()
	return []Match{
		{ID: 1, HomeTeam: "Flamengo", AwayTeam: "Palmeiras", League: "Brasileirão Série A", UtcDate: now.Add(24 * time.Hour)},
		{ID: 2, HomeTeam: "Real Madrid", AwayTeam: "Barcelona", League: "La Liga", UtcDate: now.Add(48 * time.Hour)},
		{ID: 3, HomeTeam: "Manchester City", AwayTeam: "Liverpool", League: "Premier League", UtcDate: now.Add(72 * time.Hour)},
		{ID: 4, HomeTeam: "Bayern Munich", AwayTeam: "Dortmund", League: "Bundesliga", UtcDate: now.Add(96 * time.Hour)},
		{ID: 5, HomeTeam: "PSG", AwayTeam: "Marseille", League: "Ligue 1", UtcDate: now.Add(120 * time.Hour)},
	}
}
