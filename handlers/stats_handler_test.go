package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"commander-tracker-api/models"

	"github.com/gin-gonic/gin"
)

// stubStatsProvider returns canned rows so handler behavior can be
// exercised without a database.
type stubStatsProvider struct {
	matchups  []models.HeadToHeadMatchup
	opponents []models.OpponentRecord
}

func (s *stubStatsProvider) MostPlayed() ([]models.MostPlayedRow, error) { return nil, nil }
func (s *stubStatsProvider) CommanderWinRate(string) ([]models.CommanderWinRateRow, error) {
	return nil, nil
}
func (s *stubStatsProvider) PlayerWinRate(string) ([]models.PlayerWinRateRow, error) {
	return nil, nil
}
func (s *stubStatsProvider) ColorFrequency() ([]models.ColorFrequencyRow, error) { return nil, nil }
func (s *stubStatsProvider) PlayerColorFrequency(string) ([]models.ColorFrequencyRow, error) {
	return nil, nil
}
func (s *stubStatsProvider) GameFeed(string) ([]models.GameFeedRow, error) { return nil, nil }
func (s *stubStatsProvider) HeadToHead(string, string) ([]models.HeadToHeadMatchup, error) {
	return s.matchups, nil
}
func (s *stubStatsProvider) OpponentRecords(string) ([]models.OpponentRecord, error) {
	return s.opponents, nil
}
func (s *stubStatsProvider) TotalGames() (int64, error)    { return 0, nil }
func (s *stubStatsProvider) UniquePlayers() (int64, error) { return 0, nil }
func (s *stubStatsProvider) AverageGameLength() (*models.AvgGameLength, error) {
	return &models.AvgGameLength{}, nil
}

func newStatsRouter(provider StatsProvider) *gin.Engine {
	r := gin.New()
	h := NewStatsHandler(provider)
	r.GET("/stats/players/head-to-head/:name", h.GetHeadToHead)
	return r
}

func TestGetHeadToHeadVsModeReturnsArray(t *testing.T) {
	rate := 50.0
	provider := &stubStatsProvider{
		matchups: []models.HeadToHeadMatchup{{
			Player1:        "Alice",
			Player2:        "Bob",
			TotalGames:     4,
			Player1Wins:    2,
			Player2Wins:    1,
			Player1WinRate: &rate,
		}},
	}
	r := newStatsRouter(provider)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/stats/players/head-to-head/Alice?vs=Bob", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var payload []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("body is not a JSON array: %v", err)
	}
	if len(payload) != 1 {
		t.Fatalf("len = %d, want one matchup element", len(payload))
	}
	if payload[0]["player1"] != "Alice" || payload[0]["player2"] != "Bob" {
		t.Errorf("matchup = %v, want Alice vs Bob", payload[0])
	}
}

func TestGetHeadToHeadVsModeNoSharedGames(t *testing.T) {
	r := newStatsRouter(&stubStatsProvider{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/stats/players/head-to-head/Alice?vs=Bob", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if got := errorMessage(t, w); got != "No games found between these players" {
		t.Errorf("error = %q", got)
	}
}

func TestGetHeadToHeadWithoutOpponentListsRecords(t *testing.T) {
	rate := 75.0
	provider := &stubStatsProvider{
		opponents: []models.OpponentRecord{
			{Opponent: "Bob", GamesPlayed: 4, Wins: 3, Losses: 1, WinRate: &rate},
		},
	}
	r := newStatsRouter(provider)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/stats/players/head-to-head/Alice", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var payload []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("body is not a JSON array: %v", err)
	}
	if len(payload) != 1 || payload[0]["opponent"] != "Bob" {
		t.Errorf("records = %v, want one record against Bob", payload)
	}
}
