package handlers

import (
	"log"
	"net/http"
	"strings"

	"commander-tracker-api/models"

	"github.com/gin-gonic/gin"
)

// StatsProvider is the query surface the stats endpoints read from.
// *services.StatsService satisfies it.
type StatsProvider interface {
	MostPlayed() ([]models.MostPlayedRow, error)
	CommanderWinRate(playerName string) ([]models.CommanderWinRateRow, error)
	PlayerWinRate(playerName string) ([]models.PlayerWinRateRow, error)
	ColorFrequency() ([]models.ColorFrequencyRow, error)
	PlayerColorFrequency(playerName string) ([]models.ColorFrequencyRow, error)
	GameFeed(playerName string) ([]models.GameFeedRow, error)
	HeadToHead(playerName, opponentName string) ([]models.HeadToHeadMatchup, error)
	OpponentRecords(playerName string) ([]models.OpponentRecord, error)
	TotalGames() (int64, error)
	UniquePlayers() (int64, error)
	AverageGameLength() (*models.AvgGameLength, error)
}

type StatsHandler struct {
	statsService StatsProvider
}

func NewStatsHandler(statsService StatsProvider) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

func queryFailed(c *gin.Context, err error) {
	log.Printf("Query error: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Query failed"})
}

// GetMostPlayed retrieves the most-played commanders
// @Summary Most-played commanders
// @Description Top 8 primary commanders by games played in the trailing 30 days
// @Tags stats
// @Produce json
// @Success 200 {array} models.MostPlayedRow
// @Failure 500 {object} map[string]string
// @Router /stats/most-played [get]
func (h *StatsHandler) GetMostPlayed(c *gin.Context) {
	rows, err := h.statsService.MostPlayed()
	if err != nil {
		queryFailed(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GetCommanderWinRate retrieves per-commander win rates
// @Summary Commander win rates
// @Description Wins, games and win rate per primary commander, optionally restricted to one player's commanders
// @Tags stats
// @Produce json
// @Param name path string false "Player name (exact match)"
// @Success 200 {array} models.CommanderWinRateRow
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /stats/commanders/win-rate/{name} [get]
func (h *StatsHandler) GetCommanderWinRate(c *gin.Context) {
	name := strings.TrimSpace(c.Param("name"))

	rows, err := h.statsService.CommanderWinRate(name)
	if err != nil {
		queryFailed(c, err)
		return
	}
	if name != "" && len(rows) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Player not found"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GetPlayerWinRate retrieves per-player win rates
// @Summary Player win rates
// @Description Wins, games and win rate per player, excluding Guest placeholder seats
// @Tags stats
// @Produce json
// @Param name path string false "Player name (exact match)"
// @Success 200 {array} models.PlayerWinRateRow
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /stats/players/win-rate/{name} [get]
func (h *StatsHandler) GetPlayerWinRate(c *gin.Context) {
	name := strings.TrimSpace(c.Param("name"))

	rows, err := h.statsService.PlayerWinRate(name)
	if err != nil {
		queryFailed(c, err)
		return
	}
	if name != "" && len(rows) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Player not found"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GetColorFrequency retrieves color identity frequency
// @Summary Color frequency
// @Description Per-color share of play, globally (seat share per game) or for one player (presence across their games). Always returns all five colors.
// @Tags stats
// @Produce json
// @Param name path string false "Player name (case-insensitive)"
// @Success 200 {array} models.ColorFrequencyRow
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /stats/colors/frequency/{name} [get]
func (h *StatsHandler) GetColorFrequency(c *gin.Context) {
	name := strings.TrimSpace(c.Param("name"))

	if name == "" {
		rows, err := h.statsService.ColorFrequency()
		if err != nil {
			queryFailed(c, err)
			return
		}
		c.JSON(http.StatusOK, rows)
		return
	}

	rows, err := h.statsService.PlayerColorFrequency(name)
	if err != nil {
		queryFailed(c, err)
		return
	}
	if len(rows) == 0 || rows[0].TotalGames == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Player not found or no games for this player"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GetGameFeed retrieves the recent game feed
// @Summary Game feed
// @Description The 20 most recent games with ordered participants, optionally filtered to games a named player sat in
// @Tags stats
// @Produce json
// @Param name path string false "Player name (substring, case-insensitive)"
// @Success 200 {array} models.GameFeedRow
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /stats/game-feed/{name} [get]
func (h *StatsHandler) GetGameFeed(c *gin.Context) {
	name := strings.TrimSpace(c.Param("name"))

	rows, err := h.statsService.GameFeed(name)
	if err != nil {
		queryFailed(c, err)
		return
	}
	if name != "" && len(rows) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No games found for player"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GetHeadToHead retrieves head-to-head records
// @Summary Head-to-head records
// @Description With ?vs=, the record between two players across shared games; without it, the player's record against every opponent encountered
// @Tags stats
// @Produce json
// @Param name path string true "Player name"
// @Param vs query string false "Opponent name"
// @Success 200 {array} models.OpponentRecord
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /stats/players/head-to-head/{name} [get]
func (h *StatsHandler) GetHeadToHead(c *gin.Context) {
	name := strings.TrimSpace(c.Param("name"))
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Player name is required"})
		return
	}

	opponent := strings.TrimSpace(c.Query("vs"))
	if opponent != "" {
		matchups, err := h.statsService.HeadToHead(name, opponent)
		if err != nil {
			queryFailed(c, err)
			return
		}
		if len(matchups) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "No games found between these players"})
			return
		}
		c.JSON(http.StatusOK, matchups)
		return
	}

	records, err := h.statsService.OpponentRecords(name)
	if err != nil {
		queryFailed(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// GetTotalGames retrieves the total game count
// @Summary Total games
// @Tags stats
// @Produce json
// @Success 200 {object} map[string]int64
// @Failure 500 {object} map[string]string
// @Router /stats/total-games [get]
func (h *StatsHandler) GetTotalGames(c *gin.Context) {
	total, err := h.statsService.TotalGames()
	if err != nil {
		queryFailed(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total_games": total})
}

// GetUniquePlayers retrieves the distinct player count
// @Summary Unique players
// @Tags stats
// @Produce json
// @Success 200 {object} map[string]int64
// @Failure 500 {object} map[string]string
// @Router /stats/unique-players [get]
func (h *StatsHandler) GetUniquePlayers(c *gin.Context) {
	total, err := h.statsService.UniquePlayers()
	if err != nil {
		queryFailed(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"unique_players": total})
}

// GetAverageGameLength retrieves the average turn count
// @Summary Average game length
// @Description Average recorded turns to one decimal, excluding games with no recorded turn count
// @Tags stats
// @Produce json
// @Success 200 {object} models.AvgGameLength
// @Failure 500 {object} map[string]string
// @Router /stats/avg-game-length [get]
func (h *StatsHandler) GetAverageGameLength(c *gin.Context) {
	result, err := h.statsService.AverageGameLength()
	if err != nil {
		queryFailed(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
