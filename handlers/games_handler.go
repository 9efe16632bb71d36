package handlers

import (
	"log"
	"net/http"

	"commander-tracker-api/models"
	"commander-tracker-api/services"

	"github.com/gin-gonic/gin"
)

type GamesHandler struct {
	gameService      *services.GameService
	commanderService *services.CommanderService
}

func NewGamesHandler(gameService *services.GameService, commanderService *services.CommanderService) *GamesHandler {
	return &GamesHandler{
		gameService:      gameService,
		commanderService: commanderService,
	}
}

// CreateGame records a finished game
// @Summary Record a game
// @Description Record a finished game with its players, commanders, turn orders and winner. Commanders referenced for the first time are registered and backfilled from Scryfall before the game is written.
// @Tags games
// @Accept json
// @Produce json
// @Param game body models.CreateGameRequest true "Game submission"
// @Success 201 {object} models.CreateGameResult
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /games [post]
func (h *GamesHandler) CreateGame(c *gin.Context) {
	var req models.CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid payload: missing required fields or invalid data types",
		})
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Commander registration runs before and outside the game transaction;
	// a failed backfill never rolls back the game write.
	h.commanderService.EnsureCommandersExist(c.Request.Context(), req.CommanderNames())

	result, err := h.gameService.CreateGameWithPlayers(&req)
	if err != nil {
		log.Printf("Game creation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create game"})
		return
	}

	c.JSON(http.StatusCreated, result)
}
