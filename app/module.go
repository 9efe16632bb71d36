package app

import (
	"commander-tracker-api/cron"
	"commander-tracker-api/handlers"
	"commander-tracker-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Module wires the services and handlers over one shared connection pool.
type Module struct {
	GamesHandler     *handlers.GamesHandler
	CardsHandler     *handlers.CardsHandler
	StatsHandler     *handlers.StatsHandler
	GameService      *services.GameService
	CommanderService *services.CommanderService
	StatsService     *services.StatsService
	ScryfallService  *services.ScryfallService
	Scheduler        *cron.Scheduler
	db               *gorm.DB
}

func NewModule(db *gorm.DB) *Module {
	scryfallService := services.NewScryfallService()
	commanderService := services.NewCommanderService(db, scryfallService)
	gameService := services.NewGameService(db)
	statsService := services.NewStatsService(db)

	gamesHandler := handlers.NewGamesHandler(gameService, commanderService)
	cardsHandler := handlers.NewCardsHandler(scryfallService)
	statsHandler := handlers.NewStatsHandler(statsService)

	scheduler := cron.NewScheduler(commanderService)

	return &Module{
		GamesHandler:     gamesHandler,
		CardsHandler:     cardsHandler,
		StatsHandler:     statsHandler,
		GameService:      gameService,
		CommanderService: commanderService,
		StatsService:     statsService,
		ScryfallService:  scryfallService,
		Scheduler:        scheduler,
		db:               db,
	}
}

// SetupRoutes mounts every endpoint under the versioned API prefix.
func (m *Module) SetupRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")

	games := api.Group("/games")
	{
		games.POST("", m.GamesHandler.CreateGame)
	}

	cards := api.Group("/cards")
	{
		cards.GET("/details/:name", m.CardsHandler.GetCardDetails)
		cards.GET("/search/commanders", m.CardsHandler.SearchCommanders)
	}

	stats := api.Group("/stats")
	{
		stats.GET("/most-played", m.StatsHandler.GetMostPlayed)
		stats.GET("/commanders/win-rate", m.StatsHandler.GetCommanderWinRate)
		stats.GET("/commanders/win-rate/:name", m.StatsHandler.GetCommanderWinRate)
		stats.GET("/players/win-rate", m.StatsHandler.GetPlayerWinRate)
		stats.GET("/players/win-rate/:name", m.StatsHandler.GetPlayerWinRate)
		stats.GET("/colors/frequency", m.StatsHandler.GetColorFrequency)
		stats.GET("/colors/frequency/:name", m.StatsHandler.GetColorFrequency)
		stats.GET("/game-feed", m.StatsHandler.GetGameFeed)
		stats.GET("/game-feed/:name", m.StatsHandler.GetGameFeed)
		stats.GET("/players/head-to-head/:name", m.StatsHandler.GetHeadToHead)
		stats.GET("/total-games", m.StatsHandler.GetTotalGames)
		stats.GET("/unique-players", m.StatsHandler.GetUniquePlayers)
		stats.GET("/avg-game-length", m.StatsHandler.GetAverageGameLength)
	}
}

// StartScheduler starts the commander backfill refresh job.
func (m *Module) StartScheduler() error {
	return m.Scheduler.Start()
}

// StopScheduler stops the cron scheduler.
func (m *Module) StopScheduler() {
	m.Scheduler.Stop()
}
