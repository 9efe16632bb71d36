package services

import (
	"errors"
	"log"
	"strings"

	"commander-tracker-api/models"

	"gorm.io/gorm"
)

// GameService records finished games. Each submission is written in a
// single transaction: the game row, every seat, every seat-commander link,
// and the resolved winner either all land or none do.
type GameService struct {
	db *gorm.DB
}

func NewGameService(db *gorm.DB) *GameService {
	return &GameService{
		db: db,
	}
}

// CreateGameWithPlayers persists a validated submission. Players and
// commanders are found or created by exact name match inside the
// transaction. The declared winner is matched case-insensitively against
// the names inserted for this game; an unmatched winner leaves winner_id
// NULL with a warning rather than failing the submission.
func (s *GameService) CreateGameWithPlayers(req *models.CreateGameRequest) (*models.CreateGameResult, error) {
	date, err := req.ParsedDate()
	if err != nil {
		return nil, err
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	game := models.Game{
		Date:   date,
		Turns:  req.Turns,
		WinCon: req.WinCon,
	}
	if err := tx.Create(&game).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	declaredWinner := strings.TrimSpace(req.Winner)
	winnerSeat := resolveWinnerSeat(req.Winner, req.Players)
	var winnerID *uint
	playersInserted := 0

	for i, seat := range req.Players {
		playerName := strings.TrimSpace(seat.Name)

		playerID, err := findOrCreatePlayer(tx, playerName)
		if err != nil {
			tx.Rollback()
			return nil, err
		}

		playerGame := models.PlayerGame{
			GameID:    game.ID,
			PlayerID:  playerID,
			TurnOrder: seat.TurnOrder,
		}
		if err := tx.Create(&playerGame).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
		playersInserted++

		if i == winnerSeat {
			id := playerID
			winnerID = &id
		}

		for _, commander := range seat.SeatCommanders() {
			commanderID, err := findOrCreateCommander(tx, commander.Name)
			if err != nil {
				tx.Rollback()
				return nil, err
			}
			link := models.PlayerGameCommander{
				GameID:      game.ID,
				PlayerID:    playerID,
				CommanderID: commanderID,
				IsPrimary:   commander.IsPrimary,
			}
			if err := tx.Create(&link).Error; err != nil {
				tx.Rollback()
				return nil, err
			}
		}
	}

	if winnerID != nil {
		if err := tx.Model(&models.Game{}).Where("id = ?", game.ID).
			Update("winner_id", *winnerID).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	} else if declaredWinner != "" {
		log.Printf("Winner name %q did not match any inserted player; leaving winner_id NULL", declaredWinner)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return &models.CreateGameResult{
		GameID:          game.ID,
		PlayersInserted: playersInserted,
		WinnerSet:       winnerID != nil,
	}, nil
}

// resolveWinnerSeat returns the index of the first seat whose name matches
// the declared winner, case-insensitively after trimming both sides, or -1
// when no winner was declared or no seat matches.
func resolveWinnerSeat(declared string, seats []models.GamePlayerInput) int {
	declared = strings.TrimSpace(declared)
	if declared == "" {
		return -1
	}
	for i, seat := range seats {
		if strings.EqualFold(strings.TrimSpace(seat.Name), declared) {
			return i
		}
	}
	return -1
}

func findOrCreatePlayer(tx *gorm.DB, name string) (uint, error) {
	var player models.Player
	err := tx.Where("player_name = ?", name).First(&player).Error
	if err == nil {
		return player.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	player = models.Player{Name: name}
	if err := tx.Create(&player).Error; err != nil {
		return 0, err
	}
	return player.ID, nil
}

// findOrCreateCommander covers commanders the registry did not persist,
// usually because the Scryfall lookup failed. The row is created bare and
// picked up later by the backfill refresh.
func findOrCreateCommander(tx *gorm.DB, name string) (uint, error) {
	var commander models.Commander
	err := tx.Where("commander_name = ?", name).First(&commander).Error
	if err == nil {
		return commander.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	commander = models.Commander{Name: name}
	if err := tx.Create(&commander).Error; err != nil {
		return 0, err
	}
	return commander.ID, nil
}
