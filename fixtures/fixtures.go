package fixtures

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"commander-tracker-api/models"

	"gorm.io/gorm"
)

type Fixtures struct {
	db *gorm.DB
}

func NewFixtures(db *gorm.DB) *Fixtures {
	return &Fixtures{db: db}
}

var samplePlayers = []string{
	"Alice", "Bob", "Charlie", "Dana", "Eli", "Fran", "Guest 1", "Hugo",
}

type sampleCommander struct {
	name   string
	colors []string
}

var sampleCommanders = []sampleCommander{
	{"Atraxa, Praetors' Voice", []string{"W", "U", "B", "G"}},
	{"Edgar Markov", []string{"W", "B", "R"}},
	{"Krenko, Mob Boss", []string{"R"}},
	{"Muldrotha, the Gravetide", []string{"U", "B", "G"}},
	{"Talrand, Sky Summoner", []string{"U"}},
	{"Kaalia of the Vast", []string{"W", "B", "R"}},
	{"Omnath, Locus of Creation", []string{"W", "U", "R", "G"}},
	{"Yuriko, the Tiger's Shadow", []string{"U", "B"}},
	{"Light-Paws, Emperor's Voice", []string{"W"}},
	{"Meren of Clan Nel Toth", []string{"B", "G"}},
	{"Niv-Mizzet, Parun", []string{"U", "R"}},
	{"Gishath, Sun's Avatar", []string{"W", "R", "G"}},
}

var sampleWinCons = []string{"Combat", "Combo", "Commander Damage", "Ping/Burn", "Scoops"}

// GenerateTestData seeds players, commanders with color identities, and 40
// games spread over the last 60 days.
func (f *Fixtures) GenerateTestData() error {
	log.Println("Starting fixtures generation...")

	players, err := f.generatePlayers()
	if err != nil {
		return fmt.Errorf("failed to generate players: %w", err)
	}

	commanders, err := f.generateCommanders()
	if err != nil {
		return fmt.Errorf("failed to generate commanders: %w", err)
	}

	if err := f.generateGames(players, commanders); err != nil {
		return fmt.Errorf("failed to generate games: %w", err)
	}

	log.Println("Fixtures generation completed")
	return nil
}

func (f *Fixtures) generatePlayers() ([]models.Player, error) {
	players := make([]models.Player, 0, len(samplePlayers))
	for _, name := range samplePlayers {
		player := models.Player{Name: name}
		if err := f.db.Where("player_name = ?", name).FirstOrCreate(&player).Error; err != nil {
			return nil, err
		}
		players = append(players, player)
	}
	log.Printf("Seeded %d players", len(players))
	return players, nil
}

func (f *Fixtures) generateCommanders() ([]models.Commander, error) {
	commanders := make([]models.Commander, 0, len(sampleCommanders))
	for _, sample := range sampleCommanders {
		commander := models.Commander{Name: sample.name}
		if err := f.db.Where("commander_name = ?", sample.name).FirstOrCreate(&commander).Error; err != nil {
			return nil, err
		}
		for _, code := range sample.colors {
			color := models.CommanderColor{CommanderID: commander.ID, ColorCode: code}
			if err := f.db.Where(&color).FirstOrCreate(&color).Error; err != nil {
				return nil, err
			}
		}
		commanders = append(commanders, commander)
	}
	log.Printf("Seeded %d commanders", len(commanders))
	return commanders, nil
}

func (f *Fixtures) generateGames(players []models.Player, commanders []models.Commander) error {
	const gameCount = 40

	for i := 0; i < gameCount; i++ {
		seatCount := 2 + rand.Intn(3) // 2 to 4 seats
		seats := rand.Perm(len(players))[:seatCount]

		date := time.Now().AddDate(0, 0, -rand.Intn(60))
		var turns *int
		if rand.Intn(5) > 0 { // some games go unrecorded
			t := 6 + rand.Intn(10)
			turns = &t
		}

		game := models.Game{
			Date:   date,
			Turns:  turns,
			WinCon: sampleWinCons[rand.Intn(len(sampleWinCons))],
		}
		if err := f.db.Create(&game).Error; err != nil {
			return err
		}

		winnerSeat := rand.Intn(seatCount)
		for order, playerIdx := range seats {
			player := players[playerIdx]

			playerGame := models.PlayerGame{
				GameID:    game.ID,
				PlayerID:  player.ID,
				TurnOrder: order + 1,
			}
			if err := f.db.Create(&playerGame).Error; err != nil {
				return err
			}

			commander := commanders[rand.Intn(len(commanders))]
			link := models.PlayerGameCommander{
				GameID:      game.ID,
				PlayerID:    player.ID,
				CommanderID: commander.ID,
				IsPrimary:   true,
			}
			if err := f.db.Create(&link).Error; err != nil {
				return err
			}

			if order == winnerSeat {
				if err := f.db.Model(&models.Game{}).Where("id = ?", game.ID).
					Update("winner_id", player.ID).Error; err != nil {
					return err
				}
			}
		}
	}

	log.Printf("Seeded %d games", gameCount)
	return nil
}

// CleanTestData removes everything the generator writes, respecting
// foreign key order.
func (f *Fixtures) CleanTestData() error {
	log.Println("Cleaning fixtures data...")

	for _, stmt := range []string{
		"DELETE FROM player_game_commander",
		"DELETE FROM player_game",
		"DELETE FROM game",
		"DELETE FROM commander_color",
		"DELETE FROM commander",
		"DELETE FROM player",
	} {
		if err := f.db.Exec(stmt).Error; err != nil {
			return err
		}
	}

	log.Println("Fixtures data cleaned")
	return nil
}
