package services

import (
	"context"
	"log"
	"strings"
	"sync"

	"commander-tracker-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CommanderService keeps the commander table in step with names referenced
// by incoming games, backfilling image and color identity from Scryfall.
type CommanderService struct {
	db       *gorm.DB
	scryfall *ScryfallService
}

func NewCommanderService(db *gorm.DB, scryfall *ScryfallService) *CommanderService {
	return &CommanderService{
		db:       db,
		scryfall: scryfall,
	}
}

// EnsureCommandersExist registers every name not already present in the
// commander table. Missing names are backfilled concurrently, one task per
// name, and the call returns once all of them have finished. A failed
// lookup is logged and skipped; it never blocks game creation, so a
// commander may end up persisted with no image or colors.
func (s *CommanderService) EnsureCommandersExist(ctx context.Context, names []string) {
	unique := dedupeNames(names)
	if len(unique) == 0 {
		return
	}

	var existing []string
	if err := s.db.Model(&models.Commander{}).
		Where("commander_name IN ?", unique).
		Pluck("commander_name", &existing).Error; err != nil {
		log.Printf("Commander existence check failed: %v", err)
		return
	}

	known := make(map[string]bool, len(existing))
	for _, name := range existing {
		known[name] = true
	}

	var wg sync.WaitGroup
	for _, name := range unique {
		if known[name] {
			continue
		}
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			if err := s.backfillCommander(ctx, name); err != nil {
				log.Printf("Scryfall backfill failed for %q: %v", name, err)
			}
		}(name)
	}
	wg.Wait()
}

// backfillCommander looks the name up on Scryfall and upserts the row.
// The upsert keyed on the unique name resolves races between concurrent
// game submissions referencing the same new commander: the loser updates
// instead of inserting.
func (s *CommanderService) backfillCommander(ctx context.Context, name string) error {
	card, err := s.scryfall.GetCardInfoByName(ctx, name, false)
	if err != nil {
		return err
	}

	commander := models.Commander{Name: name, Image: card.Image}
	if err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "commander_name"}},
		DoUpdates: clause.AssignmentColumns([]string{"image"}),
	}).Create(&commander).Error; err != nil {
		return err
	}

	return s.replaceColors(commander.ID, card.ColorIdentity)
}

// replaceColors swaps the commander's color relation for the identity just
// reported. Color rows are replaced wholesale rather than merged.
func (s *CommanderService) replaceColors(commanderID uint, identity []string) error {
	colors := normalizeColors(identity)
	if len(colors) == 0 {
		return nil
	}

	if err := s.db.Where("commander_id = ?", commanderID).
		Delete(&models.CommanderColor{}).Error; err != nil {
		return err
	}

	rows := make([]models.CommanderColor, 0, len(colors))
	for _, code := range colors {
		rows = append(rows, models.CommanderColor{CommanderID: commanderID, ColorCode: code})
	}
	return s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
}

// RefreshIncomplete re-runs the backfill for commanders that are missing an
// image or have no color rows, typically because Scryfall was unreachable
// when they were first registered. Returns how many rows were refreshed.
func (s *CommanderService) RefreshIncomplete(ctx context.Context) (int, error) {
	var incomplete []models.Commander
	err := s.db.
		Where("image IS NULL OR id NOT IN (SELECT DISTINCT commander_id FROM commander_color)").
		Find(&incomplete).Error
	if err != nil {
		return 0, err
	}

	refreshed := 0
	for _, commander := range incomplete {
		if err := s.backfillCommander(ctx, commander.Name); err != nil {
			log.Printf("Refresh failed for %q: %v", commander.Name, err)
			continue
		}
		refreshed++
	}
	return refreshed, nil
}

func dedupeNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	unique := make([]string, 0, len(names))
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		unique = append(unique, name)
	}
	return unique
}

func normalizeColors(identity []string) []string {
	allowed := make(map[string]bool, len(models.ColorCodes))
	for _, code := range models.ColorCodes {
		allowed[code] = true
	}

	seen := make(map[string]bool, len(identity))
	colors := make([]string, 0, len(identity))
	for _, raw := range identity {
		code := strings.ToUpper(strings.TrimSpace(raw))
		if !allowed[code] || seen[code] {
			continue
		}
		seen[code] = true
		colors = append(colors, code)
	}
	return colors
}
