package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// WinConNotRecorded is the sentinel the submission form sends when nobody
// wrote down how the game ended.
const WinConNotRecorded = "NULL"

// WinConditions is the fixed set of accepted win-condition tags, plus the
// not-recorded sentinel.
var WinConditions = []string{
	"Combat",
	"Combo",
	"Commander Damage",
	"Ping/Burn",
	"Scoops",
	WinConNotRecorded,
}

// Game is immutable once written: there are no edit or delete endpoints.
// Turns is NULL when the turn count was not recorded, which is distinct
// from a recorded zero. WinnerID stays NULL when the declared winner name
// matched none of the game's players.
type Game struct {
	ID       uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Date     time.Time `gorm:"type:date;not null;index" json:"date"`
	Turns    *int      `json:"turns"`
	WinCon   string    `gorm:"column:wincon;size:64" json:"wincon"`
	WinnerID *uint     `gorm:"index" json:"winner_id"`
	Winner   *Player   `gorm:"foreignKey:WinnerID;references:ID" json:"winner,omitempty"`
}

func (Game) TableName() string {
	return "game"
}

// PlayerGame is one seat: a player's participation in one game at a given
// turn order.
type PlayerGame struct {
	GameID    uint `gorm:"primaryKey" json:"game_id"`
	PlayerID  uint `gorm:"primaryKey" json:"player_id"`
	TurnOrder int  `gorm:"not null" json:"turn_order"`
}

func (PlayerGame) TableName() string {
	return "player_game"
}

// PlayerGameCommander links a seat to one of its commanders. A seat has one
// primary commander and optionally a partner/background second one.
type PlayerGameCommander struct {
	GameID      uint `gorm:"primaryKey" json:"game_id"`
	PlayerID    uint `gorm:"primaryKey" json:"player_id"`
	CommanderID uint `gorm:"primaryKey" json:"commander_id"`
	IsPrimary   bool `gorm:"not null;default:false" json:"is_primary"`
}

func (PlayerGameCommander) TableName() string {
	return "player_game_commander"
}

// GameCommanderInput names one commander on a seat in a submission.
type GameCommanderInput struct {
	Name      string `json:"name"`
	IsPrimary bool   `json:"isPrimary"`
}

// GamePlayerInput is one seat in a submission. Commander is the legacy
// single-commander field kept for older clients; Commanders wins when both
// are present.
type GamePlayerInput struct {
	Name       string               `json:"name"`
	Commander  string               `json:"commander,omitempty"`
	Commanders []GameCommanderInput `json:"commanders,omitempty"`
	TurnOrder  int                  `json:"turnOrder"`
}

// SeatCommanders resolves the commanders declared for this seat, folding
// the legacy single-commander field into a primary entry. Blank names are
// dropped.
func (p GamePlayerInput) SeatCommanders() []GameCommanderInput {
	var raw []GameCommanderInput
	if len(p.Commanders) > 0 {
		raw = p.Commanders
	} else if strings.TrimSpace(p.Commander) != "" {
		raw = []GameCommanderInput{{Name: p.Commander, IsPrimary: true}}
	}

	commanders := make([]GameCommanderInput, 0, len(raw))
	for _, c := range raw {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			continue
		}
		commanders = append(commanders, GameCommanderInput{Name: name, IsPrimary: c.IsPrimary})
	}
	return commanders
}

// CreateGameRequest is the submission payload for recording a finished game.
type CreateGameRequest struct {
	Date    string            `json:"date"`
	Turns   *int              `json:"turns"`
	WinCon  string            `json:"wincon"`
	Winner  string            `json:"winner"`
	Players []GamePlayerInput `json:"players"`
}

// Validate rejects malformed submissions before anything is written.
// Turn orders are only checked for positivity; contiguity is the client's
// responsibility, matching the original submission form behavior.
func (r *CreateGameRequest) Validate() error {
	if strings.TrimSpace(r.Date) == "" {
		return errors.New("date is required")
	}
	if _, err := r.ParsedDate(); err != nil {
		return errors.New("date must be formatted as YYYY-MM-DD")
	}
	if r.Turns != nil && *r.Turns < 0 {
		return errors.New("turns must be null or a non-negative integer")
	}
	if strings.TrimSpace(r.WinCon) == "" {
		return errors.New("wincon is required")
	}
	if !isValidWinCon(r.WinCon) {
		return fmt.Errorf("wincon must be one of: %s", strings.Join(WinConditions, ", "))
	}
	if len(r.Players) < 2 {
		return errors.New("a game needs at least 2 players")
	}
	for i, p := range r.Players {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("invalid player at index %d: missing or empty name", i)
		}
		if p.TurnOrder < 1 {
			return fmt.Errorf("invalid player at index %d: turnOrder must be a positive integer", i)
		}
	}
	return nil
}

// ParsedDate parses the submission date (YYYY-MM-DD).
func (r *CreateGameRequest) ParsedDate() (time.Time, error) {
	return time.Parse("2006-01-02", strings.TrimSpace(r.Date))
}

// CommanderNames collects every commander name referenced by the
// submission, for registration before the game transaction starts.
func (r *CreateGameRequest) CommanderNames() []string {
	var names []string
	for _, p := range r.Players {
		for _, c := range p.SeatCommanders() {
			names = append(names, c.Name)
		}
	}
	return names
}

func isValidWinCon(wincon string) bool {
	for _, w := range WinConditions {
		if w == wincon {
			return true
		}
	}
	return false
}

// CreateGameResult reports what the recorder persisted.
type CreateGameResult struct {
	GameID          uint `json:"gameId"`
	PlayersInserted int  `json:"playersInserted"`
	WinnerSet       bool `json:"winnerSet"`
}
