package models

import (
	"time"

	"gorm.io/datatypes"
)

// MostPlayedRow is one commander in the trailing-30-days most-played list.
type MostPlayedRow struct {
	CommanderName string  `json:"commander_name"`
	Image         *string `json:"image"`
	GamesPlayed   int     `json:"games_played"`
}

// CommanderWinRateRow aggregates wins over games for one primary commander.
type CommanderWinRateRow struct {
	CommanderName string  `json:"commander_name"`
	Wins          int     `json:"wins"`
	Games         int     `json:"games"`
	WinRate       float64 `gorm:"column:win_rate" json:"win_rate"`
}

// PlayerWinRateRow aggregates wins over games for one player.
type PlayerWinRateRow struct {
	PlayerName string  `gorm:"column:player_name" json:"player_name"`
	Wins       int     `json:"wins"`
	Games      int     `json:"games"`
	WinRate    float64 `gorm:"column:win_rate" json:"win_rate"`
}

// ColorFrequencyRow is one color's share of play. Share is a 6-decimal
// fraction in [0,1]; Pct is the same value as a 2-decimal percentage.
// AvgPlayersPerGame is NULL in per-player mode, where seat counts are not
// meaningful.
type ColorFrequencyRow struct {
	Color             string   `json:"color"`
	Share             float64  `json:"share"`
	Pct               float64  `json:"pct"`
	TotalGames        int      `gorm:"column:total_games" json:"total_games"`
	AvgPlayersPerGame *float64 `gorm:"column:avg_players_per_game" json:"avg_players_per_game"`
}

// GameFeedRow is one game in the recent-games feed with its participants
// aggregated to a JSON array ordered by turn order.
type GameFeedRow struct {
	GameID       uint           `gorm:"column:game_id" json:"game_id"`
	Date         time.Time      `json:"date"`
	Turns        *int           `json:"turns"`
	WinCon       string         `gorm:"column:wincon" json:"wincon"`
	WinnerName   *string        `gorm:"column:winner_name" json:"winner_name"`
	Participants datatypes.JSON `json:"participants"`
}

// HeadToHeadMatchup is the record between two named players across the
// games they both sat in.
type HeadToHeadMatchup struct {
	Player1        string         `gorm:"column:player1" json:"player1"`
	Player2        string         `gorm:"column:player2" json:"player2"`
	TotalGames     int            `gorm:"column:total_games" json:"total_games"`
	Player1Wins    int            `gorm:"column:player1_wins" json:"player1_wins"`
	Player2Wins    int            `gorm:"column:player2_wins" json:"player2_wins"`
	Player1WinRate *float64       `gorm:"column:player1_win_rate" json:"player1_win_rate"`
	RecentGames    datatypes.JSON `gorm:"column:recent_games" json:"recent_games"`
}

// OpponentRecord is one opponent's line in a player's head-to-head summary.
type OpponentRecord struct {
	Opponent    string    `json:"opponent"`
	GamesPlayed int       `gorm:"column:games_played" json:"games_played"`
	Wins        int       `json:"wins"`
	Losses      int       `json:"losses"`
	WinRate     *float64  `gorm:"column:win_rate" json:"win_rate"`
	LastPlayed  time.Time `gorm:"column:last_played" json:"last_played"`
}

// AvgGameLength reports average recorded turns. Games with NULL or
// non-positive turns are excluded from the average and both counts.
type AvgGameLength struct {
	AvgTurns       float64 `json:"avg_turns"`
	GamesWithTurns int     `json:"games_with_turns"`
	TotalGames     int     `json:"total_games"`
}
