package services

import (
	"math"

	"commander-tracker-api/models"

	"gorm.io/gorm"
)

// StatsService computes every statistics endpoint as an independent
// read-only query over the schema. Nothing is cached: each call recomputes
// from current data on a pooled connection.
type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{
		db: db,
	}
}

// MostPlayed returns the top 8 primary commanders by distinct games played
// within the trailing 30 days, ties broken by name.
func (s *StatsService) MostPlayed() ([]models.MostPlayedRow, error) {
	rows := []models.MostPlayedRow{}
	err := s.db.Raw(`
		SELECT
			c.commander_name,
			c.image,
			COUNT(*) AS games_played
		FROM player_game_commander pgc
		JOIN commander   c  ON c.id = pgc.commander_id
		JOIN player_game pg ON pg.game_id = pgc.game_id AND pg.player_id = pgc.player_id
		JOIN game        g  ON g.id = pg.game_id
		WHERE g.date >= (CURRENT_DATE - INTERVAL '30 days')
		  AND pgc.is_primary = TRUE
		GROUP BY c.commander_name, c.image
		ORDER BY games_played DESC, c.commander_name ASC
		LIMIT 8
	`).Scan(&rows).Error
	return rows, err
}

// CommanderWinRate aggregates wins over distinct games for each primary
// commander. A non-empty playerName restricts the rows to that player's
// commanders by exact name match.
func (s *StatsService) CommanderWinRate(playerName string) ([]models.CommanderWinRateRow, error) {
	query := `
		SELECT
			c.commander_name,
			COUNT(*) FILTER (WHERE g.winner_id = pg.player_id)::int AS wins,
			COUNT(DISTINCT pg.game_id)::int AS games,
			ROUND(
				(COUNT(*) FILTER (WHERE g.winner_id = pg.player_id))::numeric
				/ NULLIF(COUNT(DISTINCT pg.game_id), 0) * 100
			, 2) AS win_rate
		FROM player_game_commander pgc
		JOIN commander c ON c.id = pgc.commander_id
		JOIN player_game pg ON pg.game_id = pgc.game_id AND pg.player_id = pgc.player_id
		JOIN player p ON p.player_id = pg.player_id
		LEFT JOIN game g ON g.id = pg.game_id
		WHERE pgc.is_primary = TRUE
	`
	var args []any
	if playerName != "" {
		query += ` AND p.player_name = ?`
		args = append(args, playerName)
	}
	query += `
		GROUP BY c.commander_name
		ORDER BY wins DESC, games DESC
	`

	rows := []models.CommanderWinRateRow{}
	err := s.db.Raw(query, args...).Scan(&rows).Error
	return rows, err
}

// PlayerWinRate aggregates wins over games per player. Placeholder seats
// whose stored name contains "Guest" are excluded. A non-empty playerName
// restricts the result by exact name match.
func (s *StatsService) PlayerWinRate(playerName string) ([]models.PlayerWinRateRow, error) {
	query := `
		SELECT
			p.player_name,
			COUNT(*) FILTER (WHERE g.winner_id = pg.player_id)::int AS wins,
			COUNT(*)::int AS games,
			ROUND(
				(COUNT(*) FILTER (WHERE g.winner_id = pg.player_id)::numeric / NULLIF(COUNT(*), 0)) * 100,
				2
			) AS win_rate
		FROM player p
		JOIN player_game pg ON pg.player_id = p.player_id
		JOIN game g ON g.id = pg.game_id
		WHERE p.player_name NOT LIKE '%Guest%'
	`
	var args []any
	if playerName != "" {
		query += ` AND p.player_name = ?`
		args = append(args, playerName)
	}
	query += `
		GROUP BY p.player_name
		ORDER BY wins DESC
	`

	rows := []models.PlayerWinRateRow{}
	err := s.db.Raw(query, args...).Scan(&rows).Error
	return rows, err
}

// ColorFrequency reports, for each of the five colors, the average across
// all games of the fraction of that game's seats whose commander identity
// includes the color. Games are weighted equally regardless of seat count.
// Always yields exactly five rows in WUBRG order.
func (s *StatsService) ColorFrequency() ([]models.ColorFrequencyRow, error) {
	rows := []models.ColorFrequencyRow{}
	err := s.db.Raw(`
		WITH colors AS (
			SELECT unnest(ARRAY['W','U','B','R','G']::text[]) AS color
		),
		all_games AS (
			SELECT DISTINCT pg.game_id
			FROM player_game pg
		),
		seats AS (
			SELECT ag.game_id, COUNT(DISTINCT pg.player_id) AS seats
			FROM all_games ag
			JOIN player_game pg ON pg.game_id = ag.game_id
			GROUP BY ag.game_id
		),
		seats_with_color AS (
			SELECT DISTINCT ag.game_id, pg.player_id, cc.color_code
			FROM all_games ag
			JOIN player_game pg ON pg.game_id = ag.game_id
			JOIN player_game_commander pgc
			     ON pgc.game_id = pg.game_id AND pgc.player_id = pg.player_id
			JOIN commander c ON c.id = pgc.commander_id
			JOIN commander_color cc ON cc.commander_id = c.id
			WHERE cc.color_code = ANY(ARRAY['W','U','B','R','G'])
		),
		share_per_game AS (
			SELECT
				swc.game_id,
				swc.color_code,
				COUNT(DISTINCT swc.player_id)::float / s.seats AS share
			FROM seats_with_color swc
			JOIN seats s ON s.game_id = swc.game_id
			GROUP BY swc.game_id, swc.color_code, s.seats
		),
		agg AS (
			SELECT color_code AS color, AVG(share) AS share
			FROM share_per_game
			GROUP BY color_code
		),
		totals AS (
			SELECT
				COALESCE(COUNT(*)::int, 0) AS total_games,
				ROUND(COALESCE(AVG(seats), 0)::numeric, 2) AS avg_players_per_game
			FROM seats
		)
		SELECT
			c.color,
			ROUND(COALESCE(a.share, 0)::numeric, 6) AS share,
			ROUND((COALESCE(a.share, 0) * 100)::numeric, 2) AS pct,
			t.total_games,
			t.avg_players_per_game
		FROM colors c
		LEFT JOIN agg a ON a.color = c.color
		CROSS JOIN totals t
		ORDER BY array_position(ARRAY['W','U','B','R','G']::text[], c.color)
	`).Scan(&rows).Error
	return rows, err
}

// PlayerColorFrequency reports, for each color, the fraction of the named
// player's own games in which any of their seat's commanders carries that
// color. The name match is case-insensitive. avg_players_per_game is NULL
// in this mode; total_games is zero when the player is unknown.
func (s *StatsService) PlayerColorFrequency(playerName string) ([]models.ColorFrequencyRow, error) {
	rows := []models.ColorFrequencyRow{}
	err := s.db.Raw(`
		WITH colors AS (
			SELECT unnest(ARRAY['W','U','B','R','G']::text[]) AS color
		),
		user_games AS (
			SELECT DISTINCT pg.game_id, pg.player_id
			FROM player p
			JOIN player_game pg ON pg.player_id = p.player_id
			WHERE p.player_name ILIKE ?
		),
		user_color_per_game AS (
			SELECT DISTINCT ug.game_id, cc.color_code
			FROM user_games ug
			JOIN player_game_commander pgc
			     ON pgc.game_id = ug.game_id AND pgc.player_id = ug.player_id
			JOIN commander c ON c.id = pgc.commander_id
			JOIN commander_color cc ON cc.commander_id = c.id
			WHERE cc.color_code = ANY(ARRAY['W','U','B','R','G'])
		),
		totals AS (
			SELECT COALESCE(COUNT(*)::int, 0) AS total_games FROM user_games
		),
		presence_per_game AS (
			SELECT
				ug.game_id,
				c.color,
				CASE
					WHEN EXISTS (
						SELECT 1
						FROM user_color_per_game ucp
						WHERE ucp.game_id = ug.game_id AND ucp.color_code = c.color
					)
					THEN 1.0 ELSE 0.0
				END AS present
			FROM user_games ug
			CROSS JOIN colors c
		),
		agg AS (
			SELECT color, AVG(present) AS share
			FROM presence_per_game
			GROUP BY color
		)
		SELECT
			c.color,
			ROUND(COALESCE(a.share, 0)::numeric, 6) AS share,
			ROUND((COALESCE(a.share, 0) * 100)::numeric, 2) AS pct,
			t.total_games,
			NULL::numeric AS avg_players_per_game
		FROM colors c
		LEFT JOIN agg a ON a.color = c.color
		CROSS JOIN totals t
		ORDER BY array_position(ARRAY['W','U','B','R','G']::text[], c.color)
	`, playerName).Scan(&rows).Error
	return rows, err
}

// GameFeed returns the 20 most recent games with their participants
// aggregated in turn order. A non-empty playerName restricts the feed to
// games that player sat in, matched case-insensitively as a substring.
func (s *StatsService) GameFeed(playerName string) ([]models.GameFeedRow, error) {
	query := `
		WITH game_participants AS (
			SELECT
				g.id AS game_id,
				g.date,
				g.turns,
				g.wincon,
				winner_p.player_name AS winner_name,
				g.winner_id,
				json_agg(
					json_build_object(
						'player_id', p.player_id,
						'player_name', p.player_name,
						'commander_name', c.commander_name,
						'turn_order', pg.turn_order,
						'is_winner', CASE WHEN pg.player_id = g.winner_id THEN true ELSE false END
					) ORDER BY pg.turn_order
				) AS participants
			FROM game g
			JOIN player_game pg ON pg.game_id = g.id
			JOIN player p ON p.player_id = pg.player_id
			LEFT JOIN player winner_p ON winner_p.player_id = g.winner_id
			LEFT JOIN player_game_commander pgc
			     ON pgc.game_id = pg.game_id AND pgc.player_id = pg.player_id AND pgc.is_primary = TRUE
			LEFT JOIN commander c ON c.id = pgc.commander_id
			WHERE g.date IS NOT NULL
	`
	var args []any
	if playerName != "" {
		query += ` AND EXISTS (
				SELECT 1 FROM player_game pg2
				JOIN player p2 ON p2.player_id = pg2.player_id
				WHERE pg2.game_id = g.id
				  AND p2.player_name ILIKE ?
			)`
		args = append(args, "%"+playerName+"%")
	}
	query += `
			GROUP BY g.id, g.date, g.turns, g.wincon, winner_p.player_name, g.winner_id
		)
		SELECT
			gp.game_id,
			gp.date,
			gp.turns,
			gp.wincon,
			gp.winner_name,
			gp.participants
		FROM game_participants gp
		ORDER BY gp.date DESC, gp.game_id DESC
		LIMIT 20
	`

	rows := []models.GameFeedRow{}
	err := s.db.Raw(query, args...).Scan(&rows).Error
	return rows, err
}

// HeadToHead returns the record between two named players across the games
// both sat in, self-pairing excluded, plus the shared game list. The result
// carries at most one row and is empty when the players share no games.
func (s *StatsService) HeadToHead(playerName, opponentName string) ([]models.HeadToHeadMatchup, error) {
	rows := []models.HeadToHeadMatchup{}
	err := s.db.Raw(`
		WITH p1 AS (SELECT player_id FROM player WHERE player_name = ?),
		     p2 AS (SELECT player_id FROM player WHERE player_name = ?),
		     shared_games AS (
			SELECT DISTINCT pg1.game_id
			FROM player_game pg1
			JOIN player_game pg2 ON pg2.game_id = pg1.game_id
			WHERE pg1.player_id = (SELECT player_id FROM p1)
			  AND pg2.player_id = (SELECT player_id FROM p2)
			  AND pg1.player_id <> pg2.player_id
		     ),
		     matchup AS (
			SELECT
				COUNT(*)::int AS total_games,
				COUNT(*) FILTER (WHERE g.winner_id = (SELECT player_id FROM p1))::int AS player1_wins,
				COUNT(*) FILTER (WHERE g.winner_id = (SELECT player_id FROM p2))::int AS player2_wins,
				ROUND(
					(COUNT(*) FILTER (WHERE g.winner_id = (SELECT player_id FROM p1)))::numeric
					/ NULLIF(COUNT(*), 0) * 100
				, 2) AS player1_win_rate
			FROM shared_games sg
			JOIN game g ON g.id = sg.game_id
		     )
		SELECT
			?::text AS player1,
			?::text AS player2,
			m.total_games,
			m.player1_wins,
			m.player2_wins,
			m.player1_win_rate,
			(
				SELECT json_agg(
					json_build_object(
						'game_id', g.id,
						'date', g.date,
						'turns', g.turns,
						'wincon', g.wincon,
						'winner_name', winner_p.player_name,
						'participants', (
							SELECT json_agg(
								json_build_object(
									'player_id', p.player_id,
									'player_name', p.player_name,
									'commander_name', c.commander_name,
									'turn_order', pg.turn_order,
									'is_winner', CASE WHEN pg.player_id = g.winner_id THEN true ELSE false END
								) ORDER BY pg.turn_order
							)
							FROM player_game pg
							JOIN player p ON p.player_id = pg.player_id
							LEFT JOIN player_game_commander pgc
							     ON pgc.game_id = pg.game_id AND pgc.player_id = pg.player_id AND pgc.is_primary = TRUE
							LEFT JOIN commander c ON c.id = pgc.commander_id
							WHERE pg.game_id = g.id
						)
					) ORDER BY g.date DESC
				)
				FROM shared_games sg
				JOIN game g ON g.id = sg.game_id
				LEFT JOIN player winner_p ON winner_p.player_id = g.winner_id
			) AS recent_games
		FROM matchup m
		WHERE m.total_games > 0
	`, playerName, opponentName, playerName, opponentName).Scan(&rows).Error
	return rows, err
}

// OpponentRecords groups the named player's games by each distinct
// opponent encountered, most-played first.
func (s *StatsService) OpponentRecords(playerName string) ([]models.OpponentRecord, error) {
	rows := []models.OpponentRecord{}
	err := s.db.Raw(`
		WITH player_games AS (
			SELECT
				pg.game_id,
				p1.player_name AS target_player,
				pg.player_id AS target_player_id,
				g.winner_id,
				g.date
			FROM player_game pg
			JOIN player p1 ON p1.player_id = pg.player_id
			JOIN game g ON g.id = pg.game_id
			WHERE p1.player_name = ?
		),
		opponent_games AS (
			SELECT
				pg_main.game_id,
				pg_main.target_player,
				pg_main.target_player_id,
				p2.player_name AS opponent,
				pg2.player_id AS opponent_id,
				pg_main.winner_id,
				pg_main.date
			FROM player_games pg_main
			JOIN player_game pg2 ON pg2.game_id = pg_main.game_id
			JOIN player p2 ON p2.player_id = pg2.player_id
			WHERE p2.player_name != pg_main.target_player
		)
		SELECT
			opponent,
			COUNT(*)::int AS games_played,
			COUNT(*) FILTER (WHERE winner_id = og.target_player_id)::int AS wins,
			COUNT(*) FILTER (WHERE winner_id = og.opponent_id)::int AS losses,
			ROUND(
				(COUNT(*) FILTER (WHERE winner_id = og.target_player_id))::numeric
				/ NULLIF(COUNT(*), 0) * 100
			, 2) AS win_rate,
			MAX(date) AS last_played
		FROM opponent_games og
		GROUP BY opponent
		HAVING COUNT(*) > 0
		ORDER BY games_played DESC, wins DESC
	`, playerName).Scan(&rows).Error
	return rows, err
}

// TotalGames counts every recorded game.
func (s *StatsService) TotalGames() (int64, error) {
	var total int64
	err := s.db.Model(&models.Game{}).Count(&total).Error
	return total, err
}

// UniquePlayers counts every distinct player ever seated.
func (s *StatsService) UniquePlayers() (int64, error) {
	var total int64
	err := s.db.Model(&models.Player{}).Count(&total).Error
	return total, err
}

// AverageGameLength averages recorded turn counts to one decimal. Games
// with NULL or non-positive turns are excluded entirely, so both counts
// cover only games where a turn count was recorded.
func (s *StatsService) AverageGameLength() (*models.AvgGameLength, error) {
	var row struct {
		AvgTurns       *float64
		GamesWithTurns int
	}
	err := s.db.Raw(`
		SELECT
			AVG(turns) AS avg_turns,
			COUNT(*)::int AS games_with_turns
		FROM game
		WHERE turns > 0
	`).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return newAvgGameLength(row.AvgTurns, row.GamesWithTurns), nil
}

// newAvgGameLength rounds the average to one decimal. A nil average means
// no game has a recorded turn count and reports as zero.
func newAvgGameLength(avgTurns *float64, gamesWithTurns int) *models.AvgGameLength {
	result := &models.AvgGameLength{
		GamesWithTurns: gamesWithTurns,
		TotalGames:     gamesWithTurns,
	}
	if avgTurns != nil {
		result.AvgTurns = math.Round(*avgTurns*10) / 10
	}
	return result
}
