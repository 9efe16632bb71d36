package migrations

import "gorm.io/gorm"

// GetTrackerMigrations returns the schema for the match tracker: players,
// commanders and their color identities, games, seats, and seat-commander
// links.
func GetTrackerMigrations() []MigrationDefinition {
	return []MigrationDefinition{
		{
			Name: "2025_01_10_000000_create_tracker_tables",
			Up: func(db *gorm.DB) error {
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS player (
						player_id BIGSERIAL PRIMARY KEY,
						player_name VARCHAR(255) NOT NULL UNIQUE
					);
				`).Error; err != nil {
					return err
				}

				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS commander (
						id BIGSERIAL PRIMARY KEY,
						commander_name VARCHAR(255) NOT NULL UNIQUE,
						image VARCHAR(1024) NULL
					);
					CREATE TABLE IF NOT EXISTS commander_color (
						commander_id BIGINT NOT NULL,
						color_code CHAR(1) NOT NULL,
						PRIMARY KEY (commander_id, color_code),
						FOREIGN KEY (commander_id) REFERENCES commander(id) ON DELETE CASCADE
					);
				`).Error; err != nil {
					return err
				}

				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS game (
						id BIGSERIAL PRIMARY KEY,
						date DATE NOT NULL,
						turns INT NULL,
						wincon VARCHAR(64) NULL,
						winner_id BIGINT NULL,
						FOREIGN KEY (winner_id) REFERENCES player(player_id)
					);
					CREATE INDEX IF NOT EXISTS idx_game_date ON game(date);
					CREATE INDEX IF NOT EXISTS idx_game_winner_id ON game(winner_id);
				`).Error; err != nil {
					return err
				}

				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS player_game (
						game_id BIGINT NOT NULL,
						player_id BIGINT NOT NULL,
						turn_order INT NOT NULL,
						PRIMARY KEY (game_id, player_id),
						FOREIGN KEY (game_id) REFERENCES game(id) ON DELETE CASCADE,
						FOREIGN KEY (player_id) REFERENCES player(player_id)
					);
					CREATE INDEX IF NOT EXISTS idx_player_game_player_id ON player_game(player_id);
				`).Error; err != nil {
					return err
				}

				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS player_game_commander (
						game_id BIGINT NOT NULL,
						player_id BIGINT NOT NULL,
						commander_id BIGINT NOT NULL,
						is_primary BOOLEAN NOT NULL DEFAULT FALSE,
						PRIMARY KEY (game_id, player_id, commander_id),
						FOREIGN KEY (game_id) REFERENCES game(id) ON DELETE CASCADE,
						FOREIGN KEY (player_id) REFERENCES player(player_id),
						FOREIGN KEY (commander_id) REFERENCES commander(id)
					);
					CREATE INDEX IF NOT EXISTS idx_pgc_commander_id ON player_game_commander(commander_id);
				`).Error; err != nil {
					return err
				}

				return nil
			},
			Down: func(db *gorm.DB) error {
				// Drop in reverse dependency order.
				for _, table := range []string{
					"player_game_commander",
					"player_game",
					"game",
					"commander_color",
					"commander",
					"player",
				} {
					if err := db.Exec("DROP TABLE IF EXISTS " + table + " CASCADE").Error; err != nil {
						return err
					}
				}
				return nil
			},
		},
	}
}
