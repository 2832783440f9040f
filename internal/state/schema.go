package state

import (
	"database/sql"
)

const currentSchemaVersion = 1

func initSchema(conn *sql.DB) error {
	_, err := conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS lyrics_cache (
			artist_key TEXT NOT NULL,
			title_key TEXT NOT NULL,
			artist TEXT NOT NULL,
			title TEXT NOT NULL,
			album TEXT,
			lrc TEXT NOT NULL,
			fetched_at INTEGER NOT NULL,
			PRIMARY KEY (artist_key, title_key)
		);

		CREATE INDEX IF NOT EXISTS idx_lyrics_cache_fetched_at ON lyrics_cache(fetched_at);
	`)
	if err != nil {
		return err
	}

	_, err = conn.Exec(`
		INSERT OR IGNORE INTO schema_version (version) VALUES (?)
	`, currentSchemaVersion)
	return err
}
