package database

import (
	"fmt"

	"gorm.io/gorm"
)

type foreignKey struct {
	name      string
	table     string
	column    string
	refTable  string
	refColumn string
}

// No ON DELETE CASCADE here: deleting a venue removes its shows and genre
// links in code, and these keys reject anything left behind.
var foreignKeys = []foreignKey{
	{"fk_shows_venue", "shows", "venue_id", "venues", "id"},
	{"fk_shows_artist", "shows", "artist_id", "artists", "id"},
	{"fk_venue_genres_venue", "venue_genres", "venue_id", "venues", "id"},
	{"fk_venue_genres_genre", "venue_genres", "genre_name", "genres", "name"},
	{"fk_artist_genres_artist", "artist_genres", "artist_id", "artists", "id"},
	{"fk_artist_genres_genre", "artist_genres", "genre_name", "genres", "name"},
}

// MigrateConstraints adds the referential integrity constraints (PostgreSQL)
func MigrateConstraints(db *gorm.DB) error {
	for _, fk := range foreignKeys {
		stmt := fmt.Sprintf(`
			DO $$
			BEGIN
				IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = '%s') THEN
					ALTER TABLE %s ADD CONSTRAINT %s
					FOREIGN KEY (%s) REFERENCES %s (%s);
				END IF;
			END $$;`,
			fk.name, fk.table, fk.name, fk.column, fk.refTable, fk.refColumn)

		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to add constraint %s: %w", fk.name, err)
		}
	}

	// Index for the upcoming-show counts on the listing pages
	return db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_shows_venue_start
		ON shows (venue_id, start_time);
	`).Error
}
