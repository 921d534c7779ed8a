package database

import (
	"context"

	"fyyur/internal/artists"
	"fyyur/internal/genres"
	"fyyur/internal/shows"
	"fyyur/internal/venues"

	"gorm.io/gorm"
)

// Migrate creates the schema, seeds the genre enumeration and, on
// PostgreSQL, adds the foreign keys.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&genres.Genre{},
		&venues.Venue{},
		&artists.Artist{},
		&shows.Show{},
		&genres.VenueGenre{},
		&genres.ArtistGenre{},
	)
	if err != nil {
		return err
	}

	if err := genres.NewRepository(db).Seed(context.Background()); err != nil {
		return err
	}

	if db.Dialector.Name() == "postgres" {
		return MigrateConstraints(db)
	}
	return nil
}
