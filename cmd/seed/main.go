package main

import (
	"context"
	"fmt"
	"log"

	"fyyur/internal/artists"
	"fyyur/internal/genres"
	"fyyur/internal/shared/config"
	"fyyur/internal/shared/database"
	"fyyur/internal/shows"
	"fyyur/internal/venues"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

// WARNING: erases every venue, artist and show (the schema stays)

type Seeder struct {
	db      *database.DB
	venues  venues.Service
	artists artists.Service
	shows   shows.Service
}

func main() {
	fmt.Println("🌱 Starting Fyyur Database Seeder...")

	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	showService := shows.NewService(shows.NewRepository(db.SQL), nil)
	seeder := &Seeder{
		db:      db,
		venues:  venues.NewService(venues.NewRepository(db.SQL), showService, nil),
		artists: artists.NewService(artists.NewRepository(db.SQL), showService, nil),
		shows:   showService,
	}

	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(context.Background()); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed!")
}

// CleanDatabase truncates all tables, children first, and restarts the id
// sequences so the seed data gets ids 1..n.
func (s *Seeder) CleanDatabase() error {
	tables := []string{
		"shows",
		"venue_genres",
		"artist_genres",
		"venues",
		"artists",
		"genres",
	}

	return s.db.SQL.Transaction(func(tx *gorm.DB) error {
		for _, table := range tables {
			fmt.Printf("  Truncating table: %s\n", table)
			if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
				return fmt.Errorf("failed to truncate table %s: %w", table, err)
			}
		}
		return nil
	})
}

// SeedAll re-seeds the genre enumeration, then the listings
func (s *Seeder) SeedAll(ctx context.Context) error {
	if err := genres.NewRepository(s.db.SQL).Seed(ctx); err != nil {
		return fmt.Errorf("failed to seed genres: %w", err)
	}
	fmt.Printf("  Seeded %d genres\n", len(genres.All))

	artistIDs, err := s.SeedArtists(ctx)
	if err != nil {
		return fmt.Errorf("failed to seed artists: %w", err)
	}

	venueIDs, err := s.SeedVenues(ctx)
	if err != nil {
		return fmt.Errorf("failed to seed venues: %w", err)
	}

	if err := s.SeedShows(ctx, venueIDs, artistIDs); err != nil {
		return fmt.Errorf("failed to seed shows: %w", err)
	}
	return nil
}

func (s *Seeder) SeedArtists(ctx context.Context) ([]uint, error) {
	forms := []artists.ArtistForm{
		{
			Name:               "Guns N Petals",
			City:               "San Francisco",
			State:              "CA",
			Phone:              "326-123-5000",
			Website:            "https://www.gunsnpetalsband.com",
			FacebookLink:       "https://www.facebook.com/GunsNPetals",
			SeekingVenue:       true,
			SeekingDescription: "Looking for shows to perform at in the San Francisco Bay Area!",
			ImageLink:          "https://images.unsplash.com/photo-1549213783-8284d0336c4f?ixlib=rb-1.2.1&ixid=eyJhcHBfaWQiOjEyMDd9&auto=format&fit=crop&w=300&q=80",
			Genres:             []string{genres.RockNRoll},
		},
		{
			Name:         "Matt Quevedo",
			City:         "New York",
			State:        "NY",
			Phone:        "300-400-5000",
			FacebookLink: "https://www.facebook.com/mattquevedo923251523",
			ImageLink:    "https://images.unsplash.com/photo-1495223153807-b916f75de8c5?ixlib=rb-1.2.1&ixid=eyJhcHBfaWQiOjEyMDd9&auto=format&fit=crop&w=334&q=80",
			Genres:       []string{genres.Jazz},
		},
		{
			Name:      "The Wild Sax Band",
			City:      "San Francisco",
			State:     "CA",
			Phone:     "432-325-5432",
			ImageLink: "https://images.unsplash.com/photo-1558369981-f9ca78462e61?ixlib=rb-1.2.1&ixid=eyJhcHBfaWQiOjEyMDd9&auto=format&fit=crop&w=794&q=80",
			Genres:    []string{genres.Jazz, genres.Classical},
		},
	}

	ids := make([]uint, 0, len(forms))
	for _, form := range forms {
		artist, err := s.artists.Create(ctx, form)
		if err != nil {
			return nil, fmt.Errorf("artist %s: %w", form.Name, err)
		}
		fmt.Printf("  Created artist %d: %s\n", artist.ID, artist.Name)
		ids = append(ids, artist.ID)
	}
	return ids, nil
}

func (s *Seeder) SeedVenues(ctx context.Context) ([]uint, error) {
	forms := []venues.VenueForm{
		{
			Name:               "The Musical Hop",
			Address:            "1015 Folsom Street",
			City:               "San Francisco",
			State:              "CA",
			Phone:              "123-123-1234",
			Website:            "https://www.themusicalhop.com",
			FacebookLink:       "https://www.facebook.com/TheMusicalHop",
			SeekingTalent:      true,
			SeekingDescription: "We are on the lookout for a local artist to play every two weeks. Please call us.",
			ImageLink:          "https://images.unsplash.com/photo-1543900694-133f37abaaa5?ixlib=rb-1.2.1&ixid=eyJhcHBfaWQiOjEyMDd9&auto=format&fit=crop&w=400&q=60",
			Genres:             []string{genres.Jazz, genres.Reggae, genres.MusicalTheatre, genres.Classical, genres.Folk},
		},
		{
			Name:         "The Dueling Pianos Bar",
			Address:      "335 Delancey Street",
			City:         "New York",
			State:        "NY",
			Phone:        "914-003-1132",
			Website:      "https://www.theduelingpianos.com",
			FacebookLink: "https://www.facebook.com/theduelingpianos",
			ImageLink:    "https://images.unsplash.com/photo-1497032205916-ac775f0649ae?ixlib=rb-1.2.1&ixid=eyJhcHBfaWQiOjEyMDd9&auto=format&fit=crop&w=750&q=80",
			Genres:       []string{genres.Classical, genres.RandB, genres.HipHop},
		},
		{
			Name:         "Park Square Live Music & Coffee",
			Address:      "34 Whiskey Moore Ave",
			City:         "San Francisco",
			State:        "CA",
			Phone:        "415-000-1234",
			Website:      "https://www.parksquarelivemusicandcoffee.com",
			FacebookLink: "https://www.facebook.com/ParkSquareLiveMusicAndCoffee",
			ImageLink:    "https://images.unsplash.com/photo-1485686531765-ba63b07845a7?ixlib=rb-1.2.1&ixid=eyJhcHBfaWQiOjEyMDd9&auto=format&fit=crop&w=747&q=80",
			Genres:       []string{genres.RockNRoll, genres.Jazz, genres.Classical, genres.Folk},
		},
	}

	ids := make([]uint, 0, len(forms))
	for _, form := range forms {
		venue, err := s.venues.Create(ctx, form)
		if err != nil {
			return nil, fmt.Errorf("venue %s: %w", form.Name, err)
		}
		fmt.Printf("  Created venue %d: %s\n", venue.ID, venue.Name)
		ids = append(ids, venue.ID)
	}
	return ids, nil
}

// SeedShows books the seed shows; venue and artist are indexes into the
// ids returned by SeedVenues and SeedArtists.
func (s *Seeder) SeedShows(ctx context.Context, venueIDs, artistIDs []uint) error {
	bookings := []struct {
		venue, artist int
		start         string
	}{
		{0, 0, "2019-05-21T21:30:00.000Z"},
		{2, 1, "2019-06-15T23:00:00.000Z"},
		{2, 2, "2019-04-08T20:00:00.000Z"},
		{2, 2, "2035-04-08T20:00:00.000Z"},
		{2, 2, "2035-04-15T20:00:00.000Z"},
		{2, 2, "2035-04-15T20:00:00.000Z"},
	}

	for _, b := range bookings {
		show, err := s.shows.Create(ctx, shows.CreateShowRequest{
			VenueID:   venueIDs[b.venue],
			ArtistID:  artistIDs[b.artist],
			StartTime: b.start,
		})
		if err != nil {
			return fmt.Errorf("show at %s: %w", b.start, err)
		}
		fmt.Printf("  Created show %d: venue %d, artist %d, %s\n",
			show.ID, show.VenueID, show.ArtistID, shows.FormatStartTime(show.StartTime))
	}
	return nil
}
