package shows

import (
	"context"
	"fmt"
	"time"

	"fyyur/internal/shared/apperr"

	"gorm.io/gorm"
)

type Repository interface {
	// WithTx binds the repository to an open transaction
	WithTx(tx *gorm.DB) Repository

	Create(ctx context.Context, show *Show) error
	List(ctx context.Context) ([]Entry, error)
	DeleteByVenue(ctx context.Context, venueID uint) (int64, error)

	// Classifier inputs
	ListingsForVenue(ctx context.Context, venueID uint) ([]Listing, error)
	ListingsForArtist(ctx context.Context, artistID uint) ([]Listing, error)

	// Counts
	CountUpcoming(ctx context.Context, kind Kind, entityID uint, now time.Time) (int64, error)
	CountUpcomingGrouped(ctx context.Context, kind Kind, ids []uint, now time.Time) (map[uint]int64, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new show repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

// Create inserts show after checking, in the same transaction, that both
// its venue and its artist exist.
func (r *repository) Create(ctx context.Context, show *Show) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var details []apperr.FieldError

		exists, err := rowExists(tx, "venues", show.VenueID)
		if err != nil {
			return err
		}
		if !exists {
			details = append(details, apperr.FieldError{
				Field:   "venue_id",
				Message: fmt.Sprintf("Venue %d does not exist.", show.VenueID),
			})
		}

		exists, err = rowExists(tx, "artists", show.ArtistID)
		if err != nil {
			return err
		}
		if !exists {
			details = append(details, apperr.FieldError{
				Field:   "artist_id",
				Message: fmt.Sprintf("Artist %d does not exist.", show.ArtistID),
			})
		}

		if len(details) > 0 {
			return apperr.Validation("invalid show", details...)
		}
		return tx.Create(show).Error
	})
}

func rowExists(tx *gorm.DB, table string, id uint) (bool, error) {
	var count int64
	err := tx.Table(table).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

type entryRow struct {
	ID              uint
	VenueID         uint
	VenueName       string
	ArtistID        uint
	ArtistName      string
	ArtistImageLink string
	StartTime       time.Time
}

func (r *repository) List(ctx context.Context) ([]Entry, error) {
	var rows []entryRow
	err := r.db.WithContext(ctx).
		Table("shows").
		Select(`shows.id, shows.start_time,
			venues.id AS venue_id, venues.name AS venue_name,
			artists.id AS artist_id, artists.name AS artist_name, artists.image_link AS artist_image_link`).
		Joins("JOIN venues ON venues.id = shows.venue_id").
		Joins("JOIN artists ON artists.id = shows.artist_id").
		Order("shows.start_time ASC, shows.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, len(rows))
	for i, row := range rows {
		entries[i] = Entry{
			ID:              row.ID,
			VenueID:         row.VenueID,
			VenueName:       row.VenueName,
			ArtistID:        row.ArtistID,
			ArtistName:      row.ArtistName,
			ArtistImageLink: row.ArtistImageLink,
			StartTime:       FormatStartTime(row.StartTime),
		}
	}
	return entries, nil
}

func (r *repository) DeleteByVenue(ctx context.Context, venueID uint) (int64, error) {
	result := r.db.WithContext(ctx).Where("venue_id = ?", venueID).Delete(&Show{})
	return result.RowsAffected, result.Error
}

func (r *repository) ListingsForVenue(ctx context.Context, venueID uint) ([]Listing, error) {
	var listings []Listing
	err := r.db.WithContext(ctx).
		Table("shows").
		Select("shows.id AS show_id, shows.start_time, artists.id AS counterpart_id, artists.name, artists.image_link").
		Joins("JOIN artists ON artists.id = shows.artist_id").
		Where("shows.venue_id = ?", venueID).
		Order("shows.start_time ASC, shows.id ASC").
		Scan(&listings).Error
	return listings, err
}

func (r *repository) ListingsForArtist(ctx context.Context, artistID uint) ([]Listing, error) {
	var listings []Listing
	err := r.db.WithContext(ctx).
		Table("shows").
		Select("shows.id AS show_id, shows.start_time, venues.id AS counterpart_id, venues.name, venues.image_link").
		Joins("JOIN venues ON venues.id = shows.venue_id").
		Where("shows.artist_id = ?", artistID).
		Order("shows.start_time ASC, shows.id ASC").
		Scan(&listings).Error
	return listings, err
}

func (r *repository) CountUpcoming(ctx context.Context, kind Kind, entityID uint, now time.Time) (int64, error) {
	if !kind.valid() {
		return 0, fmt.Errorf("unknown show kind %q", kind)
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&Show{}).
		Where(kind.column()+" = ? AND start_time > ?", entityID, now.UTC()).
		Count(&count).Error
	return count, err
}

type groupedCount struct {
	EntityID uint
	Total    int64
}

// CountUpcomingGrouped counts upcoming shows for many entities in one query.
// Entities without upcoming shows are present with a zero count.
func (r *repository) CountUpcomingGrouped(ctx context.Context, kind Kind, ids []uint, now time.Time) (map[uint]int64, error) {
	if !kind.valid() {
		return nil, fmt.Errorf("unknown show kind %q", kind)
	}

	counts := make(map[uint]int64, len(ids))
	if len(ids) == 0 {
		return counts, nil
	}
	for _, id := range ids {
		counts[id] = 0
	}

	var rows []groupedCount
	col := kind.column()
	err := r.db.WithContext(ctx).
		Model(&Show{}).
		Select(col+" AS entity_id, COUNT(*) AS total").
		Where(col+" IN ? AND start_time > ?", ids, now.UTC()).
		Group(col).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.EntityID] = row.Total
	}
	return counts, nil
}
