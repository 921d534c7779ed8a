package venues

import (
	"context"

	"fyyur/internal/genres"
	"fyyur/internal/shared/utils/query"
	"fyyur/internal/shows"

	"gorm.io/gorm"
)

// Repository interface for venue operations. Every mutation runs in one
// transaction together with its genre links and, for deletes, its shows.
type Repository interface {
	Create(ctx context.Context, venue *Venue, genreNames []string) error
	Update(ctx context.Context, id uint, venue *Venue, genreNames []string) error
	Delete(ctx context.Context, id uint) (*Venue, int64, error)

	GetByID(ctx context.Context, id uint) (*Venue, error)
	Search(ctx context.Context, term string) ([]Venue, error)
	ListAll(ctx context.Context) ([]Venue, error)
	GenresFor(ctx context.Context, id uint) ([]string, error)
}

// repository implements Repository interface
type repository struct {
	db     *gorm.DB
	genres genres.Repository
	shows  shows.Repository
}

// NewRepository creates a new venue repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{
		db:     db,
		genres: genres.NewRepository(db),
		shows:  shows.NewRepository(db),
	}
}

func (r *repository) Create(ctx context.Context, venue *Venue, genreNames []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(venue).Error; err != nil {
			return err
		}
		return r.genres.WithTx(tx).Assign(ctx, genres.OwnerVenue, venue.ID, genreNames)
	})
}

// Update overwrites every editable column and replaces the genre set.
// venue is reloaded with the stored row on success.
func (r *repository) Update(ctx context.Context, id uint, venue *Venue, genreNames []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing Venue
		if err := tx.First(&existing, id).Error; err != nil {
			return err
		}

		if err := tx.Model(&existing).Updates(venue.editableColumns()).Error; err != nil {
			return err
		}
		if err := r.genres.WithTx(tx).Assign(ctx, genres.OwnerVenue, id, genreNames); err != nil {
			return err
		}

		return tx.First(venue, id).Error
	})
}

// Delete removes the venue's shows, then its genre links, then the venue.
// It returns the deleted venue and how many shows went with it.
func (r *repository) Delete(ctx context.Context, id uint) (*Venue, int64, error) {
	var (
		venue   Venue
		removed int64
	)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&venue, id).Error; err != nil {
			return err
		}

		var err error
		if removed, err = r.shows.WithTx(tx).DeleteByVenue(ctx, id); err != nil {
			return err
		}
		if err := r.genres.WithTx(tx).DeleteFor(ctx, genres.OwnerVenue, id); err != nil {
			return err
		}
		return tx.Delete(&Venue{}, id).Error
	})
	if err != nil {
		return nil, 0, err
	}
	return &venue, removed, nil
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Venue, error) {
	var venue Venue
	if err := r.db.WithContext(ctx).First(&venue, id).Error; err != nil {
		return nil, err
	}
	return &venue, nil
}

// Search matches term anywhere in the name, ignoring case, in insertion order
func (r *repository) Search(ctx context.Context, term string) ([]Venue, error) {
	var venues []Venue
	err := r.db.WithContext(ctx).
		Where(query.NameContains, query.ContainsPattern(term)).
		Order("id ASC").
		Find(&venues).Error
	return venues, err
}

func (r *repository) ListAll(ctx context.Context) ([]Venue, error) {
	var venues []Venue
	err := r.db.WithContext(ctx).
		Order("state ASC, city ASC, id ASC").
		Find(&venues).Error
	return venues, err
}

func (r *repository) GenresFor(ctx context.Context, id uint) ([]string, error) {
	return r.genres.NamesFor(ctx, genres.OwnerVenue, id)
}
