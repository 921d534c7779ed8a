package artists

import (
	"context"

	"fyyur/internal/genres"
	"fyyur/internal/shared/utils/query"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, artist *Artist, genreNames []string) error
	Update(ctx context.Context, id uint, artist *Artist, genreNames []string) error

	GetByID(ctx context.Context, id uint) (*Artist, error)
	Search(ctx context.Context, term string) ([]Artist, error)
	ListByName(ctx context.Context) ([]Artist, error)
	GenresFor(ctx context.Context, id uint) ([]string, error)
}

type repository struct {
	db     *gorm.DB
	genres genres.Repository
}

// NewRepository creates a new artist repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db, genres: genres.NewRepository(db)}
}

func (r *repository) Create(ctx context.Context, artist *Artist, genreNames []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(artist).Error; err != nil {
			return err
		}
		return r.genres.WithTx(tx).Assign(ctx, genres.OwnerArtist, artist.ID, genreNames)
	})
}

func (r *repository) Update(ctx context.Context, id uint, artist *Artist, genreNames []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing Artist
		if err := tx.First(&existing, id).Error; err != nil {
			return err
		}

		if err := tx.Model(&existing).Updates(artist.editableColumns()).Error; err != nil {
			return err
		}
		if err := r.genres.WithTx(tx).Assign(ctx, genres.OwnerArtist, id, genreNames); err != nil {
			return err
		}

		return tx.First(artist, id).Error
	})
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Artist, error) {
	var artist Artist
	if err := r.db.WithContext(ctx).First(&artist, id).Error; err != nil {
		return nil, err
	}
	return &artist, nil
}

func (r *repository) Search(ctx context.Context, term string) ([]Artist, error) {
	var artists []Artist
	err := r.db.WithContext(ctx).
		Where(query.NameContains, query.ContainsPattern(term)).
		Order("id ASC").
		Find(&artists).Error
	return artists, err
}

func (r *repository) ListByName(ctx context.Context) ([]Artist, error) {
	var artists []Artist
	err := r.db.WithContext(ctx).
		Select("id", "name").
		Order("name ASC, id ASC").
		Find(&artists).Error
	return artists, err
}

func (r *repository) GenresFor(ctx context.Context, id uint) ([]string, error) {
	return r.genres.NamesFor(ctx, genres.OwnerArtist, id)
}
