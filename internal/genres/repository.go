package genres

import (
	"context"
	"fmt"
	"strings"

	"fyyur/internal/shared/apperr"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	// WithTx binds the repository to an open transaction
	WithTx(tx *gorm.DB) Repository

	// Reference data
	Seed(ctx context.Context) error
	List(ctx context.Context) ([]Genre, error)

	// Venue/Artist associations
	Assign(ctx context.Context, owner Owner, ownerID uint, names []string) error
	NamesFor(ctx context.Context, owner Owner, ownerID uint) ([]string, error)
	DeleteFor(ctx context.Context, owner Owner, ownerID uint) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new genre repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

// Seed inserts every enumeration row that is not there yet.
func (r *repository) Seed(ctx context.Context) error {
	rows := make([]Genre, len(All))
	for i, name := range All {
		rows[i] = Genre{Name: name}
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error
}

func (r *repository) List(ctx context.Context) ([]Genre, error) {
	var names []string
	if err := r.db.WithContext(ctx).Model(&Genre{}).Pluck("name", &names).Error; err != nil {
		return nil, err
	}
	Sort(names)

	out := make([]Genre, len(names))
	for i, n := range names {
		out[i] = Genre{Name: n}
	}
	return out, nil
}

// Assign replaces the owner's genre set with names. Names are validated
// before anything is touched, so a rejected call leaves the existing set
// as it was.
func (r *repository) Assign(ctx context.Context, owner Owner, ownerID uint, names []string) error {
	if !owner.valid() {
		return fmt.Errorf("unknown genre owner %q", owner)
	}

	names = Normalize(names)
	if bad := Invalid(names); len(bad) > 0 {
		return apperr.Validation("invalid genres", apperr.FieldError{
			Field:   "genres",
			Message: "Not a valid choice: " + strings.Join(bad, ", "),
		})
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteFor(tx, owner, ownerID); err != nil {
			return err
		}
		if len(names) == 0 {
			return nil
		}

		switch owner {
		case OwnerArtist:
			rows := make([]ArtistGenre, len(names))
			for i, n := range names {
				rows[i] = ArtistGenre{ArtistID: ownerID, GenreName: n}
			}
			return tx.Create(&rows).Error
		default:
			rows := make([]VenueGenre, len(names))
			for i, n := range names {
				rows[i] = VenueGenre{VenueID: ownerID, GenreName: n}
			}
			return tx.Create(&rows).Error
		}
	})
}

func (r *repository) NamesFor(ctx context.Context, owner Owner, ownerID uint) ([]string, error) {
	if !owner.valid() {
		return nil, fmt.Errorf("unknown genre owner %q", owner)
	}

	names := []string{}
	err := r.db.WithContext(ctx).
		Table(owner.table()).
		Where(owner.column()+" = ?", ownerID).
		Pluck("genre_name", &names).Error
	if err != nil {
		return nil, err
	}
	Sort(names)
	return names, nil
}

func (r *repository) DeleteFor(ctx context.Context, owner Owner, ownerID uint) error {
	if !owner.valid() {
		return fmt.Errorf("unknown genre owner %q", owner)
	}
	return deleteFor(r.db.WithContext(ctx), owner, ownerID)
}

func deleteFor(tx *gorm.DB, owner Owner, ownerID uint) error {
	if owner == OwnerArtist {
		return tx.Where("artist_id = ?", ownerID).Delete(&ArtistGenre{}).Error
	}
	return tx.Where("venue_id = ?", ownerID).Delete(&VenueGenre{}).Error
}
