package artists

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fyyur/internal/activity"
	"fyyur/internal/shared/apperr"
	"fyyur/internal/shared/validate"
	"fyyur/internal/shows"
	"fyyur/pkg/logger"

	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, form ArtistForm) (*ArtistResponse, error)
	Update(ctx context.Context, id uint, form ArtistForm) (*ArtistResponse, error)

	// GetByID and Detail return (nil, nil) for an unknown id
	GetByID(ctx context.Context, id uint) (*ArtistResponse, error)
	Detail(ctx context.Context, id uint, now time.Time) (*ArtistDetail, error)

	Search(ctx context.Context, term string, now time.Time) (*SearchResult, error)
	List(ctx context.Context) ([]ArtistRef, error)
}

type service struct {
	repo      Repository
	shows     shows.Service
	publisher activity.Publisher
}

func NewService(repo Repository, showService shows.Service, publisher activity.Publisher) Service {
	if publisher == nil {
		publisher = activity.NopPublisher{}
	}
	return &service{
		repo:      repo,
		shows:     showService,
		publisher: publisher,
	}
}

func (s *service) Create(ctx context.Context, form ArtistForm) (*ArtistResponse, error) {
	form.normalize()
	if err := validate.Struct("Artist", form); err != nil {
		return nil, err
	}

	artist := form.toModel()
	if err := s.repo.Create(ctx, artist, form.Genres); err != nil {
		if apperr.IsValidation(err) {
			return nil, err
		}
		return nil, apperr.Persistence(fmt.Sprintf("Artist %s could not be listed", form.Name), err)
	}

	logger.GetDefault().LogArtistCreated(ctx, artist.ID, artist.Name)
	activity.Notify(ctx, s.publisher, activity.NewEvent(activity.EventArtistCreated, activity.EntityArtist, artist.ID, artist.Name))

	return s.withGenres(ctx, artist)
}

func (s *service) Update(ctx context.Context, id uint, form ArtistForm) (*ArtistResponse, error) {
	form.normalize()
	if err := validate.Struct("Artist", form); err != nil {
		return nil, err
	}

	artist := form.toModel()
	if err := s.repo.Update(ctx, id, artist, form.Genres); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, apperr.NotFound("Artist", id)
		case apperr.IsValidation(err):
			return nil, err
		}
		return nil, apperr.Persistence(fmt.Sprintf("Artist %s could not be updated", form.Name), err)
	}

	logger.GetDefault().LogArtistUpdated(ctx, artist.ID, artist.Name)
	activity.Notify(ctx, s.publisher, activity.NewEvent(activity.EventArtistUpdated, activity.EntityArtist, artist.ID, artist.Name))

	return s.withGenres(ctx, artist)
}

func (s *service) GetByID(ctx context.Context, id uint) (*ArtistResponse, error) {
	artist, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get artist: %w", err)
	}
	return s.withGenres(ctx, artist)
}

func (s *service) Detail(ctx context.Context, id uint, now time.Time) (*ArtistDetail, error) {
	artist, err := s.GetByID(ctx, id)
	if err != nil || artist == nil {
		return nil, err
	}

	classified, err := s.shows.ClassifyForArtist(ctx, id, now)
	if err != nil {
		return nil, err
	}

	return &ArtistDetail{
		ArtistResponse:     *artist,
		PastShows:          classified.Past,
		UpcomingShows:      classified.Upcoming,
		PastShowsCount:     len(classified.Past),
		UpcomingShowsCount: len(classified.Upcoming),
	}, nil
}

func (s *service) Search(ctx context.Context, term string, now time.Time) (*SearchResult, error) {
	artists, err := s.repo.Search(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("failed to search artists: %w", err)
	}

	ids := make([]uint, len(artists))
	for i, a := range artists {
		ids[i] = a.ID
	}
	counts, err := s.shows.CountUpcomingByArtist(ctx, ids, now)
	if err != nil {
		return nil, err
	}

	data := make([]ArtistSummary, len(artists))
	for i, a := range artists {
		data[i] = ArtistSummary{ID: a.ID, Name: a.Name, NumUpcomingShows: counts[a.ID]}
	}
	return &SearchResult{Count: len(data), Data: data}, nil
}

func (s *service) List(ctx context.Context) ([]ArtistRef, error) {
	artists, err := s.repo.ListByName(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list artists: %w", err)
	}

	refs := make([]ArtistRef, len(artists))
	for i, a := range artists {
		refs[i] = ArtistRef{ID: a.ID, Name: a.Name}
	}
	return refs, nil
}

func (s *service) withGenres(ctx context.Context, artist *Artist) (*ArtistResponse, error) {
	names, err := s.repo.GenresFor(ctx, artist.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get artist genres: %w", err)
	}
	return toResponse(artist, names), nil
}
