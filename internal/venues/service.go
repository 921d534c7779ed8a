package venues

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
	Create(ctx context.Context, form VenueForm) (*VenueResponse, error)
	Update(ctx context.Context, id uint, form VenueForm) (*VenueResponse, error)
	Delete(ctx context.Context, id uint) (*VenueResponse, error)

	// GetByID and Detail return (nil, nil) for an unknown id
	GetByID(ctx context.Context, id uint) (*VenueResponse, error)
	Detail(ctx context.Context, id uint, now time.Time) (*VenueDetail, error)

	Search(ctx context.Context, term string, now time.Time) (*SearchResult, error)
	ListByArea(ctx context.Context, now time.Time) ([]Area, error)
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

func (s *service) Create(ctx context.Context, form VenueForm) (*VenueResponse, error) {
	form.normalize()
	if err := validate.Struct("Venue", form); err != nil {
		return nil, err
	}

	venue := form.toModel()
	if err := s.repo.Create(ctx, venue, form.Genres); err != nil {
		if apperr.IsValidation(err) {
			return nil, err
		}
		return nil, apperr.Persistence(fmt.Sprintf("Venue %s could not be listed", form.Name), err)
	}

	logger.GetDefault().LogVenueCreated(ctx, venue.ID, venue.Name)
	activity.Notify(ctx, s.publisher, activity.NewEvent(activity.EventVenueCreated, activity.EntityVenue, venue.ID, venue.Name))

	return s.withGenres(ctx, venue)
}

func (s *service) Update(ctx context.Context, id uint, form VenueForm) (*VenueResponse, error) {
	form.normalize()
	if err := validate.Struct("Venue", form); err != nil {
		return nil, err
	}

	venue := form.toModel()
	if err := s.repo.Update(ctx, id, venue, form.Genres); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, apperr.NotFound("Venue", id)
		case apperr.IsValidation(err):
			return nil, err
		}
		return nil, apperr.Persistence(fmt.Sprintf("Venue %s could not be updated", form.Name), err)
	}

	logger.GetDefault().LogVenueUpdated(ctx, venue.ID, venue.Name)
	activity.Notify(ctx, s.publisher, activity.NewEvent(activity.EventVenueUpdated, activity.EntityVenue, venue.ID, venue.Name))

	return s.withGenres(ctx, venue)
}

func (s *service) Delete(ctx context.Context, id uint) (*VenueResponse, error) {
	venue, removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Venue", id)
		}
		return nil, apperr.Persistence(fmt.Sprintf("Venue %d could not be deleted", id), err)
	}

	logger.GetDefault().LogVenueDeleted(ctx, venue.ID, venue.Name, removed)
	activity.Notify(ctx, s.publisher, activity.NewEvent(activity.EventVenueDeleted, activity.EntityVenue, venue.ID, venue.Name))

	return toResponse(venue, nil), nil
}

func (s *service) GetByID(ctx context.Context, id uint) (*VenueResponse, error) {
	venue, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get venue: %w", err)
	}
	return s.withGenres(ctx, venue)
}

func (s *service) Detail(ctx context.Context, id uint, now time.Time) (*VenueDetail, error) {
	venue, err := s.GetByID(ctx, id)
	if err != nil || venue == nil {
		return nil, err
	}

	classified, err := s.shows.ClassifyForVenue(ctx, id, now)
	if err != nil {
		return nil, err
	}

	return &VenueDetail{
		VenueResponse:      *venue,
		PastShows:          classified.Past,
		UpcomingShows:      classified.Upcoming,
		PastShowsCount:     len(classified.Past),
		UpcomingShowsCount: len(classified.Upcoming),
	}, nil
}

func (s *service) Search(ctx context.Context, term string, now time.Time) (*SearchResult, error) {
	venues, err := s.repo.Search(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("failed to search venues: %w", err)
	}

	summaries, err := s.summarize(ctx, venues, now)
	if err != nil {
		return nil, err
	}
	return &SearchResult{Count: len(summaries), Data: summaries}, nil
}

// ListByArea groups venues by (city, state), ordered by state then city
func (s *service) ListByArea(ctx context.Context, now time.Time) ([]Area, error) {
	venues, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list venues: %w", err)
	}

	summaries, err := s.summarize(ctx, venues, now)
	if err != nil {
		return nil, err
	}

	areas := []Area{}
	index := make(map[[2]string]int)
	for i, v := range venues {
		key := [2]string{v.City, v.State}
		pos, ok := index[key]
		if !ok {
			pos = len(areas)
			index[key] = pos
			areas = append(areas, Area{City: v.City, State: v.State, Venues: []VenueSummary{}})
		}
		areas[pos].Venues = append(areas[pos].Venues, summaries[i])
	}
	return areas, nil
}

// summarize attaches upcoming show counts with a single grouped query
func (s *service) summarize(ctx context.Context, venues []Venue, now time.Time) ([]VenueSummary, error) {
	ids := make([]uint, len(venues))
	for i, v := range venues {
		ids[i] = v.ID
	}

	counts, err := s.shows.CountUpcomingByVenue(ctx, ids, now)
	if err != nil {
		return nil, err
	}

	summaries := make([]VenueSummary, len(venues))
	for i, v := range venues {
		summaries[i] = VenueSummary{ID: v.ID, Name: v.Name, NumUpcomingShows: counts[v.ID]}
	}
	return summaries, nil
}

func (s *service) withGenres(ctx context.Context, venue *Venue) (*VenueResponse, error) {
	names, err := s.repo.GenresFor(ctx, venue.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get venue genres: %w", err)
	}
	return toResponse(venue, names), nil
}
