package shows

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fyyur/internal/activity"
	"fyyur/internal/shared/apperr"
	"fyyur/internal/shared/validate"
	"fyyur/pkg/logger"
)

type Service interface {
	Create(ctx context.Context, req CreateShowRequest) (*Show, error)
	List(ctx context.Context) ([]Entry, error)

	ClassifyForVenue(ctx context.Context, venueID uint, now time.Time) (*VenueShows, error)
	ClassifyForArtist(ctx context.Context, artistID uint, now time.Time) (*ArtistShows, error)

	CountUpcoming(ctx context.Context, entityID uint, kind Kind, now time.Time) (int64, error)
	CountUpcomingByVenue(ctx context.Context, venueIDs []uint, now time.Time) (map[uint]int64, error)
	CountUpcomingByArtist(ctx context.Context, artistIDs []uint, now time.Time) (map[uint]int64, error)
}

type service struct {
	repo      Repository
	publisher activity.Publisher
}

func NewService(repo Repository, publisher activity.Publisher) Service {
	if publisher == nil {
		publisher = activity.NopPublisher{}
	}
	return &service{repo: repo, publisher: publisher}
}

func (s *service) Create(ctx context.Context, req CreateShowRequest) (*Show, error) {
	req.StartTime = strings.TrimSpace(req.StartTime)
	if err := validate.Struct("Show", req); err != nil {
		return nil, err
	}

	start, ok := ParseStartTime(req.StartTime)
	if !ok {
		return nil, apperr.Validation("invalid show", apperr.FieldError{
			Field:   "start_time",
			Message: "Not a valid datetime value.",
		})
	}

	show := &Show{
		VenueID:   req.VenueID,
		ArtistID:  req.ArtistID,
		StartTime: start,
	}
	if err := s.repo.Create(ctx, show); err != nil {
		if apperr.IsValidation(err) {
			return nil, err
		}
		return nil, apperr.Persistence("Show could not be listed", err)
	}

	logger.GetDefault().LogShowCreated(ctx, show.ID, show.VenueID, show.ArtistID, show.StartTime)
	activity.Notify(ctx, s.publisher, activity.NewEvent(activity.EventShowCreated, activity.EntityShow, show.ID, ""))

	return show, nil
}

func (s *service) List(ctx context.Context) ([]Entry, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shows: %w", err)
	}
	return entries, nil
}

func (s *service) ClassifyForVenue(ctx context.Context, venueID uint, now time.Time) (*VenueShows, error) {
	listings, err := s.repo.ListingsForVenue(ctx, venueID)
	if err != nil {
		return nil, fmt.Errorf("failed to load shows for venue %d: %w", venueID, err)
	}

	past, upcoming := Partition(listings, now)
	return &VenueShows{
		Past:     toVenueShows(past),
		Upcoming: toVenueShows(upcoming),
	}, nil
}

func (s *service) ClassifyForArtist(ctx context.Context, artistID uint, now time.Time) (*ArtistShows, error) {
	listings, err := s.repo.ListingsForArtist(ctx, artistID)
	if err != nil {
		return nil, fmt.Errorf("failed to load shows for artist %d: %w", artistID, err)
	}

	past, upcoming := Partition(listings, now)
	return &ArtistShows{
		Past:     toArtistShows(past),
		Upcoming: toArtistShows(upcoming),
	}, nil
}

func (s *service) CountUpcoming(ctx context.Context, entityID uint, kind Kind, now time.Time) (int64, error) {
	count, err := s.repo.CountUpcoming(ctx, kind, entityID, now)
	if err != nil {
		return 0, fmt.Errorf("failed to count upcoming shows: %w", err)
	}
	return count, nil
}

func (s *service) CountUpcomingByVenue(ctx context.Context, venueIDs []uint, now time.Time) (map[uint]int64, error) {
	counts, err := s.repo.CountUpcomingGrouped(ctx, KindVenue, venueIDs, now)
	if err != nil {
		return nil, fmt.Errorf("failed to count upcoming shows: %w", err)
	}
	return counts, nil
}

func (s *service) CountUpcomingByArtist(ctx context.Context, artistIDs []uint, now time.Time) (map[uint]int64, error) {
	counts, err := s.repo.CountUpcomingGrouped(ctx, KindArtist, artistIDs, now)
	if err != nil {
		return nil, fmt.Errorf("failed to count upcoming shows: %w", err)
	}
	return counts, nil
}
