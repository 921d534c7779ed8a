package artists_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fyyur/internal/activity"
	"fyyur/internal/artists"
	"fyyur/internal/genres"
	"fyyur/internal/shared/apperr"
	"fyyur/internal/shared/database"
	"fyyur/internal/shows"
	"fyyur/internal/venues"
)

var now = time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)

type recorder struct {
	types []activity.EventType
}

func (r *recorder) Publish(_ context.Context, e activity.ListingEvent) error {
	r.types = append(r.types, e.Type)
	return nil
}

func (r *recorder) Close() error { return nil }

func setup(t *testing.T) (*database.DB, artists.Service, *recorder) {
	t.Helper()

	db, err := database.NewMock()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	events := &recorder{}
	showService := shows.NewService(shows.NewRepository(db.SQL), nil)
	return db, artists.NewService(artists.NewRepository(db.SQL), showService, events), events
}

func petalsForm() artists.ArtistForm {
	return artists.ArtistForm{
		Name:               "Guns N Petals",
		City:               "San Francisco",
		State:              "CA",
		Phone:              "326-123-5000",
		ImageLink:          "https://images.unsplash.com/photo-1549213783-8284d0336c4f?w=300",
		FacebookLink:       "https://www.facebook.com/GunsNPetals",
		Website:            "https://www.gunsnpetalsband.com",
		Genres:             []string{genres.RockNRoll},
		SeekingVenue:       true,
		SeekingDescription: "Looking for shows to perform at in the San Francisco Bay Area!",
	}
}

func create(t *testing.T, svc artists.Service, name string, genreNames ...string) *artists.ArtistResponse {
	t.Helper()
	form := petalsForm()
	form.Name = name
	form.Genres = genreNames
	a, err := svc.Create(context.Background(), form)
	require.NoError(t, err)
	return a
}

func TestCreate(t *testing.T) {
	_, svc, events := setup(t)

	a, err := svc.Create(context.Background(), petalsForm())
	require.NoError(t, err)

	assert.NotZero(t, a.ID)
	assert.True(t, a.SeekingVenue)
	assert.Equal(t, []string{genres.RockNRoll}, a.Genres)
	assert.Equal(t, []activity.EventType{activity.EventArtistCreated}, events.types)
}

func TestCreate_Validation(t *testing.T) {
	_, svc, events := setup(t)

	form := petalsForm()
	form.State = ""
	form.FacebookLink = "facebook.com/gnp"

	_, err := svc.Create(context.Background(), form)
	require.True(t, apperr.IsValidation(err))
	fields := apperr.As(err).FieldMap()
	assert.Equal(t, "This field is required.", fields["state"])
	assert.Equal(t, "Invalid URL.", fields["facebook_link"])
	assert.Empty(t, events.types)
}

func TestUpdate_ReplacesGenres(t *testing.T) {
	_, svc, events := setup(t)
	ctx := context.Background()

	a := create(t, svc, "Matt Quevedo", genres.Jazz, genres.Classical)
	assert.Equal(t, []string{genres.Classical, genres.Jazz}, a.Genres)

	form := petalsForm()
	form.Name = "Matt Quevedo"
	form.Genres = []string{genres.Jazz}
	form.SeekingVenue = false

	updated, err := svc.Update(ctx, a.ID, form)
	require.NoError(t, err)
	assert.Equal(t, []string{genres.Jazz}, updated.Genres)
	assert.False(t, updated.SeekingVenue)

	form.Genres = nil
	cleared, err := svc.Update(ctx, a.ID, form)
	require.NoError(t, err)
	assert.Equal(t, []string{}, cleared.Genres)

	assert.Equal(t, []activity.EventType{
		activity.EventArtistCreated,
		activity.EventArtistUpdated,
		activity.EventArtistUpdated,
	}, events.types)
}

func TestUpdate_UnknownArtist(t *testing.T) {
	_, svc, _ := setup(t)

	_, err := svc.Update(context.Background(), 7, petalsForm())
	require.True(t, apperr.IsNotFound(err))
	assert.Equal(t, "Artist 7 not found", err.Error())
}

func TestList_OrderedByName(t *testing.T) {
	_, svc, _ := setup(t)
	ctx := context.Background()

	refs, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, refs)

	quevedo := create(t, svc, "Matt Quevedo")
	sax := create(t, svc, "The Wild Sax Band")
	petals := create(t, svc, "Guns N Petals")

	refs, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []artists.ArtistRef{
		{ID: petals.ID, Name: "Guns N Petals"},
		{ID: quevedo.ID, Name: "Matt Quevedo"},
		{ID: sax.ID, Name: "The Wild Sax Band"},
	}, refs)
}

func TestSearchAndDetail(t *testing.T) {
	db, svc, _ := setup(t)
	ctx := context.Background()

	petals := create(t, svc, "Guns N Petals")
	create(t, svc, "Matt Quevedo")
	sax := create(t, svc, "The Wild Sax Band")

	venue := venues.Venue{Name: "Park Square Live Music & Coffee", City: "San Francisco", State: "CA", Address: "34 Whiskey Moore Ave"}
	require.NoError(t, db.SQL.Create(&venue).Error)

	showService := shows.NewService(shows.NewRepository(db.SQL), nil)
	for _, offset := range []time.Duration{-time.Hour, time.Hour, 2 * time.Hour} {
		_, err := showService.Create(ctx, shows.CreateShowRequest{
			VenueID:   venue.ID,
			ArtistID:  sax.ID,
			StartTime: shows.FormatStartTime(now.Add(offset)),
		})
		require.NoError(t, err)
	}

	result, err := svc.Search(ctx, "A", now)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Count)

	result, err = svc.Search(ctx, "band", now)
	require.NoError(t, err)
	require.Equal(t, 1, result.Count)
	assert.Equal(t, artists.ArtistSummary{ID: sax.ID, Name: "The Wild Sax Band", NumUpcomingShows: 2}, result.Data[0])

	// LIKE metacharacters match only themselves
	for _, term := range []string{"_", "%", "N_Petals", "Guns%Petals"} {
		result, err = svc.Search(ctx, term, now)
		require.NoError(t, err)
		assert.Zero(t, result.Count, term)
		assert.Empty(t, result.Data, term)
	}

	detail, err := svc.Detail(ctx, sax.ID, now)
	require.NoError(t, err)
	assert.Equal(t, 1, detail.PastShowsCount)
	assert.Equal(t, 2, detail.UpcomingShowsCount)
	assert.Equal(t, "Park Square Live Music & Coffee", detail.PastShows[0].VenueName)

	quiet, err := svc.Detail(ctx, petals.ID, now)
	require.NoError(t, err)
	assert.Empty(t, quiet.PastShows)
	assert.Empty(t, quiet.UpcomingShows)
	assert.Zero(t, quiet.UpcomingShowsCount)

	missing, err := svc.Detail(ctx, 999, now)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
