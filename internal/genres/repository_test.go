package genres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fyyur/internal/genres"
	"fyyur/internal/shared/apperr"
	"fyyur/internal/shared/database"
)

func setup(t *testing.T) genres.Repository {
	t.Helper()

	db, err := database.NewMock()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return genres.NewRepository(db.SQL)
}

func TestSeed_Idempotent(t *testing.T) {
	repo := setup(t)
	ctx := context.Background()

	// NewMock has already seeded once
	require.NoError(t, repo.Seed(ctx))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, len(genres.All))
	for i, g := range list {
		assert.Equal(t, genres.All[i], g.Name)
	}
}

func TestAssign(t *testing.T) {
	repo := setup(t)
	ctx := context.Background()

	require.NoError(t, repo.Assign(ctx, genres.OwnerVenue, 1, []string{genres.Reggae, genres.Jazz}))

	names, err := repo.NamesFor(ctx, genres.OwnerVenue, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{genres.Jazz, genres.Reggae}, names)

	// replaces rather than appends
	require.NoError(t, repo.Assign(ctx, genres.OwnerVenue, 1, []string{genres.Folk}))
	names, err = repo.NamesFor(ctx, genres.OwnerVenue, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{genres.Folk}, names)

	// owners are kept apart
	names, err = repo.NamesFor(ctx, genres.OwnerArtist, 1)
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestAssign_UnknownNameKeepsExistingSet(t *testing.T) {
	repo := setup(t)
	ctx := context.Background()

	require.NoError(t, repo.Assign(ctx, genres.OwnerArtist, 3, []string{genres.Jazz, genres.Classical}))

	err := repo.Assign(ctx, genres.OwnerArtist, 3, []string{genres.Pop, "Polka"})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
	assert.Equal(t, "Not a valid choice: Polka", apperr.As(err).Field("genres"))

	names, err := repo.NamesFor(ctx, genres.OwnerArtist, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{genres.Classical, genres.Jazz}, names)
}

func TestAssign_Deduplicates(t *testing.T) {
	repo := setup(t)
	ctx := context.Background()

	require.NoError(t, repo.Assign(ctx, genres.OwnerVenue, 2, []string{genres.Jazz, genres.Jazz, " Jazz ", ""}))

	names, err := repo.NamesFor(ctx, genres.OwnerVenue, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{genres.Jazz}, names)
}

func TestAssign_EmptyClears(t *testing.T) {
	repo := setup(t)
	ctx := context.Background()

	require.NoError(t, repo.Assign(ctx, genres.OwnerVenue, 4, []string{genres.Soul}))
	require.NoError(t, repo.Assign(ctx, genres.OwnerVenue, 4, nil))

	names, err := repo.NamesFor(ctx, genres.OwnerVenue, 4)
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestAssign_UnknownOwner(t *testing.T) {
	repo := setup(t)

	err := repo.Assign(context.Background(), genres.Owner("label"), 1, []string{genres.Jazz})
	assert.Error(t, err)
	assert.False(t, apperr.IsValidation(err))
}

func TestSort(t *testing.T) {
	names := []string{genres.Other, genres.RockNRoll, genres.Alternative, genres.Jazz, genres.Blues}
	genres.Sort(names)
	assert.Equal(t, []string{genres.Alternative, genres.Blues, genres.Jazz, genres.RockNRoll, genres.Other}, names)
}

func TestIsValidAndInvalid(t *testing.T) {
	assert.True(t, genres.IsValid(genres.HipHop))
	assert.False(t, genres.IsValid("hip-hop"))
	assert.Equal(t, []string{"Polka", "Ska"}, genres.Invalid([]string{genres.Jazz, "Polka", genres.Funk, "Ska"}))
	assert.Nil(t, genres.Invalid(genres.All))
}
