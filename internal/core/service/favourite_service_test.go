package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kashxsh001/SkillStream/internal/core/domain"
)

func newTestFavouriteService() (*FavouriteService, *stubFavouriteRepo, *stubCourseRepo) {
	courses := newStubCourseRepo(sampleCatalog()...)
	favs := &stubFavouriteRepo{}
	return NewFavouriteService(favs, courses, discardLogger), favs, courses
}

func TestFavouriteService_AddAndList(t *testing.T) {
	svc, _, _ := newTestFavouriteService()
	user := &domain.User{ID: "u1", Email: "u1@example.com"}
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, user, 3))
	require.NoError(t, svc.Add(ctx, user, 1))

	got, err := svc.List(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1}, codes(got))
}

func TestFavouriteService_AddTwiceConflicts(t *testing.T) {
	svc, favs, _ := newTestFavouriteService()
	user := &domain.User{ID: "u1"}
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, user, 2))
	err := svc.Add(ctx, user, 2)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Len(t, favs.favs, 1)

	got, err := svc.List(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, codes(got))
}

func TestFavouriteService_ListIsPerUser(t *testing.T) {
	svc, _, _ := newTestFavouriteService()
	ctx := context.Background()
	alice := &domain.User{ID: "alice"}
	bob := &domain.User{ID: "bob"}

	require.NoError(t, svc.Add(ctx, alice, 1))
	require.NoError(t, svc.Add(ctx, bob, 2))

	got, err := svc.List(ctx, bob)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, codes(got))
}

func TestFavouriteService_ListSkipsDanglingAndDuplicates(t *testing.T) {
	svc, favs, courses := newTestFavouriteService()
	ctx := context.Background()
	user := &domain.User{ID: "u1"}

	require.NoError(t, svc.Add(ctx, user, 1))
	require.NoError(t, svc.Add(ctx, user, 99))
	require.NoError(t, svc.Add(ctx, user, 3))
	// A legacy row that slipped past the uniqueness check.
	favs.favs = append(favs.favs, domain.Favourite{ID: "dup", UserID: "u1", Code: 1})
	require.NoError(t, courses.Delete(ctx, "3"))

	got, err := svc.List(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, codes(got))
}

func TestFavouriteService_ListEmpty(t *testing.T) {
	svc, _, _ := newTestFavouriteService()

	got, err := svc.List(context.Background(), &domain.User{ID: "nobody"})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFavouriteService_Remove(t *testing.T) {
	svc, favs, _ := newTestFavouriteService()
	ctx := context.Background()
	user := &domain.User{ID: "u1"}

	require.NoError(t, svc.Add(ctx, user, 1))
	require.NoError(t, svc.Remove(ctx, user, 1))
	assert.Empty(t, favs.favs)

	err := svc.Remove(ctx, user, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFavouriteService_StoreFailuresArePersistenceErrors(t *testing.T) {
	svc, favs, courses := newTestFavouriteService()
	ctx := context.Background()
	user := &domain.User{ID: "u1"}
	require.NoError(t, svc.Add(ctx, user, 1))

	courses.findErr = errStoreDown
	_, err := svc.List(ctx, user)
	require.ErrorIs(t, err, domain.ErrPersistence)
	assert.EqualError(t, err, "Error listing favourites: store unavailable")

	favs.listErr = errStoreDown
	_, err = svc.List(ctx, user)
	require.ErrorIs(t, err, domain.ErrPersistence)
	assert.ErrorIs(t, err, errStoreDown)
}
