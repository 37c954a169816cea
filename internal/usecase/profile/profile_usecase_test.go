package profile

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gdugdh24/matchcore/internal/domain"
	"github.com/gdugdh24/matchcore/internal/repository"
	"github.com/gdugdh24/matchcore/internal/repository/memory"
	"github.com/gdugdh24/matchcore/internal/usecase/album"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

type fixture struct {
	uc    *ProfileUseCase
	repos *repository.Repositories
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	for _, p := range []*domain.Profile{
		{UserID: "owner", Name: "Owner", PrivatePhotos: []string{"p1.jpg"}, HasPrivateAlbum: true, Latitude: ptr(40.7128), Longitude: ptr(-74.0060)},
		{UserID: "viewer", Name: "Viewer", PrivatePhotos: []string{"v1.jpg"}, HasPrivateAlbum: true, Latitude: ptr(40.6782), Longitude: ptr(-73.9442)},
		{UserID: "nomad", Name: "Nomad"},
	} {
		store.PutUser(&domain.User{ID: p.UserID})
		store.PutProfile(p)
	}
	repos := memory.NewRepositories(store)
	uc := NewProfileUseCase(repos.Profiles, album.NewAlbumUseCase(repos.Albums, repos.Profiles), repos.ProfileViews, repos.Screenshots)
	clock := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	uc.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return &fixture{uc: uc, repos: repos}
}

func (f *fixture) grant(t *testing.T, requesterID, ownerID string) {
	t.Helper()
	ctx := context.Background()
	req, _, err := f.repos.Albums.CreateIfNoActive(ctx, &domain.AlbumAccessRequest{
		ID: requesterID + "-" + ownerID, RequesterID: requesterID, OwnerID: ownerID, CreatedAt: time.Now(),
	})
	require.NoError(t, err)
	_, err = f.repos.Albums.Respond(ctx, req.ID, ownerID, domain.RequestAccepted, time.Now())
	require.NoError(t, err)
}

func TestView_PrivatePhotoGate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	viewer := &domain.User{ID: "viewer"}

	resp, err := f.uc.View(ctx, viewer, "owner")
	require.NoError(t, err)
	assert.Empty(t, resp.PrivatePhotos)
	assert.True(t, resp.HasPrivateAlbum)
	assert.False(t, resp.HasPrivateAccess)

	f.grant(t, "viewer", "owner")

	resp, err = f.uc.View(ctx, viewer, "owner")
	require.NoError(t, err)
	assert.Equal(t, []string{"p1.jpg"}, resp.PrivatePhotos)
	assert.True(t, resp.HasPrivateAccess)

	// The grant is one-way.
	resp, err = f.uc.View(ctx, &domain.User{ID: "owner"}, "viewer")
	require.NoError(t, err)
	assert.Empty(t, resp.PrivatePhotos)
}

func TestView_OwnProfileAndDistance(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	resp, err := f.uc.View(ctx, &domain.User{ID: "owner"}, "owner")
	require.NoError(t, err)
	assert.Equal(t, []string{"p1.jpg"}, resp.PrivatePhotos)
	assert.Nil(t, resp.DistanceKm)

	resp, err = f.uc.View(ctx, &domain.User{ID: "viewer"}, "owner")
	require.NoError(t, err)
	require.NotNil(t, resp.DistanceKm)
	assert.InDelta(t, 6.5, *resp.DistanceKm, 0.1)

	resp, err = f.uc.View(ctx, &domain.User{ID: "nomad"}, "owner")
	require.NoError(t, err)
	assert.Nil(t, resp.DistanceKm)

	_, err = f.uc.View(ctx, &domain.User{ID: "viewer"}, "ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestView_RecordsProViewers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	proOwner := &domain.User{ID: "owner", Tier: domain.TierPro}

	_, err := f.uc.View(ctx, &domain.User{ID: "nomad"}, "owner")
	require.NoError(t, err)
	_, err = f.uc.View(ctx, &domain.User{ID: "viewer", Tier: domain.TierPro}, "owner")
	require.NoError(t, err)
	_, err = f.uc.View(ctx, proOwner, "owner")
	require.NoError(t, err)

	views, err := f.uc.ProfileViews(ctx, proOwner)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "viewer", views[0].ViewerID)
	require.NotNil(t, views[0].ViewerProfile)
	assert.Empty(t, views[0].ViewerProfile.PrivatePhotos)

	_, err = f.uc.ProfileViews(ctx, &domain.User{ID: "owner"})
	assert.ErrorIs(t, err, domain.ErrProRequired)
}

func TestScreenshots(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	assert.ErrorIs(t, f.uc.LogScreenshot(ctx, "owner", "owner"), domain.ErrSelfReference)
	assert.ErrorIs(t, f.uc.LogScreenshot(ctx, "viewer", "ghost"), domain.ErrNotFound)

	require.NoError(t, f.uc.LogScreenshot(ctx, "viewer", "owner"))
	require.NoError(t, f.uc.LogScreenshot(ctx, "nomad", "owner"))

	attempts, err := f.uc.ListScreenshots(ctx, "owner")
	require.NoError(t, err)
	require.Len(t, attempts, 2)
	assert.Equal(t, "nomad", attempts[0].ViewerID, "newest first")
	assert.Empty(t, attempts[1].ViewerProfile.PrivatePhotos)

	none, err := f.uc.ListScreenshots(ctx, "viewer")
	require.NoError(t, err)
	assert.Empty(t, none)
}

type accessFunc func(ctx context.Context, ownerID, viewerID string) (bool, error)

func (f accessFunc) HasAccess(ctx context.Context, ownerID, viewerID string) (bool, error) {
	return f(ctx, ownerID, viewerID)
}

func TestView_ConsultsAlbumAccess(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	var calls [][2]string
	f.uc.access = accessFunc(func(_ context.Context, ownerID, viewerID string) (bool, error) {
		calls = append(calls, [2]string{ownerID, viewerID})
		return true, nil
	})

	resp, err := f.uc.View(ctx, &domain.User{ID: "viewer"}, "owner")
	require.NoError(t, err)
	assert.Equal(t, []string{"p1.jpg"}, resp.PrivatePhotos)
	assert.Equal(t, [][2]string{{"owner", "viewer"}}, calls)

	// Owners see their own album without a grant lookup.
	_, err = f.uc.View(ctx, &domain.User{ID: "owner"}, "owner")
	require.NoError(t, err)
	assert.Len(t, calls, 1)

	// Nothing to gate when the album is empty.
	_, err = f.uc.View(ctx, &domain.User{ID: "viewer"}, "nomad")
	require.NoError(t, err)
	assert.Len(t, calls, 1)

	boom := errors.New("store down")
	f.uc.access = accessFunc(func(context.Context, string, string) (bool, error) { return false, boom })
	_, err = f.uc.View(ctx, &domain.User{ID: "viewer"}, "owner")
	assert.ErrorIs(t, err, boom)
}
