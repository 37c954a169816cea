package feed_test

import (
	"context"
	"testing"
	"time"

	"github.com/gdugdh24/matchcore/internal/domain"
	"github.com/gdugdh24/matchcore/internal/repository"
	"github.com/gdugdh24/matchcore/internal/repository/memory"
	"github.com/gdugdh24/matchcore/internal/usecase/feed"
	"github.com/gdugdh24/matchcore/internal/usecase/presence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

var (
	nyc      = [2]float64{40.7128, -74.0060}
	brooklyn = [2]float64{40.6782, -73.9442}
	boston   = [2]float64{42.3601, -71.0589}
)

type fixture struct {
	store   *memory.Store
	repos   *repository.Repositories
	tracker *presence.Tracker
	uc      *feed.FeedUseCase
	viewer  *domain.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	repos := memory.NewRepositories(store)
	tracker := presence.NewTracker(repos.Users, nil)
	f := &fixture{
		store:   store,
		repos:   repos,
		tracker: tracker,
		uc:      feed.NewFeedUseCase(repos.Profiles, repos.Swipes, tracker),
		viewer:  &domain.User{ID: "viewer", Tier: domain.TierFree},
	}
	store.PutUser(f.viewer)
	f.addProfile("viewer", &nyc, nil)
	return f
}

func (f *fixture) addProfile(id string, at *[2]float64, edit func(p *domain.Profile)) {
	f.store.PutUser(&domain.User{ID: id, Tier: domain.TierFree})
	p := &domain.Profile{
		UserID:        id,
		Username:      id,
		Name:          id,
		Age:           30,
		LookingFor:    "dates",
		Photos:        []string{id + ".jpg"},
		PrivatePhotos: []string{id + "-private.jpg"},
	}
	if at != nil {
		p.Latitude = ptr(at[0])
		p.Longitude = ptr(at[1])
	}
	if edit != nil {
		edit(p)
	}
	f.store.PutProfile(p)
}

func userIDs(list []*feed.FeedProfile) []string {
	ids := make([]string, 0, len(list))
	for _, p := range list {
		ids = append(ids, p.UserID)
	}
	return ids
}

func TestGetFeed_DistanceGate(t *testing.T) {
	f := newFixture(t)
	f.addProfile("brooklyn", &brooklyn, nil)
	f.addProfile("boston", &boston, nil)
	f.addProfile("nowhere", nil, nil)
	ctx := context.Background()

	list, err := f.uc.GetFeed(ctx, f.viewer, feed.FeedFilter{})
	require.NoError(t, err)
	require.Equal(t, []string{"brooklyn"}, userIDs(list))
	assert.InDelta(t, 6.5, list[0].Distance, 0.1)
	assert.Equal(t, domain.RoundKm(list[0].Distance), list[0].Distance)

	list, err = f.uc.GetFeed(ctx, f.viewer, feed.FeedFilter{MaxDistanceKm: ptr(1.0)})
	require.NoError(t, err)
	assert.Empty(t, list)

	// Zero means "use the tier default".
	list, err = f.uc.GetFeed(ctx, f.viewer, feed.FeedFilter{MaxDistanceKm: ptr(0.0)})
	require.NoError(t, err)
	assert.Equal(t, []string{"brooklyn"}, userIDs(list))

	list, err = f.uc.GetFeed(ctx, f.viewer, feed.FeedFilter{MaxDistanceKm: ptr(500.0)})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"brooklyn", "boston"}, userIDs(list))
}

func TestGetFeed_ProRadius(t *testing.T) {
	f := newFixture(t)
	f.store.SetTier("viewer", domain.TierPro)
	f.viewer.Tier = domain.TierPro
	// Philadelphia is ~130 km from NYC, Trenton ~90 km.
	f.addProfile("trenton", &[2]float64{40.2206, -74.7597}, nil)
	f.addProfile("philly", &[2]float64{39.9526, -75.1652}, nil)

	list, err := f.uc.GetFeed(context.Background(), f.viewer, feed.FeedFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"trenton"}, userIDs(list))
}

func TestGetFeed_ViewerWithoutCoordinatesSeesNobody(t *testing.T) {
	f := newFixture(t)
	f.addProfile("viewer", nil, nil)
	f.addProfile("brooklyn", &brooklyn, nil)

	list, err := f.uc.GetFeed(context.Background(), f.viewer, feed.FeedFilter{})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestGetFeed_ExcludesDecidedAndStripsPrivatePhotos(t *testing.T) {
	f := newFixture(t)
	f.addProfile("liked", &brooklyn, nil)
	f.addProfile("passed", &brooklyn, nil)
	f.addProfile("fresh", &brooklyn, nil)
	ctx := context.Background()

	_, err := f.repos.Swipes.Create(ctx, &domain.Swipe{ID: "s1", ActorID: "viewer", TargetID: "liked", Decision: domain.DecisionLike})
	require.NoError(t, err)
	_, err = f.repos.Swipes.Create(ctx, &domain.Swipe{ID: "s2", ActorID: "viewer", TargetID: "passed", Decision: domain.DecisionPass})
	require.NoError(t, err)

	list, err := f.uc.GetFeed(ctx, f.viewer, feed.FeedFilter{})
	require.NoError(t, err)
	require.Equal(t, []string{"fresh"}, userIDs(list))
	assert.Empty(t, list[0].PrivatePhotos)
	assert.Equal(t, []string{"fresh.jpg"}, list[0].Photos)

	// The stored profile keeps its private photos.
	stored, err := f.repos.Profiles.GetByUserID(ctx, "fresh")
	require.NoError(t, err)
	assert.Equal(t, []string{"fresh-private.jpg"}, stored.PrivatePhotos)
}

func TestGetFeed_AttributeFilters(t *testing.T) {
	f := newFixture(t)
	f.addProfile("young-top", &brooklyn, func(p *domain.Profile) { p.Age = 22; p.Position = ptr("top") })
	f.addProfile("mid-bottom", &brooklyn, func(p *domain.Profile) { p.Age = 30; p.Position = ptr("bottom"); p.AvailableNow = true })
	f.addProfile("mid-top", &brooklyn, func(p *domain.Profile) { p.Age = 30; p.Position = ptr("top"); p.Tribe = ptr("bear") })
	f.addProfile("old-top", &brooklyn, func(p *domain.Profile) { p.Age = 45; p.Position = ptr("top"); p.LookingFor = "friends" })
	ctx := context.Background()

	cases := []struct {
		name   string
		filter domain.CandidateFilter
		want   []string
	}{
		{"no filter", domain.CandidateFilter{}, []string{"young-top", "mid-bottom", "mid-top", "old-top"}},
		{"position", domain.CandidateFilter{Position: ptr("top")}, []string{"young-top", "mid-top", "old-top"}},
		{"inclusive age range", domain.CandidateFilter{MinAge: ptr(22), MaxAge: ptr(30)}, []string{"young-top", "mid-bottom", "mid-top"}},
		{"tribe", domain.CandidateFilter{Tribe: ptr("bear")}, []string{"mid-top"}},
		{"looking for", domain.CandidateFilter{LookingFor: ptr("friends")}, []string{"old-top"}},
		{"available now", domain.CandidateFilter{AvailableNow: true}, []string{"mid-bottom"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pro := &domain.User{ID: "viewer", Tier: domain.TierPro}
			list, err := f.uc.GetFeed(ctx, pro, feed.FeedFilter{CandidateFilter: tc.filter})
			require.NoError(t, err)
			assert.ElementsMatch(t, tc.want, userIDs(list))
		})
	}
}

func TestGetFeed_OnlineOnly(t *testing.T) {
	f := newFixture(t)
	f.addProfile("active", &brooklyn, nil)
	f.addProfile("stale", &brooklyn, nil)
	f.addProfile("never", &brooklyn, nil)
	ctx := context.Background()

	require.NoError(t, f.repos.Users.TouchActivity(ctx, "active", time.Now().UTC().Add(-time.Minute)))
	require.NoError(t, f.repos.Users.TouchActivity(ctx, "stale", time.Now().UTC().Add(-time.Hour)))

	list, err := f.uc.GetFeed(ctx, f.viewer, feed.FeedFilter{OnlineOnly: true})
	require.NoError(t, err)
	require.Equal(t, []string{"active"}, userIDs(list))
	assert.True(t, list[0].Online)
}

func TestGetFeed_ConsumesQuota(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for i := 0; i < domain.DailyQuota; i++ {
		_, err := f.uc.GetFeed(ctx, f.viewer, feed.FeedFilter{})
		require.NoError(t, err)
	}
	_, err := f.uc.GetFeed(ctx, f.viewer, feed.FeedFilter{})
	assert.ErrorIs(t, err, domain.ErrQuotaExceeded)
}

func TestGetFeed_ViewerProfileMissing(t *testing.T) {
	f := newFixture(t)
	stranger := &domain.User{ID: "stranger", Tier: domain.TierPro}
	f.store.PutUser(stranger)

	_, err := f.uc.GetFeed(context.Background(), stranger, feed.FeedFilter{})
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}
