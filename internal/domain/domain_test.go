package domain

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestHaversineKm(t *testing.T) {
	nyc := [2]float64{40.7128, -74.0060}
	brooklyn := [2]float64{40.6782, -73.9442}

	d := HaversineKm(nyc[0], nyc[1], brooklyn[0], brooklyn[1])
	assert.InDelta(t, 6.5, d, 0.1)
	assert.InDelta(t, d, HaversineKm(brooklyn[0], brooklyn[1], nyc[0], nyc[1]), 1e-9)
	assert.Zero(t, HaversineKm(nyc[0], nyc[1], nyc[0], nyc[1]))

	assert.Less(t, d, FreeRadiusKm)
	assert.Greater(t, d, 1.0)
}

func TestRoundKmAndRadius(t *testing.T) {
	assert.Equal(t, 6.5, RoundKm(6.4789))
	assert.Equal(t, 0.0, RoundKm(0.04))
	assert.Equal(t, FreeRadiusKm, DefaultRadiusKm(TierFree))
	assert.Equal(t, ProRadiusKm, DefaultRadiusKm(TierPro))
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		err  error
		want error
	}{
		{ErrMatchNotFound, ErrNotFound},
		{fmt.Errorf("wrapped: %w", ErrProRequired), ErrForbidden},
		{ErrRequestAlreadyAnswered, ErrConflict},
		{ErrInvalidToken, ErrUnauthorized},
		{NewError(ErrValidation, "bad"), ErrValidation},
		{ErrSelfReference, ErrSelfReference},
		{errors.New("driver exploded"), nil},
		{nil, nil},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, KindOf(tt.err), "%v", tt.err)
	}
	assert.Equal(t, "match not found", ErrMatchNotFound.Error())
}

func TestCanonicalPairAndMatch(t *testing.T) {
	a, b := CanonicalPair("zed", "amy")
	assert.Equal(t, "amy", a)
	assert.Equal(t, "zed", b)

	m1 := NewMatch("m", "zed", "amy", time.Now())
	m2 := NewMatch("m", "amy", "zed", time.Now())
	assert.Equal(t, m1.UserAID, m2.UserAID)
	assert.Equal(t, m1.UserBID, m2.UserBID)

	other, ok := m1.GetOtherUserID("zed")
	require.True(t, ok)
	assert.Equal(t, "amy", other)
	_, ok = m1.GetOtherUserID("bob")
	assert.False(t, ok)
	assert.False(t, m1.HasUser("bob"))
}

func TestProfilePublic(t *testing.T) {
	p := &Profile{UserID: "u", PrivatePhotos: []string{"x.jpg"}, HasPrivateAlbum: true}
	pub := p.Public()
	assert.Empty(t, pub.PrivatePhotos)
	assert.NotNil(t, pub.PrivatePhotos)
	assert.True(t, pub.HasPrivateAlbum)
	assert.Equal(t, []string{"x.jpg"}, p.PrivatePhotos, "original untouched")

	var nilProfile *Profile
	assert.Nil(t, nilProfile.Public())
}

func TestProfileDistanceTo(t *testing.T) {
	a := &Profile{Latitude: ptr(40.7128), Longitude: ptr(-74.0060)}
	b := &Profile{Latitude: ptr(40.6782), Longitude: ptr(-73.9442)}
	half := &Profile{Latitude: ptr(40.0)}

	d, ok := a.DistanceTo(b)
	require.True(t, ok)
	assert.InDelta(t, 6.5, d, 0.1)

	_, ok = a.DistanceTo(half)
	assert.False(t, ok)
}

func TestCandidateFilter(t *testing.T) {
	p := &Profile{Age: 30, Position: ptr("top"), LookingFor: "dates", AvailableNow: false}

	assert.True(t, CandidateFilter{}.Matches(p))
	assert.True(t, CandidateFilter{MinAge: ptr(30), MaxAge: ptr(30)}.Matches(p), "age bounds are inclusive")
	assert.False(t, CandidateFilter{MinAge: ptr(31)}.Matches(p))
	assert.True(t, CandidateFilter{Position: ptr("top")}.Matches(p))
	assert.False(t, CandidateFilter{Position: ptr("bottom")}.Matches(p))
	assert.False(t, CandidateFilter{Tribe: ptr("bear")}.Matches(p), "unset attribute never matches a filter")
	assert.False(t, CandidateFilter{LookingFor: ptr("friends")}.Matches(p))
	assert.False(t, CandidateFilter{AvailableNow: true}.Matches(p))
}

func TestMessageValidate(t *testing.T) {
	tests := []struct {
		name  string
		msg   Message
		valid bool
	}{
		{"text", Message{Type: MessageText, Content: "hi"}, true},
		{"empty text", Message{Type: MessageText}, false},
		{"location", Message{Type: MessageLocation, Latitude: ptr(1.0), Longitude: ptr(2.0)}, true},
		{"location missing lon", Message{Type: MessageLocation, Latitude: ptr(1.0)}, false},
		{"photo", Message{Type: MessagePhoto, PhotoURL: ptr("https://x/y.jpg")}, true},
		{"photo empty url", Message{Type: MessagePhoto, PhotoURL: ptr("")}, false},
		{"unknown", Message{Type: "sticker", Content: "x"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.msg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrValidation)
			}
		})
	}
}

func TestUserQuotaAndPresence(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	reset := now.Add(-time.Hour)

	free := &User{Tier: TierFree, QuotaCount: 48, QuotaResetAt: &reset}
	assert.False(t, free.QuotaExpired(now))
	assert.Equal(t, 2, free.QuotaRemaining(now))
	assert.Equal(t, DailyQuota, free.QuotaRemaining(now.Add(QuotaWindow)))

	free.QuotaCount = 60
	assert.Equal(t, 0, free.QuotaRemaining(now))
	assert.Equal(t, -1, (&User{Tier: TierPro}).QuotaRemaining(now))
	assert.True(t, (&User{}).QuotaExpired(now))

	edge := now.Add(-OnlineWindow)
	assert.True(t, IsOnlineAt(&edge, now))
	stale := now.Add(-OnlineWindow - time.Second)
	assert.False(t, IsOnlineAt(&stale, now))
	assert.False(t, IsOnlineAt(nil, now))
	assert.True(t, RequestPending.Active())
	assert.False(t, RequestRejected.Active())
}
