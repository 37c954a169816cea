package publicchat

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/gdugdh24/matchcore/internal/domain"
	"github.com/gdugdh24/matchcore/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

type fixture struct {
	uc    *PublicChatUseCase
	store *memory.Store
	clock time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{store: memory.NewStore(), clock: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	f.put("viewer", 30, ptr(40.7128), ptr(-74.0060))
	f.put("near", 28, ptr(40.73), ptr(-73.99))
	f.put("far", 40, ptr(34.0522), ptr(-118.2437))
	f.put("nowhere", 35, nil, nil)

	repos := memory.NewRepositories(f.store)
	f.uc = NewPublicChatUseCase(repos.PublicChat, repos.Profiles)
	f.uc.now = func() time.Time { return f.clock }
	return f
}

func (f *fixture) put(id string, age int, lat, lon *float64) {
	f.store.PutUser(&domain.User{ID: id})
	f.store.PutProfile(&domain.Profile{
		UserID: id, Name: id, Age: age, Latitude: lat, Longitude: lon,
		PrivatePhotos: []string{id + ".jpg"},
	})
}

func (f *fixture) send(t *testing.T, senderID, content string) {
	t.Helper()
	_, err := f.uc.Send(context.Background(), senderID, content)
	require.NoError(t, err)
	f.clock = f.clock.Add(time.Second)
}

func senders(msgs []*MessageWithSender) []string {
	out := make([]string, len(msgs))
	for i, m := range msgs {
		out[i] = m.SenderID
	}
	return out
}

func TestSend(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.Send(ctx, "viewer", "   ")
	assert.ErrorIs(t, err, domain.ErrValidation)

	f.store.PutUser(&domain.User{ID: "ghost"})
	_, err = f.uc.Send(ctx, "ghost", "hi")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	res, err := f.uc.Send(ctx, "near", "hi")
	require.NoError(t, err)
	assert.NotEmpty(t, res.MessageID)

	msgs, err := f.uc.List(ctx, "viewer", RoomFilter{})
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "near", msgs[0].SenderName)
	assert.InDelta(t, 40.73, *msgs[0].Latitude, 1e-9)
	assert.Equal(t, f.clock, msgs[0].CreatedAt)
}

func TestList_RadiusAndCoordinates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.send(t, "near", "one")
	f.send(t, "far", "two")
	f.send(t, "nowhere", "three")

	msgs, err := f.uc.List(ctx, "viewer", RoomFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"nowhere", "near"}, senders(msgs), "newest first; no coordinates skips the distance gate")
	for _, m := range msgs {
		assert.Empty(t, m.SenderProfile.PrivatePhotos)
	}

	msgs, err = f.uc.List(ctx, "viewer", RoomFilter{RadiusKm: ptr(5000.0)})
	require.NoError(t, err)
	assert.Equal(t, []string{"nowhere", "far", "near"}, senders(msgs))

	msgs, err = f.uc.List(ctx, "nowhere", RoomFilter{RadiusKm: ptr(0.0)})
	require.NoError(t, err)
	assert.Len(t, msgs, 3, "a viewer without coordinates sees every sender")
}

func TestList_AttributeFilters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.send(t, "near", "one")
	f.send(t, "nowhere", "two")

	msgs, err := f.uc.List(ctx, "viewer", RoomFilter{CandidateFilter: domain.CandidateFilter{MinAge: ptr(30)}})
	require.NoError(t, err)
	assert.Equal(t, []string{"nowhere"}, senders(msgs))

	msgs, err = f.uc.List(ctx, "viewer", RoomFilter{CandidateFilter: domain.CandidateFilter{AvailableNow: true}})
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestList_WindowAndMissingSender(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.send(t, "near", "old")
	f.clock = f.clock.Add(domain.PublicChatWindow)
	f.send(t, "nowhere", "fresh")

	// A sender whose profile is gone keeps its rows but drops out of the room.
	f.store.PutUser(&domain.User{ID: "orphan"})
	require.NoError(t, f.uc.chatRepo.Create(ctx, &domain.PublicMessage{
		ID: "orphan-msg", SenderID: "orphan", Content: "bye", CreatedAt: f.clock,
	}))

	msgs, err := f.uc.List(ctx, "viewer", RoomFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"nowhere"}, senders(msgs), "the day-old message is outside the window")

	_, err = f.uc.List(ctx, "ghost", RoomFilter{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestList_CapsResult(t *testing.T) {
	f := newFixture(t)

	for i := 0; i < domain.PublicChatLimit+20; i++ {
		f.send(t, "near", fmt.Sprintf("msg %d", i))
	}

	msgs, err := f.uc.List(context.Background(), "viewer", RoomFilter{})
	require.NoError(t, err)
	require.Len(t, msgs, domain.PublicChatLimit)
	assert.Equal(t, fmt.Sprintf("msg %d", domain.PublicChatLimit+19), msgs[0].Content)
}
