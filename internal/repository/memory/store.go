// Package memory keeps every entity in process memory behind one mutex.
// It is used for local runs and use case tests.
package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/gdugdh24/matchcore/internal/domain"
	"github.com/gdugdh24/matchcore/internal/repository"
)

type swipeKey struct {
	actor, target string
	decision      domain.Decision
}

type pairKey struct {
	a, b string
}

type Store struct {
	mu sync.Mutex

	users       map[string]*domain.User
	profiles    map[string]*domain.Profile // by user id
	swipes      map[swipeKey]*domain.Swipe
	matches     map[string]*domain.Match
	matchByPair map[pairKey]string
	albums      map[string]*domain.AlbumAccessRequest
	messages    map[string]*domain.Message
	messageSeq  int64
	winks       map[pairKey]*domain.Wink
	views       []*domain.ProfileView
	screenshots []*domain.ScreenshotAttempt
	publicChat  []*domain.PublicMessage
}

func NewStore() *Store {
	return &Store{
		users:       make(map[string]*domain.User),
		profiles:    make(map[string]*domain.Profile),
		swipes:      make(map[swipeKey]*domain.Swipe),
		matches:     make(map[string]*domain.Match),
		matchByPair: make(map[pairKey]string),
		albums:      make(map[string]*domain.AlbumAccessRequest),
		messages:    make(map[string]*domain.Message),
		winks:       make(map[pairKey]*domain.Wink),
	}
}

// NewRepositories exposes the store through the repository interfaces.
func NewRepositories(s *Store) *repository.Repositories {
	return &repository.Repositories{
		Users:        &userRepository{s},
		Profiles:     &profileRepository{s},
		Swipes:       &swipeRepository{s},
		Matches:      &matchRepository{s},
		Albums:       &albumRepository{s},
		Messages:     &messageRepository{s},
		Winks:        &winkRepository{s},
		ProfileViews: &profileViewRepository{s},
		Screenshots:  &screenshotRepository{s},
		PublicChat:   &publicMessageRepository{s},
	}
}

// PutUser inserts or replaces a user. It stands in for the identity service.
func (s *Store) PutUser(u *domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *u
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = time.Now().UTC()
	}
	s.users[u.ID] = &cp
}

// PutProfile inserts or replaces a profile. It stands in for the profile store.
func (s *Store) PutProfile(p *domain.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *p
	if cp.ID == "" {
		cp.ID = p.UserID
	}
	s.profiles[p.UserID] = &cp
}

// SetTier flips a user's tier the way the billing webhook would.
func (s *Store) SetTier(userID string, tier domain.Tier) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[userID]; ok {
		u.Tier = tier
	}
}

// Counts reports stored swipe and match totals.
func (s *Store) Counts() (swipes, matches int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.swipes), len(s.matches)
}

func copyUser(u *domain.User) *domain.User {
	cp := *u
	return &cp
}

func copyProfile(p *domain.Profile) *domain.Profile {
	cp := *p
	cp.Interests = append([]string(nil), p.Interests...)
	cp.Photos = append([]string(nil), p.Photos...)
	cp.PrivatePhotos = append([]string(nil), p.PrivatePhotos...)
	return &cp
}

func copyMessage(m *domain.Message) *domain.Message {
	cp := *m
	return &cp
}

func sortByCreatedDesc[T any](items []T, createdAt func(T) time.Time) {
	sort.SliceStable(items, func(i, j int) bool {
		return createdAt(items[i]).After(createdAt(items[j]))
	})
}
