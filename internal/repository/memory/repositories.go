package memory

import (
	"context"
	"sort"
	"time"

	"github.com/gdugdh24/matchcore/internal/domain"
)

type userRepository struct{ s *Store }

func (r *userRepository) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return copyUser(u), nil
}

func (r *userRepository) ConsumeQuota(_ context.Context, id string, now time.Time, limit int, window time.Duration) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return 0, domain.ErrUserNotFound
	}
	if u.QuotaResetAt == nil || now.Sub(*u.QuotaResetAt) > window {
		reset := now
		u.QuotaCount = 0
		u.QuotaResetAt = &reset
	}
	if u.QuotaCount >= limit {
		return 0, domain.ErrQuotaExceeded
	}
	u.QuotaCount++
	return u.QuotaCount, nil
}

func (r *userRepository) TouchActivity(_ context.Context, id string, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.LastActiveAt = &at
	return nil
}

func (r *userRepository) LastActive(_ context.Context, ids []string) (map[string]time.Time, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make(map[string]time.Time, len(ids))
	for _, id := range ids {
		if u, ok := r.s.users[id]; ok && u.LastActiveAt != nil {
			out[id] = *u.LastActiveAt
		}
	}
	return out, nil
}

type profileRepository struct{ s *Store }

func (r *profileRepository) GetByUserID(_ context.Context, userID string) (*domain.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.profiles[userID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return copyProfile(p), nil
}

func (r *profileRepository) GetByUserIDs(_ context.Context, userIDs []string) (map[string]*domain.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make(map[string]*domain.Profile, len(userIDs))
	for _, id := range userIDs {
		if p, ok := r.s.profiles[id]; ok {
			out[id] = copyProfile(p)
		}
	}
	return out, nil
}

func (r *profileRepository) ListCandidates(_ context.Context, excludeIDs []string, filter domain.CandidateFilter) ([]*domain.Profile, error) {
	excluded := make(map[string]struct{}, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = struct{}{}
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*domain.Profile
	for userID, p := range r.s.profiles {
		if _, skip := excluded[userID]; skip {
			continue
		}
		if filter.Matches(p) {
			out = append(out, copyProfile(p))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out, nil
}

type swipeRepository struct{ s *Store }

func (r *swipeRepository) Create(_ context.Context, swipe *domain.Swipe) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := swipeKey{swipe.ActorID, swipe.TargetID, swipe.Decision}
	if _, ok := r.s.swipes[key]; ok {
		return false, nil
	}
	cp := *swipe
	r.s.swipes[key] = &cp
	return true, nil
}

func (r *swipeRepository) HasLiked(_ context.Context, actorID, targetID string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, ok := r.s.swipes[swipeKey{actorID, targetID, domain.DecisionLike}]
	return ok, nil
}

func (r *swipeRepository) ListDecidedTargets(_ context.Context, actorID string) ([]string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	seen := make(map[string]struct{})
	var out []string
	for key := range r.s.swipes {
		if key.actor != actorID {
			continue
		}
		if _, dup := seen[key.target]; dup {
			continue
		}
		seen[key.target] = struct{}{}
		out = append(out, key.target)
	}
	return out, nil
}

func (r *swipeRepository) LikesReceived(_ context.Context, targetID string) ([]*domain.Swipe, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*domain.Swipe
	for key, sw := range r.s.swipes {
		if key.target == targetID && key.decision == domain.DecisionLike {
			cp := *sw
			out = append(out, &cp)
		}
	}
	sortByCreatedDesc(out, func(s *domain.Swipe) time.Time { return s.CreatedAt })
	return out, nil
}

type matchRepository struct{ s *Store }

func (r *matchRepository) Upsert(_ context.Context, match *domain.Match) (*domain.Match, bool, error) {
	a, b := domain.CanonicalPair(match.UserAID, match.UserBID)
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if id, ok := r.s.matchByPair[pairKey{a, b}]; ok {
		cp := *r.s.matches[id]
		return &cp, false, nil
	}
	stored := &domain.Match{ID: match.ID, UserAID: a, UserBID: b, CreatedAt: match.CreatedAt}
	r.s.matches[stored.ID] = stored
	r.s.matchByPair[pairKey{a, b}] = stored.ID
	cp := *stored
	return &cp, true, nil
}

func (r *matchRepository) GetByID(_ context.Context, id string) (*domain.Match, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m, ok := r.s.matches[id]
	if !ok {
		return nil, domain.ErrMatchNotFound
	}
	cp := *m
	return &cp, nil
}

func (r *matchRepository) GetUserMatches(_ context.Context, userID string) ([]*domain.Match, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*domain.Match
	for _, m := range r.s.matches {
		if m.HasUser(userID) {
			cp := *m
			out = append(out, &cp)
		}
	}
	sortByCreatedDesc(out, func(m *domain.Match) time.Time { return m.CreatedAt })
	return out, nil
}

type albumRepository struct{ s *Store }

func (r *albumRepository) CreateIfNoActive(_ context.Context, req *domain.AlbumAccessRequest) (*domain.AlbumAccessRequest, bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.albums {
		if existing.RequesterID == req.RequesterID && existing.OwnerID == req.OwnerID && existing.State.Active() {
			cp := *existing
			return &cp, false, nil
		}
	}
	stored := *req
	stored.State = domain.RequestPending
	stored.RespondedAt = nil
	r.s.albums[stored.ID] = &stored
	cp := stored
	return &cp, true, nil
}

func (r *albumRepository) ListPending(_ context.Context, ownerID string) ([]*domain.AlbumAccessRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*domain.AlbumAccessRequest
	for _, req := range r.s.albums {
		if req.OwnerID == ownerID && req.State == domain.RequestPending {
			cp := *req
			out = append(out, &cp)
		}
	}
	sortByCreatedDesc(out, func(a *domain.AlbumAccessRequest) time.Time { return a.CreatedAt })
	return out, nil
}

func (r *albumRepository) Respond(_ context.Context, id, ownerID string, state domain.RequestState, at time.Time) (*domain.AlbumAccessRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	req, ok := r.s.albums[id]
	if !ok || req.OwnerID != ownerID {
		return nil, domain.ErrRequestNotFound
	}
	if req.State != domain.RequestPending {
		return nil, domain.ErrRequestAlreadyAnswered
	}
	req.State = state
	req.RespondedAt = &at
	cp := *req
	return &cp, nil
}

func (r *albumRepository) HasAccepted(_ context.Context, requesterID, ownerID string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, req := range r.s.albums {
		if req.RequesterID == requesterID && req.OwnerID == ownerID && req.State == domain.RequestAccepted {
			return true, nil
		}
	}
	return false, nil
}

type messageRepository struct{ s *Store }

func (r *messageRepository) Create(_ context.Context, msg *domain.Message) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.matches[msg.MatchID]; !ok {
		return domain.ErrMatchNotFound
	}
	r.s.messageSeq++
	stored := copyMessage(msg)
	stored.Seq = r.s.messageSeq
	r.s.messages[msg.ID] = stored
	return nil
}

func (r *messageRepository) GetByID(_ context.Context, id string) (*domain.Message, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m, ok := r.s.messages[id]
	if !ok {
		return nil, domain.ErrMessageNotFound
	}
	return copyMessage(m), nil
}

func (r *messageRepository) MarkRead(_ context.Context, matchID, senderID string, at time.Time) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for _, m := range r.s.messages {
		if m.MatchID == matchID && m.SenderID == senderID && !m.Read {
			readAt := at
			m.Read = true
			m.ReadAt = &readAt
			n++
		}
	}
	return n, nil
}

func (r *messageRepository) ListThread(_ context.Context, matchID string) ([]*domain.Message, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*domain.Message
	for _, m := range r.s.messages {
		if m.MatchID == matchID && !m.Deleted {
			out = append(out, copyMessage(m))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].Seq < out[j].Seq
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *messageRepository) SoftDelete(_ context.Context, id string, at time.Time) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m, ok := r.s.messages[id]
	if !ok {
		return false, domain.ErrMessageNotFound
	}
	if m.Deleted {
		return false, nil
	}
	m.Deleted = true
	m.DeletedAt = &at
	return true, nil
}

type winkRepository struct{ s *Store }

func (r *winkRepository) Create(_ context.Context, wink *domain.Wink) (*domain.Wink, bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := pairKey{wink.SenderID, wink.ReceiverID}
	if existing, ok := r.s.winks[key]; ok {
		cp := *existing
		return &cp, false, nil
	}
	stored := *wink
	r.s.winks[key] = &stored
	cp := stored
	return &cp, true, nil
}

func (r *winkRepository) ListReceived(_ context.Context, receiverID string) ([]*domain.Wink, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*domain.Wink
	for key, w := range r.s.winks {
		if key.b == receiverID {
			cp := *w
			out = append(out, &cp)
		}
	}
	sortByCreatedDesc(out, func(w *domain.Wink) time.Time { return w.CreatedAt })
	return out, nil
}

type profileViewRepository struct{ s *Store }

func (r *profileViewRepository) Create(_ context.Context, view *domain.ProfileView) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *view
	r.s.views = append(r.s.views, &cp)
	return nil
}

func (r *profileViewRepository) ListByViewed(_ context.Context, viewedID string) ([]*domain.ProfileView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*domain.ProfileView
	for _, v := range r.s.views {
		if v.ViewedID == viewedID {
			cp := *v
			out = append(out, &cp)
		}
	}
	sortByCreatedDesc(out, func(v *domain.ProfileView) time.Time { return v.CreatedAt })
	return out, nil
}

type screenshotRepository struct{ s *Store }

func (r *screenshotRepository) Create(_ context.Context, attempt *domain.ScreenshotAttempt) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *attempt
	r.s.screenshots = append(r.s.screenshots, &cp)
	return nil
}

func (r *screenshotRepository) ListByOwner(_ context.Context, ownerID string) ([]*domain.ScreenshotAttempt, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*domain.ScreenshotAttempt
	for _, a := range r.s.screenshots {
		if a.OwnerID == ownerID {
			cp := *a
			out = append(out, &cp)
		}
	}
	sortByCreatedDesc(out, func(a *domain.ScreenshotAttempt) time.Time { return a.CreatedAt })
	return out, nil
}

type publicMessageRepository struct{ s *Store }

func (r *publicMessageRepository) Create(_ context.Context, msg *domain.PublicMessage) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[msg.SenderID]; !ok {
		return domain.ErrUserNotFound
	}
	cp := *msg
	r.s.publicChat = append(r.s.publicChat, &cp)
	return nil
}

func (r *publicMessageRepository) ListSince(_ context.Context, since time.Time, limit int) ([]*domain.PublicMessage, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*domain.PublicMessage
	for _, m := range r.s.publicChat {
		if !m.CreatedAt.Before(since) {
			cp := *m
			out = append(out, &cp)
		}
	}
	sortByCreatedDesc(out, func(m *domain.PublicMessage) time.Time { return m.CreatedAt })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
