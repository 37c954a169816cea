package repository

import (
	"context"
	"time"

	"github.com/gdugdh24/matchcore/internal/domain"
)

type WinkRepository interface {
	// Create returns the existing wink with created=false when the sender
	// already winked at the receiver.
	Create(ctx context.Context, wink *domain.Wink) (*domain.Wink, bool, error)
	ListReceived(ctx context.Context, receiverID string) ([]*domain.Wink, error)
}

type ProfileViewRepository interface {
	Create(ctx context.Context, view *domain.ProfileView) error
	ListByViewed(ctx context.Context, viewedID string) ([]*domain.ProfileView, error)
}

type ScreenshotRepository interface {
	Create(ctx context.Context, attempt *domain.ScreenshotAttempt) error
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.ScreenshotAttempt, error)
}

type PublicMessageRepository interface {
	Create(ctx context.Context, msg *domain.PublicMessage) error
	// ListSince returns at most limit messages created at or after since,
	// newest first.
	ListSince(ctx context.Context, since time.Time, limit int) ([]*domain.PublicMessage, error)
}
