package repository

import (
	"context"
	"time"

	"github.com/gdugdh24/matchcore/internal/domain"
)

type MessageRepository interface {
	Create(ctx context.Context, msg *domain.Message) error
	GetByID(ctx context.Context, id string) (*domain.Message, error)
	// MarkRead flips every unread message of senderID in the match with one read_at.
	MarkRead(ctx context.Context, matchID, senderID string, at time.Time) (int64, error)
	// ListThread returns non-deleted messages ordered by creation time.
	ListThread(ctx context.Context, matchID string) ([]*domain.Message, error)
	// SoftDelete marks the message deleted once; false means it already was.
	SoftDelete(ctx context.Context, id string, at time.Time) (bool, error)
}
