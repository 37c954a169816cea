package message

import (
	"context"
	"fmt"
	"time"

	"github.com/gdugdh24/matchcore/internal/domain"
	"github.com/gdugdh24/matchcore/internal/metrics"
	"github.com/gdugdh24/matchcore/internal/repository"
	"github.com/gdugdh24/matchcore/pkg/logger"
	"github.com/google/uuid"
)

type MessageUseCase struct {
	messageRepo repository.MessageRepository
	matchRepo   repository.MatchRepository
	now         func() time.Time
}

func NewMessageUseCase(messageRepo repository.MessageRepository, matchRepo repository.MatchRepository) *MessageUseCase {
	return &MessageUseCase{
		messageRepo: messageRepo,
		matchRepo:   matchRepo,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

type SendInput struct {
	Content   string
	Type      domain.MessageType
	Latitude  *float64
	Longitude *float64
	PhotoURL  *string
}

// participantMatch loads the match and checks userID belongs to it.
func (uc *MessageUseCase) participantMatch(ctx context.Context, matchID, userID string) (*domain.Match, error) {
	match, err := uc.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if !match.HasUser(userID) {
		return nil, domain.ErrNotParticipant
	}
	return match, nil
}

func (uc *MessageUseCase) Send(ctx context.Context, matchID, senderID string, in SendInput) (*domain.Message, error) {
	if _, err := uc.participantMatch(ctx, matchID, senderID); err != nil {
		return nil, err
	}

	msg := &domain.Message{
		ID:        uuid.NewString(),
		MatchID:   matchID,
		SenderID:  senderID,
		Content:   in.Content,
		Type:      in.Type,
		Latitude:  in.Latitude,
		Longitude: in.Longitude,
		PhotoURL:  in.PhotoURL,
		CreatedAt: uc.now(),
	}
	if err := msg.Validate(); err != nil {
		return nil, err
	}

	if err := uc.messageRepo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	metrics.MessagesSent.WithLabelValues(string(msg.Type)).Inc()
	return msg, nil
}

// FetchThread returns the visible thread and marks the counterpart's
// messages read in one write.
func (uc *MessageUseCase) FetchThread(ctx context.Context, matchID, viewerID string) ([]*domain.Message, error) {
	match, err := uc.participantMatch(ctx, matchID, viewerID)
	if err != nil {
		return nil, err
	}

	otherID, _ := match.GetOtherUserID(viewerID)
	n, err := uc.messageRepo.MarkRead(ctx, matchID, otherID, uc.now())
	if err != nil {
		return nil, fmt.Errorf("failed to mark messages read: %w", err)
	}
	if n > 0 {
		logger.Debug(ctx, "messages marked read",
			logger.String("match_id", matchID),
			logger.Int64("count", n),
		)
	}

	messages, err := uc.messageRepo.ListThread(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	if messages == nil {
		messages = []*domain.Message{}
	}
	return messages, nil
}

// Delete soft-deletes a message. Only Pro senders may delete; repeating the
// call is a successful no-op.
func (uc *MessageUseCase) Delete(ctx context.Context, messageID string, requester *domain.User) error {
	if !requester.IsPro() {
		return domain.ErrProRequired
	}

	msg, err := uc.messageRepo.GetByID(ctx, messageID)
	if err != nil {
		return err
	}
	if msg.SenderID != requester.ID {
		return domain.ErrNotMessageOwner
	}

	if _, err := uc.messageRepo.SoftDelete(ctx, messageID, uc.now()); err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}
	return nil
}
