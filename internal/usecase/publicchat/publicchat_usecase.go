package publicchat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gdugdh24/matchcore/internal/domain"
	"github.com/gdugdh24/matchcore/internal/metrics"
	"github.com/gdugdh24/matchcore/internal/repository"
	"github.com/gdugdh24/matchcore/pkg/logger"
	"github.com/google/uuid"
)

type PublicChatUseCase struct {
	chatRepo    repository.PublicMessageRepository
	profileRepo repository.ProfileRepository
	now         func() time.Time
}

func NewPublicChatUseCase(chatRepo repository.PublicMessageRepository, profileRepo repository.ProfileRepository) *PublicChatUseCase {
	return &PublicChatUseCase{
		chatRepo:    chatRepo,
		profileRepo: profileRepo,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

type SendResult struct {
	MessageID string `json:"message_id"`
}

// RoomFilter narrows the room to senders matching the attribute filters
// within RadiusKm of the viewer.
type RoomFilter struct {
	domain.CandidateFilter
	RadiusKm *float64
}

type MessageWithSender struct {
	*domain.PublicMessage
	SenderProfile *domain.Profile `json:"sender_profile"`
}

// Send posts content to the public room, stamped with the sender's name and
// current profile coordinates.
func (uc *PublicChatUseCase) Send(ctx context.Context, senderID, content string) (*SendResult, error) {
	if strings.TrimSpace(content) == "" {
		return nil, domain.NewError(domain.ErrValidation, "content must not be blank")
	}

	profile, err := uc.profileRepo.GetByUserID(ctx, senderID)
	if err != nil {
		return nil, err
	}

	msg := &domain.PublicMessage{
		ID:         uuid.NewString(),
		SenderID:   senderID,
		SenderName: profile.Name,
		Content:    content,
		Latitude:   profile.Latitude,
		Longitude:  profile.Longitude,
		CreatedAt:  uc.now(),
	}
	if err := uc.chatRepo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to create public message: %w", err)
	}

	metrics.PublicMessagesSent.Inc()
	return &SendResult{MessageID: msg.ID}, nil
}

// List returns the last day of the room, newest first. The distance gate
// applies only when both the viewer and the message carry coordinates;
// messages whose sender no longer has a profile are skipped.
func (uc *PublicChatUseCase) List(ctx context.Context, viewerID string, filter RoomFilter) ([]*MessageWithSender, error) {
	me, err := uc.profileRepo.GetByUserID(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	messages, err := uc.chatRepo.ListSince(ctx, uc.now().Add(-domain.PublicChatWindow), domain.PublicChatScanLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list public messages: %w", err)
	}

	ids := make([]string, 0, len(messages))
	for _, m := range messages {
		ids = append(ids, m.SenderID)
	}
	senders, err := uc.profileRepo.GetByUserIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get profiles: %w", err)
	}

	radius := domain.PublicChatRadiusKm
	if filter.RadiusKm != nil {
		radius = *filter.RadiusKm
	}

	result := make([]*MessageWithSender, 0, len(messages))
	for _, m := range messages {
		sender, ok := senders[m.SenderID]
		if !ok {
			continue
		}
		if me.HasCoordinates() && m.HasCoordinates() {
			d := domain.HaversineKm(*me.Latitude, *me.Longitude, *m.Latitude, *m.Longitude)
			if d > radius {
				continue
			}
		}
		if !filter.Matches(sender) {
			continue
		}
		result = append(result, &MessageWithSender{PublicMessage: m, SenderProfile: sender.Public()})
		if len(result) == domain.PublicChatLimit {
			break
		}
	}

	logger.Debug(ctx, "public room read",
		logger.String("user_id", viewerID),
		logger.Int("scanned", len(messages)),
		logger.Int("returned", len(result)),
		logger.Float64("radius_km", radius),
	)
	return result, nil
}
