package wink

import (
	"context"
	"fmt"
	"time"

	"github.com/gdugdh24/matchcore/internal/domain"
	"github.com/gdugdh24/matchcore/internal/repository"
	"github.com/google/uuid"
)

type WinkUseCase struct {
	winkRepo    repository.WinkRepository
	profileRepo repository.ProfileRepository
	now         func() time.Time
}

func NewWinkUseCase(winkRepo repository.WinkRepository, profileRepo repository.ProfileRepository) *WinkUseCase {
	return &WinkUseCase{
		winkRepo:    winkRepo,
		profileRepo: profileRepo,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

type SendResult struct {
	WinkID  string `json:"wink_id"`
	Created bool   `json:"created"`
}

type WinkWithSender struct {
	*domain.Wink
	SenderProfile *domain.Profile `json:"sender_profile"`
}

// Send winks at receiverID. A second wink returns the first one's id.
func (uc *WinkUseCase) Send(ctx context.Context, senderID, receiverID string) (*SendResult, error) {
	if senderID == receiverID {
		return nil, domain.ErrSelfReference
	}
	if _, err := uc.profileRepo.GetByUserID(ctx, receiverID); err != nil {
		return nil, err
	}

	wink, created, err := uc.winkRepo.Create(ctx, &domain.Wink{
		ID:         uuid.NewString(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		CreatedAt:  uc.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create wink: %w", err)
	}
	return &SendResult{WinkID: wink.ID, Created: created}, nil
}

func (uc *WinkUseCase) ListReceived(ctx context.Context, receiverID string) ([]*WinkWithSender, error) {
	winks, err := uc.winkRepo.ListReceived(ctx, receiverID)
	if err != nil {
		return nil, fmt.Errorf("failed to list winks: %w", err)
	}

	ids := make([]string, 0, len(winks))
	for _, w := range winks {
		ids = append(ids, w.SenderID)
	}
	profiles, err := uc.profileRepo.GetByUserIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get profiles: %w", err)
	}

	result := make([]*WinkWithSender, 0, len(winks))
	for _, w := range winks {
		result = append(result, &WinkWithSender{Wink: w, SenderProfile: profiles[w.SenderID].Public()})
	}
	return result, nil
}
