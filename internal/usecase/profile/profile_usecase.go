package profile

import (
	"context"
	"fmt"
	"time"

	"github.com/gdugdh24/matchcore/internal/domain"
	"github.com/gdugdh24/matchcore/internal/repository"
	"github.com/gdugdh24/matchcore/pkg/logger"
	"github.com/google/uuid"
)

// AccessChecker is the part of the album workflow that gates private photos.
type AccessChecker interface {
	HasAccess(ctx context.Context, ownerID, viewerID string) (bool, error)
}

type ProfileUseCase struct {
	profileRepo    repository.ProfileRepository
	access         AccessChecker
	viewRepo       repository.ProfileViewRepository
	screenshotRepo repository.ScreenshotRepository
	now            func() time.Time
}

func NewProfileUseCase(
	profileRepo repository.ProfileRepository,
	access AccessChecker,
	viewRepo repository.ProfileViewRepository,
	screenshotRepo repository.ScreenshotRepository,
) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo:    profileRepo,
		access:         access,
		viewRepo:       viewRepo,
		screenshotRepo: screenshotRepo,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

// ProfileResponse represents a profile as seen by a particular viewer
type ProfileResponse struct {
	*domain.Profile
	DistanceKm       *float64 `json:"distance_km,omitempty"`
	HasPrivateAccess bool     `json:"has_private_access"`
}

type ProfileViewWithViewer struct {
	*domain.ProfileView
	ViewerProfile *domain.Profile `json:"viewer_profile"`
}

type ScreenshotWithViewer struct {
	*domain.ScreenshotAttempt
	ViewerProfile *domain.Profile `json:"viewer_profile"`
}

// GetMyProfile returns the caller's own profile including private photos
func (uc *ProfileUseCase) GetMyProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	return uc.profileRepo.GetByUserID(ctx, userID)
}

// View returns targetUserID's profile for viewer. Private photos are kept
// only for the owner and for viewers holding an accepted album request.
func (uc *ProfileUseCase) View(ctx context.Context, viewer *domain.User, targetUserID string) (*ProfileResponse, error) {
	profile, err := uc.profileRepo.GetByUserID(ctx, targetUserID)
	if err != nil {
		return nil, err
	}

	own := viewer.ID == targetUserID
	granted := own
	if !own && len(profile.PrivatePhotos) > 0 {
		granted, err = uc.access.HasAccess(ctx, targetUserID, viewer.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check album access: %w", err)
		}
	}

	response := &ProfileResponse{Profile: profile, HasPrivateAccess: granted}
	if !granted {
		response.Profile = profile.Public()
	}

	if !own {
		viewerProfile, err := uc.profileRepo.GetByUserID(ctx, viewer.ID)
		if err == nil {
			if d, ok := viewerProfile.DistanceTo(profile); ok {
				d = domain.RoundKm(d)
				response.DistanceKm = &d
			}
		}
	}

	if viewer.IsPro() && !own {
		view := &domain.ProfileView{
			ID:        uuid.NewString(),
			ViewerID:  viewer.ID,
			ViewedID:  targetUserID,
			CreatedAt: uc.now(),
		}
		if err := uc.viewRepo.Create(ctx, view); err != nil {
			// The profile is still served; a lost view record is tolerable.
			logger.Warn(ctx, "failed to record profile view",
				logger.String("viewed_id", targetUserID),
				logger.ErrorField(err),
			)
		}
	}

	return response, nil
}

// ProfileViews lists who opened the caller's profile. Pro only.
func (uc *ProfileUseCase) ProfileViews(ctx context.Context, user *domain.User) ([]*ProfileViewWithViewer, error) {
	if !user.IsPro() {
		return nil, domain.ErrProRequired
	}

	views, err := uc.viewRepo.ListByViewed(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list profile views: %w", err)
	}

	ids := make([]string, 0, len(views))
	for _, v := range views {
		ids = append(ids, v.ViewerID)
	}
	profiles, err := uc.profileRepo.GetByUserIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get profiles: %w", err)
	}

	result := make([]*ProfileViewWithViewer, 0, len(views))
	for _, v := range views {
		result = append(result, &ProfileViewWithViewer{
			ProfileView:   v,
			ViewerProfile: profiles[v.ViewerID].Public(),
		})
	}
	return result, nil
}

func (uc *ProfileUseCase) LogScreenshot(ctx context.Context, viewerID, ownerID string) error {
	if viewerID == ownerID {
		return domain.ErrSelfReference
	}
	if _, err := uc.profileRepo.GetByUserID(ctx, ownerID); err != nil {
		return err
	}

	attempt := &domain.ScreenshotAttempt{
		ID:        uuid.NewString(),
		ViewerID:  viewerID,
		OwnerID:   ownerID,
		CreatedAt: uc.now(),
	}
	if err := uc.screenshotRepo.Create(ctx, attempt); err != nil {
		return fmt.Errorf("failed to log screenshot attempt: %w", err)
	}

	logger.Info(ctx, "screenshot attempt logged",
		logger.String("viewer_id", viewerID),
		logger.String("owner_id", ownerID),
	)
	return nil
}

// ListScreenshots returns attempts against ownerID's album, newest first.
func (uc *ProfileUseCase) ListScreenshots(ctx context.Context, ownerID string) ([]*ScreenshotWithViewer, error) {
	attempts, err := uc.screenshotRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list screenshot attempts: %w", err)
	}

	ids := make([]string, 0, len(attempts))
	for _, a := range attempts {
		ids = append(ids, a.ViewerID)
	}
	profiles, err := uc.profileRepo.GetByUserIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get profiles: %w", err)
	}

	result := make([]*ScreenshotWithViewer, 0, len(attempts))
	for _, a := range attempts {
		result = append(result, &ScreenshotWithViewer{
			ScreenshotAttempt: a,
			ViewerProfile:     profiles[a.ViewerID].Public(),
		})
	}
	return result, nil
}
