package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/ybotev/staffdesk/internal/directory/assets"
	e "github.com/ybotev/staffdesk/internal/directory/errors"
	"github.com/ybotev/staffdesk/internal/directory/events"
	"github.com/ybotev/staffdesk/internal/directory/models"
	"go.uber.org/zap"
)

const profileFolder = "company_profiles"

// ProfileService manages the singleton company profile and its bound
// image asset.
type ProfileService struct {
	repo     ProfileRepository
	store    assets.Store
	producer EventProducer
	logger   *zap.Logger
}

func NewProfileService(repo ProfileRepository, store assets.Store, producer EventProducer, logger *zap.Logger) *ProfileService {
	return &ProfileService{
		repo:     repo,
		store:    store,
		producer: producer,
		logger:   logger.Named("profile_service"),
	}
}

// Create stores the one allowed company profile. The singleton check runs
// before the upload so a conflicting request leaves no asset behind; a
// failure after the upload, however, orphans the uploaded asset (no
// compensating delete).
func (s *ProfileService) Create(ctx context.Context, profile *models.CompanyProfile, image *assets.Blob) (*models.CompanyProfile, error) {
	if image == nil {
		return nil, fmt.Errorf("%w: profile image is required", e.ErrInvalidInput)
	}
	if profile.CompanyName == "" || len(profile.CompanyName) > 150 {
		return nil, fmt.Errorf("%w: invalid company name", e.ErrInvalidInput)
	}
	if profile.Address == "" {
		return nil, fmt.Errorf("%w: address is required", e.ErrInvalidInput)
	}

	exists, err := s.repo.ProfileExists(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check profile existence: %w", err)
	}
	if exists {
		return nil, e.ErrProfileExists
	}

	asset, err := s.store.Upload(ctx, *image, profileFolder)
	if err != nil {
		return nil, fmt.Errorf("failed to upload profile image: %w", err)
	}

	profile.ID = uuid.New()
	profile.ProfileImage = models.ImageAsset{Key: asset.Key, URL: asset.URL}
	if err := s.repo.CreateProfile(ctx, profile); err != nil {
		// The uploaded asset is orphaned here; cleanup is out-of-band.
		return nil, fmt.Errorf("failed to create company profile: %w", err)
	}

	go func() {
		s.producer.Produce(events.ProfileCreated, profile.ID.String(), profile)
	}()
	return profile, nil
}

// Get returns the profile, refreshing the asset URL from the store in
// case upload-time URLs are short-lived.
func (s *ProfileService) Get(ctx context.Context) (*models.CompanyProfile, error) {
	profile, err := s.repo.GetProfile(ctx)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get company profile: %w", err)
	}
	profile.ProfileImage.URL = s.store.DisplayURL(profile.ProfileImage.Key)
	return profile, nil
}

// Update applies a partial update. Present fields are compared against
// stored values after trimming; if nothing differs and no new image was
// supplied, no write happens. An image replacement deletes the old asset
// before uploading the new one, so a failure between the two steps leaves
// the record without a valid asset.
func (s *ProfileService) Update(ctx context.Context, id uuid.UUID, update *models.ProfileUpdate, image *assets.Blob) (*models.CompanyProfile, error) {
	profile, err := s.repo.GetProfileByID(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get company profile: %w", err)
	}

	if image == nil && profileUnchanged(profile, update) {
		profile.ProfileImage.URL = s.store.DisplayURL(profile.ProfileImage.Key)
		return profile, nil
	}

	if image != nil {
		if err := s.store.Delete(ctx, profile.ProfileImage.Key); err != nil {
			return nil, fmt.Errorf("failed to delete previous profile image: %w", err)
		}
		asset, err := s.store.Upload(ctx, *image, profileFolder)
		if err != nil {
			return nil, fmt.Errorf("failed to upload profile image: %w", err)
		}
		profile.ProfileImage = models.ImageAsset{Key: asset.Key, URL: asset.URL}
	}

	applyIfPresent(update.CompanyName, &profile.CompanyName)
	applyIfPresent(update.WebsiteLink, &profile.WebsiteLink)
	applyIfPresent(update.Established, &profile.Established)
	applyIfPresent(update.Address, &profile.Address)
	applyIfPresent(update.ButtonName, &profile.ButtonName)
	applyIfPresent(update.ButtonRedirectURL, &profile.ButtonRedirectURL)

	if err := s.repo.SaveProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to update company profile: %w", err)
	}

	go func() {
		s.producer.Produce(events.ProfileUpdated, profile.ID.String(), profile)
	}()
	return profile, nil
}

// Delete removes the asset first; if that fails the record is kept and
// the error surfaced. A record-delete failure after the asset is gone
// leaves a dangling reference (no compensation).
func (s *ProfileService) Delete(ctx context.Context, id uuid.UUID) error {
	profile, err := s.repo.GetProfileByID(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to get company profile for deletion: %w", err)
	}

	if err := s.store.Delete(ctx, profile.ProfileImage.Key); err != nil {
		return fmt.Errorf("failed to delete profile image: %w", err)
	}
	if err := s.repo.DeleteProfile(ctx, id); err != nil {
		return fmt.Errorf("failed to delete company profile: %w", err)
	}

	go func() {
		s.producer.Produce(events.ProfileDeleted, profile.ID.String(), nil)
	}()
	return nil
}

// profileUnchanged reports whether every present update field equals the
// stored value after trimming. Empty-after-trim fields count as absent.
func profileUnchanged(profile *models.CompanyProfile, update *models.ProfileUpdate) bool {
	return sameTrimmed(update.CompanyName, profile.CompanyName) &&
		sameTrimmed(update.WebsiteLink, profile.WebsiteLink) &&
		sameTrimmed(update.Established, profile.Established) &&
		sameTrimmed(update.Address, profile.Address) &&
		sameTrimmed(update.ButtonName, profile.ButtonName) &&
		sameTrimmed(update.ButtonRedirectURL, profile.ButtonRedirectURL)
}

func sameTrimmed(field *string, stored string) bool {
	if field == nil {
		return true
	}
	trimmed := strings.TrimSpace(*field)
	if trimmed == "" {
		return true
	}
	return trimmed == stored
}

func applyIfPresent(field *string, target *string) {
	if field == nil {
		return
	}
	if trimmed := strings.TrimSpace(*field); trimmed != "" {
		*target = trimmed
	}
}
