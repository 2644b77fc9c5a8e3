package services

import (
	"context"
	"net/url"
	"time"

	"github.com/freightlink/profile-api/internal/config"
	"github.com/freightlink/profile-api/internal/logging"
	"github.com/freightlink/profile-api/internal/models"
	"github.com/freightlink/profile-api/internal/normalizer"
	"github.com/freightlink/profile-api/internal/observability"
	"github.com/freightlink/profile-api/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// ProfileService reads raw driver records from the store, normalizes them to
// the canonical shape, and writes canonical updates back as full-record
// replacements. All writes are idempotent; last write wins.
type ProfileService struct {
	cache  *CacheService
	logger *zap.Logger
}

// NewProfileService creates a new profile service
func NewProfileService() *ProfileService {
	return &ProfileService{
		cache:  NewCacheService(),
		logger: logging.Logger,
	}
}

// GetProfile returns the canonical profile for a driver, from cache when
// possible, otherwise normalized fresh from the stored raw record.
func (s *ProfileService) GetProfile(ctx context.Context, driverID string) (*models.DriverProfile, error) {
	if cached, err := s.cache.GetProfile(ctx, driverID); err == nil && cached != nil {
		return cached, nil
	} else if err != nil {
		s.logger.Warn("profile cache read failed", zap.Error(err))
	}

	var raw bson.M
	err := config.MongoDB.Collection(config.AppConfig.DriverProfileCollection).
		FindOne(ctx, bson.M{"driver_id": driverID}).Decode(&raw)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, models.ErrProfileNotFound
		}
		observability.DatabaseOperations.WithLabelValues("find_profile", "error").Inc()
		return nil, err
	}
	observability.DatabaseOperations.WithLabelValues("find_profile", "success").Inc()

	profile := normalizer.ProfileFromRecord(driverID, models.RawRecord(raw))

	if err := s.cache.SetProfile(ctx, &profile); err != nil {
		s.logger.Warn("profile cache write failed", zap.Error(err))
	}
	return &profile, nil
}

// UpdateProfile applies a canonical update to a driver profile. Scalar
// fields replace; multi-select fields toggle each listed token in or out of
// the current selection. The resulting record replaces the stored one in
// full, and the cache entry is invalidated.
func (s *ProfileService) UpdateProfile(ctx context.Context, driverID string, input models.ProfileUpdateInput) (*models.DriverProfile, error) {
	profile, err := s.GetProfile(ctx, driverID)
	if err == models.ErrProfileNotFound {
		profile = &models.DriverProfile{DriverID: driverID}
	} else if err != nil {
		return nil, err
	}

	applyUpdate(profile, input)
	now := time.Now()
	profile.UpdatedAt = &now

	_, err = config.MongoDB.Collection(config.AppConfig.DriverProfileCollection).ReplaceOne(
		ctx,
		bson.M{"driver_id": driverID},
		profile,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		observability.DatabaseOperations.WithLabelValues("update_profile", "error").Inc()
		observability.ProfileUpdates.WithLabelValues("error").Inc()
		return nil, err
	}
	observability.DatabaseOperations.WithLabelValues("update_profile", "success").Inc()
	observability.ProfileUpdates.WithLabelValues("success").Inc()

	if err := s.cache.InvalidateProfile(ctx, driverID); err != nil {
		s.logger.Warn("failed to invalidate profile cache", zap.Error(err))
	}

	return profile, nil
}

// WireForm renders the canonical profile in the shape the submission
// endpoint expects
func (s *ProfileService) WireForm(profile *models.DriverProfile) url.Values {
	return normalizer.SerializeProfile(*profile)
}

// applyUpdate mutates the canonical profile in place. Each multi-select
// write re-derives the full joined string from a deduplicated ordered set,
// so the profile is never partially invalid.
func applyUpdate(profile *models.DriverProfile, input models.ProfileUpdateInput) {
	if input.Name != nil {
		profile.Name = *input.Name
	}
	if input.Phone != nil {
		if formatted, err := utils.FormatContactPhone(*input.Phone); err == nil {
			profile.Phone = formatted
		} else {
			profile.Phone = *input.Phone
		}
	}
	if input.Pincode != nil {
		profile.Pincode = *input.Pincode
	}
	if input.IndustrySegment != nil {
		profile.IndustrySegment = *input.IndustrySegment
	}
	if input.FleetSize != nil {
		profile.FleetSize = normalizer.MapFleetSize(*input.FleetSize)
	}
	if input.AvgKmRun != nil {
		profile.AvgKmRun = normalizer.MapAvgKmRun(*input.AvgKmRun)
	}
	if input.YearsExperience != nil {
		profile.YearsExperience = normalizer.MapYearsExperience(*input.YearsExperience)
	}

	for _, token := range input.VehicleTypes {
		profile.VehicleType = normalizer.Toggle(profile.VehicleType, token)
	}
	for _, token := range input.Endorsements {
		profile.Endorsement = normalizer.Toggle(profile.Endorsement, token)
	}

	// Absent file fields leave the stored file unchanged
	if input.ProfilePhoto != nil {
		profile.ProfilePhoto = input.ProfilePhoto
	}
	if input.LicenseDoc != nil {
		profile.LicenseDoc = input.LicenseDoc
	}
}
