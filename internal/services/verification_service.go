package services

import (
	"context"
	"time"

	"github.com/freightlink/profile-api/internal/config"
	"github.com/freightlink/profile-api/internal/logging"
	"github.com/freightlink/profile-api/internal/models"
	"github.com/freightlink/profile-api/internal/observability"
	"github.com/freightlink/profile-api/internal/status"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// VerificationService manages driver identity-verification cases. The
// stored overall_status is recomputed from the sub-fields on every write so
// readers never depend on the client having sent a fresh value.
type VerificationService struct {
	logger *zap.Logger
}

// NewVerificationService creates a new verification service
func NewVerificationService() *VerificationService {
	return &VerificationService{logger: logging.Logger}
}

// Get returns the driver's verification case. A driver with no case yet
// gets a not_started record rather than an error.
func (s *VerificationService) Get(ctx context.Context, driverID string) (*models.VerificationRecord, error) {
	var record models.VerificationRecord
	err := config.MongoDB.Collection(config.AppConfig.VerificationCollection).
		FindOne(ctx, bson.M{"driver_id": driverID}).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return &models.VerificationRecord{
				DriverID:      driverID,
				OverallStatus: models.VerificationNotStarted,
				IDStatus:      models.SubStatusPending,
				AddressStatus: models.SubStatusPending,
				CourtStatus:   models.SubStatusPending,
			}, nil
		}
		return nil, err
	}
	return &record, nil
}

// MarkPaid records the verification payment and moves the case forward
func (s *VerificationService) MarkPaid(ctx context.Context, driverID string, amount float64) (*models.VerificationRecord, error) {
	record, err := s.Get(ctx, driverID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	record.Payment.IsPaid = true
	record.Payment.Amount = amount
	record.Payment.PaidAt = &now

	return s.save(ctx, record, now)
}

// RegisterDocument records one uploaded verification document. Document
// collection is complete once every required type has been uploaded.
func (s *VerificationService) RegisterDocument(ctx context.Context, driverID string, input models.DocumentUploadInput) (*models.VerificationRecord, error) {
	record, err := s.Get(ctx, driverID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	record.Documents.Uploaded = append(record.Documents.Uploaded, models.DocumentUpload{
		DocumentType: input.DocumentType,
		File:         input.File,
		UploadedAt:   now,
	})
	record.Documents.AllUploaded = record.Documents.HasAllRequiredDocuments()

	return s.save(ctx, record, now)
}

// save recomputes the overall status and replaces the stored record in full
func (s *VerificationService) save(ctx context.Context, record *models.VerificationRecord, now time.Time) (*models.VerificationRecord, error) {
	record.OverallStatus = status.DeriveOverallStatus(*record)
	record.UpdatedAt = &now

	_, err := config.MongoDB.Collection(config.AppConfig.VerificationCollection).ReplaceOne(
		ctx,
		bson.M{"driver_id": record.DriverID},
		record,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		observability.DatabaseOperations.WithLabelValues("save_verification", "error").Inc()
		s.logger.Error("failed to save verification record",
			zap.String("driver_id", observability.MaskDriverID(record.DriverID)),
			zap.Error(err))
		return nil, err
	}
	observability.DatabaseOperations.WithLabelValues("save_verification", "success").Inc()

	return record, nil
}
