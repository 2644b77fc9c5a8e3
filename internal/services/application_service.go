package services

import (
	"context"
	"time"

	"github.com/freightlink/profile-api/internal/config"
	"github.com/freightlink/profile-api/internal/logging"
	"github.com/freightlink/profile-api/internal/models"
	"github.com/freightlink/profile-api/internal/normalizer"
	"github.com/freightlink/profile-api/internal/observability"
	"github.com/freightlink/profile-api/internal/status"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ApplicantView is one applicant card: the application plus everything the
// UI derives from it on render.
type ApplicantView struct {
	Application models.ApplicationRecord `json:"application"`
	Driver      models.DriverProfile     `json:"driver"`
	Tag         status.DriverTag         `json:"tag"`
	Interview   status.InterviewInfo     `json:"interview"`
}

// ApplicationService manages the job-application lifecycle: apply, decide,
// schedule interviews
type ApplicationService struct {
	logger *zap.Logger
}

// NewApplicationService creates a new application service
func NewApplicationService() *ApplicationService {
	return &ApplicationService{logger: logging.Logger}
}

// Apply creates a Pending application for a driver on a job posting
func (s *ApplicationService) Apply(ctx context.Context, jobID string, input models.ApplyInput) (*models.ApplicationRecord, error) {
	record := models.ApplicationRecord{
		ID:            uuid.NewString(),
		JobID:         jobID,
		DriverID:      input.DriverID,
		CurrentStatus: models.ApplicationPending,
		Amount:        input.Amount,
		PaymentType:   input.PaymentType,
		PlanName:      input.PlanName,
		CreatedAt:     time.Now(),
	}

	_, err := config.MongoDB.Collection(config.AppConfig.ApplicationCollection).InsertOne(ctx, record)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, models.ErrDuplicateApplication
		}
		observability.DatabaseOperations.WithLabelValues("insert_application", "error").Inc()
		return nil, err
	}
	observability.DatabaseOperations.WithLabelValues("insert_application", "success").Inc()

	return &record, nil
}

// ListByJob returns the applicant cards for a job posting. Records missing
// their identity fields are dropped from the listing instead of failing the
// whole list; one bad record must not blank the screen.
func (s *ApplicationService) ListByJob(ctx context.Context, jobID string, now time.Time) ([]ApplicantView, error) {
	cursor, err := config.MongoDB.Collection(config.AppConfig.ApplicationCollection).
		Find(ctx, bson.M{"job_id": jobID})
	if err != nil {
		observability.DatabaseOperations.WithLabelValues("list_applications", "error").Inc()
		return nil, err
	}
	defer cursor.Close(ctx)

	views := []ApplicantView{}
	for cursor.Next(ctx) {
		var record models.ApplicationRecord
		if err := cursor.Decode(&record); err != nil {
			s.logger.Warn("skipping undecodable application record", zap.Error(err))
			continue
		}
		if record.ID == "" || record.DriverID == "" {
			s.logger.Warn("skipping application record with missing identity",
				zap.String("job_id", jobID),
				zap.Any("driver_details", observability.MaskSensitiveData(record.DriverDetails)))
			continue
		}

		views = append(views, ApplicantView{
			Application: record,
			Driver:      normalizer.ProfileFromRecord(record.DriverID, record.DriverDetails),
			Tag:         status.ResolveDriverTag(record),
			Interview:   status.ResolveInterviewState(now, record.InterviewAt),
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}

	observability.DatabaseOperations.WithLabelValues("list_applications", "success").Inc()
	return views, nil
}

// Get returns one application record
func (s *ApplicationService) Get(ctx context.Context, id string) (*models.ApplicationRecord, error) {
	var record models.ApplicationRecord
	err := config.MongoDB.Collection(config.AppConfig.ApplicationCollection).
		FindOne(ctx, bson.M{"_id": id}).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, models.ErrApplicationNotFound
		}
		return nil, err
	}
	return &record, nil
}

// Decide moves a Pending application to Accepted or Rejected. The
// transition happens exactly once; there is no path back.
func (s *ApplicationService) Decide(ctx context.Context, id string, decision models.ApplicationStatus) (*models.ApplicationRecord, error) {
	now := time.Now()
	result := config.MongoDB.Collection(config.AppConfig.ApplicationCollection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": id, "current_status": models.ApplicationPending},
		bson.M{"$set": bson.M{"current_status": decision, "updated_at": now}},
	)

	var record models.ApplicationRecord
	if err := result.Decode(&record); err != nil {
		if err != mongo.ErrNoDocuments {
			return nil, err
		}
		// Distinguish a missing record from one already decided
		if _, getErr := s.Get(ctx, id); getErr != nil {
			return nil, getErr
		}
		return nil, models.ErrApplicationDecided
	}

	record.CurrentStatus = decision
	record.UpdatedAt = &now
	return &record, nil
}

// ScheduleInterview sets or reschedules the interview time of an accepted
// application. Rescheduling is allowed only while the current interview time
// is still in the future.
func (s *ApplicationService) ScheduleInterview(ctx context.Context, id string, interviewAt time.Time, now time.Time) (*models.ApplicationRecord, error) {
	record, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if record.CurrentStatus != models.ApplicationAccepted {
		return nil, models.ErrApplicationNotAccepted
	}
	if record.InterviewAt != nil && !record.InterviewAt.After(now) {
		return nil, models.ErrInterviewAlreadyDue
	}
	if err := status.ValidateScheduleTime(now, interviewAt, config.AppConfig.InterviewMinLeadTime); err != nil {
		return nil, err
	}

	_, err = config.MongoDB.Collection(config.AppConfig.ApplicationCollection).UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"interview_at": interviewAt, "updated_at": now}},
	)
	if err != nil {
		observability.DatabaseOperations.WithLabelValues("schedule_interview", "error").Inc()
		return nil, err
	}
	observability.DatabaseOperations.WithLabelValues("schedule_interview", "success").Inc()

	record.InterviewAt = &interviewAt
	record.UpdatedAt = &now
	return record, nil
}
