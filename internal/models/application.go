package models

import "time"

// ApplicationStatus is the lifecycle status of a job application. The
// backend exchanges these in PascalCase, unlike the snake_case verification
// vocabulary; the casing is preserved verbatim on read and write.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "Pending"
	ApplicationAccepted ApplicationStatus = "Accepted"
	ApplicationRejected ApplicationStatus = "Rejected"
)

// ApplicationRecord represents one driver's application to one job posting.
// Status transitions Pending->Accepted or Pending->Rejected exactly once;
// interview_at may be set only once the application is Accepted and may be
// overwritten while still in the future.
type ApplicationRecord struct {
	ID            string            `json:"id" bson:"_id,omitempty"`
	JobID         string            `json:"job_id" bson:"job_id"`
	DriverID      string            `json:"driver_id" bson:"driver_id"`
	CurrentStatus ApplicationStatus `json:"current_status" bson:"current_status"`
	InterviewAt   *time.Time        `json:"interview_at,omitempty" bson:"interview_at,omitempty"`

	// Embedded driver details as received from the backend; RawRecord-shaped
	// and unmasked, so it is persisted but never rendered. Clients get the
	// normalized profile view instead.
	DriverDetails RawRecord `json:"-" bson:"driver_details,omitempty"`

	// Payment/subscription attribution used for the display tag
	Amount      float64 `json:"amount,omitempty" bson:"amount,omitempty"`
	PaymentType string  `json:"payment_type,omitempty" bson:"payment_type,omitempty"`
	PlanName    string  `json:"plan_name,omitempty" bson:"plan_name,omitempty"`

	CreatedAt time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}
