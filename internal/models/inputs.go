package models

import "time"

// ProfileUpdateInput carries canonical field updates for a driver profile.
// Multi-select fields use toggle semantics: each listed token is toggled in
// or out of the current selection. Nil file fields leave the stored file
// unchanged.
type ProfileUpdateInput struct {
	Name            *string  `json:"name,omitempty"`
	Phone           *string  `json:"phone,omitempty"`
	Pincode         *string  `json:"pincode,omitempty"`
	VehicleTypes    []string `json:"vehicle_types,omitempty"`
	IndustrySegment *string  `json:"industry_segment,omitempty"`
	FleetSize       *string  `json:"fleet_size,omitempty"`
	AvgKmRun        *string  `json:"avg_km_run,omitempty"`
	Endorsements    []string `json:"endorsements,omitempty"`
	YearsExperience *string  `json:"years_experience,omitempty"`
	ProfilePhoto    *FileRef `json:"profile_photo,omitempty"`
	LicenseDoc      *FileRef `json:"license_doc,omitempty"`
}

// ApplyInput creates a new application for a job posting
type ApplyInput struct {
	DriverID    string  `json:"driver_id" binding:"required"`
	Amount      float64 `json:"amount,omitempty"`
	PaymentType string  `json:"payment_type,omitempty"`
	PlanName    string  `json:"plan_name,omitempty"`
}

// DecisionInput moves an application out of Pending
type DecisionInput struct {
	Status ApplicationStatus `json:"status" binding:"required,oneof=Accepted Rejected"`
}

// ScheduleInterviewInput sets or reschedules the interview time of an
// accepted application
type ScheduleInterviewInput struct {
	InterviewAt time.Time `json:"interview_at" binding:"required"`
}

// DocumentUploadInput registers one uploaded verification document
type DocumentUploadInput struct {
	DocumentType string  `json:"document_type" binding:"required"`
	File         FileRef `json:"file" binding:"required"`
}
