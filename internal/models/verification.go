package models

import "time"

// VerificationStatus is the top-level state of a verification case
type VerificationStatus string

const (
	VerificationNotStarted        VerificationStatus = "not_started"
	VerificationPaymentRequired   VerificationStatus = "payment_required"
	VerificationDocumentsRequired VerificationStatus = "documents_required"
	VerificationReadyToStart      VerificationStatus = "ready_to_start"
	VerificationPending           VerificationStatus = "pending"
	VerificationVerified          VerificationStatus = "verified"
	VerificationCompleted         VerificationStatus = "completed"
	VerificationRejected          VerificationStatus = "rejected"
)

// SubStatus is the state of one independent verification check
type SubStatus string

const (
	SubStatusPending  SubStatus = "pending"
	SubStatusVerified SubStatus = "verified"
	SubStatusRejected SubStatus = "rejected"
)

// VerificationPayment holds the payment flag of a verification case
type VerificationPayment struct {
	IsPaid bool       `json:"is_paid" bson:"is_paid"`
	Amount float64    `json:"amount,omitempty" bson:"amount,omitempty"`
	PaidAt *time.Time `json:"paid_at,omitempty" bson:"paid_at,omitempty"`
}

// VerificationDocuments tracks the driver's uploaded verification documents
type VerificationDocuments struct {
	AllUploaded bool                 `json:"all_uploaded" bson:"all_uploaded"`
	Uploaded    []DocumentUpload     `json:"uploaded,omitempty" bson:"uploaded,omitempty"`
}

// DocumentUpload is one uploaded verification document
type DocumentUpload struct {
	DocumentType string    `json:"document_type" bson:"document_type"`
	File         FileRef   `json:"file" bson:"file"`
	UploadedAt   time.Time `json:"uploaded_at" bson:"uploaded_at"`
}

// NextAction is an optional server-provided override for the verification
// screen. Its message replaces the title text; the action itself still comes
// from the status table.
type NextAction struct {
	Message string             `json:"message,omitempty" bson:"message,omitempty"`
	Status  VerificationStatus `json:"status,omitempty" bson:"status,omitempty"`
}

// VerificationRecord is one driver's identity-verification case. The stored
// overall_status is a deterministic function of the sub-fields and may lag
// behind them; readers derive the display state from the sub-fields.
type VerificationRecord struct {
	DriverID      string                `json:"driver_id" bson:"driver_id"`
	OverallStatus VerificationStatus    `json:"overall_status" bson:"overall_status"`
	FinalStatus   VerificationStatus    `json:"final_status,omitempty" bson:"final_status,omitempty"`
	Payment       VerificationPayment   `json:"payment" bson:"payment"`
	Documents     VerificationDocuments `json:"documents" bson:"documents"`

	// Independent sub-checks
	IDStatus      SubStatus `json:"id_status" bson:"id_status"`
	AddressStatus SubStatus `json:"address_status" bson:"address_status"`
	CourtStatus   SubStatus `json:"court_status" bson:"court_status"`

	NextAction *NextAction `json:"next_action,omitempty" bson:"next_action,omitempty"`
	UpdatedAt  *time.Time  `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}

// RequiredDocumentTypes is the set of documents a verification case needs
// before document collection is considered complete.
var RequiredDocumentTypes = []string{"license", "aadhaar", "pan"}

// HasAllRequiredDocuments reports whether every required document type has
// been uploaded at least once.
func (d VerificationDocuments) HasAllRequiredDocuments() bool {
	for _, required := range RequiredDocumentTypes {
		found := false
		for _, up := range d.Uploaded {
			if up.DocumentType == required {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
