package models

import "time"

// DriverProfile is the canonical in-memory shape of a driver's profile.
// Multi-select fields hold a comma-joined string of tokens drawn from the
// field's controlled vocabulary; scalar fields hold a single token or are
// empty. No raw JSON or bracket/quote artifacts survive normalization.
type DriverProfile struct {
	DriverID        string     `json:"driver_id" bson:"driver_id"`
	Name            string     `json:"name,omitempty" bson:"name,omitempty"`
	Phone           string     `json:"phone,omitempty" bson:"phone,omitempty"`
	Pincode         string     `json:"pincode,omitempty" bson:"pincode,omitempty"`
	City            string     `json:"city,omitempty" bson:"city,omitempty"`
	State           string     `json:"state,omitempty" bson:"state,omitempty"`
	VehicleType     string     `json:"vehicle_type,omitempty" bson:"vehicle_type,omitempty"`
	IndustrySegment string     `json:"industry_segment,omitempty" bson:"industry_segment,omitempty"`
	FleetSize       string     `json:"fleet_size,omitempty" bson:"fleet_size,omitempty"`
	AvgKmRun        string     `json:"avg_km_run,omitempty" bson:"avg_km_run,omitempty"`
	Endorsement     string     `json:"endorsement,omitempty" bson:"endorsement,omitempty"`
	YearsExperience string     `json:"years_experience,omitempty" bson:"years_experience,omitempty"`
	ProfilePhoto    *FileRef   `json:"profile_photo,omitempty" bson:"profile_photo,omitempty"`
	LicenseDoc      *FileRef   `json:"license_doc,omitempty" bson:"license_doc,omitempty"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}

// FileRef is a local file handle picked on the client: (uri, mime-type,
// filename). A nil FileRef in an update means "leave the existing file
// unchanged"; it is never sent as an explicit clear.
type FileRef struct {
	URI      string `json:"uri" bson:"uri"`
	MimeType string `json:"mime_type" bson:"mime_type"`
	FileName string `json:"file_name" bson:"file_name"`
}

// Controlled vocabularies. A non-empty canonical value is a member of (or is
// reduced to a member of) its field's token set; unknown values pass through
// unchanged so stale data still renders.
var (
	FleetSizeOptions       = []string{"0-9", "10-50", "51-100", "100+"}
	AvgKmRunOptions        = []string{"0-250", "251-500", "501-1000", "1000+"}
	YearsExperienceOptions = []string{"0-2", "3-5", "6-10", "10+"}
	IndustrySegmentOptions = []string{"fmcg", "construction", "agriculture", "mining", "logistics", "ecommerce"}
	EndorsementOptions     = []string{"hazmat", "tanker", "trailer", "heavy"}
)

// IsValidFleetSize reports whether value is a current fleet-size bucket
func IsValidFleetSize(value string) bool {
	return containsToken(FleetSizeOptions, value)
}

// IsValidAvgKmRun reports whether value is a current average-km bucket
func IsValidAvgKmRun(value string) bool {
	return containsToken(AvgKmRunOptions, value)
}

// IsValidYearsExperience reports whether value is a current experience bucket
func IsValidYearsExperience(value string) bool {
	return containsToken(YearsExperienceOptions, value)
}

func containsToken(options []string, value string) bool {
	for _, o := range options {
		if o == value {
			return true
		}
	}
	return false
}
