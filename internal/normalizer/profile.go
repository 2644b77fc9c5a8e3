package normalizer

import (
	"github.com/freightlink/profile-api/internal/models"
	"github.com/freightlink/profile-api/internal/observability"
)

// ProfileFromRecord reconciles a raw backend record into the canonical
// profile shape. A logical field may arrive under its current snake_case key
// or a legacy PascalCase alias; multi-value fields may arrive in any of the
// shapes Normalize accepts. Bucketed fields run through the legacy remapping
// tables.
func ProfileFromRecord(driverID string, rec models.RawRecord) models.DriverProfile {
	p := models.DriverProfile{DriverID: driverID}

	p.Name = rec.StringField("name", "Name")
	p.Phone = rec.StringField("phone", "Phone", "mobile_number")
	p.Pincode = rec.StringField("pincode", "Pincode", "pin_code")
	p.City = rec.StringField("city", "City")
	p.State = rec.StringField("state", "State")

	if v, ok := rec.Lookup("vehicle_type", "VehicleType", "vehicle_types"); ok {
		p.VehicleType = joinNormalized(v)
	}
	if v, ok := rec.Lookup("industry_segment", "IndustrySegment", "segment"); ok {
		p.IndustrySegment = joinNormalized(v)
	}
	if v, ok := rec.Lookup("endorsement", "Endorsement", "endorsements"); ok {
		p.Endorsement = joinNormalized(v)
	}

	if v, ok := rec.Lookup("fleet_size", "FleetSize", "no_of_trucks"); ok {
		p.FleetSize = MapFleetSize(v)
	}
	if v, ok := rec.Lookup("avg_km_run", "AvgKmRun", "avg_kms_run"); ok {
		p.AvgKmRun = MapAvgKmRun(v)
	}
	if v, ok := rec.Lookup("years_experience", "YearOfExperience", "year_of_establishment"); ok {
		p.YearsExperience = MapYearsExperience(v)
	}

	return p
}

// joinNormalized normalizes a raw multi-value field into its canonical
// comma-joined form, counting recoveries that needed the comma fallback
func joinNormalized(v interface{}) string {
	tokens, outcome := NormalizeTagged(v)
	if outcome == OutcomeCommaFallback {
		observability.NormalizerFallbacks.WithLabelValues(string(outcome)).Inc()
	}
	return Join(tokens)
}
