package normalizer

import (
	"net/url"

	"github.com/freightlink/profile-api/internal/models"
)

// SerializeProfile flattens a canonical profile into the wire form the
// submission endpoint expects. Array-typed backend fields are sent as
// repeated entries under a `key[]` name, one per token; this is a hard
// backend contract. Scalar fields pass through unchanged. File fields are
// included only when a new local file handle is present: omission tells the
// backend to leave the existing file as-is, which is different from an
// explicit clear.
func SerializeProfile(p models.DriverProfile) url.Values {
	form := url.Values{}

	for _, token := range Normalize(p.VehicleType) {
		form.Add("vehicle_type[]", token)
	}
	for _, token := range Normalize(p.Endorsement) {
		form.Add("endorsement[]", token)
	}

	setScalar(form, "name", p.Name)
	setScalar(form, "phone", p.Phone)
	setScalar(form, "pincode", p.Pincode)
	setScalar(form, "city", p.City)
	setScalar(form, "state", p.State)
	setScalar(form, "industry_segment", p.IndustrySegment)
	setScalar(form, "fleet_size", p.FleetSize)
	setScalar(form, "avg_km_run", p.AvgKmRun)
	setScalar(form, "years_experience", p.YearsExperience)

	attachFile(form, "profile_photo", p.ProfilePhoto)
	attachFile(form, "license_doc", p.LicenseDoc)

	return form
}

func setScalar(form url.Values, key, value string) {
	if value != "" {
		form.Set(key, value)
	}
}

// attachFile adds the (uri, mime-type, filename) triple for a newly picked
// file; absent files are omitted entirely
func attachFile(form url.Values, key string, ref *models.FileRef) {
	if ref == nil || ref.URI == "" {
		return
	}
	form.Set(key, ref.URI)
	form.Set(key+"_mime", ref.MimeType)
	form.Set(key+"_name", ref.FileName)
}
