package status

import "github.com/freightlink/profile-api/internal/models"

// legacyFlatFee is the flat application fee charged before subscription
// plans existed; records carrying it predate payment_type.
const legacyFlatFee = 49

// Checklist is the set of verification icons shown on an applicant card
type Checklist struct {
	ID      bool `json:"id"`
	Face    bool `json:"face"`
	Court   bool `json:"court"`
	Address bool `json:"address"`
}

// DriverTag is the badge shown on an applicant card. The checklist carried
// here is a fixed display convention per tag, not the driver's actual
// verification outcome; use VerificationChecklist for the real one.
type DriverTag struct {
	Name   string    `json:"name"`
	Color  string    `json:"color"`
	Checks Checklist `json:"checks"`
}

var (
	tagLegacy   = DriverTag{Name: "Legacy Driver", Color: "#8E44AD", Checks: Checklist{ID: true, Face: true, Court: true, Address: true}}
	tagTrusted  = DriverTag{Name: "Trusted Driver", Color: "#1A7F37", Checks: Checklist{ID: true, Face: true, Court: true, Address: true}}
	tagVerified = DriverTag{Name: "Verified Driver", Color: "#1F6FEB", Checks: Checklist{ID: true, Face: true, Court: true, Address: true}}
	tagJobReady = DriverTag{Name: "Job Ready Driver", Color: "#D29922", Checks: Checklist{}}
)

// ResolveDriverTag derives the display tag from payment attribution, in
// fixed precedence with the first match winning. The legacy flat-fee check
// deliberately beats payment_type.
func ResolveDriverTag(app models.ApplicationRecord) DriverTag {
	switch {
	case app.Amount == legacyFlatFee:
		return tagLegacy
	case app.PaymentType == "trusted":
		return tagTrusted
	case app.PaymentType == "verified":
		return tagVerified
	case app.PaymentType == "subscription" && app.PlanName == "Standard":
		return tagJobReady
	default:
		return tagJobReady
	}
}

// VerificationChecklist builds the checklist from the driver's actual
// verification sub-statuses. It can disagree with the tag's fixed checklist;
// callers choose which convention to render.
func VerificationChecklist(v models.VerificationRecord) Checklist {
	return Checklist{
		ID:      v.IDStatus == models.SubStatusVerified,
		Face:    IsVerified(v),
		Court:   v.CourtStatus == models.SubStatusVerified,
		Address: v.AddressStatus == models.SubStatusVerified,
	}
}
