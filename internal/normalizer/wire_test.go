package normalizer

import (
	"reflect"
	"testing"

	"github.com/freightlink/profile-api/internal/models"
)

func TestSerializeProfile_ArrayFieldsUseRepeatedKeys(t *testing.T) {
	p := models.DriverProfile{
		DriverID:    "d-1",
		VehicleType: "1,2,3",
		Endorsement: "hazmat",
	}

	form := SerializeProfile(p)

	if got := form["vehicle_type[]"]; !reflect.DeepEqual(got, []string{"1", "2", "3"}) {
		t.Errorf("vehicle_type[] = %v, want [1 2 3]", got)
	}
	if got := form["endorsement[]"]; !reflect.DeepEqual(got, []string{"hazmat"}) {
		t.Errorf("endorsement[] = %v, want [hazmat]", got)
	}
	if _, present := form["vehicle_type"]; present {
		t.Error("array field must not also appear under its bare key")
	}
}

func TestSerializeProfile_ScalarsPassThrough(t *testing.T) {
	p := models.DriverProfile{
		DriverID:  "d-1",
		Name:      "Ramesh",
		FleetSize: "10-50",
		AvgKmRun:  "251-500",
	}

	form := SerializeProfile(p)

	if got := form.Get("name"); got != "Ramesh" {
		t.Errorf("name = %q, want %q", got, "Ramesh")
	}
	if got := form.Get("fleet_size"); got != "10-50" {
		t.Errorf("fleet_size = %q, want %q", got, "10-50")
	}
	if _, present := form["city"]; present {
		t.Error("empty scalar fields must be omitted")
	}
}

func TestSerializeProfile_FilesOnlyWhenPicked(t *testing.T) {
	withoutFile := SerializeProfile(models.DriverProfile{DriverID: "d-1"})
	if _, present := withoutFile["profile_photo"]; present {
		t.Error("absent file must be omitted entirely, not sent as empty")
	}

	withFile := SerializeProfile(models.DriverProfile{
		DriverID: "d-1",
		ProfilePhoto: &models.FileRef{
			URI:      "file:///tmp/photo.jpg",
			MimeType: "image/jpeg",
			FileName: "photo.jpg",
		},
	})
	if got := withFile.Get("profile_photo"); got != "file:///tmp/photo.jpg" {
		t.Errorf("profile_photo = %q, want uri", got)
	}
	if got := withFile.Get("profile_photo_mime"); got != "image/jpeg" {
		t.Errorf("profile_photo_mime = %q, want image/jpeg", got)
	}
	if got := withFile.Get("profile_photo_name"); got != "photo.jpg" {
		t.Errorf("profile_photo_name = %q, want photo.jpg", got)
	}
}

func TestNormalizeToggleSerialize_EndToEnd(t *testing.T) {
	// Raw vehicle_type arrives as a JSON-encoded string; the user deselects
	// one option; the wire form carries a single repeated entry.
	raw := `["1","2"]`

	tokens := Normalize(raw)
	if !reflect.DeepEqual(tokens, []string{"1", "2"}) {
		t.Fatalf("Normalize(%q) = %v, want [1 2]", raw, tokens)
	}

	selection := Toggle(Join(tokens), "1")
	if selection != "2" {
		t.Fatalf("Toggle = %q, want %q", selection, "2")
	}

	form := SerializeProfile(models.DriverProfile{DriverID: "d-1", VehicleType: selection})
	if got := form["vehicle_type[]"]; !reflect.DeepEqual(got, []string{"2"}) {
		t.Errorf("vehicle_type[] = %v, want [2]", got)
	}
}

func TestProfileFromRecord(t *testing.T) {
	rec := models.RawRecord{
		"Name":         "Suresh",
		"vehicle_type": `["1","2"]`,
		"FleetSize":    "251-500",
		"avg_kms_run":  float64(900),
		"endorsements": []interface{}{"hazmat", "hazmat", "tanker"},
	}

	p := ProfileFromRecord("d-9", rec)

	if p.DriverID != "d-9" {
		t.Errorf("DriverID = %q, want d-9", p.DriverID)
	}
	if p.Name != "Suresh" {
		t.Errorf("Name = %q (legacy key not picked up)", p.Name)
	}
	if p.VehicleType != "1,2" {
		t.Errorf("VehicleType = %q, want %q", p.VehicleType, "1,2")
	}
	if p.FleetSize != "100+" {
		t.Errorf("FleetSize = %q, want %q", p.FleetSize, "100+")
	}
	if p.AvgKmRun != "501-1000" {
		t.Errorf("AvgKmRun = %q, want %q", p.AvgKmRun, "501-1000")
	}
	if p.Endorsement != "hazmat,tanker" {
		t.Errorf("Endorsement = %q, want %q", p.Endorsement, "hazmat,tanker")
	}
}
