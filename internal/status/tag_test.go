package status

import (
	"testing"

	"github.com/freightlink/profile-api/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestResolveDriverTag_Precedence(t *testing.T) {
	tests := []struct {
		name string
		app  models.ApplicationRecord
		want string
	}{
		{
			name: "legacy flat fee wins over payment_type",
			app:  models.ApplicationRecord{Amount: 49, PaymentType: "trusted"},
			want: "Legacy Driver",
		},
		{
			name: "trusted",
			app:  models.ApplicationRecord{PaymentType: "trusted"},
			want: "Trusted Driver",
		},
		{
			name: "verified",
			app:  models.ApplicationRecord{PaymentType: "verified"},
			want: "Verified Driver",
		},
		{
			name: "standard subscription",
			app:  models.ApplicationRecord{PaymentType: "subscription", PlanName: "Standard"},
			want: "Job Ready Driver",
		},
		{
			name: "unknown attribution defaults to job ready",
			app:  models.ApplicationRecord{PaymentType: "promo"},
			want: "Job Ready Driver",
		},
		{
			name: "empty record defaults to job ready",
			app:  models.ApplicationRecord{},
			want: "Job Ready Driver",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tag := ResolveDriverTag(tt.app)
			assert.Equal(t, tt.want, tag.Name)
			assert.NotEmpty(t, tag.Color)
		})
	}
}

func TestTagChecklist_IsFixedPerTag(t *testing.T) {
	verified := ResolveDriverTag(models.ApplicationRecord{PaymentType: "verified"})
	assert.Equal(t, Checklist{ID: true, Face: true, Court: true, Address: true}, verified.Checks)

	jobReady := ResolveDriverTag(models.ApplicationRecord{})
	assert.Equal(t, Checklist{}, jobReady.Checks)
}

func TestVerificationChecklist_MayDisagreeWithTag(t *testing.T) {
	// A "Verified Driver" tag shows all checks granted by convention, but
	// the driver's actual case can still have failures.
	app := models.ApplicationRecord{PaymentType: "verified"}
	record := models.VerificationRecord{
		IDStatus:      models.SubStatusVerified,
		AddressStatus: models.SubStatusRejected,
		CourtStatus:   models.SubStatusPending,
		FinalStatus:   models.VerificationPending,
	}

	tag := ResolveDriverTag(app)
	actual := VerificationChecklist(record)

	assert.True(t, tag.Checks.Address)
	assert.False(t, actual.Address)
	assert.NotEqual(t, tag.Checks, actual)

	assert.Equal(t, Checklist{ID: true}, actual)
}
