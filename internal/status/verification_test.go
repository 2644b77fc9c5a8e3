package status

import (
	"testing"

	"github.com/freightlink/profile-api/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestDeriveOverallStatus(t *testing.T) {
	tests := []struct {
		name   string
		record models.VerificationRecord
		want   models.VerificationStatus
	}{
		{
			name:   "unpaid derives payment_required",
			record: models.VerificationRecord{OverallStatus: models.VerificationNotStarted},
			want:   models.VerificationPaymentRequired,
		},
		{
			name: "paid without documents derives documents_required",
			record: models.VerificationRecord{
				OverallStatus: models.VerificationNotStarted,
				Payment:       models.VerificationPayment{IsPaid: true},
			},
			want: models.VerificationDocumentsRequired,
		},
		{
			name: "paid with documents derives ready_to_start",
			record: models.VerificationRecord{
				OverallStatus: models.VerificationNotStarted,
				Payment:       models.VerificationPayment{IsPaid: true},
				Documents:     models.VerificationDocuments{AllUploaded: true},
			},
			want: models.VerificationReadyToStart,
		},
		{
			name: "stale stored status loses to sub-fields",
			record: models.VerificationRecord{
				OverallStatus: models.VerificationPaymentRequired,
				Payment:       models.VerificationPayment{IsPaid: true},
				Documents:     models.VerificationDocuments{AllUploaded: true},
			},
			want: models.VerificationReadyToStart,
		},
		{
			name:   "terminal completed is kept",
			record: models.VerificationRecord{OverallStatus: models.VerificationCompleted},
			want:   models.VerificationCompleted,
		},
		{
			name:   "terminal rejected is kept",
			record: models.VerificationRecord{OverallStatus: models.VerificationRejected},
			want:   models.VerificationRejected,
		},
		{
			name:   "in-flight pending is kept",
			record: models.VerificationRecord{OverallStatus: models.VerificationPending},
			want:   models.VerificationPending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveOverallStatus(tt.record))
		})
	}
}

func TestResolveVerificationAction_Table(t *testing.T) {
	tests := []struct {
		status models.VerificationStatus
		kind   ActionKind
	}{
		{models.VerificationCompleted, ActionViewStatus},
		{models.VerificationVerified, ActionViewStatus},
		{models.VerificationPending, ActionViewStatus},
		{models.VerificationRejected, ActionResubmitDocuments},
		{models.VerificationPaymentRequired, ActionPayNow},
		{models.VerificationDocumentsRequired, ActionUploadDocuments},
		{models.VerificationReadyToStart, ActionStartVerification},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			record := models.VerificationRecord{
				OverallStatus: tt.status,
				Payment:       models.VerificationPayment{IsPaid: tt.status != models.VerificationPaymentRequired},
				Documents: models.VerificationDocuments{
					AllUploaded: tt.status != models.VerificationPaymentRequired &&
						tt.status != models.VerificationDocumentsRequired,
				},
			}
			assert.Equal(t, tt.kind, ResolveVerificationAction(record).Kind)
		})
	}
}

func TestResolveVerificationAction_UnrecognizedFailsSafe(t *testing.T) {
	record := models.VerificationRecord{
		OverallStatus: models.VerificationStatus("mystery_state"),
	}
	// Unpaid sub-fields plus an unknown stored status still resolve to the
	// pay-now action, never an error.
	action := ResolveVerificationAction(record)
	assert.Equal(t, ActionPayNow, action.Kind)
}

func TestResolveVerificationAction_ServerMessageOverridesTitleOnly(t *testing.T) {
	record := models.VerificationRecord{
		OverallStatus: models.VerificationRejected,
		NextAction:    &models.NextAction{Message: "Your address proof was unreadable"},
	}

	action := ResolveVerificationAction(record)
	assert.Equal(t, "Your address proof was unreadable", action.Title)
	assert.Equal(t, ActionResubmitDocuments, action.Kind, "server copy must not change behavior")
	assert.Equal(t, "Resubmit Documents", action.Label)
}

func TestIsVerified_IndependentOfOverallStatus(t *testing.T) {
	// final_status and overall_status may disagree transiently; the
	// full-screen check reads final_status alone.
	record := models.VerificationRecord{
		OverallStatus: models.VerificationPending,
		FinalStatus:   models.VerificationCompleted,
	}
	assert.True(t, IsVerified(record))

	record.FinalStatus = models.VerificationPending
	record.OverallStatus = models.VerificationCompleted
	assert.False(t, IsVerified(record))
}
