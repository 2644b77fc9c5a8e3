package status

import (
	"github.com/freightlink/profile-api/internal/models"
)

// ActionKind identifies the single primary action offered on the
// verification screen
type ActionKind string

const (
	ActionViewStatus        ActionKind = "view_status"
	ActionResubmitDocuments ActionKind = "resubmit_documents"
	ActionPayNow            ActionKind = "pay_now"
	ActionUploadDocuments   ActionKind = "upload_documents"
	ActionStartVerification ActionKind = "start_verification"
)

// Action is the resolved verification screen state: a title, a button label,
// and the handler the button triggers.
type Action struct {
	Kind  ActionKind `json:"kind"`
	Title string     `json:"title"`
	Label string     `json:"label"`
}

// actionRule is one row of the status-to-action table, evaluated top to
// bottom with the first match winning.
type actionRule struct {
	matches func(models.VerificationStatus) bool
	action  Action
}

var verificationActionRules = []actionRule{
	{
		matches: oneOf(models.VerificationCompleted, models.VerificationVerified),
		action:  Action{Kind: ActionViewStatus, Title: "Verification complete", Label: "View Status"},
	},
	{
		matches: oneOf(models.VerificationPending),
		action:  Action{Kind: ActionViewStatus, Title: "Verification in progress", Label: "View Status"},
	},
	{
		matches: oneOf(models.VerificationRejected),
		action:  Action{Kind: ActionResubmitDocuments, Title: "Verification rejected", Label: "Resubmit Documents"},
	},
	{
		matches: oneOf(models.VerificationPaymentRequired),
		action:  Action{Kind: ActionPayNow, Title: "Payment required", Label: "Pay Now"},
	},
	{
		matches: oneOf(models.VerificationDocumentsRequired),
		action:  Action{Kind: ActionUploadDocuments, Title: "Documents required", Label: "Upload Documents"},
	},
	{
		matches: oneOf(models.VerificationReadyToStart),
		action:  Action{Kind: ActionStartVerification, Title: "Ready to start", Label: "Start Verification"},
	},
}

// failSafeAction is used for any unrecognized status. Defaulting to the
// payment action keeps the user moving instead of erroring.
var failSafeAction = Action{Kind: ActionPayNow, Title: "Payment required", Label: "Pay Now"}

func oneOf(statuses ...models.VerificationStatus) func(models.VerificationStatus) bool {
	return func(s models.VerificationStatus) bool {
		for _, candidate := range statuses {
			if s == candidate {
				return true
			}
		}
		return false
	}
}

// ResolveVerificationAction selects the verification screen action for a
// record. The button comes from the status table keyed by the derived
// overall status; a server-provided next-action message overrides the title
// text only, so the server can adjust copy without changing behavior.
func ResolveVerificationAction(v models.VerificationRecord) Action {
	action := actionForStatus(DeriveOverallStatus(v))
	if v.NextAction != nil && v.NextAction.Message != "" {
		action.Title = v.NextAction.Message
	}
	return action
}

func actionForStatus(s models.VerificationStatus) Action {
	for _, rule := range verificationActionRules {
		if rule.matches(s) {
			return rule.action
		}
	}
	return failSafeAction
}

// DeriveOverallStatus recomputes the top-level verification state from the
// sub-fields. The stored overall_status can lag behind the flags it is
// derived from, so the derivation wins whenever the sub-fields say the
// stored value is stale. Terminal and in-flight server states are kept
// as-is.
func DeriveOverallStatus(v models.VerificationRecord) models.VerificationStatus {
	switch v.OverallStatus {
	case models.VerificationCompleted, models.VerificationVerified,
		models.VerificationRejected, models.VerificationPending:
		return v.OverallStatus
	}

	if !v.Payment.IsPaid {
		return models.VerificationPaymentRequired
	}
	if !v.Documents.AllUploaded {
		return models.VerificationDocumentsRequired
	}
	return models.VerificationReadyToStart
}

// IsVerified gates the full-screen verified render. It is evaluated from
// final_status alone, separately from overall_status; the two signals may
// disagree transiently and this check takes precedence for the screen
// replacement.
func IsVerified(v models.VerificationRecord) bool {
	return v.FinalStatus == models.VerificationCompleted
}
