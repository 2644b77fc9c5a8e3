package status

import "time"

// InterviewState is the discrete UI state of an application's interview
type InterviewState string

const (
	// InterviewNotScheduled means no interview time has been set
	InterviewNotScheduled InterviewState = "NOT_SCHEDULED"
	// InterviewScheduledFuture means the interview is set for a future time
	InterviewScheduledFuture InterviewState = "SCHEDULED_FUTURE"
	// InterviewReady means the interview time has arrived and it may start
	// immediately
	InterviewReady InterviewState = "READY"
)

// InterviewInfo is the resolved interview state with its display label
type InterviewInfo struct {
	State InterviewState `json:"state"`
	Label string         `json:"label,omitempty"`
}

// ResolveInterviewState derives the interview state from the wall clock and
// the scheduled time. Callers must re-evaluate on every render: the
// future-to-ready boundary crossing has to happen on its own, without a
// server push, so no flag is cached.
func ResolveInterviewState(now time.Time, interviewAt *time.Time) InterviewInfo {
	if interviewAt == nil {
		return InterviewInfo{State: InterviewNotScheduled}
	}
	if interviewAt.After(now) {
		return InterviewInfo{
			State: InterviewScheduledFuture,
			Label: "Interview scheduled for " + interviewAt.Format("Mon, 02 Jan 2006 at 3:04 PM"),
		}
	}
	return InterviewInfo{State: InterviewReady, Label: "Start Interview"}
}
