package status

import (
	"fmt"
	"time"
)

// ScheduleError is a user-facing rejection of a candidate interview time.
// Callers can distinguish it from infrastructure failures with errors.As.
type ScheduleError struct {
	msg string
}

func (e *ScheduleError) Error() string { return e.msg }

// ErrScheduleInPast rejects any candidate at or before now, regardless of
// the same-day buffer
var ErrScheduleInPast = &ScheduleError{msg: "interview time must be in the future"}

// ValidateScheduleTime checks a candidate interview time against the wall
// clock. Candidates at or before now are rejected outright. When the
// candidate falls on today's date it must additionally be strictly after
// now plus the minimum lead time; future dates carry no lower bound. The
// returned error is a user-facing validation message, not a silent clamp.
func ValidateScheduleTime(now, candidate time.Time, minLead time.Duration) error {
	if !candidate.After(now) {
		return ErrScheduleInPast
	}

	sameDay := candidate.Year() == now.Year() && candidate.YearDay() == now.YearDay()
	if sameDay && !candidate.After(now.Add(minLead)) {
		return &ScheduleError{msg: fmt.Sprintf("interview must be at least %d minutes from now", int(minLead.Minutes()))}
	}

	return nil
}
