package domain

import (
	"fmt"
	"strings"
)

// Status is the progress state of a task. Any status may follow any other.
type Status string

const (
	StatusNotStarted       Status = "NOT_STARTED"
	StatusWorkingOnIt      Status = "WORKING_ON_IT"
	StatusNeedHelp         Status = "NEED_HELP"
	StatusReadyForFeedback Status = "READY_FOR_FEEDBACK"
)

var statuses = []Status{
	StatusNotStarted,
	StatusWorkingOnIt,
	StatusNeedHelp,
	StatusReadyForFeedback,
}

// Statuses returns every status in declaration order.
func Statuses() []Status {
	out := make([]Status, len(statuses))
	copy(out, statuses)
	return out
}

func (s Status) Valid() bool {
	for _, status := range statuses {
		if s == status {
			return true
		}
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// ParseStatus accepts the status literals case-insensitively.
func ParseStatus(value string) (Status, error) {
	candidate := Status(strings.ToUpper(strings.TrimSpace(value)))
	if !candidate.Valid() {
		return "", fmt.Errorf("%w: unknown status %q", ErrInvalidArgument, value)
	}
	return candidate, nil
}
