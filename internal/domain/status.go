package domain

// Entity kinds for status transition checks
const (
	KindProgram = "program"
	KindMeeting = "meeting"
)

// Transition tables. A status missing from the map, or mapped to an empty
// set, is terminal: no outgoing edges. Same-state "transitions" are not in
// any table and are therefore invalid.
var programTransitions = map[string][]string{
	ProgramStatusDraft:  {ProgramStatusActive, ProgramStatusCancelled},
	ProgramStatusActive: {ProgramStatusCompleted, ProgramStatusCancelled},
}

var meetingTransitions = map[string][]string{
	MeetingStatusDraft:      {MeetingStatusScheduled, MeetingStatusCancelled},
	MeetingStatusScheduled:  {MeetingStatusInProgress, MeetingStatusCancelled},
	MeetingStatusInProgress: {MeetingStatusCompleted, MeetingStatusCancelled},
}

// CanTransition reports whether an entity of the given kind may move from
// current to requested. Unknown kinds and unknown statuses are never legal.
func CanTransition(kind, current, requested string) bool {
	var table map[string][]string
	switch kind {
	case KindProgram:
		table = programTransitions
	case KindMeeting:
		table = meetingTransitions
	default:
		return false
	}
	for _, next := range table[current] {
		if next == requested {
			return true
		}
	}
	return false
}

// ProgramStatuses all valid program status values
var ProgramStatuses = []string{
	ProgramStatusDraft, ProgramStatusActive, ProgramStatusCompleted, ProgramStatusCancelled,
}

// MeetingStatuses all valid meeting status values
var MeetingStatuses = []string{
	MeetingStatusDraft, MeetingStatusScheduled, MeetingStatusInProgress,
	MeetingStatusCompleted, MeetingStatusCancelled,
}

// IsValidProgramStatus reports whether s is a known program status
func IsValidProgramStatus(s string) bool {
	for _, v := range ProgramStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// IsValidMeetingStatus reports whether s is a known meeting status
func IsValidMeetingStatus(s string) bool {
	for _, v := range MeetingStatuses {
		if s == v {
			return true
		}
	}
	return false
}
