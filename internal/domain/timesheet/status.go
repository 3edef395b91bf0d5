package timesheet

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	StatusFlagged  Status = "flagged"
)

// transitions lists the legal moves out of each status. Approved, rejected
// and flagged are terminal: a processed record is corrected by creating a
// new one, never by moving it back.
var transitions = map[Status][]Status{
	StatusPending:  {StatusApproved, StatusRejected, StatusFlagged},
	StatusApproved: {},
	StatusRejected: {},
	StatusFlagged:  {},
}

// IsValid reports whether s is a known status value.
func (s Status) IsValid() bool {
	_, ok := transitions[s]
	return ok
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	next, ok := transitions[s]
	return ok && len(next) == 0
}

// CanTransition reports whether s -> to is a legal move.
func (s Status) CanTransition(to Status) bool {
	for _, next := range transitions[s] {
		if next == to {
			return true
		}
	}
	return false
}
