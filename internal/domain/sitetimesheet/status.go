package sitetimesheet

type Status string

const (
	StatusDraft      Status = "draft"
	StatusSubmitted  Status = "submitted"
	StatusAuthorized Status = "authorized"
	StatusRejected   Status = "rejected"
)

var transitions = map[Status][]Status{
	StatusDraft:      {StatusSubmitted},
	StatusSubmitted:  {StatusAuthorized, StatusRejected},
	StatusAuthorized: {},
	StatusRejected:   {},
}

func (s Status) IsValid() bool {
	_, ok := transitions[s]
	return ok
}

func (s Status) IsTerminal() bool {
	next, ok := transitions[s]
	return ok && len(next) == 0
}

func (s Status) CanTransition(to Status) bool {
	for _, next := range transitions[s] {
		if next == to {
			return true
		}
	}
	return false
}
