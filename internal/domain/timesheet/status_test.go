package timesheet

import "testing"

func TestStatusCanTransition(t *testing.T) {
	cases := []struct {
		from Status
		to   Status
		want bool
	}{
		{StatusPending, StatusApproved, true},
		{StatusPending, StatusRejected, true},
		{StatusPending, StatusFlagged, true},
		{StatusPending, StatusPending, false},
		{StatusApproved, StatusRejected, false},
		{StatusApproved, StatusPending, false},
		{StatusRejected, StatusApproved, false},
		{StatusFlagged, StatusApproved, false},
	}
	for _, c := range cases {
		if got := c.from.CanTransition(c.to); got != c.want {
			t.Errorf("CanTransition(%s -> %s) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestStatusTerminal(t *testing.T) {
	for _, s := range []Status{StatusApproved, StatusRejected, StatusFlagged} {
		if !s.IsTerminal() {
			t.Errorf("IsTerminal(%s) = false, want true", s)
		}
	}
	if StatusPending.IsTerminal() {
		t.Error("IsTerminal(pending) = true, want false")
	}
}

func TestStatusIsValid(t *testing.T) {
	if !StatusPending.IsValid() {
		t.Error("IsValid(pending) = false, want true")
	}
	if Status("archived").IsValid() {
		t.Error("IsValid(archived) = true, want false")
	}
}
