package payroll

type CycleStatus string

const (
	CycleStatusDraft           CycleStatus = "draft"
	CycleStatusVerification    CycleStatus = "verification"
	CycleStatusPendingApproval CycleStatus = "pending_approval"
	CycleStatusApproved        CycleStatus = "approved"
	CycleStatusPaid            CycleStatus = "paid"
)

var cycleTransitions = map[CycleStatus][]CycleStatus{
	CycleStatusDraft:           {CycleStatusVerification},
	CycleStatusVerification:    {CycleStatusPendingApproval},
	CycleStatusPendingApproval: {CycleStatusApproved},
	CycleStatusApproved:        {CycleStatusPaid},
	CycleStatusPaid:            {},
}

func (s CycleStatus) IsValid() bool {
	_, ok := cycleTransitions[s]
	return ok
}

func (s CycleStatus) IsTerminal() bool {
	next, ok := cycleTransitions[s]
	return ok && len(next) == 0
}

func (s CycleStatus) CanTransition(to CycleStatus) bool {
	for _, next := range cycleTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}
