package booking

// Project status values, in workflow order. Completed is part of the model
// but no transition currently produces it; it only matters for ordering.
const (
	StatusPending   = "pending"
	StatusSigned    = "signed"
	StatusPaid      = "paid"
	StatusCompleted = "completed"
)

// Portal steps derived from a project's persisted status. Step 2 (the
// signing canvas) is an in-session state and never derives from storage.
const (
	StepReviewContract = 1
	StepPayDeposit     = 3
	StepDone           = 4
)

var statusRank = map[string]int{
	StatusPending:   0,
	StatusSigned:    1,
	StatusPaid:      2,
	StatusCompleted: 3,
}

// AtLeast reports whether status has reached floor in the workflow order.
// Unknown statuses are treated as before pending.
func AtLeast(status, floor string) bool {
	rank, ok := statusRank[status]
	if !ok {
		return false
	}
	return rank >= statusRank[floor]
}

// Step returns which portal step a project with the given status resumes at.
func Step(status string) int {
	switch {
	case AtLeast(status, StatusPaid):
		return StepDone
	case AtLeast(status, StatusSigned):
		return StepPayDeposit
	default:
		return StepReviewContract
	}
}
