package constants

// TaskStatus is stored as a string so ordinal encodings can never be
// confused across schema revisions.
type TaskStatus string

const (
	StatusPending         TaskStatus = "pending"
	StatusAssigned        TaskStatus = "assigned"
	StatusAccepted        TaskStatus = "accepted"
	StatusInProgress      TaskStatus = "in_progress"
	StatusCompleted       TaskStatus = "completed"
	StatusRejected        TaskStatus = "rejected"
	StatusPendingApproval TaskStatus = "pending_approval"
	StatusApproved        TaskStatus = "approved"
)

var allStatuses = map[TaskStatus]struct{}{
	StatusPending:         {},
	StatusAssigned:        {},
	StatusAccepted:        {},
	StatusInProgress:      {},
	StatusCompleted:       {},
	StatusRejected:        {},
	StatusPendingApproval: {},
	StatusApproved:        {},
}

func ValidStatus(s TaskStatus) bool {
	_, ok := allStatuses[s]
	return ok
}

// Terminal reports whether a task in this status can no longer be
// edited, assigned or deleted. Only the approval decision itself acts
// on a task past this point.
func Terminal(s TaskStatus) bool {
	return s == StatusCompleted || s == StatusApproved
}
