package constants

// History action labels. Free-form in the schema, but every writer in
// this codebase uses one of these.
const (
	ActionCreated       = "Created"
	ActionUpdated       = "Updated"
	ActionAssigned      = "Assigned"
	ActionReassigned    = "Reassigned"
	ActionUnassigned    = "Unassigned"
	ActionStatusChanged = "StatusChanged"
	ActionApproved      = "Approved"
	ActionRejected      = "Rejected"
)
