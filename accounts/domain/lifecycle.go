package domain

// Account lifecycle states. Deleted is terminal.
const (
	StateActive   = "active"
	StateDisabled = "disabled"
	StateDeleted  = "deleted"
)

// Lifecycle triggers.
const (
	TriggerDisable = "disable"
	TriggerEnable  = "enable"
	TriggerDelete  = "delete"
)

// StateOf maps the provider disabled flag to a lifecycle state.
func StateOf(disabled bool) string {
	if disabled {
		return StateDisabled
	}

	return StateActive
}
