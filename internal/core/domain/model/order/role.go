package order

// Role is a participant's relationship to a specific order. It is
// computed against the order's current owner and assignee fields at the
// moment of each check, never cached.
type Role int

const (
	// UnrelatedUser is any participant who neither owns the order nor
	// holds its assignment.
	UnrelatedUser Role = iota

	// Owner is the customer who submitted the order.
	Owner

	// Assignee is the participant currently holding the assignment.
	Assignee
)

// AllowedActions is the closed per-role whitelist. Together with
// Order.AvailableActions it forms the whole authorization model: a
// participant may perform exactly the intersection of the two sets.
func (r Role) AllowedActions() []ActionKind {
	switch r {
	case Owner:
		return []ActionKind{Publish, Cancel, ConfirmDelivery, Delete}
	case Assignee:
		return []ActionKind{Unassign, MarkAsDelivered}
	default:
		return []ActionKind{AssignToMe}
	}
}

func (r Role) String() string {
	switch r {
	case Owner:
		return "Owner"
	case Assignee:
		return "Assignee"
	default:
		return "UnrelatedUser"
	}
}
