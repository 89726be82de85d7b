package order

// Urgency is how soon the customer needs the items. It is order content,
// not lifecycle state: it never influences transitions or authorization.
type Urgency int

const (
	Whenever Urgency = iota
	Today
	ThisWeek
	ThisMonth
)

// AllUrgencies lists the variants in the order they are offered to users.
func AllUrgencies() []Urgency {
	return []Urgency{Today, ThisWeek, ThisMonth, Whenever}
}

// ID returns the stable identifier used when the urgency round-trips
// through UI callbacks and storage.
func (u Urgency) ID() string {
	switch u {
	case Today:
		return "today"
	case ThisWeek:
		return "this_week"
	case ThisMonth:
		return "this_month"
	default:
		return "whenever"
	}
}

// HumanName returns the label shown to users.
func (u Urgency) HumanName() string {
	switch u {
	case Today:
		return "Today"
	case ThisWeek:
		return "Some time this week"
	case ThisMonth:
		return "Some time this month"
	default:
		return "Some day"
	}
}

func (u Urgency) String() string {
	return u.HumanName()
}

// UrgencyFromID maps a stable id back to its variant. Exact match only;
// unknown or padded ids report ok=false.
func UrgencyFromID(id string) (Urgency, bool) {
	for _, u := range AllUrgencies() {
		if u.ID() == id {
			return u, true
		}
	}
	return 0, false
}
