package order

// Status is the derived lifecycle stage of an order.
//
// It is never stored: Order.Status computes it from the timestamp
// evidence on every read, so the stage can never desynchronize from the
// fields that prove it.
//
// Lifecycle:
//
//	Unpublished -> Published -> Assigned -> MarkedAsDelivered -> DeliveryConfirmed
//	       ^                                                  |
//	       +-------------- Cancel (any non-terminal) ---------+
type Status int

const (
	// Unpublished is the initial stage, and also the stage of a
	// cancelled order.
	Unpublished Status = iota

	// Published orders are visible to the venue and open for claims.
	Published

	// Assigned orders have an active assignee.
	Assigned

	// MarkedAsDelivered means the assignee reported the delivery done.
	MarkedAsDelivered

	// DeliveryConfirmed means the customer confirmed receipt. Terminal.
	DeliveryConfirmed
)

func statusNames() map[Status]string {
	return map[Status]string{
		Unpublished:       "Not published",
		Published:         "Published",
		Assigned:          "Assigned",
		MarkedAsDelivered: "Marked as delivered",
		DeliveryConfirmed: "Delivered",
	}
}

// String returns the human-readable stage name.
func (s Status) String() string {
	if name, ok := statusNames()[s]; ok {
		return name
	}
	return "Unknown"
}
