package order

import (
	"strconv"
	"strings"

	"dilivry/internal/core/domain/model/kernel"
)

// ActionKind enumerates the state-transition requests an actor can make
// against an order. The set is closed: authorization tables switch over
// it exhaustively.
type ActionKind int

const (
	// Publish shows the order in the venue's list of open orders.
	Publish ActionKind = iota

	// Cancel withdraws the order from circulation.
	Cancel

	// AssignToMe claims the order for delivery.
	AssignToMe

	// Unassign gives a claimed order back.
	Unassign

	// MarkAsDelivered is the assignee reporting the delivery done.
	MarkAsDelivered

	// ConfirmDelivery is the customer confirming receipt.
	ConfirmDelivery

	// Delete removes the order entirely. Handled structurally by the
	// store, never by the aggregate's transition engine.
	Delete
)

// AllActionKinds lists every kind, for exhaustiveness checks in tests.
func AllActionKinds() []ActionKind {
	return []ActionKind{
		Publish, Cancel, AssignToMe, Unassign,
		MarkAsDelivered, ConfirmDelivery, Delete,
	}
}

// ID returns the stable short identifier used in action tokens. These
// strings are a wire format: changing one invalidates tokens embedded in
// messages already out in the world.
func (k ActionKind) ID() string {
	switch k {
	case Publish:
		return "publish"
	case Cancel:
		return "cancel"
	case AssignToMe:
		return "assign_to_me"
	case Unassign:
		return "unassign"
	case MarkAsDelivered:
		return "mark_as_delivered"
	case ConfirmDelivery:
		return "confirm_delivery"
	case Delete:
		return "delete"
	default:
		return "unknown"
	}
}

// HumanName returns the label shown on the action's button.
func (k ActionKind) HumanName() string {
	switch k {
	case Publish:
		return "Publish this order"
	case Cancel:
		return "Cancel this order"
	case AssignToMe:
		return "Take this order"
	case Unassign:
		return "Unassign this order"
	case MarkAsDelivered:
		return "Mark as delivered"
	case ConfirmDelivery:
		return "Confirm that I've received the items"
	case Delete:
		return "Delete this order"
	default:
		return "Unknown action"
	}
}

// ActionKindFromID maps a stable id back to its kind. Unknown ids report
// ok=false rather than an error: foreign callback data must be ignored.
func ActionKindFromID(id string) (ActionKind, bool) {
	for _, k := range AllActionKinds() {
		if k.ID() == id {
			return k, true
		}
	}
	return 0, false
}

// tokenPrefix is the magic first field of every action token. Tokens
// round-trip through an opaque callback channel shared with other
// producers, so the prefix is what claims a token as ours.
const tokenPrefix = "oa"

// Action is a requested state transition on a specific order.
//
// The actor is deliberately not part of the token: it travels separately
// with the interaction, where the transport authenticates it.
type Action struct {
	OrderID kernel.OrderID
	Kind    ActionKind
}

// Token encodes the action as the 3-field space-delimited wire string,
// e.g. "oa publish 42". ParseToken reverses it.
func (a Action) Token() string {
	return tokenPrefix + " " + a.Kind.ID() + " " + a.OrderID.String()
}

// HumanName returns the button label for the action's kind.
func (a Action) HumanName() string {
	return a.Kind.HumanName()
}

// ParseToken decodes a callback token. It reports ok=false for anything
// that is not one of our tokens: wrong prefix, unknown action id,
// non-numeric or overflowing order id, or a wrong field count. It never
// panics; foreign data flows through callback channels routinely.
func ParseToken(data string) (Action, bool) {
	fields := strings.Split(data, " ")
	if len(fields) != 3 {
		return Action{}, false
	}
	if fields[0] != tokenPrefix {
		return Action{}, false
	}

	kind, ok := ActionKindFromID(fields[1])
	if !ok {
		return Action{}, false
	}

	id, err := strconv.ParseUint(fields[2], 10, 64)
	if err != nil {
		return Action{}, false
	}

	return Action{OrderID: kernel.OrderID(id), Kind: kind}, true
}
