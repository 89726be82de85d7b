package order

import (
	"slices"
	"strings"
	"time"

	"dilivry/internal/core/domain/model/kernel"
	"dilivry/internal/core/domain/model/participant"
	"dilivry/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not
// created through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errs.NewValueIsRequiredError(
	"Order must be created via NewOrder or RestoreOrder")

// Assignment records who currently holds the order and since when.
// Profile is an optional cached snapshot of the assignee's record at
// claim time; the authoritative record lives in the user index.
type Assignment struct {
	At      time.Time
	Who     kernel.UserID
	Profile *participant.Participant
}

// Delivery records who reported the delivery done and when. Profile is
// an optional cached snapshot, as in Assignment.
type Delivery struct {
	By      kernel.UserID
	Profile *participant.Participant
	At      time.Time
}

// Order is the aggregate root of the marketplace: one request for
// delivery, owned by the customer who submitted it.
//
// Lifecycle state is not a field. Every stage is evidenced by a
// timestamp or record (publishedAt, assignment, delivery, confirmedAt,
// canceledAt) and Status derives the stage from that evidence on each
// read. Setting a later-stage field without clearing earlier ones is
// legal; the derivation is short-circuited by priority, not by mutual
// exclusion of storage.
//
// While resident in a store an order is owned exclusively by its chat's
// collection; callers always receive clones.
type Order struct {
	// id is zero until the store persists the order.
	id kernel.OrderID

	customer       participant.Participant
	name           string
	description    string
	priceAMD       uint64
	deliveryReward uint64
	urgency        Urgency

	createdAt   time.Time
	publishedAt *time.Time
	assignment  *Assignment
	delivery    *Delivery
	confirmedAt *time.Time
	canceledAt  *time.Time

	guard kernel.ConstructorGuard
}

// NewOrder creates an unpublished order draft at submission time.
//
// The customer record must be valid and the name non-empty. Both
// monetary amounts are in the venue's currency minor units; zero means
// "not applicable". The draft has no id until the store accepts it.
func NewOrder(
	customer participant.Participant,
	name string,
	description string,
	priceAMD uint64,
	deliveryReward uint64,
	urgency Urgency,
) (*Order, error) {
	if err := customer.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Order{
		customer:       customer,
		name:           name,
		description:    description,
		priceAMD:       priceAMD,
		deliveryReward: deliveryReward,
		urgency:        urgency,
		createdAt:      time.Now().UTC(),
		guard:          kernel.NewConstructorGuard(),
	}, nil
}

// RestoreOrder reconstructs a persisted order from storage. Unlike
// NewOrder it requires an id and accepts the full field evidence.
func RestoreOrder(
	id kernel.OrderID,
	customer participant.Participant,
	name string,
	description string,
	priceAMD uint64,
	deliveryReward uint64,
	urgency Urgency,
	createdAt time.Time,
	publishedAt *time.Time,
	assignment *Assignment,
	delivery *Delivery,
	confirmedAt *time.Time,
	canceledAt *time.Time,
) (*Order, error) {
	if id == 0 {
		return nil, errs.NewValueIsRequiredError("id")
	}
	if err := customer.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	o := &Order{
		id:             id,
		customer:       customer,
		name:           name,
		description:    description,
		priceAMD:       priceAMD,
		deliveryReward: deliveryReward,
		urgency:        urgency,
		createdAt:      createdAt,
		publishedAt:    cloneTime(publishedAt),
		confirmedAt:    cloneTime(confirmedAt),
		canceledAt:     cloneTime(canceledAt),
		guard:          kernel.NewConstructorGuard(),
	}
	if assignment != nil {
		a := *assignment
		o.assignment = &a
	}
	if delivery != nil {
		d := *delivery
		o.delivery = &d
	}
	return o, nil
}

// Validate ensures the order came from NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the store-assigned id, zero for an unpersisted draft.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// IsPersisted reports whether the store has assigned an id yet.
func (o *Order) IsPersisted() bool {
	return o.id != 0
}

// AssignID records the id the store allocated. It is an error to call it
// twice or with a zero id.
func (o *Order) AssignID(id kernel.OrderID) error {
	if id == 0 {
		return errs.NewValueIsRequiredError("id")
	}
	if o.id != 0 {
		return errs.NewValueIsInvalidError("id: order is already persisted")
	}
	o.id = id
	return nil
}

// Customer returns the immutable owner reference.
func (o *Order) Customer() participant.Participant {
	return o.customer
}

// Name returns the short item name.
func (o *Order) Name() string {
	return o.name
}

// Description returns the free-text description, possibly empty.
func (o *Order) Description() string {
	return o.description
}

// PriceAMD returns roughly what the items cost, zero if not stated.
func (o *Order) PriceAMD() uint64 {
	return o.priceAMD
}

// DeliveryReward returns the reward offered for delivering, zero if none.
func (o *Order) DeliveryReward() uint64 {
	return o.deliveryReward
}

// Urgency returns how soon the customer needs the items.
func (o *Order) Urgency() Urgency {
	return o.urgency
}

// CreatedAt returns the submission time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// PublishedAt returns a copy of the publication time, nil if never
// published.
func (o *Order) PublishedAt() *time.Time {
	return cloneTime(o.publishedAt)
}

// Assignment returns a copy of the assignment record, nil if unassigned.
func (o *Order) Assignment() *Assignment {
	if o.assignment == nil {
		return nil
	}
	a := *o.assignment
	return &a
}

// Delivery returns a copy of the delivery record, nil if not delivered.
func (o *Order) Delivery() *Delivery {
	if o.delivery == nil {
		return nil
	}
	d := *o.delivery
	return &d
}

// ConfirmedAt returns a copy of the confirmation time, nil if
// unconfirmed.
func (o *Order) ConfirmedAt() *time.Time {
	return cloneTime(o.confirmedAt)
}

// CanceledAt returns a copy of the cancellation time, nil if not
// cancelled.
func (o *Order) CanceledAt() *time.Time {
	return cloneTime(o.canceledAt)
}

// AssigneeID returns the current assignment holder, ok=false when
// unassigned.
func (o *Order) AssigneeID() (kernel.UserID, bool) {
	if o.assignment == nil {
		return 0, false
	}
	return o.assignment.Who, true
}

// Status derives the lifecycle stage from the field evidence. The checks
// run in fixed priority: cancellation beats everything, then
// confirmation, delivery, assignment, publication.
func (o *Order) Status() Status {
	switch {
	case o.canceledAt != nil:
		return Unpublished
	case o.confirmedAt != nil:
		return DeliveryConfirmed
	case o.delivery != nil:
		return MarkedAsDelivered
	case o.assignment != nil:
		return Assigned
	case o.publishedAt != nil:
		return Published
	default:
		return Unpublished
	}
}

// IsActiveAssignment reports whether the order is claimed and not yet
// confirmed delivered.
func (o *Order) IsActiveAssignment() bool {
	s := o.Status()
	return s == Assigned || s == MarkedAsDelivered
}

// RoleOf computes the participant's relationship to this order from the
// current owner and assignee fields.
func (o *Order) RoleOf(uid kernel.UserID) Role {
	if o.customer.ID() == uid {
		return Owner
	}
	if o.assignment != nil && o.assignment.Who == uid {
		return Assignee
	}
	return UnrelatedUser
}

// AvailableActions is the per-status catalog of actions the order can
// accept, before any role filtering.
func (o *Order) AvailableActions() []ActionKind {
	switch o.Status() {
	case Published:
		return []ActionKind{AssignToMe, Cancel}
	case Assigned:
		return []ActionKind{Unassign, MarkAsDelivered, ConfirmDelivery}
	case MarkedAsDelivered:
		return []ActionKind{ConfirmDelivery}
	case DeliveryConfirmed:
		return []ActionKind{Delete}
	default:
		return []ActionKind{Publish, Delete}
	}
}

// ActionsFor is the single authorization primitive: the intersection of
// the actor's role whitelist and the order's available set. Every
// mutation re-derives it at mutation time; a previously rendered action
// list is never trusted.
func (o *Order) ActionsFor(uid kernel.UserID) []ActionKind {
	return intersect(o.RoleOf(uid).AllowedActions(), o.AvailableActions())
}

// PublicActions returns the action set shown on venue-wide postings,
// where the viewer is unknown and assumed unrelated.
func (o *Order) PublicActions() []ActionKind {
	return intersect(UnrelatedUser.AllowedActions(), o.AvailableActions())
}

// IsActionPermitted reports whether the actor may perform the action's
// kind right now.
func (o *Order) IsActionPermitted(uid kernel.UserID, act Action) bool {
	return slices.Contains(o.ActionsFor(uid), act.Kind)
}

// PerformAction applies one permitted transition and returns the status
// the order had before the mutation, so callers can diff old against new
// when fanning out notifications.
//
// A non-permitted action fails with ErrNotPermitted and mutates nothing.
// Delete never reaches this method: deletion is a structural removal the
// store performs itself, and routing it here is a programming error that
// panics.
func (o *Order) PerformAction(actor participant.Participant, act Action) (Status, error) {
	if err := actor.Validate(); err != nil {
		return 0, err
	}
	if !o.IsActionPermitted(actor.ID(), act) {
		return 0, ErrNotPermitted
	}

	prev := o.Status()
	now := time.Now().UTC()

	switch act.Kind {
	case Publish:
		o.publishedAt = &now
		// Republishing a cancelled order must let it reach later stages
		// again; a lingering cancellation would pin the status forever.
		o.canceledAt = nil
	case Cancel:
		o.canceledAt = &now
	case AssignToMe:
		profile := actor
		o.assignment = &Assignment{At: now, Who: actor.ID(), Profile: &profile}
	case Unassign:
		o.assignment = nil
	case MarkAsDelivered:
		profile := actor
		o.delivery = &Delivery{By: actor.ID(), Profile: &profile, At: now}
	case ConfirmDelivery:
		o.confirmedAt = &now
	case Delete:
		panic("order: Delete must be handled by the store, not the aggregate")
	}

	return prev, nil
}

// Clone returns a deep copy. Stores hand out clones so no caller ever
// holds a live reference into a resident order.
func (o *Order) Clone() *Order {
	dup := *o
	dup.publishedAt = cloneTime(o.publishedAt)
	dup.confirmedAt = cloneTime(o.confirmedAt)
	dup.canceledAt = cloneTime(o.canceledAt)
	if o.assignment != nil {
		a := *o.assignment
		dup.assignment = &a
	}
	if o.delivery != nil {
		d := *o.delivery
		dup.delivery = &d
	}
	return &dup
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

func intersect(allowed, available []ActionKind) []ActionKind {
	res := make([]ActionKind, 0, len(allowed))
	for _, a := range allowed {
		if slices.Contains(available, a) {
			res = append(res, a)
		}
	}
	return res
}
