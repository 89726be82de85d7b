package participant

import (
	"strings"

	"dilivry/internal/core/domain/model/kernel"
	"dilivry/internal/pkg/errs"
)

// ErrParticipantIsNotConstructed is returned when a Participant was not
// created through NewParticipant.
var ErrParticipantIsNotConstructed = errs.NewValueIsRequiredError(
	"Participant must be created via NewParticipant")

// Participant is any identified actor in the system: a customer posting
// orders, an assignee delivering them, or a bystander. Records are
// upserted whole on every sighting, last write wins.
type Participant struct {
	id        kernel.UserID
	username  string
	firstName string
	lastName  string

	guard kernel.ConstructorGuard
}

// NewParticipant creates a participant record. The id and first name are
// required; username (without the "@") and last name are optional.
func NewParticipant(id kernel.UserID, username, firstName, lastName string) (Participant, error) {
	if id == 0 {
		return Participant{}, errs.NewValueIsRequiredError("id")
	}
	if strings.TrimSpace(firstName) == "" {
		return Participant{}, errs.NewValueIsRequiredError("firstName")
	}

	return Participant{
		id:        id,
		username:  strings.TrimPrefix(username, "@"),
		firstName: firstName,
		lastName:  lastName,
		guard:     kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the record came from NewParticipant.
func (p Participant) Validate() error {
	return p.guard.Validate(ErrParticipantIsNotConstructed)
}

// ID returns the participant's transport-wide identifier.
func (p Participant) ID() kernel.UserID {
	return p.id
}

// Username returns the handle without the "@", or "" if unset.
func (p Participant) Username() string {
	return p.username
}

// FirstName returns the participant's first name.
func (p Participant) FirstName() string {
	return p.firstName
}

// LastName returns the participant's last name, or "" if unset.
func (p Participant) LastName() string {
	return p.lastName
}

// DisplayName renders "@username First Last", omitting the parts that are
// not set.
func (p Participant) DisplayName() string {
	name := p.firstName
	if p.lastName != "" {
		name += " " + p.lastName
	}
	if p.username != "" {
		return "@" + p.username + " " + name
	}
	return name
}
