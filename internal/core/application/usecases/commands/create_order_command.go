package commands

import (
	"errors"
	"strings"

	"dilivry/internal/core/domain/model/kernel"
	"dilivry/internal/core/domain/model/order"
	"dilivry/internal/core/domain/model/participant"
	"dilivry/internal/pkg/errs"
)

// ErrCreateOrderCommandIsNotConstructed is returned when a
// CreateOrderCommand was not created via NewCreateOrderCommand.
var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to file a new order draft in a
// public chat. The draft starts unpublished and invisible to everyone
// but its owner.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(customer, chatID,
//	    "Groceries", "milk and bread", 2500, 700, order.Today)
//	if err != nil {
//	    return err
//	}
//	orderID, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customer       participant.Participant
	chatID         kernel.ChatID
	name           string
	description    string
	priceAMD       uint64
	deliveryReward uint64
	urgency        order.Urgency

	guard kernel.ConstructorGuard
}

// NewCreateOrderCommand validates the inputs and builds the command.
func NewCreateOrderCommand(
	customer participant.Participant,
	chatID kernel.ChatID,
	name string,
	description string,
	priceAMD uint64,
	deliveryReward uint64,
	urgency order.Urgency,
) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		description:    description,
		priceAMD:       priceAMD,
		deliveryReward: deliveryReward,
		urgency:        urgency,
		guard:          kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCustomer(customer),
		command.setChatID(chatID),
		command.setName(name),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Customer returns the participant who submits the order.
func (c CreateOrderCommand) Customer() participant.Participant {
	return c.customer
}

// ChatID returns the public chat the order is filed under.
func (c CreateOrderCommand) ChatID() kernel.ChatID {
	return c.chatID
}

// Name returns the short order title.
func (c CreateOrderCommand) Name() string {
	return c.name
}

// Description returns the free-form order details.
func (c CreateOrderCommand) Description() string {
	return c.description
}

// PriceAMD returns the approximate goods price in Armenian dram.
func (c CreateOrderCommand) PriceAMD() uint64 {
	return c.priceAMD
}

// DeliveryReward returns the courier's reward in Armenian dram.
func (c CreateOrderCommand) DeliveryReward() uint64 {
	return c.deliveryReward
}

// Urgency returns how soon the delivery is wanted.
func (c CreateOrderCommand) Urgency() order.Urgency {
	return c.urgency
}

func (c *CreateOrderCommand) setCustomer(customer participant.Participant) error {
	if err := customer.Validate(); err != nil {
		return err
	}

	c.customer = customer
	return nil
}

func (c *CreateOrderCommand) setChatID(chatID kernel.ChatID) error {
	if chatID == 0 || chatID.IsPrivate() {
		return errs.NewValueIsInvalidError("chatId")
	}

	c.chatID = chatID
	return nil
}

func (c *CreateOrderCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}
