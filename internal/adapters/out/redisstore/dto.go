package redisstore

import (
	"encoding/json"
	"time"

	"dilivry/internal/core/domain/model/chat"
	"dilivry/internal/core/domain/model/kernel"
	"dilivry/internal/core/domain/model/order"
	"dilivry/internal/core/domain/model/participant"
	"dilivry/internal/pkg/errs"
)

// ParticipantDTO is the stored shape of a participant record.
type ParticipantDTO struct {
	ID        uint64 `json:"id"`
	Username  string `json:"username,omitempty"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
}

func participantFromDomain(p participant.Participant) ParticipantDTO {
	return ParticipantDTO{
		ID:        uint64(p.ID()),
		Username:  p.Username(),
		FirstName: p.FirstName(),
		LastName:  p.LastName(),
	}
}

func participantToDomain(dto ParticipantDTO) (participant.Participant, error) {
	return participant.NewParticipant(
		kernel.UserID(dto.ID), dto.Username, dto.FirstName, dto.LastName)
}

// AssignmentDTO is the stored shape of an order's assignment evidence.
type AssignmentDTO struct {
	At      time.Time       `json:"at"`
	Who     uint64          `json:"who"`
	Profile *ParticipantDTO `json:"profile,omitempty"`
}

// DeliveryDTO is the stored shape of an order's delivery evidence.
type DeliveryDTO struct {
	By      uint64          `json:"by"`
	Profile *ParticipantDTO `json:"profile,omitempty"`
	At      time.Time       `json:"at"`
}

// OrderDTO is the stored shape of an order aggregate. Status is never
// stored, it is derived from the evidence fields on restore.
type OrderDTO struct {
	ID             uint64         `json:"id"`
	Customer       ParticipantDTO `json:"customer"`
	Name           string         `json:"name"`
	Description    string         `json:"description,omitempty"`
	PriceAMD       uint64         `json:"price_amd"`
	DeliveryReward uint64         `json:"delivery_reward"`
	Urgency        string         `json:"urgency"`
	CreatedAt      time.Time      `json:"created_at"`
	PublishedAt    *time.Time     `json:"published_at,omitempty"`
	Assignment     *AssignmentDTO `json:"assignment,omitempty"`
	Delivery       *DeliveryDTO   `json:"delivery,omitempty"`
	ConfirmedAt    *time.Time     `json:"confirmed_at,omitempty"`
	CanceledAt     *time.Time     `json:"canceled_at,omitempty"`
}

func orderFromDomain(o *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:             uint64(o.ID()),
		Customer:       participantFromDomain(o.Customer()),
		Name:           o.Name(),
		Description:    o.Description(),
		PriceAMD:       o.PriceAMD(),
		DeliveryReward: o.DeliveryReward(),
		Urgency:        o.Urgency().ID(),
		CreatedAt:      o.CreatedAt(),
		PublishedAt:    o.PublishedAt(),
		ConfirmedAt:    o.ConfirmedAt(),
		CanceledAt:     o.CanceledAt(),
	}

	if a := o.Assignment(); a != nil {
		dto.Assignment = &AssignmentDTO{At: a.At, Who: uint64(a.Who)}
		if a.Profile != nil {
			p := participantFromDomain(*a.Profile)
			dto.Assignment.Profile = &p
		}
	}
	if d := o.Delivery(); d != nil {
		dto.Delivery = &DeliveryDTO{By: uint64(d.By), At: d.At}
		if d.Profile != nil {
			p := participantFromDomain(*d.Profile)
			dto.Delivery.Profile = &p
		}
	}
	return dto
}

func orderToDomain(dto OrderDTO) (*order.Order, error) {
	customer, err := participantToDomain(dto.Customer)
	if err != nil {
		return nil, err
	}

	urgency, ok := order.UrgencyFromID(dto.Urgency)
	if !ok {
		return nil, errs.NewValueIsInvalidError("urgency")
	}

	var assignment *order.Assignment
	if dto.Assignment != nil {
		assignment = &order.Assignment{
			At:  dto.Assignment.At,
			Who: kernel.UserID(dto.Assignment.Who),
		}
		if dto.Assignment.Profile != nil {
			p, profileErr := participantToDomain(*dto.Assignment.Profile)
			if profileErr != nil {
				return nil, profileErr
			}
			assignment.Profile = &p
		}
	}

	var delivery *order.Delivery
	if dto.Delivery != nil {
		delivery = &order.Delivery{
			By: kernel.UserID(dto.Delivery.By),
			At: dto.Delivery.At,
		}
		if dto.Delivery.Profile != nil {
			p, profileErr := participantToDomain(*dto.Delivery.Profile)
			if profileErr != nil {
				return nil, profileErr
			}
			delivery.Profile = &p
		}
	}

	return order.RestoreOrder(
		kernel.OrderID(dto.ID),
		customer,
		dto.Name,
		dto.Description,
		dto.PriceAMD,
		dto.DeliveryReward,
		urgency,
		dto.CreatedAt,
		dto.PublishedAt,
		assignment,
		delivery,
		dto.ConfirmedAt,
		dto.CanceledAt,
	)
}

func marshalOrder(o *order.Order) ([]byte, error) {
	return json.Marshal(orderFromDomain(o))
}

func unmarshalOrder(data []byte) (*order.Order, error) {
	var dto OrderDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, err
	}
	return orderToDomain(dto)
}

func marshalParticipant(p participant.Participant) ([]byte, error) {
	return json.Marshal(participantFromDomain(p))
}

func unmarshalParticipant(data []byte) (participant.Participant, error) {
	var dto ParticipantDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return participant.Participant{}, err
	}
	return participantToDomain(dto)
}

// PostingDTO is the stored shape of one outward message location.
type PostingDTO struct {
	ChatID    int64 `json:"chat_id"`
	MessageID int64 `json:"message_id"`
}

func marshalPosting(p chat.Posting) ([]byte, error) {
	return json.Marshal(PostingDTO{
		ChatID:    int64(p.ChatID),
		MessageID: int64(p.MessageID),
	})
}

func unmarshalPosting(data []byte) (chat.Posting, error) {
	var dto PostingDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return chat.Posting{}, err
	}
	return chat.Posting{
		ChatID:    kernel.ChatID(dto.ChatID),
		MessageID: kernel.MessageID(dto.MessageID),
	}, nil
}
