package queries_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"dilivry/internal/core/domain/model/chat"
	"dilivry/internal/core/domain/model/kernel"
	"dilivry/internal/core/domain/model/order"
	"dilivry/internal/core/domain/model/participant"
	"dilivry/internal/core/ports"
)

type MockStore struct{ mock.Mock }

func (m *MockStore) AddOrder(ctx context.Context, chatID kernel.ChatID, draft *order.Order) (kernel.OrderID, error) {
	args := m.Called(ctx, chatID, draft)
	return args.Get(0).(kernel.OrderID), args.Error(1)
}

func (m *MockStore) OrdersByStatus(ctx context.Context, chatID kernel.ChatID, status order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, chatID, status)
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockStore) OrdersSubmittedBy(ctx context.Context, chatID kernel.ChatID, uid kernel.UserID) ([]*order.Order, error) {
	args := m.Called(ctx, chatID, uid)
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockStore) ActiveAssignmentsTo(ctx context.Context, chatID kernel.ChatID, uid kernel.UserID) ([]*order.Order, error) {
	args := m.Called(ctx, chatID, uid)
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockStore) PerformAction(ctx context.Context, actor participant.Participant, chatID kernel.ChatID, act order.Action) (order.Status, *order.Order, error) {
	args := m.Called(ctx, actor, chatID, act)
	var o *order.Order
	if v := args.Get(1); v != nil {
		o = v.(*order.Order)
	}
	return args.Get(0).(order.Status), o, args.Error(2)
}

func (m *MockStore) GetUser(ctx context.Context, uid kernel.UserID) (*participant.Participant, error) {
	args := m.Called(ctx, uid)
	var p *participant.Participant
	if v := args.Get(0); v != nil {
		p = v.(*participant.Participant)
	}
	return p, args.Error(1)
}

func (m *MockStore) UpdateUser(ctx context.Context, p participant.Participant) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockStore) UpdateChat(ctx context.Context, c chat.PublicChat) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockStore) AddMembers(ctx context.Context, chatID kernel.ChatID, uids []kernel.UserID) error {
	args := m.Called(ctx, chatID, uids)
	return args.Error(0)
}

func (m *MockStore) RemoveMember(ctx context.Context, chatID kernel.ChatID, uid kernel.UserID) error {
	args := m.Called(ctx, chatID, uid)
	return args.Error(0)
}

func (m *MockStore) ChatsOf(ctx context.Context, uid kernel.UserID) ([]chat.Ref, error) {
	args := m.Called(ctx, uid)
	return args.Get(0).([]chat.Ref), args.Error(1)
}

func (m *MockStore) RecordPosting(ctx context.Context, orderID kernel.OrderID, p chat.Posting) error {
	args := m.Called(ctx, orderID, p)
	return args.Error(0)
}

func (m *MockStore) Postings(ctx context.Context, orderID kernel.OrderID) ([]chat.Posting, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).([]chat.Posting), args.Error(1)
}

func (m *MockStore) Stats(ctx context.Context) (ports.StoreStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(ports.StoreStats), args.Error(1)
}

var _ ports.Store = (*MockStore)(nil)
