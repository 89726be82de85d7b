package mem

import (
	"context"
	"slices"
	"sync"

	"dilivry/internal/core/domain/model/chat"
	"dilivry/internal/core/domain/model/kernel"
	"dilivry/internal/core/domain/model/order"
	"dilivry/internal/core/domain/model/participant"
	"dilivry/internal/core/ports"
	"dilivry/internal/pkg/errs"
)

// chatState is one public chat resident in the store: its metadata plus
// the orders that belong to it, in id order.
type chatState struct {
	meta   chat.PublicChat
	orders []*order.Order
}

// Store is the in-process ports.Store backend. The whole graph lives
// behind one exclusive-writer/shared-reader lock, which serializes all
// writes store-wide; at this scale that is the whole concurrency story,
// and it makes every operation trivially atomic.
//
// Orders are cloned on the way in and out, so no caller ever holds a
// reference into the guarded region.
type Store struct {
	mu       sync.RWMutex
	maxID    kernel.OrderID
	chats    map[kernel.ChatID]*chatState
	users    map[kernel.UserID]participant.Participant
	postings map[kernel.OrderID]map[chat.Posting]struct{}
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		chats:    make(map[kernel.ChatID]*chatState),
		users:    make(map[kernel.UserID]participant.Participant),
		postings: make(map[kernel.OrderID]map[chat.Posting]struct{}),
	}
}

var _ ports.Store = (*Store)(nil)

// AddOrder assigns the next id from the store-wide counter and files a
// clone of the draft under the chat.
func (s *Store) AddOrder(_ context.Context, chatID kernel.ChatID, draft *order.Order) (kernel.OrderID, error) {
	if err := draft.Validate(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cs, ok := s.chats[chatID]
	if !ok {
		return 0, errs.NewObjectNotFoundError("chatId", chatID.String())
	}

	s.maxID++
	resident := draft.Clone()
	if err := resident.AssignID(s.maxID); err != nil {
		s.maxID--
		return 0, err
	}

	cs.orders = append(cs.orders, resident)
	return resident.ID(), nil
}

// OrdersByStatus returns clones of the chat's orders in the given
// derived status.
func (s *Store) OrdersByStatus(_ context.Context, chatID kernel.ChatID, status order.Status) ([]*order.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.filterOrders(chatID, func(o *order.Order) bool {
		return o.Status() == status
	})
}

// OrdersSubmittedBy returns clones of the chat's orders owned by uid.
func (s *Store) OrdersSubmittedBy(_ context.Context, chatID kernel.ChatID, uid kernel.UserID) ([]*order.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.filterOrders(chatID, func(o *order.Order) bool {
		return o.Customer().ID() == uid
	})
}

// ActiveAssignmentsTo returns clones of the chat's orders uid currently
// holds.
func (s *Store) ActiveAssignmentsTo(_ context.Context, chatID kernel.ChatID, uid kernel.UserID) ([]*order.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.filterOrders(chatID, func(o *order.Order) bool {
		who, ok := o.AssigneeID()
		return o.IsActiveAssignment() && ok && who == uid
	})
}

// filterOrders must be called with at least the read lock held.
func (s *Store) filterOrders(chatID kernel.ChatID, keep func(*order.Order) bool) ([]*order.Order, error) {
	cs, ok := s.chats[chatID]
	if !ok {
		return nil, errs.NewObjectNotFoundError("chatId", chatID.String())
	}

	res := make([]*order.Order, 0)
	for _, o := range cs.orders {
		if keep(o) {
			res = append(res, o.Clone())
		}
	}
	return res, nil
}

// PerformAction executes one transition as a single atomic unit under
// the writer lock. Delete removes the order structurally after the
// permission check; everything else is delegated to the aggregate.
func (s *Store) PerformAction(_ context.Context, actor participant.Participant, chatID kernel.ChatID, act order.Action) (order.Status, *order.Order, error) {
	if err := actor.Validate(); err != nil {
		return 0, nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cs, ok := s.chats[chatID]
	if !ok {
		return 0, nil, errs.NewObjectNotFoundError("chatId", chatID.String())
	}

	idx := slices.IndexFunc(cs.orders, func(o *order.Order) bool {
		return o.ID() == act.OrderID
	})
	if idx < 0 {
		return 0, nil, errs.NewObjectNotFoundError("orderId", act.OrderID.String())
	}
	resident := cs.orders[idx]

	if act.Kind == order.Delete {
		// Authorize against the current state before touching anything.
		if !resident.IsActionPermitted(actor.ID(), act) {
			return 0, nil, order.ErrNotPermitted
		}
		prev := resident.Status()
		cs.orders = slices.Delete(cs.orders, idx, idx+1)
		delete(s.postings, act.OrderID)
		return prev, nil, nil
	}

	prev, err := resident.PerformAction(actor, act)
	if err != nil {
		return 0, nil, err
	}
	return prev, resident.Clone(), nil
}

// GetUser returns the participant's record, nil when never seen.
func (s *Store) GetUser(_ context.Context, uid kernel.UserID) (*participant.Participant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.users[uid]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// UpdateUser upserts the record whole, last write wins.
func (s *Store) UpdateUser(_ context.Context, p participant.Participant) error {
	if err := p.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[p.ID()] = p
	return nil
}

// UpdateChat upserts chat metadata. First sight registers the chat with
// an empty member set; later sightings refresh the title only.
func (s *Store) UpdateChat(_ context.Context, c chat.PublicChat) error {
	if err := c.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if cs, ok := s.chats[c.ID()]; ok {
		cs.meta.Rename(c.Title())
		return nil
	}
	s.chats[c.ID()] = &chatState{meta: c.Clone()}
	return nil
}

// AddMembers records memberships. The chat must already be registered.
func (s *Store) AddMembers(_ context.Context, chatID kernel.ChatID, uids []kernel.UserID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cs, ok := s.chats[chatID]
	if !ok {
		return errs.NewObjectNotFoundError("chatId", chatID.String())
	}
	for _, uid := range uids {
		cs.meta.AddMember(uid)
	}
	return nil
}

// RemoveMember drops one membership. Unknown chats and absent members
// are no-ops.
func (s *Store) RemoveMember(_ context.Context, chatID kernel.ChatID, uid kernel.UserID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cs, ok := s.chats[chatID]; ok {
		cs.meta.RemoveMember(uid)
	}
	return nil
}

// ChatsOf scans the membership sets, in chat id order for determinism.
func (s *Store) ChatsOf(_ context.Context, uid kernel.UserID) ([]chat.Ref, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]kernel.ChatID, 0, len(s.chats))
	for id := range s.chats {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	refs := make([]chat.Ref, 0)
	for _, id := range ids {
		if cs := s.chats[id]; cs.meta.HasMember(uid) {
			refs = append(refs, chat.Ref{ID: id, Title: cs.meta.Title()})
		}
	}
	return refs, nil
}

// RecordPosting registers one outward message location for the order.
func (s *Store) RecordPosting(_ context.Context, orderID kernel.OrderID, p chat.Posting) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.postings[orderID]
	if !ok {
		set = make(map[chat.Posting]struct{})
		s.postings[orderID] = set
	}
	set[p] = struct{}{}
	return nil
}

// Postings returns the recorded locations, ordered for determinism.
func (s *Store) Postings(_ context.Context, orderID kernel.OrderID) ([]chat.Posting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]chat.Posting, 0, len(s.postings[orderID]))
	for p := range s.postings[orderID] {
		res = append(res, p)
	}
	slices.SortFunc(res, func(a, b chat.Posting) int {
		if a.ChatID != b.ChatID {
			if a.ChatID < b.ChatID {
				return -1
			}
			return 1
		}
		switch {
		case a.MessageID < b.MessageID:
			return -1
		case a.MessageID > b.MessageID:
			return 1
		default:
			return 0
		}
	})
	return res, nil
}

// Stats summarizes the resident graph.
func (s *Store) Stats(_ context.Context) (ports.StoreStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := 0
	for _, cs := range s.chats {
		orders += len(cs.orders)
	}
	return ports.StoreStats{
		MaxOrderID: s.maxID,
		ChatCount:  len(s.chats),
		UserCount:  len(s.users),
		OrderCount: orders,
	}, nil
}
