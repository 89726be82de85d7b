package redisstore

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	rd "github.com/redis/go-redis/v9"

	"dilivry/internal/core/domain/model/chat"
	"dilivry/internal/core/domain/model/kernel"
	"dilivry/internal/core/domain/model/order"
	"dilivry/internal/core/domain/model/participant"
	"dilivry/internal/core/ports"
	"dilivry/internal/pkg/errs"
)

// maxTxRetries bounds how often PerformAction replays its transaction
// after losing a WATCH race before giving up.
const maxTxRetries = 5

// Store is the Redis-backed ports.Store. The graph is spread over flat
// keys (see the keys type for the schema); multi-key writes go through
// MULTI/EXEC pipelines, and PerformAction guards its read-modify-write
// with WATCH so concurrent transitions against the same order cannot
// lose updates.
type Store struct {
	rdb  *rd.Client
	keys keys
	log  *slog.Logger
}

// NewStore wraps an existing client. An empty prefix falls back to
// DefaultKeyPrefix, a nil logger to slog.Default.
func NewStore(rdb *rd.Client, prefix string, log *slog.Logger) (*Store, error) {
	if rdb == nil {
		return nil, errs.NewValueIsRequiredError("rdb")
	}
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	if log == nil {
		log = slog.Default()
	}
	return &Store{rdb: rdb, keys: keys{prefix: prefix}, log: log}, nil
}

var _ ports.Store = (*Store)(nil)

func (s *Store) chatRegistered(ctx context.Context, chatID kernel.ChatID) error {
	ok, err := s.rdb.SIsMember(ctx, s.keys.pubChats(), int64(chatID)).Result()
	if err != nil {
		return err
	}
	if !ok {
		return errs.NewObjectNotFoundError("chatId", chatID.String())
	}
	return nil
}

// AddOrder draws the next id from the shared counter and files the
// order under the chat in one transaction.
func (s *Store) AddOrder(ctx context.Context, chatID kernel.ChatID, draft *order.Order) (kernel.OrderID, error) {
	if err := draft.Validate(); err != nil {
		return 0, err
	}
	if err := s.chatRegistered(ctx, chatID); err != nil {
		return 0, err
	}

	next, err := s.rdb.Incr(ctx, s.keys.numOrders()).Result()
	if err != nil {
		return 0, err
	}

	resident := draft.Clone()
	if err := resident.AssignID(kernel.OrderID(next)); err != nil {
		return 0, err
	}
	payload, err := marshalOrder(resident)
	if err != nil {
		return 0, err
	}

	_, err = s.rdb.TxPipelined(ctx, func(pipe rd.Pipeliner) error {
		pipe.Set(ctx, s.keys.pubChatOrder(chatID, resident.ID()), payload, 0)
		pipe.SAdd(ctx, s.keys.pubChatOrders(chatID), next)
		pipe.SAdd(ctx, s.keys.userOrders(resident.Customer().ID()), next)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return resident.ID(), nil
}

// chatOrders loads every order filed under the chat.
func (s *Store) chatOrders(ctx context.Context, chatID kernel.ChatID) ([]*order.Order, error) {
	if err := s.chatRegistered(ctx, chatID); err != nil {
		return nil, err
	}

	members, err := s.rdb.SMembers(ctx, s.keys.pubChatOrders(chatID)).Result()
	if err != nil {
		return nil, err
	}
	return s.loadOrders(ctx, chatID, members)
}

// loadOrders fetches and decodes orders by their set-member ids. Ids
// whose record vanished between SMEMBERS and MGET are skipped.
func (s *Store) loadOrders(ctx context.Context, chatID kernel.ChatID, members []string) ([]*order.Order, error) {
	if len(members) == 0 {
		return []*order.Order{}, nil
	}

	orderKeys := make([]string, 0, len(members))
	for _, m := range members {
		oid, err := strconv.ParseUint(m, 10, 64)
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("orderId", err)
		}
		orderKeys = append(orderKeys, s.keys.pubChatOrder(chatID, kernel.OrderID(oid)))
	}

	raw, err := s.rdb.MGet(ctx, orderKeys...).Result()
	if err != nil {
		return nil, err
	}

	res := make([]*order.Order, 0, len(raw))
	for _, item := range raw {
		data, ok := item.(string)
		if !ok {
			continue
		}
		o, err := unmarshalOrder([]byte(data))
		if err != nil {
			return nil, err
		}
		res = append(res, o)
	}
	sortOrdersByID(res)
	return res, nil
}

func (s *Store) OrdersByStatus(ctx context.Context, chatID kernel.ChatID, status order.Status) ([]*order.Order, error) {
	all, err := s.chatOrders(ctx, chatID)
	if err != nil {
		return nil, err
	}
	return filterOrders(all, func(o *order.Order) bool {
		return o.Status() == status
	}), nil
}

// OrdersSubmittedBy intersects the user's order set with the chat's.
func (s *Store) OrdersSubmittedBy(ctx context.Context, chatID kernel.ChatID, uid kernel.UserID) ([]*order.Order, error) {
	if err := s.chatRegistered(ctx, chatID); err != nil {
		return nil, err
	}

	members, err := s.rdb.SInter(ctx, s.keys.userOrders(uid), s.keys.pubChatOrders(chatID)).Result()
	if err != nil {
		return nil, err
	}
	return s.loadOrders(ctx, chatID, members)
}

func (s *Store) ActiveAssignmentsTo(ctx context.Context, chatID kernel.ChatID, uid kernel.UserID) ([]*order.Order, error) {
	all, err := s.chatOrders(ctx, chatID)
	if err != nil {
		return nil, err
	}
	return filterOrders(all, func(o *order.Order) bool {
		who, ok := o.AssigneeID()
		return o.IsActiveAssignment() && ok && who == uid
	}), nil
}

// PerformAction runs the transition as a WATCH-guarded read-modify-write.
// When a concurrent transaction touches the same order record first, the
// EXEC fails and the whole cycle is replayed against the fresh state, so
// two racing claims resolve to exactly one winner.
func (s *Store) PerformAction(ctx context.Context, actor participant.Participant, chatID kernel.ChatID, act order.Action) (order.Status, *order.Order, error) {
	if err := actor.Validate(); err != nil {
		return 0, nil, err
	}

	orderKey := s.keys.pubChatOrder(chatID, act.OrderID)
	var (
		prev    order.Status
		updated *order.Order
	)

	txn := func(tx *rd.Tx) error {
		data, err := tx.Get(ctx, orderKey).Bytes()
		if errors.Is(err, rd.Nil) {
			return errs.NewObjectNotFoundError("orderId", act.OrderID.String())
		}
		if err != nil {
			return err
		}
		resident, err := unmarshalOrder(data)
		if err != nil {
			return err
		}

		if act.Kind == order.Delete {
			if !resident.IsActionPermitted(actor.ID(), act) {
				return order.ErrNotPermitted
			}
			prev = resident.Status()
			updated = nil
			_, err = tx.TxPipelined(ctx, func(pipe rd.Pipeliner) error {
				pipe.Del(ctx, orderKey)
				pipe.SRem(ctx, s.keys.pubChatOrders(chatID), uint64(act.OrderID))
				pipe.SRem(ctx, s.keys.userOrders(resident.Customer().ID()), uint64(act.OrderID))
				pipe.Del(ctx, s.keys.orderPostings(act.OrderID))
				return nil
			})
			return err
		}

		prev, err = resident.PerformAction(actor, act)
		if err != nil {
			return err
		}
		updated = resident

		payload, err := marshalOrder(resident)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe rd.Pipeliner) error {
			pipe.Set(ctx, orderKey, payload, 0)
			return nil
		})
		return err
	}

	for attempt := 0; attempt < maxTxRetries; attempt++ {
		err := s.rdb.Watch(ctx, txn, orderKey)
		if err == nil {
			return prev, updated, nil
		}
		if errors.Is(err, rd.TxFailedErr) {
			s.log.Debug("perform action lost watch race, retrying",
				"order_id", act.OrderID, "attempt", attempt+1)
			continue
		}
		return 0, nil, err
	}
	return 0, nil, errs.NewVersionIsInvalidError("order", rd.TxFailedErr)
}

func (s *Store) GetUser(ctx context.Context, uid kernel.UserID) (*participant.Participant, error) {
	data, err := s.rdb.Get(ctx, s.keys.user(uid)).Bytes()
	if errors.Is(err, rd.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	p, err := unmarshalParticipant(data)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) UpdateUser(ctx context.Context, p participant.Participant) error {
	if err := p.Validate(); err != nil {
		return err
	}
	payload, err := marshalParticipant(p)
	if err != nil {
		return err
	}

	_, err = s.rdb.TxPipelined(ctx, func(pipe rd.Pipeliner) error {
		pipe.Set(ctx, s.keys.user(p.ID()), payload, 0)
		pipe.SAdd(ctx, s.keys.users(), uint64(p.ID()))
		return nil
	})
	return err
}

func (s *Store) UpdateChat(ctx context.Context, c chat.PublicChat) error {
	if err := c.Validate(); err != nil {
		return err
	}

	_, err := s.rdb.TxPipelined(ctx, func(pipe rd.Pipeliner) error {
		pipe.SAdd(ctx, s.keys.pubChats(), int64(c.ID()))
		pipe.Set(ctx, s.keys.pubChatName(c.ID()), c.Title(), 0)
		return nil
	})
	return err
}

func (s *Store) AddMembers(ctx context.Context, chatID kernel.ChatID, uids []kernel.UserID) error {
	if err := s.chatRegistered(ctx, chatID); err != nil {
		return err
	}
	if len(uids) == 0 {
		return nil
	}

	_, err := s.rdb.TxPipelined(ctx, func(pipe rd.Pipeliner) error {
		for _, uid := range uids {
			pipe.SAdd(ctx, s.keys.userPubChats(uid), int64(chatID))
			pipe.SAdd(ctx, s.keys.pubChatMembers(chatID), uint64(uid))
		}
		return nil
	})
	return err
}

func (s *Store) RemoveMember(ctx context.Context, chatID kernel.ChatID, uid kernel.UserID) error {
	_, err := s.rdb.TxPipelined(ctx, func(pipe rd.Pipeliner) error {
		pipe.SRem(ctx, s.keys.pubChatMembers(chatID), uint64(uid))
		pipe.SRem(ctx, s.keys.userPubChats(uid), int64(chatID))
		return nil
	})
	return err
}

// ChatsOf reads the user's membership set and resolves titles, in chat
// id order for determinism.
func (s *Store) ChatsOf(ctx context.Context, uid kernel.UserID) ([]chat.Ref, error) {
	members, err := s.rdb.SMembers(ctx, s.keys.userPubChats(uid)).Result()
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return []chat.Ref{}, nil
	}

	ids := make([]kernel.ChatID, 0, len(members))
	for _, m := range members {
		cid, parseErr := strconv.ParseInt(m, 10, 64)
		if parseErr != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("chatId", parseErr)
		}
		ids = append(ids, kernel.ChatID(cid))
	}
	sortChatIDs(ids)

	nameKeys := make([]string, 0, len(ids))
	for _, id := range ids {
		nameKeys = append(nameKeys, s.keys.pubChatName(id))
	}
	names, err := s.rdb.MGet(ctx, nameKeys...).Result()
	if err != nil {
		return nil, err
	}

	refs := make([]chat.Ref, 0, len(ids))
	for i, id := range ids {
		title, _ := names[i].(string)
		refs = append(refs, chat.Ref{ID: id, Title: title})
	}
	return refs, nil
}

func (s *Store) RecordPosting(ctx context.Context, orderID kernel.OrderID, p chat.Posting) error {
	payload, err := marshalPosting(p)
	if err != nil {
		return err
	}
	return s.rdb.SAdd(ctx, s.keys.orderPostings(orderID), payload).Err()
}

func (s *Store) Postings(ctx context.Context, orderID kernel.OrderID) ([]chat.Posting, error) {
	members, err := s.rdb.SMembers(ctx, s.keys.orderPostings(orderID)).Result()
	if err != nil {
		return nil, err
	}

	res := make([]chat.Posting, 0, len(members))
	for _, m := range members {
		p, err := unmarshalPosting([]byte(m))
		if err != nil {
			return nil, err
		}
		res = append(res, p)
	}
	sortPostings(res)
	return res, nil
}

// Stats reads the counters and set cardinalities that describe the
// stored graph.
func (s *Store) Stats(ctx context.Context) (ports.StoreStats, error) {
	var stats ports.StoreStats

	maxID, err := s.rdb.Get(ctx, s.keys.numOrders()).Uint64()
	if err != nil && !errors.Is(err, rd.Nil) {
		return ports.StoreStats{}, err
	}
	stats.MaxOrderID = kernel.OrderID(maxID)

	chatMembers, err := s.rdb.SMembers(ctx, s.keys.pubChats()).Result()
	if err != nil {
		return ports.StoreStats{}, err
	}
	stats.ChatCount = len(chatMembers)

	users, err := s.rdb.SCard(ctx, s.keys.users()).Result()
	if err != nil {
		return ports.StoreStats{}, err
	}
	stats.UserCount = int(users)

	for _, m := range chatMembers {
		cid, parseErr := strconv.ParseInt(m, 10, 64)
		if parseErr != nil {
			return ports.StoreStats{}, errs.NewValueIsInvalidErrorWithCause("chatId", parseErr)
		}
		n, cardErr := s.rdb.SCard(ctx, s.keys.pubChatOrders(kernel.ChatID(cid))).Result()
		if cardErr != nil {
			return ports.StoreStats{}, cardErr
		}
		stats.OrderCount += int(n)
	}
	return stats, nil
}
