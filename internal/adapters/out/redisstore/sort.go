package redisstore

import (
	"slices"

	"dilivry/internal/core/domain/model/chat"
	"dilivry/internal/core/domain/model/kernel"
	"dilivry/internal/core/domain/model/order"
)

func sortOrdersByID(orders []*order.Order) {
	slices.SortFunc(orders, func(a, b *order.Order) int {
		switch {
		case a.ID() < b.ID():
			return -1
		case a.ID() > b.ID():
			return 1
		default:
			return 0
		}
	})
}

func sortChatIDs(ids []kernel.ChatID) {
	slices.Sort(ids)
}

func filterOrders(orders []*order.Order, keep func(*order.Order) bool) []*order.Order {
	res := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		if keep(o) {
			res = append(res, o)
		}
	}
	return res
}

func sortPostings(postings []chat.Posting) {
	slices.SortFunc(postings, func(a, b chat.Posting) int {
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
}
