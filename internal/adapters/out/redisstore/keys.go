package redisstore

import (
	"fmt"

	"dilivry/internal/core/domain/model/kernel"
)

// DefaultKeyPrefix namespaces every key the store writes, so one Redis
// instance can serve several deployments.
const DefaultKeyPrefix = "dili"

// keys builds the flat key schema:
//
//	<p>_num_orders                    counter, source of order ids
//	<p>_users                         Set<UserID>
//	<p>_user:<uid>                    JSON participant
//	<p>_user:<uid>:orders             Set<OrderID>
//	<p>_user:<uid>:pub_chats          Set<ChatID>
//	<p>_pub_chats                     Set<ChatID>
//	<p>_pub_chat:<cid>:name           string
//	<p>_pub_chat:<cid>:members        Set<UserID>
//	<p>_pub_chat:<cid>:orders         Set<OrderID>
//	<p>_pub_chat:<cid>:order:<oid>    JSON order
//	<p>_order_msgs:<oid>              Set<JSON posting>
type keys struct {
	prefix string
}

func (k keys) key(suffix string) string {
	return k.prefix + "_" + suffix
}

func (k keys) numOrders() string {
	return k.key("num_orders")
}

func (k keys) users() string {
	return k.key("users")
}

func (k keys) user(uid kernel.UserID) string {
	return k.key(fmt.Sprintf("user:%d", uid))
}

func (k keys) userOrders(uid kernel.UserID) string {
	return k.user(uid) + ":orders"
}

func (k keys) userPubChats(uid kernel.UserID) string {
	return k.user(uid) + ":pub_chats"
}

func (k keys) pubChats() string {
	return k.key("pub_chats")
}

func (k keys) pubChat(cid kernel.ChatID) string {
	return k.key(fmt.Sprintf("pub_chat:%d", cid))
}

func (k keys) pubChatName(cid kernel.ChatID) string {
	return k.pubChat(cid) + ":name"
}

func (k keys) pubChatMembers(cid kernel.ChatID) string {
	return k.pubChat(cid) + ":members"
}

func (k keys) pubChatOrders(cid kernel.ChatID) string {
	return k.pubChat(cid) + ":orders"
}

func (k keys) pubChatOrder(cid kernel.ChatID, oid kernel.OrderID) string {
	return fmt.Sprintf("%s:order:%d", k.pubChat(cid), oid)
}

func (k keys) orderPostings(oid kernel.OrderID) string {
	return k.key(fmt.Sprintf("order_msgs:%d", oid))
}
