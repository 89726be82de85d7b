package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpin "dilivry/internal/adapters/in/http"
	"dilivry/internal/adapters/out/mem"
	"dilivry/internal/core/application/usecases/commands"
	"dilivry/internal/core/application/usecases/queries"
	"dilivry/internal/core/domain/model/chat"
	"dilivry/internal/core/domain/model/kernel"
	"dilivry/internal/core/domain/model/participant"
	"dilivry/internal/core/ports"
)

const chatID = kernel.ChatID(-1001)

// newTestServer wires the full stack against the in-memory store, with
// one public chat and two members already known.
func newTestServer(t *testing.T) (*httptest.Server, *mem.Store) {
	t.Helper()

	store := mem.NewStore()
	ctx := context.Background()

	c, err := chat.NewPublicChat(chatID, "Neighborhood")
	require.NoError(t, err)
	require.NoError(t, store.UpdateChat(ctx, c))

	alice, err := participant.NewParticipant(11, "alice", "Alice", "")
	require.NoError(t, err)
	bob, err := participant.NewParticipant(22, "bob", "Bob", "")
	require.NoError(t, err)
	require.NoError(t, store.UpdateUser(ctx, alice))
	require.NoError(t, store.UpdateUser(ctx, bob))
	require.NoError(t, store.AddMembers(ctx, chatID, []kernel.UserID{alice.ID(), bob.ID()}))

	server := httpin.NewServer(
		commands.NewCreateOrderCommandHandler(store),
		commands.NewPerformActionCommandHandler(store),
		commands.NewTrackPresenceCommandHandler(store),
		commands.NewRemoveMemberCommandHandler(store),
		commands.NewRecordPostingCommandHandler(store),
		queries.NewOrdersByStatusQueryHandler(store),
		queries.NewOrdersSubmittedByQueryHandler(store),
		queries.NewActiveAssignmentsQueryHandler(store),
		queries.NewResolvePublicChatQueryHandler(store),
		queries.NewOrderPostingsQueryHandler(store),
		queries.NewStoreStatsQueryHandler(store),
		queries.NewUserProfileQueryHandler(store),
		nil,
	)

	e := httpin.NewEcho()
	server.RegisterRoutes(e)

	ts := httptest.NewServer(e)
	t.Cleanup(ts.Close)
	return ts, store
}

func doJSON(t *testing.T, method, url, body string) (*http.Response, []byte) {
	t.Helper()

	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, respBody
}

func createOrder(t *testing.T, ts *httptest.Server) uint64 {
	t.Helper()

	resp, body := doJSON(t, http.MethodPost, ts.URL+"/api/v1/orders", `{
		"customer": {"id": 11, "username": "alice", "first_name": "Alice"},
		"chat_id": -1001,
		"name": "Groceries",
		"description": "milk and bread",
		"price_amd": 2500,
		"delivery_reward": 700,
		"urgency": "today"
	}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		OrderID uint64 `json:"order_id"`
		ChatID  int64  `json:"chat_id"`
	}
	require.NoError(t, json.Unmarshal(body, &created))
	require.NotZero(t, created.OrderID)
	return created.OrderID
}

func TestServer_CreateOrder(t *testing.T) {
	ts, _ := newTestServer(t)

	id := createOrder(t, ts)
	assert.Equal(t, uint64(1), id)
}

func TestServer_CreateOrder_VenueResolvedFromMembership(t *testing.T) {
	ts, _ := newTestServer(t)

	// No chat_id in the request, Alice is in exactly one chat.
	resp, body := doJSON(t, http.MethodPost, ts.URL+"/api/v1/orders", `{
		"customer": {"id": 11, "username": "alice", "first_name": "Alice"},
		"name": "Groceries",
		"urgency": "whenever"
	}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		ChatID int64 `json:"chat_id"`
	}
	require.NoError(t, json.Unmarshal(body, &created))
	assert.Equal(t, int64(chatID), created.ChatID)
}

func TestServer_CreateOrder_BadUrgency(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, _ := doJSON(t, http.MethodPost, ts.URL+"/api/v1/orders", `{
		"customer": {"id": 11, "first_name": "Alice"},
		"chat_id": -1001,
		"name": "Groceries",
		"urgency": "sometime"
	}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServer_ActionLifecycle(t *testing.T) {
	ts, _ := newTestServer(t)
	id := createOrder(t, ts)

	resp, body := doJSON(t, http.MethodPost, ts.URL+"/api/v1/actions", `{
		"actor": {"id": 11, "username": "alice", "first_name": "Alice"},
		"chat_id": -1001,
		"token": "oa publish 1"
	}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var action struct {
		PreviousStatus string `json:"previous_status"`
		Status         string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(body, &action))
	assert.Equal(t, "Not published", action.PreviousStatus)
	assert.Equal(t, "Published", action.Status)

	// Bob claims the published order through the token from the listing.
	resp, body = doJSON(t, http.MethodGet,
		ts.URL+"/api/v1/chats/-1001/orders?status=published", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var listing []struct {
		ID      uint64   `json:"ID"`
		Actions []string `json:"Actions"`
	}
	require.NoError(t, json.Unmarshal(body, &listing))
	require.Len(t, listing, 1)
	require.Equal(t, id, listing[0].ID)
	require.Equal(t, []string{"oa assign_to_me 1"}, listing[0].Actions)

	resp, _ = doJSON(t, http.MethodPost, ts.URL+"/api/v1/actions", `{
		"actor": {"id": 22, "username": "bob", "first_name": "Bob"},
		"chat_id": -1001,
		"token": "`+listing[0].Actions[0]+`"
	}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = doJSON(t, http.MethodGet,
		ts.URL+"/api/v1/chats/-1001/users/22/assignments", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &listing))
	assert.Len(t, listing, 1)
}

func TestServer_Action_NotPermitted(t *testing.T) {
	ts, _ := newTestServer(t)
	createOrder(t, ts)

	// Bob is not the owner, publishing is forbidden.
	resp, _ := doJSON(t, http.MethodPost, ts.URL+"/api/v1/actions", `{
		"actor": {"id": 22, "username": "bob", "first_name": "Bob"},
		"chat_id": -1001,
		"token": "oa publish 1"
	}`)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestServer_Action_BadToken(t *testing.T) {
	ts, _ := newTestServer(t)
	createOrder(t, ts)

	resp, _ := doJSON(t, http.MethodPost, ts.URL+"/api/v1/actions", `{
		"actor": {"id": 11, "first_name": "Alice"},
		"chat_id": -1001,
		"token": "oa fly 1"
	}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServer_Action_UnknownOrder(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, _ := doJSON(t, http.MethodPost, ts.URL+"/api/v1/actions", `{
		"actor": {"id": 11, "first_name": "Alice"},
		"chat_id": -1001,
		"token": "oa publish 404"
	}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServer_ResolveChat(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, ts.URL+"/api/v1/users/11/chat", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var ref struct {
		ChatID int64  `json:"chat_id"`
		Title  string `json:"title"`
	}
	require.NoError(t, json.Unmarshal(body, &ref))
	assert.Equal(t, int64(chatID), ref.ChatID)
	assert.Equal(t, "Neighborhood", ref.Title)
}

func TestServer_ResolveChat_NotInAnyChat(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, _ := doJSON(t, http.MethodGet, ts.URL+"/api/v1/users/999/chat", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServer_ResolveChat_Ambiguous(t *testing.T) {
	ts, store := newTestServer(t)
	ctx := context.Background()

	second, err := chat.NewPublicChat(-1002, "Second")
	require.NoError(t, err)
	require.NoError(t, store.UpdateChat(ctx, second))
	require.NoError(t, store.AddMembers(ctx, second.ID(), []kernel.UserID{11}))

	resp, _ := doJSON(t, http.MethodGet, ts.URL+"/api/v1/users/11/chat", "")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestServer_Presence(t *testing.T) {
	ts, store := newTestServer(t)

	resp, _ := doJSON(t, http.MethodPost, ts.URL+"/api/v1/presence", `{
		"user": {"id": 33, "username": "carol", "first_name": "Carol"},
		"chat_id": -1001,
		"chat_title": "Neighborhood"
	}`)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	refs, err := store.ChatsOf(context.Background(), 33)
	require.NoError(t, err)
	assert.Len(t, refs, 1)
}

func TestServer_RemoveMember(t *testing.T) {
	ts, store := newTestServer(t)

	resp, _ := doJSON(t, http.MethodDelete, ts.URL+"/api/v1/chats/-1001/members/22", "")
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	refs, err := store.ChatsOf(context.Background(), 22)
	require.NoError(t, err)
	assert.Empty(t, refs)
}

func TestServer_Postings(t *testing.T) {
	ts, _ := newTestServer(t)
	createOrder(t, ts)

	resp, _ := doJSON(t, http.MethodPost, ts.URL+"/api/v1/orders/1/postings", `{
		"chat_id": -1001,
		"message_id": 42
	}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, http.MethodGet, ts.URL+"/api/v1/orders/1/postings", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var postings []struct {
		ChatID    int64 `json:"chat_id"`
		MessageID int64 `json:"message_id"`
	}
	require.NoError(t, json.Unmarshal(body, &postings))
	require.Len(t, postings, 1)
	assert.Equal(t, int64(-1001), postings[0].ChatID)
	assert.Equal(t, int64(42), postings[0].MessageID)
}

func TestServer_RequestIDHeader(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, _ := doJSON(t, http.MethodGet, ts.URL+"/health", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))
}

func TestServer_Stats(t *testing.T) {
	ts, _ := newTestServer(t)
	createOrder(t, ts)

	resp, body := doJSON(t, http.MethodGet, ts.URL+"/api/v1/stats", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stats struct {
		MaxOrderID uint64 `json:"max_order_id"`
		Chats      int    `json:"chats"`
		Users      int    `json:"users"`
		Orders     int    `json:"orders"`
	}
	require.NoError(t, json.Unmarshal(body, &stats))
	assert.Equal(t, uint64(1), stats.MaxOrderID)
	assert.Equal(t, 1, stats.Chats)
	assert.Equal(t, 2, stats.Users)
	assert.Equal(t, 1, stats.Orders)
}

func TestServer_OrdersListing_DefaultsToPublished(t *testing.T) {
	ts, _ := newTestServer(t)
	createOrder(t, ts)

	// The fresh order is still unpublished, so the default listing is
	// empty.
	resp, body := doJSON(t, http.MethodGet, ts.URL+"/api/v1/chats/-1001/orders", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var listing []struct {
		ID     uint64 `json:"ID"`
		Status string `json:"Status"`
	}
	require.NoError(t, json.Unmarshal(body, &listing))
	assert.Empty(t, listing)

	resp, _ = doJSON(t, http.MethodPost, ts.URL+"/api/v1/actions", `{
		"actor": {"id": 11, "username": "alice", "first_name": "Alice"},
		"chat_id": -1001,
		"token": "oa publish 1"
	}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = doJSON(t, http.MethodGet, ts.URL+"/api/v1/chats/-1001/orders", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &listing))
	require.Len(t, listing, 1)
	assert.Equal(t, "Published", listing[0].Status)
}

func TestServer_UserProfile(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, ts.URL+"/api/v1/users/11", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var profile struct {
		ID            uint64 `json:"id"`
		Username      string `json:"username"`
		DisplayName   string `json:"display_name"`
		PrivateChatID int64  `json:"private_chat_id"`
	}
	require.NoError(t, json.Unmarshal(body, &profile))
	assert.Equal(t, uint64(11), profile.ID)
	assert.Equal(t, "alice", profile.Username)
	assert.Equal(t, "@alice Alice", profile.DisplayName)
	assert.Equal(t, int64(11), profile.PrivateChatID)
}

func TestServer_UserProfile_Unknown(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, _ := doJSON(t, http.MethodGet, ts.URL+"/api/v1/users/99", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// failingStatsStore simulates a backend outage on the stats read.
type failingStatsStore struct {
	*mem.Store
}

func (f failingStatsStore) Stats(context.Context) (ports.StoreStats, error) {
	return ports.StoreStats{}, errors.New("dial tcp 127.0.0.1:6379: connect: connection refused")
}

func TestServer_TechnicalErrorIsOpaqueButLogged(t *testing.T) {
	store := failingStatsStore{Store: mem.NewStore()}
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	server := httpin.NewServer(
		commands.NewCreateOrderCommandHandler(store),
		commands.NewPerformActionCommandHandler(store),
		commands.NewTrackPresenceCommandHandler(store),
		commands.NewRemoveMemberCommandHandler(store),
		commands.NewRecordPostingCommandHandler(store),
		queries.NewOrdersByStatusQueryHandler(store),
		queries.NewOrdersSubmittedByQueryHandler(store),
		queries.NewActiveAssignmentsQueryHandler(store),
		queries.NewResolvePublicChatQueryHandler(store),
		queries.NewOrderPostingsQueryHandler(store),
		queries.NewStoreStatsQueryHandler(store),
		queries.NewUserProfileQueryHandler(store),
		logger,
	)

	e := httpin.NewEcho()
	server.RegisterRoutes(e)
	ts := httptest.NewServer(e)
	t.Cleanup(ts.Close)

	resp, body := doJSON(t, http.MethodGet, ts.URL+"/api/v1/stats", "")
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var payload struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.Equal(t, "internal error", payload.Message)
	assert.NotContains(t, string(body), "connection refused")

	assert.Contains(t, logs.String(), "request failed")
	assert.Contains(t, logs.String(), "connection refused")
}
