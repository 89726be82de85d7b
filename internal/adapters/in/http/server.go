package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"dilivry/internal/core/application/usecases/commands"
	"dilivry/internal/core/application/usecases/queries"
	"dilivry/internal/core/domain/model/chat"
	"dilivry/internal/core/domain/model/kernel"
	"dilivry/internal/core/domain/model/order"
	"dilivry/internal/core/domain/model/participant"
	"dilivry/internal/core/ports"
	"dilivry/internal/pkg/errs"
)

// Server exposes the marketplace operations over JSON. It coordinates
// between HTTP handlers and application use cases; all authorization
// decisions stay in the domain and are only mapped to status codes here.
type Server struct {
	createOrderHandler   commands.CreateOrderCommandHandler
	performActionHandler commands.PerformActionCommandHandler
	trackPresenceHandler commands.TrackPresenceCommandHandler
	removeMemberHandler  commands.RemoveMemberCommandHandler
	recordPostingHandler commands.RecordPostingCommandHandler

	ordersByStatusHandler    queries.OrdersByStatusQueryHandler
	ordersSubmittedByHandler queries.OrdersSubmittedByQueryHandler
	activeAssignmentsHandler queries.ActiveAssignmentsQueryHandler
	resolveChatHandler       queries.ResolvePublicChatQueryHandler
	orderPostingsHandler     queries.OrderPostingsQueryHandler
	storeStatsHandler        queries.StoreStatsQueryHandler
	userProfileHandler       queries.UserProfileQueryHandler

	logger *slog.Logger
}

// NewServer creates an HTTP server wired to the given handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	performActionHandler commands.PerformActionCommandHandler,
	trackPresenceHandler commands.TrackPresenceCommandHandler,
	removeMemberHandler commands.RemoveMemberCommandHandler,
	recordPostingHandler commands.RecordPostingCommandHandler,
	ordersByStatusHandler queries.OrdersByStatusQueryHandler,
	ordersSubmittedByHandler queries.OrdersSubmittedByQueryHandler,
	activeAssignmentsHandler queries.ActiveAssignmentsQueryHandler,
	resolveChatHandler queries.ResolvePublicChatQueryHandler,
	orderPostingsHandler queries.OrderPostingsQueryHandler,
	storeStatsHandler queries.StoreStatsQueryHandler,
	userProfileHandler queries.UserProfileQueryHandler,
	logger *slog.Logger,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	return &Server{
		createOrderHandler:       createOrderHandler,
		performActionHandler:     performActionHandler,
		trackPresenceHandler:     trackPresenceHandler,
		removeMemberHandler:      removeMemberHandler,
		recordPostingHandler:     recordPostingHandler,
		ordersByStatusHandler:    ordersByStatusHandler,
		ordersSubmittedByHandler: ordersSubmittedByHandler,
		activeAssignmentsHandler: activeAssignmentsHandler,
		resolveChatHandler:       resolveChatHandler,
		orderPostingsHandler:     orderPostingsHandler,
		storeStatsHandler:        storeStatsHandler,
		userProfileHandler:       userProfileHandler,
		logger:                   logger,
	}
}

// NewEcho builds the echo instance with the middleware every
// deployment carries: request ids and panic recovery.
func NewEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Recover())
	return e
}

// RegisterRoutes attaches all marketplace routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.POST("/actions", s.PerformAction)
	api.POST("/presence", s.TrackPresence)
	api.GET("/chats/:chat_id/orders", s.OrdersByStatus)
	api.GET("/chats/:chat_id/users/:user_id/orders", s.OrdersSubmittedBy)
	api.GET("/chats/:chat_id/users/:user_id/assignments", s.ActiveAssignments)
	api.DELETE("/chats/:chat_id/members/:user_id", s.RemoveMember)
	api.GET("/users/:user_id", s.UserProfile)
	api.GET("/users/:user_id/chat", s.ResolveChat)
	api.GET("/orders/:order_id/postings", s.OrderPostings)
	api.POST("/orders/:order_id/postings", s.RecordPosting)
	api.GET("/stats", s.Stats)
}

// ErrorResponse is the JSON error payload.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// writeError maps domain errors onto status codes. User mistakes come
// back explanatory; anything unrecognized is logged in full and stays
// opaque on the wire.
func (s *Server) writeError(ctx echo.Context, err error) error {
	var notFound *errs.ObjectNotFoundError

	switch {
	case errors.As(err, &notFound), errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, order.ErrNotPermitted):
		return ctx.JSON(http.StatusForbidden, ErrorResponse{
			Code:    http.StatusForbidden,
			Message: err.Error(),
		})
	case errors.Is(err, ports.ErrNotInAnyChat):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, ports.ErrMultipleChats):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		s.logger.Error("request failed",
			"method", ctx.Request().Method,
			"path", ctx.Request().URL.Path,
			"error", err)

		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "internal error",
		})
	}
}

// ParticipantRequest identifies the acting participant.
type ParticipantRequest struct {
	ID        uint64 `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (r ParticipantRequest) toDomain() (participant.Participant, error) {
	return participant.NewParticipant(
		kernel.UserID(r.ID), r.Username, r.FirstName, r.LastName)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// CreateOrderRequest is the payload for POST /api/v1/orders. ChatID may
// be omitted, in which case the venue is resolved from the customer's
// memberships.
type CreateOrderRequest struct {
	Customer       ParticipantRequest `json:"customer"`
	ChatID         int64              `json:"chat_id"`
	Name           string             `json:"name"`
	Description    string             `json:"description"`
	PriceAMD       uint64             `json:"price_amd"`
	DeliveryReward uint64             `json:"delivery_reward"`
	Urgency        string             `json:"urgency"`
}

// CreateOrderResponse reports the assigned order id.
type CreateOrderResponse struct {
	OrderID uint64 `json:"order_id"`
	ChatID  int64  `json:"chat_id"`
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	customer, err := req.Customer.toDomain()
	if err != nil {
		return s.writeError(ctx, err)
	}

	urgency, ok := order.UrgencyFromID(req.Urgency)
	if !ok {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "unknown urgency: " + req.Urgency,
		})
	}

	chatID, err := s.resolveVenue(ctx, customer.ID(), kernel.ChatID(req.ChatID))
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(
		customer, chatID, req.Name, req.Description,
		req.PriceAMD, req.DeliveryReward, urgency)
	if err != nil {
		return s.writeError(ctx, err)
	}

	orderID, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{
		OrderID: uint64(orderID),
		ChatID:  int64(chatID),
	})
}

// resolveVenue applies the venue rule: an explicit public chat wins,
// otherwise the participant's memberships must name exactly one.
func (s *Server) resolveVenue(ctx echo.Context, uid kernel.UserID, direct kernel.ChatID) (kernel.ChatID, error) {
	query, err := queries.NewResolvePublicChatQuery(uid, direct)
	if err != nil {
		return 0, err
	}

	ref, err := s.resolveChatHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return 0, err
	}
	return ref.ID, nil
}

// PerformActionRequest is the payload for POST /api/v1/actions. Token
// carries the encoded action exactly as it was attached to a button.
type PerformActionRequest struct {
	Actor  ParticipantRequest `json:"actor"`
	ChatID int64              `json:"chat_id"`
	Token  string             `json:"token"`
}

// PerformActionResponse reports the transition outcome. Order is null
// when the action deleted the order.
type PerformActionResponse struct {
	PreviousStatus string                 `json:"previous_status"`
	Status         string                 `json:"status,omitempty"`
	Order          *queries.OrderResponse `json:"order,omitempty"`
}

// PerformAction handles POST /api/v1/actions.
func (s *Server) PerformAction(ctx echo.Context) error {
	var req PerformActionRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	actor, err := req.Actor.toDomain()
	if err != nil {
		return s.writeError(ctx, err)
	}

	chatID, err := s.resolveVenue(ctx, actor.ID(), kernel.ChatID(req.ChatID))
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewPerformActionCommand(actor, chatID, req.Token)
	if err != nil {
		return s.writeError(ctx, err)
	}

	res, err := s.performActionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	resp := PerformActionResponse{PreviousStatus: res.PreviousStatus.String()}
	if res.Order != nil {
		resp.Status = res.Order.Status().String()
		orderResp := queries.NewOrderResponse(res.Order)
		resp.Order = &orderResp
	}
	return ctx.JSON(http.StatusOK, resp)
}

// TrackPresenceRequest is the payload for POST /api/v1/presence.
type TrackPresenceRequest struct {
	User      ParticipantRequest `json:"user"`
	ChatID    int64              `json:"chat_id"`
	ChatTitle string             `json:"chat_title"`
}

// TrackPresence handles POST /api/v1/presence.
func (s *Server) TrackPresence(ctx echo.Context) error {
	var req TrackPresenceRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	user, err := req.User.toDomain()
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewTrackPresenceCommand(user, kernel.ChatID(req.ChatID), req.ChatTitle)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err := s.trackPresenceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// OrdersByStatus handles GET /api/v1/chats/:chat_id/orders?status=.
func (s *Server) OrdersByStatus(ctx echo.Context) error {
	chatID, err := paramInt64(ctx, "chat_id")
	if err != nil {
		return s.writeError(ctx, err)
	}

	status, ok := statusFromQuery(ctx.QueryParam("status"))
	if !ok {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "unknown status: " + ctx.QueryParam("status"),
		})
	}

	query, err := queries.NewOrdersByStatusQuery(kernel.ChatID(chatID), status)
	if err != nil {
		return s.writeError(ctx, err)
	}

	orders, err := s.ordersByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, orders)
}

// OrdersSubmittedBy handles GET /api/v1/chats/:chat_id/users/:user_id/orders.
func (s *Server) OrdersSubmittedBy(ctx echo.Context) error {
	chatID, err := paramInt64(ctx, "chat_id")
	if err != nil {
		return s.writeError(ctx, err)
	}
	userID, err := paramUint64(ctx, "user_id")
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewOrdersSubmittedByQuery(kernel.ChatID(chatID), kernel.UserID(userID))
	if err != nil {
		return s.writeError(ctx, err)
	}

	orders, err := s.ordersSubmittedByHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, orders)
}

// ActiveAssignments handles GET /api/v1/chats/:chat_id/users/:user_id/assignments.
func (s *Server) ActiveAssignments(ctx echo.Context) error {
	chatID, err := paramInt64(ctx, "chat_id")
	if err != nil {
		return s.writeError(ctx, err)
	}
	userID, err := paramUint64(ctx, "user_id")
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewActiveAssignmentsQuery(kernel.ChatID(chatID), kernel.UserID(userID))
	if err != nil {
		return s.writeError(ctx, err)
	}

	orders, err := s.activeAssignmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, orders)
}

// RemoveMember handles DELETE /api/v1/chats/:chat_id/members/:user_id.
func (s *Server) RemoveMember(ctx echo.Context) error {
	chatID, err := paramInt64(ctx, "chat_id")
	if err != nil {
		return s.writeError(ctx, err)
	}
	userID, err := paramUint64(ctx, "user_id")
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewRemoveMemberCommand(kernel.ChatID(chatID), kernel.UserID(userID))
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err := s.removeMemberHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ChatResponse names a resolved venue.
type ChatResponse struct {
	ChatID int64  `json:"chat_id"`
	Title  string `json:"title"`
}

// UserResponse is the profile payload for GET /api/v1/users/:user_id.
type UserResponse struct {
	ID            uint64 `json:"id"`
	Username      string `json:"username"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	DisplayName   string `json:"display_name"`
	PrivateChatID int64  `json:"private_chat_id"`
}

// UserProfile handles GET /api/v1/users/:user_id.
func (s *Server) UserProfile(ctx echo.Context) error {
	userID, err := paramUint64(ctx, "user_id")
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewUserProfileQuery(kernel.UserID(userID))
	if err != nil {
		return s.writeError(ctx, err)
	}

	profile, err := s.userProfileHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, UserResponse{
		ID:            uint64(profile.ID),
		Username:      profile.Username,
		FirstName:     profile.FirstName,
		LastName:      profile.LastName,
		DisplayName:   profile.DisplayName,
		PrivateChatID: int64(profile.PrivateChatID),
	})
}

// ResolveChat handles GET /api/v1/users/:user_id/chat.
func (s *Server) ResolveChat(ctx echo.Context) error {
	userID, err := paramUint64(ctx, "user_id")
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewResolvePublicChatQuery(kernel.UserID(userID), 0)
	if err != nil {
		return s.writeError(ctx, err)
	}

	ref, err := s.resolveChatHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, ChatResponse{ChatID: int64(ref.ID), Title: ref.Title})
}

// PostingRequest is the payload for POST /api/v1/orders/:order_id/postings.
type PostingRequest struct {
	ChatID    int64 `json:"chat_id"`
	MessageID int64 `json:"message_id"`
}

// PostingResponse is one recorded posting location.
type PostingResponse struct {
	ChatID    int64 `json:"chat_id"`
	MessageID int64 `json:"message_id"`
}

// OrderPostings handles GET /api/v1/orders/:order_id/postings.
func (s *Server) OrderPostings(ctx echo.Context) error {
	orderID, err := paramUint64(ctx, "order_id")
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewOrderPostingsQuery(kernel.OrderID(orderID))
	if err != nil {
		return s.writeError(ctx, err)
	}

	postings, err := s.orderPostingsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	resp := make([]PostingResponse, 0, len(postings))
	for _, p := range postings {
		resp = append(resp, PostingResponse{
			ChatID:    int64(p.ChatID),
			MessageID: int64(p.MessageID),
		})
	}
	return ctx.JSON(http.StatusOK, resp)
}

// RecordPosting handles POST /api/v1/orders/:order_id/postings.
func (s *Server) RecordPosting(ctx echo.Context) error {
	orderID, err := paramUint64(ctx, "order_id")
	if err != nil {
		return s.writeError(ctx, err)
	}

	var req PostingRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	cmd, err := commands.NewRecordPostingCommand(kernel.OrderID(orderID), chat.Posting{
		ChatID:    kernel.ChatID(req.ChatID),
		MessageID: kernel.MessageID(req.MessageID),
	})
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err := s.recordPostingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusCreated)
}

// StatsResponse summarizes the stored graph.
type StatsResponse struct {
	MaxOrderID uint64 `json:"max_order_id"`
	Chats      int    `json:"chats"`
	Users      int    `json:"users"`
	Orders     int    `json:"orders"`
}

// Stats handles GET /api/v1/stats.
func (s *Server) Stats(ctx echo.Context) error {
	stats, err := s.storeStatsHandler.Handle(ctx.Request().Context(), queries.NewStoreStatsQuery())
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, StatsResponse{
		MaxOrderID: uint64(stats.MaxOrderID),
		Chats:      stats.ChatCount,
		Users:      stats.UserCount,
		Orders:     stats.OrderCount,
	})
}

func paramInt64(ctx echo.Context, name string) (int64, error) {
	v, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return v, nil
}

func paramUint64(ctx echo.Context, name string) (uint64, error) {
	v, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return v, nil
}

// statusFromQuery maps the status query parameter onto the derived
// status enum. An empty parameter defaults to published orders, the
// listing everyone browses.
func statusFromQuery(raw string) (order.Status, bool) {
	switch raw {
	case "":
		return order.Published, true
	case "unpublished":
		return order.Unpublished, true
	case "published":
		return order.Published, true
	case "assigned":
		return order.Assigned, true
	case "marked_as_delivered":
		return order.MarkedAsDelivered, true
	case "delivery_confirmed":
		return order.DeliveryConfirmed, true
	default:
		return order.Unpublished, false
	}
}
