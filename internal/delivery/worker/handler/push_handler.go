// Package handler contains the Pub/Sub push handlers of the worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"bakery/config"
	deliverycontext "bakery/internal/delivery/context"
	"bakery/internal/domain/entity"
	domainerrors "bakery/internal/domain/errors"
	"bakery/internal/domain/service"
	"bakery/internal/usecase"
	"bakery/internal/util"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

const (
	providerGoogle = "google"
	envDevelop     = "develop"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// tokenValidator validates a Google signed OIDC token for audience.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler turns order events into activity log entries
type PushHandler struct {
	verifyPushAuth bool
	pushAudience   string
	validateToken  tokenValidator
	currency       string
	logger         *slog.Logger
	orderUC        usecase.OrderUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	OrderUC usecase.OrderUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Google signs push requests; the local publisher does not
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == providerGoogle &&
		params.Config.Env.Env != envDevelop

	pushAudience := ""
	if params.Config.PubSub != nil {
		pushAudience = params.Config.PubSub.PushAudience
	}

	currency := ""
	if params.Config.Bakery != nil {
		currency = params.Config.Bakery.CurrencySymbol
	}

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		pushAudience:   pushAudience,
		validateToken:  idtoken.Validate,
		currency:       currency,
		logger:         params.Logger,
		orderUC:        params.OrderUC,
	}
}

// HandlePush handles incoming Pub/Sub push messages. Malformed messages and
// permanent failures are acknowledged, transient failures answer 503 so the
// message is redelivered.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.OrderEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse order event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	if event.OrderID <= 0 {
		h.logger.Error("[Worker] Order event without order id", slog.String("type", string(event.Type)))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	if err := h.processEvent(ctx, reqLogger, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process order event",
			slog.String("type", string(event.Type)),
			slog.Int64("order_id", event.OrderID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}
	}

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers message attributes, then the event, then the
// request context, and generates an id as a last resort.
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.OrderEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.RequestIDFrom(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

func (h *PushHandler) processEvent(ctx context.Context, logger *slog.Logger, event *service.OrderEvent) error {
	attrs := []any{
		slog.String("type", string(event.Type)),
		slog.Int64("order_id", event.OrderID),
		slog.Int64("actor_id", event.ActorID),
		slog.Time("occurred_at", event.OccurredAt),
	}

	if event.Type == service.OrderEventDeleted {
		logger.InfoContext(ctx, "[Worker] Order activity", attrs...)

		return nil
	}

	order, err := h.orderUC.Load(ctx, event.OrderID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrEntityNotFound) {
			// Deleted after the event was published
			logger.InfoContext(ctx, "[Worker] Order no longer exists", attrs...)

			return nil
		}

		return newRetryableError(err)
	}

	attrs = append(attrs,
		slog.String("state", order.State.String()),
		slog.String("due", order.DueDate.Format(entity.DueDateLayout)+" "+order.DueTime),
		slog.Int("items", len(order.Items)),
		slog.String("total", util.FormatCurrency(order.TotalPrice(), h.currency)),
	)
	if order.PickupLocation != nil {
		attrs = append(attrs, slog.String("pickup_location", order.PickupLocation.Name))
	}
	if order.Customer != nil {
		attrs = append(attrs, slog.String("customer", order.Customer.FullName))
	}
	if event.Message != "" {
		attrs = append(attrs, slog.String("message", event.Message))
	}

	logger.InfoContext(ctx, "[Worker] Order activity", attrs...)

	return nil
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	payload, err := h.validateToken(req.Context(), token, h.audience(req))
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, _ := payload.Claims["email_verified"].(bool); !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}

// audience is the configured push endpoint, or the URL the request was sent
// to as seen by the client in front of any TLS terminating proxy.
func (h *PushHandler) audience(req *http.Request) string {
	if h.pushAudience != "" {
		return h.pushAudience
	}

	scheme := "http"
	if req.TLS != nil {
		scheme = "https"
	}
	if proto := req.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme, _, _ = strings.Cut(proto, ",")
		scheme = strings.TrimSpace(scheme)
	}

	host := req.Host
	if forwarded := req.Header.Get("X-Forwarded-Host"); forwarded != "" {
		host, _, _ = strings.Cut(forwarded, ",")
		host = strings.TrimSpace(host)
	}

	return fmt.Sprintf("%s://%s%s", scheme, host, req.URL.Path)
}
