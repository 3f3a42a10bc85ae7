package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bakery/config"
	"bakery/internal/domain/entity"
	domainerrors "bakery/internal/domain/errors"
	"bakery/internal/domain/service"
	mockUsecase "bakery/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestHandler(t *testing.T, provider string, logs *bytes.Buffer) (*PushHandler, *mockUsecase.MockOrderUsecase) {
	t.Helper()

	cfg := &config.Config{
		PubSub: &config.PubSubConfig{Provider: provider},
		Bakery: &config.BakeryConfig{CurrencySymbol: "EUR "},
	}
	cfg.Env.Env = "production"

	orderUC := mockUsecase.NewMockOrderUsecase(t)
	h := NewPushHandler(PushHandlerParams{
		Config:  cfg,
		Logger:  slog.New(slog.NewTextHandler(logs, nil)),
		OrderUC: orderUC,
	})

	return h, orderUC
}

func pushBody(t *testing.T, event *service.OrderEvent, attrs map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attrs
	msg.Message.MessageID = "1"
	msg.Subscription = "projects/local/subscriptions/order-events-sub"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = h.HandlePush(c)

	return rec
}

func testOrder() *entity.Order {
	return &entity.Order{
		ID:             7,
		DueDate:        time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC),
		DueTime:        "16:00",
		State:          entity.OrderStateConfirmed,
		PickupLocation: &entity.PickupLocation{ID: 1, Name: "Store"},
		Customer:       &entity.Customer{FullName: "Jane Doe"},
		Items: []*entity.OrderItem{
			{Product: &entity.Product{ID: 1, Name: "Bread", Price: 250}, Quantity: 5},
		},
	}
}

func TestHandlePush_LogsOrderActivity(t *testing.T) {
	var logs bytes.Buffer
	h, orderUC := newTestHandler(t, "local", &logs)

	orderUC.EXPECT().Load(mock.Anything, int64(7)).Return(testOrder(), nil)

	event := &service.OrderEvent{Type: service.OrderEventStateChanged, OrderID: 7, ActorID: 2, RequestID: "evt-req"}
	rec := servePush(h, pushBody(t, event, map[string]string{"request_id": "attr-req"}), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	out := logs.String()
	assert.Contains(t, out, "request_id=attr-req")
	assert.Contains(t, out, "state=CONFIRMED")
	assert.Contains(t, out, "pickup_location=Store")
	assert.Contains(t, out, "12.50")
}

func TestHandlePush_RequestIDFromEvent(t *testing.T) {
	var logs bytes.Buffer
	h, orderUC := newTestHandler(t, "local", &logs)

	orderUC.EXPECT().Load(mock.Anything, int64(7)).Return(testOrder(), nil)

	event := &service.OrderEvent{Type: service.OrderEventSaved, OrderID: 7, RequestID: "evt-req"}
	rec := servePush(h, pushBody(t, event, nil), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, logs.String(), "request_id=evt-req")
}

func TestHandlePush_DeletedOrderSkipsLoad(t *testing.T) {
	var logs bytes.Buffer
	h, _ := newTestHandler(t, "local", &logs)

	event := &service.OrderEvent{Type: service.OrderEventDeleted, OrderID: 7}
	rec := servePush(h, pushBody(t, event, nil), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, logs.String(), "order.deleted")
}

func TestHandlePush_LoadFailures(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "order gone", err: domainerrors.ErrEntityNotFound, wantCode: http.StatusOK},
		{name: "database down", err: errors.New("connection refused"), wantCode: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			h, orderUC := newTestHandler(t, "local", &logs)

			orderUC.EXPECT().Load(mock.Anything, int64(7)).Return(nil, tt.err)

			event := &service.OrderEvent{Type: service.OrderEventSaved, OrderID: 7}
			rec := servePush(h, pushBody(t, event, nil), nil)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandlePush_MalformedMessage(t *testing.T) {
	var logs bytes.Buffer
	h, _ := newTestHandler(t, "local", &logs)

	rec := servePush(h, `{"message":{"data":"%%%"}}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	data := base64.StdEncoding.EncodeToString([]byte("not json"))
	rec = servePush(h, `{"message":{"data":"`+data+`"}}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlePush_GoogleTokenVerification(t *testing.T) {
	var logs bytes.Buffer
	h, _ := newTestHandler(t, "google", &logs)
	require.True(t, h.verifyPushAuth)

	var gotAudience string
	h.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
		gotAudience = audience
		if token != "good" {
			return nil, errors.New("bad token")
		}

		return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
	}

	event := &service.OrderEvent{Type: service.OrderEventDeleted, OrderID: 7}
	body := pushBody(t, event, nil)

	rec := servePush(h, body, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = servePush(h, body, http.Header{"Authorization": {"Bearer bad"}})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = servePush(h, body, http.Header{"Authorization": {"Bearer good"}})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://example.com/push", gotAudience)
}

func TestNewPushHandler_SkipsVerificationInDevelop(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: "google"}}
	cfg.Env.Env = "develop"

	h := NewPushHandler(PushHandlerParams{Config: cfg, Logger: slog.Default()})

	assert.False(t, h.verifyPushAuth)
	assert.Empty(t, h.currency)
}

func TestHandlePush_MissingOrderID(t *testing.T) {
	var logs bytes.Buffer
	h, _ := newTestHandler(t, "local", &logs)

	event := &service.OrderEvent{Type: service.OrderEventSaved}
	rec := servePush(h, pushBody(t, event, nil), nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVerifyPubSubToken_RequiresVerifiedEmail(t *testing.T) {
	tests := []struct {
		name    string
		claims  map[string]any
		wantErr bool
	}{
		{name: "verified", claims: map[string]any{"email_verified": true}},
		{name: "not verified", claims: map[string]any{"email_verified": false}, wantErr: true},
		{name: "claim missing", claims: map[string]any{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			h, _ := newTestHandler(t, "google", &logs)
			h.validateToken = func(context.Context, string, string) (*idtoken.Payload, error) {
				return &idtoken.Payload{Issuer: "accounts.google.com", Claims: tt.claims}, nil
			}

			req := httptest.NewRequest(http.MethodPost, "/push", nil)
			req.Header.Set("Authorization", "Bearer token")

			err := h.verifyPubSubToken(req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPushHandler_Audience(t *testing.T) {
	var logs bytes.Buffer
	h, _ := newTestHandler(t, "google", &logs)

	req := httptest.NewRequest(http.MethodPost, "/push", nil)
	assert.Equal(t, "http://example.com/push", h.audience(req))

	req.Header.Set("X-Forwarded-Proto", "https")
	req.Header.Set("X-Forwarded-Host", "worker.bakery.example.com")
	assert.Equal(t, "https://worker.bakery.example.com/push", h.audience(req))

	h.pushAudience = "https://push.bakery.example.com/push"
	assert.Equal(t, "https://push.bakery.example.com/push", h.audience(req))
}

func TestNewPushHandler_ConfiguredAudience(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: "google", PushAudience: "https://push.example.com/push"}}
	cfg.Env.Env = "production"

	h := NewPushHandler(PushHandlerParams{Config: cfg, Logger: slog.Default()})

	assert.True(t, h.verifyPushAuth)
	assert.Equal(t, "https://push.example.com/push", h.audience(httptest.NewRequest(http.MethodPost, "/push", nil)))
}
