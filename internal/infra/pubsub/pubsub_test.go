package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bakery/config"
	"bakery/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishOrderEvent(t *testing.T) {
	var (
		received  PubSubPushMessage
		requestID string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	event := &service.OrderEvent{
		RequestID:  "req-1",
		Type:       service.OrderEventStateChanged,
		OrderID:    42,
		State:      "BAKING",
		ActorID:    3,
		OccurredAt: time.Date(2024, 3, 13, 10, 0, 0, 0, time.UTC),
	}

	require.NoError(t, publisher.PublishOrderEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.NotEmpty(t, received.Message.MessageID)
	assert.Equal(t, "order.state_changed", received.Message.Attributes["event_type"])
	assert.Equal(t, "42", received.Message.Attributes["order_id"])
	assert.Equal(t, "BAKING", received.Message.Attributes["state"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded service.OrderEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	err := publisher.PublishOrderEvent(context.Background(), &service.OrderEvent{Type: service.OrderEventSaved, OrderID: 1})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestEventAttributes_OmitsEmptyValues(t *testing.T) {
	attrs := eventAttributes(&service.OrderEvent{Type: service.OrderEventDeleted, OrderID: 7})

	assert.Equal(t, map[string]string{"event_type": "order.deleted", "order_id": "7"}, attrs)
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name      string
		cfg       *config.PubSubConfig
		wantNoop  bool
		wantLocal bool
		wantErr   string
	}{
		{name: "nil config", cfg: nil, wantNoop: true},
		{name: "empty provider", cfg: &config.PubSubConfig{}, wantNoop: true},
		{name: "noop provider", cfg: &config.PubSubConfig{Provider: ProviderNoop}, wantNoop: true},
		{name: "local", cfg: &config.PubSubConfig{Provider: ProviderLocal, LocalEndpoint: "http://localhost:8085/push"}, wantLocal: true},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: ProviderLocal}, wantErr: "local endpoint is required"},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: ProviderGoogle, TopicID: "orders"}, wantErr: "project ID is required"},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: ProviderGoogle, ProjectID: "bakery"}, wantErr: "topic ID is required"},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: "unknown pubsub provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: discardLogger(),
			})

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}
			require.NoError(t, err)

			if tt.wantNoop {
				assert.IsType(t, &noopPublisher{}, publisher)
				assert.NoError(t, publisher.PublishOrderEvent(context.Background(), &service.OrderEvent{Type: service.OrderEventSaved}))
			}
			if tt.wantLocal {
				assert.IsType(t, &localHTTPPublisher{}, publisher)
			}

			lc.RequireStart()
			lc.RequireStop()
		})
	}
}

func TestNewNoopPublisher(t *testing.T) {
	publisher := NewNoopPublisher(discardLogger())

	require.NoError(t, publisher.PublishOrderEvent(context.Background(), &service.OrderEvent{Type: service.OrderEventSaved, OrderID: 1}))
	require.NoError(t, publisher.Close())
}
