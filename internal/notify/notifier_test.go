package notify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Domenick1991/staybooking/config"
	"github.com/Domenick1991/staybooking/internal/kafka"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestDispatcher_IsVerifiedNumber(t *testing.T) {
	d := NewDispatcher(config.NotifyConfig{
		VerifiedPhoneNumbers: []string{"+15550001111"},
	}, zap.NewNop())

	assert.True(t, d.IsVerifiedNumber("+15550001111"))
	assert.False(t, d.IsVerifiedNumber("+15550002222"))
	assert.False(t, d.IsVerifiedNumber(""))
}

func TestDispatcher_SendSMSToVerifiedNumber(t *testing.T) {
	var received bool
	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received = true
		assert.Equal(t, "test-key", r.Header.Get("apiKey"))
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "+15550001111", r.Form.Get("to"))
		w.WriteHeader(http.StatusCreated)
	}))
	defer gateway.Close()

	d := NewDispatcher(config.NotifyConfig{
		SMSGatewayURL:        gateway.URL,
		SMSAPIKey:            "test-key",
		SMSSender:            "STAYBOOKING",
		VerifiedPhoneNumbers: []string{"+15550001111"},
	}, zap.NewNop())

	event := kafka.BookingEvent{
		Type:       kafka.EventBookingCreated,
		Reference:  "ref-1",
		OwnerPhone: "+15550001111",
		GuestName:  "guest",
	}
	assert.NoError(t, d.Dispatch(context.Background(), event))
	assert.True(t, received)
}

func TestDispatcher_SkipsUnverifiedNumber(t *testing.T) {
	var received bool
	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received = true
	}))
	defer gateway.Close()

	d := NewDispatcher(config.NotifyConfig{
		SMSGatewayURL: gateway.URL,
		SMSAPIKey:     "test-key",
	}, zap.NewNop())

	event := kafka.BookingEvent{
		Type:       kafka.EventBookingCreated,
		OwnerPhone: "+15550009999",
	}
	assert.NoError(t, d.Dispatch(context.Background(), event))
	assert.False(t, received)
}

func TestDispatcher_GatewayFailureIsSwallowed(t *testing.T) {
	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer gateway.Close()

	d := NewDispatcher(config.NotifyConfig{
		SMSGatewayURL:        gateway.URL,
		SMSAPIKey:            "test-key",
		VerifiedPhoneNumbers: []string{"+15550001111"},
	}, zap.NewNop())

	event := kafka.BookingEvent{
		Type:       kafka.EventBookingCancelled,
		OwnerPhone: "+15550001111",
	}
	assert.NoError(t, d.Dispatch(context.Background(), event))
}

func TestDispatcher_UnknownEventType(t *testing.T) {
	d := NewDispatcher(config.NotifyConfig{}, zap.NewNop())
	assert.NoError(t, d.Dispatch(context.Background(), kafka.BookingEvent{Type: "mystery"}))
}
