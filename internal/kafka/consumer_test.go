package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestConsumer_dispatch(t *testing.T) {
	c := &Consumer{logger: zap.NewNop()}
	ctx := context.Background()

	t.Run("decoded event reaches handler", func(t *testing.T) {
		payload, err := json.Marshal(BookingEvent{
			Type:      EventBookingCreated,
			Reference: "ref-1",
			ListingID: 7,
		})
		assert.NoError(t, err)

		var handled BookingEvent
		err = c.dispatch(ctx, kafkaGo.Message{Key: []byte("ref-1"), Value: payload}, func(_ context.Context, event BookingEvent) error {
			handled = event
			return nil
		})

		assert.NoError(t, err)
		assert.Equal(t, EventBookingCreated, handled.Type)
		assert.Equal(t, "ref-1", handled.Reference)
		assert.Equal(t, int64(7), handled.ListingID)
	})

	t.Run("undecodable payload is skipped", func(t *testing.T) {
		called := false
		err := c.dispatch(ctx, kafkaGo.Message{Value: []byte("not json")}, func(context.Context, BookingEvent) error {
			called = true
			return nil
		})

		assert.NoError(t, err)
		assert.False(t, called)
	})

	t.Run("handler error stops the loop", func(t *testing.T) {
		payload, _ := json.Marshal(BookingEvent{Type: EventBookingCancelled})
		expected := errors.New("smtp down")

		err := c.dispatch(ctx, kafkaGo.Message{Value: payload}, func(context.Context, BookingEvent) error {
			return expected
		})

		assert.ErrorIs(t, err, expected)
	})
}
