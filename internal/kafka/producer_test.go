package kafka

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProducer_PublishWithRetry_ExhaustsRetries(t *testing.T) {
	p := NewProducer([]string{"localhost:9092"})
	defer p.Close()

	// Неразбираемый payload валит каждую попытку
	err := p.PublishWithRetry(context.Background(), "booking-notifications", "ref-1", make(chan int), 2)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed after 2 retries")
}
