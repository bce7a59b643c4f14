package nats

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewClient_ConnectionError(t *testing.T) {
	client, err := NewClient("nats://127.0.0.1:1", "test")

	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to NATS server")
}

func TestClient_PingWithoutConnection(t *testing.T) {
	var c *Client
	assert.ErrorIs(t, c.Ping(context.Background()), ErrNotConnected)
	assert.ErrorIs(t, (&Client{}).Ping(context.Background()), ErrNotConnected)
}
