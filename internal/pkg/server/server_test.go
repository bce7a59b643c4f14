package server

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestShutdownManager_ReverseOrderAndContinuesOnError(t *testing.T) {
	sm := NewShutdownManager()
	var order []string

	sm.Register("db", func(context.Context) error {
		order = append(order, "db")
		return nil
	})
	sm.Register("nats", func(context.Context) error {
		order = append(order, "nats")
		return errors.New("drain failed")
	})
	sm.Register("scheduler", func(context.Context) error {
		order = append(order, "scheduler")
		return nil
	})

	failed := sm.Shutdown(context.Background())

	assert.Equal(t, 1, failed)
	assert.Equal(t, []string{"scheduler", "nats", "db"}, order)
}

func TestGracefulServer_Shutdown(t *testing.T) {
	e := echo.New()
	sm := NewShutdownManager()
	called := false
	sm.Register("x", func(context.Context) error {
		called = true
		return nil
	})

	s := NewGracefulServer(e, "127.0.0.1", 0, time.Second, sm)
	assert.NoError(t, s.Shutdown())
	assert.True(t, called)
}
