package server

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BidumanADT/bellwood-admin/internal/pkg/logger"
)

func newTestLogger(t *testing.T) *logger.ZapLogger {
	t.Helper()
	zl, err := logger.NewZapLogger(logger.ZapConfig{Level: "error"}, nil)
	require.NoError(t, err)
	return zl
}

func TestNewGracefulServer(t *testing.T) {
	tests := []struct {
		name string
		port int
	}{
		{
			name: "Valid server creation",
			port: 8080,
		},
		{
			name: "Different port",
			port: 9090,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			gs := NewGracefulServer(e, newTestLogger(t), tt.port)
			assert.NotNil(t, gs)
		})
	}
}

func TestGracefulServer_Shutdown(t *testing.T) {
	t.Run("Shutdown running server", func(t *testing.T) {
		e := echo.New()
		e.HideBanner = true
		gs := NewGracefulServer(e, newTestLogger(t), 0)

		go func() {
			// Port 0 picks a random free port
			_ = e.Start(":0")
		}()

		// Give the listener time to come up
		time.Sleep(100 * time.Millisecond)

		err := gs.Shutdown()
		assert.NoError(t, err)
	})

	t.Run("Shutdown without start", func(t *testing.T) {
		e := echo.New()
		gs := NewGracefulServer(e, newTestLogger(t), 0)

		err := gs.Shutdown()
		assert.NoError(t, err)
	})
}

func TestNewShutdownManager(t *testing.T) {
	sm := NewShutdownManager(newTestLogger(t))
	assert.NotNil(t, sm)
}

func TestShutdownManager_Register(t *testing.T) {
	t.Run("Register single cleanup function", func(t *testing.T) {
		sm := NewShutdownManager(newTestLogger(t))
		called := false

		sm.Register(func(ctx context.Context) error {
			called = true
			return nil
		})

		err := sm.Shutdown(context.Background())
		assert.NoError(t, err)
		assert.True(t, called)
	})

	t.Run("Register multiple cleanup functions", func(t *testing.T) {
		sm := NewShutdownManager(newTestLogger(t))
		callOrder := []int{}
		var mu sync.Mutex

		for i := 0; i < 5; i++ {
			index := i
			sm.Register(func(ctx context.Context) error {
				mu.Lock()
				callOrder = append(callOrder, index)
				mu.Unlock()
				return nil
			})
		}

		err := sm.Shutdown(context.Background())
		assert.NoError(t, err)
		// Functions are called in registration order
		assert.Equal(t, []int{0, 1, 2, 3, 4}, callOrder)
	})
}

func TestShutdownManager_Shutdown(t *testing.T) {
	t.Run("Shutdown with successful cleanup functions", func(t *testing.T) {
		sm := NewShutdownManager(newTestLogger(t))
		var results []string

		sm.Register(func(ctx context.Context) error {
			results = append(results, "cleanup1")
			return nil
		})
		sm.Register(func(ctx context.Context) error {
			results = append(results, "cleanup2")
			return nil
		})

		err := sm.Shutdown(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, []string{"cleanup1", "cleanup2"}, results)
	})

	t.Run("Shutdown continues after a failing cleanup", func(t *testing.T) {
		sm := NewShutdownManager(newTestLogger(t))
		var results []string

		sm.Register(func(ctx context.Context) error {
			results = append(results, "cleanup1")
			return nil
		})
		sm.Register(func(ctx context.Context) error {
			results = append(results, "cleanup2")
			return fmt.Errorf("cleanup2 failed")
		})
		sm.Register(func(ctx context.Context) error {
			results = append(results, "cleanup3")
			return nil
		})

		err := sm.Shutdown(context.Background())
		// Errors are logged, not propagated, so later cleanups still run
		assert.NoError(t, err)
		assert.Equal(t, []string{"cleanup1", "cleanup2", "cleanup3"}, results)
	})

	t.Run("Shutdown with no cleanup functions", func(t *testing.T) {
		sm := NewShutdownManager(newTestLogger(t))
		err := sm.Shutdown(context.Background())
		assert.NoError(t, err)
	})
}

func TestShutdownManager_Integration(t *testing.T) {
	t.Run("Database, cache and queue cleanup", func(t *testing.T) {
		sm := NewShutdownManager(newTestLogger(t))

		dbClosed := false
		sm.Register(func(ctx context.Context) error {
			dbClosed = true
			return nil
		})

		cacheClosed := false
		sm.Register(func(ctx context.Context) error {
			cacheClosed = true
			return nil
		})

		mqClosed := false
		sm.Register(func(ctx context.Context) error {
			time.Sleep(50 * time.Millisecond)
			mqClosed = true
			return nil
		})

		start := time.Now()
		err := sm.Shutdown(context.Background())
		duration := time.Since(start)

		assert.NoError(t, err)
		assert.True(t, dbClosed)
		assert.True(t, cacheClosed)
		assert.True(t, mqClosed)
		assert.True(t, duration >= 50*time.Millisecond)
	})
}
