package lock

import (
	"context"
	"testing"
	"time"

	"github.com/saviored/focuscastle/internal/infrastructure/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *UserLockManager {
	return NewUserLockManager(logger.NewLogger("test", "error"))
}

func TestLockAndUnlock(t *testing.T) {
	m := newTestManager()

	require.NoError(t, m.Lock(context.Background(), 1))
	m.Unlock(1)
	require.NoError(t, m.Lock(context.Background(), 1))
	m.Unlock(1)
}

func TestLockIsPerUser(t *testing.T) {
	m := newTestManager()

	require.NoError(t, m.Lock(context.Background(), 1))
	defer m.Unlock(1)

	// A different user's lock is independent
	require.NoError(t, m.Lock(context.Background(), 2))
	m.Unlock(2)
}

func TestLockGivenUpDoesNotPoisonMutex(t *testing.T) {
	m := newTestManager()

	require.NoError(t, m.Lock(context.Background(), 1))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := m.Lock(ctx, 1)
	require.Error(t, err)

	m.Unlock(1)

	// The abandoned waiter must not keep the mutex for itself; a fresh
	// acquisition has to go through once the holder releases.
	done := make(chan error, 1)
	go func() {
		done <- m.Lock(context.Background(), 1)
	}()
	select {
	case err := <-done:
		require.NoError(t, err)
		m.Unlock(1)
	case <-time.After(2 * time.Second):
		t.Fatal("lock stayed held after an abandoned acquisition attempt")
	}
}

func TestTryLock(t *testing.T) {
	m := newTestManager()

	assert.True(t, m.TryLock(1))
	assert.False(t, m.TryLock(1))
	m.Unlock(1)
	assert.True(t, m.TryLock(1))
	m.Unlock(1)
}
