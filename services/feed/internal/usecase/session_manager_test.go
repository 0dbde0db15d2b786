package usecase

import (
	"testing"
	"time"

	"github.com/Chopaholic/MotorAdverts/services/feed/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionManager_CreateAndGet(t *testing.T) {
	m := NewSessionManager(newFakeFeedRepo())
	defer m.Close()

	id, p := m.Create(entity.Filters{Category: "Cars"})
	require.NotEmpty(t, id)

	got, err := m.Get(id)
	require.NoError(t, err)
	assert.Same(t, p, got)
	assert.Equal(t, "Cars", got.Filters().Category)

	_, err = m.Get("unknown")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionManager_IdleExpiry(t *testing.T) {
	m := NewSessionManager(newFakeFeedRepo())
	defer m.Close()

	id, _ := m.Create(entity.Filters{})

	now := time.Now()
	m.now = func() time.Time { return now.Add(sessionIdleTTL + time.Minute) }

	_, err := m.Get(id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
