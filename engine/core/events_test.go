package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listener struct {
	name     string
	received []EventCode
	handle   bool
}

func (l *listener) onEvent(ctx EventContext, _ interface{}) bool {
	l.received = append(l.received, ctx.Type)
	return l.handle
}

func withEvents(t *testing.T) {
	t.Helper()
	require.NoError(t, EventInitialize())
	t.Cleanup(func() { _ = EventShutdown() })
}

func TestEventRegisterFire(t *testing.T) {
	withEvents(t)

	a := &listener{name: "a"}
	b := &listener{name: "b"}
	assert.True(t, EventRegister(EVENT_CODE_RESIZED, a, a.onEvent))
	assert.True(t, EventRegister(EVENT_CODE_RESIZED, b, b.onEvent))
	assert.False(t, EventRegister(EVENT_CODE_RESIZED, a, a.onEvent), "duplicate listener")

	assert.False(t, EventFire(EventContext{Type: EVENT_CODE_RESIZED}))
	assert.Equal(t, []EventCode{EVENT_CODE_RESIZED}, a.received)
	assert.Equal(t, []EventCode{EVENT_CODE_RESIZED}, b.received)

	// a handled event stops propagation
	a.handle = true
	assert.True(t, EventFire(EventContext{Type: EVENT_CODE_RESIZED}))
	assert.Len(t, a.received, 2)
	assert.Len(t, b.received, 1)
}

func TestEventUnregister(t *testing.T) {
	withEvents(t)

	a := &listener{name: "a"}
	b := &listener{name: "b"}
	require.True(t, EventRegister(EVENT_CODE_APPLICATION_QUIT, a, a.onEvent))
	require.True(t, EventRegister(EVENT_CODE_APPLICATION_QUIT, b, b.onEvent))

	assert.True(t, EventUnregister(EVENT_CODE_APPLICATION_QUIT, a))
	assert.False(t, EventUnregister(EVENT_CODE_APPLICATION_QUIT, a))

	EventFire(EventContext{Type: EVENT_CODE_APPLICATION_QUIT})
	assert.Empty(t, a.received)
	assert.Len(t, b.received, 1)
}

func TestEventQueue(t *testing.T) {
	withEvents(t)

	a := &listener{name: "a"}
	require.True(t, EventRegister(EVENT_CODE_KEY_PRESSED, a, a.onEvent))
	require.True(t, EventRegister(EVENT_CODE_KEY_RELEASED, a, a.onEvent))

	require.NoError(t, EventPost(EventContext{Type: EVENT_CODE_KEY_PRESSED}))
	require.NoError(t, EventPost(EventContext{Type: EVENT_CODE_KEY_RELEASED}))
	assert.Empty(t, a.received, "posted events wait for processing")

	assert.Equal(t, 2, EventProcess())
	assert.Equal(t, []EventCode{EVENT_CODE_KEY_PRESSED, EVENT_CODE_KEY_RELEASED}, a.received)
	assert.Equal(t, 0, EventProcess())
}

func TestEventQueueFull(t *testing.T) {
	withEvents(t)

	for i := 0; i < EVENT_QUEUE_CAPACITY; i++ {
		require.NoError(t, EventPost(EventContext{Type: EVENT_CODE_MOUSE_MOVED}))
	}
	assert.ErrorIs(t, EventPost(EventContext{Type: EVENT_CODE_MOUSE_MOVED}), ErrQueueFull)
}

func TestEventNotInitialized(t *testing.T) {
	require.NoError(t, EventShutdown())
	assert.False(t, EventRegister(EVENT_CODE_RESIZED, nil, func(EventContext, interface{}) bool { return true }))
	assert.False(t, EventFire(EventContext{Type: EVENT_CODE_RESIZED}))
	assert.ErrorIs(t, EventPost(EventContext{}), ErrNotInitialized)
	assert.Equal(t, 0, EventProcess())
}
