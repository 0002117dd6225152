package core

import (
	"fmt"

	"github.com/spaghettifunk/sketchbook/engine/containers"
)

// System internal event codes. Applications should use codes beyond 255.
type EventCode uint16

const (
	// Shuts the application down on the next frame.
	EVENT_CODE_APPLICATION_QUIT EventCode = 0x01
	// Keyboard key pressed. Data: *KeyEvent
	EVENT_CODE_KEY_PRESSED EventCode = 0x02
	// Keyboard key released. Data: *KeyEvent
	EVENT_CODE_KEY_RELEASED EventCode = 0x03
	// Mouse button pressed. Data: *MouseEvent
	EVENT_CODE_BUTTON_PRESSED EventCode = 0x04
	// Mouse button released. Data: *MouseEvent
	EVENT_CODE_BUTTON_RELEASED EventCode = 0x05
	// Mouse moved. Data: *MouseEvent
	EVENT_CODE_MOUSE_MOVED EventCode = 0x06
	// Mouse wheel. Data: *MouseEvent
	EVENT_CODE_MOUSE_WHEEL EventCode = 0x07
	// Framebuffer resized. Data: *ResizeEvent
	EVENT_CODE_RESIZED EventCode = 0x08
	// Configuration file reloaded. Data: the new configuration.
	EVENT_CODE_CONFIG_RELOADED EventCode = 0x09
	// Camera reset requested.
	EVENT_CODE_CAMERA_RESET EventCode = 0x0A

	MAX_EVENT_CODE EventCode = 0xFF
)

// Number of events that can wait for the next EventProcess call.
const EVENT_QUEUE_CAPACITY = 256

type EventContext struct {
	Type EventCode
	Data interface{}
}

type KeyEvent struct {
	KeyCode KeyCode
}

type MouseEvent struct {
	Button Button
	PosX   uint16
	PosY   uint16
	Scroll int8
}

type ResizeEvent struct {
	Width  uint32
	Height uint32
}

// Should return true if handled.
type FnOnEvent func(ctx EventContext, listener interface{}) bool

type registeredEvent struct {
	listener interface{}
	callback FnOnEvent
}

type eventSystemState struct {
	registered map[EventCode][]registeredEvent
	queue      *containers.RingQueue[EventContext]
}

var eventState *eventSystemState

func EventInitialize() error {
	if eventState != nil {
		return nil
	}
	eventState = &eventSystemState{
		registered: make(map[EventCode][]registeredEvent),
		queue:      containers.NewRingQueue[EventContext](EVENT_QUEUE_CAPACITY),
	}
	return nil
}

// EventShutdown drops every registration and queued event.
func EventShutdown() error {
	eventState = nil
	return nil
}

/**
 * Register to listen for when events are sent with the provided code. A listener
 * can only be registered once per code; a duplicate returns false.
 * @param code The event code to listen for.
 * @param listener A comparable listener instance. Can be nil.
 * @param onEvent The callback invoked when the event code is fired.
 * @returns true if the event is successfully registered; otherwise false.
 */
func EventRegister(code EventCode, listener interface{}, onEvent FnOnEvent) bool {
	if eventState == nil || onEvent == nil {
		return false
	}
	for _, e := range eventState.registered[code] {
		if e.listener == listener {
			LogWarn("listener already registered for event code %d", code)
			return false
		}
	}
	eventState.registered[code] = append(eventState.registered[code], registeredEvent{
		listener: listener,
		callback: onEvent,
	})
	return true
}

// EventUnregister removes the registration of listener for code. Returns
// false if there was none.
func EventUnregister(code EventCode, listener interface{}) bool {
	if eventState == nil {
		return false
	}
	events := eventState.registered[code]
	for i, e := range events {
		if e.listener == listener {
			eventState.registered[code] = append(events[:i], events[i+1:]...)
			return true
		}
	}
	return false
}

/**
 * Fires an event to listeners of the given code right away. If an event handler
 * returns true, the event is considered handled and is not passed on to any
 * more listeners.
 * @returns true if handled, otherwise false.
 */
func EventFire(ctx EventContext) bool {
	if eventState == nil {
		return false
	}
	for _, e := range eventState.registered[ctx.Type] {
		if e.callback(ctx, e.listener) {
			return true
		}
	}
	return false
}

// EventPost queues ctx for the next EventProcess call.
func EventPost(ctx EventContext) error {
	if eventState == nil {
		return ErrNotInitialized
	}
	if err := eventState.queue.Enqueue(ctx); err != nil {
		return fmt.Errorf("posting event %d: %w", ctx.Type, err)
	}
	return nil
}

// EventProcess fires every queued event in posting order and returns how
// many were dispatched.
func EventProcess() int {
	if eventState == nil {
		return 0
	}
	n := 0
	for !eventState.queue.IsEmpty() {
		ctx, err := eventState.queue.Dequeue()
		if err != nil {
			break
		}
		EventFire(ctx)
		n++
	}
	return n
}
