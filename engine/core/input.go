package core

type Button uint16

const (
	BUTTON_LEFT Button = iota
	BUTTON_RIGHT
	BUTTON_MIDDLE
	BUTTON_MAX_BUTTONS
)

// Key codes the sketches react to. The platform layer translates window
// system keys into these.
type KeyCode uint16

const (
	KEY_UNKNOWN KeyCode = iota
	KEY_ESCAPE
	KEY_SPACE
	KEY_ENTER
	KEY_LEFT
	KEY_RIGHT
	KEY_UP
	KEY_DOWN
	KEY_PAGE_UP
	KEY_PAGE_DOWN
	KEY_A
	KEY_D
	KEY_S
	KEY_W
	KEY_Q
	KEY_E
	KEY_R
	KEY_P
	KEY_MINUS
	KEY_EQUAL
	KEYS_MAX_KEYS
)

// Mouse state structure
type MouseState struct {
	X       uint16
	Y       uint16
	Buttons [BUTTON_MAX_BUTTONS]bool
}

// Keyboard state structure
type KeyboardState struct {
	Keys [KEYS_MAX_KEYS]bool
}

// Input state structure that holds current and previous states for keyboard and mouse
type InputState struct {
	KeyboardCurrent  KeyboardState
	KeyboardPrevious KeyboardState
	MouseCurrent     MouseState
	MousePrevious    MouseState
}

var inputState *InputState

func InputInitialize() error {
	inputState = &InputState{}
	LogDebug("Input subsystem initialized.")
	return nil
}

func InputShutdown() error {
	inputState = nil
	return nil
}

// InputUpdate snapshots the current state as the previous one. Call once per
// frame after the game update.
func InputUpdate() {
	if inputState == nil {
		return
	}
	inputState.KeyboardPrevious = inputState.KeyboardCurrent
	inputState.MousePrevious = inputState.MouseCurrent
}

func validKey(key KeyCode) bool {
	return inputState != nil && key < KEYS_MAX_KEYS
}

func validButton(button Button) bool {
	return inputState != nil && button < BUTTON_MAX_BUTTONS
}

// keyboard input
func InputIsKeyDown(key KeyCode) bool {
	return validKey(key) && inputState.KeyboardCurrent.Keys[key]
}

func InputIsKeyUp(key KeyCode) bool {
	return validKey(key) && !inputState.KeyboardCurrent.Keys[key]
}

func InputWasKeyDown(key KeyCode) bool {
	return validKey(key) && inputState.KeyboardPrevious.Keys[key]
}

func InputWasKeyUp(key KeyCode) bool {
	return validKey(key) && !inputState.KeyboardPrevious.Keys[key]
}

// InputKeyPressedThisFrame is true on the frame a key goes down.
func InputKeyPressedThisFrame(key KeyCode) bool {
	return InputIsKeyDown(key) && InputWasKeyUp(key)
}

func InputProcessKey(key KeyCode, pressed bool) {
	if !validKey(key) || inputState.KeyboardCurrent.Keys[key] == pressed {
		return
	}
	inputState.KeyboardCurrent.Keys[key] = pressed

	code := EVENT_CODE_KEY_RELEASED
	if pressed {
		code = EVENT_CODE_KEY_PRESSED
	}
	EventFire(EventContext{
		Type: code,
		Data: &KeyEvent{KeyCode: key},
	})
}

// mouse input
func InputIsButtonDown(button Button) bool {
	return validButton(button) && inputState.MouseCurrent.Buttons[button]
}

func InputWasButtonDown(button Button) bool {
	return validButton(button) && inputState.MousePrevious.Buttons[button]
}

func InputGetMousePosition() (int32, int32) {
	if inputState == nil {
		return 0, 0
	}
	return int32(inputState.MouseCurrent.X), int32(inputState.MouseCurrent.Y)
}

func InputGetPreviousMousePosition() (int32, int32) {
	if inputState == nil {
		return 0, 0
	}
	return int32(inputState.MousePrevious.X), int32(inputState.MousePrevious.Y)
}

func InputProcessButton(button Button, pressed bool) {
	if !validButton(button) || inputState.MouseCurrent.Buttons[button] == pressed {
		return
	}
	inputState.MouseCurrent.Buttons[button] = pressed

	code := EVENT_CODE_BUTTON_RELEASED
	if pressed {
		code = EVENT_CODE_BUTTON_PRESSED
	}
	EventFire(EventContext{
		Type: code,
		Data: &MouseEvent{Button: button},
	})
}

func InputProcessMouseMove(x, y uint16) {
	if inputState == nil {
		return
	}
	if inputState.MouseCurrent.X == x && inputState.MouseCurrent.Y == y {
		return
	}
	inputState.MouseCurrent.X = x
	inputState.MouseCurrent.Y = y
	EventFire(EventContext{
		Type: EVENT_CODE_MOUSE_MOVED,
		Data: &MouseEvent{PosX: x, PosY: y},
	})
}

func InputProcessMouseWheel(zDelta int8) {
	EventFire(EventContext{
		Type: EVENT_CODE_MOUSE_WHEEL,
		Data: &MouseEvent{Scroll: zDelta},
	})
}
