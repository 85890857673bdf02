package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EbitenInput polls ebiten once per tick and turns what changed into
// InputEvents for the snapshot
type EbitenInput struct {
	keys    []ebiten.Key
	touches []ebiten.TouchID

	lastX, lastY int
	touchID      ebiten.TouchID
	touching     bool
}

// NewEbitenInput creates a new ebiten input adapter
func NewEbitenInput() *EbitenInput {
	return &EbitenInput{}
}

// KeyEvent maps a keyboard key to an input event.
// Returns false for keys the game does not use.
func KeyEvent(key ebiten.Key, pressed bool) (InputEvent, bool) {
	switch key {
	case ebiten.KeyW, ebiten.KeyArrowUp:
		return DirectionEvent(DirUp, pressed), true
	case ebiten.KeyA, ebiten.KeyArrowLeft:
		return DirectionEvent(DirLeft, pressed), true
	case ebiten.KeyD, ebiten.KeyArrowRight:
		return DirectionEvent(DirRight, pressed), true
	case ebiten.KeyS, ebiten.KeyArrowDown:
		return DirectionEvent(DirDown, pressed), true
	case ebiten.KeyShiftLeft, ebiten.KeyControlLeft, ebiten.KeySpace:
		return SpecialEvent(pressed), true
	}
	return InputEvent{}, false
}

// Poll returns the events of the current tick in a stable order:
// key presses, key releases, mouse, touch
func (in *EbitenInput) Poll(diag Diagnostics) []InputEvent {
	diag = diagOrNop(diag)
	var events []InputEvent

	in.keys = inpututil.AppendJustPressedKeys(in.keys[:0])
	for _, k := range in.keys {
		diag.Logf(ChannelKeys, "down %s", k)
		if ev, ok := KeyEvent(k, true); ok {
			events = append(events, ev)
		}
	}
	in.keys = inpututil.AppendJustReleasedKeys(in.keys[:0])
	for _, k := range in.keys {
		diag.Logf(ChannelKeys, "up %s", k)
		if ev, ok := KeyEvent(k, false); ok {
			events = append(events, ev)
		}
	}

	events = in.pollMouse(events)
	events = in.pollTouch(events)
	return events
}

func (in *EbitenInput) pollMouse(events []InputEvent) []InputEvent {
	x, y := ebiten.CursorPosition()
	moved := x != in.lastX || y != in.lastY
	in.lastX, in.lastY = x, y

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		events = append(events, PointerEvent(PointerDown, float64(x), float64(y)))
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		events = append(events, PointerEvent(PointerUp, float64(x), float64(y)))
	case moved && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		events = append(events, PointerEvent(PointerMove, float64(x), float64(y)))
	}
	return events
}

// pollTouch follows a single finger; extra fingers are ignored
func (in *EbitenInput) pollTouch(events []InputEvent) []InputEvent {
	if in.touching {
		if inpututil.IsTouchJustReleased(in.touchID) {
			x, y := inpututil.TouchPositionInPreviousTick(in.touchID)
			in.touching = false
			return append(events, PointerEvent(PointerUp, float64(x), float64(y)))
		}
		x, y := ebiten.TouchPosition(in.touchID)
		px, py := inpututil.TouchPositionInPreviousTick(in.touchID)
		if x != px || y != py {
			events = append(events, PointerEvent(PointerMove, float64(x), float64(y)))
		}
		return events
	}

	in.touches = inpututil.AppendJustPressedTouchIDs(in.touches[:0])
	if len(in.touches) == 0 {
		return events
	}
	in.touchID = in.touches[0]
	in.touching = true
	x, y := ebiten.TouchPosition(in.touchID)
	return append(events, PointerEvent(PointerDown, float64(x), float64(y)))
}

// RestartRequested reports whether the player asked to start a new run
func (in *EbitenInput) RestartRequested() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
}

// SaveRequested reports whether the player asked to flush the recording
func (in *EbitenInput) SaveRequested() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyF5)
}

// DebugHeld reports whether debug drawing is requested
func (in *EbitenInput) DebugHeld() bool {
	return ebiten.IsKeyPressed(ebiten.KeyTab)
}
