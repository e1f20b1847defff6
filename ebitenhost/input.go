package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/fgui"
)

// Touch is one active touch point as reported by an InputSource.
type Touch struct {
	ID   int
	X, Y int
}

// InputSource reads raw device state once per tick.
type InputSource interface {
	CursorPosition() (x, y int)
	MouseButtons() (left, right, middle bool)
	AppendTouches(buf []Touch) []Touch
	Modifiers() fgui.KeyModifiers
}

// EbitenInput reads devices through ebiten. It is only valid while the game
// loop is running.
type EbitenInput struct {
	ids []ebiten.TouchID
}

// CursorPosition returns the mouse position in screen pixels.
func (e *EbitenInput) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

// MouseButtons reports which mouse buttons are held.
func (e *EbitenInput) MouseButtons() (left, right, middle bool) {
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
}

// AppendTouches appends the active touches to buf and returns it.
func (e *EbitenInput) AppendTouches(buf []Touch) []Touch {
	e.ids = ebiten.AppendTouchIDs(e.ids[:0])
	for _, id := range e.ids {
		x, y := ebiten.TouchPosition(id)
		buf = append(buf, Touch{ID: int(id), X: x, Y: y})
	}
	return buf
}

// Modifiers reads the current keyboard modifier state.
func (e *EbitenInput) Modifiers() fgui.KeyModifiers {
	var mods fgui.KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= fgui.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= fgui.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= fgui.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= fgui.ModMeta
	}
	return mods
}

// --- Polling ---

const maxTouchSlots = 10 // slot 0 = mouse, 1-9 = touch

type touchSlots struct {
	ids   [maxTouchSlots]int
	used  [maxTouchSlots]bool
	lastX [maxTouchSlots]float64
	lastY [maxTouchSlots]float64
}

// slot maps a device touch ID to a stage touch id (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (t *touchSlots) slot(id int) int {
	for i := 1; i < maxTouchSlots; i++ {
		if t.used[i] && t.ids[i] == id {
			return i
		}
	}
	for i := 1; i < maxTouchSlots; i++ {
		if !t.used[i] {
			t.used[i] = true
			t.ids[i] = id
			return i
		}
	}
	return -1
}

// pollMouse feeds the mouse (touch 0) to the stage.
func (g *Game) pollMouse(mods fgui.KeyModifiers) {
	mx, my := g.input.CursorPosition()
	left, right, middle := g.input.MouseButtons()

	var pressed bool
	var button fgui.MouseButton
	if left || right || middle {
		pressed = true
		if left {
			button = fgui.MouseButtonLeft
		} else if right {
			button = fgui.MouseButtonRight
		} else {
			button = fgui.MouseButtonMiddle
		}
	}
	g.stage.HandlePointer(0, float64(mx), float64(my), pressed, button, mods)
}

// pollTouches feeds touches 1-9 to the stage and releases slots whose touch
// disappeared.
func (g *Game) pollTouches(mods fgui.KeyModifiers) {
	g.touchBuf = g.input.AppendTouches(g.touchBuf[:0])

	var active [maxTouchSlots]bool
	for _, t := range g.touchBuf {
		slot := g.slots.slot(t.ID)
		if slot < 0 {
			continue
		}
		active[slot] = true
		x, y := float64(t.X), float64(t.Y)
		g.slots.lastX[slot] = x
		g.slots.lastY[slot] = y
		g.stage.HandlePointer(slot, x, y, true, fgui.MouseButtonLeft, mods)
	}

	for i := 1; i < maxTouchSlots; i++ {
		if g.slots.used[i] && !active[i] {
			if g.stage.IsTouchDown(i) {
				g.stage.HandlePointer(i, g.slots.lastX[i], g.slots.lastY[i], false, fgui.MouseButtonLeft, mods)
			}
			g.slots.used[i] = false
			g.slots.ids[i] = 0
		}
	}
}
