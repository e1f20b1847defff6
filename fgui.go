package fgui

// Vec2 is a 2D vector used for positions, offsets and sizes.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// XMax returns the right edge.
func (r Rect) XMax() float64 { return r.X + r.Width }

// YMax returns the bottom edge.
func (r Rect) YMax() float64 { return r.Y + r.Height }

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// InputEvent carries the pointer details of the touch or mouse interaction
// that caused an event. It is reused per touch; listeners must not retain it.
type InputEvent struct {
	X, Y       float64
	TouchID    int
	Button     MouseButton
	Modifiers  KeyModifiers
	ClickCount int
}

// Position returns the pointer position in stage coordinates.
func (e *InputEvent) Position() Vec2 {
	return Vec2{e.X, e.Y}
}

// IsDoubleClick reports whether this is the second click of a double click.
func (e *InputEvent) IsDoubleClick() bool {
	return e.ClickCount == 2
}

// IsTouch reports whether the event came from a touch screen rather than the mouse.
func (e *InputEvent) IsTouch() bool {
	return e.TouchID > 0
}
