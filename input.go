package fgui

import "math"

// --- Constants ---

const maxTouches = 10 // touch 0 = mouse, 1-9 = touch

// --- Built-in HitShape types ---

// HitRect is an axis-aligned rectangular hit area in local coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area in local coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// HitPolygon is a convex polygon hit area in local coordinates.
// Points must define a convex polygon in either winding order.
type HitPolygon struct {
	Points []Vec2
}

// Contains reports whether (x, y) lies inside a convex polygon using cross-product sign test.
func (p HitPolygon) Contains(x, y float64) bool {
	n := len(p.Points)
	if n < 3 {
		return false
	}

	// Check that the point is on the same side of every edge.
	var positive, negative bool
	for i := 0; i < n; i++ {
		x1 := p.Points[i].X
		y1 := p.Points[i].Y
		j := (i + 1) % n
		x2 := p.Points[j].X
		y2 := p.Points[j].Y

		cross := (x2-x1)*(y-y1) - (y2-y1)*(x-x1)
		if cross > 0 {
			positive = true
		} else if cross < 0 {
			negative = true
		}
		if positive && negative {
			return false
		}
	}
	return true
}

// --- Per-touch state ---

type touchState struct {
	id     int
	active bool
	down   bool
	x, y   float64

	downX, downY   float64
	button         MouseButton
	mods           KeyModifiers
	target         *Node
	downTarget     *Node
	clickCancelled bool
	clickCount     int
	lastClickTime  float64

	monitors  []*Node
	monSnap   []*Node
	rollOver  []*Node // hovered chain, leaf first
	rollNext  []*Node
	onCapture func(*Node)

	evt InputEvent
}

func (ts *touchState) syncEvent() {
	ts.evt.X = ts.x
	ts.evt.Y = ts.y
	ts.evt.Button = ts.button
	ts.evt.Modifiers = ts.mods
	ts.evt.ClickCount = ts.clickCount
}

// snapshotMonitors copies the monitor list so listeners may add or remove
// monitors while it is being walked.
func (ts *touchState) snapshotMonitors() []*Node {
	ts.monSnap = append(ts.monSnap[:0], ts.monitors...)
	return ts.monSnap
}

// --- Touch monitors ---

// AddTouchMonitor makes n receive the move and end events of touchID until
// the touch is released, even when the pointer is outside n.
func (s *Stage) AddTouchMonitor(touchID int, n *Node) {
	if n == nil || touchID < 0 || touchID >= maxTouches {
		return
	}
	ts := &s.touches[touchID]
	for _, m := range ts.monitors {
		if m == n {
			return
		}
	}
	ts.monitors = append(ts.monitors, n)
}

// RemoveTouchMonitor removes n from the monitors of every touch.
func (s *Stage) RemoveTouchMonitor(n *Node) {
	for i := range s.touches {
		ts := &s.touches[i]
		for j, m := range ts.monitors {
			if m == n {
				copy(ts.monitors[j:], ts.monitors[j+1:])
				ts.monitors[len(ts.monitors)-1] = nil
				ts.monitors = ts.monitors[:len(ts.monitors)-1]
				break
			}
		}
	}
}

// CancelClick suppresses the click that the release of touchID would produce.
func (s *Stage) CancelClick(touchID int) {
	if touchID >= 0 && touchID < maxTouches {
		s.touches[touchID].clickCancelled = true
	}
}

// TouchTarget returns the hit target of the most recently active touch.
func (s *Stage) TouchTarget() *Node {
	return s.touches[s.lastTouchID].target
}

// GetTouchPosition returns the last known position of touchID. -1 selects
// the most recently active touch.
func (s *Stage) GetTouchPosition(touchID int) Vec2 {
	if touchID < 0 || touchID >= maxTouches {
		touchID = s.lastTouchID
	}
	ts := &s.touches[touchID]
	return Vec2{ts.x, ts.y}
}

// TouchCount returns the number of touches currently down.
func (s *Stage) TouchCount() int {
	count := 0
	for i := range s.touches {
		if s.touches[i].down {
			count++
		}
	}
	return count
}

// IsTouchDown reports whether touchID is pressed.
func (s *Stage) IsTouchDown(touchID int) bool {
	return touchID >= 0 && touchID < maxTouches && s.touches[touchID].down
}

// --- Hit testing ---

// nodeContainsLocal tests whether (lx, ly) falls inside a node's hit region.
// Uses HitShape if set; otherwise the Width x Height box.
func nodeContainsLocal(n *Node, lx, ly float64) bool {
	if n.HitShape != nil {
		return n.HitShape.Contains(lx, ly)
	}
	if n.Width == 0 && n.Height == 0 {
		return false
	}
	return lx >= 0 && lx <= n.Width && ly >= 0 && ly <= n.Height
}

// collectTouchable walks the tree in painter order (DFS, child order),
// appending hit-testable nodes and their root-space transforms. Skips
// Visible=false or Touchable=false subtrees.
func (s *Stage) collectTouchable(n *Node, parent [6]float64) {
	if !n.Visible || !n.Touchable {
		return
	}
	m := multiplyAffine(parent, computeLocalTransform(n))
	if n != s.root && (n.HitShape != nil || n.Width != 0 || n.Height != 0) {
		s.hitBuf = append(s.hitBuf, n)
		s.hitMats = append(s.hitMats, m)
	}
	for _, child := range n.children {
		s.collectTouchable(child, m)
	}
}

// hitTest finds the topmost touchable node at (x, y) in root space.
// Returns the root if nothing else is hit.
func (s *Stage) hitTest(x, y float64) *Node {
	s.hitBuf = s.hitBuf[:0]
	s.hitMats = s.hitMats[:0]
	s.collectTouchable(s.root, identityTransform)

	// Iterate backward (reverse painter order): topmost visual node first.
	var hit *Node
	for i := len(s.hitBuf) - 1; i >= 0; i-- {
		lx, ly := transformPoint(invertAffine(s.hitMats[i]), x, y)
		if nodeContainsLocal(s.hitBuf[i], lx, ly) {
			hit = s.hitBuf[i]
			break
		}
	}
	clear(s.hitBuf)
	if hit == nil {
		return s.root
	}
	return hit
}

// HitTest returns the topmost touchable node at (x, y), or the root.
func (s *Stage) HitTest(x, y float64) *Node {
	return s.hitTest(x, y)
}

// --- Input processing ---

// HandlePointer runs one step of the touch state machine for touchID
// (0 = mouse, 1-9 = touch). Hosts call it once per device per frame with the
// current position and pressed state.
func (s *Stage) HandlePointer(touchID int, x, y float64, pressed bool, button MouseButton, mods KeyModifiers) {
	if touchID < 0 || touchID >= maxTouches {
		return
	}
	ts := &s.touches[touchID]
	moved := !ts.active || x != ts.x || y != ts.y
	ts.active = true
	ts.x = x
	ts.y = y
	ts.mods = mods
	s.lastTouchID = touchID

	if moved || ts.target == nil {
		ts.target = s.hitTest(x, y)
	}
	if touchID == 0 {
		s.updateRollOver(ts)
	}

	switch {
	case pressed && !ts.down:
		s.touchBegin(ts, button)
	case pressed && ts.down:
		if moved {
			s.touchMove(ts)
		}
	case !pressed && ts.down:
		s.touchEnd(ts)
	default:
		// Hover move: the root alone hears it.
		if moved {
			ts.syncEvent()
			s.root.propagate(EventTouchMove, nil, nil, &ts.evt, false, nil, nil)
		}
	}
}

func (s *Stage) touchBegin(ts *touchState, button MouseButton) {
	ts.down = true
	ts.button = button
	ts.downX = ts.x
	ts.downY = ts.y
	ts.clickCancelled = false
	ts.downTarget = ts.target
	clear(ts.monitors)
	ts.monitors = ts.monitors[:0]

	if s.time-ts.lastClickTime < s.cfg.DoubleClickInterval {
		if ts.clickCount == 2 {
			ts.clickCount = 1
		} else {
			ts.clickCount++
		}
	} else {
		ts.clickCount = 1
	}
	ts.lastClickTime = s.time

	ts.syncEvent()
	target := ts.target
	target.propagate(EventTouchBegin, nil, nil, &ts.evt, true, nil, ts.onCapture)
	s.emitInteractionEvent(EventTouchBegin, target, ts, nil)
}

func (s *Stage) touchMove(ts *touchState) {
	if !ts.clickCancelled {
		sens := s.cfg.ClickDragSensitivity
		if ts.id > 0 {
			sens = s.cfg.TouchDragSensitivity
		}
		if math.Abs(ts.x-ts.downX) > sens || math.Abs(ts.y-ts.downY) > sens {
			ts.clickCancelled = true
		}
	}

	ts.syncEvent()
	ts.target.propagate(EventTouchMove, nil, nil, &ts.evt, true, ts.snapshotMonitors(), nil)
	clear(ts.monSnap)
}

func (s *Stage) touchEnd(ts *touchState) {
	ts.down = false
	ts.syncEvent()

	target := ts.target
	target.propagate(EventTouchEnd, nil, nil, &ts.evt, true, ts.snapshotMonitors(), nil)
	clear(ts.monSnap)
	clear(ts.monitors)
	ts.monitors = ts.monitors[:0]
	s.emitInteractionEvent(EventTouchEnd, target, ts, nil)

	down := ts.downTarget
	ts.downTarget = nil
	if ts.clickCancelled || down == nil || down.disposed || !down.OnStage() || !down.IsAncestorOf(ts.target) {
		return
	}
	typ := EventClick
	if ts.button == MouseButtonRight {
		typ = EventRightClick
	}
	down.propagate(typ, nil, nil, &ts.evt, true, nil, nil)
	s.emitInteractionEvent(typ, down, ts, nil)
}

// updateRollOver dispatches onRollOut on nodes the pointer left (leaf first)
// and onRollOver on nodes it entered (outermost first).
func (s *Stage) updateRollOver(ts *touchState) {
	if len(ts.rollOver) > 0 && ts.rollOver[0] == ts.target {
		return
	}
	next := ts.rollNext[:0]
	for n := ts.target; n != nil && n != s.root; n = n.Parent {
		next = append(next, n)
	}
	if len(next) == 0 && len(ts.rollOver) == 0 {
		return
	}

	ts.syncEvent()
	// Both chains are private while listeners run: a listener that detaches
	// a hovered node must not compact them under the loops.
	prev := ts.rollOver
	ts.rollOver = nil
	for _, n := range prev {
		if stillHovered(n) && !containsNode(next, n) {
			n.propagate(EventRollOut, nil, nil, &ts.evt, false, nil, nil)
		}
	}
	for i := len(next) - 1; i >= 0; i-- {
		if n := next[i]; stillHovered(n) && !containsNode(prev, n) {
			n.propagate(EventRollOver, nil, nil, &ts.evt, false, nil, nil)
		}
	}

	kept := next[:0]
	for _, n := range next {
		if stillHovered(n) {
			kept = append(kept, n)
		}
	}
	clear(next[len(kept):])
	ts.rollOver = kept
	clear(prev)
	ts.rollNext = prev[:0]
}

// stillHovered reports whether n can still take part in roll over/out after
// listeners had a chance to change the tree.
func stillHovered(n *Node) bool {
	return !n.disposed && n.OnStage()
}

func containsNode(list []*Node, n *Node) bool {
	for _, c := range list {
		if c == n {
			return true
		}
	}
	return false
}
