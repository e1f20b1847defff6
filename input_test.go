package fgui

import (
	"testing"
)

// --- HitShape tests ---

func TestHitRectContains(t *testing.T) {
	r := HitRect{X: 10, Y: 20, Width: 100, Height: 50}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"outside left", 5, 40, false},
		{"outside right", 115, 40, false},
		{"outside top", 50, 15, false},
		{"outside bottom", 50, 75, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("HitRect.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestHitCircleContains(t *testing.T) {
	c := HitCircle{CenterX: 50, CenterY: 50, Radius: 25}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"center", 50, 50, true},
		{"on circumference", 75, 50, true},
		{"inside", 60, 50, true},
		{"outside", 80, 50, false},
		{"outside diagonal", 70, 70, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("HitCircle.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestHitPolygonContains(t *testing.T) {
	// Square polygon: (0,0), (100,0), (100,100), (0,100)
	p := HitPolygon{Points: []Vec2{
		{0, 0}, {100, 0}, {100, 100}, {0, 100},
	}}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 50, 50, true},
		{"on edge", 0, 50, true},
		{"corner", 0, 0, true},
		{"outside", -1, 50, false},
		{"outside far", 200, 200, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("HitPolygon.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}

	// Triangle
	tri := HitPolygon{Points: []Vec2{
		{0, 0}, {100, 0}, {50, 100},
	}}
	if !tri.Contains(50, 50) {
		t.Error("triangle should contain its center")
	}
	if tri.Contains(-10, 50) {
		t.Error("triangle should not contain point far left")
	}

	// Degenerate (< 3 points)
	degen := HitPolygon{Points: []Vec2{{0, 0}, {1, 1}}}
	if degen.Contains(0, 0) {
		t.Error("degenerate polygon should not contain anything")
	}
}

func TestHitPolygonContains_ReversedWinding(t *testing.T) {
	// Same square but clockwise winding.
	p := HitPolygon{Points: []Vec2{
		{0, 100}, {100, 100}, {100, 0}, {0, 0},
	}}
	if !p.Contains(50, 50) {
		t.Error("reversed winding polygon should still contain center point")
	}
	if p.Contains(-1, 50) {
		t.Error("reversed winding polygon should not contain outside point")
	}
}


// --- nodeContainsLocal ---

func TestNodeContainsLocal_WithHitShape(t *testing.T) {
	n := NewBox("test", 64, 64)
	n.HitShape = HitCircle{CenterX: 32, CenterY: 32, Radius: 16}

	if !nodeContainsLocal(n, 32, 32) {
		t.Error("should contain center of circle")
	}
	if nodeContainsLocal(n, 0, 0) {
		t.Error("should not contain corner outside circle")
	}
}

func TestNodeContainsLocal_DefaultBox(t *testing.T) {
	n := NewBox("test", 100, 50)
	if !nodeContainsLocal(n, 50, 25) || !nodeContainsLocal(n, 0, 0) {
		t.Error("should contain points inside the box")
	}
	if nodeContainsLocal(n, -1, 25) || nodeContainsLocal(n, 101, 25) {
		t.Error("should not contain points outside the box")
	}
}

func TestNodeContainsLocal_SizelessNode(t *testing.T) {
	if nodeContainsLocal(NewNode("empty"), 0, 0) {
		t.Error("node without size or HitShape should not be hit-testable")
	}
}

// --- Hit testing ---

// newTestStage returns a stage with a 40x40 button at (10, 10).
func newTestStage() (*Stage, *Node) {
	s := NewStage(DefaultUIConfig())
	btn := NewBox("btn", 40, 40)
	btn.X, btn.Y = 10, 10
	s.Root().AddChild(btn)
	return s, btn
}

func TestHitTest_TopmostNode(t *testing.T) {
	s, btn := newTestStage()
	over := NewBox("over", 40, 40)
	over.X, over.Y = 30, 30
	s.Root().AddChild(over)

	if got := s.HitTest(40, 40); got != over {
		t.Errorf("HitTest = %s, want over", got.Name)
	}
	if got := s.HitTest(15, 15); got != btn {
		t.Errorf("HitTest = %s, want btn", got.Name)
	}
}

func TestHitTest_MissReturnsRoot(t *testing.T) {
	s, _ := newTestStage()
	if got := s.HitTest(300, 300); got != s.Root() {
		t.Errorf("HitTest = %s, want root", got.Name)
	}
}

func TestHitTest_SkipsInvisibleAndUntouchable(t *testing.T) {
	s, btn := newTestStage()
	child := NewBox("child", 10, 10)
	btn.AddChild(child)

	btn.Visible = false
	if got := s.HitTest(12, 12); got != s.Root() {
		t.Errorf("invisible subtree hit: %s", got.Name)
	}
	btn.Visible = true
	btn.Touchable = false
	if got := s.HitTest(12, 12); got != s.Root() {
		t.Errorf("untouchable subtree hit: %s", got.Name)
	}
	btn.Touchable = true
	if got := s.HitTest(12, 12); got != child {
		t.Errorf("HitTest = %s, want child", got.Name)
	}
}

func TestHitTest_TransformedNode(t *testing.T) {
	s := NewStage(DefaultUIConfig())
	n := NewBox("n", 10, 10)
	n.X, n.Y = 100, 100
	n.SetScale(3, 3)
	s.Root().AddChild(n)
	if s.HitTest(125, 125) != n {
		t.Error("scaled node not hit inside its scaled bounds")
	}
	if s.HitTest(135, 125) == n {
		t.Error("scaled node hit outside its bounds")
	}
}

func TestHitTest_CircleShape(t *testing.T) {
	s, btn := newTestStage()
	btn.HitShape = HitCircle{CenterX: 20, CenterY: 20, Radius: 10}
	if s.HitTest(30, 30) != btn {
		t.Error("center of circle not hit")
	}
	if s.HitTest(11, 11) == btn {
		t.Error("box corner outside the circle was hit")
	}
}

// --- Click ---

func press(s *Stage, x, y float64) { s.HandlePointer(0, x, y, true, MouseButtonLeft, 0) }
func release(s *Stage, x, y float64) { s.HandlePointer(0, x, y, false, MouseButtonLeft, 0) }

func TestClick(t *testing.T) {
	s, btn := newTestStage()
	var clicks int
	var evt InputEvent
	btn.OnClick().Add(NewCallback1(func(ctx *EventContext) {
		clicks++
		evt = *ctx.InputEvent()
	}))

	s.HandlePointer(0, 20, 25, true, MouseButtonLeft, ModCtrl)
	s.HandlePointer(0, 20, 25, false, MouseButtonLeft, ModCtrl)

	if clicks != 1 {
		t.Fatalf("clicks = %d, want 1", clicks)
	}
	if evt.X != 20 || evt.Y != 25 || evt.TouchID != 0 || evt.Modifiers != ModCtrl {
		t.Errorf("input event = %+v", evt)
	}
	if evt.IsTouch() {
		t.Error("mouse click reported as touch")
	}
}

func TestClickBubblesToStage(t *testing.T) {
	s, btn := newTestStage()
	var senders []*Node
	s.On(EventClick).Add(NewCallback1(func(ctx *EventContext) {
		senders = append(senders, ctx.Sender())
		if ctx.Initiator() != btn {
			t.Errorf("initiator = %v, want btn", ctx.Initiator())
		}
	}))
	press(s, 20, 20)
	release(s, 20, 20)
	if len(senders) != 1 || senders[0] != s.Root() {
		t.Errorf("stage listener senders = %v", senders)
	}
}

func TestClickCancelledByMove(t *testing.T) {
	s, btn := newTestStage()
	var clicks int
	btn.OnClick().Add0(NewCallback0(func() { clicks++ }))

	press(s, 20, 20)
	press(s, 21, 21) // within sensitivity
	release(s, 21, 21)
	if clicks != 1 {
		t.Fatalf("small move: clicks = %d, want 1", clicks)
	}

	press(s, 20, 20)
	press(s, 30, 20)
	release(s, 30, 20)
	if clicks != 1 {
		t.Errorf("large move: clicks = %d, want 1", clicks)
	}
}

func TestCancelClick(t *testing.T) {
	s, btn := newTestStage()
	var clicks int
	btn.OnClick().Add0(NewCallback0(func() { clicks++ }))
	btn.OnTouchBegin().Add0(NewCallback0(func() { s.CancelClick(0) }))
	press(s, 20, 20)
	release(s, 20, 20)
	if clicks != 0 {
		t.Errorf("clicks = %d, want 0", clicks)
	}
}

func TestClickOnAncestorOfReleaseTarget(t *testing.T) {
	s := NewStage(DefaultUIConfig())
	panel := NewBox("panel", 100, 100)
	child := NewBox("child", 10, 10)
	child.X, child.Y = 50, 50
	panel.AddChild(child)
	s.Root().AddChild(panel)

	var log []string
	panel.OnClick().Add(NewCallback1(func(ctx *EventContext) {
		log = append(log, "panel<-"+ctx.Initiator().(*Node).Name)
	}))
	child.OnClick().Add(record(&log, "child"))

	// Press on the panel, release on its child: the panel is clicked.
	press(s, 49, 55)
	release(s, 51, 55)
	assertOrder(t, log, "panel<-panel")

	// Press on the child, release on the panel: no click.
	log = nil
	press(s, 51, 55)
	release(s, 49, 55)
	if len(log) != 0 {
		t.Errorf("click fired outside the press target: %v", log)
	}
}

func TestRightClick(t *testing.T) {
	s, btn := newTestStage()
	var log []string
	btn.OnClick().Add(record(&log, "click"))
	btn.OnRightClick().Add(NewCallback1(func(ctx *EventContext) {
		if ctx.InputEvent().Button != MouseButtonRight {
			t.Errorf("button = %v", ctx.InputEvent().Button)
		}
		log = append(log, "right")
	}))
	s.HandlePointer(0, 20, 20, true, MouseButtonRight, 0)
	s.HandlePointer(0, 20, 20, false, MouseButtonRight, 0)
	assertOrder(t, log, "right")
}

func TestDoubleClick(t *testing.T) {
	s, btn := newTestStage()
	var counts []int
	btn.OnClick().Add(NewCallback1(func(ctx *EventContext) {
		counts = append(counts, ctx.InputEvent().ClickCount)
	}))
	click := func() {
		press(s, 20, 20)
		release(s, 20, 20)
	}

	click()
	s.Update(0.1)
	click()
	s.Update(0.1)
	click() // a third quick click starts over
	s.Update(1)
	click()

	want := []int{1, 2, 1, 1}
	if len(counts) != len(want) {
		t.Fatalf("counts = %v, want %v", counts, want)
	}
	for i := range want {
		if counts[i] != want[i] {
			t.Errorf("counts = %v, want %v", counts, want)
			break
		}
	}
}

func TestRemovingPressTargetSuppressesClick(t *testing.T) {
	s, btn := newTestStage()
	var clicks int
	btn.OnClick().Add0(NewCallback0(func() { clicks++ }))
	press(s, 20, 20)
	btn.RemoveFromParent()
	release(s, 20, 20)
	if clicks != 0 {
		t.Errorf("clicks = %d, want 0", clicks)
	}
	if s.TouchTarget() != s.Root() {
		t.Errorf("touch target = %v, want root", s.TouchTarget().Name)
	}
}

// --- Touch begin / move / end ---

func TestTouchSequence(t *testing.T) {
	s, btn := newTestStage()
	var log []string
	btn.OnTouchBegin().Add(record(&log, "begin"))
	btn.OnTouchMove().Add(record(&log, "move"))
	btn.OnTouchEnd().Add(record(&log, "end"))

	press(s, 20, 20)
	press(s, 20, 20) // no movement, no event
	press(s, 22, 20)
	release(s, 22, 20)
	assertOrder(t, log, "begin", "move", "end")
}

func TestHoverMoveGoesToRootOnly(t *testing.T) {
	s, btn := newTestStage()
	var root, node int
	s.On(EventTouchMove).Add0(NewCallback0(func() { root++ }))
	btn.OnTouchMove().Add0(NewCallback0(func() { node++ }))

	release(s, 20, 20)
	release(s, 25, 20)
	if root != 2 || node != 0 {
		t.Errorf("root = %d, node = %d, want 2 and 0", root, node)
	}
}

func TestCaptureTouchKeepsEvents(t *testing.T) {
	s, btn := newTestStage()
	var log []string
	btn.OnTouchBegin().Add(NewCallback1(func(ctx *EventContext) { ctx.CaptureTouch() }))
	btn.OnTouchMove().Add(record(&log, "move"))
	btn.OnTouchEnd().Add(record(&log, "end"))

	press(s, 20, 20)
	press(s, 200, 200)
	release(s, 200, 200)
	assertOrder(t, log, "move", "end")

	// The capture lasts one press only.
	log = nil
	press(s, 200, 200)
	press(s, 210, 200)
	release(s, 210, 200)
	if len(log) != 0 {
		t.Errorf("events after release: %v", log)
	}
}

func TestCaptureFromAncestorListener(t *testing.T) {
	s := NewStage(DefaultUIConfig())
	panel := NewBox("panel", 100, 100)
	btn := NewBox("btn", 10, 10)
	panel.AddChild(btn)
	s.Root().AddChild(panel)

	var monitored bool
	panel.OnTouchBegin().Add(NewCallback1(func(ctx *EventContext) { ctx.CaptureTouch() }))
	panel.OnTouchEnd().Add(NewCallback1(func(ctx *EventContext) {
		monitored = ctx.InputEvent().X == 300
	}))

	press(s, 5, 5)
	release(s, 300, 300)
	if !monitored {
		t.Error("capturing ancestor missed the touch end")
	}
}

func TestTouchMonitorNotCalledTwiceWhenOnPath(t *testing.T) {
	s, btn := newTestStage()
	var ends int
	btn.OnTouchBegin().Add(NewCallback1(func(ctx *EventContext) { ctx.CaptureTouch() }))
	btn.OnTouchEnd().Add0(NewCallback0(func() { ends++ }))
	press(s, 20, 20)
	release(s, 20, 20)
	if ends != 1 {
		t.Errorf("ends = %d, want 1", ends)
	}
}

func TestAddRemoveTouchMonitor(t *testing.T) {
	s, _ := newTestStage()
	watcher := NewNode("watcher")
	s.Root().AddChild(watcher)
	var moves int
	watcher.OnTouchMove().Add0(NewCallback0(func() { moves++ }))

	press(s, 20, 20)
	s.AddTouchMonitor(0, watcher)
	s.AddTouchMonitor(0, watcher)
	press(s, 30, 30)
	s.RemoveTouchMonitor(watcher)
	press(s, 40, 40)
	release(s, 40, 40)
	if moves != 1 {
		t.Errorf("moves = %d, want 1", moves)
	}
}

func TestMultiTouch(t *testing.T) {
	s, btn := newTestStage()
	other := NewBox("other", 40, 40)
	other.X = 100
	s.Root().AddChild(other)

	var ids []int
	for _, n := range []*Node{btn, other} {
		n.OnTouchBegin().Add(NewCallback1(func(ctx *EventContext) {
			ids = append(ids, ctx.InputEvent().TouchID)
			if !ctx.InputEvent().IsTouch() {
				t.Error("touch reported as mouse")
			}
		}))
	}
	s.HandlePointer(1, 20, 20, true, MouseButtonLeft, 0)
	s.HandlePointer(2, 110, 20, true, MouseButtonLeft, 0)

	if len(ids) != 2 || ids[0] != 1 || ids[1] != 2 {
		t.Errorf("touch ids = %v, want [1 2]", ids)
	}
	if s.TouchCount() != 2 || !s.IsTouchDown(1) || !s.IsTouchDown(2) {
		t.Errorf("TouchCount = %d", s.TouchCount())
	}
	if p := s.GetTouchPosition(-1); p.X != 110 || p.Y != 20 {
		t.Errorf("last touch position = %v", p)
	}
	if s.TouchTarget() != other {
		t.Errorf("TouchTarget = %s, want other", s.TouchTarget().Name)
	}

	s.HandlePointer(1, 20, 20, false, MouseButtonLeft, 0)
	if s.TouchCount() != 1 || s.IsTouchDown(1) {
		t.Errorf("TouchCount = %d after release", s.TouchCount())
	}
}

func TestHandlePointerIgnoresBadTouchID(t *testing.T) {
	s, _ := newTestStage()
	s.HandlePointer(-1, 0, 0, true, MouseButtonLeft, 0)
	s.HandlePointer(maxTouches, 0, 0, true, MouseButtonLeft, 0)
	if s.TouchCount() != 0 {
		t.Errorf("TouchCount = %d", s.TouchCount())
	}
}

// --- Roll over / out ---

func TestRollOverOut(t *testing.T) {
	s := NewStage(DefaultUIConfig())
	panel := NewBox("panel", 100, 100)
	child := NewBox("child", 10, 10)
	child.X, child.Y = 50, 50
	panel.AddChild(child)
	s.Root().AddChild(panel)

	var log []string
	panel.OnRollOver().Add(record(&log, "panel-over"))
	panel.OnRollOut().Add(record(&log, "panel-out"))
	child.OnRollOver().Add(record(&log, "child-over"))
	child.OnRollOut().Add(record(&log, "child-out"))

	release(s, 10, 10)
	release(s, 55, 55)
	release(s, 56, 56)
	release(s, 20, 20)
	release(s, 55, 55)
	release(s, 300, 300)

	assertOrder(t, log,
		"panel-over",
		"child-over",
		"child-out",
		"child-over",
		"child-out", "panel-out",
	)
}

func TestRollOverOnlyForMouse(t *testing.T) {
	s, btn := newTestStage()
	var overs int
	btn.OnRollOver().Add0(NewCallback0(func() { overs++ }))
	s.HandlePointer(1, 20, 20, true, MouseButtonLeft, 0)
	if overs != 0 {
		t.Errorf("touch produced %d roll-overs", overs)
	}
}

func TestRollOverDoesNotBubble(t *testing.T) {
	s, _ := newTestStage()
	var rootOvers int
	s.On(EventRollOver).Add0(NewCallback0(func() { rootOvers++ }))
	release(s, 20, 20)
	if rootOvers != 0 {
		t.Errorf("root heard %d roll-overs", rootOvers)
	}
}

// newHoverChain returns outer (100) > mid (50) > leaf (20), all at the origin.
func newHoverChain(s *Stage) (outer, mid, leaf *Node) {
	outer = NewBox("outer", 100, 100)
	mid = NewBox("mid", 50, 50)
	leaf = NewBox("leaf", 20, 20)
	s.Root().AddChild(outer)
	outer.AddChild(mid)
	mid.AddChild(leaf)
	return
}

func TestRollOverListenerDetachesHoveredNodes(t *testing.T) {
	s := NewStage(DefaultUIConfig())
	outer, mid, leaf := newHoverChain(s)

	var log []string
	outer.OnRollOver().Add(NewCallback1(func(ctx *EventContext) {
		log = append(log, "outer")
		outer.RemoveChild(mid)
	}))
	mid.OnRollOver().Add(record(&log, "mid"))
	leaf.OnRollOver().Add(record(&log, "leaf"))
	outer.OnRollOut().Add(record(&log, "outer-out"))

	release(s, 5, 5)
	release(s, 6, 6)
	release(s, 200, 200)
	assertOrder(t, log, "outer", "outer-out")
}

func TestRollOutListenerDetachesHoveredNodes(t *testing.T) {
	s := NewStage(DefaultUIConfig())
	outer, mid, leaf := newHoverChain(s)

	var log []string
	leaf.OnRollOut().Add(NewCallback1(func(ctx *EventContext) {
		log = append(log, "leaf-out")
		outer.RemoveChild(mid)
	}))
	mid.OnRollOut().Add(record(&log, "mid-out"))
	outer.OnRollOut().Add(record(&log, "outer-out"))

	release(s, 5, 5)
	release(s, 200, 200)
	assertOrder(t, log, "leaf-out", "outer-out")
}

func TestCaptureDuringMoveIsIgnored(t *testing.T) {
	s, btn := newTestStage()
	var moves int
	btn.OnTouchMove().Add(NewCallback1(func(ctx *EventContext) {
		moves++
		ctx.CaptureTouch()
	}))

	press(s, 20, 20)
	press(s, 30, 30)
	press(s, 200, 200)
	release(s, 200, 200)
	if moves != 1 {
		t.Errorf("moves = %d, want 1: a capture outside onTouchBegin registered a monitor", moves)
	}
}

// --- Focus ---

func TestSetFocus(t *testing.T) {
	s := NewStage(DefaultUIConfig())
	a := NewNode("a")
	b := NewNode("b")
	s.Root().AddChild(a)
	s.Root().AddChild(b)

	var log []string
	a.OnFocusIn().Add(record(&log, "a-in"))
	a.OnFocusOut().Add(record(&log, "a-out"))
	b.OnFocusIn().Add(record(&log, "b-in"))

	a.RequestFocus()
	a.RequestFocus()
	s.SetFocus(b)
	assertOrder(t, log, "a-in", "a-out", "b-in")
	if s.Focus() != b {
		t.Errorf("Focus = %v, want b", s.Focus())
	}
}

func TestRemovingFocusedAncestorClearsFocus(t *testing.T) {
	s := NewStage(DefaultUIConfig())
	panel := NewNode("panel")
	input := NewNode("input")
	panel.AddChild(input)
	s.Root().AddChild(panel)
	input.RequestFocus()

	panel.RemoveFromParent()
	if s.Focus() != nil {
		t.Error("focus kept on a removed node")
	}
}

func TestRequestFocusOffStage(t *testing.T) {
	NewNode("n").RequestFocus()
}

// --- ECS forwarding ---

type mockStore struct {
	events []InteractionEvent
}

func (m *mockStore) EmitEvent(e InteractionEvent) {
	m.events = append(m.events, e)
}

func TestEntityStoreForwarding(t *testing.T) {
	s, btn := newTestStage()
	btn.EntityID = 5
	store := &mockStore{}
	s.SetEntityStore(store)

	s.HandlePointer(0, 20, 30, true, MouseButtonLeft, ModShift)
	s.HandlePointer(0, 20, 30, false, MouseButtonLeft, ModShift)

	if len(store.events) != 3 {
		t.Fatalf("events = %d, want 3", len(store.events))
	}
	types := []string{store.events[0].Type, store.events[1].Type, store.events[2].Type}
	assertOrder(t, types, EventTouchBegin, EventTouchEnd, EventClick)
	e := store.events[0]
	if e.EntityID != 5 || e.GlobalX != 20 || e.GlobalY != 30 || e.Modifiers != ModShift {
		t.Errorf("event = %+v", e)
	}
	assertNear(t, "LocalX", e.LocalX, 10)
	assertNear(t, "LocalY", e.LocalY, 20)
}

func TestEntityStoreSkipsZeroEntity(t *testing.T) {
	s, _ := newTestStage()
	store := &mockStore{}
	s.SetEntityStore(store)
	press(s, 20, 20)
	release(s, 20, 20)
	if len(store.events) != 0 {
		t.Errorf("events = %d, want 0", len(store.events))
	}
}

// --- Stage ---

func TestStageRootAndConfig(t *testing.T) {
	s := NewStage(UIConfig{ClickDragSensitivity: 5})
	if s.Root().Name != "GRoot" || !s.Root().OnStage() {
		t.Error("root not set up")
	}
	cfg := s.Config()
	if cfg.ClickDragSensitivity != 5 || cfg.TouchDragSensitivity != defaultTouchDragSensitivity {
		t.Errorf("config = %+v", cfg)
	}
}

func TestStageUpdateAdvancesTime(t *testing.T) {
	s := NewStage(DefaultUIConfig())
	if s.Update(0.25) {
		t.Error("Update reported injected input with an empty queue")
	}
	s.Update(0.25)
	assertNear(t, "Time", s.Time(), 0.5)
}
