package fgui

// EntityStore is the interface for optional ECS integration.
// When set on a Stage, interaction events are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries interaction data for the ECS bridge.
type InteractionEvent struct {
	Type      string // one of the Event* names
	EntityID  uint32
	GlobalX   float64
	GlobalY   float64
	LocalX    float64
	LocalY    float64
	TouchID   int
	Button    MouseButton
	Modifiers KeyModifiers
	// Data carries the drop payload for EventDrop.
	Data any
}

// Stage is the top-level object that owns the root node, touch state, focus
// and drag & drop.
type Stage struct {
	root  *Node
	store EntityStore
	cfg   UIConfig
	debug bool

	// Input state
	touches     [maxTouches]touchState
	lastTouchID int
	hitBuf      []*Node
	hitMats     [][6]float64

	focus    *Node
	dragging *Node
	dragDrop *DragDropManager

	time float64

	injectQueue []syntheticPointerEvent
	testRunner  *TestRunner
}

// NewStage creates a stage with a pre-created root named "GRoot".
func NewStage(cfg UIConfig) *Stage {
	root := NewNode("GRoot")
	s := &Stage{root: root, cfg: cfg.withDefaults()}
	root.stage = s
	for i := range s.touches {
		ts := &s.touches[i]
		ts.id = i
		ts.evt.TouchID = i
		id := i
		ts.onCapture = func(n *Node) { s.AddTouchMonitor(id, n) }
	}
	if cfg.DebugMode {
		s.SetDebugMode(true)
	}
	return s
}

// Root returns the stage's root node.
func (s *Stage) Root() *Node {
	return s.root
}

// Config returns the tunables in effect.
func (s *Stage) Config() UIConfig {
	return s.cfg
}

// On returns a listener on the root node. Stage-level listeners see every
// bubbling event that is not stopped below the root.
func (s *Stage) On(typ string) *EventListener {
	return s.root.On(typ)
}

// Time returns the seconds accumulated by Update.
func (s *Stage) Time() float64 {
	return s.time
}

// Update advances the stage clock, steps the test runner and feeds at most one
// injected pointer event. Returns true if an injected event was consumed, in
// which case hosts skip real device input for the frame.
func (s *Stage) Update(dt float64) bool {
	s.time += dt
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	return s.processInjectedInput()
}

// SetEntityStore sets the optional ECS bridge.
func (s *Stage) SetEntityStore(store EntityStore) {
	s.store = store
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics and tree depth, child count and dispatch depth warnings are
// printed to stderr.
func (s *Stage) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Stage debug flag so that node
// operations (which lack a Stage pointer) can check it cheaply. Only valid
// with a single Stage; multiple Stages with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool

// DragDrop returns the stage's drag & drop manager.
func (s *Stage) DragDrop() *DragDropManager {
	if s.dragDrop == nil {
		s.dragDrop = newDragDropManager(s)
	}
	return s.dragDrop
}

// --- Focus ---

// Focus returns the focused node, or nil.
func (s *Stage) Focus() *Node {
	return s.focus
}

// SetFocus moves focus to n (nil clears it), dispatching onFocusOut on the
// previous holder and onFocusIn on n.
func (s *Stage) SetFocus(n *Node) {
	if s.focus == n {
		return
	}
	old := s.focus
	s.focus = n
	if old != nil && !old.disposed {
		old.DispatchEvent(EventFocusOut, nil)
	}
	if n != nil && s.focus == n {
		n.DispatchEvent(EventFocusIn, nil)
	}
}

// RequestFocus focuses n on its stage. No-op when n is not on a stage.
func (n *Node) RequestFocus() {
	if s := n.Stage(); s != nil {
		s.SetFocus(n)
	}
}

// nodeRemoved drops stage references into a subtree that is leaving the
// stage: focus, hover, touch targets and monitors, and an active drag.
func (s *Stage) nodeRemoved(sub *Node) {
	if s.dragging != nil && isAncestor(sub, s.dragging) {
		s.dragging.StopDrag()
	}
	if s.focus != nil && isAncestor(sub, s.focus) {
		s.SetFocus(nil)
	}
	for i := range s.touches {
		ts := &s.touches[i]
		if ts.target != nil && isAncestor(sub, ts.target) {
			ts.target = nil
		}
		if ts.downTarget != nil && isAncestor(sub, ts.downTarget) {
			ts.downTarget = nil
		}
		ts.rollOver = removeSubtree(ts.rollOver, sub)
		ts.monitors = removeSubtree(ts.monitors, sub)
	}
}

func removeSubtree(list []*Node, sub *Node) []*Node {
	out := list[:0]
	for _, n := range list {
		if !isAncestor(sub, n) {
			out = append(out, n)
		}
	}
	for i := len(out); i < len(list); i++ {
		list[i] = nil
	}
	return out
}

// --- ECS bridge ---

func (s *Stage) emitInteractionEvent(typ string, node *Node, ts *touchState, data any) {
	if s.store == nil || node == nil || node.EntityID == 0 {
		return
	}
	lx, ly := node.GlobalToLocal(ts.x, ts.y)
	s.store.EmitEvent(InteractionEvent{
		Type:      typ,
		EntityID:  node.EntityID,
		GlobalX:   ts.x,
		GlobalY:   ts.y,
		LocalX:    lx,
		LocalY:    ly,
		TouchID:   ts.id,
		Button:    ts.button,
		Modifiers: ts.mods,
		Data:      data,
	})
}
