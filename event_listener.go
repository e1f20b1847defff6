package fgui

// EventListener is a typed façade over one node's bridge for one event type.
// Obtain it with Node.On or one of the named accessors (OnClick, ...).
type EventListener struct {
	owner *Node
	typ   string
}

func newEventListener(owner *Node, typ string) *EventListener {
	return &EventListener{owner: owner, typ: typ}
}

// Type returns the event type this listener is bound to.
func (l *EventListener) Type() string {
	return l.typ
}

// Owner returns the node this listener dispatches on.
func (l *EventListener) Owner() *Node {
	return l.owner
}

func (l *EventListener) bridge() *EventBridge {
	return l.owner.GetEventBridge(l.typ)
}

// Add registers a context listener. Adding the same handle twice is a no-op.
func (l *EventListener) Add(cb *EventCallback1) {
	l.bridge().Add(cb)
}

// Remove unregisters a context listener.
func (l *EventListener) Remove(cb *EventCallback1) {
	if b := l.owner.TryGetEventBridge(l.typ); b != nil {
		b.Remove(cb)
	}
}

// Reset moves cb to the end of the chain, registering it if absent.
func (l *EventListener) Reset(cb *EventCallback1) {
	b := l.bridge()
	b.Remove(cb)
	b.Add(cb)
}

// Set replaces every registration (all chains) with cb. A nil cb just clears.
func (l *EventListener) Set(cb *EventCallback1) {
	b := l.bridge()
	b.Clear()
	if cb != nil {
		b.Add(cb)
	}
}

// Add0 registers a no-argument listener.
func (l *EventListener) Add0(cb *EventCallback0) {
	l.bridge().Add0(cb)
}

// Remove0 unregisters a no-argument listener.
func (l *EventListener) Remove0(cb *EventCallback0) {
	if b := l.owner.TryGetEventBridge(l.typ); b != nil {
		b.Remove0(cb)
	}
}

// Reset0 moves cb to the end of the no-argument chain.
func (l *EventListener) Reset0(cb *EventCallback0) {
	b := l.bridge()
	b.Remove0(cb)
	b.Add0(cb)
}

// Set0 replaces every registration with cb.
func (l *EventListener) Set0(cb *EventCallback0) {
	b := l.bridge()
	b.Clear()
	if cb != nil {
		b.Add0(cb)
	}
}

// AddCapture registers a capture-phase listener.
func (l *EventListener) AddCapture(cb *EventCallback1) {
	l.bridge().AddCapture(cb)
}

// RemoveCapture unregisters a capture-phase listener.
func (l *EventListener) RemoveCapture(cb *EventCallback1) {
	if b := l.owner.TryGetEventBridge(l.typ); b != nil {
		b.RemoveCapture(cb)
	}
}

// Clear drops every registration for this type.
func (l *EventListener) Clear() {
	if b := l.owner.TryGetEventBridge(l.typ); b != nil {
		b.Clear()
	}
}

// IsEmpty reports whether the owner has no listener for this type.
func (l *EventListener) IsEmpty() bool {
	return !l.owner.HasEventListeners(l.typ)
}

// IsDispatching reports whether listeners for this type are running.
func (l *EventListener) IsDispatching() bool {
	return l.owner.IsDispatching(l.typ)
}

// Call dispatches with no payload. See Node.DispatchEvent.
func (l *EventListener) Call() bool {
	return l.owner.DispatchEvent(l.typ, nil)
}

// CallWith dispatches data. See Node.DispatchEvent.
func (l *EventListener) CallWith(data any) bool {
	return l.owner.DispatchEvent(l.typ, data)
}

// BubbleCall bubbles with no payload. See Node.BubbleEvent.
func (l *EventListener) BubbleCall() bool {
	return l.owner.BubbleEvent(l.typ, nil)
}

// BubbleCallWith bubbles data. See Node.BubbleEvent.
func (l *EventListener) BubbleCallWith(data any) bool {
	return l.owner.BubbleEvent(l.typ, data)
}

// BroadcastCall broadcasts with no payload. See Node.BroadcastEvent.
func (l *EventListener) BroadcastCall() bool {
	return l.owner.BroadcastEvent(l.typ, nil)
}

// BroadcastCallWith broadcasts data. See Node.BroadcastEvent.
func (l *EventListener) BroadcastCallWith(data any) bool {
	return l.owner.BroadcastEvent(l.typ, data)
}
