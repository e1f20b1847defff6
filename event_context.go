package fgui

// EventContext describes one in-flight event occurrence. Instances are pooled:
// a context is only valid for the duration of the listener call that receives
// it and must not be retained.
type EventContext struct {
	// Type is the event type being dispatched.
	Type string
	// Data is the payload passed to the dispatch call.
	Data any

	sender     *Node
	initiator  any
	inputEvent *InputEvent

	defaultPrevented bool
	stopsPropagation bool
	touchCapture     bool

	// callChain is a reusable buffer for the ancestor or broadcast walk.
	callChain []*EventBridge
}

// Sender returns the node whose listeners are currently being invoked.
func (c *EventContext) Sender() *Node {
	return c.sender
}

// Initiator returns the object that started the dispatch. Unless a dispatch
// supplied one explicitly, this is the node the event was dispatched on.
func (c *EventContext) Initiator() any {
	return c.initiator
}

// InputEvent returns the pointer details for input-driven events, or nil.
func (c *EventContext) InputEvent() *InputEvent {
	return c.inputEvent
}

// StopPropagation prevents the event from reaching any further node in the
// capture or bubble walk. Listeners on the current node still run.
func (c *EventContext) StopPropagation() {
	c.stopsPropagation = true
}

// PreventDefault marks the default action as cancelled. Dispatch methods
// return this flag so callers can skip their built-in behavior.
func (c *EventContext) PreventDefault() {
	c.defaultPrevented = true
}

// CaptureTouch claims the current touch for the sender. The stage keeps
// routing move and end events of that touch to it until release. Only a
// capture made while handling onTouchBegin registers the sender.
func (c *EventContext) CaptureTouch() {
	c.touchCapture = true
}

// IsDefaultPrevented reports whether a listener called PreventDefault.
func (c *EventContext) IsDefaultPrevented() bool {
	return c.defaultPrevented
}

// IsPropagationStopped reports whether a listener called StopPropagation.
func (c *EventContext) IsPropagationStopped() bool {
	return c.stopsPropagation
}

// IsTouchCaptured reports whether a listener called CaptureTouch.
func (c *EventContext) IsTouchCaptured() bool {
	return c.touchCapture
}

// --- Pool ---

// contextPool is process-wide; fgui is single-threaded so no locking.
var contextPool []*EventContext

// contextsAllocated counts instances ever created by getContext.
var contextsAllocated int

func getContext() *EventContext {
	if n := len(contextPool); n > 0 {
		c := contextPool[n-1]
		contextPool[n-1] = nil
		contextPool = contextPool[:n-1]
		c.stopsPropagation = false
		c.defaultPrevented = false
		c.touchCapture = false
		return c
	}
	contextsAllocated++
	return &EventContext{}
}

func returnContext(c *EventContext) {
	c.sender = nil
	c.initiator = nil
	c.inputEvent = nil
	c.Data = nil
	for i := range c.callChain {
		c.callChain[i] = nil
	}
	c.callChain = c.callChain[:0]
	contextPool = append(contextPool, c)
}

// ResetContextPool drops every pooled EventContext. Hosts call it at their
// reinitialization boundary so stale contexts never survive a reload.
func ResetContextPool() {
	for i := range contextPool {
		contextPool[i] = nil
	}
	contextPool = nil
}

// ContextPoolSize returns the number of idle contexts in the pool.
func ContextPoolSize() int {
	return len(contextPool)
}
