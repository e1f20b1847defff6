package fgui

// EventCallback0 is a listener that takes no arguments. Go func values are not
// comparable, so listeners are registered and removed by handle identity.
type EventCallback0 struct {
	fn func()
}

// EventCallback1 is a listener that receives the in-flight EventContext.
type EventCallback1 struct {
	fn func(*EventContext)
}

// NewCallback0 wraps fn in a handle that can be added to and removed from listeners.
func NewCallback0(fn func()) *EventCallback0 {
	return &EventCallback0{fn: fn}
}

// NewCallback1 wraps fn in a handle that can be added to and removed from listeners.
func NewCallback1(fn func(*EventContext)) *EventCallback1 {
	return &EventCallback1{fn: fn}
}

// EventBridge is the per-node, per-type listener registry. It holds three
// independent chains: context listeners, no-argument listeners and capture
// listeners.
//
// Chains are copy-on-write. An invocation ranges over the slice it started
// with, so a listener removed mid-dispatch still runs in that dispatch and a
// listener added mid-dispatch waits for the next one.
type EventBridge struct {
	owner *Node

	callback0 []*EventCallback0
	callback1 []*EventCallback1
	capture   []*EventCallback1

	dispatching bool
}

func newEventBridge(owner *Node) *EventBridge {
	return &EventBridge{owner: owner}
}

// Owner returns the node this bridge belongs to.
func (b *EventBridge) Owner() *Node {
	return b.owner
}

// AddCapture registers a capture-phase listener.
func (b *EventBridge) AddCapture(cb *EventCallback1) {
	b.capture = addCallback(b.capture, cb)
}

// RemoveCapture unregisters a capture-phase listener.
func (b *EventBridge) RemoveCapture(cb *EventCallback1) {
	b.capture = removeCallback(b.capture, cb)
}

// Add registers a context listener.
func (b *EventBridge) Add(cb *EventCallback1) {
	b.callback1 = addCallback(b.callback1, cb)
}

// Remove unregisters a context listener.
func (b *EventBridge) Remove(cb *EventCallback1) {
	b.callback1 = removeCallback(b.callback1, cb)
}

// Add0 registers a no-argument listener.
func (b *EventBridge) Add0(cb *EventCallback0) {
	b.callback0 = addCallback(b.callback0, cb)
}

// Remove0 unregisters a no-argument listener.
func (b *EventBridge) Remove0(cb *EventCallback0) {
	b.callback0 = removeCallback(b.callback0, cb)
}

// IsEmpty reports whether no listener is registered in any chain.
func (b *EventBridge) IsEmpty() bool {
	return len(b.callback1) == 0 && len(b.callback0) == 0 && len(b.capture) == 0
}

// Clear drops every registration in all three chains.
func (b *EventBridge) Clear() {
	b.callback0 = nil
	b.callback1 = nil
	b.capture = nil
}

// CallInternal invokes the context chain and then the no-argument chain with
// ctx.Sender set to the owner. A panicking listener aborts the remaining
// listeners and propagates to the dispatch caller.
//
// On return the dispatching flag goes back to the value it had on entry
// rather than to false, so a nested dispatch on the same bridge leaves the
// outer one still reported by IsDispatching.
func (b *EventBridge) CallInternal(ctx *EventContext) {
	prev := b.dispatching
	b.dispatching = true
	defer func() { b.dispatching = prev }()

	ctx.sender = b.owner
	for _, cb := range b.callback1 {
		cb.fn(ctx)
	}
	for _, cb := range b.callback0 {
		cb.fn()
	}
}

// CallCaptureInternal invokes the capture chain. No-op when it is empty.
// The dispatching flag is restored as in CallInternal.
func (b *EventBridge) CallCaptureInternal(ctx *EventContext) {
	if len(b.capture) == 0 {
		return
	}
	prev := b.dispatching
	b.dispatching = true
	defer func() { b.dispatching = prev }()

	ctx.sender = b.owner
	for _, cb := range b.capture {
		cb.fn(ctx)
	}
}

// --- Chain helpers ---

type callbackHandle interface {
	*EventCallback0 | *EventCallback1
}

// addCallback appends cb unless it is already present. Returns a new slice so
// an invocation in progress keeps its snapshot.
func addCallback[T callbackHandle](chain []T, cb T) []T {
	var none T
	if cb == none {
		return chain
	}
	for _, c := range chain {
		if c == cb {
			return chain
		}
	}
	next := make([]T, len(chain), len(chain)+1)
	copy(next, chain)
	return append(next, cb)
}

// removeCallback removes the last registration identical to cb.
func removeCallback[T callbackHandle](chain []T, cb T) []T {
	var none T
	if cb == none {
		return chain
	}
	for i := len(chain) - 1; i >= 0; i-- {
		if chain[i] == cb {
			if len(chain) == 1 {
				return nil
			}
			next := make([]T, 0, len(chain)-1)
			next = append(next, chain[:i]...)
			return append(next, chain[i+1:]...)
		}
	}
	return chain
}
