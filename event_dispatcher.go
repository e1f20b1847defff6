package fgui

// --- Bridge registry ---

// GetEventBridge returns the bridge for typ, creating it on first use.
// Panics if typ is empty.
func (n *Node) GetEventBridge(typ string) *EventBridge {
	if typ == "" {
		panic("fgui: empty event type")
	}
	if b := n.bridges[typ]; b != nil {
		return b
	}
	if n.bridges == nil {
		n.bridges = make(map[string]*EventBridge)
	}
	b := newEventBridge(n)
	n.bridges[typ] = b
	return b
}

// TryGetEventBridge returns the bridge for typ or nil. Never allocates.
func (n *Node) TryGetEventBridge(typ string) *EventBridge {
	return n.bridges[typ]
}

// HasEventListeners reports whether any chain holds a listener for typ.
func (n *Node) HasEventListeners(typ string) bool {
	b := n.bridges[typ]
	return b != nil && !b.IsEmpty()
}

// IsDispatching reports whether listeners for typ are running on this node.
func (n *Node) IsDispatching(typ string) bool {
	b := n.bridges[typ]
	return b != nil && b.dispatching
}

// On returns the listener façade for typ. The same façade is returned on
// every call for a given node and type.
func (n *Node) On(typ string) *EventListener {
	if l := n.listeners[typ]; l != nil {
		return l
	}
	if n.listeners == nil {
		n.listeners = make(map[string]*EventListener)
	}
	l := newEventListener(n, typ)
	n.listeners[typ] = l
	return l
}

// AddEventListener registers a context listener for typ.
func (n *Node) AddEventListener(typ string, cb *EventCallback1) {
	n.GetEventBridge(typ).Add(cb)
}

// AddEventListener0 registers a no-argument listener for typ.
func (n *Node) AddEventListener0(typ string, cb *EventCallback0) {
	n.GetEventBridge(typ).Add0(cb)
}

// RemoveEventListener unregisters a context listener for typ.
func (n *Node) RemoveEventListener(typ string, cb *EventCallback1) {
	if b := n.bridges[typ]; b != nil {
		b.Remove(cb)
	}
}

// RemoveEventListener0 unregisters a no-argument listener for typ.
func (n *Node) RemoveEventListener0(typ string, cb *EventCallback0) {
	if b := n.bridges[typ]; b != nil {
		b.Remove0(cb)
	}
}

// RemoveEventListeners clears every listener of the given types, or of all
// types when none are given. Bridges stay allocated so façades obtained from
// On keep working.
func (n *Node) RemoveEventListeners(types ...string) {
	if len(types) == 0 {
		for _, b := range n.bridges {
			b.Clear()
		}
		return
	}
	for _, typ := range types {
		if b := n.bridges[typ]; b != nil {
			b.Clear()
		}
	}
}

// --- Dispatch ---

// DispatchEvent runs the capture walk over the ancestors of n followed by
// the target phase on n. It does not bubble. Returns true if a listener
// called PreventDefault.
func (n *Node) DispatchEvent(typ string, data any) bool {
	return n.propagate(typ, data, nil, nil, false, nil, nil)
}

// DispatchEventFrom is DispatchEvent with an explicit initiator, for events
// raised on behalf of another object (a drop carries its drag source).
func (n *Node) DispatchEventFrom(typ string, data any, initiator any) bool {
	return n.propagate(typ, data, initiator, nil, false, nil, nil)
}

// BubbleEvent runs the full capture, target and bubble propagation.
// Returns true if a listener called PreventDefault.
func (n *Node) BubbleEvent(typ string, data any) bool {
	return n.propagate(typ, data, nil, nil, true, nil, nil)
}

// BroadcastEvent runs the target phase on n and on every descendant in
// pre-order. Ancestors are not visited and StopPropagation does not cut the
// broadcast short. Returns true if any listener called PreventDefault.
func (n *Node) BroadcastEvent(typ string, data any) bool {
	if globalDebug {
		debugCheckDisposed(n, "BroadcastEvent")
	}
	if !subtreeListens(n, typ) {
		return false
	}
	ctx := getContext()
	chain := collectSubtreeBridges(n, typ, ctx.callChain[:0])
	ctx.callChain = chain
	ctx.Type = typ
	ctx.Data = data
	ctx.initiator = n

	for _, b := range chain {
		b.CallInternal(ctx)
	}

	prevented := ctx.defaultPrevented
	returnContext(ctx)
	return prevented
}

// propagate is the shared dispatch loop. ancestors are walked for capture and,
// when bubble is set, again for bubbling. monitors are extra nodes outside the
// ancestor chain that receive the event after bubbling (touch capture).
// onCapture is told about every sender that called CaptureTouch.
func (n *Node) propagate(typ string, data any, initiator any, input *InputEvent,
	bubble bool, monitors []*Node, onCapture func(*Node)) bool {
	if globalDebug {
		debugCheckDisposed(n, "DispatchEvent")
	}

	target := n.bridges[typ]
	if target != nil && target.IsEmpty() {
		target = nil
	}
	if target == nil && len(monitors) == 0 && !ancestorsListen(n, typ) {
		return false
	}

	dispatchDepth++
	defer func() { dispatchDepth-- }()
	if globalDebug {
		debugCheckDispatchDepth(n, typ)
	}

	ctx := getContext()
	ctx.Type = typ
	ctx.Data = data
	ctx.inputEvent = input
	if initiator != nil {
		ctx.initiator = initiator
	} else {
		ctx.initiator = n
	}

	// Parent first, root last.
	chain := ctx.callChain[:0]
	for p := n.Parent; p != nil; p = p.Parent {
		if b := p.bridges[typ]; b != nil && !b.IsEmpty() {
			chain = append(chain, b)
		}
	}
	ctx.callChain = chain

	for i := len(chain) - 1; i >= 0; i-- {
		chain[i].CallCaptureInternal(ctx)
		notifyTouchCapture(ctx, chain[i], onCapture)
		if ctx.stopsPropagation {
			break
		}
	}

	if !ctx.stopsPropagation {
		if target != nil {
			target.CallInternal(ctx)
			notifyTouchCapture(ctx, target, onCapture)
		}
		if bubble && !ctx.stopsPropagation {
			for _, b := range chain {
				b.CallInternal(ctx)
				notifyTouchCapture(ctx, b, onCapture)
				if ctx.stopsPropagation {
					break
				}
			}
		}
		for _, m := range monitors {
			if isAncestor(m, n) {
				continue
			}
			b := m.bridges[typ]
			if b == nil {
				continue
			}
			b.CallCaptureInternal(ctx)
			b.CallInternal(ctx)
		}
	}

	prevented := ctx.defaultPrevented
	returnContext(ctx)
	return prevented
}

// notifyTouchCapture hands the sender of a CaptureTouch call to the touch
// router and clears the flag so the next node starts clean.
func notifyTouchCapture(ctx *EventContext, b *EventBridge, onCapture func(*Node)) {
	if !ctx.touchCapture {
		return
	}
	ctx.touchCapture = false
	if onCapture != nil {
		onCapture(b.owner)
	}
}

// ancestorsListen reports whether any ancestor of n has listeners for typ.
func ancestorsListen(n *Node, typ string) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.HasEventListeners(typ) {
			return true
		}
	}
	return false
}

// subtreeListens reports whether any node in the subtree rooted at n has a
// listener for typ.
func subtreeListens(n *Node, typ string) bool {
	if b := n.bridges[typ]; b != nil && !b.IsEmpty() {
		return true
	}
	for _, child := range n.children {
		if subtreeListens(child, typ) {
			return true
		}
	}
	return false
}

// collectSubtreeBridges appends, in pre-order, every non-empty bridge for typ
// found in the subtree rooted at n.
func collectSubtreeBridges(n *Node, typ string, buf []*EventBridge) []*EventBridge {
	if b := n.bridges[typ]; b != nil && !b.IsEmpty() {
		buf = append(buf, b)
	}
	for _, child := range n.children {
		buf = collectSubtreeBridges(child, typ, buf)
	}
	return buf
}

// dispatchDepth counts nested propagate calls (re-entrant dispatch).
var dispatchDepth int
