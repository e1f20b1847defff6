package fgui

import "math"

// dragState holds the per-node drag bookkeeping. Allocated on first use.
type dragState struct {
	touchBegin *EventCallback1
	touchMove  *EventCallback1
	touchEnd   *EventCallback1

	testing  bool
	startPos Vec2 // touch position at press, for the sensitivity test
	touchID  int

	globalStart Vec2 // touch position when the drag began
	globalRect  Rect // node bounds in root space when the drag began
	offX, offY  float64
}

func (n *Node) dragData() *dragState {
	if n.drag == nil {
		d := &dragState{}
		d.touchBegin = NewCallback1(n.dragTouchBegin)
		d.touchMove = NewCallback1(n.dragTouchMove)
		d.touchEnd = NewCallback1(n.dragTouchEnd)
		n.drag = d
	}
	return n.drag
}

// SetDraggable makes the node follow the pointer once a touch on it moves
// past the drag sensitivity.
func (n *Node) SetDraggable(v bool) {
	if n.draggable == v {
		return
	}
	n.draggable = v
	d := n.dragData()
	if v {
		n.On(EventTouchBegin).Add(d.touchBegin)
		n.On(EventTouchMove).Add(d.touchMove)
		n.On(EventTouchEnd).Add(d.touchEnd)
	} else {
		n.On(EventTouchBegin).Remove(d.touchBegin)
		n.On(EventTouchMove).Remove(d.touchMove)
		n.On(EventTouchEnd).Remove(d.touchEnd)
	}
}

// Draggable reports whether SetDraggable(true) is in effect.
func (n *Node) Draggable() bool {
	return n.draggable
}

// Dragging reports whether this node is the stage's dragging node.
func (n *Node) Dragging() bool {
	s := n.Stage()
	return s != nil && s.dragging == n
}

// StartDrag starts dragging with touchID (-1 = most recent touch) without
// waiting for the sensitivity test. No-op when the node is not on a stage.
func (n *Node) StartDrag(touchID int) {
	if n.disposed || !n.OnStage() {
		return
	}
	n.dragBegin(touchID)
}

// StopDrag ends the drag silently: no onDragEnd is dispatched.
func (n *Node) StopDrag() {
	s := n.Stage()
	if s == nil || s.dragging != n {
		return
	}
	s.dragging = nil
	n.drag.testing = false
	n.releaseDragListeners()
}

func (n *Node) dragBegin(touchID int) {
	s := n.Stage()
	if touchID < 0 || touchID >= maxTouches {
		touchID = s.lastTouchID
	}
	if n.DispatchEvent(EventDragStart, touchID) {
		return
	}

	if prev := s.dragging; prev != nil {
		prev.StopDrag()
		prev.DispatchEvent(EventDragEnd, nil)
	}

	d := n.dragData()
	n.On(EventTouchMove).Add(d.touchMove)
	n.On(EventTouchEnd).Add(d.touchEnd)

	d.touchID = touchID
	d.testing = false
	d.globalStart = s.GetTouchPosition(touchID)
	d.globalRect = n.GlobalBounds()
	tlx, tly := d.globalRect.X, d.globalRect.Y
	if n.Parent != nil {
		tlx, tly = n.Parent.GlobalToLocal(tlx, tly)
	}
	d.offX = n.X - math.Round(tlx)
	d.offY = n.Y - math.Round(tly)

	s.dragging = n
	s.AddTouchMonitor(touchID, n)
	s.emitInteractionEvent(EventDragStart, n, &s.touches[touchID], nil)
}

// releaseDragListeners drops the move/end listeners dragBegin added when the
// node is not draggable on its own.
func (n *Node) releaseDragListeners() {
	if n.draggable || n.drag == nil {
		return
	}
	n.On(EventTouchMove).Remove(n.drag.touchMove)
	n.On(EventTouchEnd).Remove(n.drag.touchEnd)
}

func (n *Node) dragTouchBegin(ctx *EventContext) {
	evt := ctx.InputEvent()
	if evt == nil {
		return
	}
	d := n.drag
	d.startPos = evt.Position()
	d.testing = true
	ctx.CaptureTouch()
}

func (n *Node) dragTouchMove(ctx *EventContext) {
	evt := ctx.InputEvent()
	s := n.Stage()
	if evt == nil || s == nil {
		return
	}
	d := n.drag

	if d.testing && s.dragging != n {
		sens := s.cfg.ClickDragSensitivity
		if evt.IsTouch() {
			sens = s.cfg.TouchDragSensitivity
		}
		if math.Abs(d.startPos.X-evt.X) < sens && math.Abs(d.startPos.Y-evt.Y) < sens {
			return
		}
		d.testing = false
		n.dragBegin(evt.TouchID)
	}

	if s.dragging == n && evt.TouchID == d.touchID {
		n.dragMoveTo(s, evt.X, evt.Y)
	}
}

func (n *Node) dragMoveTo(s *Stage, x, y float64) {
	d := n.drag
	xx := x - d.globalStart.X + d.globalRect.X
	yy := y - d.globalStart.Y + d.globalRect.Y

	if n.DragBounds != nil {
		r := s.root.LocalToGlobalRect(*n.DragBounds)
		if xx < r.X {
			xx = r.X
		} else if xx+d.globalRect.Width > r.XMax() {
			xx = r.XMax() - d.globalRect.Width
			if xx < r.X {
				xx = r.X
			}
		}
		if yy < r.Y {
			yy = r.Y
		} else if yy+d.globalRect.Height > r.YMax() {
			yy = r.YMax() - d.globalRect.Height
			if yy < r.Y {
				yy = r.Y
			}
		}
	}

	px, py := xx, yy
	if n.Parent != nil {
		px, py = n.Parent.GlobalToLocal(xx, yy)
	}
	if math.IsNaN(px) || math.IsNaN(py) {
		return
	}
	n.SetXY(math.Round(px)+d.offX, math.Round(py)+d.offY)
	n.DispatchEvent(EventDragMove, nil)
	s.emitInteractionEvent(EventDragMove, n, &s.touches[d.touchID], nil)
}

func (n *Node) dragTouchEnd(ctx *EventContext) {
	s := n.Stage()
	if s == nil {
		return
	}
	n.drag.testing = false
	if s.dragging != n {
		return
	}
	s.dragging = nil
	n.releaseDragListeners()
	ts := &s.touches[n.drag.touchID]
	s.emitInteractionEvent(EventDragEnd, n, ts, nil)
	n.DispatchEvent(EventDragEnd, nil)
}
