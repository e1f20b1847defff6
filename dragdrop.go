package fgui

// DragDropManager drags a stand-in node (the agent) instead of the source.
// When the touch is released, the first node under the pointer (or ancestor
// of it) that listens for onDrop receives the source data.
type DragDropManager struct {
	stage *Stage

	agent      *Node
	source     *Node
	sourceData any

	dragEnd *EventCallback1
}

func newDragDropManager(s *Stage) *DragDropManager {
	m := &DragDropManager{stage: s}
	m.dragEnd = NewCallback1(m.handleDragEnd)
	return m
}

// DragAgent returns the node being dragged, or nil.
func (m *DragDropManager) DragAgent() *Node {
	return m.agent
}

// Dragging reports whether an agent is on stage.
func (m *DragDropManager) Dragging() bool {
	return m.agent != nil && m.agent.Parent != nil
}

// StartDrag adds agent to the root under the pointer of touchID (-1 = most
// recent touch) and starts dragging it. sourceData becomes the onDrop payload
// and source its initiator. onEnd, when non-nil, is added to the agent's
// onDragEnd listeners. No-op while another drag is running.
func (m *DragDropManager) StartDrag(source, agent *Node, sourceData any, onEnd *EventCallback1, touchID int) {
	if agent == nil || m.Dragging() {
		return
	}
	m.source = source
	m.sourceData = sourceData
	m.agent = agent

	agent.Touchable = false
	agent.SetDraggable(true)
	agent.SetPivot(agent.Width/2, agent.Height/2)
	if agent != source {
		agent.On(EventDragEnd).Clear()
	}
	agent.On(EventDragEnd).Add(m.dragEnd)
	agent.On(EventDragEnd).Add(onEnd)

	root := m.stage.root
	root.AddChild(agent)
	p := m.stage.GetTouchPosition(touchID)
	lx, ly := root.GlobalToLocal(p.X, p.Y)
	agent.SetXY(lx, ly)
	agent.StartDrag(touchID)
}

// DefaultDragScale is the scale StartDragSource applies when given none.
const DefaultDragScale = 1.5

// StartDragSource drags source itself: it is moved to the root, scaled by
// scale (values <= 0 mean DefaultDragScale) and made untouchable so drop
// targets can be hit-tested beneath it.
func (m *DragDropManager) StartDragSource(source *Node, sourceData any, onEnd *EventCallback1, touchID int, scale float64) {
	if source == nil || m.Dragging() {
		return
	}
	if scale <= 0 {
		scale = DefaultDragScale
	}
	source.RemoveFromParent()
	source.SetScale(scale, scale)
	m.StartDrag(source, source, sourceData, onEnd, touchID)
}

// Cancel stops the running drag without a drop.
func (m *DragDropManager) Cancel() {
	if !m.Dragging() {
		return
	}
	agent := m.agent
	agent.StopDrag()
	m.stage.root.RemoveChild(agent)
	agent.On(EventDragEnd).Remove(m.dragEnd)
	if agent != m.source {
		agent.On(EventDragEnd).Clear()
	}
	m.agent = nil
	m.sourceData = nil
	m.source = nil
}

func (m *DragDropManager) handleDragEnd(ctx *EventContext) {
	agent := m.agent
	if agent == nil || agent.Parent == nil {
		// cancelled
		return
	}
	s := m.stage
	s.root.RemoveChild(agent)

	data, source := m.sourceData, m.source
	m.sourceData = nil
	m.source = nil
	m.agent = nil
	agent.On(EventDragEnd).Remove(m.dragEnd)
	if agent != source {
		agent.On(EventDragStart).Clear()
		agent.On(EventDragMove).Clear()
		agent.On(EventDragEnd).Clear()
	}

	var initiator any
	if source != nil {
		initiator = source
	}

	for obj := s.TouchTarget(); obj != nil; obj = obj.Parent {
		if obj.HasEventListeners(EventDrop) {
			obj.RequestFocus()
			s.emitInteractionEvent(EventDrop, obj, &s.touches[s.lastTouchID], data)
			obj.DispatchEventFrom(EventDrop, data, initiator)
			return
		}
	}
}
