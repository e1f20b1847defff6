package fgui

// Event type names. Types are plain strings so applications can define their
// own; these are the ones the runtime itself dispatches or reserves.
const (
	EventChanged          = "onChanged"
	EventSubmit           = "onSubmit"
	EventMove             = "onMove"
	EventEnd              = "onEnd"
	EventTurnComplete     = "onTurnComplete"
	EventPlayEnd          = "onPlayEnd"
	EventLongPressBegin   = "onLongPressBegin"
	EventLongPressEnd     = "onLongPressEnd"
	EventLongPressAction  = "onLongPressAction"
	EventPinchBegin       = "onPinchBegin"
	EventPinchEnd         = "onPinchEnd"
	EventPinchAction      = "onPinchAction"
	EventRotationBegin    = "onRotationBegin"
	EventRotationEnd      = "onRotationEnd"
	EventRotationAction   = "onRotationAction"
	EventSwipeBegin       = "onSwipeBegin"
	EventSwipeEnd         = "onSwipeEnd"
	EventSwipeMove        = "onSwipeMove"
	EventSwipeAction      = "onSwipeAction"
	EventClickNode        = "onClickNode"
	EventRightClickNode   = "onRightClickNode"
	EventDrop             = "onDrop"
	EventClickItem        = "onClickItem"
	EventRightClickItem   = "onRightClickItem"
	EventGripTouchEnd     = "onGripTouchEnd"
	EventPopup            = "onPopup"
	EventClose            = "onClose"
	EventScroll           = "onScroll"
	EventScrollEnd        = "onScrollEnd"
	EventPullDownRelease  = "onPullDownRelease"
	EventPullUpRelease    = "onPullUpRelease"
	EventKeyUp            = "onKeyUp"
	EventKeyDown          = "onKeyDown"
	EventStageResized     = "onStageResized"
	EventMouseWheel       = "onMouseWheel"
	EventTouchBegin       = "onTouchBegin"
	EventTouchMove        = "onTouchMove"
	EventTouchEnd         = "onTouchEnd"
	EventRollOver         = "onRollOver"
	EventRollOut          = "onRollOut"
	EventFocusIn          = "onFocusIn"
	EventFocusOut         = "onFocusOut"
	EventGearStop         = "onGearStop"
	EventDragStart        = "onDragStart"
	EventDragMove         = "onDragMove"
	EventDragEnd          = "onDragEnd"
	EventSizeChanged      = "onSizeChanged"
	EventPositionChanged  = "onPositionChanged"
	EventClickLink        = "onClickLink"
	EventAddedToStage     = "onAddedToStage"
	EventRemovedFromStage = "onRemovedFromStage"
	EventClick            = "onClick"
	EventRightClick       = "onRightClick"
)

// --- Named listener accessors ---

// OnClick returns the listener for a left or middle button click.
func (n *Node) OnClick() *EventListener { return n.On(EventClick) }

// OnRightClick returns the listener for a right button click.
func (n *Node) OnRightClick() *EventListener { return n.On(EventRightClick) }

// OnTouchBegin returns the listener for a press on the node or a descendant.
func (n *Node) OnTouchBegin() *EventListener { return n.On(EventTouchBegin) }

// OnTouchMove returns the listener for pointer movement while pressed. Hover
// moves reach the root only.
func (n *Node) OnTouchMove() *EventListener { return n.On(EventTouchMove) }

// OnTouchEnd returns the listener for the release of a touch that began on
// the node or was captured by it.
func (n *Node) OnTouchEnd() *EventListener { return n.On(EventTouchEnd) }

// OnRollOver returns the listener for the mouse entering the node. It does not bubble.
func (n *Node) OnRollOver() *EventListener { return n.On(EventRollOver) }

// OnRollOut returns the listener for the mouse leaving the node. It does not bubble.
func (n *Node) OnRollOut() *EventListener { return n.On(EventRollOut) }

// OnFocusIn returns the listener for the node gaining focus.
func (n *Node) OnFocusIn() *EventListener { return n.On(EventFocusIn) }

// OnFocusOut returns the listener for the node losing focus.
func (n *Node) OnFocusOut() *EventListener { return n.On(EventFocusOut) }

// OnAddedToStage returns the listener for the node's subtree joining a stage.
func (n *Node) OnAddedToStage() *EventListener { return n.On(EventAddedToStage) }

// OnRemovedFromStage returns the listener for the node's subtree leaving a stage.
func (n *Node) OnRemovedFromStage() *EventListener { return n.On(EventRemovedFromStage) }

// OnPositionChanged returns the listener for SetXY moving the node.
func (n *Node) OnPositionChanged() *EventListener { return n.On(EventPositionChanged) }

// OnSizeChanged returns the listener for SetSize resizing the node.
func (n *Node) OnSizeChanged() *EventListener { return n.On(EventSizeChanged) }

// OnDragStart returns the listener for the node starting to drag.
// PreventDefault cancels the drag.
func (n *Node) OnDragStart() *EventListener { return n.On(EventDragStart) }

// OnDragMove returns the listener for each move of a dragging node.
func (n *Node) OnDragMove() *EventListener { return n.On(EventDragMove) }

// OnDragEnd returns the listener for the end of a drag.
func (n *Node) OnDragEnd() *EventListener { return n.On(EventDragEnd) }

// OnDrop returns the listener for a drag & drop released over the node.
func (n *Node) OnDrop() *EventListener { return n.On(EventDrop) }

// OnChanged returns the listener for a change of the node's value, such as
// typing progress.
func (n *Node) OnChanged() *EventListener { return n.On(EventChanged) }
