package fgui

// HitShape is used for custom hit testing regions.
type HitShape interface {
	Contains(x, y float64) bool
}

// --- ID counter ---

// nodeIDCounter is a plain counter (no atomic: fgui is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// --- Node ---

// Node is the UI tree element and the event dispatcher. A single flat struct
// is used for all node kinds to avoid interface dispatch on the hot path.
type Node struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Node
	children []*Node

	// Geometry (local, parent space)
	X, Y          float64
	Width, Height float64
	ScaleX        float64
	ScaleY        float64
	Rotation      float64
	PivotX        float64
	PivotY        float64

	// Visibility & interaction
	Visible   bool
	Touchable bool
	HitShape  HitShape

	// Metadata
	Data     any
	EntityID uint32

	// DragBounds limits dragging, in root coordinates. Nil means unbounded.
	DragBounds *Rect

	// Events
	bridges   map[string]*EventBridge
	listeners map[string]*EventListener

	// Drag (drag.go)
	draggable bool
	drag      *dragState

	// Set only on a stage root.
	stage *Stage

	disposed bool
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.ScaleX = 1
	n.ScaleY = 1
	n.Visible = true
	n.Touchable = true
}

// NewNode creates an empty node with no size. Give it a Width/Height or a
// HitShape to make it hit-testable.
func NewNode(name string) *Node {
	n := &Node{Name: name}
	nodeDefaults(n)
	return n
}

// NewBox creates a node with the given size.
func NewBox(name string, w, h float64) *Node {
	n := &Node{Name: name, Width: w, Height: h}
	nodeDefaults(n)
	return n
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	n.AddChildAt(child, len(n.children))
}

// AddChildAt inserts child at the given index.
// Same reparenting and cycle-check behavior as AddChild.
func (n *Node) AddChildAt(child *Node, index int) {
	if child == nil {
		panic("fgui: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChildAt (parent)")
		debugCheckDisposed(child, "AddChildAt (child)")
	}
	if isAncestor(child, n) {
		panic("fgui: adding child would create a cycle")
	}
	if child.Parent == n {
		if index > len(n.children)-1 {
			index = len(n.children) - 1
		}
		n.SetChildIndex(child, index)
		return
	}
	if index < 0 || index > len(n.children) {
		panic("fgui: child index out of range")
	}
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = n
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
	if n.OnStage() {
		child.BroadcastEvent(EventAddedToStage, nil)
	}
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if globalDebug {
		debugCheckDisposed(n, "RemoveChild (parent)")
		debugCheckDisposed(child, "RemoveChild (child)")
	}
	if child.Parent != n {
		panic("fgui: child's parent is not this node")
	}
	n.detach(child)
}

// RemoveChildAt removes and returns the child at the given index.
func (n *Node) RemoveChildAt(index int) *Node {
	if globalDebug {
		debugCheckDisposed(n, "RemoveChildAt")
	}
	if index < 0 || index >= len(n.children) {
		panic("fgui: child index out of range")
	}
	child := n.children[index]
	n.detach(child)
	return child
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// RemoveChildren detaches all children from this node.
// Children are NOT disposed.
func (n *Node) RemoveChildren() {
	for len(n.children) > 0 {
		n.detach(n.children[len(n.children)-1])
	}
}

// detach broadcasts the removal while the subtree is still attached, then
// unlinks it.
func (n *Node) detach(child *Node) {
	if n.OnStage() {
		if s := n.Stage(); s != nil {
			s.nodeRemoved(child)
		}
		child.BroadcastEvent(EventRemovedFromStage, nil)
	}
	n.removeChildByPtr(child)
	child.Parent = nil
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// ChildIndex returns the index of child, or -1.
func (n *Node) ChildIndex(child *Node) int {
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	return -1
}

// ChildByName returns the first direct child with the given name, or nil.
func (n *Node) ChildByName(name string) *Node {
	for _, c := range n.children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// SetChildIndex moves child to a new index among its siblings.
func (n *Node) SetChildIndex(child *Node, index int) {
	if child.Parent != n {
		panic("fgui: child's parent is not this node")
	}
	nc := len(n.children)
	if index < 0 || index >= nc {
		panic("fgui: child index out of range")
	}
	oldIndex := n.ChildIndex(child)
	if oldIndex == index {
		return
	}
	// Shift elements to fill the gap and open the target slot.
	if oldIndex < index {
		copy(n.children[oldIndex:], n.children[oldIndex+1:index+1])
	} else {
		copy(n.children[index+1:], n.children[index:oldIndex])
	}
	n.children[index] = child
}

// Root returns the topmost ancestor (n itself when it has no parent).
func (n *Node) Root() *Node {
	r := n
	for r.Parent != nil {
		r = r.Parent
	}
	return r
}

// Stage returns the stage this node is attached to, or nil.
func (n *Node) Stage() *Stage {
	return n.Root().stage
}

// OnStage reports whether the node is attached to a stage root.
func (n *Node) OnStage() bool {
	return n.Root().stage != nil
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants. All listeners are dropped.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	if n.Dragging() {
		n.StopDrag()
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	for _, b := range n.bridges {
		b.Clear()
	}
	n.bridges = nil
	n.listeners = nil
	n.children = nil
	n.Parent = nil
	n.HitShape = nil
	n.Data = nil
	n.drag = nil
	n.draggable = false
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is node or one of its ancestors.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// IsAncestorOf reports whether n is other or contains it.
func (n *Node) IsAncestorOf(other *Node) bool {
	return other != nil && isAncestor(n, other)
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
