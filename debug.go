package fgui

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"
)

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree or dispatch operation. Only called in debug mode; in release
// mode callers skip this entirely.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("fgui debug: %s on disposed node %q", op, n.Name))
	}
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[fgui] warning: tree depth %d exceeds %d (node %q)\n",
			depth, debugMaxTreeDepth, n.Name)
	}
}

// debugCheckChildCount warns on stderr if a node has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		_, _ = fmt.Fprintf(os.Stderr, "[fgui] warning: node %q has %d children (threshold %d)\n",
			n.Name, len(n.children), debugMaxChildCount)
	}
}

// debugCheckDispatchDepth warns when listeners keep dispatching from inside
// dispatches, which usually means two listeners trigger each other.
const debugMaxDispatchDepth = 16

func debugCheckDispatchDepth(n *Node, typ string) {
	if dispatchDepth > debugMaxDispatchDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[fgui] warning: nested dispatch depth %d exceeds %d (%s on %q)\n",
			dispatchDepth, debugMaxDispatchDepth, typ, n.Name)
	}
}

// DumpListeners writes one line per node in the subtree that has listeners,
// with the listener count per event type. Intended for debugging.
func DumpListeners(n *Node) string {
	var sb strings.Builder
	dumpListeners(&sb, n, 0)
	return sb.String()
}

func dumpListeners(sb *strings.Builder, n *Node, depth int) {
	first := true
	for _, typ := range slices.Sorted(maps.Keys(n.bridges)) {
		b := n.bridges[typ]
		if b.IsEmpty() {
			continue
		}
		if first {
			fmt.Fprintf(sb, "%s%s:", strings.Repeat("  ", depth), n.Name)
			first = false
		}
		fmt.Fprintf(sb, " %s(%d)", typ, len(b.callback0)+len(b.callback1)+len(b.capture))
	}
	if !first {
		sb.WriteByte('\n')
	}
	for _, c := range n.children {
		dumpListeners(sb, c, depth+1)
	}
}
