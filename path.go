package fgui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrPathNotFound is returned by FindByPath when a segment does not resolve.
var ErrPathNotFound = errors.New("fgui: path not found")

// Path returns the slash-separated names from the root down to n,
// e.g. "GRoot/Bag/Slot3".
func (n *Node) Path() string {
	var names []string
	for p := n; p != nil; p = p.Parent {
		names = append(names, p.Name)
	}
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return strings.Join(names, "/")
}

// pathSegments splits path and drops empty segments and a leading root name.
func pathSegments(root *Node, path string) []string {
	var segs []string
	for _, s := range strings.Split(path, "/") {
		if s == "" {
			continue
		}
		if len(segs) == 0 && (s == root.Name || s == "GRoot") {
			continue
		}
		segs = append(segs, s)
	}
	return segs
}

// FindByPath resolves path below root. A segment "$N" matches a child named
// "$N" or, failing that, the child at index N.
func FindByPath(root *Node, path string) (*Node, error) {
	cur := root
	for _, seg := range pathSegments(root, path) {
		child := cur.ChildByName(seg)
		if child == nil && strings.HasPrefix(seg, "$") {
			idx, err := strconv.Atoi(seg[1:])
			if err != nil {
				return nil, fmt.Errorf("find %q: bad index segment %q: %w", path, seg, err)
			}
			if idx >= 0 && idx < cur.NumChildren() {
				child = cur.ChildAt(idx)
			}
		}
		if child == nil {
			return nil, fmt.Errorf("find %q at %q: %w", path, seg, ErrPathNotFound)
		}
		cur = child
	}
	return cur, nil
}

// IsIncludePath reports whether path names n or one of its ancestors, matching
// from the top of the tree. "$N" segments also match by child index. The
// special path "all" never matches.
func (n *Node) IsIncludePath(path string) bool {
	if strings.ToLower(path) == "all" {
		return false
	}
	root := n.Root()
	segs := pathSegments(root, path)

	var chain []*Node
	for p := n; p != nil && p != root; p = p.Parent {
		chain = append(chain, p)
	}
	if len(chain) < len(segs) {
		return false
	}
	// chain is leaf first; segs are top first.
	for i, seg := range segs {
		node := chain[len(chain)-1-i]
		if node.Name == seg {
			continue
		}
		if !strings.HasPrefix(seg, "$") {
			return false
		}
		idx, err := strconv.Atoi(seg[1:])
		if err != nil || node.Parent == nil || node.Parent.ChildIndex(node) != idx {
			return false
		}
	}
	return true
}
