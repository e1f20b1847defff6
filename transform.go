package fgui

import "math"

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// computeLocalTransform computes the local affine matrix from the node's
// transform properties. Returns [a, b, c, d, tx, ty].
//
// Composition order:
//
//	Translate(-PivotX, -PivotY) -> Scale -> Rotate -> Translate(X, Y)
func computeLocalTransform(n *Node) [6]float64 {
	sx := n.ScaleX
	sy := n.ScaleY
	px := n.PivotX
	py := n.PivotY

	if n.Rotation == 0 {
		return [6]float64{sx, 0, 0, sy, n.X - px*sx, n.Y - py*sy}
	}

	sin, cos := math.Sincos(n.Rotation)
	preTx := -px * sx
	preTy := -py * sy
	return [6]float64{
		cos * sx, sin * sx,
		-sin * sy, cos * sy,
		cos*preTx - sin*preTy + n.X,
		sin*preTx + cos*preTy + n.Y,
	}
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular.
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// globalTransform composes local transforms up to the root. The root's own
// transform is included, so global space is the space the root lives in.
func (n *Node) globalTransform() [6]float64 {
	m := computeLocalTransform(n)
	for p := n.Parent; p != nil; p = p.Parent {
		m = multiplyAffine(computeLocalTransform(p), m)
	}
	return m
}

// --- Geometry setters ---

// SetXY moves the node and dispatches onPositionChanged when it moved.
func (n *Node) SetXY(x, y float64) {
	if n.X == x && n.Y == y {
		return
	}
	n.X = x
	n.Y = y
	n.DispatchEvent(EventPositionChanged, nil)
}

// SetSize resizes the node and dispatches onSizeChanged when it changed.
func (n *Node) SetSize(w, h float64) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	if n.Width == w && n.Height == h {
		return
	}
	n.Width = w
	n.Height = h
	n.DispatchEvent(EventSizeChanged, nil)
}

// SetScale sets the node's ScaleX and ScaleY.
func (n *Node) SetScale(sx, sy float64) {
	n.ScaleX = sx
	n.ScaleY = sy
}

// SetRotation sets the node's rotation in radians.
func (n *Node) SetRotation(r float64) {
	n.Rotation = r
}

// SetPivot sets the node's pivot in local pixels. X/Y place the pivot.
func (n *Node) SetPivot(px, py float64) {
	n.PivotX = px
	n.PivotY = py
}

// --- Coordinate conversion ---

// GlobalToLocal converts a point in root space to this node's local space.
func (n *Node) GlobalToLocal(gx, gy float64) (lx, ly float64) {
	return transformPoint(invertAffine(n.globalTransform()), gx, gy)
}

// LocalToGlobal converts a local-space point to root space.
func (n *Node) LocalToGlobal(lx, ly float64) (gx, gy float64) {
	return transformPoint(n.globalTransform(), lx, ly)
}

// LocalToGlobalRect returns the root-space bounding box of a local rectangle.
func (n *Node) LocalToGlobalRect(r Rect) Rect {
	m := n.globalTransform()
	x0, y0 := transformPoint(m, r.X, r.Y)
	minX, minY, maxX, maxY := x0, y0, x0, y0
	corners := [3][2]float64{{r.XMax(), r.Y}, {r.X, r.YMax()}, {r.XMax(), r.YMax()}}
	for _, c := range corners {
		x, y := transformPoint(m, c[0], c[1])
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// GlobalBounds returns the node's Width x Height box in root space.
func (n *Node) GlobalBounds() Rect {
	return n.LocalToGlobalRect(Rect{Width: n.Width, Height: n.Height})
}
