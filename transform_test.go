package fgui

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, name string, got, want [6]float64) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

// --- computeLocalTransform ---

func TestLocalTransformIdentity(t *testing.T) {
	n := NewNode("test")
	got := computeLocalTransform(n)
	assertMatrix(t, "identity", got, [6]float64{1, 0, 0, 1, 0, 0})
}

func TestLocalTransformTranslation(t *testing.T) {
	n := NewNode("test")
	n.X = 10
	n.Y = 20
	got := computeLocalTransform(n)
	assertMatrix(t, "translation", got, [6]float64{1, 0, 0, 1, 10, 20})
}

func TestLocalTransformScale(t *testing.T) {
	n := NewNode("test")
	n.SetScale(2, 3)
	got := computeLocalTransform(n)
	assertMatrix(t, "scale", got, [6]float64{2, 0, 0, 3, 0, 0})
}

func TestLocalTransformRotation90(t *testing.T) {
	n := NewNode("test")
	n.SetRotation(math.Pi / 2)
	got := computeLocalTransform(n)
	assertMatrix(t, "rot90", got, [6]float64{0, 1, -1, 0, 0, 0})
}

func TestLocalTransformPivot(t *testing.T) {
	n := NewNode("test")
	n.SetPivot(5, 5)
	n.X = 50
	n.Y = 50
	got := computeLocalTransform(n)
	// The pivot lands on (X, Y).
	x, y := transformPoint(got, 5, 5)
	assertNear(t, "pivot x", x, 50)
	assertNear(t, "pivot y", y, 50)
	assertMatrix(t, "pivot", got, [6]float64{1, 0, 0, 1, 45, 45})
}

func TestLocalTransformPivotRotation(t *testing.T) {
	n := NewBox("test", 10, 10)
	n.SetPivot(5, 5)
	n.SetRotation(math.Pi)
	n.X, n.Y = 20, 20
	m := computeLocalTransform(n)
	x, y := transformPoint(m, 5, 5)
	assertNear(t, "pivot x", x, 20)
	assertNear(t, "pivot y", y, 20)
	x, y = transformPoint(m, 0, 0)
	assertNear(t, "corner x", x, 25)
	assertNear(t, "corner y", y, 25)
}

// --- Matrix helpers ---

func TestMultiplyAffineIdentity(t *testing.T) {
	m := [6]float64{2, 0.5, -1, 3, 7, 9}
	assertMatrix(t, "I*m", multiplyAffine(identityTransform, m), m)
	assertMatrix(t, "m*I", multiplyAffine(m, identityTransform), m)
}

func TestMultiplyAffineTranslations(t *testing.T) {
	a := [6]float64{1, 0, 0, 1, 10, 20}
	b := [6]float64{1, 0, 0, 1, 5, 7}
	assertMatrix(t, "a*b", multiplyAffine(a, b), [6]float64{1, 0, 0, 1, 15, 27})
}

func TestInvertAffine(t *testing.T) {
	m := [6]float64{2, 0, 0, 4, 10, 20}
	inv := invertAffine(m)
	assertMatrix(t, "m*inv", multiplyAffine(m, inv), identityTransform)
}

func TestInvertAffineSingular(t *testing.T) {
	inv := invertAffine([6]float64{0, 0, 0, 0, 5, 5})
	assertMatrix(t, "singular", inv, identityTransform)
}

// --- Global space ---

func TestLocalToGlobalNested(t *testing.T) {
	root := NewNode("root")
	parent := NewNode("parent")
	parent.X, parent.Y = 100, 50
	parent.SetScale(2, 2)
	child := NewNode("child")
	child.X, child.Y = 10, 10
	root.AddChild(parent)
	parent.AddChild(child)

	gx, gy := child.LocalToGlobal(1, 1)
	assertNear(t, "gx", gx, 122)
	assertNear(t, "gy", gy, 72)

	lx, ly := child.GlobalToLocal(gx, gy)
	assertNear(t, "lx", lx, 1)
	assertNear(t, "ly", ly, 1)
}

func TestGlobalToLocalRoundtripRotated(t *testing.T) {
	root := NewNode("root")
	n := NewBox("n", 40, 20)
	n.X, n.Y = 30, 30
	n.SetPivot(20, 10)
	n.SetRotation(0.7)
	n.SetScale(1.5, 0.5)
	root.AddChild(n)

	gx, gy := n.LocalToGlobal(3, 4)
	lx, ly := n.GlobalToLocal(gx, gy)
	assertNear(t, "lx", lx, 3)
	assertNear(t, "ly", ly, 4)
}

func TestGlobalBoundsRotated(t *testing.T) {
	n := NewBox("n", 10, 20)
	n.SetRotation(math.Pi / 2)
	r := n.GlobalBounds()
	assertNear(t, "x", r.X, -20)
	assertNear(t, "y", r.Y, 0)
	assertNear(t, "w", r.Width, 20)
	assertNear(t, "h", r.Height, 10)
}

// --- Setters ---

func TestSetXYDispatchesOnChange(t *testing.T) {
	n := NewNode("n")
	var moves int
	n.OnPositionChanged().Add0(NewCallback0(func() { moves++ }))
	n.SetXY(5, 5)
	n.SetXY(5, 5)
	n.SetXY(6, 5)
	if moves != 2 {
		t.Errorf("moves = %d, want 2", moves)
	}
}

func TestSetSizeClampsAndDispatches(t *testing.T) {
	n := NewNode("n")
	var sizes int
	n.OnSizeChanged().Add0(NewCallback0(func() { sizes++ }))
	n.SetSize(-5, 10)
	if n.Width != 0 || n.Height != 10 {
		t.Errorf("size = %vx%v, want 0x10", n.Width, n.Height)
	}
	n.SetSize(0, 10)
	if sizes != 1 {
		t.Errorf("size events = %d, want 1", sizes)
	}
}
