package ui

// Box is an integer rectangle. A box with W<=0 or H<=0 is empty.
type Box struct {
	X, Y, W, H int
}

// rootBox is the clip in effect before any scissor is pushed.
var rootBox = Box{X: -1 << 24, Y: -1 << 24, W: 1 << 25, H: 1 << 25}

func (b Box) Empty() bool { return b.W <= 0 || b.H <= 0 }

// Contains reports whether (x, y) lies in [X, X+W) x [Y, Y+H).
func (b Box) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

// Intersect returns the overlap of b and o, or the zero Box when they are
// disjoint.
func (b Box) Intersect(o Box) Box {
	x1, y1 := max(b.X, o.X), max(b.Y, o.Y)
	x2, y2 := min(b.X+b.W, o.X+o.W), min(b.Y+b.H, o.Y+o.H)
	if x2 <= x1 || y2 <= y1 {
		return Box{}
	}
	return Box{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
}

func (b Box) Overlaps(o Box) bool { return !b.Intersect(o).Empty() }

// Inset shrinks the box by n on every side.
func (b Box) Inset(n int) Box {
	return Box{X: b.X + n, Y: b.Y + n, W: b.W - 2*n, H: b.H - 2*n}
}
