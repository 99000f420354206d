package gamemath

// Rect is an axis-aligned bounding box. It is a value type: entities own their
// position and size and build a fresh Rect on demand, nothing mutates one in place.
type Rect struct {
	X, Y, W, H float64
}

func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Left() float64    { return r.X }
func (r Rect) Right() float64   { return r.X + r.W }
func (r Rect) Top() float64     { return r.Y }
func (r Rect) Bottom() float64  { return r.Y + r.H }
func (r Rect) CenterX() float64 { return r.X + r.W/2 }
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Intersects reports whether r and other overlap. The separation test is
// open-interval: rectangles that merely touch at an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.W &&
		r.X+r.W > other.X &&
		r.Y < other.Y+other.H &&
		r.Y+r.H > other.Y
}

// Overlap returns the penetration depth on each axis. Values can be negative
// when the rectangles are separated; callers check Intersects first.
func (r Rect) Overlap(other Rect) (dx, dy float64) {
	dx = minFloat(r.Right(), other.Right()) - maxFloat(r.Left(), other.Left())
	dy = minFloat(r.Bottom(), other.Bottom()) - maxFloat(r.Top(), other.Top())
	return dx, dy
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
