package vmath

// RectF is an axis-aligned rectangle, top-left origin
type RectF struct {
	X, Y, W, H float64
}

func (r RectF) Right() float64  { return r.X + r.W }
func (r RectF) Bottom() float64 { return r.Y + r.H }

// SpanOverlap reports whether [a0, a1] and [b0, b1] intersect; touching counts
func SpanOverlap(a0, a1, b0, b1 float64) bool {
	return a0 <= b1 && b0 <= a1
}

// EdgeWithin reports whether a leading edge coordinate lies in [lo, hi]
func EdgeWithin(edge, lo, hi float64) bool {
	return edge >= lo && edge <= hi
}
