package render

import "math"

// Point is a 2D point in pixels.
type Point struct {
	X, Y float64
}

// Segment is a cubic Bézier segment of the player outline.
type Segment struct {
	C1, C2, End Point
}

// playerStart and playerSegments describe the teardrop outline around the
// shape origin, nose pointing along +X.
var (
	playerStart    = Point{-7.5, 1.62413}
	playerSegments = []Segment{
		{Point{-7.5, -3.41682}, Point{-3.41682, -7.5}, Point{1.62414, -7.5}},
		{Point{6.6651, -7.5}, Point{11.32759, -1.96855}, Point{13.5, 1.62413}},
		{Point{11.47241, 4.34785}, Point{6.6651, 10.74828}, Point{1.62414, 10.74828}},
		{Point{-3.41682, 10.74828}, Point{-7.5, 6.6651}, Point{-7.5, 1.62413}},
	}
)

// PlayerOutline returns the outline rotated by rotation degrees about the
// origin and translated to (x, y).
func PlayerOutline(x, y, rotation float64) (Point, []Segment) {
	sin, cos := math.Sincos(rotation * math.Pi / 180)
	tr := func(p Point) Point {
		return Point{
			X: x + p.X*cos - p.Y*sin,
			Y: y + p.X*sin + p.Y*cos,
		}
	}

	segs := make([]Segment, len(playerSegments))
	for i, s := range playerSegments {
		segs[i] = Segment{C1: tr(s.C1), C2: tr(s.C2), End: tr(s.End)}
	}
	return tr(playerStart), segs
}
