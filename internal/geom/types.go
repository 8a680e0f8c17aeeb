package geom

import "math"

// Point is a 2D position in pixel coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Dist returns the Euclidean distance to q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// DistSq returns the squared distance to q. Used where only comparison
// matters, avoiding the square root.
func (p Point) DistSq(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

// Finite reports whether both coordinates are finite numbers.
func (p Point) Finite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Segment is an undirected line segment between two points.
type Segment struct {
	P1 Point `json:"p1"`
	P2 Point `json:"p2"`
}

// Seg constructs a segment from raw coordinates.
func Seg(x1, y1, x2, y2 float64) Segment {
	return Segment{Point{x1, y1}, Point{x2, y2}}
}

// Length returns the segment's length in pixels.
func (s Segment) Length() float64 {
	return s.P1.Dist(s.P2)
}

// Angle returns the segment's orientation in degrees, normalized to [0, 180).
// Direction is irrelevant for detections, so 10 and 190 degrees are the same
// orientation.
func (s Segment) Angle() float64 {
	a := math.Atan2(s.P2.Y-s.P1.Y, s.P2.X-s.P1.X) * 180 / math.Pi
	a = math.Mod(a, 180)
	if a < 0 {
		a += 180
	}
	return a
}

// Bounds returns the segment's axis-aligned bounding box.
func (s Segment) Bounds() Rect {
	return RectFromCorners(s.P1, s.P2)
}

// Finite reports whether all four coordinates are finite.
func (s Segment) Finite() bool {
	return s.P1.Finite() && s.P2.Finite()
}

// Rect is an axis-aligned rectangle with Min at the top-left and Max at the
// bottom-right. Door/opening boxes and bounding boxes use this type.
type Rect struct {
	Min Point `json:"min"`
	Max Point `json:"max"`
}

// RectFromCorners builds a normalized rectangle from two arbitrary corners.
func RectFromCorners(p, q Point) Rect {
	return Rect{
		Min: Point{math.Min(p.X, q.X), math.Min(p.Y, q.Y)},
		Max: Point{math.Max(p.X, q.X), math.Max(p.Y, q.Y)},
	}
}

// Box builds a rectangle from a top-left corner and a width/height pair,
// the (x, y, w, h) convention door boxes arrive in.
func Box(x, y, w, h float64) Rect {
	return RectFromCorners(Point{x, y}, Point{x + w, y + h})
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the vertical extent.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Overlaps reports whether r and o intersect. Touching edges count as
// overlap: a closure segment grazing a door box is still rejected.
func (r Rect) Overlaps(o Rect) bool {
	return r.Min.X <= o.Max.X && o.Min.X <= r.Max.X &&
		r.Min.Y <= o.Max.Y && o.Min.Y <= r.Max.Y
}

// Contains reports whether the point lies inside or on the boundary.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Finite reports whether all four coordinates are finite.
func (r Rect) Finite() bool {
	return r.Min.Finite() && r.Max.Finite()
}

// Arc is a circular arc. Angles are degrees measured from the positive X
// axis; no ordering between StartDeg and EndDeg is guaranteed, the pair is
// reported as fitted.
type Arc struct {
	Center   Point   `json:"center"`
	Radius   float64 `json:"radius"`
	StartDeg float64 `json:"start_deg"`
	EndDeg   float64 `json:"end_deg"`
}

// Span returns the arc's angular extent in degrees, in [0, 180].
func (a Arc) Span() float64 {
	return angleDiff360(a.EndDeg, a.StartDeg)
}

// angleDiff180 returns the undirected orientation difference between two
// angles in degrees, in [0, 90].
func angleDiff180(a, b float64) float64 {
	d := math.Mod(a-b, 180)
	if d < 0 {
		d += 180
	}
	return math.Min(d, 180-d)
}

// angleDiff360 returns the absolute difference between two directed angles
// in degrees, in [0, 180].
func angleDiff360(a, b float64) float64 {
	d := math.Mod(a-b, 360)
	if d < 0 {
		d += 360
	}
	return math.Min(d, 360-d)
}

// projectParam returns the unclamped projection parameter t of point p onto
// the infinite line through s, with t=0 at P1 and t=1 at P2. Degenerate
// (zero-length) segments return t=0.
func projectParam(p Point, s Segment) float64 {
	dx := s.P2.X - s.P1.X
	dy := s.P2.Y - s.P1.Y
	den := dx*dx + dy*dy
	if den == 0 {
		return 0
	}
	return ((p.X-s.P1.X)*dx + (p.Y-s.P1.Y)*dy) / den
}

// pointAt returns the point at parameter t along s.
func pointAt(s Segment, t float64) Point {
	return Point{
		X: s.P1.X + t*(s.P2.X-s.P1.X),
		Y: s.P1.Y + t*(s.P2.Y-s.P1.Y),
	}
}

// closestOnSegment returns the point on the finite segment s nearest to p
// (the clamped projection).
func closestOnSegment(p Point, s Segment) Point {
	t := projectParam(p, s)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return pointAt(s, t)
}
