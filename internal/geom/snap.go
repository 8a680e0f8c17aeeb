package geom

// SnapAxis pulls a near-axis-aligned segment exactly onto the horizontal or
// vertical. If the segment's orientation is within axisSnapDeg of 0 degrees
// the endpoints' Y coordinates are replaced by their mean; within axisSnapDeg
// of 90 degrees, the X coordinates are. Anything else passes through
// unchanged.
//
// Snapping must happen before merging so that angle comparisons on
// axis-aligned geometry are exact afterwards.
func SnapAxis(p, q Point, axisSnapDeg float64) (Point, Point) {
	a := Segment{p, q}.Angle()
	switch {
	case angleDiff180(a, 0) <= axisSnapDeg:
		y := (p.Y + q.Y) / 2
		p.Y, q.Y = y, y
	case angleDiff180(a, 90) <= axisSnapDeg:
		x := (p.X + q.X) / 2
		p.X, q.X = x, x
	}
	return p, q
}

// snapSegment is SnapAxis lifted to a Segment.
func snapSegment(s Segment, axisSnapDeg float64) Segment {
	s.P1, s.P2 = SnapAxis(s.P1, s.P2, axisSnapDeg)
	return s
}
