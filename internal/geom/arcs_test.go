package geom

import (
	"math"
	"testing"
)

// circlePoints samples n points evenly along an arc of the given angular
// sweep (degrees), starting at startDeg.
func circlePoints(cx, cy, r float64, startDeg, sweepDeg float64, n int) []Point {
	pts := make([]Point, n)
	for i := 0; i < n; i++ {
		a := (startDeg + sweepDeg*float64(i)/float64(n-1)) * math.Pi / 180
		pts[i] = Point{X: cx + r*math.Cos(a), Y: cy + r*math.Sin(a)}
	}
	return pts
}

func TestFitArcsRecoverCircle(t *testing.T) {
	// 15 points evenly around a 270-degree sweep of a radius-40 circle.
	pts := circlePoints(200, 150, 40, 0, 270, 15)

	arcs := FitArcs(pts, 20)
	if len(arcs) == 0 {
		t.Fatal("expected at least one arc from a clean circular contour")
	}
	for _, a := range arcs {
		if !almostEqual(a.Center.X, 200, 1) || !almostEqual(a.Center.Y, 150, 1) {
			t.Errorf("fitted center %v should be within ~1px of (200,150)", a.Center)
		}
		if !almostEqual(a.Radius, 40, 2) {
			t.Errorf("fitted radius %v should be within ~2px of 40", a.Radius)
		}
		if a.Span() < 20 {
			t.Errorf("accepted arc span %v below the 20 degree minimum", a.Span())
		}
	}
}

func TestFitArcsValidityBounds(t *testing.T) {
	// Property check over a mixed bag of contours: every emitted arc obeys
	// the radius and span bounds.
	contours := [][]Point{
		circlePoints(0, 0, 40, 10, 300, 24),
		circlePoints(500, 500, 90, 45, 180, 16),
		circlePoints(50, 50, 12, 0, 350, 30),
	}
	for ci, c := range contours {
		for _, a := range FitArcs(c, 20) {
			if a.Radius <= 5 || a.Radius >= 1e5 {
				t.Errorf("contour %d: radius %v outside plausible bounds", ci, a.Radius)
			}
			if a.Span() < 20 {
				t.Errorf("contour %d: span %v below minimum", ci, a.Span())
			}
		}
	}
}

func TestFitArcsStraightContourRejected(t *testing.T) {
	// Collinear points make the normal equations singular or the fitted
	// radius absurd; either way nothing may be emitted.
	line := make([]Point, 20)
	for i := range line {
		line[i] = Point{X: float64(i) * 5, Y: 10}
	}
	if arcs := FitArcs(line, 20); len(arcs) != 0 {
		t.Errorf("straight contour should produce no arcs, got %v", arcs)
	}
}

func TestFitArcsShortContourRejected(t *testing.T) {
	if arcs := FitArcs(circlePoints(0, 0, 40, 0, 90, 7), 20); arcs != nil {
		t.Errorf("contours under 8 points should produce no arcs, got %v", arcs)
	}
}

func TestFitArcsShallowSpanRejected(t *testing.T) {
	// A gentle curve whose windows sweep less than the minimum span.
	pts := circlePoints(0, 0, 5000, 0, 4, 40)
	for _, a := range FitArcs(pts, 20) {
		t.Errorf("shallow arc with span %v should have been rejected", a.Span())
	}
}

func TestFitArcsTinyRadiusRejected(t *testing.T) {
	pts := circlePoints(0, 0, 2, 0, 300, 20)
	if arcs := FitArcs(pts, 20); len(arcs) != 0 {
		t.Errorf("radius-2 fits are below the plausible minimum, got %v", arcs)
	}
}
