package geom

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestSnapAxisHorizontal(t *testing.T) {
	p, q := SnapAxis(Point{0, 1}, Point{100, 3}, 6)

	if p.Y != q.Y {
		t.Errorf("snapped horizontal endpoints should share Y, got %v and %v", p.Y, q.Y)
	}
	if p.Y != 2 {
		t.Errorf("shared Y should be the mean 2, got %v", p.Y)
	}
	if p.X != 0 || q.X != 100 {
		t.Errorf("X coordinates must be untouched, got %v and %v", p.X, q.X)
	}
	if a := (Segment{p, q}).Angle(); a != 0 {
		t.Errorf("post-snap angle should be exactly 0, got %v", a)
	}
}

func TestSnapAxisVertical(t *testing.T) {
	// A segment at 89 degrees from horizontal snaps fully vertical.
	rad := 89 * math.Pi / 180
	q := Point{X: 100 * math.Cos(rad), Y: 100 * math.Sin(rad)}
	p1, p2 := SnapAxis(Point{}, q, 6)

	if p1.X != p2.X {
		t.Errorf("snapped vertical endpoints should share X, got %v and %v", p1.X, p2.X)
	}
	if a := (Segment{p1, p2}).Angle(); a != 90 {
		t.Errorf("post-snap angle should be exactly 90, got %v", a)
	}
}

func TestSnapAxisPassThrough(t *testing.T) {
	p := Point{0, 0}
	q := Point{50, 50} // 45 degrees, far outside any sane tolerance
	gotP, gotQ := SnapAxis(p, q, 6)
	if gotP != p || gotQ != q {
		t.Errorf("diagonal segment must pass through unchanged, got %v-%v", gotP, gotQ)
	}
}

func TestSnapAxisNearBothAxes(t *testing.T) {
	// Angles just inside the tolerance on either side of 0/180 wrap.
	for _, deg := range []float64{1, 179, 91, 89} {
		rad := deg * math.Pi / 180
		q := Point{X: 80 * math.Cos(rad), Y: 80 * math.Sin(rad)}
		p1, p2 := SnapAxis(Point{}, q, 6)
		a := (Segment{p1, p2}).Angle()
		if a != 0 && a != 90 {
			t.Errorf("angle %v deg: post-snap angle %v is neither exactly 0 nor 90", deg, a)
		}
	}
}
