package geom

import "math"

// Plausibility bounds for a fitted radius, in pixels. Fits outside the open
// interval are degenerate (near-point contours or almost-straight runs whose
// fitted circle is enormous) and are rejected.
const (
	minArcRadiusPx = 5.0
	maxArcRadiusPx = 1e5
)

// FitArcs fits circular arcs to one traced boundary. A window of consecutive
// contour points slides along the trace with 50% overlap (step = half the
// window); each window gets an algebraic least-squares circle fit, and the
// fit is kept as an Arc when the angular span between the window's first and
// last point is at least minArcDeg and the radius is plausible.
//
// Windows whose normal equations are singular (collinear points) are skipped,
// not fatal. Overlapping windows that both fit well emit independent arcs; no
// merging or deduplication is attempted here, so one physical curve may
// produce several overlapping arcs in the output.
func FitArcs(contour []Point, minArcDeg float64) []Arc {
	n := len(contour)
	if n < 8 {
		return nil
	}

	win := n / 12
	if win < 8 {
		win = 8
	} else if win > 12 {
		win = 12
	}
	step := win / 2

	var arcs []Arc
	for i := 0; i+win < n; i += step {
		arc, ok := fitCircleWindow(contour[i : i+win])
		if !ok {
			continue
		}
		if arc.Span() < minArcDeg {
			continue
		}
		if arc.Radius <= minArcRadiusPx || arc.Radius >= maxArcRadiusPx {
			continue
		}
		arcs = append(arcs, arc)
	}
	return arcs
}

// fitCircleWindow fits a circle through one window of points using the
// centered second/third-moment normal equations (Taubin's algebraic fit):
//
//	| Suu  Suv | |uc|       | Suuu + Suvv |
//	|          | |  | = 0.5 |             |
//	| Suv  Svv | |vc|       | Svvv + Svuu |
//
// where u, v are coordinates relative to the window centroid. The radius is
// the mean distance from the solved center to the window points, and the
// reported angles are those of the first and last window point around the
// center. A singular system returns ok=false.
func fitCircleWindow(pts []Point) (Arc, bool) {
	n := float64(len(pts))

	var xm, ym float64
	for _, p := range pts {
		xm += p.X
		ym += p.Y
	}
	xm /= n
	ym /= n

	var suu, svv, suv, suuu, svvv, suvv, svuu float64
	for _, p := range pts {
		u := p.X - xm
		v := p.Y - ym
		suu += u * u
		svv += v * v
		suv += u * v
		suuu += u * u * u
		svvv += v * v * v
		suvv += u * v * v
		svuu += v * u * u
	}

	det := suu*svv - suv*suv
	if math.Abs(det) < 1e-12 {
		return Arc{}, false
	}

	b1 := 0.5 * (suuu + suvv)
	b2 := 0.5 * (svvv + svuu)
	uc := (b1*svv - b2*suv) / det
	vc := (b2*suu - b1*suv) / det

	c := Point{X: xm + uc, Y: ym + vc}
	var r float64
	for _, p := range pts {
		r += p.Dist(c)
	}
	r /= n

	a0 := math.Atan2(pts[0].Y-c.Y, pts[0].X-c.X) * 180 / math.Pi
	a1 := math.Atan2(pts[len(pts)-1].Y-c.Y, pts[len(pts)-1].X-c.X) * 180 / math.Pi

	return Arc{Center: c, Radius: r, StartDeg: a0, EndDeg: a1}, true
}
