package raster

import (
	"math"

	"github.com/openfloor/planvec/internal/geom"
)

// minContourPixels is the smallest connected component treated as a curve
// rather than noise.
const minContourPixels = 10

// TraceContours extracts ordered curve traces from a binary mask.
//
// Connected components (8-connectivity) are collected with an iterative
// flood fill, ordered into a walkable trace, then simplified with
// Douglas-Peucker. The simplification epsilon is the larger of approxEps and
// 1% of the trace perimeter, so long curves are not over-decimated while
// short ones do not collapse to their endpoints.
func TraceContours(mask [][]bool, approxEps float64) [][]geom.Point {
	height := len(mask)
	if height == 0 {
		return nil
	}
	width := len(mask[0])
	if width == 0 {
		return nil
	}

	visited := make([][]bool, height)
	for y := range visited {
		visited[y] = make([]bool, width)
	}

	var contours [][]geom.Point
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !mask[y][x] || visited[y][x] {
				continue
			}
			component := floodFill(mask, visited, x, y, width, height)
			if len(component) < minContourPixels {
				continue
			}
			trace := orderTrace(component)
			eps := math.Max(approxEps, 0.01*traceLength(trace))
			simplified := Simplify(trace, eps)
			if len(simplified) >= 2 {
				contours = append(contours, simplified)
			}
		}
	}
	return contours
}

// floodFill collects one 8-connected component starting at (startX, startY),
// marking pixels visited. Stack-based to stay safe on large components.
func floodFill(mask, visited [][]bool, startX, startY, width, height int) []geom.Point {
	type pixel struct{ x, y int }
	stack := []pixel{{startX, startY}}
	component := make([]geom.Point, 0)

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.x < 0 || p.x >= width || p.y < 0 || p.y >= height {
			continue
		}
		if visited[p.y][p.x] || !mask[p.y][p.x] {
			continue
		}

		visited[p.y][p.x] = true
		component = append(component, geom.Point{X: float64(p.x), Y: float64(p.y)})

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				stack = append(stack, pixel{p.x + dx, p.y + dy})
			}
		}
	}
	return component
}

// orderTrace arranges an unordered component into a walkable polyline by
// greedy nearest-neighbor chaining from the top-left-most pixel. Thin
// strokes (the usual case after edge detection) order cleanly; blobs come
// out as a dense zigzag that simplification then prunes.
func orderTrace(component []geom.Point) []geom.Point {
	n := len(component)
	if n <= 2 {
		return component
	}

	start := 0
	for i := 1; i < n; i++ {
		if component[i].Y < component[start].Y ||
			(component[i].Y == component[start].Y && component[i].X < component[start].X) {
			start = i
		}
	}

	used := make([]bool, n)
	trace := make([]geom.Point, 0, n)
	cur := start
	used[cur] = true
	trace = append(trace, component[cur])

	for range component[1:] {
		best := -1
		bestD := math.MaxFloat64
		for i := 0; i < n; i++ {
			if used[i] {
				continue
			}
			d := component[cur].DistSq(component[i])
			if d < bestD {
				bestD = d
				best = i
			}
		}
		if best < 0 {
			break
		}
		used[best] = true
		trace = append(trace, component[best])
		cur = best
	}
	return trace
}

// traceLength returns the total polyline length of an ordered trace.
func traceLength(trace []geom.Point) float64 {
	var total float64
	for i := 1; i < len(trace); i++ {
		total += trace[i-1].Dist(trace[i])
	}
	return total
}

// Simplify reduces a polyline with the Douglas-Peucker algorithm: points
// closer than eps to the chord between the retained neighbors are dropped.
func Simplify(points []geom.Point, eps float64) []geom.Point {
	if len(points) <= 2 || eps <= 0 {
		return points
	}

	keep := make([]bool, len(points))
	keep[0] = true
	keep[len(points)-1] = true
	simplifyRange(points, 0, len(points)-1, eps, keep)

	out := make([]geom.Point, 0, len(points))
	for i, k := range keep {
		if k {
			out = append(out, points[i])
		}
	}
	return out
}

func simplifyRange(points []geom.Point, lo, hi int, eps float64, keep []bool) {
	if hi-lo < 2 {
		return
	}
	var maxD float64
	maxI := -1
	for i := lo + 1; i < hi; i++ {
		d := perpDistance(points[i], points[lo], points[hi])
		if d > maxD {
			maxD = d
			maxI = i
		}
	}
	if maxI >= 0 && maxD > eps {
		keep[maxI] = true
		simplifyRange(points, lo, maxI, eps, keep)
		simplifyRange(points, maxI, hi, eps, keep)
	}
}

// perpDistance is the perpendicular distance from p to the chord a-b, or the
// distance to a when the chord is degenerate.
func perpDistance(p, a, b geom.Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return p.Dist(a)
	}
	return math.Abs(dy*p.X-dx*p.Y+b.X*a.Y-b.Y*a.X) / math.Sqrt(lenSq)
}
