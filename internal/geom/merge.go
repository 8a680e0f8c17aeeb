package geom

// Merge fuses collinear, touching or overlapping segments into single longer
// segments, iterated to a fixed point, then runs the endpoint-extension pass.
//
// Steps:
//
//  1. Every input is axis-snapped (SnapAxis) and segments shorter than
//     minLenPx are discarded.
//  2. Two segments are merge candidates when some endpoint of one lies within
//     mergePx of an endpoint of the other and their orientations agree within
//     axisSnapDeg. Qualifying pairs are merged nearest-endpoint-first (ties
//     broken by lower pair index), each merge replacing both inputs with the
//     segment spanning the two most extreme of their four endpoints along the
//     dominant axis. The scan restarts until a full pass produces no merge.
//  3. The surviving pool is extended via Extend.
//
// The nearest-pair tie-break makes the result of a fully-connected collinear
// chain independent of input order. Re-running Merge on its own output
// returns it unchanged.
func Merge(segments []Segment, axisSnapDeg, mergePx, extendPx, minLenPx float64) []Segment {
	pool := make([]Segment, 0, len(segments))
	for _, s := range segments {
		s = snapSegment(s, axisSnapDeg)
		if s.Length() < minLenPx {
			continue
		}
		pool = append(pool, s)
	}

	for {
		i, j, ok := bestMergePair(pool, axisSnapDeg, mergePx)
		if !ok {
			break
		}
		merged := snapSegment(spanExtremes(pool[i], pool[j]), axisSnapDeg)
		// Remove j first; j > i always holds.
		pool = append(pool[:j], pool[j+1:]...)
		pool[i] = merged
	}

	return Extend(pool, extendPx)
}

// bestMergePair finds the qualifying pair with the smallest endpoint gap.
// Returns ok=false when no pair qualifies, which is the fixed point.
func bestMergePair(pool []Segment, axisSnapDeg, mergePx float64) (int, int, bool) {
	idx := newPointIndex(mergePx)
	ends := make([]Point, 0, len(pool)*2)
	for i, s := range pool {
		ends = append(ends, s.P1, s.P2)
		idx.Insert(s.P1, i*2)
		idx.Insert(s.P2, i*2+1)
	}

	bestI, bestJ := -1, -1
	bestSq := mergePx * mergePx
	found := false
	for ei, p := range ends {
		si := ei / 2
		for _, ej := range idx.NearestWithin(p, mergePx, func(id int) Point { return ends[id] }) {
			sj := ej / 2
			if sj == si {
				continue
			}
			if angleDiff180(pool[si].Angle(), pool[sj].Angle()) > axisSnapDeg {
				continue
			}
			dSq := p.DistSq(ends[ej])
			lo, hi := si, sj
			if lo > hi {
				lo, hi = hi, lo
			}
			if dSq < bestSq || (dSq == bestSq && !found) ||
				(dSq == bestSq && found && (lo < bestI || (lo == bestI && hi < bestJ))) {
				bestI, bestJ, bestSq, found = lo, hi, dSq, true
			}
		}
	}
	return bestI, bestJ, found
}

// spanExtremes returns the segment spanning the two mutually most extreme
// endpoints of a and b. The dominant axis of the combined extent (whichever
// of the X or Y spread is larger) decides whether endpoints are ordered by X
// or by Y.
func spanExtremes(a, b Segment) Segment {
	pts := [4]Point{a.P1, a.P2, b.P1, b.P2}

	minX, maxX := pts[0], pts[0]
	minY, maxY := pts[0], pts[0]
	for _, p := range pts[1:] {
		if p.X < minX.X {
			minX = p
		}
		if p.X > maxX.X {
			maxX = p
		}
		if p.Y < minY.Y {
			minY = p
		}
		if p.Y > maxY.Y {
			maxY = p
		}
	}

	if maxX.X-minX.X >= maxY.Y-minY.Y {
		return Segment{minX, maxX}
	}
	return Segment{minY, maxY}
}
