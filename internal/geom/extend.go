package geom

// Extend corrects detector under/overshoot at T-junctions. For every segment
// endpoint P and every other segment in the pool, it computes the projection
// of P onto that segment; when the unclamped projection parameter lies
// strictly inside (0, 1) — the foot is on the interior, not past an end — and
// the projection distance is within extendPx, P moves onto the nearest such
// foot.
//
// Moves are computed against the input pool and applied together, so both
// endpoints of a segment may be adjusted by different partners in one pass.
// An endpoint already resting on a partner's interior projects onto itself
// and stays put, which keeps the pass idempotent.
func Extend(segments []Segment, extendPx float64) []Segment {
	if len(segments) < 2 || extendPx <= 0 {
		return segments
	}

	idx := newSegmentIndex(extendPx)
	for i, s := range segments {
		idx.Insert(s, i, extendPx)
	}

	out := make([]Segment, len(segments))
	for i, s := range segments {
		out[i] = Segment{
			P1: extendEndpoint(s.P1, i, segments, idx, extendPx),
			P2: extendEndpoint(s.P2, i, segments, idx, extendPx),
		}
	}
	return out
}

// extendEndpoint returns the corrected position for endpoint p of segment
// self, or p unchanged when no partner qualifies.
func extendEndpoint(p Point, self int, pool []Segment, idx *segmentIndex, extendPx float64) Point {
	best := p
	bestSq := extendPx * extendPx
	found := false
	seen := map[int]bool{self: true}

	for _, j := range idx.Candidates(p) {
		if seen[j] {
			continue
		}
		seen[j] = true
		t := projectParam(p, pool[j])
		if t <= 0 || t >= 1 {
			continue
		}
		q := pointAt(pool[j], t)
		dSq := p.DistSq(q)
		if dSq <= bestSq && (!found || dSq < bestSq) {
			best, bestSq, found = q, dSq, true
		}
	}
	return best
}
