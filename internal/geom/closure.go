package geom

// CloseRooms synthesizes the short closing segments a detector leaves out of
// an almost-closed polygonal boundary. Every unordered pair of endpoints
// from two distinct segments at most closePx apart produces a candidate
// segment, which is axis-snapped and then discarded when it ends up shorter
// than minLenPx or when its bounding box overlaps any door box; openings are
// intentionally left ungapped.
//
// Surviving candidates are all emitted; no deduplication happens here, so a
// gap with several qualifying endpoint pairs yields several overlapping short
// closures. Returns only the new segments, never the input pool.
func CloseRooms(segments []Segment, doorBoxes []Rect, closePx, axisSnapDeg, minLenPx float64) []Segment {
	if len(segments) == 0 || closePx <= 0 {
		return nil
	}

	ends := make([]Point, 0, len(segments)*2)
	for _, s := range segments {
		ends = append(ends, s.P1, s.P2)
	}
	idx := newPointIndex(closePx)
	for i, p := range ends {
		idx.Insert(p, i)
	}

	var closures []Segment
	for i, p := range ends {
		for _, j := range idx.NearestWithin(p, closePx, func(id int) Point { return ends[id] }) {
			if j <= i {
				continue // unordered pairs, each considered once
			}
			if j/2 == i/2 {
				continue // a segment never closes against itself
			}
			cand := snapSegment(Segment{p, ends[j]}, axisSnapDeg)
			if cand.Length() < minLenPx {
				continue
			}
			if overlapsAny(cand.Bounds(), doorBoxes) {
				continue
			}
			closures = append(closures, cand)
		}
	}
	return closures
}

func overlapsAny(b Rect, boxes []Rect) bool {
	for _, d := range boxes {
		if b.Overlaps(d) {
			return true
		}
	}
	return false
}
