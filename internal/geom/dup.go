package geom

// IsDuplicate reports whether a and b are re-detections of the same physical
// edge. Two segments qualify when their undirected orientations differ by at
// most angleDegTol, and each segment's endpoints land within tolPx of the
// other segment (distance to the clamped projection). Requiring both
// directions makes the relation symmetric: IsDuplicate(a, b) ==
// IsDuplicate(b, a) for every pair.
//
// Collinear but spatially distinct fragments of one long edge do NOT
// qualify — their endpoints fall far from the other segment. Fusing those is
// the merger's job.
func IsDuplicate(a, b Segment, tolPx, angleDegTol float64) bool {
	if angleDiff180(a.Angle(), b.Angle()) > angleDegTol {
		return false
	}
	tolSq := tolPx * tolPx
	return endpointsNear(a, b, tolSq) && endpointsNear(b, a, tolSq)
}

// endpointsNear reports whether both endpoints of a lie within sqrt(tolSq)
// of the finite segment b.
func endpointsNear(a, b Segment, tolSq float64) bool {
	return a.P1.DistSq(closestOnSegment(a.P1, b)) <= tolSq &&
		a.P2.DistSq(closestOnSegment(a.P2, b)) <= tolSq
}

// FilterDuplicates scans a pool of candidate segments (typically the
// concatenation of several detector passes, in pass order) and drops every
// segment that duplicates an earlier survivor. The first-inserted copy wins;
// later duplicates are discarded, never merged into it.
func FilterDuplicates(segments []Segment, tolPx, angleDegTol float64) []Segment {
	if len(segments) == 0 {
		return nil
	}
	kept := make([]Segment, 0, len(segments))
	for _, s := range segments {
		dup := false
		for _, k := range kept {
			if IsDuplicate(s, k, tolPx, angleDegTol) {
				dup = true
				break
			}
		}
		if !dup {
			kept = append(kept, s)
		}
	}
	return kept
}
