package geom

import "math"

// cellKey addresses one bucket of a uniform grid.
type cellKey struct {
	cx, cy int
}

// pointIndex is a uniform grid over points, used to bound the pairwise scans
// in merging, extension, and closure synthesis. Cell size equals the query
// radius, so NearestWithin only has to visit a 3x3 cell neighborhood.
//
// The index changes lookup cost only; threshold semantics are identical to a
// full pairwise scan.
type pointIndex struct {
	cell  float64
	cells map[cellKey][]int
}

func newPointIndex(cell float64) *pointIndex {
	if cell <= 0 {
		cell = 1
	}
	return &pointIndex{cell: cell, cells: make(map[cellKey][]int)}
}

func (idx *pointIndex) key(p Point) cellKey {
	return cellKey{
		cx: int(math.Floor(p.X / idx.cell)),
		cy: int(math.Floor(p.Y / idx.cell)),
	}
}

// Insert adds a point under an opaque id (typically an index into the
// caller's endpoint slice).
func (idx *pointIndex) Insert(p Point, id int) {
	k := idx.key(p)
	idx.cells[k] = append(idx.cells[k], id)
}

// NearestWithin returns the ids of all inserted points within radius of p.
// Order is unspecified; callers that need determinism sort the result.
func (idx *pointIndex) NearestWithin(p Point, radius float64, pos func(int) Point) []int {
	k := idx.key(p)
	reach := int(math.Ceil(radius/idx.cell)) + 1
	rSq := radius * radius
	var out []int
	for dx := -reach; dx <= reach; dx++ {
		for dy := -reach; dy <= reach; dy++ {
			for _, id := range idx.cells[cellKey{k.cx + dx, k.cy + dy}] {
				if pos(id).DistSq(p) <= rSq {
					out = append(out, id)
				}
			}
		}
	}
	return out
}

// segmentIndex is a uniform grid over segments, bucketed by the cells their
// bounding boxes cover (inflated by the query radius at insert time).
type segmentIndex struct {
	cell  float64
	cells map[cellKey][]int
}

func newSegmentIndex(cell float64) *segmentIndex {
	if cell <= 0 {
		cell = 1
	}
	return &segmentIndex{cell: cell, cells: make(map[cellKey][]int)}
}

// Insert registers segment id under every cell its bounding box, grown by
// pad, intersects.
func (idx *segmentIndex) Insert(s Segment, id int, pad float64) {
	b := s.Bounds()
	x0 := int(math.Floor((b.Min.X - pad) / idx.cell))
	x1 := int(math.Floor((b.Max.X + pad) / idx.cell))
	y0 := int(math.Floor((b.Min.Y - pad) / idx.cell))
	y1 := int(math.Floor((b.Max.Y + pad) / idx.cell))
	for cx := x0; cx <= x1; cx++ {
		for cy := y0; cy <= y1; cy++ {
			k := cellKey{cx, cy}
			idx.cells[k] = append(idx.cells[k], id)
		}
	}
}

// Candidates returns segment ids registered in p's cell. Because segments
// were inserted with a pad of at least the query radius, every segment within
// that radius of p is present. Duplicates occur when a segment covers
// multiple cells; callers deduplicate by id.
func (idx *segmentIndex) Candidates(p Point) []int {
	return idx.cells[idx.key(p)]
}

func (idx *segmentIndex) key(p Point) cellKey {
	return cellKey{
		cx: int(math.Floor(p.X / idx.cell)),
		cy: int(math.Floor(p.Y / idx.cell)),
	}
}
