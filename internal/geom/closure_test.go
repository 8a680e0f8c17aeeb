package geom

import "testing"

func TestCloseRoomsBridgesGap(t *testing.T) {
	// Two walls of a room with a 5px detection gap between their open ends.
	segs := []Segment{
		Seg(0, 0, 100, 0),
		Seg(105, 0, 200, 0),
	}
	got := CloseRooms(segs, nil, 8, 6, 1)

	if len(got) != 1 {
		t.Fatalf("expected one closure, got %d: %v", len(got), got)
	}
	c := got[0]
	if !almostEqual(c.Length(), 5, 1e-9) {
		t.Errorf("closure should span the 5px gap, got length %v", c.Length())
	}
	if c.P1.Y != c.P2.Y {
		t.Errorf("closure across a horizontal gap should be axis-snapped, got %v", c)
	}
}

func TestCloseRoomsDoorBoxExclusion(t *testing.T) {
	segs := []Segment{
		Seg(0, 0, 100, 0),
		Seg(105, 0, 200, 0),
	}
	door := Box(98, -5, 12, 10)

	if got := CloseRooms(segs, []Rect{door}, 8, 6, 1); len(got) != 0 {
		t.Errorf("closure overlapping a door box must be suppressed, got %v", got)
	}
}

func TestCloseRoomsDoorElsewhereDoesNotSuppress(t *testing.T) {
	segs := []Segment{
		Seg(0, 0, 100, 0),
		Seg(105, 0, 200, 0),
	}
	door := Box(300, 300, 20, 20)

	if got := CloseRooms(segs, []Rect{door}, 8, 6, 1); len(got) != 1 {
		t.Errorf("a distant door box must not suppress the closure, got %v", got)
	}
}

func TestCloseRoomsGapBeyondThreshold(t *testing.T) {
	segs := []Segment{
		Seg(0, 0, 100, 0),
		Seg(112, 0, 200, 0), // 12px gap, over the 8px budget
	}
	if got := CloseRooms(segs, nil, 8, 6, 1); len(got) != 0 {
		t.Errorf("gap wider than closePx must not be bridged, got %v", got)
	}
}

func TestCloseRoomsMinLengthFilter(t *testing.T) {
	// Touching corner endpoints produce zero-length candidates that the
	// minimum-length filter must drop.
	segs := []Segment{
		Seg(0, 0, 100, 0),
		Seg(100, 0, 100, 80),
	}
	if got := CloseRooms(segs, nil, 8, 6, 3); len(got) != 0 {
		t.Errorf("sub-minimum closures must be dropped, got %v", got)
	}
}

func TestCloseRoomsSegmentNotPairedWithItself(t *testing.T) {
	// A short stroke's own endpoints sit within closePx of each other, but
	// re-emitting the stroke as its own closure would duplicate it.
	segs := []Segment{Seg(0, 0, 5, 0)}
	if got := CloseRooms(segs, nil, 8, 6, 1); len(got) != 0 {
		t.Errorf("a segment must not close against itself, got %v", got)
	}
}

func TestCloseRoomsNoBoundingBoxOverlapProperty(t *testing.T) {
	segs := []Segment{
		Seg(0, 0, 100, 0),
		Seg(106, 2, 200, 2),
		Seg(0, 50, 100, 50),
		Seg(107, 50, 200, 50),
	}
	doors := []Rect{Box(100, 45, 10, 10)}

	for _, c := range CloseRooms(segs, doors, 8, 6, 1) {
		if overlapsAny(c.Bounds(), doors) {
			t.Errorf("synthesized closure %v overlaps a door box", c)
		}
	}
}

func TestCloseRoomsEmptyInput(t *testing.T) {
	if got := CloseRooms(nil, nil, 8, 6, 1); got != nil {
		t.Errorf("no segments should synthesize no closures, got %v", got)
	}
}
