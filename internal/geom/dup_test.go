package geom

import "testing"

func TestIsDuplicateRedetection(t *testing.T) {
	a := Seg(0, 0, 100, 0)
	b := Seg(1, 1, 99, 0.5) // same edge, jittered by detector noise

	if !IsDuplicate(a, b, 3, 2) {
		t.Error("jittered re-detection should be a duplicate")
	}
}

func TestIsDuplicateSymmetry(t *testing.T) {
	pairs := []struct {
		a, b Segment
	}{
		{Seg(0, 0, 100, 0), Seg(1, 1, 99, 0.5)},
		{Seg(0, 0, 100, 0), Seg(0, 0, 50, 0)},    // containment, one direction only
		{Seg(0, 0, 100, 0), Seg(120, 0, 200, 0)}, // collinear but distinct
		{Seg(0, 0, 100, 0), Seg(0, 0, 70, 70)},   // different orientation
		{Seg(0, 0, 0, 40), Seg(0.5, 2, 0.5, 38)},
	}
	for i, p := range pairs {
		ab := IsDuplicate(p.a, p.b, 3, 2)
		ba := IsDuplicate(p.b, p.a, 3, 2)
		if ab != ba {
			t.Errorf("pair %d: IsDuplicate not symmetric (%v vs %v)", i, ab, ba)
		}
	}
}

func TestIsDuplicateCollinearDistinctIsNot(t *testing.T) {
	// Two fragments of one long wall: collinear, same orientation, but far
	// apart. Fusing them is the merger's job, not the filter's.
	a := Seg(0, 0, 100, 0)
	b := Seg(150, 0, 250, 0)
	if IsDuplicate(a, b, 3, 2) {
		t.Error("spatially distinct collinear fragments must not be duplicates")
	}
}

func TestIsDuplicateAngleGate(t *testing.T) {
	a := Seg(0, 0, 100, 0)
	b := Seg(0, 0, 100, 6) // ~3.4 degrees off
	if IsDuplicate(a, b, 10, 2) {
		t.Error("orientation gap above tolerance must not be a duplicate")
	}
	if !IsDuplicate(a, b, 10, 5) {
		t.Error("same pair within a looser angle tolerance should qualify")
	}
}

func TestFilterDuplicatesFirstSurvivorWins(t *testing.T) {
	coarse := Seg(0, 0, 100, 0)
	fine := Seg(0.5, 0.8, 99, 0.2)
	other := Seg(0, 50, 100, 50)

	kept := FilterDuplicates([]Segment{coarse, fine, other}, 3, 2)
	if len(kept) != 2 {
		t.Fatalf("expected 2 survivors, got %d: %v", len(kept), kept)
	}
	if kept[0] != coarse {
		t.Errorf("first-inserted copy must survive unmodified, got %v", kept[0])
	}
	if kept[1] != other {
		t.Errorf("non-duplicate must pass through, got %v", kept[1])
	}
}

func TestFilterDuplicatesEmpty(t *testing.T) {
	if got := FilterDuplicates(nil, 3, 2); got != nil {
		t.Errorf("empty input should produce empty output, got %v", got)
	}
}
