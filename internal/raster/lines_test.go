package raster

import (
	"math"
	"testing"
)

// emptyMask creates an all-false mask of the given size.
func emptyMask(width, height int) [][]bool {
	mask := make([][]bool, height)
	for y := range mask {
		mask[y] = make([]bool, width)
	}
	return mask
}

func setRun(mask [][]bool, y, x0, x1 int) {
	for x := x0; x <= x1; x++ {
		mask[y][x] = true
	}
}

func TestDetectSegments_Horizontal(t *testing.T) {
	mask := emptyMask(120, 100)
	setRun(mask, 40, 10, 90)

	segs := DetectSegments(mask, 20)
	if len(segs) == 0 {
		t.Fatal("expected the horizontal stroke to be detected")
	}

	// The best detection should cover most of the stroke, at its height.
	best := segs[0]
	for _, s := range segs[1:] {
		if s.Length() > best.Length() {
			best = s
		}
	}
	if best.Length() < 60 {
		t.Errorf("expected a span covering most of the 80px stroke, got %v (len %v)", best, best.Length())
	}
	if math.Abs(best.P1.Y-40) > 2 || math.Abs(best.P2.Y-40) > 2 {
		t.Errorf("detected stroke should sit near y=40, got %v", best)
	}
}

func TestDetectSegments_Vertical(t *testing.T) {
	mask := emptyMask(100, 120)
	for y := 15; y <= 95; y++ {
		mask[y][55] = true
	}

	segs := DetectSegments(mask, 20)
	if len(segs) == 0 {
		t.Fatal("expected the vertical stroke to be detected")
	}
	best := segs[0]
	for _, s := range segs[1:] {
		if s.Length() > best.Length() {
			best = s
		}
	}
	if math.Abs(best.P1.X-55) > 2 || math.Abs(best.P2.X-55) > 2 {
		t.Errorf("detected stroke should sit near x=55, got %v", best)
	}
	if best.Length() < 60 {
		t.Errorf("expected a span covering most of the 80px stroke, got len %v", best.Length())
	}
}

func TestDetectSegments_SplitsAtGaps(t *testing.T) {
	// Two collinear runs separated by a 20px gap, wider than the stroke-gap
	// bridge. No single detection may span the gap.
	mask := emptyMask(120, 80)
	setRun(mask, 30, 10, 40)
	setRun(mask, 30, 60, 90)

	segs := DetectSegments(mask, 20)
	if len(segs) == 0 {
		t.Fatal("expected both runs to be detected")
	}
	for _, s := range segs {
		lo := math.Min(s.P1.X, s.P2.X)
		hi := math.Max(s.P1.X, s.P2.X)
		if lo < 45 && hi > 55 {
			t.Errorf("segment %v spans the 20px gap", s)
		}
	}
}

func TestDetectSegments_EmptyMask(t *testing.T) {
	if segs := DetectSegments(emptyMask(50, 50), 20); len(segs) != 0 {
		t.Errorf("empty mask should yield no segments, got %v", segs)
	}
	if segs := DetectSegments(nil, 20); segs != nil {
		t.Errorf("nil mask should yield nil, got %v", segs)
	}
}

func TestDetectPasses_FinePassPicksUpShortStrokes(t *testing.T) {
	mask := emptyMask(80, 60)
	setRun(mask, 30, 10, 22) // 12px stroke, under the 24px coarse minimum

	passes := DetectPasses(mask, 24)
	if len(passes) != 2 {
		t.Fatalf("expected coarse and fine passes, got %d", len(passes))
	}
	if len(passes[0]) != 0 {
		t.Errorf("coarse pass should skip the 12px stroke, got %v", passes[0])
	}
	if len(passes[1]) == 0 {
		t.Error("fine pass should detect the 12px stroke")
	}
}

func TestEstimateSkew_AxisAlignedPage(t *testing.T) {
	mask := emptyMask(200, 150)
	setRun(mask, 40, 20, 180)
	for y := 20; y <= 130; y++ {
		mask[y][30] = true
	}

	if skew := EstimateSkew(mask); math.Abs(skew) > 1 {
		t.Errorf("axis-aligned strokes should estimate ~0 skew, got %v", skew)
	}
}

func TestEstimateSkew_TiltedPage(t *testing.T) {
	// A long stroke tilted 5 degrees off horizontal.
	mask := emptyMask(200, 150)
	tan := math.Tan(5 * math.Pi / 180)
	for x := 20; x <= 180; x++ {
		y := 60 + int(math.Round(float64(x-20)*tan))
		mask[y][x] = true
	}

	skew := EstimateSkew(mask)
	if math.Abs(math.Abs(skew)-5) > 2 {
		t.Errorf("expected ~5 degree skew estimate, got %v", skew)
	}
}

func TestEstimateSkew_EmptyMask(t *testing.T) {
	if skew := EstimateSkew(emptyMask(50, 50)); skew != 0 {
		t.Errorf("empty mask should estimate 0 skew, got %v", skew)
	}
}
