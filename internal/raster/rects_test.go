package raster

import (
	"math"
	"testing"
)

// stampRectOutline marks the 1px outline of a rectangle on a mask.
func stampRectOutline(mask [][]bool, x0, y0, x1, y1 int) {
	for x := x0; x <= x1; x++ {
		mask[y0][x] = true
		mask[y1][x] = true
	}
	for y := y0; y <= y1; y++ {
		mask[y][x0] = true
		mask[y][x1] = true
	}
}

func TestDetectDoorBoxes_Outline(t *testing.T) {
	mask := emptyMask(100, 80)
	stampRectOutline(mask, 10, 10, 49, 39)

	boxes := DetectDoorBoxes(mask, 120, 5000, 0.75)
	if len(boxes) != 1 {
		t.Fatalf("expected one door box, got %d: %v", len(boxes), boxes)
	}
	b := boxes[0]
	if math.Abs(b.Min.X-10) > 1 || math.Abs(b.Min.Y-10) > 1 ||
		math.Abs(b.Max.X-49) > 1 || math.Abs(b.Max.Y-39) > 1 {
		t.Errorf("box should match the drawn outline, got %+v", b)
	}
}

func TestDetectDoorBoxes_FilledBlobRejected(t *testing.T) {
	mask := emptyMask(100, 80)
	for y := 10; y <= 49; y++ {
		for x := 10; x <= 49; x++ {
			mask[y][x] = true
		}
	}

	if boxes := DetectDoorBoxes(mask, 120, 5000, 0.75); len(boxes) != 0 {
		t.Errorf("a filled blob is not a door marker, got %v", boxes)
	}
}

func TestDetectDoorBoxes_AreaGates(t *testing.T) {
	mask := emptyMask(300, 200)
	stampRectOutline(mask, 5, 5, 12, 12)      // 49px^2, under minArea
	stampRectOutline(mask, 30, 30, 250, 150)  // room-sized, over maxArea

	if boxes := DetectDoorBoxes(mask, 120, 5000, 0.75); len(boxes) != 0 {
		t.Errorf("boxes outside the area gates must be rejected, got %v", boxes)
	}
}

func TestDetectDoorBoxes_SortedByArea(t *testing.T) {
	mask := emptyMask(200, 120)
	stampRectOutline(mask, 10, 10, 40, 30)   // 30x20
	stampRectOutline(mask, 100, 10, 160, 60) // 60x50

	boxes := DetectDoorBoxes(mask, 120, 5000, 0.75)
	if len(boxes) != 2 {
		t.Fatalf("expected two door boxes, got %d: %v", len(boxes), boxes)
	}
	first := boxes[0].Width() * boxes[0].Height()
	second := boxes[1].Width() * boxes[1].Height()
	if first < second {
		t.Errorf("boxes should be sorted largest first: %v then %v", first, second)
	}
}

func TestDetectDoorBoxes_EmptyMask(t *testing.T) {
	if boxes := DetectDoorBoxes(emptyMask(40, 40), 120, 5000, 0.75); boxes != nil {
		t.Errorf("empty mask should yield nil, got %v", boxes)
	}
}
