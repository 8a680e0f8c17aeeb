package raster

import (
	"math"
	"sort"

	"github.com/openfloor/planvec/internal/geom"
)

// heuristicTextConfidence is the acceptance threshold for the sliding-window
// text detector used when OCR is unavailable.
const heuristicTextConfidence = 0.55

// EraseBoxes clears all mask pixels inside the given rectangles. Used to
// remove annotation text before line and contour extraction so dimension
// labels do not vectorize into spurious strokes.
func EraseBoxes(mask [][]bool, boxes []geom.Rect) {
	height := len(mask)
	if height == 0 {
		return
	}
	width := len(mask[0])

	for _, b := range boxes {
		y0 := clampInt(int(math.Floor(b.Min.Y)), 0, height)
		y1 := clampInt(int(math.Ceil(b.Max.Y))+1, 0, height)
		x0 := clampInt(int(math.Floor(b.Min.X)), 0, width)
		x1 := clampInt(int(math.Ceil(b.Max.X))+1, 0, width)
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				mask[y][x] = false
			}
		}
	}
}

// heuristicTextBoxes finds regions likely to contain text by scanning the
// ink mask with text-shaped sliding windows and scoring ink density plus
// horizontal run structure. Text sits in a medium density band (strokes are
// sparser, solid fills denser) and runs predominantly horizontally.
func heuristicTextBoxes(mask [][]bool, minConfidence float64) []geom.Rect {
	height := len(mask)
	if height == 0 {
		return nil
	}
	width := len(mask[0])
	if width == 0 {
		return nil
	}

	windowSizes := []struct{ w, h int }{
		{80, 25},  // Very small text
		{100, 30}, // Small text
		{150, 40}, // Medium text
		{200, 50}, // Large text
	}

	var candidates []geom.Rect
	confidences := make([]float64, 0)

	for _, ws := range windowSizes {
		stepX := ws.w / 2
		stepY := ws.h / 2

		for y := 0; y+ws.h <= height; y += stepY {
			for x := 0; x+ws.w <= width; x += stepX {
				inkCount := 0
				for wy := 0; wy < ws.h; wy++ {
					for wx := 0; wx < ws.w; wx++ {
						if mask[y+wy][x+wx] {
							inkCount++
						}
					}
				}

				density := float64(inkCount) / float64(ws.w*ws.h)
				if density < 0.05 || density > 0.4 {
					continue
				}

				horizontal := horizontalRunScore(mask, x, y, ws.w, ws.h)
				confidence := horizontal * (1.0 - math.Abs(density-0.2)/0.2)
				if confidence < minConfidence {
					continue
				}

				candidates = append(candidates, geom.Box(float64(x), float64(y), float64(ws.w), float64(ws.h)))
				confidences = append(confidences, confidence)
			}
		}
	}

	return mergeOverlappingBoxes(candidates, confidences)
}

// horizontalRunScore measures how horizontal the ink structure is inside a
// window, as the fraction of run starts that are row-wise rather than
// column-wise. Text scores high; vertical hatching scores low.
func horizontalRunScore(mask [][]bool, x, y, w, h int) float64 {
	horizontalRuns := 0
	verticalRuns := 0

	for row := y; row < y+h; row++ {
		inRun := false
		for col := x; col < x+w; col++ {
			if mask[row][col] {
				if !inRun {
					horizontalRuns++
					inRun = true
				}
			} else {
				inRun = false
			}
		}
	}

	for col := x; col < x+w; col++ {
		inRun := false
		for row := y; row < y+h; row++ {
			if mask[row][col] {
				if !inRun {
					verticalRuns++
					inRun = true
				}
			} else {
				inRun = false
			}
		}
	}

	if horizontalRuns+verticalRuns == 0 {
		return 0
	}
	return float64(horizontalRuns) / float64(horizontalRuns+verticalRuns)
}

// mergeOverlappingBoxes unions overlapping candidate boxes, keeping the
// highest-confidence ordering in the result.
func mergeOverlappingBoxes(boxes []geom.Rect, confidences []float64) []geom.Rect {
	if len(boxes) == 0 {
		return nil
	}

	idx := make([]int, len(boxes))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool { return confidences[idx[i]] > confidences[idx[j]] })

	merged := make([]geom.Rect, 0)
	for _, i := range idx {
		b := boxes[i]
		found := false
		for j := range merged {
			if merged[j].Overlaps(b) {
				merged[j] = geom.RectFromCorners(
					geom.Point{X: math.Min(merged[j].Min.X, b.Min.X), Y: math.Min(merged[j].Min.Y, b.Min.Y)},
					geom.Point{X: math.Max(merged[j].Max.X, b.Max.X), Y: math.Max(merged[j].Max.Y, b.Max.Y)},
				)
				found = true
				break
			}
		}
		if !found {
			merged = append(merged, b)
		}
	}
	return merged
}
