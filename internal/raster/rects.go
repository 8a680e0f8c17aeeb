package raster

import (
	"math"
	"sort"

	"github.com/openfloor/planvec/internal/geom"
)

// DetectDoorBoxes finds small axis-aligned rectangular outlines in a binary
// mask, the marker convention for door sweeps in scanned plans.
//
// Each connected component is scored for rectangularity by comparing its
// pixel count against the perimeter of its bounding box: a clean rectangular
// outline has almost exactly 2*(w+h) pixels. Components outside the
// [minArea, maxArea] bounding-box area range or below the tolerance score
// are rejected. Results are sorted by area, largest first.
func DetectDoorBoxes(mask [][]bool, minArea, maxArea int, tolerance float64) []geom.Rect {
	height := len(mask)
	if height == 0 {
		return nil
	}
	width := len(mask[0])
	if width == 0 {
		return nil
	}

	visited := make([][]bool, height)
	for y := range visited {
		visited[y] = make([]bool, width)
	}

	type scored struct {
		rect geom.Rect
		area int
	}
	var boxes []scored

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !mask[y][x] || visited[y][x] {
				continue
			}
			component := floodFill(mask, visited, x, y, width, height)
			if len(component) < 4 {
				continue
			}

			minX, minY := math.MaxFloat64, math.MaxFloat64
			maxX, maxY := -math.MaxFloat64, -math.MaxFloat64
			for _, p := range component {
				minX = math.Min(minX, p.X)
				maxX = math.Max(maxX, p.X)
				minY = math.Min(minY, p.Y)
				maxY = math.Max(maxY, p.Y)
			}

			w := maxX - minX
			h := maxY - minY
			area := int(w * h)
			if area < minArea || area > maxArea {
				continue
			}

			expectedPerimeter := 2 * (w + h)
			if expectedPerimeter <= 0 {
				continue
			}
			rectangularity := 1.0 - math.Abs(float64(len(component))-expectedPerimeter)/expectedPerimeter
			if rectangularity < tolerance {
				continue
			}

			boxes = append(boxes, scored{
				rect: geom.Box(minX, minY, w, h),
				area: area,
			})
		}
	}

	if len(boxes) == 0 {
		return nil
	}
	sort.Slice(boxes, func(i, j int) bool { return boxes[i].area > boxes[j].area })

	out := make([]geom.Rect, len(boxes))
	for i, b := range boxes {
		out[i] = b.rect
	}
	return out
}
