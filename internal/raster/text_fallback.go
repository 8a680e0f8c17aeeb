//go:build !cgo || !linux

package raster

import (
	"image"

	"github.com/openfloor/planvec/internal/geom"
)

// TextBoxes locates likely annotation text on the page.
//
// Without CGO Tesseract bindings this falls back to a heuristic detector
// that scans the ink mask for text-shaped regions. It finds printed
// dimension labels reliably but has no notion of characters, so isolated
// short words can be missed.
func TextBoxes(_ image.Image, mask [][]bool) []geom.Rect {
	return heuristicTextBoxes(mask, heuristicTextConfidence)
}
