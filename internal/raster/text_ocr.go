//go:build cgo && linux

package raster

import (
	"image"
	"image/png"
	"os"

	"github.com/otiai10/gosseract/v2"

	"github.com/openfloor/planvec/internal/geom"
)

// textBoxPadPx pads OCR word boxes so anti-aliased glyph fringes are erased
// along with the glyphs themselves.
const textBoxPadPx = 2

// TextBoxes locates likely annotation text on the page.
//
// With CGO available this asks Tesseract for word-level bounding boxes,
// which is far more precise than the heuristic detector. Tesseract needs a
// file path, so the page is written to a temporary PNG for the duration of
// the call. Any OCR failure falls back to the heuristic mask scan rather
// than failing the request.
func TextBoxes(img image.Image, mask [][]bool) []geom.Rect {
	tmp, err := os.CreateTemp("", "planvec-ocr-*.png")
	if err != nil {
		return heuristicTextBoxes(mask, heuristicTextConfidence)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if err := png.Encode(tmp, img); err != nil {
		tmp.Close()
		return heuristicTextBoxes(mask, heuristicTextConfidence)
	}
	tmp.Close()

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetImage(tmpPath); err != nil {
		return heuristicTextBoxes(mask, heuristicTextConfidence)
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return heuristicTextBoxes(mask, heuristicTextConfidence)
	}

	out := make([]geom.Rect, 0, len(boxes))
	for _, b := range boxes {
		if b.Word == "" {
			continue
		}
		out = append(out, geom.RectFromCorners(
			geom.Point{X: float64(b.Box.Min.X - textBoxPadPx), Y: float64(b.Box.Min.Y - textBoxPadPx)},
			geom.Point{X: float64(b.Box.Max.X + textBoxPadPx), Y: float64(b.Box.Max.Y + textBoxPadPx)},
		))
	}
	return out
}
