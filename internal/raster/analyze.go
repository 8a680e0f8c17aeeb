package raster

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"

	"github.com/openfloor/planvec/internal/geom"
)

// Skew correction limits: rotations below minSkewDeg are not worth the
// resampling blur, above maxSkewDeg the estimate is more likely a diagonal
// wall than page skew.
const (
	minSkewDeg = 0.3
	maxSkewDeg = 15.0
)

// Door-box candidate gates, in bounding-box pixels squared. Door markers on
// plans are small rectangles; anything room-sized is wall geometry.
const (
	doorBoxMinArea = 120
	doorBoxMaxArea = 5000
	doorBoxMinRect = 0.75
)

// Options controls the raster front-end.
type Options struct {
	// CannyLow and CannyHigh are the hysteresis thresholds (0-255) for edge
	// detection feeding contour tracing.
	CannyLow  int
	CannyHigh int

	// MinLineLen is the minimum stroke length in pixels for the coarse Hough
	// pass. The fine pass uses half this value.
	MinLineLen int

	// ApproxEps is the Douglas-Peucker epsilon floor for contour
	// simplification. The effective epsilon per contour is the larger of
	// this and 1% of the contour perimeter.
	ApproxEps float64

	// SuppressText removes detected annotation text from the masks before
	// geometry extraction.
	SuppressText bool

	// Deskew estimates page skew from dominant stroke angles and rotates
	// the page upright before analysis.
	Deskew bool
}

// DefaultOptions returns the front-end defaults for clean 300dpi scans.
func DefaultOptions() Options {
	return Options{
		CannyLow:     50,
		CannyHigh:    150,
		MinLineLen:   24,
		ApproxEps:    1.5,
		SuppressText: true,
		Deskew:       true,
	}
}

// Page holds everything the raster front-end extracted from one scan, in the
// coordinates of the (possibly deskewed) page.
type Page struct {
	Width  int
	Height int

	// SkewDeg is the rotation applied during deskew, 0 when disabled or no
	// correction was needed.
	SkewDeg float64

	// TextBoxes are the regions erased by text suppression, empty when
	// suppression is disabled.
	TextBoxes []geom.Rect

	// Passes holds detected stroke segments, coarse pass first.
	Passes [][]geom.Segment

	// Contours are simplified curve traces for arc fitting.
	Contours [][]geom.Point

	// DoorBoxes are candidate door-marker rectangles.
	DoorBoxes []geom.Rect
}

// Analyze runs the full raster front-end over a decoded page image.
func Analyze(img image.Image, opts Options) *Page {
	ink := InkMask(img)

	var skew float64
	if opts.Deskew {
		if est := EstimateSkew(ink); math.Abs(est) >= minSkewDeg && math.Abs(est) <= maxSkewDeg {
			img = imaging.Rotate(img, est, color.White)
			ink = InkMask(img)
			skew = est
		}
	}

	edges := EdgeMask(img, opts.CannyLow, opts.CannyHigh)

	var textBoxes []geom.Rect
	if opts.SuppressText {
		textBoxes = TextBoxes(img, ink)
		EraseBoxes(ink, textBoxes)
		EraseBoxes(edges, textBoxes)
	}

	bounds := img.Bounds()
	return &Page{
		Width:     bounds.Dx(),
		Height:    bounds.Dy(),
		SkewDeg:   skew,
		TextBoxes: textBoxes,
		Passes:    DetectPasses(ink, opts.MinLineLen),
		Contours:  TraceContours(edges, opts.ApproxEps),
		DoorBoxes: DetectDoorBoxes(ink, doorBoxMinArea, doorBoxMaxArea, doorBoxMinRect),
	}
}
