package raster

import (
	"image"

	"github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/imaging"
)

// Adaptive threshold parameters tuned for scanned line drawings: a window
// large enough to span stroke thickness plus surrounding paper, and a small
// offset so uniform paper regions do not threshold into noise.
const (
	binarizeWindow = 31
	binarizeOffset = 5
)

// denoiseRadius is the Gaussian radius applied before thresholding.
// Scans carry sensor noise; a light blur keeps single-pixel speckle out of
// the ink mask without rounding off stroke ends.
const denoiseRadius = 1.2

// InkMask converts a page image to a binary ink mask: grayscale, light
// Gaussian denoise, then adaptive mean thresholding. True marks ink.
func InkMask(img image.Image) [][]bool {
	gray := toGray(blur.Gaussian(imaging.Grayscale(img), denoiseRadius))
	return Binarize(gray, binarizeWindow, binarizeOffset)
}

// Binarize applies adaptive mean thresholding to a grayscale image.
//
// Each pixel is compared against the mean intensity of the window-sized
// neighborhood centered on it (clamped at the borders); pixels darker than
// the mean by more than offset are marked as ink. The local mean is computed
// via a summed-area table, so the cost is independent of window size.
func Binarize(gray *image.Gray, window, offset int) [][]bool {
	b := gray.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return nil
	}
	if window < 3 {
		window = 3
	}
	half := window / 2

	// Summed-area table with a zero row/column border.
	sat := make([][]uint64, h+1)
	sat[0] = make([]uint64, w+1)
	for y := 0; y < h; y++ {
		row := make([]uint64, w+1)
		prev := sat[y]
		var rowSum uint64
		for x := 0; x < w; x++ {
			rowSum += uint64(gray.GrayAt(x+b.Min.X, y+b.Min.Y).Y)
			row[x+1] = prev[x+1] + rowSum
		}
		sat[y+1] = row
	}

	mask := make([][]bool, h)
	for y := 0; y < h; y++ {
		mask[y] = make([]bool, w)
		y0 := maxInt(y-half, 0)
		y1 := minInt(y+half, h-1)
		for x := 0; x < w; x++ {
			x0 := maxInt(x-half, 0)
			x1 := minInt(x+half, w-1)
			area := uint64((y1 - y0 + 1) * (x1 - x0 + 1))
			sum := sat[y1+1][x1+1] - sat[y0][x1+1] - sat[y1+1][x0] + sat[y0][x0]
			mean := sum / area
			v := uint64(gray.GrayAt(x+b.Min.X, y+b.Min.Y).Y)
			mask[y][x] = v+uint64(offset) < mean
		}
	}
	return mask
}

// toGray flattens any image into an 8-bit grayscale raster using the
// standard library's color conversion.
func toGray(img image.Image) *image.Gray {
	b := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			gray.Set(x-b.Min.X, y-b.Min.Y, img.At(x, y))
		}
	}
	return gray
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
