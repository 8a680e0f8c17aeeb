package raster

import (
	"image"
	"image/color"
	"testing"
)

// whitePage creates a white RGBA image of the given size.
func whitePage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.White)
		}
	}
	return img
}

// drawStroke paints a filled black rectangle onto the page.
func drawStroke(img *image.RGBA, x0, y0, x1, y1 int) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			img.Set(x, y, color.Black)
		}
	}
}

func TestBinarize_StrokeOnPaper(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 100, 100))
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			gray.SetGray(x, y, color.Gray{Y: 255})
		}
	}
	// 3px thick dark stroke across the middle.
	for y := 49; y <= 51; y++ {
		for x := 10; x < 90; x++ {
			gray.SetGray(x, y, color.Gray{Y: 0})
		}
	}

	mask := Binarize(gray, 31, 5)

	if !mask[50][50] {
		t.Error("stroke pixel should binarize to ink")
	}
	if mask[10][50] {
		t.Error("paper pixel far from the stroke should not be ink")
	}
	if mask[50][5] {
		t.Error("paper pixel beside the stroke should not be ink")
	}
}

func TestBinarize_UniformPages(t *testing.T) {
	for _, v := range []uint8{0, 128, 255} {
		gray := image.NewGray(image.Rect(0, 0, 40, 40))
		for y := 0; y < 40; y++ {
			for x := 0; x < 40; x++ {
				gray.SetGray(x, y, color.Gray{Y: v})
			}
		}
		mask := Binarize(gray, 31, 5)
		for y := range mask {
			for x := range mask[y] {
				if mask[y][x] {
					t.Fatalf("uniform page (v=%d) must produce no ink, got ink at (%d,%d)", v, x, y)
				}
			}
		}
	}
}

func TestInkMask_FindsDrawnLine(t *testing.T) {
	img := whitePage(120, 80)
	drawStroke(img, 20, 39, 100, 41)

	mask := InkMask(img)

	if len(mask) != 80 || len(mask[0]) != 120 {
		t.Fatalf("mask should match image dimensions, got %dx%d", len(mask[0]), len(mask))
	}
	if !mask[40][60] {
		t.Error("center of the drawn line should be ink")
	}
	if mask[10][60] {
		t.Error("blank paper should not be ink")
	}
}

func TestToGray_Dimensions(t *testing.T) {
	img := whitePage(33, 17)
	gray := toGray(img)
	b := gray.Bounds()
	if b.Dx() != 33 || b.Dy() != 17 {
		t.Errorf("expected 33x17, got %dx%d", b.Dx(), b.Dy())
	}
	if gray.GrayAt(5, 5).Y < 250 {
		t.Errorf("white input should stay near-white, got %d", gray.GrayAt(5, 5).Y)
	}
}
