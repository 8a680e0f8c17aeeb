// Package raster extracts geometric primitives from scanned drawing images.
//
// The package turns a decoded image into the raw material the vector
// reconstruction pipeline works on: straight stroke segments, ordered curve
// traces, and candidate door-marker rectangles.
//
// # Pipeline
//
// Analyze runs the full front-end:
//
//  1. Grayscale conversion and light Gaussian denoise
//  2. Adaptive mean thresholding into a binary ink mask
//  3. Skew estimation from dominant stroke angles, with optional correction
//  4. Canny edge detection for curve tracing
//  5. Optional text suppression (OCR-backed where available)
//  6. Hough line extraction in two passes (coarse, then fine)
//  7. Contour tracing with Douglas-Peucker simplification
//  8. Door-box candidate detection via rectangularity scoring
//
// # Masks
//
// Binary rasters are represented as [][]bool indexed [y][x], where true marks
// an ink (or edge) pixel. All detectors operate on masks rather than on the
// source image, so text suppression and other mask edits compose naturally.
//
// # Coordinate System
//
// Pixel coordinates with the origin at the top-left corner, X increasing
// rightward and Y increasing downward. Detected geometry is reported in the
// coordinates of the (possibly deskewed) page.
package raster
