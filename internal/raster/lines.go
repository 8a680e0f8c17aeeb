package raster

import (
	"math"
	"sort"

	"github.com/openfloor/planvec/internal/geom"
)

const (
	// maxSegments caps the number of segments one Hough pass may emit.
	// Downstream merging copes fine with a truncated set; an unbounded one
	// can explode on hatched or dense drawings.
	maxSegments = 200

	// maxStrokeGapPx is the largest along-line gap bridged when tracing a
	// Hough peak back to pixel runs. Wider gaps split the line, so door
	// openings are not papered over at detection time.
	maxStrokeGapPx = 12

	// lineBandPx is the perpendicular distance within which a mask pixel is
	// attributed to a Hough line.
	lineBandPx = 2.0
)

// DetectSegments finds straight strokes in a binary mask using a Hough
// transform.
//
// Peaks in the accumulator are traced back to the mask pixels that voted
// for them; each peak yields one segment per contiguous pixel run at least
// minLength long, with runs split wherever the along-line gap exceeds
// maxStrokeGapPx.
func DetectSegments(mask [][]bool, minLength int) []geom.Segment {
	height := len(mask)
	if height == 0 {
		return nil
	}
	width := len(mask[0])
	if width == 0 {
		return nil
	}
	if minLength < 2 {
		minLength = 2
	}

	acc, maxDist := houghAccumulate(mask, width, height)
	peaks := houghPeaks(acc, maxDist, minLength/2)

	segments := make([]geom.Segment, 0)
	for _, peak := range peaks {
		if len(segments) >= maxSegments {
			break
		}

		angle := float64(peak.theta) * math.Pi / 180.0
		rho := float64(peak.rho)
		cosA := math.Cos(angle)
		sinA := math.Sin(angle)

		// Collect mask pixels within the band around this line, keyed by
		// their position along the line direction (-sinA, cosA).
		type linePoint struct {
			x, y int
			d    float64
		}
		pts := make([]linePoint, 0)
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				if !mask[y][x] {
					continue
				}
				dist := math.Abs(float64(x)*cosA + float64(y)*sinA - rho)
				if dist < lineBandPx {
					d := -float64(x)*sinA + float64(y)*cosA
					pts = append(pts, linePoint{x: x, y: y, d: d})
				}
			}
		}
		if len(pts) < minLength {
			continue
		}

		sort.Slice(pts, func(i, j int) bool { return pts[i].d < pts[j].d })

		// Split into contiguous runs and emit each long-enough run.
		runStart := 0
		for i := 1; i <= len(pts); i++ {
			if i < len(pts) && pts[i].d-pts[i-1].d <= maxStrokeGapPx {
				continue
			}
			a, b := pts[runStart], pts[i-1]
			runStart = i

			s := geom.Seg(float64(a.x), float64(a.y), float64(b.x), float64(b.y))
			if s.Length() >= float64(minLength) {
				segments = append(segments, s)
				if len(segments) >= maxSegments {
					break
				}
			}
		}
	}

	return segments
}

// DetectPasses runs line extraction twice: a coarse pass at the requested
// minimum length, then a fine pass at half that length to pick up the short
// strokes the coarse pass skipped. Re-detections across the passes are
// expected; the reconstruction pipeline deduplicates them.
func DetectPasses(mask [][]bool, minLength int) [][]geom.Segment {
	coarse := DetectSegments(mask, minLength)
	fineLen := minLength / 2
	if fineLen < 8 {
		fineLen = 8
	}
	fine := DetectSegments(mask, fineLen)
	return [][]geom.Segment{coarse, fine}
}

// EstimateSkew estimates the page skew in degrees from the dominant stroke
// angles in a binary mask.
//
// Each strong Hough peak contributes its angular deviation from the nearest
// axis (multiple of 90 degrees); the median of those deviations is the skew
// estimate. Returns 0 when no reliable estimate exists or the deviation is
// implausibly large for a scan.
func EstimateSkew(mask [][]bool) float64 {
	height := len(mask)
	if height == 0 {
		return 0
	}
	width := len(mask[0])
	if width == 0 {
		return 0
	}

	acc, maxDist := houghAccumulate(mask, width, height)
	peaks := houghPeaks(acc, maxDist, 40)
	if len(peaks) == 0 {
		return 0
	}

	devs := make([]float64, 0, len(peaks))
	for _, p := range peaks {
		dev := math.Mod(float64(p.theta), 90)
		if dev > 45 {
			dev -= 90
		}
		if math.Abs(dev) <= 15 {
			devs = append(devs, dev)
		}
	}
	if len(devs) == 0 {
		return 0
	}

	sort.Float64s(devs)
	return devs[len(devs)/2]
}

type houghPeak struct {
	rho   int
	theta int
	votes int
}

// houghAccumulate votes every mask pixel into (rho, theta) space with
// 1-degree angular resolution over [0, 180).
func houghAccumulate(mask [][]bool, width, height int) ([][]int, int) {
	maxDist := int(math.Sqrt(float64(width*width + height*height)))
	numAngles := 180
	acc := make([][]int, maxDist*2)
	for i := range acc {
		acc[i] = make([]int, numAngles)
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !mask[y][x] {
				continue
			}
			for theta := 0; theta < numAngles; theta++ {
				angle := float64(theta) * math.Pi / 180.0
				rho := float64(x)*math.Cos(angle) + float64(y)*math.Sin(angle)
				rhoIdx := int(rho) + maxDist
				if rhoIdx >= 0 && rhoIdx < maxDist*2 {
					acc[rhoIdx][theta]++
				}
			}
		}
	}
	return acc, maxDist
}

// houghPeaks finds accumulator cells above threshold that are local maxima
// in a 5x5 neighborhood (theta wraps), sorted by votes descending.
func houghPeaks(acc [][]int, maxDist, threshold int) []houghPeak {
	if threshold < 1 {
		threshold = 1
	}
	numAngles := 180
	peaks := make([]houghPeak, 0)

	for rhoIdx := 0; rhoIdx < maxDist*2; rhoIdx++ {
		for theta := 0; theta < numAngles; theta++ {
			votes := acc[rhoIdx][theta]
			if votes < threshold {
				continue
			}
			isMax := true
			for dr := -2; dr <= 2 && isMax; dr++ {
				for dt := -2; dt <= 2 && isMax; dt++ {
					if dr == 0 && dt == 0 {
						continue
					}
					nr := rhoIdx + dr
					nt := (theta + dt + numAngles) % numAngles
					if nr >= 0 && nr < maxDist*2 && acc[nr][nt] > votes {
						isMax = false
					}
				}
			}
			if isMax {
				peaks = append(peaks, houghPeak{
					rho:   rhoIdx - maxDist,
					theta: theta,
					votes: votes,
				})
			}
		}
	}

	sort.Slice(peaks, func(i, j int) bool {
		return peaks[i].votes > peaks[j].votes
	})
	return peaks
}
