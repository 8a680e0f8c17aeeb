// Package geom implements the geometric reconstruction engine that turns noisy,
// redundant line and contour detections into a clean vector drawing.
//
// The engine consumes raw segment detections (typically from several detector
// passes over the same image), raw contour traces, and a set of door/opening
// boxes, and produces deduplicated, axis-snapped, merged line segments plus
// fitted circular arcs. It carries every nontrivial tolerance and tie-break in
// the repository; the surrounding raster and HTTP code is plumbing.
//
// # Pipeline
//
// Stages run strictly in order, each consuming the previous stage's output:
//
//  1. Duplicate filter: drop re-detections of the same physical edge
//  2. Axis snap: force near-horizontal/vertical segments exactly so
//  3. Collinear merge: fuse touching collinear fragments, iterated to a fixed point
//  4. Endpoint extension: snap under/over-shot endpoints onto segments they
//     should meet (T-junction correction)
//  5. Room closure: synthesize short closing segments across endpoint gaps,
//     skipping known openings
//  6. Arc fitting: Taubin circle fits over sliding contour windows
//
// Reconstruct runs all of them; the stage functions are exported individually
// so each can be exercised and tuned in isolation.
//
// # Coordinate System
//
// All coordinates are float64 pixel positions in the source image's space:
// origin at top-left, X rightward, Y downward. Angles are degrees; segment
// orientation is always taken modulo 180 since detections are undirected.
// No unit conversion happens here — a DPI value, when present, is pass-through
// metadata for downstream consumers.
//
// # Error Handling
//
// Degenerate numeric cases are skipped, never fatal: zero-length segments are
// filtered, singular circle-fit systems skip their window, empty inputs yield
// empty outputs. The only rejected condition is a malformed input contract —
// non-finite coordinates fail Reconstruct with ErrNonFinite before any stage
// runs.
//
// # Concurrency
//
// The engine is purely functional over one frame's detections: no function
// retains state between calls, so independent reconstructions may run in
// parallel with no shared data.
package geom
