// Package server exposes the vectorization pipeline over HTTP.
//
// Routes:
//
//	GET  /healthz         - liveness probe
//	POST /vectorise       - multipart scan upload, returns the scene document as JSON
//	POST /vectorise/svg   - same pipeline, returns an SVG preview
//
// Both POST routes accept the scan as an "image" upload or a server-local
// "path" form field, plus optional tuning fields; see Vectorise for the full
// list. Undecodable or missing scans and malformed parameters are client
// errors (400); non-finite geometry in user-supplied door boxes is a 422.
package server
