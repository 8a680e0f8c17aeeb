// Package scene assembles reconstruction output into a drawable document.
//
// A Document is the editor-facing result of vectorization: a flat list of
// drawable items (lines, polygons, arcs) with identity, styling, and layer
// assignment, plus the page dimensions. Documents serialize to the JSON
// interchange format consumed by the drawing editor and export to SVG for
// preview.
//
// # Item Model
//
// Item is a closed tagged variant: the only implementations are Line,
// Polygon, and Arc. Every item carries a "type" discriminator in JSON, a
// UUID identity, and a numeric layer (the editor's drawing order), so
// editors can round-trip documents without losing selection or layer state.
//
// # Colors
//
// Colors use the #aarrggbb convention, alpha first. See ARGBHex and
// ParseARGB.
package scene
