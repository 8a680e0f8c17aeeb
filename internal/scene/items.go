package scene

import (
	"github.com/openfloor/planvec/internal/geom"
)

// Kind discriminates drawable item types in the JSON interchange format.
type Kind string

const (
	KindLine    Kind = "line"
	KindPolygon Kind = "polygon"
	KindArc     Kind = "arc"
)

// FillStyle selects a polygon fill pattern, matching the editor's brush
// table indices.
type FillStyle int

const (
	FillNone FillStyle = iota
	FillHorizontal
	FillVertical
	FillDiagLeft
	FillDiagRight
	FillCross
)

// Item is one drawable in a scene document.
//
// The variant set is closed: Line, Polygon, and Arc are the only
// implementations, enforced by the unexported method.
type Item interface {
	// Kind returns the item's type discriminator.
	Kind() Kind

	drawable()
}

// Line is a straight stroke between two points.
type Line struct {
	ID    string  `json:"id"`
	Type  Kind    `json:"type"`
	X1    float64 `json:"x1"`
	Y1    float64 `json:"y1"`
	X2    float64 `json:"x2"`
	Y2    float64 `json:"y2"`
	Color string  `json:"color"`
	Width float64 `json:"width"`
	Layer int     `json:"layer"`
}

func (Line) Kind() Kind { return KindLine }
func (Line) drawable()  {}

// Polygon is a closed outline with optional fill. Points are listed in
// drawing order; the closing edge back to the first point is implicit.
type Polygon struct {
	ID        string       `json:"id"`
	Type      Kind         `json:"type"`
	Points    []geom.Point `json:"points"`
	Color     string       `json:"color"`
	Width     float64      `json:"width"`
	Fill      string       `json:"fill"`
	FillStyle FillStyle    `json:"fillStyle"`
	Layer     int          `json:"layer"`
}

func (Polygon) Kind() Kind { return KindPolygon }
func (Polygon) drawable()  {}

// Arc is a circular arc. A0 and A1 are degrees from the positive X axis in
// page coordinates (Y down), as fitted.
type Arc struct {
	ID    string  `json:"id"`
	Type  Kind    `json:"type"`
	CX    float64 `json:"cx"`
	CY    float64 `json:"cy"`
	R     float64 `json:"r"`
	A0    float64 `json:"a0"`
	A1    float64 `json:"a1"`
	Color string  `json:"color"`
	Width float64 `json:"width"`
	Layer int     `json:"layer"`
}

func (Arc) Kind() Kind { return KindArc }
func (Arc) drawable()  {}
