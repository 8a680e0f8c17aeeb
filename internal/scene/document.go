package scene

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/openfloor/planvec/internal/geom"
)

// Layer indices assigned by the builder, in the editor's drawing order.
// The editor reads layer as an integer and stacks items by it.
const (
	LayerWalls = iota
	LayerClosures
	LayerArcs
	LayerContours
	LayerDoors
)

// Default styling for built documents.
var (
	colorWalls    = ARGBHex(1, colorful.Color{R: 0, G: 0, B: 0})
	colorClosures = ARGBHex(1, colorful.Color{R: 0.5, G: 0.5, B: 0.5})
	colorArcs     = ARGBHex(1, colorful.Color{R: 0, G: 0, B: 0})
	colorContours = ARGBHex(1, colorful.Color{R: 0, G: 0, B: 0})
	colorDoors    = ARGBHex(1, colorful.Color{R: 0.55, G: 0.27, B: 0.07})

	fillTransparent = ARGBHex(0, colorful.Color{R: 0, G: 0, B: 0})
)

const (
	wallStrokeWidth = 2
	thinStrokeWidth = 1
)

// Document is a complete vectorized drawing.
type Document struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	DPI    int    `json:"dpi"`
	Items  []Item `json:"items"`
}

// Build assembles a document from reconstruction output.
//
// Recovered wall segments land on the walls layer, synthesized closures on
// their own layer so editors can review them, and fitted arcs on the arcs
// layer. Simplified contour traces of at least three points become
// transparent-fill polygons, and door boxes become unfilled polygons on the
// doors layer. Every item gets a fresh UUID.
func Build(res geom.Result, contours [][]geom.Point, doorBoxes []geom.Rect, width, height, dpi int) *Document {
	items := make([]Item, 0, len(res.Lines)+len(res.Closures)+len(res.Arcs)+len(contours)+len(doorBoxes))

	for _, s := range res.Lines {
		items = append(items, lineItem(s, colorWalls, wallStrokeWidth, LayerWalls))
	}
	for _, s := range res.Closures {
		items = append(items, lineItem(s, colorClosures, thinStrokeWidth, LayerClosures))
	}
	for _, a := range res.Arcs {
		items = append(items, Arc{
			ID:    uuid.NewString(),
			Type:  KindArc,
			CX:    a.Center.X,
			CY:    a.Center.Y,
			R:     a.Radius,
			A0:    a.StartDeg,
			A1:    a.EndDeg,
			Color: colorArcs,
			Width: thinStrokeWidth,
			Layer: LayerArcs,
		})
	}
	for _, tr := range contours {
		if len(tr) < 3 {
			continue
		}
		pts := make([]geom.Point, len(tr))
		copy(pts, tr)
		items = append(items, Polygon{
			ID:        uuid.NewString(),
			Type:      KindPolygon,
			Points:    pts,
			Color:     colorContours,
			Width:     thinStrokeWidth,
			Fill:      fillTransparent,
			FillStyle: FillNone,
			Layer:     LayerContours,
		})
	}
	for _, b := range doorBoxes {
		items = append(items, Polygon{
			ID:   uuid.NewString(),
			Type: KindPolygon,
			Points: []geom.Point{
				b.Min,
				{X: b.Max.X, Y: b.Min.Y},
				b.Max,
				{X: b.Min.X, Y: b.Max.Y},
			},
			Color:     colorDoors,
			Width:     thinStrokeWidth,
			Fill:      colorDoors,
			FillStyle: FillNone,
			Layer:     LayerDoors,
		})
	}

	return &Document{
		Width:  width,
		Height: height,
		DPI:    dpi,
		Items:  items,
	}
}

func lineItem(s geom.Segment, color string, width float64, layer int) Line {
	return Line{
		ID:    uuid.NewString(),
		Type:  KindLine,
		X1:    s.P1.X,
		Y1:    s.P1.Y,
		X2:    s.P2.X,
		Y2:    s.P2.Y,
		Color: color,
		Width: width,
		Layer: layer,
	}
}

// UnmarshalJSON decodes a document, dispatching each item on its "type"
// discriminator.
func (d *Document) UnmarshalJSON(data []byte) error {
	var raw struct {
		Width  int               `json:"width"`
		Height int               `json:"height"`
		DPI    int               `json:"dpi"`
		Items  []json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	d.Width = raw.Width
	d.Height = raw.Height
	d.DPI = raw.DPI
	d.Items = make([]Item, 0, len(raw.Items))

	for i, msg := range raw.Items {
		var probe struct {
			Type Kind `json:"type"`
		}
		if err := json.Unmarshal(msg, &probe); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}

		var item Item
		switch probe.Type {
		case KindLine:
			var v Line
			if err := json.Unmarshal(msg, &v); err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}
			item = v
		case KindPolygon:
			var v Polygon
			if err := json.Unmarshal(msg, &v); err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}
			item = v
		case KindArc:
			var v Arc
			if err := json.Unmarshal(msg, &v); err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}
			item = v
		default:
			return fmt.Errorf("item %d: unknown type %q", i, probe.Type)
		}
		d.Items = append(d.Items, item)
	}
	return nil
}
