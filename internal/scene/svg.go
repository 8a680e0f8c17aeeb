package scene

import (
	"fmt"
	"math"
	"strings"
)

// ExportSVG renders a document as an SVG preview.
//
// Items are emitted in document order. ARGB colors split into an SVG color
// plus stroke/fill opacity. Hatch fill styles have no direct SVG equivalent
// here; they preview as a translucent fill in the polygon's fill color.
func ExportSVG(doc *Document) string {
	var b strings.Builder
	fmt.Fprintf(&b,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		doc.Width, doc.Height, doc.Width, doc.Height)

	for _, item := range doc.Items {
		switch v := item.(type) {
		case Line:
			color, opacity := svgColor(v.Color)
			fmt.Fprintf(&b,
				`  <line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-opacity="%s" stroke-width="%s"/>`+"\n",
				num(v.X1), num(v.Y1), num(v.X2), num(v.Y2), color, opacity, num(v.Width))
		case Polygon:
			color, opacity := svgColor(v.Color)
			pts := make([]string, len(v.Points))
			for i, p := range v.Points {
				pts[i] = num(p.X) + "," + num(p.Y)
			}
			fill := "none"
			fillOpacity := "1"
			if v.FillStyle != FillNone {
				fill, _ = svgColor(v.Fill)
				fillOpacity = "0.25"
			}
			fmt.Fprintf(&b,
				`  <polygon points="%s" stroke="%s" stroke-opacity="%s" stroke-width="%s" fill="%s" fill-opacity="%s"/>`+"\n",
				strings.Join(pts, " "), color, opacity, num(v.Width), fill, fillOpacity)
		case Arc:
			color, opacity := svgColor(v.Color)
			fmt.Fprintf(&b,
				`  <path d="%s" stroke="%s" stroke-opacity="%s" stroke-width="%s" fill="none"/>`+"\n",
				arcPath(v), color, opacity, num(v.Width))
		}
	}

	b.WriteString("</svg>\n")
	return b.String()
}

// arcPath converts an arc item to an SVG path. Arc spans never exceed 180
// degrees, so the large-arc flag is always 0; the sweep flag follows the
// sign of the directed angular delta.
func arcPath(a Arc) string {
	x0 := a.CX + a.R*math.Cos(a.A0*math.Pi/180)
	y0 := a.CY + a.R*math.Sin(a.A0*math.Pi/180)
	x1 := a.CX + a.R*math.Cos(a.A1*math.Pi/180)
	y1 := a.CY + a.R*math.Sin(a.A1*math.Pi/180)

	delta := math.Mod(a.A1-a.A0, 360)
	if delta > 180 {
		delta -= 360
	} else if delta < -180 {
		delta += 360
	}
	sweep := 0
	if delta > 0 {
		sweep = 1
	}

	return fmt.Sprintf("M %s %s A %s %s 0 0 %d %s %s",
		num(x0), num(y0), num(a.R), num(a.R), sweep, num(x1), num(y1))
}

// svgColor splits an #aarrggbb document color into an SVG color and an
// opacity value. Unparseable colors render opaque black.
func svgColor(argb string) (color, opacity string) {
	alpha, c, err := ParseARGB(argb)
	if err != nil {
		return "#000000", "1"
	}
	return c.Hex(), num(alpha)
}

// num formats a float compactly, trimming trailing zeros.
func num(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "" || s == "-" {
		return "0"
	}
	return s
}
